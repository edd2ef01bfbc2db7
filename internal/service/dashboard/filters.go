package dashboard

import (
	"strings"

	"bookingdesk/internal/domain"
)

// SortOption selects which timestamp field orders the booking queue.
type SortOption string

const (
	SortByBookingDate      SortOption = "bookingDate"
	SortByCheckInDate      SortOption = "checkInDate"
	SortByCancellationDate SortOption = "cancellationDate"
)

type BookingMethod string

const (
	BookingMethodOnline BookingMethod = "online"
	BookingMethodManual BookingMethod = "manual"
)

type AgencyCategory string

const (
	AgencyCategoryLarge   AgencyCategory = "large"
	AgencyCategoryManaged AgencyCategory = "managed"
	AgencyCategoryValue   AgencyCategory = "value"
)

type TripType string

const (
	TripTypeDomestic      TripType = "domestic"
	TripTypeInternational TripType = "international"
)

// HotelSourceOptions is the full hotel-source enumeration offered by the
// multi-select filter.
var HotelSourceOptions = []string{
	"Agoda",
	"AgodaMaldives",
	"BookABed",
	"BookingDotCom",
	"ClearTrip",
	"Desiya",
}

// StatusFilters holds the four independent status toggles. When none is on
// the status filter is inactive and every booking passes.
type StatusFilters struct {
	Confirmed bool
	Pending   bool
	Cancelled bool
	Vouchered bool
}

// DefaultStatusFilters is the initial status selection: everything except
// cancelled bookings.
func DefaultStatusFilters() StatusFilters {
	return StatusFilters{
		Confirmed: true,
		Pending:   true,
		Cancelled: false,
		Vouchered: true,
	}
}

// Any reports whether at least one status toggle is on.
func (s StatusFilters) Any() bool {
	return s.Confirmed || s.Pending || s.Cancelled || s.Vouchered
}

// allows maps a booking status (case-folded) onto its toggle. Unknown
// statuses never pass an active status filter.
func (s StatusFilters) allows(status domain.BookingStatus) bool {
	switch strings.ToLower(string(status)) {
	case "confirmed":
		return s.Confirmed
	case "pending":
		return s.Pending
	case "cancelled":
		return s.Cancelled
	case "vouchered":
		return s.Vouchered
	default:
		return false
	}
}

type BookingMethods struct {
	Online bool
	Manual bool
}

type AgencyCategories struct {
	Large   bool
	Managed bool
	Value   bool
}

// Filters is the full set of user-selected criteria. Date bounds are carried
// as "2006-01-02" strings exactly as entered and parsed at evaluation time.
type Filters struct {
	RefNo                   string
	BookingMethods          BookingMethods
	AgencyCategories        AgencyCategories
	HotelSources            []string
	TripType                TripType
	BookingDateStart        string
	BookingDateEnd          string
	CheckInDateStart        string
	CheckInDateEnd          string
	HotelName               string
	AgencyName              string
	GuestName               string
	WithoutHCN              bool
	CancellationDateExpired bool
}

// Active reports whether any constraint, including a status toggle, is set.
func (f Filters) activeWith(sf StatusFilters) bool {
	return f.RefNo != "" ||
		f.BookingMethods.Online || f.BookingMethods.Manual ||
		f.AgencyCategories.Large || f.AgencyCategories.Managed || f.AgencyCategories.Value ||
		len(f.HotelSources) > 0 ||
		f.TripType != "" ||
		f.BookingDateStart != "" || f.BookingDateEnd != "" ||
		f.CheckInDateStart != "" || f.CheckInDateEnd != "" ||
		f.HotelName != "" || f.AgencyName != "" || f.GuestName != "" ||
		f.WithoutHCN || f.CancellationDateExpired ||
		sf.Any()
}
