package dashboard

import (
	"strings"
	"time"
)

// AppliedFilter is one removable pill derived from an active constraint.
// Items are derived fresh from current state on every call and removed by id
// through the service, never mutated directly.
type AppliedFilter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Applied-filter id constants for the single-valued constraints. Status,
// booking-method, agency-category and hotel-source items carry a
// "<prefix>-<value>" id instead.
const (
	filterIDRefNo               = "refNo"
	filterIDTripType            = "tripType"
	filterIDBookingDates        = "bookingDates"
	filterIDCheckInDates        = "checkInDates"
	filterIDHotelName           = "hotelName"
	filterIDAgencyName          = "agencyName"
	filterIDGuestName           = "guestName"
	filterIDWithoutHCN          = "withoutHcn"
	filterIDCancellationExpired = "cancellationDateExpired"

	filterIDPrefixStatus         = "status-"
	filterIDPrefixBookingMethod  = "bookingMethod-"
	filterIDPrefixAgencyCategory = "agencyCategory-"
	filterIDPrefixHotelSource    = "hotelSource-"
)

// AppliedFilterItems projects the current filter state onto the ordered pill
// list: status toggles, reference number, booking methods, agency
// categories, hotel sources, trip type, the two date ranges, the three name
// searches, without-HCN and cancellation-expired, in that fixed order.
func AppliedFilterItems(f Filters, sf StatusFilters) []AppliedFilter {
	var items []AppliedFilter

	for _, s := range []struct {
		on  bool
		key string
	}{
		{sf.Confirmed, "confirmed"},
		{sf.Pending, "pending"},
		{sf.Cancelled, "cancelled"},
		{sf.Vouchered, "vouchered"},
	} {
		if s.on {
			items = append(items, AppliedFilter{
				ID:    filterIDPrefixStatus + s.key,
				Label: "Status: " + capitalize(s.key),
			})
		}
	}

	if f.RefNo != "" {
		items = append(items, AppliedFilter{ID: filterIDRefNo, Label: "Ref No: " + f.RefNo})
	}

	if f.BookingMethods.Online {
		items = append(items, AppliedFilter{
			ID:    filterIDPrefixBookingMethod + string(BookingMethodOnline),
			Label: "Booking: Online",
		})
	}
	if f.BookingMethods.Manual {
		items = append(items, AppliedFilter{
			ID:    filterIDPrefixBookingMethod + string(BookingMethodManual),
			Label: "Booking: Manual",
		})
	}

	for _, c := range []struct {
		on  bool
		cat AgencyCategory
	}{
		{f.AgencyCategories.Large, AgencyCategoryLarge},
		{f.AgencyCategories.Managed, AgencyCategoryManaged},
		{f.AgencyCategories.Value, AgencyCategoryValue},
	} {
		if c.on {
			items = append(items, AppliedFilter{
				ID:    filterIDPrefixAgencyCategory + string(c.cat),
				Label: "Agency: " + capitalize(string(c.cat)),
			})
		}
	}

	for _, source := range f.HotelSources {
		items = append(items, AppliedFilter{
			ID:    filterIDPrefixHotelSource + source,
			Label: "Source: " + source,
		})
	}

	if f.TripType != "" {
		items = append(items, AppliedFilter{
			ID:    filterIDTripType,
			Label: "Trip: " + capitalize(string(f.TripType)),
		})
	}

	if f.BookingDateStart != "" || f.BookingDateEnd != "" {
		items = append(items, AppliedFilter{
			ID:    filterIDBookingDates,
			Label: "Booking: " + formatFilterDate(f.BookingDateStart) + " - " + formatFilterDate(f.BookingDateEnd),
		})
	}
	if f.CheckInDateStart != "" || f.CheckInDateEnd != "" {
		items = append(items, AppliedFilter{
			ID:    filterIDCheckInDates,
			Label: "Check-in: " + formatFilterDate(f.CheckInDateStart) + " - " + formatFilterDate(f.CheckInDateEnd),
		})
	}

	if f.HotelName != "" {
		items = append(items, AppliedFilter{ID: filterIDHotelName, Label: "Hotel: " + f.HotelName})
	}
	if f.AgencyName != "" {
		items = append(items, AppliedFilter{ID: filterIDAgencyName, Label: "Agency: " + f.AgencyName})
	}
	if f.GuestName != "" {
		items = append(items, AppliedFilter{ID: filterIDGuestName, Label: "Guest: " + f.GuestName})
	}

	if f.WithoutHCN {
		items = append(items, AppliedFilter{ID: filterIDWithoutHCN, Label: "Without HCN"})
	}
	if f.CancellationDateExpired {
		items = append(items, AppliedFilter{ID: filterIDCancellationExpired, Label: "Last Cancellation Date Expired"})
	}

	return items
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatFilterDate renders a "2006-01-02" bound as "Jan 2, 2006" for pill
// labels. Empty bounds render empty; unparseable input is shown verbatim.
func formatFilterDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
