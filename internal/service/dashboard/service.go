package dashboard

import (
	"strings"
	"sync"
	"time"

	"bookingdesk/internal/domain"
	"bookingdesk/pkg/metrics"

	"go.uber.org/zap"
)

// DashboardUseCase is the boundary the presentation layer drives: it reads
// the current view and routes every user interaction into a state mutation.
type DashboardUseCase interface {
	View() View
	UpdateFilters(update FilterUpdate)
	UpdateStatusFilters(update StatusUpdate)
	SetSort(by SortOption)
	SetPage(page int)
	RemoveFilter(id string) bool
	ClearFilters()
	FilteredBookings() []domain.Booking
}

// View is one consistent snapshot of the pipeline output: the filtered and
// sorted count, the current page slice, the page arithmetic, the applied
// filter pills and the notification counters.
type View struct {
	TotalCount     int
	Bookings       []domain.Booking
	Page           int
	TotalPages     int
	ItemsPerPage   int
	SortBy         SortOption
	AppliedFilters []AppliedFilter
	HasFilters     bool
	Notifications  NotificationCounts
}

// FilterUpdate is a partial filter-state change. Nil fields are left
// untouched, so each field's value type is fixed at compile time instead of
// being coerced from a dynamic property bag.
type FilterUpdate struct {
	RefNo                   *string   `json:"refNo"`
	BookingMethodOnline     *bool     `json:"bookingMethodOnline"`
	BookingMethodManual     *bool     `json:"bookingMethodManual"`
	AgencyCategoryLarge     *bool     `json:"agencyCategoryLarge"`
	AgencyCategoryManaged   *bool     `json:"agencyCategoryManaged"`
	AgencyCategoryValue     *bool     `json:"agencyCategoryValue"`
	HotelSources            *[]string `json:"hotelSources"`
	TripType                *TripType `json:"tripType"`
	BookingDateStart        *string   `json:"bookingDateStart"`
	BookingDateEnd          *string   `json:"bookingDateEnd"`
	CheckInDateStart        *string   `json:"checkInDateStart"`
	CheckInDateEnd          *string   `json:"checkInDateEnd"`
	HotelName               *string   `json:"hotelName"`
	AgencyName              *string   `json:"agencyName"`
	GuestName               *string   `json:"guestName"`
	WithoutHCN              *bool     `json:"withoutHcn"`
	CancellationDateExpired *bool     `json:"cancellationDateExpired"`
}

// StatusUpdate is a partial status-toggle change.
type StatusUpdate struct {
	Confirmed *bool `json:"confirmed"`
	Pending   *bool `json:"pending"`
	Cancelled *bool `json:"cancelled"`
	Vouchered *bool `json:"vouchered"`
}

// Service owns the four state records (filters, status toggles, sort option,
// pagination) over an immutable booking collection. All mutation goes
// through its setters, which serialize under one mutex and reset the current
// page to 1, so a shrunk result set can never leave a stale page visible.
type Service struct {
	mu            sync.Mutex
	bookings      []domain.Booking
	filters       Filters
	statusFilters StatusFilters
	sortBy        SortOption
	currentPage   int
	itemsPerPage  int

	log     *zap.SugaredLogger
	metrics *metrics.Metrics
	now     func() time.Time
}

type ServiceOption func(*Service)

func WithLogger(log *zap.SugaredLogger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the evaluation clock, used by the cancellation-expired
// predicate and the notification counters.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(bookings []domain.Booking, itemsPerPage int, opts ...ServiceOption) *Service {
	s := &Service{
		bookings:      bookings,
		statusFilters: DefaultStatusFilters(),
		sortBy:        SortByBookingDate,
		currentPage:   1,
		itemsPerPage:  itemsPerPage,
		log:           zap.NewNop().Sugar(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View recomputes the whole pipeline from current state: filter, sort,
// slice, project. It is a pure derivation with no cached backing state.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	now := s.now()

	filtered := FilterBookings(s.bookings, s.filters, s.statusFilters, now)
	ordered := SortBookings(filtered, s.sortBy)
	pageSlice, totalPages := Paginate(ordered, s.currentPage, s.itemsPerPage)

	if s.metrics != nil {
		s.metrics.PipelineRecomputes.Inc()
		s.metrics.RecomputeDuration.Observe(time.Since(started).Seconds())
	}
	s.log.Debugw("pipeline recomputed",
		"matched", len(filtered),
		"page", s.currentPage,
		"total_pages", totalPages,
		"sort_by", s.sortBy,
	)

	return View{
		TotalCount:     len(ordered),
		Bookings:       pageSlice,
		Page:           s.currentPage,
		TotalPages:     totalPages,
		ItemsPerPage:   s.itemsPerPage,
		SortBy:         s.sortBy,
		AppliedFilters: AppliedFilterItems(s.filters, s.statusFilters),
		HasFilters:     s.filters.activeWith(s.statusFilters),
		Notifications:  countNotifications(s.bookings, now),
	}
}

// FilteredBookings returns the full filtered and sorted collection, not just
// the current page. The export collaborator consumes this.
func (s *Service) FilteredBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := FilterBookings(s.bookings, s.filters, s.statusFilters, s.now())
	return SortBookings(filtered, s.sortBy)
}

// UpdateFilters applies every set field of the partial update through its
// typed setter.
func (s *Service) UpdateFilters(update FilterUpdate) {
	if update.RefNo != nil {
		s.SetRefNo(*update.RefNo)
	}
	if update.BookingMethodOnline != nil {
		s.SetBookingMethod(BookingMethodOnline, *update.BookingMethodOnline)
	}
	if update.BookingMethodManual != nil {
		s.SetBookingMethod(BookingMethodManual, *update.BookingMethodManual)
	}
	if update.AgencyCategoryLarge != nil {
		s.SetAgencyCategory(AgencyCategoryLarge, *update.AgencyCategoryLarge)
	}
	if update.AgencyCategoryManaged != nil {
		s.SetAgencyCategory(AgencyCategoryManaged, *update.AgencyCategoryManaged)
	}
	if update.AgencyCategoryValue != nil {
		s.SetAgencyCategory(AgencyCategoryValue, *update.AgencyCategoryValue)
	}
	if update.HotelSources != nil {
		s.SetHotelSources(*update.HotelSources)
	}
	if update.TripType != nil {
		s.SetTripType(*update.TripType)
	}
	if update.BookingDateStart != nil || update.BookingDateEnd != nil {
		s.mu.Lock()
		start, end := s.filters.BookingDateStart, s.filters.BookingDateEnd
		s.mu.Unlock()
		if update.BookingDateStart != nil {
			start = *update.BookingDateStart
		}
		if update.BookingDateEnd != nil {
			end = *update.BookingDateEnd
		}
		s.SetBookingDateRange(start, end)
	}
	if update.CheckInDateStart != nil || update.CheckInDateEnd != nil {
		s.mu.Lock()
		start, end := s.filters.CheckInDateStart, s.filters.CheckInDateEnd
		s.mu.Unlock()
		if update.CheckInDateStart != nil {
			start = *update.CheckInDateStart
		}
		if update.CheckInDateEnd != nil {
			end = *update.CheckInDateEnd
		}
		s.SetCheckInDateRange(start, end)
	}
	if update.HotelName != nil {
		s.SetHotelName(*update.HotelName)
	}
	if update.AgencyName != nil {
		s.SetAgencyName(*update.AgencyName)
	}
	if update.GuestName != nil {
		s.SetGuestName(*update.GuestName)
	}
	if update.WithoutHCN != nil {
		s.SetWithoutHCN(*update.WithoutHCN)
	}
	if update.CancellationDateExpired != nil {
		s.SetCancellationDateExpired(*update.CancellationDateExpired)
	}
}

// UpdateStatusFilters applies every set status toggle of the partial update.
func (s *Service) UpdateStatusFilters(update StatusUpdate) {
	if update.Confirmed != nil {
		s.SetStatusFilter(domain.BookingStatusConfirmed, *update.Confirmed)
	}
	if update.Pending != nil {
		s.SetStatusFilter(domain.BookingStatusPending, *update.Pending)
	}
	if update.Cancelled != nil {
		s.SetStatusFilter(domain.BookingStatusCancelled, *update.Cancelled)
	}
	if update.Vouchered != nil {
		s.SetStatusFilter(domain.BookingStatusVouchered, *update.Vouchered)
	}
}

func (s *Service) SetRefNo(v string) {
	s.mutate("refNo", func() { s.filters.RefNo = v })
}

func (s *Service) SetHotelName(v string) {
	s.mutate("hotelName", func() { s.filters.HotelName = v })
}

func (s *Service) SetAgencyName(v string) {
	s.mutate("agencyName", func() { s.filters.AgencyName = v })
}

func (s *Service) SetGuestName(v string) {
	s.mutate("guestName", func() { s.filters.GuestName = v })
}

func (s *Service) SetTripType(v TripType) {
	s.mutate("tripType", func() { s.filters.TripType = v })
}

func (s *Service) SetBookingDateRange(start, end string) {
	s.mutate("bookingDates", func() {
		s.filters.BookingDateStart = start
		s.filters.BookingDateEnd = end
	})
}

func (s *Service) SetCheckInDateRange(start, end string) {
	s.mutate("checkInDates", func() {
		s.filters.CheckInDateStart = start
		s.filters.CheckInDateEnd = end
	})
}

func (s *Service) SetBookingMethod(m BookingMethod, on bool) {
	s.mutate("bookingMethod", func() {
		switch m {
		case BookingMethodOnline:
			s.filters.BookingMethods.Online = on
		case BookingMethodManual:
			s.filters.BookingMethods.Manual = on
		}
	})
}

func (s *Service) SetAgencyCategory(c AgencyCategory, on bool) {
	s.mutate("agencyCategory", func() {
		switch c {
		case AgencyCategoryLarge:
			s.filters.AgencyCategories.Large = on
		case AgencyCategoryManaged:
			s.filters.AgencyCategories.Managed = on
		case AgencyCategoryValue:
			s.filters.AgencyCategories.Value = on
		}
	})
}

func (s *Service) SetHotelSources(sources []string) {
	owned := make([]string, len(sources))
	copy(owned, sources)
	s.mutate("hotelSources", func() { s.filters.HotelSources = owned })
}

func (s *Service) SetWithoutHCN(on bool) {
	s.mutate("withoutHcn", func() { s.filters.WithoutHCN = on })
}

func (s *Service) SetCancellationDateExpired(on bool) {
	s.mutate("cancellationDateExpired", func() { s.filters.CancellationDateExpired = on })
}

func (s *Service) SetStatusFilter(status domain.BookingStatus, on bool) {
	s.mutate("status", func() {
		switch status {
		case domain.BookingStatusConfirmed:
			s.statusFilters.Confirmed = on
		case domain.BookingStatusPending:
			s.statusFilters.Pending = on
		case domain.BookingStatusCancelled:
			s.statusFilters.Cancelled = on
		case domain.BookingStatusVouchered:
			s.statusFilters.Vouchered = on
		}
	})
}

func (s *Service) SetSort(by SortOption) {
	s.mutate("sort", func() { s.sortBy = by })
}

// SetPage changes the current page. It is the one setter without the
// page-reset side effect. Pages below 1 are clamped.
func (s *Service) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.currentPage = page
}

// ClearFilters deactivates every constraint, including all four status
// toggles.
func (s *Service) ClearFilters() {
	s.mutate("clear", func() {
		s.filters = Filters{}
		s.statusFilters = StatusFilters{}
	})
}

// RemoveFilter clears exactly the one constraint identified by an
// applied-filter id, leaving every other active constraint untouched. It
// reports whether anything changed; removing an already-inactive constraint
// is a no-op.
func (s *Service) RemoveFilter(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	switch {
	case strings.HasPrefix(id, filterIDPrefixStatus):
		changed = s.removeStatus(strings.TrimPrefix(id, filterIDPrefixStatus))
	case strings.HasPrefix(id, filterIDPrefixBookingMethod):
		changed = s.removeBookingMethod(strings.TrimPrefix(id, filterIDPrefixBookingMethod))
	case strings.HasPrefix(id, filterIDPrefixAgencyCategory):
		changed = s.removeAgencyCategory(strings.TrimPrefix(id, filterIDPrefixAgencyCategory))
	case strings.HasPrefix(id, filterIDPrefixHotelSource):
		changed = s.removeHotelSource(strings.TrimPrefix(id, filterIDPrefixHotelSource))
	case id == filterIDRefNo:
		changed = clearString(&s.filters.RefNo)
	case id == filterIDTripType:
		if s.filters.TripType != "" {
			s.filters.TripType = ""
			changed = true
		}
	case id == filterIDBookingDates:
		changed = clearString(&s.filters.BookingDateStart)
		changed = clearString(&s.filters.BookingDateEnd) || changed
	case id == filterIDCheckInDates:
		changed = clearString(&s.filters.CheckInDateStart)
		changed = clearString(&s.filters.CheckInDateEnd) || changed
	case id == filterIDHotelName:
		changed = clearString(&s.filters.HotelName)
	case id == filterIDAgencyName:
		changed = clearString(&s.filters.AgencyName)
	case id == filterIDGuestName:
		changed = clearString(&s.filters.GuestName)
	case id == filterIDWithoutHCN:
		changed = clearBool(&s.filters.WithoutHCN)
	case id == filterIDCancellationExpired:
		changed = clearBool(&s.filters.CancellationDateExpired)
	}

	if changed {
		s.currentPage = 1
		if s.metrics != nil {
			s.metrics.FilterMutations.WithLabelValues("remove").Inc()
		}
	}
	return changed
}

func (s *Service) removeStatus(key string) bool {
	switch key {
	case "confirmed":
		return clearBool(&s.statusFilters.Confirmed)
	case "pending":
		return clearBool(&s.statusFilters.Pending)
	case "cancelled":
		return clearBool(&s.statusFilters.Cancelled)
	case "vouchered":
		return clearBool(&s.statusFilters.Vouchered)
	}
	return false
}

func (s *Service) removeBookingMethod(key string) bool {
	switch BookingMethod(key) {
	case BookingMethodOnline:
		return clearBool(&s.filters.BookingMethods.Online)
	case BookingMethodManual:
		return clearBool(&s.filters.BookingMethods.Manual)
	}
	return false
}

func (s *Service) removeAgencyCategory(key string) bool {
	switch AgencyCategory(key) {
	case AgencyCategoryLarge:
		return clearBool(&s.filters.AgencyCategories.Large)
	case AgencyCategoryManaged:
		return clearBool(&s.filters.AgencyCategories.Managed)
	case AgencyCategoryValue:
		return clearBool(&s.filters.AgencyCategories.Value)
	}
	return false
}

func (s *Service) removeHotelSource(source string) bool {
	for i, existing := range s.filters.HotelSources {
		if existing == source {
			s.filters.HotelSources = append(
				s.filters.HotelSources[:i:i],
				s.filters.HotelSources[i+1:]...,
			)
			return true
		}
	}
	return false
}

// mutate runs one state change under the lock and resets the current page,
// the mandatory invariant for every filter, status and sort mutation.
func (s *Service) mutate(field string, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply()
	s.currentPage = 1
	if s.metrics != nil {
		s.metrics.FilterMutations.WithLabelValues(field).Inc()
	}
}

func clearString(v *string) bool {
	if *v == "" {
		return false
	}
	*v = ""
	return true
}

func clearBool(v *bool) bool {
	if !*v {
		return false
	}
	*v = false
	return true
}

var _ DashboardUseCase = (*Service)(nil)
