package dashboard

import (
	"fmt"
	"testing"
	"time"

	"bookingdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceFixture(t *testing.T, count, itemsPerPage int) *Service {
	t.Helper()
	bookings := make([]domain.Booking, count)
	for i := range bookings {
		bookings[i] = domain.Booking{
			ID:                   fmt.Sprintf("%d", i+1),
			AgencyName:           "Global Travel Solutions",
			HotelName:            "Aman Tokyo Premier Room with City View",
			Status:               domain.BookingStatusConfirmed,
			LeadGuestName:        "John Smith",
			RefNo:                fmt.Sprintf("REF%06d", i+1),
			BookedTimestamp:      date(2024, time.January, 1).AddDate(0, 0, i),
			CheckInDate:          date(2024, time.April, 1).AddDate(0, 0, i),
			CheckOutDate:         date(2024, time.April, 4).AddDate(0, 0, i),
			LastCancellationDate: date(2024, time.March, 25).AddDate(0, 0, i),
			NumberOfNights:       3,
		}
	}
	return NewService(bookings, itemsPerPage, WithClock(func() time.Time {
		return date(2024, time.June, 1)
	}))
}

func TestService_DefaultState(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	v := s.View()

	assert.Equal(t, 12, v.TotalCount)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, SortByBookingDate, v.SortBy)
	// Default status selection is everything but cancelled.
	assert.Equal(t, []AppliedFilter{
		{ID: "status-confirmed", Label: "Status: Confirmed"},
		{ID: "status-pending", Label: "Status: Pending"},
		{ID: "status-vouchered", Label: "Status: Vouchered"},
	}, v.AppliedFilters)
	assert.True(t, v.HasFilters)
}

func TestService_ViewSortsDescendingAndSlices(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	v := s.View()

	require.Len(t, v.Bookings, 5)
	// Most recently booked first.
	assert.Equal(t, "12", v.Bookings[0].ID)
	assert.Equal(t, "8", v.Bookings[4].ID)
}

func TestService_MutatingSettersResetPage(t *testing.T) {
	mutations := map[string]func(s *Service){
		"refNo":          func(s *Service) { s.SetRefNo("REF") },
		"hotelName":      func(s *Service) { s.SetHotelName("Aman") },
		"agencyName":     func(s *Service) { s.SetAgencyName("Global") },
		"guestName":      func(s *Service) { s.SetGuestName("John") },
		"tripType":       func(s *Service) { s.SetTripType(TripTypeDomestic) },
		"bookingDates":   func(s *Service) { s.SetBookingDateRange("2024-01-01", "") },
		"checkInDates":   func(s *Service) { s.SetCheckInDateRange("", "2024-12-31") },
		"bookingMethod":  func(s *Service) { s.SetBookingMethod(BookingMethodOnline, true) },
		"agencyCategory": func(s *Service) { s.SetAgencyCategory(AgencyCategoryValue, true) },
		"hotelSources":   func(s *Service) { s.SetHotelSources([]string{"Agoda"}) },
		"withoutHcn":     func(s *Service) { s.SetWithoutHCN(true) },
		"cancellation":   func(s *Service) { s.SetCancellationDateExpired(true) },
		"status":         func(s *Service) { s.SetStatusFilter(domain.BookingStatusCancelled, true) },
		"sort":           func(s *Service) { s.SetSort(SortByCheckInDate) },
		"clear":          func(s *Service) { s.ClearFilters() },
	}

	for name, mutate := range mutations {
		s := serviceFixture(t, 12, 5)
		s.SetPage(3)
		require.Equal(t, 3, s.View().Page, name)
		mutate(s)
		assert.Equal(t, 1, s.View().Page, "mutation %q must reset the page", name)
	}
}

func TestService_SetPageDoesNotReset(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	s.SetPage(2)
	assert.Equal(t, 2, s.View().Page)
	s.SetPage(-4)
	assert.Equal(t, 1, s.View().Page)
}

func TestService_OutOfRangePageYieldsEmptySliceSilently(t *testing.T) {
	s := serviceFixture(t, 7, 5)
	s.SetPage(9)
	v := s.View()
	assert.Empty(t, v.Bookings)
	assert.Equal(t, 2, v.TotalPages)
	assert.Equal(t, 7, v.TotalCount)
}

// The worked example: 7 bookings, 3 confirmed and 4 pending, confirmed-only
// status filter, 5 per page.
func TestService_ConfirmedOnlyScenario(t *testing.T) {
	bookings := make([]domain.Booking, 7)
	for i := range bookings {
		bookings[i] = domain.Booking{
			ID:              fmt.Sprintf("%d", i+1),
			Status:          domain.BookingStatusPending,
			BookedTimestamp: date(2024, time.January, 1).AddDate(0, 0, i),
		}
	}
	bookings[0].Status = domain.BookingStatusConfirmed
	bookings[3].Status = domain.BookingStatusConfirmed
	bookings[5].Status = domain.BookingStatusConfirmed

	s := NewService(bookings, 5)
	s.ClearFilters()
	s.SetStatusFilter(domain.BookingStatusConfirmed, true)

	v := s.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, []string{"6", "4", "1"}, responseIDs(v.Bookings))
	require.Len(t, v.AppliedFilters, 1)
	assert.Equal(t, "Status: Confirmed", v.AppliedFilters[0].Label)

	assert.True(t, s.RemoveFilter(v.AppliedFilters[0].ID))
	v = s.View()
	assert.Equal(t, 7, v.TotalCount)
	assert.Empty(t, v.AppliedFilters)
	assert.False(t, v.HasFilters)
}

func responseIDs(bookings []domain.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

// Removing any one pill must omit exactly that item from the re-derived
// projection and leave every other item unchanged.
func TestService_RemovalSymmetry(t *testing.T) {
	activateAll := func() *Service {
		s := serviceFixture(t, 12, 5)
		s.ClearFilters()
		s.SetStatusFilter(domain.BookingStatusConfirmed, true)
		s.SetStatusFilter(domain.BookingStatusVouchered, true)
		s.SetRefNo("REF")
		s.SetBookingMethod(BookingMethodManual, true)
		s.SetAgencyCategory(AgencyCategoryLarge, true)
		s.SetHotelSources([]string{"Agoda", "ClearTrip"})
		s.SetTripType(TripTypeDomestic)
		s.SetBookingDateRange("2024-01-01", "2024-02-01")
		s.SetCheckInDateRange("2024-04-01", "")
		s.SetHotelName("Aman")
		s.SetAgencyName("Global")
		s.SetGuestName("John")
		s.SetWithoutHCN(true)
		s.SetCancellationDateExpired(true)
		return s
	}

	baseline := activateAll().View().AppliedFilters
	require.NotEmpty(t, baseline)

	for _, target := range baseline {
		s := activateAll()
		require.True(t, s.RemoveFilter(target.ID), target.ID)

		after := s.View().AppliedFilters
		assert.Len(t, after, len(baseline)-1, target.ID)

		var want []AppliedFilter
		for _, item := range baseline {
			if item.ID != target.ID {
				want = append(want, item)
			}
		}
		assert.Equal(t, want, after, "removing %s must not disturb other items", target.ID)
	}
}

func TestService_RemoveFilterDoubleRemovalIsNoOp(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	s.SetGuestName("John")

	assert.True(t, s.RemoveFilter("guestName"))
	s.SetPage(2)
	// The second removal changes nothing, including the current page.
	assert.False(t, s.RemoveFilter("guestName"))
	assert.Equal(t, 2, s.View().Page)
}

func TestService_RemoveFilterUnknownIDIsNoOp(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	assert.False(t, s.RemoveFilter("nonsense"))
	assert.False(t, s.RemoveFilter("status-archived"))
	assert.False(t, s.RemoveFilter("hotelSource-Agoda"))
}

func TestService_RemoveHotelSourceRemovesSingleMember(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	s.SetHotelSources([]string{"Agoda", "Desiya", "ClearTrip"})

	require.True(t, s.RemoveFilter("hotelSource-Desiya"))

	var sources []string
	for _, item := range s.View().AppliedFilters {
		if item.ID == "hotelSource-Agoda" || item.ID == "hotelSource-Desiya" || item.ID == "hotelSource-ClearTrip" {
			sources = append(sources, item.ID)
		}
	}
	assert.Equal(t, []string{"hotelSource-Agoda", "hotelSource-ClearTrip"}, sources)
}

func TestService_ClearFiltersDeactivatesEverything(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	s.SetGuestName("John")
	s.SetHotelSources([]string{"Agoda"})

	s.ClearFilters()
	v := s.View()
	assert.Empty(t, v.AppliedFilters)
	assert.False(t, v.HasFilters)
	// With all status toggles off the status filter is inactive.
	assert.Equal(t, 12, v.TotalCount)
}

func TestService_UpdateFiltersAppliesOnlySetFields(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	ref := "REF000003"
	s.UpdateFilters(FilterUpdate{RefNo: &ref})

	v := s.View()
	assert.Equal(t, 1, v.TotalCount)

	// A later partial update must not disturb the earlier one.
	hotel := "Aman"
	s.UpdateFilters(FilterUpdate{HotelName: &hotel})
	v = s.View()
	assert.Equal(t, 1, v.TotalCount)

	labels := map[string]bool{}
	for _, item := range v.AppliedFilters {
		labels[item.ID] = true
	}
	assert.True(t, labels["refNo"])
	assert.True(t, labels["hotelName"])
}

func TestService_UpdateFiltersDateRangeKeepsOtherBound(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	start := "2024-04-01"
	s.UpdateFilters(FilterUpdate{CheckInDateStart: &start})
	end := "2024-04-03"
	s.UpdateFilters(FilterUpdate{CheckInDateEnd: &end})

	v := s.View()
	assert.Equal(t, 3, v.TotalCount)
	for _, item := range v.AppliedFilters {
		if item.ID == "checkInDates" {
			assert.Equal(t, "Check-in: Apr 1, 2024 - Apr 3, 2024", item.Label)
		}
	}
}

func TestService_UpdateStatusFilters(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	off := false
	on := true
	s.UpdateStatusFilters(StatusUpdate{Confirmed: &off, Cancelled: &on})

	v := s.View()
	// All fixture bookings are confirmed and the confirmed toggle is off.
	assert.Equal(t, 0, v.TotalCount)
}

func TestService_FilteredBookingsReturnsFullOrderedSet(t *testing.T) {
	s := serviceFixture(t, 12, 5)
	all := s.FilteredBookings()
	assert.Len(t, all, 12)
	assert.Equal(t, "12", all[0].ID)
	assert.Equal(t, "1", all[11].ID)
}

func TestService_CancellationCutLineConsistentAcrossPass(t *testing.T) {
	// A clock that advances on every sample would split the collection at
	// different instants unless captured once per pass.
	base := date(2024, time.March, 25)
	calls := 0
	s := NewService([]domain.Booking{
		{ID: "1", LastCancellationDate: base},
		{ID: "2", LastCancellationDate: base},
		{ID: "3", LastCancellationDate: base},
	}, 10, WithClock(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Hour)
	}))
	s.ClearFilters()
	s.SetCancellationDateExpired(true)

	v := s.View()
	// One instant for the whole pass: all three share the same fate.
	assert.Equal(t, 3, v.TotalCount)
}
