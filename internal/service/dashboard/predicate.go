package dashboard

import (
	"strings"
	"time"

	"bookingdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// Matches evaluates one booking against the composite filter state. The
// result is the conjunction of independent sub-predicates; each passes
// vacuously when its filter is inactive. Booking method, agency category,
// hotel source, trip type, booking-date range and without-HCN are reserved:
// they appear as applied filters but do not narrow the result.
//
// The evaluation instant must be captured once per pass so the
// cancellation-expired cut-line is consistent across the whole collection.
func Matches(b domain.Booking, f Filters, sf StatusFilters, now time.Time) bool {
	if sf.Any() && !sf.allows(b.Status) {
		return false
	}
	if !containsFold(b.RefNo, f.RefNo) {
		return false
	}
	if !containsFold(b.HotelName, f.HotelName) {
		return false
	}
	if !containsFold(b.AgencyName, f.AgencyName) {
		return false
	}
	if !containsFold(b.LeadGuestName, f.GuestName) {
		return false
	}
	if !withinCheckInRange(b.CheckInDate, f.CheckInDateStart, f.CheckInDateEnd) {
		return false
	}
	if f.CancellationDateExpired && !b.LastCancellationDate.Before(now) {
		return false
	}
	return true
}

// FilterBookings returns the bookings passing the composite filter, in input
// order. The input slice is never mutated.
func FilterBookings(bookings []domain.Booking, f Filters, sf StatusFilters, now time.Time) []domain.Booking {
	matched := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if Matches(b, f, sf, now) {
			matched = append(matched, b)
		}
	}
	return matched
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

// withinCheckInRange checks inclusive containment against optional bounds.
// A bound that is set but unparseable fails the predicate instead of
// panicking or silently widening the range.
func withinCheckInRange(checkIn time.Time, start, end string) bool {
	if start != "" {
		from, err := time.Parse(dateLayout, start)
		if err != nil || checkIn.Before(from) {
			return false
		}
	}
	if end != "" {
		to, err := time.Parse(dateLayout, end)
		if err != nil || checkIn.After(to) {
			return false
		}
	}
	return true
}
