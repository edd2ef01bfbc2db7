package dashboard

import (
	"sort"
	"time"

	"bookingdesk/internal/domain"
)

// SortBookings orders bookings descending by the timestamp field the sort
// option selects, most recent first. The sort is stable, so ties keep their
// input order, and the input slice is never reordered in place. An unknown
// option returns the input order unchanged.
func SortBookings(bookings []domain.Booking, by SortOption) []domain.Booking {
	ordered := make([]domain.Booking, len(bookings))
	copy(ordered, bookings)

	var key func(domain.Booking) time.Time
	switch by {
	case SortByBookingDate:
		key = func(b domain.Booking) time.Time { return b.BookedTimestamp }
	case SortByCheckInDate:
		key = func(b domain.Booking) time.Time { return b.CheckInDate }
	case SortByCancellationDate:
		key = func(b domain.Booking) time.Time { return b.LastCancellationDate }
	default:
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return key(ordered[i]).After(key(ordered[j]))
	})
	return ordered
}
