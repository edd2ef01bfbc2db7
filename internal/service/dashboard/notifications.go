package dashboard

import (
	"time"

	"bookingdesk/internal/domain"
)

const (
	checkInSoonWindow          = 24 * time.Hour
	checkInUpcomingWindow      = 72 * time.Hour
	cancellationDeadlineWindow = 72 * time.Hour
)

// NotificationCounts summarizes bookings needing attention, computed over
// the full collection regardless of active filters.
type NotificationCounts struct {
	CancellationDeadline int `json:"cancellationDeadline"`
	CheckIn24Hours       int `json:"checkIn24Hours"`
	CheckIn72Hours       int `json:"checkIn72Hours"`
}

// countNotifications counts bookings whose cancellation deadline falls
// within the next 72 hours and bookings checking in within the next 24 and
// 72 hours. The 72-hour check-in count includes the 24-hour one.
func countNotifications(bookings []domain.Booking, now time.Time) NotificationCounts {
	var counts NotificationCounts
	for _, b := range bookings {
		if within(b.LastCancellationDate, now, cancellationDeadlineWindow) {
			counts.CancellationDeadline++
		}
		if within(b.CheckInDate, now, checkInSoonWindow) {
			counts.CheckIn24Hours++
		}
		if within(b.CheckInDate, now, checkInUpcomingWindow) {
			counts.CheckIn72Hours++
		}
	}
	return counts
}

func within(t, now time.Time, window time.Duration) bool {
	return t.After(now) && !t.After(now.Add(window))
}
