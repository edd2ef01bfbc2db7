package dashboard

import (
	"testing"
	"time"

	"bookingdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sortFixture() []domain.Booking {
	return []domain.Booking{
		{
			ID:                   "a",
			BookedTimestamp:      date(2024, time.January, 10),
			CheckInDate:          date(2024, time.April, 3),
			LastCancellationDate: date(2024, time.March, 27),
		},
		{
			ID:                   "b",
			BookedTimestamp:      date(2024, time.February, 5),
			CheckInDate:          date(2024, time.April, 1),
			LastCancellationDate: date(2024, time.March, 25),
		},
		{
			ID:                   "c",
			BookedTimestamp:      date(2024, time.January, 20),
			CheckInDate:          date(2024, time.April, 2),
			LastCancellationDate: date(2024, time.March, 26),
		},
	}
}

func ids(bookings []domain.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestSortBookings_ByBookingDateDescending(t *testing.T) {
	ordered := SortBookings(sortFixture(), SortByBookingDate)
	assert.Equal(t, []string{"b", "c", "a"}, ids(ordered))
}

func TestSortBookings_ByCheckInDateDescending(t *testing.T) {
	ordered := SortBookings(sortFixture(), SortByCheckInDate)
	assert.Equal(t, []string{"a", "c", "b"}, ids(ordered))
}

func TestSortBookings_ByCancellationDateDescending(t *testing.T) {
	ordered := SortBookings(sortFixture(), SortByCancellationDate)
	assert.Equal(t, []string{"a", "c", "b"}, ids(ordered))
}

func TestSortBookings_UnknownOptionKeepsInputOrder(t *testing.T) {
	ordered := SortBookings(sortFixture(), SortOption("price"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(ordered))
}

func TestSortBookings_DoesNotMutateInput(t *testing.T) {
	input := sortFixture()
	_ = SortBookings(input, SortByBookingDate)
	assert.Equal(t, []string{"a", "b", "c"}, ids(input))
}

func TestSortBookings_StableForEqualKeys(t *testing.T) {
	same := date(2024, time.January, 15)
	input := []domain.Booking{
		{ID: "x", BookedTimestamp: same},
		{ID: "y", BookedTimestamp: same},
		{ID: "z", BookedTimestamp: same},
	}
	ordered := SortBookings(input, SortByBookingDate)
	assert.Equal(t, []string{"x", "y", "z"}, ids(ordered))
}

func TestSortBookings_Deterministic(t *testing.T) {
	first := SortBookings(sortFixture(), SortByCheckInDate)
	second := SortBookings(first, SortByCheckInDate)
	assert.Equal(t, ids(first), ids(second))
}
