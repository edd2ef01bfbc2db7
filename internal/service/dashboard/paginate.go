package dashboard

import "bookingdesk/internal/domain"

// Paginate slices the 1-based page out of an ordered collection and returns
// it together with the total page count. An out-of-range page yields an
// empty slice, never an error; clamping the page number back into range is
// the caller's job (it happens through the page-reset-on-change rule).
func Paginate(bookings []domain.Booking, page, pageSize int) ([]domain.Booking, int) {
	if pageSize <= 0 {
		return []domain.Booking{}, 0
	}
	totalPages := (len(bookings) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(bookings) {
		return []domain.Booking{}, totalPages
	}
	end := start + pageSize
	if end > len(bookings) {
		end = len(bookings)
	}
	return bookings[start:end], totalPages
}
