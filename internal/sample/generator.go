// Package sample supplies the immutable booking collection the dashboard
// operates on. Generation is deterministic for a given seed.
package sample

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"bookingdesk/internal/domain"
)

var hotels = []string{
	"Mandarin Oriental Tokyo Premier Suite Palace, Tokyo Japan",
	"The Ritz-Carlton Grand Cayman Seven Mile Beach Resort & Residences",
	"InterContinental Maldives Maamunagau Resort, an IHG Hotel",
	"Waldorf Astoria Dubai Palm Jumeirah with All-Inclusive Premium Package",
	"The Peninsula Bangkok Luxury River View Suite with Helicopter Transfer",
	"Four Seasons Resort Bora Bora Overwater Villa with Mount Otemanu View",
	"Burj Al Arab Jumeirah Dubai Royal Two Bedroom Suite",
	"Atlantis The Royal Dubai Grand Ultra Luxury Suite",
	"Raffles Singapore Presidential Suite with Butler Service",
	"Aman Tokyo Premier Room with City View",
}

var agencies = []string{
	"Global Travel Solutions",
	"Sunset Travels",
	"Mountain Expeditions",
	"Luxury Escapes",
}

var guests = []string{
	"John Smith",
	"Sarah Johnson",
	"Michael Brown",
	"Emma Wilson",
	"David Chen",
	"Sophie Martinez",
	"James Taylor",
	"Isabella Kim",
	"William Davis",
	"Olivia Garcia",
}

// statusPool weights vouchered bookings twice as heavily, matching the
// sample distribution the dashboard was designed around.
var statusPool = []domain.BookingStatus{
	domain.BookingStatusConfirmed,
	domain.BookingStatusPending,
	domain.BookingStatusVouchered,
	domain.BookingStatusVouchered,
}

// Multi-booking group numbers carried by the first record.
const (
	groupHotelConfNos = "99467216,99467234,99467222,99467219,99467221"
	groupRefNos       = "419800775,419800779,419800783,419800786,419800791"
)

// Generate builds size bookings. Check-in dates walk forward from April
// 2024, one month per twenty records; booked, voucher and cancellation dates
// are all anchored before check-in, and the number of nights always equals
// the check-in/check-out day difference.
func Generate(size int, seed int64) []domain.Booking {
	rng := rand.New(rand.NewSource(seed))

	bookings := make([]domain.Booking, 0, size)
	for i := 0; i < size; i++ {
		checkIn := time.Date(2024, time.Month(4+i/20), 1+i%20, 0, 0, 0, 0, time.UTC)
		nights := 3 + rng.Intn(5)
		checkOut := checkIn.AddDate(0, 0, nights)
		booked := checkIn.AddDate(0, 0, -(30 + rng.Intn(30)))
		voucher := checkIn.AddDate(0, 0, -5)
		cancellation := checkIn.AddDate(0, 0, -7)

		b := domain.Booking{
			ID:                   strconv.Itoa(i + 1),
			AgencyName:           agencies[i%len(agencies)],
			HotelName:            hotels[i%len(hotels)],
			Status:               statusPool[rng.Intn(len(statusPool))],
			LastVoucherDate:      voucher,
			LastCancellationDate: cancellation,
			HotelConfNo:          fmt.Sprintf("HCN%06d", i+1),
			ConfNo:               fmt.Sprintf("CNF%06d", i+1),
			RefNo:                fmt.Sprintf("REF%06d", i+1),
			LeadGuestName:        guests[i%len(guests)],
			BookedTimestamp:      booked,
			NumberOfGuests:       1 + rng.Intn(4),
			NumberOfRooms:        1 + rng.Intn(2),
			CheckInDate:          checkIn,
			CheckOutDate:         checkOut,
			NumberOfNights:       nights,
		}

		// The first record is a multi-booking group with comma-joined
		// confirmation and reference lists.
		if i == 0 {
			b.HotelConfNo = groupHotelConfNos
			b.RefNo = groupRefNos
		}

		bookings = append(bookings, b)
	}
	return bookings
}
