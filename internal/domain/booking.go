package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusVouchered BookingStatus = "Vouchered"
)

// Booking is one hotel reservation record. Records are immutable once
// generated; the dashboard only filters, sorts and slices them.
type Booking struct {
	ID                   string
	AgencyName           string
	HotelName            string
	Status               BookingStatus
	LastVoucherDate      time.Time
	LastCancellationDate time.Time
	// HotelConfNo and RefNo may hold a comma-joined list when the record
	// represents a multi-booking group.
	HotelConfNo     string
	ConfNo          string
	RefNo           string
	LeadGuestName   string
	BookedTimestamp time.Time
	NumberOfGuests  int
	NumberOfRooms   int
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfNights  int
}

// HotelConfNos splits a multi-booking group confirmation list into its
// individual numbers.
func (b Booking) HotelConfNos() []string {
	return splitNumbers(b.HotelConfNo)
}

// RefNos splits a multi-booking group reference list into its individual
// numbers.
func (b Booking) RefNos() []string {
	return splitNumbers(b.RefNo)
}

func splitNumbers(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// RoomOccupancy is the per-room guest breakdown shown when a booking card is
// expanded.
type RoomOccupancy struct {
	RoomNumber int
	Adults     int
	Children   int
	Infants    int
}

// RoomOccupancies derives the per-room breakdown: the lead room carries two
// adults and one child, every additional room a single adult.
func (b Booking) RoomOccupancies() []RoomOccupancy {
	rooms := make([]RoomOccupancy, 0, b.NumberOfRooms)
	for i := 0; i < b.NumberOfRooms; i++ {
		r := RoomOccupancy{RoomNumber: i + 1, Adults: 1}
		if i == 0 {
			r.Adults = 2
			r.Children = 1
		}
		rooms = append(rooms, r)
	}
	return rooms
}
