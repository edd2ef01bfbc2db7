package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_SplitsMultiBookingGroupNumbers(t *testing.T) {
	b := Booking{
		HotelConfNo: "99467216,99467234, 99467222",
		RefNo:       "419800775",
	}
	assert.Equal(t, []string{"99467216", "99467234", "99467222"}, b.HotelConfNos())
	assert.Equal(t, []string{"419800775"}, b.RefNos())
	assert.Nil(t, Booking{}.RefNos())
}

func TestBooking_RoomOccupancies(t *testing.T) {
	b := Booking{NumberOfRooms: 3}
	rooms := b.RoomOccupancies()
	assert.Equal(t, []RoomOccupancy{
		{RoomNumber: 1, Adults: 2, Children: 1},
		{RoomNumber: 2, Adults: 1},
		{RoomNumber: 3, Adults: 1},
	}, rooms)

	assert.Empty(t, Booking{}.RoomOccupancies())
}
