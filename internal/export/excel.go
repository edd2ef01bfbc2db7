// Package export writes the filtered booking queue as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"bookingdesk/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single worksheet holding the exported rows.
	SheetName = "Bookings"
	// FileName is the download name offered to the client.
	FileName = "bookings.xlsx"
	// ContentType is the xlsx MIME type.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	dateFormat      = "01/02/2006"
	timestampFormat = "01/02/2006 3:04 PM"
	isoDateFormat   = "2006-01-02"
)

var header = []interface{}{
	"Agency Name",
	"Hotel Name",
	"Status",
	"Lead Guest",
	"Guests",
	"Rooms",
	"Nights",
	"Check-in",
	"Check-out",
	"Booked On",
	"Last Voucher Date",
	"Last Cancellation Date",
	"Hotel Conf",
	"Conf No",
	"Ref No",
}

// WriteBookings writes one row per booking, full filtered-and-sorted set,
// to w as an xlsx workbook with a single Bookings sheet.
func WriteBookings(w io.Writer, bookings []domain.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			b.AgencyName,
			b.HotelName,
			string(b.Status),
			b.LeadGuestName,
			b.NumberOfGuests,
			b.NumberOfRooms,
			b.NumberOfNights,
			b.CheckInDate.Format(dateFormat),
			b.CheckOutDate.Format(dateFormat),
			b.BookedTimestamp.Format(timestampFormat),
			b.LastVoucherDate.Format(isoDateFormat),
			b.LastCancellationDate.Format(isoDateFormat),
			b.HotelConfNo,
			b.ConfNo,
			b.RefNo,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
