package admin

import (
	"context"
	"fmt"

	"cabtour/models"
	"cabtour/utils"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportColumns = []struct {
	title string
	width float64
	value func(b *models.Booking) interface{}
}{
	{"Reference", 24, func(b *models.Booking) interface{} { return b.BookingReference }},
	{"Status", 12, func(b *models.Booking) interface{} { return string(b.Status) }},
	{"Type", 8, func(b *models.Booking) interface{} { return string(b.BookingType) }},
	{"Title", 40, func(b *models.Booking) interface{} { return b.Title }},
	{"Price", 12, func(b *models.Booking) interface{} { return b.Price }},
	{"Travel date", 12, func(b *models.Booking) interface{} { return b.TravelDate }},
	{"Time", 8, func(b *models.Booking) interface{} { return b.Time }},
	{"Customer", 22, func(b *models.Booking) interface{} { return b.UserName }},
	{"Email", 28, func(b *models.Booking) interface{} { return b.UserEmail }},
	{"Phone", 16, func(b *models.Booking) interface{} { return b.UserPhone }},
	{"Pickup", 28, func(b *models.Booking) interface{} { return b.PickupLocation }},
	{"Drop", 28, func(b *models.Booking) interface{} { return b.DropLocation }},
	{"Created", 18, func(b *models.Booking) interface{} { return b.CreatedAt.Format("2006-01-02 15:04") }},
}

// ExportBookings renders every booking matching filter as an xlsx workbook.
func (s *DefaultAdminService) ExportBookings(ctx context.Context, filter models.BookingFilter) ([]byte, error) {
	if filter.Status != "" && !filter.Status.IsKnown() {
		return nil, utils.Validation("status", "invalid booking status")
	}
	bookings, err := s.Bookings.ListAll(ctx, filter)
	if err != nil {
		return nil, dependency("load bookings for export", err)
	}
	data, err := BookingsWorkbook(bookings)
	if err != nil {
		return nil, dependency("build export", err)
	}
	return data, nil
}

// BookingsWorkbook writes one header row and one row per booking.
func BookingsWorkbook(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, col.title)
		_ = f.SetCellStyle(exportSheet, cell, cell, header)
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheet, name, name, col.width)
	}

	for r := range bookings {
		for i, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(exportSheet, cell, col.value(&bookings[r])); err != nil {
				return nil, fmt.Errorf("error writing %s: %w", cell, err)
			}
		}
	}
	_ = f.SetPanes(exportSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
