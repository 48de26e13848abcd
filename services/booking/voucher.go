package booking

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"cabtour/models"
	"cabtour/utils"

	"github.com/phpdave11/gofpdf"
)

// Voucher renders the customer's copy of a booking as a PDF. It returns
// the document and a download file name.
func (s *DefaultBookingService) Voucher(ctx context.Context, principal models.Principal, bookingID string) ([]byte, string, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if !principal.IsAdmin() && b.UserID != principal.ID {
		return nil, "", utils.NotFound("booking not found")
	}
	if b.Status == models.StatusCancelled {
		return nil, "", utils.Validation("status", "cancelled bookings have no voucher")
	}
	data, err := RenderVoucher(b)
	if err != nil {
		return nil, "", utils.Dependency("failed to render voucher", err)
	}
	return data, "voucher-" + b.BookingReference + ".pdf", nil
}

// RenderVoucher lays out a one-page A4 voucher.
func RenderVoucher(b *models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher "+b.BookingReference, false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := [][2]string{
		{"Reference", b.BookingReference},
		{"Status", strings.ToUpper(string(b.Status))},
		{"Trip", b.Title},
		{"Travel date", b.TravelDate},
		{"Time", b.Time},
		{"Pickup", b.PickupLocation},
		{"Drop", b.DropLocation},
		{"Passenger", b.UserName},
		{"Phone", b.UserPhone},
		{"Email", b.UserEmail},
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(fmt.Sprintf("%-12s: %s", l[0], safe(l[1]))))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: Rs. "+formatAmount(b.Price))
	pdf.Ln(12)

	if b.SpecialRequests != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr("Special requests: "+b.SpecialRequests), "", "", false)
		pdf.Ln(2)
	}
	if b.AdminNotes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr("Notes: "+b.AdminNotes), "", "", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this voucher to the driver at pickup. The fare shown is the price agreed at booking time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// formatAmount prints a price with two decimals and thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	var out []byte
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	if neg {
		return "-" + string(out) + frac
	}
	return string(out) + frac
}
