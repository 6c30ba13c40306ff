package bookings

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// buildReceiptPDF renders a one-page e-ticket with the full price breakdown.
func buildReceiptPDF(booking *Booking, breakdown *PriceBreakdown, username string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travely E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVELY E-TICKET")
	pdf.Ln(12)

	seat := "-"
	if booking.SeatNumber != nil && *booking.SeatNumber != "" {
		seat = *booking.SeatNumber
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref    : %s", booking.BookingRef),
		fmt.Sprintf("Passenger      : %s", username),
		fmt.Sprintf("Traveller Type : %s", booking.TravellerType),
		fmt.Sprintf("Route          : %s -> %s", breakdown.Origin, breakdown.Destination),
		fmt.Sprintf("Seat           : %s", seat),
		fmt.Sprintf("Booked At      : %s", booking.BookingTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Status         : %s", booking.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	priceLines := []string{
		fmt.Sprintf("Base Price     : %.2f", breakdown.BasePrice),
		fmt.Sprintf("Seats Left     : %d of %d", breakdown.SeatsLeft, breakdown.SeatsTotal),
		fmt.Sprintf("Demand Factor  : %.4f", breakdown.DemandFactor),
		fmt.Sprintf("Demand Price   : %.2f", breakdown.DemandPrice),
	}
	if breakdown.ChildApplied {
		priceLines = append(priceLines,
			fmt.Sprintf("Child Fare     : %.2f", breakdown.PriceAfterChild))
	}
	if breakdown.DiscountPct > 0 {
		priceLines = append(priceLines,
			fmt.Sprintf("Discount       : %.0f%%", breakdown.DiscountPct))
	}
	priceLines = append(priceLines,
		fmt.Sprintf("Total Paid     : %.2f", booking.PricePaid))

	for _, line := range priceLines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket covers one passenger and one seat. Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
