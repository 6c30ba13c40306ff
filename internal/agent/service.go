package agent

import (
	"context"
	"errors"
	"fmt"

	"travely/internal/bookings"
	"travely/internal/users"
	"travely/pkg/logger"
)

// HelpText lists the commands the agent accepts, returned for "help" and for
// anything it cannot parse.
const HelpText = `Travel Booking Agent commands:
  "show booking 1"                  - price breakdown for booking 1
  "explain booking 2"               - same as above
  "show bookings 1, 2, 3"           - breakdowns plus the summed total
  "who owns booking 1"              - which user holds booking 1
  "show all bookings"               - every booking in the system
  "show me all bookings under anna" - full breakdowns for a user
  "total price for user anna"       - route-wise summary and grand total
  "help"                            - this text`

// BookingReader is the slice of the booking service the agent drives.
type BookingReader interface {
	Explain(ctx context.Context, bookingID uint) (*bookings.PriceBreakdown, error)
	ExplainUserBookings(ctx context.Context, username string) (*bookings.UserBookingsReport, error)
	Owner(ctx context.Context, bookingID uint) (*bookings.OwnerInfo, error)
	ListBookings(ctx context.Context, page, limit int) (*bookings.PaginatedBookings, error)
}

type Service interface {
	Execute(ctx context.Context, input string) (*CommandResponse, error)
}

type service struct {
	bookings BookingReader
	log      *logger.Logger
}

func NewService(bookingReader BookingReader, log *logger.Logger) Service {
	return &service{bookings: bookingReader, log: log}
}

// Execute parses and runs one command. Lookup misses become readable result
// strings instead of errors; the agent never turns bad input into a failure.
func (s *service) Execute(ctx context.Context, input string) (*CommandResponse, error) {
	cmd := Parse(input)
	s.log.WithFields(map[string]interface{}{
		"intent": cmd.Intent,
		"input":  input,
	}).Info("agent command")

	resp := &CommandResponse{Parsed: cmd}

	switch cmd.Intent {
	case IntentExplainBooking:
		breakdown, err := s.bookings.Explain(ctx, cmd.BookingID)
		if err != nil {
			if errors.Is(err, bookings.ErrBookingNotFound) {
				resp.Result = fmt.Sprintf("Booking %d not found", cmd.BookingID)
				return resp, nil
			}
			return nil, err
		}
		resp.Result = breakdown

	case IntentMultipleBookings:
		var breakdowns []bookings.PriceBreakdown
		total := 0.0
		for _, id := range cmd.BookingIDs {
			breakdown, err := s.bookings.Explain(ctx, id)
			if err != nil {
				if errors.Is(err, bookings.ErrBookingNotFound) {
					continue
				}
				return nil, err
			}
			breakdowns = append(breakdowns, *breakdown)
			total += breakdown.FinalPrice
		}
		resp.Result = map[string]interface{}{
			"bookings": breakdowns,
			"total":    total,
		}

	case IntentUserBookings:
		report, err := s.bookings.ExplainUserBookings(ctx, cmd.Username)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				resp.Result = fmt.Sprintf("No user found with name %q", cmd.Username)
				return resp, nil
			}
			return nil, err
		}
		resp.Result = report

	case IntentUserTotal:
		report, err := s.bookings.ExplainUserBookings(ctx, cmd.Username)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				resp.Result = fmt.Sprintf("No user found with name %q", cmd.Username)
				return resp, nil
			}
			return nil, err
		}
		// Summary only: totals without the per-booking breakdowns
		resp.Result = map[string]interface{}{
			"username":     report.Username,
			"route_totals": report.RouteTotals,
			"grand_total":  report.GrandTotal,
		}

	case IntentBookingOwner:
		owner, err := s.bookings.Owner(ctx, cmd.BookingID)
		if err != nil {
			if errors.Is(err, bookings.ErrBookingNotFound) {
				resp.Result = fmt.Sprintf("Booking %d not found", cmd.BookingID)
				return resp, nil
			}
			return nil, err
		}
		resp.Result = owner

	case IntentAllBookings:
		listing, err := s.bookings.ListBookings(ctx, 1, 100)
		if err != nil {
			return nil, err
		}
		resp.Result = listing

	case IntentHelp, IntentUnknown:
		resp.Result = HelpText
	}

	return resp, nil
}
