package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"travely/internal/catalog"
	"travely/internal/notifications"
	"travely/internal/users"
	"travely/pkg/logger"
)

// DiscountResolver picks the best discount percentage for a traveller.
type DiscountResolver interface {
	BestFor(ctx context.Context, travellerType string, loyaltyPoints int) (float64, error)
}

// RouteReader is the slice of the catalog the booking engine needs.
type RouteReader interface {
	GetByID(ctx context.Context, id uint) (*catalog.Route, error)
}

// UserReader resolves buyers by id or name.
type UserReader interface {
	GetByID(ctx context.Context, id uint) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
}

// Publisher announces confirmed bookings. Implementations must be safe to
// call concurrently; failures are logged and never fail the booking.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event notifications.BookingNotification) error
}

// CacheInvalidator drops cached route views after seat counts change.
type CacheInvalidator interface {
	InvalidateRouteCache(ctx context.Context, routeID uint)
}

type Service interface {
	Book(ctx context.Context, userID uint, req *CreateBookingRequest) (*BookingResponse, error)
	GetBookingByID(ctx context.Context, id uint) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uint) ([]BookingResponse, error)
	ListBookings(ctx context.Context, page, limit int) (*PaginatedBookings, error)
	Owner(ctx context.Context, bookingID uint) (*OwnerInfo, error)
	Explain(ctx context.Context, bookingID uint) (*PriceBreakdown, error)
	ExplainUserBookings(ctx context.Context, username string) (*UserBookingsReport, error)
	Receipt(ctx context.Context, bookingID uint) ([]byte, error)
}

type service struct {
	repo        Repository
	routes      RouteReader
	userReader  UserReader
	discounts   DiscountResolver
	publisher   Publisher
	invalidator CacheInvalidator
	log         *logger.Logger
}

func NewService(
	repo Repository,
	routes RouteReader,
	userReader UserReader,
	discounts DiscountResolver,
	publisher Publisher,
	invalidator CacheInvalidator,
	log *logger.Logger,
) Service {
	return &service{
		repo:        repo,
		routes:      routes,
		userReader:  userReader,
		discounts:   discounts,
		publisher:   publisher,
		invalidator: invalidator,
		log:         log,
	}
}

// Book confirms a seat on a route. Demand pricing, the child rule and the
// best discount all resolve inside the route row lock, against the seat count
// as it stood before this booking.
func (s *service) Book(ctx context.Context, userID uint, req *CreateBookingRequest) (*BookingResponse, error) {
	buyer, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	travellerType := req.TravellerType
	if travellerType == "" {
		travellerType = string(TravellerAdult)
	}

	discountPct, err := s.discounts.BestFor(ctx, travellerType, buyer.LoyaltyPoints)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		BookingRef:    uuid.NewString(),
		UserID:        userID,
		RouteID:       req.RouteID,
		SeatNumber:    req.SeatNumber,
		TravellerType: travellerType,
		Status:        StatusConfirmed,
		BookingTime:   time.Now().UTC(),
	}

	err = s.repo.CreateWithSeatDecrement(ctx, booking, func(inv RouteInventory) (float64, error) {
		demandPrice := DemandPrice(inv.BasePrice, inv.SeatsAvailable, inv.SeatsTotal)
		finalPrice, _ := ApplyTravellerPricing(demandPrice, TravellerType(travellerType), discountPct)
		return finalPrice, nil
	})
	if err != nil {
		s.log.LogBookingRejected(ctx, req.RouteID, userID, err.Error())
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.BookingRef, booking.RouteID, booking.UserID, booking.PricePaid)

	if s.invalidator != nil {
		s.invalidator.InvalidateRouteCache(ctx, booking.RouteID)
	}

	s.publishConfirmed(ctx, booking, buyer.Username)

	resp := booking.ToResponse()
	return &resp, nil
}

// publishConfirmed is best-effort: broker trouble is logged, never surfaced.
func (s *service) publishConfirmed(ctx context.Context, booking *Booking, username string) {
	if s.publisher == nil {
		return
	}

	event := notifications.BookingNotification{
		Type:        notifications.TypeBookingConfirmed,
		BookingID:   booking.ID,
		BookingRef:  booking.BookingRef,
		UserID:      booking.UserID,
		Username:    username,
		RouteID:     booking.RouteID,
		PricePaid:   booking.PricePaid,
		BookingTime: booking.BookingTime,
	}

	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		s.log.WithError(err).Warn("failed to publish booking confirmation")
	}
}

func (s *service) GetBookingByID(ctx context.Context, id uint) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uint) ([]BookingResponse, error) {
	bookings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = b.ToResponse()
	}
	return responses, nil
}

func (s *service) ListBookings(ctx context.Context, page, limit int) (*PaginatedBookings, error) {
	bookings, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = b.ToResponse()
	}
	return &PaginatedBookings{
		Bookings: responses,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (s *service) Owner(ctx context.Context, bookingID uint) (*OwnerInfo, error) {
	return s.repo.GetOwner(ctx, bookingID)
}

// Explain reconstructs the full pricing pipeline of a past booking. The seat
// count at booking time is recovered from how many bookings the route had
// accumulated up to that id: each booking took one seat, and this one saw the
// inventory before taking its own.
func (s *service) Explain(ctx context.Context, bookingID uint) (*PriceBreakdown, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.explainBooking(ctx, booking)
}

func (s *service) explainBooking(ctx context.Context, booking *Booking) (*PriceBreakdown, error) {
	route, err := s.routes.GetByID(ctx, booking.RouteID)
	if err != nil {
		if errors.Is(err, catalog.ErrRouteNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	taken, err := s.repo.CountOnRouteThrough(ctx, booking.RouteID, booking.ID)
	if err != nil {
		return nil, err
	}
	seatsLeft := route.SeatsTotal - int(taken) + 1

	buyer, err := s.userReader.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}

	discountPct, err := s.discounts.BestFor(ctx, booking.TravellerType, buyer.LoyaltyPoints)
	if err != nil {
		return nil, err
	}

	factor := DemandFactor(seatsLeft, route.SeatsTotal)
	demandPrice := DemandPrice(route.BasePrice, seatsLeft, route.SeatsTotal)
	finalPrice, priceAfterChild := ApplyTravellerPricing(
		demandPrice, TravellerType(booking.TravellerType), discountPct)

	return &PriceBreakdown{
		BookingID:       booking.ID,
		BookingRef:      booking.BookingRef,
		RouteID:         route.ID,
		Origin:          route.Origin,
		Destination:     route.Destination,
		TravellerType:   booking.TravellerType,
		BasePrice:       route.BasePrice,
		SeatsTotal:      route.SeatsTotal,
		SeatsLeft:       seatsLeft,
		DemandFactor:    factor,
		DemandPrice:     demandPrice,
		ChildApplied:    TravellerType(booking.TravellerType) == TravellerChild,
		PriceAfterChild: priceAfterChild,
		DiscountPct:     discountPct,
		FinalPrice:      finalPrice,
		RecordedPrice:   booking.PricePaid,
	}, nil
}

// ExplainUserBookings produces a breakdown for every booking a user holds,
// plus totals per route and overall.
func (s *service) ExplainUserBookings(ctx context.Context, username string) (*UserBookingsReport, error) {
	user, err := s.userReader.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	report := &UserBookingsReport{
		Username:    user.Username,
		Bookings:    make([]PriceBreakdown, 0, len(bookings)),
		RouteTotals: make(map[uint]float64),
	}

	for i := range bookings {
		breakdown, err := s.explainBooking(ctx, &bookings[i])
		if err != nil {
			return nil, err
		}
		report.Bookings = append(report.Bookings, *breakdown)
		report.RouteTotals[breakdown.RouteID] += breakdown.RecordedPrice
		report.GrandTotal += breakdown.RecordedPrice
	}

	return report, nil
}

// Receipt renders the e-ticket PDF for a booking.
func (s *service) Receipt(ctx context.Context, bookingID uint) ([]byte, error) {
	breakdown, err := s.Explain(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetOwner(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return buildReceiptPDF(booking, breakdown, owner.Username)
}
