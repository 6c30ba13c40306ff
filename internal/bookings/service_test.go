package bookings

import (
	"context"
	"errors"
	"testing"

	"travely/internal/catalog"
	"travely/internal/notifications"
	"travely/internal/users"
	"travely/pkg/logger"
)

// fakeRepo simulates the booking repository, including the serialized
// check-price-insert-decrement sequence, against in-memory route state.
type fakeRepo struct {
	routes   map[uint]*catalog.Route
	bookings []Booking
	nextID   uint
}

func newFakeRepo(routes ...*catalog.Route) *fakeRepo {
	r := &fakeRepo{routes: make(map[uint]*catalog.Route), nextID: 1}
	for _, route := range routes {
		r.routes[route.ID] = route
	}
	return r
}

func (r *fakeRepo) CreateWithSeatDecrement(ctx context.Context, booking *Booking, price PriceFunc) error {
	route, ok := r.routes[booking.RouteID]
	if !ok {
		return ErrRouteNotFound
	}
	if route.SeatsAvailable <= 0 {
		return ErrNoSeatsAvailable
	}

	inv := RouteInventory{
		ID:             route.ID,
		Origin:         route.Origin,
		Destination:    route.Destination,
		BasePrice:      route.BasePrice,
		SeatsTotal:     route.SeatsTotal,
		SeatsAvailable: route.SeatsAvailable,
	}
	pricePaid, err := price(inv)
	if err != nil {
		return err
	}
	booking.PricePaid = pricePaid
	booking.ID = r.nextID
	r.nextID++

	r.bookings = append(r.bookings, *booking)
	route.SeatsAvailable--
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uint) (*Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *fakeRepo) GetByUser(ctx context.Context, userID uint) ([]Booking, error) {
	var out []Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(ctx context.Context, page, limit int) ([]Booking, int64, error) {
	return r.bookings, int64(len(r.bookings)), nil
}

func (r *fakeRepo) GetOwner(ctx context.Context, bookingID uint) (*OwnerInfo, error) {
	for _, b := range r.bookings {
		if b.ID == bookingID {
			return &OwnerInfo{BookingID: b.ID, BookingRef: b.BookingRef, UserID: b.UserID}, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *fakeRepo) CountOnRouteThrough(ctx context.Context, routeID, bookingID uint) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.RouteID == routeID && b.ID <= bookingID {
			count++
		}
	}
	return count, nil
}

type fakeRouteReader struct {
	repo *fakeRepo
}

func (r *fakeRouteReader) GetByID(ctx context.Context, id uint) (*catalog.Route, error) {
	route, ok := r.repo.routes[id]
	if !ok {
		return nil, ErrRouteNotFound
	}
	return route, nil
}

type fakeUserReader struct {
	users map[uint]*users.User
}

func (r *fakeUserReader) GetByID(ctx context.Context, id uint) (*users.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserReader) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

type fixedDiscounts struct {
	pct float64
}

func (d *fixedDiscounts) BestFor(ctx context.Context, travellerType string, loyaltyPoints int) (float64, error) {
	return d.pct, nil
}

type recordingPublisher struct {
	events []notifications.BookingNotification
}

func (p *recordingPublisher) PublishBookingConfirmed(ctx context.Context, event notifications.BookingNotification) error {
	p.events = append(p.events, event)
	return nil
}

func newTestService(repo *fakeRepo, userReader *fakeUserReader, pct float64) (Service, *recordingPublisher) {
	publisher := &recordingPublisher{}
	svc := NewService(
		repo,
		&fakeRouteReader{repo: repo},
		userReader,
		&fixedDiscounts{pct: pct},
		publisher,
		nil,
		logger.New(),
	)
	return svc, publisher
}

func twoSeatRoute() *catalog.Route {
	return &catalog.Route{
		ID:             1,
		Origin:         "Hyderabad",
		Destination:    "Bangalore",
		TransportType:  "bus",
		BasePrice:      100.00,
		SeatsTotal:     2,
		SeatsAvailable: 2,
	}
}

func plainUser(id uint, name string) *users.User {
	return &users.User{ID: id, Username: name, Role: users.RoleUser}
}

func TestBookDemandPricingOnTwoSeatRoute(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, publisher := newTestService(repo, userReader, 0)
	ctx := context.Background()

	first, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if first.PricePaid != 100.00 {
		t.Errorf("first booking price = %v, want 100.00", first.PricePaid)
	}
	if first.Status != StatusConfirmed || string(first.Status) != "confirmed" {
		t.Errorf("booking status = %q, want confirmed", first.Status)
	}

	second, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}
	if second.PricePaid != 125.00 {
		t.Errorf("second booking price = %v, want 125.00", second.PricePaid)
	}

	_, err = svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1})
	if !errors.Is(err, ErrNoSeatsAvailable) {
		t.Errorf("third booking error = %v, want ErrNoSeatsAvailable", err)
	}

	if got := repo.routes[1].SeatsAvailable; got != 0 {
		t.Errorf("seats available after sellout = %d, want 0", got)
	}
	if len(publisher.events) != 2 {
		t.Errorf("published events = %d, want 2", len(publisher.events))
	}
}

func TestBookChildHalvesPrice(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, _ := newTestService(repo, userReader, 0)

	resp, err := svc.Book(context.Background(), 1, &CreateBookingRequest{
		RouteID:       1,
		TravellerType: "child",
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if resp.PricePaid != 50.00 {
		t.Errorf("child booking price = %v, want 50.00", resp.PricePaid)
	}
}

func TestBookAppliesBestDiscount(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, _ := newTestService(repo, userReader, 20)

	resp, err := svc.Book(context.Background(), 1, &CreateBookingRequest{RouteID: 1})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if resp.PricePaid != 80.00 {
		t.Errorf("discounted price = %v, want 80.00", resp.PricePaid)
	}
}

func TestBookUnknownRoute(t *testing.T) {
	repo := newFakeRepo()
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, publisher := newTestService(repo, userReader, 0)

	_, err := svc.Book(context.Background(), 1, &CreateBookingRequest{RouteID: 99})
	if !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("error = %v, want ErrRouteNotFound", err)
	}
	if len(publisher.events) != 0 {
		t.Errorf("published events on failure = %d, want 0", len(publisher.events))
	}
}

func TestBookUnknownUser(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{}}
	svc, _ := newTestService(repo, userReader, 0)

	_, err := svc.Book(context.Background(), 7, &CreateBookingRequest{RouteID: 1})
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
	if repo.routes[1].SeatsAvailable != 2 {
		t.Errorf("seats changed on failed booking")
	}
}

func TestExplainReconstructsRecordedPrices(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, _ := newTestService(repo, userReader, 0)
	ctx := context.Background()

	first, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	second, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	firstExplained, err := svc.Explain(ctx, first.ID)
	if err != nil {
		t.Fatalf("explain first: %v", err)
	}
	if firstExplained.SeatsLeft != 2 {
		t.Errorf("first booking seats left = %d, want 2", firstExplained.SeatsLeft)
	}
	if firstExplained.FinalPrice != firstExplained.RecordedPrice {
		t.Errorf("first reconstruction %v != recorded %v", firstExplained.FinalPrice, firstExplained.RecordedPrice)
	}

	secondExplained, err := svc.Explain(ctx, second.ID)
	if err != nil {
		t.Fatalf("explain second: %v", err)
	}
	if secondExplained.SeatsLeft != 1 {
		t.Errorf("second booking seats left = %d, want 1", secondExplained.SeatsLeft)
	}
	if secondExplained.DemandFactor != 1.25 {
		t.Errorf("second booking demand factor = %v, want 1.25", secondExplained.DemandFactor)
	}
	if secondExplained.FinalPrice != secondExplained.RecordedPrice {
		t.Errorf("second reconstruction %v != recorded %v", secondExplained.FinalPrice, secondExplained.RecordedPrice)
	}
}

func TestExplainUnknownBooking(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, _ := newTestService(repo, userReader, 0)

	_, err := svc.Explain(context.Background(), 42)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("error = %v, want ErrBookingNotFound", err)
	}
}

func TestExplainUserBookingsTotals(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{1: plainUser(1, "anna")}}
	svc, _ := newTestService(repo, userReader, 0)
	ctx := context.Background()

	if _, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.Book(ctx, 1, &CreateBookingRequest{RouteID: 1}); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	report, err := svc.ExplainUserBookings(ctx, "anna")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report.Bookings) != 2 {
		t.Fatalf("report bookings = %d, want 2", len(report.Bookings))
	}
	if report.GrandTotal != 225.00 {
		t.Errorf("grand total = %v, want 225.00", report.GrandTotal)
	}
	if report.RouteTotals[1] != 225.00 {
		t.Errorf("route total = %v, want 225.00", report.RouteTotals[1])
	}
}

func TestExplainUserBookingsUnknownUser(t *testing.T) {
	repo := newFakeRepo(twoSeatRoute())
	userReader := &fakeUserReader{users: map[uint]*users.User{}}
	svc, _ := newTestService(repo, userReader, 0)

	_, err := svc.ExplainUserBookings(context.Background(), "ghost")
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}
