package discounts

import (
	"context"
	"testing"

	"travely/pkg/logger"
)

type fakeRepo struct {
	Repository
	discounts []Discount
	capped    float64
}

func (r *fakeRepo) ListApplicable(ctx context.Context, travellerType string, loyaltyPoints int) ([]Discount, error) {
	var out []Discount
	for _, d := range r.discounts {
		typeMatches := d.UserType == "" || d.UserType == travellerType
		if typeMatches && d.MinPoints <= loyaltyPoints {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeRepo) CapPercentages(ctx context.Context, maxPercentage float64) (int64, error) {
	var count int64
	for i := range r.discounts {
		if r.discounts[i].Percentage > maxPercentage {
			r.discounts[i].Percentage = maxPercentage
			count++
		}
	}
	r.capped = maxPercentage
	return count, nil
}

func TestBestForPicksHighestPercentage(t *testing.T) {
	repo := &fakeRepo{discounts: []Discount{
		{ID: 1, Name: "A", Percentage: 10},
		{ID: 2, Name: "B", Percentage: 30},
		{ID: 3, Name: "C", Percentage: 20},
	}}
	svc := NewService(repo, logger.New())

	best, err := svc.BestFor(context.Background(), "adult", 0)
	if err != nil {
		t.Fatalf("BestFor failed: %v", err)
	}
	if best != 30 {
		t.Errorf("best = %v, want 30", best)
	}
}

func TestBestForZeroWhenNothingQualifies(t *testing.T) {
	repo := &fakeRepo{discounts: []Discount{
		{ID: 1, Name: "Loyalty", Percentage: 25, MinPoints: 500},
	}}
	svc := NewService(repo, logger.New())

	best, err := svc.BestFor(context.Background(), "adult", 100)
	if err != nil {
		t.Fatalf("BestFor failed: %v", err)
	}
	if best != 0 {
		t.Errorf("best = %v, want 0", best)
	}
}

func TestBestForRespectsUserType(t *testing.T) {
	repo := &fakeRepo{discounts: []Discount{
		{ID: 1, Name: "Child Only", Percentage: 40, UserType: "child"},
		{ID: 2, Name: "Anyone", Percentage: 15},
	}}
	svc := NewService(repo, logger.New())

	adultBest, err := svc.BestFor(context.Background(), "adult", 0)
	if err != nil {
		t.Fatalf("BestFor failed: %v", err)
	}
	if adultBest != 15 {
		t.Errorf("adult best = %v, want 15", adultBest)
	}

	childBest, err := svc.BestFor(context.Background(), "child", 0)
	if err != nil {
		t.Fatalf("BestFor failed: %v", err)
	}
	if childBest != 40 {
		t.Errorf("child best = %v, want 40", childBest)
	}
}

func TestCapPercentages(t *testing.T) {
	repo := &fakeRepo{discounts: []Discount{
		{ID: 1, Name: "Reasonable", Percentage: 20},
		{ID: 2, Name: "Excessive", Percentage: 80},
		{ID: 3, Name: "Borderline", Percentage: 50},
	}}
	svc := NewService(repo, logger.New())

	capped, err := svc.CapPercentages(context.Background())
	if err != nil {
		t.Fatalf("CapPercentages failed: %v", err)
	}
	if capped != 1 {
		t.Errorf("capped = %d, want 1", capped)
	}
	if repo.discounts[1].Percentage != MaxPercentage {
		t.Errorf("excessive discount = %v, want %v", repo.discounts[1].Percentage, MaxPercentage)
	}
	if repo.discounts[2].Percentage != 50 {
		t.Errorf("borderline discount changed to %v", repo.discounts[2].Percentage)
	}
}
