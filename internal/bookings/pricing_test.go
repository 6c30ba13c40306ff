package bookings

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDemandFactor(t *testing.T) {
	tests := []struct {
		name       string
		seatsLeft  int
		seatsTotal int
		want       float64
	}{
		{"full availability", 100, 100, 1.0},
		{"half sold", 50, 100, 1.25},
		{"last seat of many", 1, 100, 1.495},
		{"two seat route untouched", 2, 2, 1.0},
		{"two seat route one left", 1, 2, 1.25},
		{"zero total guards division", 5, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DemandFactor(tt.seatsLeft, tt.seatsTotal)
			if !almostEqual(got, tt.want) {
				t.Errorf("DemandFactor(%d, %d) = %v, want %v", tt.seatsLeft, tt.seatsTotal, got, tt.want)
			}
		})
	}
}

func TestDemandPrice(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		seatsLeft  int
		seatsTotal int
		want       float64
	}{
		{"full availability is base price", 100.00, 2, 2, 100.00},
		{"one of two left", 100.00, 1, 2, 125.00},
		{"rounding applied", 99.99, 1, 3, 133.32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DemandPrice(tt.base, tt.seatsLeft, tt.seatsTotal)
			if !almostEqual(got, tt.want) {
				t.Errorf("DemandPrice(%v, %d, %d) = %v, want %v", tt.base, tt.seatsLeft, tt.seatsTotal, got, tt.want)
			}
		})
	}
}

func TestApplyTravellerPricing(t *testing.T) {
	t.Run("adult no discount", func(t *testing.T) {
		final, afterChild := ApplyTravellerPricing(100.00, TravellerAdult, 0)
		if !almostEqual(final, 100.00) || !almostEqual(afterChild, 100.00) {
			t.Errorf("got final=%v afterChild=%v, want 100.00 both", final, afterChild)
		}
	})

	t.Run("child halves price", func(t *testing.T) {
		final, afterChild := ApplyTravellerPricing(100.00, TravellerChild, 0)
		if !almostEqual(afterChild, 50.00) {
			t.Errorf("afterChild = %v, want 50.00", afterChild)
		}
		if !almostEqual(final, 50.00) {
			t.Errorf("final = %v, want 50.00", final)
		}
	})

	t.Run("adult with 20 percent discount", func(t *testing.T) {
		final, _ := ApplyTravellerPricing(100.00, TravellerAdult, 20)
		if !almostEqual(final, 80.00) {
			t.Errorf("final = %v, want 80.00", final)
		}
	})

	t.Run("child and discount compound multiplicatively", func(t *testing.T) {
		// half of 100 is 50, then 20% off leaves 40 — not 100*(1-0.5-0.2)
		final, afterChild := ApplyTravellerPricing(100.00, TravellerChild, 20)
		if !almostEqual(afterChild, 50.00) {
			t.Errorf("afterChild = %v, want 50.00", afterChild)
		}
		if !almostEqual(final, 40.00) {
			t.Errorf("final = %v, want 40.00", final)
		}
	})

	t.Run("final price rounded to cents", func(t *testing.T) {
		final, _ := ApplyTravellerPricing(99.99, TravellerChild, 15)
		// 99.99/2 = 49.995, * 0.85 = 42.49575 -> 42.50
		if !almostEqual(final, 42.50) {
			t.Errorf("final = %v, want 42.50", final)
		}
	})
}
