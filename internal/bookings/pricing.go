package bookings

import (
	"math"
)

// The pricing pipeline, in order:
//
//	demand price = round2(base * demand factor)
//	child halves the price
//	best discount multiplies by (1 - pct/100)
//	final  price = round2(result)
//
// Child halving runs before the discount, so the two compound
// multiplicatively rather than stacking additively.

// DemandFactor scales the base price by how full the route already is.
// A fully available route yields 1.0; the last seat yields just under 1.5.
func DemandFactor(seatsLeft, seatsTotal int) float64 {
	if seatsTotal <= 0 {
		return 1.0
	}
	return 1.0 + (1.0-float64(seatsLeft)/float64(seatsTotal))*0.5
}

// DemandPrice applies the demand factor to the base price and rounds.
func DemandPrice(basePrice float64, seatsLeft, seatsTotal int) float64 {
	return round2(basePrice * DemandFactor(seatsLeft, seatsTotal))
}

// ApplyTravellerPricing takes the demand price through child halving and the
// best discount, returning the final rounded price and the post-child
// intermediate value.
func ApplyTravellerPricing(demandPrice float64, travellerType TravellerType, discountPct float64) (finalPrice, priceAfterChild float64) {
	priceAfterChild = demandPrice
	if travellerType == TravellerChild {
		priceAfterChild = demandPrice / 2
	}

	finalPrice = round2(priceAfterChild * (1 - discountPct/100))
	return finalPrice, priceAfterChild
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
