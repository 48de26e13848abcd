package pricing

import (
	"math"

	"cabtour/models"
)

// ComputeDisplayPrice applies the offering's increment to its base price.
// The result is not rounded.
func ComputeDisplayPrice(o models.CabOffering) float64 {
	return o.BasePrice * (1 + o.IncrementPercent/100)
}

// ComputeDiscount returns the percentage current is below original, clamped
// to [0, 100]. A non-positive original yields 0.
func ComputeDiscount(original, current float64) float64 {
	if original <= 0 || math.IsNaN(original) || math.IsNaN(current) || math.IsInf(original, 0) {
		return 0
	}
	d := (original - current) / original * 100
	switch {
	case math.IsNaN(d), d < 0:
		return 0
	case d > 100:
		return 100
	}
	return d
}

// QuoteOf pairs an offering with its display price.
func QuoteOf(o models.CabOffering) models.CabQuote {
	return models.CabQuote{CabOffering: o, DisplayPrice: ComputeDisplayPrice(o)}
}
