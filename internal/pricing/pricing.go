// Package pricing derives shipment weight and total price from a service's
// per-kilogram rate and the weight text a requester typed. The calculation is
// pure and is re-run on every change to the weight input.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Quote is the derived result for a weight entry. Total is unrounded; round
// only for display (see Round2).
type Quote struct {
	Weight float64
	Total  float64
}

// Zero is the display-reset quote returned for empty or unusable weight text.
// It is not an error: the form simply shows 0 until the input becomes valid.
var Zero = Quote{}

// Calculate parses weightText and returns the quote against pricePerKg.
// Empty, non-numeric, non-finite or non-positive input yields Zero.
func Calculate(pricePerKg float64, weightText string) Quote {
	weightText = strings.TrimSpace(weightText)
	if weightText == "" {
		return Zero
	}

	weight, err := strconv.ParseFloat(weightText, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return Zero
	}

	return Quote{
		Weight: weight,
		Total:  weight * pricePerKg,
	}
}

// Round2 rounds v to two decimal places for presentation. Persisted totals
// stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
