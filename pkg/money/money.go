// Package money holds the currency arithmetic helpers shared across the
// service. Amounts travel as float64; rounding goes through decimal so that
// two-decimal results are exact rather than nearest-representable.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds a currency amount to two decimal places (cents).
func Round(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// Settled reports whether an amount is within tolerance of zero.
func Settled(amount, tolerance float64) bool {
	return math.Abs(amount) <= tolerance
}
