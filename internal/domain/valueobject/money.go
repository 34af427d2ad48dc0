// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Magnitude returns the absolute value of a monetary amount.
// Expense totals always go through it so the storage sign convention cannot leak into sums.
func Magnitude(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs()
}

// NonNegative returns the amount, or zero when it is negative.
func NonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// ClampedPercent returns round(part / whole * 100) clamped to [0, 100].
// A non-positive part or whole yields 0. Halves round away from zero.
func ClampedPercent(part, whole decimal.Decimal) int {
	if !part.IsPositive() || !whole.IsPositive() {
		return 0
	}

	pct := part.Mul(hundred).Div(whole).Round(0)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return int(pct.IntPart())
}

// Share returns part as a percentage of whole with two decimal places.
func Share(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	share, _ := part.Mul(hundred).Div(whole).Round(2).Float64()
	return share
}
