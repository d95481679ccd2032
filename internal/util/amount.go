package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bounds on what a form field may hold. Anything outside is treated as unparsable,
// which keeps arithmetic on huge exponents off the request path.
const (
	maxAmountExponent = 20
	maxAmountDigits   = 30
)

// ParseAmount parses form text as a decimal amount.
// Empty, unparsable or out of range text yields zero; the sign is kept.
func ParseAmount(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
		return decimal.Zero
	}
	if len(strings.TrimPrefix(d.Coefficient().String(), "-")) > maxAmountDigits {
		return decimal.Zero
	}
	return d
}

// ParseNonNegativeAmount is ParseAmount with negative values coerced to zero
func ParseNonNegativeAmount(text string) decimal.Decimal {
	d := ParseAmount(text)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percentage returns part/whole*100, or zero when whole is not positive
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
