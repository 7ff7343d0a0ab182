package regional

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorExponent is the number of minor-unit digits of the settlement currency.
const minorExponent = 2

// ToMajor formats minor units as the provider's major-unit decimal string.
func ToMajor(minor int64) string {
	return decimal.New(minor, -minorExponent).StringFixed(minorExponent)
}

// ToMinor parses a major-unit amount string into minor units.
// Fractions below one minor unit are rejected rather than rounded.
func ToMinor(major string) (int64, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", major, err)
	}
	shifted := d.Shift(minorExponent)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has sub-minor-unit precision", major)
	}
	return shifted.IntPart(), nil
}
