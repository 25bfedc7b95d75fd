// Package amount converts between human token quantities and 256-bit base units.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Decimals is the fixed-point precision of the token.
const Decimals uint8 = 18

var (
	ErrEmpty     = errors.New("amount: empty string")
	ErrPrecision = errors.New("amount: too many fractional digits")
	ErrOverflow  = errors.New("amount: value overflows 256 bits")
)

// Unit returns 10^decimals.
func Unit(decimals uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
}

// ParseUnits parses a decimal quantity such as "1000000" or "0.25" into base
// units scaled by 10^decimals.
func ParseUnits(s string, decimals uint8) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > int(decimals) {
		return nil, ErrPrecision
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))

	v, err := ParseBase(digits)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MustParseUnits is ParseUnits for constants and tests.
func MustParseUnits(s string, decimals uint8) *uint256.Int {
	v, err := ParseUnits(s, decimals)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseBase parses a decimal string of base units.
func ParseBase(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		if errors.Is(err, uint256.ErrBig256Range) {
			return nil, ErrOverflow
		}
		return nil, fmt.Errorf("amount: parse %q: %w", s, err)
	}
	return v, nil
}

// FormatUnits renders base units as a decimal quantity without trailing zeros.
func FormatUnits(v *uint256.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	rem := new(uint256.Int)
	quo, _ := new(uint256.Int).DivMod(v, Unit(decimals), rem)
	if rem.IsZero() {
		return quo.Dec()
	}
	frac := rem.Dec()
	frac = strings.Repeat("0", int(decimals)-len(frac)) + frac
	return quo.Dec() + "." + strings.TrimRight(frac, "0")
}
