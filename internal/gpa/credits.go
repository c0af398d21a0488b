package gpa

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest decimal number at the start of the text, the way parseFloat reads input fields.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// coerceCredits turns the credits text into an exact non-negative value.
// Anything unparseable, negative or out of float range counts as zero.
func coerceCredits(raw string) *big.Rat {
	zero := new(big.Rat)

	prefix := leadingNumber.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return zero
	}
	if _, err := strconv.ParseFloat(prefix, 64); err != nil {
		return zero
	}

	r, ok := decimalRat(prefix)
	if !ok || r.Sign() < 0 {
		return zero
	}
	return r
}

// minExponent bounds tiny inputs; anything smaller is already zero as a float64.
const minExponent = -400

// decimalRat converts a matched decimal literal to an exact rational.
func decimalRat(s string) (*big.Rat, bool) {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil, false
		}
		exp = e
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= len(s) - i - 1
		s = s[:i] + s[i+1:]
	}

	digits, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	if digits.Sign() == 0 || exp < minExponent {
		return new(big.Rat), true
	}
	if neg {
		digits.Neg(digits)
	}

	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(exp))), nil)
	r := new(big.Rat).SetInt(digits)
	if exp >= 0 {
		return r.Mul(r, new(big.Rat).SetInt(pow)), true
	}
	return r.Quo(r, new(big.Rat).SetInt(pow)), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// roundCents rounds a non-negative value to hundredths, half away from zero, and returns it in cents.
func roundCents(v *big.Rat) *big.Int {
	scaled := new(big.Rat).Mul(v, big.NewRat(100, 1))
	scaled.Add(scaled, big.NewRat(1, 2))
	return new(big.Int).Quo(scaled.Num(), scaled.Denom())
}

func formatCents(cents *big.Int) string {
	whole, frac := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return whole.String() + "." + leftPad2(frac.String())
}

func leftPad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
