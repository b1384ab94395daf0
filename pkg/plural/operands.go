package plural

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxOperand keeps operands inside the range x/text accepts; rules only
// look at the low digits.
const maxOperand = 10_000_000

// Operands is the CLDR operand set for a number.
// See https://unicode.org/reports/tr35/tr35-numbers.html#Operands
type Operands struct {
	N float64 // absolute value
	I int     // integer digits
	V int     // visible fraction digits, with trailing zeros
	W int     // visible fraction digits, without trailing zeros
	F int     // fraction digits as an integer, with trailing zeros
	T int     // fraction digits as an integer, without trailing zeros
}

// NewOperands computes operands from a float using its shortest
// round-tripping decimal representation.
func NewOperands(n float64) (Operands, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Operands{}, fmt.Errorf("%w: %v", ErrInvalidNumber, n)
	}
	return OperandsFromString(strconv.FormatFloat(math.Abs(n), 'f', -1, 64))
}

// OperandsFromString computes operands from a plain decimal string such as
// "12", "-1.50" or "0.005". Visible trailing zeros are kept, which matters
// for rules like English "1.0 items".
func OperandsFromString(s string) (Operands, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return Operands{}, ErrInvalidNumber
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Operands{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	ops := Operands{N: n}

	intPart, fraction, _ := strings.Cut(s, ".")
	ops.I = lowDigits(intPart)

	if fraction == "" {
		return ops, nil
	}

	ops.V = len(fraction)
	trimmed := strings.TrimRight(fraction, "0")
	ops.W = len(trimmed)
	ops.F = lowDigits(fraction)
	ops.T = lowDigits(trimmed)

	return ops, nil
}

// lowDigits parses the last seven digits of s; an empty string is zero.
func lowDigits(s string) int {
	if len(s) > 7 {
		s = s[len(s)-7:]
	}
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v % maxOperand
}
