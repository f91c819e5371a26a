package money

import "fmt"

// RoundingMode determines the direction in which a quotient is adjusted
// when an exact result is not representable at the target precision.
// The zero value is [RoundHalfEven] (banker's rounding).
//
// Rounding is applied uniformly wherever an inexact integer division occurs:
// precision reduction, scalar division, and currency-rate division.
// For divisions expressed through the [Calculator] contract, a tie means
// 2 * |remainder| == |divisor| exactly.
type RoundingMode uint8

const (
	// RoundHalfEven rounds to the nearest minor unit, ties to the nearest
	// even unit.
	RoundHalfEven RoundingMode = iota

	// RoundUp rounds toward positive infinity.
	RoundUp

	// RoundDown rounds toward negative infinity.
	RoundDown

	// RoundTowardsZero truncates.
	RoundTowardsZero

	// RoundAwayFromZero rounds so that the magnitude never decreases.
	RoundAwayFromZero

	// RoundHalfUp rounds to the nearest minor unit, ties toward positive infinity.
	RoundHalfUp

	// RoundHalfDown rounds to the nearest minor unit, ties toward negative infinity.
	RoundHalfDown

	// RoundHalfOdd rounds to the nearest minor unit, ties to the nearest odd unit.
	RoundHalfOdd

	// RoundHalfTowardsZero rounds to the nearest minor unit, ties toward zero.
	RoundHalfTowardsZero

	// RoundHalfAwayFromZero rounds to the nearest minor unit, ties away from zero.
	RoundHalfAwayFromZero
)

var roundingModeNames = map[RoundingMode]string{
	RoundHalfEven:         "HALF_EVEN",
	RoundUp:               "UP",
	RoundDown:             "DOWN",
	RoundTowardsZero:      "TOWARDS_ZERO",
	RoundAwayFromZero:     "AWAY_FROM_ZERO",
	RoundHalfUp:           "HALF_UP",
	RoundHalfDown:         "HALF_DOWN",
	RoundHalfOdd:          "HALF_ODD",
	RoundHalfTowardsZero:  "HALF_TOWARDS_ZERO",
	RoundHalfAwayFromZero: "HALF_AWAY_FROM_ZERO",
}

// String method implements the [fmt.Stringer] interface and returns
// the conventional upper-snake name of the rounding mode.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if s, ok := roundingModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// ParseRoundingMode converts the conventional upper-snake name of a rounding
// mode, as returned by [RoundingMode.String], back to a mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingModeNames {
		if name == s {
			return m, nil
		}
	}
	return RoundHalfEven, fmt.Errorf("parsing rounding mode %q: %w", s, ErrInvalidArgument)
}

// neg returns -x computed through the calculator.
func neg[T any](c Calculator[T], x T) T {
	return c.Sub(c.Zero(), x)
}

// absVal returns |x| computed through the calculator.
func absVal[T any](c Calculator[T], x T) T {
	if c.Cmp(x, c.Zero()) < 0 {
		return neg(c, x)
	}
	return x
}

// isOdd reports whether x is not divisible by two.
func isOdd[T any](c Calculator[T], x T) bool {
	two := c.FromInt64(2)
	return c.Cmp(c.Mod(x, two), c.Zero()) != 0
}

// divRound divides dividend by divisor and adjusts the truncated quotient
// according to the rounding mode. This is the single rounding path shared by
// precision reduction, scalar division, and rate application, so every mode
// behaves identically regardless of where the division originates.
func divRound[T any](c Calculator[T], dividend, divisor T, mode RoundingMode) (T, error) {
	zero := c.Zero()
	if c.Cmp(divisor, zero) == 0 {
		return zero, ErrDivisionByZero
	}

	q := c.Quo(dividend, divisor)
	r := c.Mod(dividend, divisor)
	if c.Cmp(r, zero) == 0 {
		return q, nil
	}

	// Sign of the exact quotient. Truncation always discarded a fraction
	// toward zero, so adjustments move q one unit in this direction.
	pos := (c.Cmp(dividend, zero) < 0) == (c.Cmp(divisor, zero) < 0)
	away := func(x T) T {
		if pos {
			return c.Inc(x)
		}
		return c.Dec(x)
	}

	switch mode {
	case RoundUp:
		if pos {
			q = c.Inc(q)
		}
	case RoundDown:
		if !pos {
			q = c.Dec(q)
		}
	case RoundTowardsZero:
		// truncated quotient is the answer
	case RoundAwayFromZero:
		q = away(q)
	default:
		twice := c.Mul(absVal(c, r), c.FromInt64(2))
		switch c.Cmp(twice, absVal(c, divisor)) {
		case +1:
			q = away(q)
		case -1:
			// nearer the truncated quotient
		default:
			switch mode {
			case RoundHalfUp:
				if pos {
					q = c.Inc(q)
				}
			case RoundHalfDown:
				if !pos {
					q = c.Dec(q)
				}
			case RoundHalfTowardsZero:
				// truncated quotient is the answer
			case RoundHalfAwayFromZero:
				q = away(q)
			case RoundHalfOdd:
				if !isOdd(c, q) {
					q = away(q)
				}
			default: // RoundHalfEven
				if isOdd(c, q) {
					q = away(q)
				}
			}
		}
	}
	return q, nil
}

// divFloor divides dividend by divisor, rounding toward negative infinity.
// Allocation uses it so that fractional shares always leave a non-negative
// shortfall, even for negative amounts.
func divFloor[T any](c Calculator[T], dividend, divisor T) (T, error) {
	return divRound(c, dividend, divisor, RoundDown)
}
