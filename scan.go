package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// decomposed is a decimal number taken apart into an integer coefficient and
// a base-10 scale, so that the value equals coef / 10^scale exactly.
// Construction from floats and strings funnels through this form, and the
// integer rounding engine does the rest; there is no separate float rounding
// path that could disagree with the generic one.
type decomposed struct {
	coef  int64
	scale int
}

// decomposeString parses a decimal string into an exact coefficient and scale.
// The coefficient is bounded by the underlying decimal parser (19 digits);
// amounts beyond that range enter through minor-unit construction instead.
func decomposeString(s string) (decomposed, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decomposed{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return decomposeDecimal(d)
}

// decomposeFloat converts a float to an exact coefficient and scale.
// The float is formatted with the shortest representation that round-trips,
// then parsed as a decimal string.
func decomposeFloat(f float64) (decomposed, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decomposed{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidAmount)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return decomposed{}, fmt.Errorf("converting float %v: %w", f, err)
	}
	return decomposeDecimal(d)
}

func decomposeDecimal(d decimal.Decimal) (decomposed, error) {
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return decomposed{}, fmt.Errorf("coefficient %d overflows int64: %w", coef, ErrInvalidAmount)
	}
	c := int64(coef)
	if d.IsNeg() {
		c = -c
	}
	return decomposed{coef: c, scale: d.Scale()}, nil
}

// toUnits turns a decomposed major-unit value into a minor-unit count at the
// given precision of the given currency. Scaling up is exact; scaling down
// goes through the rounding engine with the given mode.
func toUnits[T any](calc Calculator[T], dec decomposed, curr Currency, precision int, mode RoundingMode) (T, error) {
	coef := calc.FromInt64(dec.coef)
	num := calc.Mul(coef, stepFactor(calc, curr, 0, precision))
	if dec.scale == 0 {
		return num, nil
	}
	den := calc.Pow(calc.FromInt64(10), dec.scale)
	return divRound(calc, num, den, mode)
}

// stepFactor returns the product of the currency radices between two
// precisions, i.e. the factor relating minor-unit counts at precisions
// from and to. For decimal currencies this is 10^(to-from).
func stepFactor[T any](c Calculator[T], curr Currency, from, to int) T {
	f := c.FromInt64(1)
	for i := from; i < to; i++ {
		f = c.Mul(f, c.FromInt64(int64(curr.baseAt(i))))
	}
	return f
}
