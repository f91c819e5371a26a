package money

import "github.com/shopspring/decimal"

// DecimalCalculator implements [Calculator] over [decimal.Decimal], for
// callers that already move amounts around as arbitrary-precision decimals.
// Minor-unit counts are integral, so all operations stay within integral
// decimals; Quo and Mod use [decimal.Decimal.QuoRem] at precision 0, which
// truncates toward zero as the contract requires.
type DecimalCalculator struct{}

// Zero returns decimal zero.
func (DecimalCalculator) Zero() decimal.Decimal { return decimal.Decimal{} }

// FromInt64 converts a machine integer.
func (DecimalCalculator) FromInt64(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

// Inc returns x + 1.
func (DecimalCalculator) Inc(x decimal.Decimal) decimal.Decimal {
	return x.Add(decimal.NewFromInt(1))
}

// Dec returns x - 1.
func (DecimalCalculator) Dec(x decimal.Decimal) decimal.Decimal {
	return x.Sub(decimal.NewFromInt(1))
}

// Add returns x + y.
func (DecimalCalculator) Add(x, y decimal.Decimal) decimal.Decimal { return x.Add(y) }

// Sub returns x - y.
func (DecimalCalculator) Sub(x, y decimal.Decimal) decimal.Decimal { return x.Sub(y) }

// Mul returns x * y.
func (DecimalCalculator) Mul(x, y decimal.Decimal) decimal.Decimal { return x.Mul(y) }

// Quo returns x / y truncated toward zero.
func (DecimalCalculator) Quo(x, y decimal.Decimal) decimal.Decimal {
	q, _ := x.QuoRem(y, 0)
	return q
}

// Mod returns the remainder of x / y with the sign of x.
func (DecimalCalculator) Mod(x, y decimal.Decimal) decimal.Decimal {
	_, r := x.QuoRem(y, 0)
	return r
}

// Pow returns base**exp by binary exponentiation, keeping the result integral.
func (DecimalCalculator) Pow(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Cmp compares x and y and returns -1, 0, or +1.
func (DecimalCalculator) Cmp(x, y decimal.Decimal) int { return x.Cmp(y) }

// Text returns the decimal digit string of x.
func (DecimalCalculator) Text(x decimal.Decimal) string { return x.String() }
