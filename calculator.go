package money

import "strconv"

// Calculator is the algebraic contract between the amount engine and
// a concrete numeric representation T.
// The engine routes every numeric step through this interface and never
// inspects the concrete type, so any representation that honors the laws
// below works: machine integers, arbitrary-precision integers, or
// arbitrary-precision decimals restricted to integral values.
//
// Laws:
//   - Zero is the additive identity.
//   - Inc and Dec add and subtract exactly one.
//   - Quo truncates toward zero; Mod returns the matching remainder,
//     so Add(Mul(Quo(a, b), b), Mod(a, b)) == a.
//   - Cmp defines a total order consistent with Add and Mul.
//
// Implementations must treat values as immutable: no method may modify
// its operands.
type Calculator[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// FromInt64 converts a machine integer to T.
	FromInt64(i int64) T

	// Inc returns x + 1.
	Inc(x T) T

	// Dec returns x - 1.
	Dec(x T) T

	// Add returns x + y.
	Add(x, y T) T

	// Sub returns x - y.
	Sub(x, y T) T

	// Mul returns x * y.
	Mul(x, y T) T

	// Quo returns x / y truncated toward zero.
	// The behavior on a zero divisor is unspecified; the engine guards
	// divisions before reaching it.
	Quo(x, y T) T

	// Mod returns the remainder of x / y, with the sign of x.
	Mod(x, y T) T

	// Pow returns base raised to a non-negative integer exponent.
	Pow(base T, exp int) T

	// Cmp compares x and y and returns -1, 0, or +1.
	Cmp(x, y T) int

	// Text returns the decimal digit string of x, with a leading minus
	// sign when negative.
	Text(x T) string
}

// Int64Calculator implements [Calculator] over int64, the fast path for
// currencies whose minor-unit counts fit a machine word.
type Int64Calculator struct{}

// Zero returns 0.
func (Int64Calculator) Zero() int64 { return 0 }

// FromInt64 returns i.
func (Int64Calculator) FromInt64(i int64) int64 { return i }

// Inc returns x + 1.
func (Int64Calculator) Inc(x int64) int64 { return x + 1 }

// Dec returns x - 1.
func (Int64Calculator) Dec(x int64) int64 { return x - 1 }

// Add returns x + y.
func (Int64Calculator) Add(x, y int64) int64 { return x + y }

// Sub returns x - y.
func (Int64Calculator) Sub(x, y int64) int64 { return x - y }

// Mul returns x * y.
func (Int64Calculator) Mul(x, y int64) int64 { return x * y }

// Quo returns x / y. Go integer division already truncates toward zero.
func (Int64Calculator) Quo(x, y int64) int64 { return x / y }

// Mod returns x % y, which carries the sign of x.
func (Int64Calculator) Mod(x, y int64) int64 { return x % y }

// Pow returns base**exp by binary exponentiation.
func (Int64Calculator) Pow(base int64, exp int) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Cmp compares x and y and returns -1, 0, or +1.
func (Int64Calculator) Cmp(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// Text returns the decimal digit string of x.
func (Int64Calculator) Text(x int64) string {
	return strconv.FormatInt(x, 10)
}
