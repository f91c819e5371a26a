package money

import "math/big"

// BigIntCalculator implements [Calculator] over *big.Int for amounts whose
// minor-unit counts exceed the int64 range.
// Every method allocates a fresh result; operands are never mutated, which
// keeps amounts built on *big.Int as immutable as the rest of the engine.
type BigIntCalculator struct{}

// Zero returns a new zero-valued integer.
func (BigIntCalculator) Zero() *big.Int { return new(big.Int) }

// FromInt64 converts a machine integer.
func (BigIntCalculator) FromInt64(i int64) *big.Int { return big.NewInt(i) }

// Inc returns x + 1.
func (BigIntCalculator) Inc(x *big.Int) *big.Int { return new(big.Int).Add(x, oneBig) }

// Dec returns x - 1.
func (BigIntCalculator) Dec(x *big.Int) *big.Int { return new(big.Int).Sub(x, oneBig) }

// Add returns x + y.
func (BigIntCalculator) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }

// Sub returns x - y.
func (BigIntCalculator) Sub(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }

// Mul returns x * y.
func (BigIntCalculator) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

// Quo returns x / y truncated toward zero.
func (BigIntCalculator) Quo(x, y *big.Int) *big.Int { return new(big.Int).Quo(x, y) }

// Mod returns the remainder of x / y with the sign of x.
// big.Int.Rem implements truncated division, matching the contract.
func (BigIntCalculator) Mod(x, y *big.Int) *big.Int { return new(big.Int).Rem(x, y) }

// Pow returns base**exp.
func (BigIntCalculator) Pow(base *big.Int, exp int) *big.Int {
	return new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
}

// Cmp compares x and y and returns -1, 0, or +1.
func (BigIntCalculator) Cmp(x, y *big.Int) int { return x.Cmp(y) }

// Text returns the decimal digit string of x.
func (BigIntCalculator) Text(x *big.Int) string { return x.Text(10) }

var oneBig = big.NewInt(1)
