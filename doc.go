/*
Package money implements exact, currency-aware monetary arithmetic.
Amounts are stored as integer counts of minor units (cents, pennies, fens)
rather than floats, so no operation ever accumulates binary floating-point
error.

# Representation

The package is built around three types: Amount, Currency, and Calculator.
An [Amount] combines a minor-unit count, a [Currency], a precision, and a
[RoundingMode]. The numeric representation of the count is a type parameter
bound by the [Calculator] contract, so the same engine runs over machine
integers ([Int64Calculator], the fast path), arbitrary-precision integers
([BigIntCalculator]), or arbitrary-precision decimals ([DecimalCalculator]).
A [Currency] describes an ISO 4217 currency and is obtained from a
[Registry], with the default registry preloaded at startup.

# Immutability

Every amount is immutable: arithmetic, rescaling, allocation, and conversion
all return new instances. After the registry is populated, nothing in the
package mutates shared state, so all values are safe for concurrent use by
multiple goroutines.

# Rounding

Ten rounding policies cover every direction and tie-break convention in
common financial use, from [RoundUp] to [RoundHalfAwayFromZero]. A single
rounding engine applies them uniformly wherever an inexact division occurs:
reducing precision, dividing by a scalar, applying a fractional exchange
rate, or converting a float input to minor units.

# Allocation

[Amount.Allocate] splits an amount across a list of ratios without losing a
single minor unit: the parts always sum back to the original amount exactly,
with the rounding remainder handed out in index order. [Amount.Split] is the
equal-parts special case.

# Conversion

[Amount.Convert] applies a caller-supplied exchange rate, expressed as an
exact scaled ratio, and re-denominates the amount in a target currency. The
package never fetches rates.

# Errors

Precondition violations are reported through sentinel errors such as
[ErrCurrencyMismatch] and [ErrDivisionByZero], wrapped with context about
the failing computation. Because every value is immutable, a failed
operation never leaves a partially-applied result behind.
*/
package money
