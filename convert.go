package money

import (
	"fmt"
	"math"
)

// Convert applies an exchange rate expressed as a scaled ratio and returns
// the amount re-denominated in the target currency.
// The conversion is exact: the minor-unit count is multiplied by the ratio's
// numerator and the precision grows by the ratio's scale, so no rounding
// occurs. Rescale the result to bring it back to the target's declared
// precision.
//
// The engine never fetches rates; the caller always supplies one.
func (a Amount[T]) Convert(target Currency, rate Ratio[T]) Amount[T] {
	units := a.calc.Mul(a.units, rate.value)
	return Amount[T]{units: units, calc: a.calc, curr: target, scale: a.scale + rate.scale, mode: a.mode}
}

// ConvertScalar applies an integer exchange rate and returns the amount
// re-denominated in the target currency at the target's declared precision.
// If the target precision exceeds the source precision, the source is first
// scaled up exactly; a source already finer than the target keeps its own
// precision. No rounding occurs.
func (a Amount[T]) ConvertScalar(target Currency, rate T) Amount[T] {
	units, scale := a.units, a.scale
	if target.Precision > scale {
		units = a.calc.Mul(units, stepFactor(a.calc, target, scale, target.Precision))
		scale = target.Precision
	}
	units = a.calc.Mul(units, rate)
	return Amount[T]{units: units, calc: a.calc, curr: target, scale: scale, mode: a.mode}
}

// ConvertFloat64 applies a float exchange rate, rounding the result to the
// effective precision with the amount's rounding mode. The effective
// precision is the target's declared precision, or the source precision if
// that is finer.
//
// ConvertFloat64 returns an error if the rate is NaN or infinite, or its
// decimal coefficient does not fit the parsing range.
func (a Amount[T]) ConvertFloat64(target Currency, rate float64) (Amount[T], error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Amount[T]{}, fmt.Errorf("converting %v at rate %v: %w", a, rate, ErrInvalidArgument)
	}
	dec, err := decomposeFloat(rate)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("converting %v at rate %v: %w", a, rate, ErrInvalidArgument)
	}
	b := a.Convert(target, Ratio[T]{value: a.calc.FromInt64(dec.coef), scale: dec.scale})
	b, err = b.RescaleMode(max(target.Precision, a.scale), a.mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("converting %v at rate %v: %w", a, rate, err)
	}
	return b, nil
}

// ExchangeRate represents a unidirectional exchange rate between two
// currencies. The rate states how many units of the quote currency one unit
// of the base currency buys.
// ExchangeRate values are immutable and safe for concurrent use.
type ExchangeRate[T any] struct {
	base  Currency
	quote Currency
	rate  Ratio[T]
	calc  Calculator[T]
}

// NewExchangeRate returns an exchange rate between the base and quote
// currencies.
//
// NewExchangeRate returns an error if:
//   - the rate is not positive;
//   - the base and quote currencies are equal but the rate is not one.
func NewExchangeRate[T any](calc Calculator[T], base, quote Currency, rate Ratio[T]) (ExchangeRate[T], error) {
	if calc.Cmp(rate.value, calc.Zero()) <= 0 {
		return ExchangeRate[T]{}, fmt.Errorf("constructing rate %v/%v: rate must be positive: %w", base, quote, ErrInvalidArgument)
	}
	if base.Code == quote.Code {
		one := calc.Pow(calc.FromInt64(10), rate.scale)
		if calc.Cmp(rate.value, one) != 0 {
			return ExchangeRate[T]{}, fmt.Errorf("constructing rate %v/%v: rate must be equal to 1: %w", base, quote, ErrInvalidArgument)
		}
	}
	return ExchangeRate[T]{base: base, quote: quote, rate: rate, calc: calc}, nil
}

// Base returns the currency being exchanged.
func (r ExchangeRate[T]) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate[T]) Quote() Currency {
	return r.quote
}

// Rate returns the rate as a scaled ratio.
func (r ExchangeRate[T]) Rate() Ratio[T] {
	return r.rate
}

// CanConv returns true if [ExchangeRate.Conv] can convert the given amount.
func (r ExchangeRate[T]) CanConv(a Amount[T]) bool {
	return a.curr.Code == r.base.Code && r.base.Code != "" && r.quote.Code != ""
}

// Conv converts the amount from the base currency to the quote currency.
// See also method [Amount.Convert].
//
// Conv returns an error if the currency of the amount does not match the
// base currency of the exchange rate.
func (r ExchangeRate[T]) Conv(a Amount[T]) (Amount[T], error) {
	if !r.CanConv(a) {
		return Amount[T]{}, fmt.Errorf("converting [%v] via [%v/%v]: %w", a, r.base, r.quote, ErrCurrencyMismatch)
	}
	return a.Convert(r.quote, r.rate), nil
}
