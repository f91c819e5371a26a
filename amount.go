package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount represents an immutable monetary amount: an exact minor-unit count
// held in a numeric representation T, together with a currency, a precision,
// and a rounding mode.
//
// The minor-unit count always equals the major amount times the currency
// factor at the stated precision, exactly. Every operation returns a new
// Amount and never mutates the receiver, so amounts are safe for concurrent
// use by multiple goroutines.
type Amount[T any] struct {
	units T             // minor-unit count
	calc  Calculator[T] // numeric contract for T
	curr  Currency      // currency label
	scale int           // minor-unit digits per major unit
	mode  RoundingMode  // applied wherever a division is inexact
}

// Option configures amount construction.
type Option func(*amountOptions)

type amountOptions struct {
	curr     Currency
	currSet  bool
	scale    int
	scaleSet bool
	mode     RoundingMode
	modeSet  bool
}

// WithCurrency sets the currency of the constructed amount.
func WithCurrency(c Currency) Option {
	return func(o *amountOptions) {
		o.curr = c
		o.currSet = true
	}
}

// WithCurrencyCode resolves a code against the default registry, synthesizing
// a minimal currency if the code is unknown, and sets it on the constructed
// amount. See also function [Resolve].
func WithCurrencyCode(code string) Option {
	return func(o *amountOptions) {
		o.curr = Resolve(code)
		o.currSet = true
	}
}

// WithPrecision overrides the currency's declared precision.
func WithPrecision(p int) Option {
	return func(o *amountOptions) {
		o.scale = p
		o.scaleSet = true
	}
}

// WithRounding sets the rounding mode carried by the constructed amount.
// The default is [RoundHalfEven].
func WithRounding(m RoundingMode) Option {
	return func(o *amountOptions) {
		o.mode = m
		o.modeSet = true
	}
}

// resolveOptions applies defaults: USD, the currency's declared precision,
// and banker's rounding.
func resolveOptions(opts []Option) (Currency, int, RoundingMode, error) {
	var o amountOptions
	for _, f := range opts {
		f(&o)
	}
	curr := o.curr
	if !o.currSet {
		curr = Resolve("USD")
	}
	scale := curr.Precision
	if o.scaleSet {
		scale = o.scale
	}
	if scale < 0 {
		return Currency{}, 0, 0, fmt.Errorf("precision %d: %w", scale, ErrInvalidPrecision)
	}
	mode := RoundHalfEven
	if o.modeSet {
		mode = o.mode
	}
	return curr, scale, mode, nil
}

// New returns an amount equal to the given whole number of major units.
// The scaling to minor units is an exact multiplication; no rounding occurs.
// See also constructors [NewFromMinorUnits], [NewFromFloat64], and [Parse].
//
// New returns an error if an explicit precision is negative.
func New[T any](calc Calculator[T], major T, opts ...Option) (Amount[T], error) {
	curr, scale, mode, err := resolveOptions(opts)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	units := calc.Mul(major, stepFactor(calc, curr, 0, scale))
	return Amount[T]{units: units, calc: calc, curr: curr, scale: scale, mode: mode}, nil
}

// NewFromMinorUnits returns an amount equal to the given minor-unit count
// (e.g. cents, pennies, fens) at the effective precision.
//
// NewFromMinorUnits returns an error if an explicit precision is negative.
func NewFromMinorUnits[T any](calc Calculator[T], units T, opts ...Option) (Amount[T], error) {
	curr, scale, mode, err := resolveOptions(opts)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	return Amount[T]{units: units, calc: calc, curr: curr, scale: scale, mode: mode}, nil
}

// NewFromFloat64 converts a major-unit float to a (possibly rounded) amount.
// The float is decomposed into an exact decimal coefficient and scale, and
// any excess fractional digits are removed by the rounding engine with the
// amount's rounding mode.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - an explicit precision is negative.
func NewFromFloat64[T any](calc Calculator[T], major float64, opts ...Option) (Amount[T], error) {
	curr, scale, mode, err := resolveOptions(opts)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	dec, err := decomposeFloat(major)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	units, err := toUnits(calc, dec, curr, scale, mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	return Amount[T]{units: units, calc: calc, curr: curr, scale: scale, mode: mode}, nil
}

// Parse converts a major-unit decimal string to a (possibly rounded) amount.
// See also constructor [NewFromFloat64].
func Parse[T any](calc Calculator[T], major string, opts ...Option) (Amount[T], error) {
	curr, scale, mode, err := resolveOptions(opts)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	dec, err := decomposeString(major)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	units, err := toUnits(calc, dec, curr, scale, mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}
	return Amount[T]{units: units, calc: calc, curr: curr, scale: scale, mode: mode}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse[T any](calc Calculator[T], major string, opts ...Option) Amount[T] {
	a, err := Parse(calc, major, opts...)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", major, err))
	}
	return a
}

// with returns a copy of the amount carrying new units and scale.
func (a Amount[T]) with(units T, scale int) Amount[T] {
	return Amount[T]{units: units, calc: a.calc, curr: a.curr, scale: scale, mode: a.mode}
}

// MinorUnits returns the exact minor-unit count.
func (a Amount[T]) MinorUnits() T {
	return a.units
}

// Curr returns the currency of the amount.
func (a Amount[T]) Curr() Currency {
	return a.curr
}

// Scale returns the number of minor-unit digits per major unit.
func (a Amount[T]) Scale() int {
	return a.scale
}

// Mode returns the rounding mode carried by the amount.
func (a Amount[T]) Mode() RoundingMode {
	return a.mode
}

// Calc returns the calculator backing the amount, for adapters that need to
// produce values of T.
func (a Amount[T]) Calc() Calculator[T] {
	return a.calc
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount[T]) Sign() int {
	return a.calc.Cmp(a.units, a.calc.Zero())
}

// IsZero returns true if the amount is zero.
func (a Amount[T]) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns true if the amount is negative.
func (a Amount[T]) IsNeg() bool {
	return a.Sign() < 0
}

// IsPos returns true if the amount is positive.
func (a Amount[T]) IsPos() bool {
	return a.Sign() > 0
}

// SameCurr returns true if amounts are denominated in the same currency.
// Currencies are compared by alphabetic code.
func (a Amount[T]) SameCurr(b Amount[T]) bool {
	return a.curr.Code == b.curr.Code
}

// SameScale returns true if amounts have the same precision.
func (a Amount[T]) SameScale(b Amount[T]) bool {
	return a.scale == b.scale
}

// WithUnits returns an amount with a new minor-unit count, keeping the
// currency, precision, and rounding mode of the receiver.
func (a Amount[T]) WithUnits(units T) Amount[T] {
	return a.with(units, a.scale)
}

// WithCurr returns an amount re-labeled with a new currency.
// The minor-unit count is deliberately left untouched: this is a label
// change, not a conversion. Use [Amount.Convert] to apply an exchange rate.
func (a Amount[T]) WithCurr(curr Currency) Amount[T] {
	return Amount[T]{units: a.units, calc: a.calc, curr: curr, scale: a.scale, mode: a.mode}
}

// WithMode returns an amount carrying a new rounding mode.
func (a Amount[T]) WithMode(mode RoundingMode) Amount[T] {
	return Amount[T]{units: a.units, calc: a.calc, curr: a.curr, scale: a.scale, mode: mode}
}

// Rescale returns an amount at the given precision, using the amount's own
// rounding mode when precision decreases.
// See also method [Amount.RescaleMode].
func (a Amount[T]) Rescale(scale int) (Amount[T], error) {
	return a.RescaleMode(scale, a.mode)
}

// RescaleMode returns an amount at the given precision.
// Scaling up multiplies the minor-unit count exactly; scaling down divides
// through the rounding engine with the given mode. Rescaling to the current
// precision returns an equal amount.
//
// RescaleMode returns an error if the target precision is negative.
func (a Amount[T]) RescaleMode(scale int, mode RoundingMode) (Amount[T], error) {
	switch {
	case scale < 0:
		return Amount[T]{}, fmt.Errorf("rescaling %v to precision %d: %w", a, scale, ErrInvalidPrecision)
	case scale == a.scale:
		return a, nil
	case scale > a.scale:
		units := a.calc.Mul(a.units, stepFactor(a.calc, a.curr, a.scale, scale))
		return a.with(units, scale), nil
	default:
		units, err := divRound(a.calc, a.units, stepFactor(a.calc, a.curr, scale, a.scale), mode)
		if err != nil {
			return Amount[T]{}, fmt.Errorf("rescaling %v to precision %d: %w", a, scale, err)
		}
		return a.with(units, scale), nil
	}
}

// rescaleUp pads the amount to a not-smaller precision, always exact.
func (a Amount[T]) rescaleUp(scale int) Amount[T] {
	if scale <= a.scale {
		return a
	}
	return a.with(a.calc.Mul(a.units, stepFactor(a.calc, a.curr, a.scale, scale)), scale)
}

// Add returns the exact sum of amounts a and b.
// Both operands are first padded to the larger of the two precisions, so the
// result precision is max(a.Scale(), b.Scale()) and no rounding occurs.
//
// Add returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) Add(b Amount[T]) (Amount[T], error) {
	if !a.SameCurr(b) {
		return Amount[T]{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	scale := max(a.scale, b.scale)
	x, y := a.rescaleUp(scale), b.rescaleUp(scale)
	return a.with(a.calc.Add(x.units, y.units), scale), nil
}

// Sub returns the exact difference between amounts a and b.
// See also method [Amount.Add].
//
// Sub returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) Sub(b Amount[T]) (Amount[T], error) {
	if !a.SameCurr(b) {
		return Amount[T]{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	scale := max(a.scale, b.scale)
	x, y := a.rescaleUp(scale), b.rescaleUp(scale)
	return a.with(a.calc.Sub(x.units, y.units), scale), nil
}

// Mul returns the exact product of the amount and an integer factor.
// The precision is unchanged.
func (a Amount[T]) Mul(factor T) Amount[T] {
	return a.with(a.calc.Mul(a.units, factor), a.scale)
}

// MulRatio returns the exact product of the amount and a scaled ratio.
// The result precision grows by the ratio's scale; no rounding occurs.
// See also method [Amount.MulFloat64] for a rounded scalar product.
func (a Amount[T]) MulRatio(r Ratio[T]) Amount[T] {
	return a.with(a.calc.Mul(a.units, r.value), a.scale+r.scale)
}

// MulFloat64 returns the product of the amount and a float factor, rounded
// to the amount's precision with its rounding mode.
//
// MulFloat64 returns an error if the factor is NaN or infinite, or its
// decimal coefficient does not fit the parsing range.
func (a Amount[T]) MulFloat64(factor float64) (Amount[T], error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Amount[T]{}, fmt.Errorf("computing [%v * %v]: %w", a, factor, ErrInvalidArgument)
	}
	dec, err := decomposeFloat(factor)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v * %v]: %w", a, factor, ErrInvalidArgument)
	}
	num := a.calc.Mul(a.units, a.calc.FromInt64(dec.coef))
	if dec.scale == 0 {
		return a.with(num, a.scale), nil
	}
	den := a.calc.Pow(a.calc.FromInt64(10), dec.scale)
	units, err := divRound(a.calc, num, den, a.mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v * %v]: %w", a, factor, err)
	}
	return a.with(units, a.scale), nil
}

// Div returns the quotient of the amount and an integer divisor, rounded to
// the nearest minor unit with the amount's rounding mode.
//
// Div returns an error if the divisor is zero.
func (a Amount[T]) Div(divisor T) (Amount[T], error) {
	units, err := divRound(a.calc, a.units, divisor, a.mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w", a, a.calc.Text(divisor), err)
	}
	return a.with(units, a.scale), nil
}

// DivFloat64 returns the quotient of the amount and a float divisor, rounded
// to the amount's precision with its rounding mode.
//
// DivFloat64 returns an error if the divisor is zero, NaN, or infinite, or
// its decimal coefficient does not fit the parsing range.
func (a Amount[T]) DivFloat64(divisor float64) (Amount[T], error) {
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, ErrInvalidArgument)
	}
	dec, err := decomposeFloat(divisor)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, ErrInvalidArgument)
	}
	num := a.units
	if dec.scale > 0 {
		num = a.calc.Mul(a.units, a.calc.Pow(a.calc.FromInt64(10), dec.scale))
	}
	units, err := divRound(a.calc, num, a.calc.FromInt64(dec.coef), a.mode)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, err)
	}
	return a.with(units, a.scale), nil
}

// Neg returns an amount with the opposite sign.
func (a Amount[T]) Neg() Amount[T] {
	return a.with(neg(a.calc, a.units), a.scale)
}

// Abs returns the absolute value of the amount.
func (a Amount[T]) Abs() Amount[T] {
	return a.with(absVal(a.calc, a.units), a.scale)
}

// CopySign returns the amount with the same sign as amount b.
// If b is zero, the sign of the result remains unchanged.
func (a Amount[T]) CopySign(b Amount[T]) Amount[T] {
	switch {
	case b.Sign() == 0:
		return a
	case a.Sign() != b.Sign():
		return a.Neg()
	default:
		return a
	}
}

// Cmp compares amounts numerically and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts with different precisions are compared exactly, without rounding.
//
// Cmp returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) Cmp(b Amount[T]) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	scale := max(a.scale, b.scale)
	x, y := a.rescaleUp(scale), b.rescaleUp(scale)
	return a.calc.Cmp(x.units, y.units), nil
}

// Equal returns true if the amounts are denominated in the same currency and
// are numerically equal.
func (a Amount[T]) Equal(b Amount[T]) bool {
	c, err := a.Cmp(b)
	return err == nil && c == 0
}

// Min returns the smaller amount.
//
// Min returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) Min(b Amount[T]) (Amount[T], error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount[T]{}, err
	case c <= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) Max(b Amount[T]) (Amount[T], error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount[T]{}, err
	case c >= 0:
		return a, nil
	default:
		return b, nil
	}
}

// decimalBase reports whether every radix up to the amount's precision is 10,
// so the major value can be rendered with a decimal point.
func (a Amount[T]) decimalBase() bool {
	for i := 0; i < a.scale; i++ {
		if a.curr.baseAt(i) != 10 {
			return false
		}
	}
	return true
}

// Text returns the exact major-unit decimal string of the amount,
// e.g. "12.34" for 1234 minor units at precision 2.
// For multi-base currencies the major value has no decimal rendering, and
// Text returns the minor-unit count instead.
func (a Amount[T]) Text() string {
	s := a.calc.Text(a.units)
	if a.scale == 0 || !a.decimalBase() {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	for len(s) <= a.scale {
		s = "0" + s
	}
	return sign + s[:len(s)-a.scale] + "." + s[len(s)-a.scale:]
}

// Float64 returns the nearest float to the major-unit value of the amount.
// The conversion may lose precision; ok is false if the value does not fit
// a float64.
func (a Amount[T]) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(a.Text(), 64)
	return f, err == nil
}

// String implements the [fmt.Stringer] interface.
// When the currency's symbol differs from its code, the symbol prefixes the
// major value ("$12.34"); otherwise the code follows it ("12.34 CHF").
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount[T]) String() string {
	if a.curr.Symbol != "" && a.curr.Symbol != a.curr.Code {
		return a.curr.Symbol + a.Text()
	}
	return a.Text() + " " + a.curr.Code
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description           |
//	| ------ | ------- | --------------------- |
//	| %s, %v | $5.67   | Symbol and amount     |
//	| %q     | "$5.67" | Quoted form           |
//	| %f     | 5.67    | Major-unit amount     |
//	| %d     | 567     | Amount in minor units |
//	| %c     | USD     | Currency code         |
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount[T]) Format(state fmt.State, verb rune) {
	//nolint:errcheck
	switch verb {
	case 's', 'S', 'v', 'V':
		state.Write([]byte(a.String()))
	case 'q', 'Q':
		state.Write(strconv.AppendQuote(nil, a.String()))
	case 'f', 'F':
		state.Write([]byte(a.Text()))
	case 'd', 'D':
		state.Write([]byte(a.calc.Text(a.units)))
	case 'c', 'C':
		state.Write([]byte(a.curr.Code))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write([]byte(a.String()))
		state.Write([]byte(")"))
	}
}

// Object is the canonical serialized shape of an amount: the minor-unit
// count, the currency code, and the precision. Downstream adapters depend on
// exactly this shape.
type Object[T any] struct {
	Amount    T      `json:"amount"`
	Currency  string `json:"currency"`
	Precision int    `json:"precision"`
}

// Object returns the canonical serialized shape of the amount.
func (a Amount[T]) Object() Object[T] {
	return Object[T]{Amount: a.units, Currency: a.curr.Code, Precision: a.scale}
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount field is the minor-unit count rendered as a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount[T]) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`{"amount":`)
	sb.WriteString(a.calc.Text(a.units))
	sb.WriteString(`,"currency":`)
	sb.WriteString(strconv.Quote(a.curr.Code))
	sb.WriteString(`,"precision":`)
	sb.WriteString(strconv.Itoa(a.scale))
	sb.WriteString("}")
	return []byte(sb.String()), nil
}
