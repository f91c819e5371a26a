package money

import (
	"fmt"
	"sort"
	"sync"
)

//go:generate go run scripts/currency/codegen.go

// Currency describes a currency in the global financial system: its
// [ISO 4217] alphabetic code and numeric id, the number of minor-unit digits
// per major unit, and display metadata.
// Currency values are immutable once constructed; the registry hands out
// copies, so a Currency is safe for concurrent use by multiple goroutines.
//
// Bases holds the radix relating major and minor units. Decimal currencies
// use a single base of 10. Historical multi-base currencies list one radix
// per subdivision: pre-decimal pound sterling, with 20 shillings to the pound
// and 12 pence to the shilling, uses [20, 12].
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	Code      string // alphabetic code, e.g. "USD"
	Num       int    // numeric code, e.g. 840
	Precision int    // minor-unit digits per major unit
	Symbol    string // display symbol, e.g. "$"
	Name      string // English name
	Bases     []int  // major/minor radices, nil means decimal
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code
}

// Base returns the primary radix relating major and minor units,
// which is 10 for all decimal currencies.
func (c Currency) Base() int {
	return c.baseAt(0)
}

// baseAt returns the radix of the i-th subdivision.
// Once the list is exhausted the last radix repeats, so a scalar-base
// currency behaves like an infinite uniform list.
func (c Currency) baseAt(i int) int {
	if len(c.Bases) == 0 {
		return 10
	}
	if i >= len(c.Bases) {
		i = len(c.Bases) - 1
	}
	return c.Bases[i]
}

// Factor returns the number of minor units per major unit at the given
// precision: base^precision for decimal currencies, the product of the
// leading radices for multi-base currencies.
func (c Currency) Factor(precision int) int64 {
	f := int64(1)
	for i := 0; i < precision; i++ {
		f *= int64(c.baseAt(i))
	}
	return f
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the alphabetic code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The currency is looked up in the default registry; an unknown code
// is synthesized via [Registry.Resolve].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	*c = Resolve(string(text))
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted alphabetic code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.Code)+2)
	text = append(text, '"')
	text = append(text, c.Code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalText].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// synthesize builds a minimal ad hoc currency for an unknown code:
// the code doubles as symbol and name, with two decimal minor-unit digits.
// This fallback is deliberate, so that construction against a private or
// not-yet-standardized code does not fail.
func synthesize(code string) Currency {
	return Currency{
		Code:      code,
		Precision: 2,
		Symbol:    code,
		Name:      code,
	}
}

// Registry is a lookup table of currencies keyed by exact, case-sensitive
// alphabetic code.
// All methods are safe for concurrent use; lookups take a read lock only,
// so a registry populated once at startup behaves like an immutable table.
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]Currency
}

// NewRegistry returns an empty registry.
// See also function [Default] for the registry preloaded with ISO 4217 data.
func NewRegistry() *Registry {
	return &Registry{byCode: make(map[string]Currency)}
}

// Register inserts a currency, overwriting any existing entry with the same
// code. Last write wins.
func (r *Registry) Register(c Currency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[c.Code] = c
}

// RegisterAll registers currencies in order, so later duplicates overwrite
// earlier ones.
func (r *Registry) RegisterAll(currs ...Currency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range currs {
		r.byCode[c.Code] = c
	}
}

// Get returns the currency registered under the given code.
//
// Get returns an error wrapping [ErrUnknownCurrency] if the code is absent;
// use [Registry.Resolve] to opt into ad hoc synthesis instead.
func (r *Registry) Get(code string) (Currency, error) {
	r.mu.RLock()
	c, ok := r.byCode[code]
	r.mu.RUnlock()
	if !ok {
		return Currency{}, fmt.Errorf("looking up %q: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

// Resolve returns the currency registered under the given code, or a minimal
// synthesized currency when the code is absent.
// The synthesized currency uses the code as its symbol and name, two
// minor-unit digits, and base 10. The synthesized value is not registered.
func (r *Registry) Resolve(code string) Currency {
	r.mu.RLock()
	c, ok := r.byCode[code]
	r.mu.RUnlock()
	if !ok {
		return synthesize(code)
	}
	return c
}

// Codes returns the registered alphabetic codes in lexical order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	r.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.RegisterAll(iso4217...)
	return r
}()

// Default returns the process-wide registry, preloaded with the ISO 4217
// table at package initialization.
func Default() *Registry {
	return defaultRegistry
}

// Get looks up a currency in the default registry.
// See also method [Registry.Get].
func Get(code string) (Currency, error) {
	return defaultRegistry.Get(code)
}

// Resolve looks up a currency in the default registry, synthesizing a
// minimal currency for unknown codes.
// See also method [Registry.Resolve].
func Resolve(code string) Currency {
	return defaultRegistry.Resolve(code)
}

// MustGet is like [Get] but panics if the code is not registered.
// It simplifies safe initialization of global variables holding currencies.
func MustGet(code string) Currency {
	c, err := Get(code)
	if err != nil {
		panic(fmt.Sprintf("Get(%q) failed: %v", code, err))
	}
	return c
}
