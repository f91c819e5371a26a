package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetAndRegister(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("USD")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	r.Register(Currency{Code: "USD", Num: 840, Precision: 2, Symbol: "$", Name: "United States Dollar"})
	c, err := r.Get("USD")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, "$", c.Symbol)

	// Last write wins.
	r.Register(Currency{Code: "USD", Num: 840, Precision: 4, Symbol: "$", Name: "United States Dollar"})
	c, err = r.Get("USD")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Precision)

	// Lookup is case-sensitive.
	_, err = r.Get("usd")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestRegistry_RegisterAll(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(
		Currency{Code: "EUR", Precision: 2},
		Currency{Code: "JPY", Precision: 0},
		Currency{Code: "EUR", Precision: 3},
	)
	c, err := r.Get("EUR")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Precision, "later duplicate overwrites earlier")
	assert.Equal(t, []string{"EUR", "JPY"}, r.Codes())
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	r.Register(Currency{Code: "CHF", Precision: 2, Symbol: "CHF", Name: "Swiss Franc"})

	c := r.Resolve("CHF")
	assert.Equal(t, "Swiss Franc", c.Name)

	// Unknown codes synthesize a minimal currency instead of failing.
	c = r.Resolve("WOW")
	assert.Equal(t, "WOW", c.Code)
	assert.Equal(t, "WOW", c.Symbol)
	assert.Equal(t, "WOW", c.Name)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, 10, c.Base())

	// Synthesis does not register.
	_, err := r.Get("WOW")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestDefaultRegistry(t *testing.T) {
	tests := []struct {
		code      string
		num       int
		precision int
	}{
		{"USD", 840, 2},
		{"EUR", 978, 2},
		{"JPY", 392, 0},
		{"BHD", 48, 3},
		{"OMR", 512, 3},
		{"CLF", 990, 4},
		{"XXX", 999, 0},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := Get(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.num, c.Num)
			assert.Equal(t, tt.precision, c.Precision)
		})
	}

	_, err := Get("ZZZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.Equal(t, "ZZZ", Resolve("ZZZ").Code)
	assert.NotPanics(t, func() { MustGet("USD") })
	assert.Panics(t, func() { MustGet("ZZZ") })
}

func TestCurrency_Factor(t *testing.T) {
	usd := MustGet("USD")
	assert.Equal(t, int64(1), usd.Factor(0))
	assert.Equal(t, int64(100), usd.Factor(2))
	assert.Equal(t, int64(100000), usd.Factor(5))

	// Pre-decimal pound sterling: 20 shillings of 12 pence each.
	lsd := Currency{Code: "GBP", Precision: 2, Symbol: "£", Name: "Pound Sterling", Bases: []int{20, 12}}
	assert.Equal(t, 20, lsd.Base())
	assert.Equal(t, int64(20), lsd.Factor(1))
	assert.Equal(t, int64(240), lsd.Factor(2))
	// The last radix repeats past the end of the list.
	assert.Equal(t, int64(2880), lsd.Factor(3))
}

func TestCurrency_JSON(t *testing.T) {
	usd := MustGet("USD")
	data, err := json.Marshal(usd)
	require.NoError(t, err)
	assert.Equal(t, `"USD"`, string(data))

	var c Currency
	require.NoError(t, json.Unmarshal([]byte(`"EUR"`), &c))
	assert.Equal(t, "€", c.Symbol)

	// Unknown codes resolve to a synthesized currency.
	require.NoError(t, json.Unmarshal([]byte(`"ABC"`), &c))
	assert.Equal(t, "ABC", c.Code)
	assert.Equal(t, 2, c.Precision)

	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, "ABC", c.Code, "null leaves the value untouched")
}

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "USD", MustGet("USD").String())
	assert.Equal(t, "", Currency{}.String())
}
