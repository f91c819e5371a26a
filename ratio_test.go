package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaled builds a validated int64 ratio for tests.
func scaled(t *testing.T, value int64, scale int) Ratio[int64] {
	t.Helper()
	r, err := NewScaledRatio(value, scale)
	require.NoError(t, err)
	return r
}

func TestNewScaledRatio(t *testing.T) {
	r := scaled(t, 897, 3)
	assert.Equal(t, int64(897), r.Value())
	assert.Equal(t, 3, r.Scale())

	r = scaled(t, 5, 0)
	assert.Equal(t, 0, r.Scale())

	// A negative scale would push an amount's precision below zero, so it
	// never leaves the constructor.
	_, err := NewScaledRatio[int64](2, -1)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

// Ratios flow into amount precisions, so every constructed ratio must keep
// the resulting precision non-negative and the amount renderable.
func TestMulRatio_KeepsPrecisionNonNegative(t *testing.T) {
	a := MustParse(i64, "500", WithCurrencyCode("JPY"))
	b := a.MulRatio(scaled(t, 2, 1)) // x 0.2
	assert.Equal(t, 1, b.Scale())
	assert.Equal(t, "100.0", b.Text())

	c := a.MulRatio(NewRatio[int64](2))
	assert.Equal(t, 0, c.Scale())
	assert.Equal(t, "1000", c.Text())
}

func TestRatioFromFloat64(t *testing.T) {
	r, err := RatioFromFloat64(i64, 0.897)
	require.NoError(t, err)
	assert.Equal(t, int64(897), r.Value())
	assert.Equal(t, 3, r.Scale())

	r, err = RatioFromFloat64(i64, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.Value())
	assert.Equal(t, 0, r.Scale())

	_, err = RatioFromFloat64(i64, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = RatioFromFloat64(i64, math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = RatioFromFloat64(i64, 1e30)
	assert.ErrorIs(t, err, ErrInvalidArgument, "oversized coefficient is an argument problem")
}
