package money

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts[T any](as []Amount[T]) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Text()
	}
	return out
}

func TestAmount_Allocate(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		ratios []int64
		want   []string
	}{
		{"equal thirds", "10.00", []int64{1, 1, 1}, []string{"3.34", "3.33", "3.33"}},
		{"exact percentages", "100.00", []int64{25, 75}, []string{"25.00", "75.00"}},
		{"remainder in index order", "0.05", []int64{3, 7}, []string{"0.02", "0.03"}},
		{"zero ratio allocates zero", "10.03", []int64{1, 0, 1}, []string{"5.02", "0.00", "5.01"}},
		{"single ratio", "10.00", []int64{7}, []string{"10.00"}},
		{"negative amount", "-10.00", []int64{1, 1, 1}, []string{"-3.33", "-3.33", "-3.34"}},
		{"uneven weights", "7.31", []int64{1, 2, 4}, []string{"1.05", "2.09", "4.17"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := usd(t, tt.amount)
			parts, err := a.Allocate(tt.ratios...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(parts))

			// The parts always sum back to the original amount exactly.
			sum := a.WithUnits(0)
			for _, p := range parts {
				sum, err = sum.Add(p)
				require.NoError(t, err)
			}
			assert.True(t, sum.Equal(a), "sum %v != %v", sum, a)
		})
	}
}

func TestAmount_Allocate_Errors(t *testing.T) {
	a := usd(t, "10.00")
	_, err := a.Allocate()
	assert.ErrorIs(t, err, ErrInvalidRatios)
	_, err = a.Allocate(0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidRatios)
	_, err = a.AllocateRatios(nil)
	assert.ErrorIs(t, err, ErrInvalidRatios)
}

func TestAmount_AllocateRatios_MixedScales(t *testing.T) {
	a := usd(t, "10.00")
	// 50.5% and 49.5%, expressed at scale 1 and 3.
	parts, err := a.AllocateRatios([]Ratio[int64]{
		scaled(t, 505, 3),
		scaled(t, 495, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"5.05", "4.95"}, texts(parts))

	// A plain integer ratio mixes with a scaled one.
	parts, err = a.AllocateRatios([]Ratio[int64]{
		NewRatio[int64](1),
		scaled(t, 5, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"6.67", "3.33"}, texts(parts))
}

func TestAmount_Split(t *testing.T) {
	a := usd(t, "10.00")
	parts, err := a.Split(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"3.34", "3.33", "3.33"}, texts(parts))

	parts, err = a.Split(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.00"}, texts(parts))

	_, err = a.Split(0)
	assert.ErrorIs(t, err, ErrInvalidRatios)
	_, err = a.Split(-2)
	assert.ErrorIs(t, err, ErrInvalidRatios)
}

// The allocation invariants hold for every built-in calculator.
func TestAllocate_CalculatorAgreement(t *testing.T) {
	ratios := []int64{3, 1, 3}

	check := func(t *testing.T, got []string) {
		t.Helper()
		assert.Equal(t, []string{"4.29", "1.43", "4.28"}, got)
	}

	t.Run("int64", func(t *testing.T) {
		parts, err := usd(t, "10.00").Allocate(ratios...)
		require.NoError(t, err)
		check(t, texts(parts))
	})

	t.Run("big.Int", func(t *testing.T) {
		calc := BigIntCalculator{}
		a, err := NewFromMinorUnits(calc, big.NewInt(1000), WithCurrencyCode("USD"))
		require.NoError(t, err)
		parts, err := a.Allocate(ratios...)
		require.NoError(t, err)
		check(t, texts(parts))
	})

	t.Run("decimal", func(t *testing.T) {
		calc := DecimalCalculator{}
		a, err := NewFromMinorUnits(calc, decimal.NewFromInt(1000), WithCurrencyCode("USD"))
		require.NoError(t, err)
		parts, err := a.Allocate(ratios...)
		require.NoError(t, err)
		check(t, texts(parts))
	})
}
