package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{RoundUp, "UP"},
		{RoundDown, "DOWN"},
		{RoundTowardsZero, "TOWARDS_ZERO"},
		{RoundAwayFromZero, "AWAY_FROM_ZERO"},
		{RoundHalfUp, "HALF_UP"},
		{RoundHalfDown, "HALF_DOWN"},
		{RoundHalfEven, "HALF_EVEN"},
		{RoundHalfOdd, "HALF_ODD"},
		{RoundHalfTowardsZero, "HALF_TOWARDS_ZERO"},
		{RoundHalfAwayFromZero, "HALF_AWAY_FROM_ZERO"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
			m, err := ParseRoundingMode(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, m)
		})
	}

	assert.Equal(t, "RoundingMode(255)", RoundingMode(255).String())
	_, err := ParseRoundingMode("NEAREST")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestDivRound_Table checks every mode against dividing tenths by ten, so
// each case reads as rounding a one-decimal value to an integer.
func TestDivRound_Table(t *testing.T) {
	calc := Int64Calculator{}
	tests := []struct {
		mode     RoundingMode
		dividend int64 // tenths
		want     int64
	}{
		// 2.5 and 3.5 are the canonical banker's rounding checks.
		{RoundHalfEven, 25, 2},
		{RoundHalfEven, 35, 4},
		{RoundHalfUp, 25, 3},
		{RoundHalfDown, 25, 2},

		{RoundUp, 21, 3},
		{RoundUp, 29, 3},
		{RoundUp, -21, -2},
		{RoundUp, 20, 2},
		{RoundDown, 21, 2},
		{RoundDown, -21, -3},
		{RoundDown, -20, -2},
		{RoundTowardsZero, 29, 2},
		{RoundTowardsZero, -29, -2},
		{RoundAwayFromZero, 21, 3},
		{RoundAwayFromZero, -21, -3},
		{RoundAwayFromZero, 20, 2},

		{RoundHalfUp, 24, 2},
		{RoundHalfUp, 26, 3},
		{RoundHalfUp, -25, -2},
		{RoundHalfUp, -26, -3},
		{RoundHalfDown, 26, 3},
		{RoundHalfDown, -25, -3},
		{RoundHalfDown, -24, -2},
		{RoundHalfEven, -25, -2},
		{RoundHalfEven, -35, -4},
		{RoundHalfEven, 26, 3},
		{RoundHalfOdd, 25, 3},
		{RoundHalfOdd, 35, 3},
		{RoundHalfOdd, -25, -3},
		{RoundHalfOdd, 24, 2},
		{RoundHalfTowardsZero, 25, 2},
		{RoundHalfTowardsZero, -25, -2},
		{RoundHalfTowardsZero, 26, 3},
		{RoundHalfAwayFromZero, 25, 3},
		{RoundHalfAwayFromZero, -25, -3},
		{RoundHalfAwayFromZero, 24, 2},
	}
	for _, tt := range tests {
		got, err := divRound[int64](calc, tt.dividend, 10, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "divRound(%v, 10, %v)", tt.dividend, tt.mode)
	}
}

func TestDivRound_ExactQuotient(t *testing.T) {
	calc := Int64Calculator{}
	for mode := range roundingModeNames {
		got, err := divRound[int64](calc, 40, 10, mode)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got, "mode %v", mode)
	}
}

func TestDivRound_NegativeDivisor(t *testing.T) {
	calc := Int64Calculator{}
	tests := []struct {
		mode     RoundingMode
		dividend int64
		divisor  int64
		want     int64
	}{
		{RoundHalfEven, 25, -10, -2},
		{RoundHalfUp, 25, -10, -2},
		{RoundHalfDown, 25, -10, -3},
		{RoundAwayFromZero, 21, -10, -3},
		{RoundUp, 21, -10, -2},
		{RoundDown, 21, -10, -3},
	}
	for _, tt := range tests {
		got, err := divRound[int64](calc, tt.dividend, tt.divisor, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "divRound(%v, %v, %v)", tt.dividend, tt.divisor, tt.mode)
	}
}

func TestDivRound_ZeroDivisor(t *testing.T) {
	calc := Int64Calculator{}
	_, err := divRound[int64](calc, 1, 0, RoundHalfEven)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// The three built-in calculators must agree on every rounding decision.
func TestDivRound_CalculatorAgreement(t *testing.T) {
	i64 := Int64Calculator{}
	big := BigIntCalculator{}
	dec := DecimalCalculator{}
	dividends := []int64{-37, -35, -25, -21, -5, 0, 5, 21, 25, 35, 37}
	for mode := range roundingModeNames {
		for _, n := range dividends {
			want, err := divRound[int64](i64, n, 10, mode)
			require.NoError(t, err)

			gotBig, err := divRound(big, big.FromInt64(n), big.FromInt64(10), mode)
			require.NoError(t, err)
			assert.Equal(t, want, gotBig.Int64(), "big.Int: divRound(%v, 10, %v)", n, mode)

			gotDec, err := divRound(dec, dec.FromInt64(n), dec.FromInt64(10), mode)
			require.NoError(t, err)
			assert.Equal(t, want, gotDec.IntPart(), "decimal: divRound(%v, 10, %v)", n, mode)
		}
	}
}
