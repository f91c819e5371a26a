package money

import (
	"fmt"
	"math"
)

// Ratio is a rational number expressed as value / 10^scale, used wherever a
// plain integer cannot express a fractional ratio or exchange rate.
// A Ratio with scale 0 is a plain integer ratio.
type Ratio[T any] struct {
	value T
	scale int
}

// NewRatio returns an integer ratio.
func NewRatio[T any](value T) Ratio[T] {
	return Ratio[T]{value: value}
}

// NewScaledRatio returns a ratio equal to value / 10^scale.
// The scale must not be negative: ratios feed amount precisions, which are
// non-negative, so a negative scale is rejected here rather than corrupting
// the amount it would produce.
//
// NewScaledRatio returns an error if the scale is negative.
func NewScaledRatio[T any](value T, scale int) (Ratio[T], error) {
	if scale < 0 {
		return Ratio[T]{}, fmt.Errorf("constructing ratio with scale %d: %w", scale, ErrInvalidPrecision)
	}
	return Ratio[T]{value: value, scale: scale}, nil
}

// RatioFromFloat64 converts a float to an exact ratio.
//
// RatioFromFloat64 returns an error if the float is NaN or infinite, or its
// decimal coefficient does not fit the parsing range.
func RatioFromFloat64[T any](calc Calculator[T], f float64) (Ratio[T], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Ratio[T]{}, fmt.Errorf("converting float %v: %w", f, ErrInvalidArgument)
	}
	dec, err := decomposeFloat(f)
	if err != nil {
		return Ratio[T]{}, fmt.Errorf("converting float %v: %w", f, ErrInvalidArgument)
	}
	return Ratio[T]{value: calc.FromInt64(dec.coef), scale: dec.scale}, nil
}

// Value returns the integer numerator of the ratio.
func (r Ratio[T]) Value() T {
	return r.value
}

// Scale returns the power of ten dividing the numerator.
func (r Ratio[T]) Scale() int {
	return r.scale
}
