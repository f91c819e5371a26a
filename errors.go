package money

import "errors"

// Errors returned by the package.
// Operations wrap these sentinels with context about the failing computation,
// so callers should test them with [errors.Is].
var (
	// ErrInvalidAmount indicates that a major-unit input was not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPrecision indicates a negative precision.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrCurrencyMismatch indicates an operation between amounts denominated
	// in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRatios indicates an empty ratio list or ratios summing to zero.
	ErrInvalidRatios = errors.New("invalid ratios")

	// ErrUnknownCurrency indicates a registry lookup miss.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInvalidArgument indicates a non-finite multiplier, divisor, or rate.
	ErrInvalidArgument = errors.New("invalid argument")
)
