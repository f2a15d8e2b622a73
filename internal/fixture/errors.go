package fixture

import "errors"

// Sentinel errors for corpus generation.
var (
	// ErrBudgetExhausted indicates the attempt budget ran out before the
	// target number of fixtures was accepted.
	ErrBudgetExhausted = errors.New("attempt budget exhausted")

	// ErrInvalidTarget indicates a non-positive fixture target.
	ErrInvalidTarget = errors.New("target must be positive")
)
