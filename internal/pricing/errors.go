package pricing

import "errors"

var (
	// ErrInvalidInput marks option parameters outside the model's domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoConvergence is returned when the implied-volatility search does
	// not reach the requested tolerance within the iteration budget.
	ErrNoConvergence = errors.New("no convergence")
)
