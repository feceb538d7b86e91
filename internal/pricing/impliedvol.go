package pricing

import (
	"fmt"
	"math"

	"github.com/quantgrad/quantgrad/internal/ad"
)

const (
	maxIterations = 100
	ivTolerance   = 1e-9
	minVega       = 1e-12
)

// ImpliedVol returns the volatility at which the model reproduces the
// observed market price, via Newton-Raphson with the vega taken from the
// tape on every iteration. The Vol field of o is ignored.
//
// The search starts from the Brenner-Subrahmanyam approximation
// σ₀ ≈ price/S · √(2π/T) and returns ErrNoConvergence if it stalls (vega
// collapsing for deep in/out-of-the-money quotes) or does not reach
// tolerance within the iteration budget.
func ImpliedVol(o Option, marketPrice float64) (float64, error) {
	o.Vol = 1 // placeholder so Validate checks the remaining fields
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if marketPrice <= 0 {
		return 0, fmt.Errorf("pricing: market price %v: %w", marketPrice, ErrInvalidInput)
	}

	sigma := marketPrice / o.Spot * math.Sqrt(2*math.Pi/o.Expiry)
	if sigma < 1e-3 {
		sigma = 1e-3
	}
	for i := 0; i < maxIterations; i++ {
		o.Vol = sigma
		t := ad.New()
		price, m := Price(t, o)
		diff := price.Value() - marketPrice
		if math.Abs(diff) < ivTolerance {
			return sigma, nil
		}
		vega := price.Accumulate().Wrt(m.Vol)
		if math.Abs(vega) < minVega {
			return 0, fmt.Errorf("pricing: vega vanished at sigma=%v: %w", sigma, ErrNoConvergence)
		}
		sigma -= diff / vega
		if sigma <= 0 || math.IsNaN(sigma) {
			return 0, fmt.Errorf("pricing: search left the domain at sigma=%v: %w", sigma, ErrNoConvergence)
		}
	}
	return 0, fmt.Errorf("pricing: %d iterations exhausted: %w", maxIterations, ErrNoConvergence)
}
