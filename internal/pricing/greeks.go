package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/quantgrad/quantgrad/internal/ad"
)

// Report carries the price and Greeks of one option. Values are decimals
// for downstream risk reporting; the underlying computation is float64
// throughout.
type Report struct {
	Price decimal.Decimal
	Delta decimal.Decimal // ∂V/∂S
	Gamma decimal.Decimal // ∂²V/∂S²
	Vega  decimal.Decimal // ∂V/∂σ
	Theta decimal.Decimal // -∂V/∂T, per year
	Rho   decimal.Decimal // ∂V/∂r
	Vanna decimal.Decimal // ∂²V/∂S∂σ
	Volga decimal.Decimal // ∂²V/∂σ²
}

// Greeks prices o on a fresh tape and reads every first-order Greek from a
// single reverse sweep. Gamma, vanna and volga come from the Hessian over
// (S, σ) — the spot-spot and spot-vol second derivatives of the same
// recorded trace, so no per-Greek formula is involved.
func Greeks(o Option) (Report, error) {
	if err := o.Validate(); err != nil {
		return Report{}, err
	}
	t := ad.New()
	price, m := Price(t, o)
	g := price.Accumulate()
	h := price.Hessian(m.Spot, m.Vol)
	return Report{
		Price: decimal.NewFromFloat(price.Value()),
		Delta: decimal.NewFromFloat(g.Wrt(m.Spot)),
		Gamma: decimal.NewFromFloat(h.At(0, 0)),
		Vega:  decimal.NewFromFloat(g.Wrt(m.Vol)),
		Theta: decimal.NewFromFloat(-g.Wrt(m.Expiry)),
		Rho:   decimal.NewFromFloat(g.Wrt(m.Rate)),
		Vanna: decimal.NewFromFloat(h.At(0, 1)),
		Volga: decimal.NewFromFloat(h.At(1, 1)),
	}, nil
}
