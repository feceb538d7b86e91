package pricing

import (
	"github.com/quantgrad/quantgrad/internal/ad"
)

// MarketInputs are the tape inputs the price is differentiated against.
// The strike is recorded as a constant: it is a contract term, not a
// market quantity anyone hedges.
type MarketInputs struct {
	Spot     ad.Variable
	Vol      ad.Variable
	Expiry   ad.Variable
	Rate     ad.Variable
	Dividend ad.Variable
}

// Price records the Black-Scholes-Merton price of o on tape t and returns
// the price Variable together with the declared market inputs.
//
//	d1 = (ln(S/K) + (r - q + σ²/2)T) / (σ√T)
//	d2 = d1 - σ√T
//	call = S·e^(-qT)·N(d1) - K·e^(-rT)·N(d2)
//	put  = K·e^(-rT)·N(-d2) - S·e^(-qT)·N(-d1)
//
// Out-of-domain parameters (negative expiry, zero volatility) follow the
// tape's IEEE semantics and surface as NaN/Inf in value and derivatives;
// use Validate to reject them up front.
func Price(t *ad.Tape, o Option) (ad.Variable, MarketInputs) {
	m := MarketInputs{
		Spot:     t.Var(o.Spot),
		Vol:      t.Var(o.Vol),
		Expiry:   t.Var(o.Expiry),
		Rate:     t.Var(o.Rate),
		Dividend: t.Var(o.Dividend),
	}
	strike := t.Constant(o.Strike)

	sqrtT := m.Expiry.Sqrt()
	volSqrtT := m.Vol.Mul(sqrtT)
	drift := m.Rate.Sub(m.Dividend).Add(m.Vol.Mul(m.Vol).MulF(0.5))
	d1 := m.Spot.Div(strike).Ln().Add(drift.Mul(m.Expiry)).Div(volSqrtT)
	d2 := d1.Sub(volSqrtT)

	carry := m.Dividend.Neg().Mul(m.Expiry).Exp()   // e^(-qT)
	discount := m.Rate.Neg().Mul(m.Expiry).Exp()    // e^(-rT)
	fwdLeg := m.Spot.Mul(carry)                     // S·e^(-qT)
	strikeLeg := strike.Mul(discount)               // K·e^(-rT)

	var price ad.Variable
	if o.Kind == Call {
		price = fwdLeg.Mul(d1.Ncdf()).Sub(strikeLeg.Mul(d2.Ncdf()))
	} else {
		price = strikeLeg.Mul(d2.Neg().Ncdf()).Sub(fwdLeg.Mul(d1.Neg().Ncdf()))
	}
	return price, m
}
