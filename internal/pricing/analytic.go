package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Analytic holds closed-form Black-Scholes-Merton values. It exists as an
// independent reference for the tape-derived Greeks: the two paths share no
// code beyond the parameter struct.
type Analytic struct {
	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
	Vanna float64
	Volga float64
}

// AnalyticGreeks evaluates the textbook closed-form price and Greeks of o.
func AnalyticGreeks(o Option) Analytic {
	sqrtT := math.Sqrt(o.Expiry)
	d1 := (math.Log(o.Spot/o.Strike) + (o.Rate-o.Dividend+0.5*o.Vol*o.Vol)*o.Expiry) / (o.Vol * sqrtT)
	d2 := d1 - o.Vol*sqrtT
	carry := math.Exp(-o.Dividend * o.Expiry)
	discount := math.Exp(-o.Rate * o.Expiry)
	pdfD1 := stdNormal.Prob(d1)

	a := Analytic{
		Gamma: carry * pdfD1 / (o.Spot * o.Vol * sqrtT),
		Vega:  o.Spot * carry * pdfD1 * sqrtT,
		Vanna: -carry * pdfD1 * d2 / o.Vol,
		Volga: o.Spot * carry * pdfD1 * sqrtT * d1 * d2 / o.Vol,
	}
	decay := -o.Spot * carry * pdfD1 * o.Vol / (2 * sqrtT)
	if o.Kind == Call {
		a.Price = o.Spot*carry*stdNormal.CDF(d1) - o.Strike*discount*stdNormal.CDF(d2)
		a.Delta = carry * stdNormal.CDF(d1)
		a.Theta = decay - o.Rate*o.Strike*discount*stdNormal.CDF(d2) + o.Dividend*o.Spot*carry*stdNormal.CDF(d1)
		a.Rho = o.Strike * o.Expiry * discount * stdNormal.CDF(d2)
	} else {
		a.Price = o.Strike*discount*stdNormal.CDF(-d2) - o.Spot*carry*stdNormal.CDF(-d1)
		a.Delta = carry * (stdNormal.CDF(d1) - 1)
		a.Theta = decay + o.Rate*o.Strike*discount*stdNormal.CDF(-d2) - o.Dividend*o.Spot*carry*stdNormal.CDF(-d1)
		a.Rho = -o.Strike * o.Expiry * discount * stdNormal.CDF(-d2)
	}
	return a
}
