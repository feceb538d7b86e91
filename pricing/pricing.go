// Copyright 2026 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pricing provides European option pricing with Greeks computed by
// automatic differentiation.
//
// The Black-Scholes-Merton price is recorded on an ad.Tape, so delta, vega,
// theta and rho all come from one reverse sweep, and gamma, vanna and volga
// from the Hessian of the same trace. Closed-form reference Greeks are
// available through AnalyticGreeks for cross-checking.
//
// Example:
//
//	opt := pricing.Option{
//	    Spot: 100, Strike: 100, Rate: 0.05,
//	    Vol: 0.2, Expiry: 1, Kind: pricing.Call,
//	}
//	report, err := pricing.Greeks(opt)
package pricing

import (
	"github.com/quantgrad/quantgrad/ad"
	"github.com/quantgrad/quantgrad/internal/pricing"
)

// Option holds Black-Scholes-Merton parameters for a European option.
type Option = pricing.Option

// Kind selects the option payoff.
type Kind = pricing.Kind

const (
	Call = pricing.Call
	Put  = pricing.Put
)

// Report carries the price and the AD-derived Greeks of one option.
type Report = pricing.Report

// MarketInputs are the tape inputs the price is differentiated against.
type MarketInputs = pricing.MarketInputs

// Analytic holds the closed-form reference price and Greeks.
type Analytic = pricing.Analytic

var (
	// ErrInvalidInput marks option parameters outside the model's domain.
	ErrInvalidInput = pricing.ErrInvalidInput

	// ErrNoConvergence is returned by ImpliedVol when the search fails.
	ErrNoConvergence = pricing.ErrNoConvergence
)

// Price records the option price on tape t and returns it together with
// the declared market inputs, for callers composing larger computations.
func Price(t *ad.Tape, o Option) (ad.Variable, MarketInputs) {
	return pricing.Price(t, o)
}

// Greeks prices o on a fresh tape and returns every Greek from the
// gradient and Hessian of the recorded trace.
func Greeks(o Option) (Report, error) {
	return pricing.Greeks(o)
}

// AnalyticGreeks evaluates the textbook closed-form price and Greeks.
func AnalyticGreeks(o Option) Analytic {
	return pricing.AnalyticGreeks(o)
}

// ImpliedVol inverts the model for volatility using Newton-Raphson with
// the vega taken from the tape.
func ImpliedVol(o Option, marketPrice float64) (float64, error) {
	return pricing.ImpliedVol(o, marketPrice)
}
