// Copyright 2026 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides scalar reverse-mode automatic differentiation.
//
// A computation built from Variables is recorded on a Tape as a side effect
// of ordinary arithmetic; one backward sweep then produces exact first
// derivatives with respect to every declared input, and Hessian produces
// exact second derivatives. There is no finite differencing anywhere.
//
// Example:
//
//	import "github.com/quantgrad/quantgrad/ad"
//
//	func main() {
//	    t := ad.New()
//	    x := t.Var(3.0)
//	    y := t.Var(2.0)
//	    z := t.Var(1.0)
//
//	    f := x.Pow(y).Add(t.Constant(1.0).Sin()).Sub(z.Asinh().DivF(2.0))
//
//	    g := f.Accumulate()
//	    g.Wrt(x) // df/dx = y*x^(y-1) = 6
//	    g.Wrt(y) // df/dy = x^y * ln(x) ≈ 9.8875
//	    g.Wrt(z) // df/dz = -1/(2*sqrt(z*z+1)) ≈ -0.3536
//
//	    h := f.Hessian(x, y) // second derivatives, symmetric
//	    _ = h
//	}
package ad

import (
	"github.com/quantgrad/quantgrad/internal/ad"
)

// Tape is an append-only recording of one differentiation session.
type Tape = ad.Tape

// Variable is a handle to one recorded value on a Tape.
type Variable = ad.Variable

// Gradient is the result of one backward sweep.
type Gradient = ad.Gradient

// New creates a new, empty tape.
//
// A single process may hold any number of independent tapes; each is its
// own isolated differentiation session.
func New() *Tape {
	return ad.New()
}
