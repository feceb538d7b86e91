package ad_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/quantgrad/quantgrad/internal/ad"
)

// TestHessian_Quadratic tests f = x²y + y³ against the hand-derived
// Hessian [[2y, 2x], [2x, 6y]].
func TestHessian_Quadratic(t *testing.T) {
	tape := ad.New()
	x := tape.Var(2.0)
	y := tape.Var(3.0)
	f := x.Mul(x).Mul(y).Add(y.Mul(y).Mul(y))

	h := f.Hessian(x, y)
	want := [][]float64{
		{6, 4},
		{4, 18},
	}
	for i := range want {
		for j := range want[i] {
			if got := h.At(i, j); math.Abs(got-want[i][j]) > 1e-10 {
				t.Errorf("H[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// TestHessian_PowMixed tests x^y at (3,2), where the cross partial
// exercises both branches of the power rule.
func TestHessian_PowMixed(t *testing.T) {
	tape := ad.New()
	x := tape.Var(3.0)
	y := tape.Var(2.0)
	h := x.Pow(y).Hessian(x, y)

	ln3 := math.Log(3)
	wantXX := 2.0                // y(y-1)x^(y-2)
	wantXY := 3 + 2*3*ln3        // x^(y-1)(1 + y ln x)
	wantYY := 9 * ln3 * ln3      // x^y ln²x

	if got := h.At(0, 0); math.Abs(got-wantXX) > 1e-9 {
		t.Errorf("∂²(x^y)/∂x² = %v, want %v", got, wantXX)
	}
	if got := h.At(0, 1); math.Abs(got-wantXY) > 1e-9 {
		t.Errorf("∂²(x^y)/∂x∂y = %v, want %v", got, wantXY)
	}
	if got := h.At(1, 1); math.Abs(got-wantYY) > 1e-9 {
		t.Errorf("∂²(x^y)/∂y² = %v, want %v", got, wantYY)
	}
}

// TestHessian_Symmetry tests Schwarz symmetry on a trace mixing most
// recorded operation kinds.
func TestHessian_Symmetry(t *testing.T) {
	tape := ad.New()
	x := tape.Var(0.8)
	y := tape.Var(1.4)
	z := tape.Var(0.5)
	f := x.Exp().Mul(y.Sin()).Add(x.Div(y).Tanh()).Sub(z.Mul(x).Ncdf()).Add(y.Pow(z))

	h := f.Hessian(x, y, z)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if d := math.Abs(h.At(i, j) - h.At(j, i)); d > 1e-9 {
				t.Errorf("|H[%d][%d] - H[%d][%d]| = %v, want < 1e-9", i, j, j, i, d)
			}
		}
	}
}

// TestHessian_LinearIsZero tests that a linear trace has a zero Hessian.
func TestHessian_LinearIsZero(t *testing.T) {
	tape := ad.New()
	x := tape.Var(1.0)
	y := tape.Var(2.0)
	f := x.MulF(3).Add(y.MulF(2)).SubF(7)

	h := f.Hessian(x, y)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := h.At(i, j); got != 0 {
				t.Errorf("H[%d][%d] = %v, want exactly 0", i, j, got)
			}
		}
	}
}

// TestHessian_DiagAndRow tests the partial requests against the full
// matrix.
func TestHessian_DiagAndRow(t *testing.T) {
	tape := ad.New()
	x := tape.Var(0.9)
	y := tape.Var(1.1)
	f := x.Sin().Mul(y.Cos()).Add(x.Mul(y).Exp())

	h := f.Hessian(x, y)
	diag := f.HessianDiag(x, y)
	if math.Abs(diag[0]-h.At(0, 0)) > 1e-12 || math.Abs(diag[1]-h.At(1, 1)) > 1e-12 {
		t.Errorf("HessianDiag = %v, want diagonal of %v", diag, h.RawMatrix().Data)
	}

	row := f.HessianRow(y, x, y)
	want := []float64{h.At(1, 0), h.At(1, 1)}
	if !floats.EqualApprox(row, want, 1e-12) {
		t.Errorf("HessianRow(y) = %v, want %v", row, want)
	}
}

// TestHessian_SecondDerivativeNumerical cross-checks a pure second
// derivative against a central second-difference estimate.
func TestHessian_SecondDerivativeNumerical(t *testing.T) {
	const at = 0.6
	eval := func(v float64) float64 { return math.Exp(math.Sin(v)) }

	tape := ad.New()
	x := tape.Var(at)
	f := x.Sin().Exp()

	got := f.HessianDiag(x)[0]
	want := fd.Derivative(eval, at, &fd.Settings{Formula: fd.Central2nd})
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("f''(%v) = %v, central difference = %v", at, got, want)
	}
}

// TestHessian_FanOut tests second derivatives through shared
// subexpressions: f = g + g with g = x³.
func TestHessian_FanOut(t *testing.T) {
	tape := ad.New()
	x := tape.Var(2.0)
	g := x.Mul(x).Mul(x)
	f := g.Add(g)

	// f = 2x³, f'' = 12x = 24.
	if got := f.HessianDiag(x)[0]; math.Abs(got-24) > 1e-10 {
		t.Errorf("d²(2x³)/dx² = %v, want 24", got)
	}
}

// TestHessian_DoesNotDependOn tests that rows for unused inputs are zero.
func TestHessian_DoesNotDependOn(t *testing.T) {
	tape := ad.New()
	x := tape.Var(1.0)
	y := tape.Var(2.0) // never used
	f := x.Mul(x)

	h := f.Hessian(x, y)
	if h.At(0, 0) != 2 {
		t.Errorf("H[0][0] = %v, want 2", h.At(0, 0))
	}
	for _, entry := range []float64{h.At(0, 1), h.At(1, 0), h.At(1, 1)} {
		if entry != 0 {
			t.Errorf("entries for unused input = %v, want 0", entry)
		}
	}
}

// TestHessian_DoesNotMutateTape tests that differentiation leaves the
// original tape untouched.
func TestHessian_DoesNotMutateTape(t *testing.T) {
	tape := ad.New()
	x := tape.Var(1.5)
	f := x.Sin().Mul(x)

	before := tape.Len()
	f.Hessian(x)
	f.Hessian(x)
	if tape.Len() != before {
		t.Errorf("Hessian grew the tape from %d to %d nodes", before, tape.Len())
	}

	g1 := f.Accumulate().Wrt(x)
	f.Hessian(x)
	g2 := f.Accumulate().Wrt(x)
	if g1 != g2 {
		t.Errorf("gradient changed after Hessian: %v vs %v", g1, g2)
	}
}

// TestHessian_NonInputPanics tests that requesting second derivatives for
// constants or intermediates is reported as misuse.
func TestHessian_NonInputPanics(t *testing.T) {
	tape := ad.New()
	x := tape.Var(1.0)
	c := tape.Constant(2.0)
	f := x.Mul(c)

	assertPanics(t, "Hessian(constant)", func() { f.Hessian(c) })
	assertPanics(t, "Hessian(intermediate)", func() { f.Hessian(f) })
	assertPanics(t, "Hessian()", func() { f.Hessian() })

	other := ad.New().Var(3.0)
	assertPanics(t, "Hessian(foreign tape)", func() { f.Hessian(other) })
}
