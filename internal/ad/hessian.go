package ad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Second derivatives are computed by differentiating the adjoint sweep
// itself on a second tape. The recorded tape is replayed node by node onto
// a fresh tape (possible because each node keeps its opcode), every local
// partial is re-expressed as a Variable expression of the replayed
// operands, and the backward sweep is then run in Variable arithmetic. The
// adjoint of input x_i on the second tape is itself a recorded function of
// all inputs, so one ordinary Accumulate of it yields Hessian row i.

// Hessian returns the matrix of second partial derivatives of x with
// respect to the given inputs: entry (i,j) is ∂²x/∂vars[i]∂vars[j]. The
// result is symmetric to within floating-point rounding.
//
// Every element of vars must be an input declared with Var on the same
// tape; requesting a second derivative for a constant or an intermediate
// node panics.
func (x Variable) Hessian(vars ...Variable) *mat.Dense {
	x.mustLive("Hessian")
	if len(vars) == 0 {
		panic("ad: Hessian: no variables requested")
	}
	for _, v := range vars {
		checkInput("Hessian", x.tape, v)
	}
	adj, replayed := x.adjointVariables()
	h := mat.NewDense(len(vars), len(vars), nil)
	for i, v := range vars {
		h.SetRow(i, hessianRow(adj[v.index], replayed, vars))
	}
	return h
}

// HessianRow returns the single row ∂²x/∂v∂vars[j], cheaper than the full
// matrix when only one input's second-order sensitivities are needed.
func (x Variable) HessianRow(v Variable, vars ...Variable) []float64 {
	x.mustLive("HessianRow")
	checkInput("HessianRow", x.tape, v)
	for _, w := range vars {
		checkInput("HessianRow", x.tape, w)
	}
	adj, replayed := x.adjointVariables()
	return hessianRow(adj[v.index], replayed, vars)
}

// HessianDiag returns the pure second derivatives ∂²x/∂vars[i]².
func (x Variable) HessianDiag(vars ...Variable) []float64 {
	x.mustLive("HessianDiag")
	for _, v := range vars {
		checkInput("HessianDiag", x.tape, v)
	}
	adj, replayed := x.adjointVariables()
	out := make([]float64, len(vars))
	for i, v := range vars {
		a := adj[v.index]
		if a == nil {
			continue
		}
		out[i] = a.Accumulate().Wrt(replayed[v.index])
	}
	return out
}

// hessianRow accumulates one adjoint Variable and reads its derivative with
// respect to each replayed input. A nil adjoint means the output does not
// depend on that input at all; the row is zero.
func hessianRow(a *Variable, replayed []Variable, vars []Variable) []float64 {
	row := make([]float64, len(vars))
	if a == nil {
		return row
	}
	g := a.Accumulate()
	for j, v := range vars {
		row[j] = g.Wrt(replayed[v.index])
	}
	return row
}

// adjointVariables replays the tape onto a fresh one and runs the backward
// sweep for x in Variable arithmetic. It returns the adjoint Variable of
// every original node (nil where no gradient flows) together with the
// replayed counterpart of every original node.
func (x Variable) adjointVariables() ([]*Variable, []Variable) {
	t := x.tape
	onto := New()
	replayed := t.replay(onto)
	adj := make([]*Variable, len(t.nodes))
	seed := onto.Constant(1)
	adj[x.index] = &seed
	for i := x.index; i >= 0; i-- {
		n := t.nodes[i]
		a := adj[i]
		if a == nil || n.op == opVar || n.op == opConst {
			continue
		}
		// Additions only reroute the adjoint; no partial expression needed.
		switch n.op {
		case opAdd:
			addAdjoint(adj, n.parents[0], *a)
			addAdjoint(adj, n.parents[1], *a)
			continue
		case opSub:
			addAdjoint(adj, n.parents[0], *a)
			addAdjoint(adj, n.parents[1], a.Neg())
			continue
		case opNeg:
			addAdjoint(adj, n.parents[0], a.Neg())
			continue
		}
		p0, p1 := partialVariables(n, replayed, onto)
		addAdjoint(adj, n.parents[0], a.Mul(p0))
		if n.op.binary() {
			addAdjoint(adj, n.parents[1], a.Mul(p1))
		}
	}
	return adj, replayed
}

func addAdjoint(adj []*Variable, idx int, v Variable) {
	if adj[idx] == nil {
		adj[idx] = &v
		return
	}
	sum := adj[idx].Add(v)
	adj[idx] = &sum
}

// replay re-records every node of t onto a fresh tape, mapping original
// node indices to new Variables. Values are reproduced exactly since the
// same operations run on the same inputs.
func (t *Tape) replay(onto *Tape) []Variable {
	out := make([]Variable, len(t.nodes))
	for i, n := range t.nodes {
		switch n.op {
		case opVar:
			out[i] = onto.Var(t.values[i])
		case opConst:
			out[i] = onto.Constant(t.values[i])
		case opAdd:
			out[i] = out[n.parents[0]].Add(out[n.parents[1]])
		case opSub:
			out[i] = out[n.parents[0]].Sub(out[n.parents[1]])
		case opMul:
			out[i] = out[n.parents[0]].Mul(out[n.parents[1]])
		case opDiv:
			out[i] = out[n.parents[0]].Div(out[n.parents[1]])
		case opPow:
			out[i] = out[n.parents[0]].Pow(out[n.parents[1]])
		case opNeg:
			out[i] = out[n.parents[0]].Neg()
		case opAbs:
			out[i] = out[n.parents[0]].Abs()
		case opRecip:
			out[i] = out[n.parents[0]].Recip()
		case opSqrt:
			out[i] = out[n.parents[0]].Sqrt()
		case opExp:
			out[i] = out[n.parents[0]].Exp()
		case opLn:
			out[i] = out[n.parents[0]].Ln()
		case opLog2:
			out[i] = out[n.parents[0]].Log2()
		case opLog10:
			out[i] = out[n.parents[0]].Log10()
		case opSin:
			out[i] = out[n.parents[0]].Sin()
		case opCos:
			out[i] = out[n.parents[0]].Cos()
		case opTan:
			out[i] = out[n.parents[0]].Tan()
		case opAsin:
			out[i] = out[n.parents[0]].Asin()
		case opAcos:
			out[i] = out[n.parents[0]].Acos()
		case opAtan:
			out[i] = out[n.parents[0]].Atan()
		case opSinh:
			out[i] = out[n.parents[0]].Sinh()
		case opCosh:
			out[i] = out[n.parents[0]].Cosh()
		case opTanh:
			out[i] = out[n.parents[0]].Tanh()
		case opAsinh:
			out[i] = out[n.parents[0]].Asinh()
		case opAcosh:
			out[i] = out[n.parents[0]].Acosh()
		case opAtanh:
			out[i] = out[n.parents[0]].Atanh()
		case opNcdf:
			out[i] = out[n.parents[0]].Ncdf()
		case opNpdf:
			out[i] = out[n.parents[0]].Npdf()
		default:
			panic(fmt.Sprintf("ad: replay: unknown opcode %d", n.op))
		}
	}
	return out
}

// partialVariables re-expresses the local partials of node n as Variable
// expressions of the replayed operands, so the adjoint sweep itself becomes
// a recorded, differentiable computation. Add/Sub/Neg are handled directly
// by the sweep and never reach here.
func partialVariables(n node, replayed []Variable, onto *Tape) (Variable, Variable) {
	x := replayed[n.parents[0]]
	var none Variable
	switch n.op {
	case opMul:
		y := replayed[n.parents[1]]
		return y, x
	case opDiv:
		y := replayed[n.parents[1]]
		return y.Recip(), x.Neg().Div(y.Mul(y))
	case opPow:
		y := replayed[n.parents[1]]
		return y.Mul(x.Pow(y.SubF(1))), x.Pow(y).Mul(x.Ln())
	case opAbs:
		// Piecewise constant away from zero.
		return onto.Constant(math.Copysign(1, x.Value())), none
	case opRecip:
		return x.Mul(x).Recip().Neg(), none
	case opSqrt:
		return x.Sqrt().MulF(2).Recip(), none
	case opExp:
		return x.Exp(), none
	case opLn:
		return x.Recip(), none
	case opLog2:
		return x.MulF(math.Ln2).Recip(), none
	case opLog10:
		return x.MulF(math.Ln10).Recip(), none
	case opSin:
		return x.Cos(), none
	case opCos:
		return x.Sin().Neg(), none
	case opTan:
		tan := x.Tan()
		return tan.Mul(tan).AddF(1), none
	case opAsin:
		return x.Mul(x).Neg().AddF(1).Sqrt().Recip(), none
	case opAcos:
		return x.Mul(x).Neg().AddF(1).Sqrt().Recip().Neg(), none
	case opAtan:
		return x.Mul(x).AddF(1).Recip(), none
	case opSinh:
		return x.Cosh(), none
	case opCosh:
		return x.Sinh(), none
	case opTanh:
		tanh := x.Tanh()
		return tanh.Mul(tanh).Neg().AddF(1), none
	case opAsinh:
		return x.Mul(x).AddF(1).Sqrt().Recip(), none
	case opAcosh:
		return x.Mul(x).SubF(1).Sqrt().Recip(), none
	case opAtanh:
		return x.Mul(x).Neg().AddF(1).Recip(), none
	case opNcdf:
		return x.Npdf(), none
	case opNpdf:
		return x.Neg().Mul(x.Npdf()), none
	default:
		panic(fmt.Sprintf("ad: partials: unknown opcode %d", n.op))
	}
}
