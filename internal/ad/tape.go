// Package ad implements scalar reverse-mode automatic differentiation.
//
// A computation is recorded on a Tape as a Wengert list: every arithmetic
// operation on a Variable appends one node holding the operand indices and
// the local partial derivatives evaluated at the recorded values. A single
// backward sweep over the tape then yields exact first derivatives of the
// final result with respect to every declared input, and a second
// differentiation pass yields second derivatives.
//
// Usage:
//
//	t := ad.New()
//	x := t.Var(3.0)
//	y := t.Var(2.0)
//	z := x.Pow(y)            // z = x^y, recorded on t
//	g := z.Accumulate()
//	g.Wrt(x)                 // dz/dx = y*x^(y-1) = 6
package ad

import "fmt"

// opcode identifies the elementary operation a node performs.
type opcode uint8

const (
	opConst opcode = iota // constant leaf, never a differentiation target
	opVar                 // declared input, a differentiation root
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opNeg
	opAbs
	opRecip
	opSqrt
	opExp
	opLn
	opLog2
	opLog10
	opSin
	opCos
	opTan
	opAsin
	opAcos
	opAtan
	opSinh
	opCosh
	opTanh
	opAsinh
	opAcosh
	opAtanh
	opNcdf
	opNpdf
)

// binary reports whether the opcode consumes two operands.
func (op opcode) binary() bool {
	switch op {
	case opAdd, opSub, opMul, opDiv, opPow:
		return true
	}
	return false
}

// node is one recorded elementary operation. Parent indices always point at
// strictly earlier nodes, so the tape is a DAG by construction. Partials are
// concrete numbers evaluated at record time; the opcode is kept alongside
// them so the tape can be replayed when second derivatives are requested.
//
// Leaves (Var, Const) and unary nodes fill the unused slots with the node's
// own index and a zero partial.
type node struct {
	op       opcode
	parents  [2]int
	partials [2]float64
}

// Tape is an append-only arena of nodes recording one differentiation
// session. It owns the whole computation graph: nodes reference each other
// by index, and dropping the Tape drops every node with it.
//
// A Tape is not safe for concurrent mutation. Independent Tapes are fully
// isolated and may be used from different goroutines without coordination.
type Tape struct {
	nodes  []node
	values []float64 // value of each node, parallel to nodes
}

// New creates an empty tape.
func New() *Tape {
	return &Tape{
		nodes:  make([]node, 0, 64), // pre-allocate for common case
		values: make([]float64, 0, 64),
	}
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Var declares a differentiable input with the given value and returns its
// handle. Every independent quantity the caller wants derivatives with
// respect to must be declared through Var (or Vars).
func (t *Tape) Var(value float64) Variable {
	return t.leaf(opVar, value)
}

// Vars declares one input per value, all sharing this tape, in order.
func (t *Tape) Vars(values ...float64) []Variable {
	vars := make([]Variable, len(values))
	for i, v := range values {
		vars[i] = t.Var(v)
	}
	return vars
}

// Constant records a constant leaf. Constants participate in forward value
// propagation but are never differentiation targets: their adjoints are
// discarded by the accumulator.
func (t *Tape) Constant(value float64) Variable {
	return t.leaf(opConst, value)
}

func (t *Tape) leaf(op opcode, value float64) Variable {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{op: op, parents: [2]int{idx, idx}})
	t.values = append(t.values, value)
	return Variable{tape: t, index: idx, value: value}
}

// record appends a node for an elementary operation and returns the handle
// of its result. Called only by the recording layer.
func (t *Tape) record(op opcode, p0, p1 int, d0, d1, value float64) Variable {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{op: op, parents: [2]int{p0, p1}, partials: [2]float64{d0, d1}})
	t.values = append(t.values, value)
	return Variable{tape: t, index: idx, value: value}
}

// checkInput panics unless x is an input declared on tape t. Requesting
// derivatives for a node that is not a declared input is a caller error and
// is reported rather than silently answered with zero.
func checkInput(call string, t *Tape, x Variable) {
	if x.tape != t {
		panic(fmt.Sprintf("ad: %s: variable belongs to a different tape", call))
	}
	if t.nodes[x.index].op != opVar {
		panic(fmt.Sprintf("ad: %s: node %d is not a declared input", call, x.index))
	}
}
