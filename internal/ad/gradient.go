package ad

// Gradient holds the adjoints produced by one backward sweep: for every
// node, the sensitivity of the accumulated output with respect to that
// node's value. It is a snapshot; neither further recording on the tape nor
// repeated accumulation invalidates it.
type Gradient struct {
	tape     *Tape
	adjoints []float64
}

// Accumulate runs one reverse sweep over the tape and returns the gradient
// of x with respect to every declared input.
//
// The sweep seeds the output adjoint with 1 and visits nodes in strictly
// descending index order, so a node's adjoint is complete (all consumers
// processed) before it is propagated to the node's own operands. Adjoints
// add up across consumers, which is what makes the single sweep correct
// for fan-out (a value used by several later operations). Cost is O(tape
// length) regardless of how many inputs are later queried.
//
// The tape is not mutated; calling Accumulate repeatedly returns identical
// results.
func (x Variable) Accumulate() Gradient {
	x.mustLive("Accumulate")
	t := x.tape
	adj := make([]float64, len(t.nodes))
	adj[x.index] = 1
	// Nodes above the output cannot feed into it, so start at the output.
	for i := x.index; i >= 0; i-- {
		n := &t.nodes[i]
		a := adj[i]
		if a == 0 || n.op == opVar || n.op == opConst {
			continue
		}
		adj[n.parents[0]] += a * n.partials[0]
		if n.op.binary() {
			adj[n.parents[1]] += a * n.partials[1]
		}
	}
	return Gradient{tape: t, adjoints: adj}
}

// Wrt returns the derivative of the accumulated output with respect to the
// input x. x must be an input declared with Var on the same tape; anything
// else is a caller error and panics. An input declared after the
// accumulation has derivative zero.
func (g Gradient) Wrt(x Variable) float64 {
	checkInput("Wrt", g.tape, x)
	if x.index >= len(g.adjoints) {
		return 0
	}
	return g.adjoints[x.index]
}

// WrtAll returns the derivatives with respect to each given input, in the
// order requested.
func (g Gradient) WrtAll(xs ...Variable) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = g.Wrt(x)
	}
	return out
}
