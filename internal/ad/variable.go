package ad

import "math"

// Variable is a lightweight handle pairing a numeric value with its node
// index on a specific tape. Arithmetic on Variables records new nodes as a
// side effect and never mutates existing ones, so handles stay valid for
// the lifetime of their tape.
//
// The zero Variable is not bound to any tape; using it in an operation
// panics.
type Variable struct {
	tape  *Tape
	index int
	value float64
}

// Value returns the recorded forward value.
func (x Variable) Value() float64 {
	return x.value
}

// mustLive panics if x is the unbound zero Variable.
func (x Variable) mustLive(call string) {
	if x.tape == nil {
		panic("ad: " + call + ": variable is not bound to a tape")
	}
}

// mustShareTape panics unless x and y were recorded on the same tape.
// Mixing tapes would silently produce wrong indices, so it fails fast.
func (x Variable) mustShareTape(y Variable, call string) {
	x.mustLive(call)
	if y.tape != x.tape {
		panic("ad: " + call + ": operands recorded on different tapes")
	}
}

// unary records a single-operand node with the given partial dx.
func (x Variable) unary(call string, op opcode, value, dx float64) Variable {
	x.mustLive(call)
	return x.tape.record(op, x.index, x.index, dx, 0, value)
}

// Add returns x + y.
func (x Variable) Add(y Variable) Variable {
	x.mustShareTape(y, "Add")
	return x.tape.record(opAdd, x.index, y.index, 1, 1, x.value+y.value)
}

// Sub returns x - y.
func (x Variable) Sub(y Variable) Variable {
	x.mustShareTape(y, "Sub")
	return x.tape.record(opSub, x.index, y.index, 1, -1, x.value-y.value)
}

// Mul returns x * y.
//
// d(x*y)/dx = y, d(x*y)/dy = x.
func (x Variable) Mul(y Variable) Variable {
	x.mustShareTape(y, "Mul")
	return x.tape.record(opMul, x.index, y.index, y.value, x.value, x.value*y.value)
}

// Div returns x / y. Division by zero follows IEEE semantics: the value and
// the partials become ±Inf or NaN instead of panicking.
//
// d(x/y)/dx = 1/y, d(x/y)/dy = -x/y².
func (x Variable) Div(y Variable) Variable {
	x.mustShareTape(y, "Div")
	return x.tape.record(opDiv, x.index, y.index, 1/y.value, -x.value/(y.value*y.value), x.value/y.value)
}

// Pow returns x^y.
//
// d(x^y)/dx = y*x^(y-1), d(x^y)/dy = x^y * ln(x). For non-positive x the
// ln(x) partial is NaN per IEEE rules; it pollutes only the adjoint of y.
func (x Variable) Pow(y Variable) Variable {
	x.mustShareTape(y, "Pow")
	v := math.Pow(x.value, y.value)
	dx := y.value * math.Pow(x.value, y.value-1)
	dy := v * math.Log(x.value)
	return x.tape.record(opPow, x.index, y.index, dx, dy, v)
}

// AddF returns x + c, recording c as a constant leaf.
func (x Variable) AddF(c float64) Variable {
	x.mustLive("AddF")
	return x.Add(x.tape.Constant(c))
}

// SubF returns x - c.
func (x Variable) SubF(c float64) Variable {
	x.mustLive("SubF")
	return x.Sub(x.tape.Constant(c))
}

// MulF returns x * c.
func (x Variable) MulF(c float64) Variable {
	x.mustLive("MulF")
	return x.Mul(x.tape.Constant(c))
}

// DivF returns x / c.
func (x Variable) DivF(c float64) Variable {
	x.mustLive("DivF")
	return x.Div(x.tape.Constant(c))
}

// PowF returns x^c.
func (x Variable) PowF(c float64) Variable {
	x.mustLive("PowF")
	return x.Pow(x.tape.Constant(c))
}

// Neg returns -x.
func (x Variable) Neg() Variable {
	return x.unary("Neg", opNeg, -x.value, -1)
}

// Abs returns |x|. The partial at zero takes the sign bit of x.
func (x Variable) Abs() Variable {
	return x.unary("Abs", opAbs, math.Abs(x.value), math.Copysign(1, x.value))
}

// Recip returns 1/x.
func (x Variable) Recip() Variable {
	return x.unary("Recip", opRecip, 1/x.value, -1/(x.value*x.value))
}

// Sqrt returns √x. Negative arguments produce NaN in both value and
// partial.
func (x Variable) Sqrt() Variable {
	v := math.Sqrt(x.value)
	return x.unary("Sqrt", opSqrt, v, 1/(2*v))
}
