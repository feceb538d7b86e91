package ad

import "math"

// Elementary transcendental functions over Variable. Each records one node
// whose local partial is evaluated analytically at the operand value, e.g.
// d(sin x)/dx = cos(x). Domain edges (ln of a non-positive number, atanh at
// ±1, ...) propagate IEEE NaN/Inf through value and partial; none of these
// functions panic on out-of-domain input.

const oneOverSqrt2Pi = 0.3989422804014326779399460599343818684759

// Exp returns e^x.
func (x Variable) Exp() Variable {
	v := math.Exp(x.value)
	return x.unary("Exp", opExp, v, v)
}

// Ln returns the natural logarithm of x.
func (x Variable) Ln() Variable {
	return x.unary("Ln", opLn, math.Log(x.value), 1/x.value)
}

// Log2 returns the base-2 logarithm of x.
func (x Variable) Log2() Variable {
	return x.unary("Log2", opLog2, math.Log2(x.value), 1/(x.value*math.Ln2))
}

// Log10 returns the base-10 logarithm of x.
func (x Variable) Log10() Variable {
	return x.unary("Log10", opLog10, math.Log10(x.value), 1/(x.value*math.Ln10))
}

// Sin returns sin(x).
func (x Variable) Sin() Variable {
	return x.unary("Sin", opSin, math.Sin(x.value), math.Cos(x.value))
}

// Cos returns cos(x).
func (x Variable) Cos() Variable {
	return x.unary("Cos", opCos, math.Cos(x.value), -math.Sin(x.value))
}

// Tan returns tan(x). d(tan x)/dx = 1 + tan²(x).
func (x Variable) Tan() Variable {
	v := math.Tan(x.value)
	return x.unary("Tan", opTan, v, 1+v*v)
}

// Asin returns arcsin(x).
func (x Variable) Asin() Variable {
	return x.unary("Asin", opAsin, math.Asin(x.value), 1/math.Sqrt(1-x.value*x.value))
}

// Acos returns arccos(x).
func (x Variable) Acos() Variable {
	return x.unary("Acos", opAcos, math.Acos(x.value), -1/math.Sqrt(1-x.value*x.value))
}

// Atan returns arctan(x).
func (x Variable) Atan() Variable {
	return x.unary("Atan", opAtan, math.Atan(x.value), 1/(1+x.value*x.value))
}

// Sinh returns sinh(x).
func (x Variable) Sinh() Variable {
	return x.unary("Sinh", opSinh, math.Sinh(x.value), math.Cosh(x.value))
}

// Cosh returns cosh(x).
func (x Variable) Cosh() Variable {
	return x.unary("Cosh", opCosh, math.Cosh(x.value), math.Sinh(x.value))
}

// Tanh returns tanh(x). d(tanh x)/dx = 1 - tanh²(x).
func (x Variable) Tanh() Variable {
	v := math.Tanh(x.value)
	return x.unary("Tanh", opTanh, v, 1-v*v)
}

// Asinh returns arcsinh(x). d(asinh x)/dx = 1/√(x²+1).
func (x Variable) Asinh() Variable {
	return x.unary("Asinh", opAsinh, math.Asinh(x.value), 1/math.Sqrt(x.value*x.value+1))
}

// Acosh returns arccosh(x), defined for x ≥ 1.
func (x Variable) Acosh() Variable {
	return x.unary("Acosh", opAcosh, math.Acosh(x.value), 1/math.Sqrt(x.value*x.value-1))
}

// Atanh returns arctanh(x), defined for |x| < 1.
func (x Variable) Atanh() Variable {
	return x.unary("Atanh", opAtanh, math.Atanh(x.value), 1/(1-x.value*x.value))
}

// Ncdf returns the standard normal cumulative distribution N(x). Its
// derivative is the density φ(x), which is what makes Black-Scholes
// sensitivities fall out of a single reverse sweep.
func (x Variable) Ncdf() Variable {
	v := 0.5 * math.Erfc(-x.value/math.Sqrt2)
	return x.unary("Ncdf", opNcdf, v, npdf(x.value))
}

// Npdf returns the standard normal density φ(x). dφ/dx = -x·φ(x).
func (x Variable) Npdf() Variable {
	v := npdf(x.value)
	return x.unary("Npdf", opNpdf, v, -x.value*v)
}

func npdf(x float64) float64 {
	return oneOverSqrt2Pi * math.Exp(-0.5*x*x)
}
