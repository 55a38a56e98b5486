// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec4

// Hyperbolic functions are expressed through Exp2 and LogE. The -1 folded
// into the exponent halves each term without a separate multiply.

func expHalves(v Vector, exp func(Vector) Vector) (pos, neg Vector) {
	s := Multiply(v, vHyperbolicLog)
	return exp(Add(s, vNegOne)), exp(Subtract(vNegOne, s))
}

// SinH returns the hyperbolic sine of every lane.
func SinH(v Vector) Vector {
	p, n := expHalves(v, Exp)
	return Subtract(p, n)
}

// CosH returns the hyperbolic cosine of every lane.
func CosH(v Vector) Vector {
	p, n := expHalves(v, Exp)
	return Add(p, n)
}

// SinHEst is SinH built on ExpEst.
func SinHEst(v Vector) Vector {
	p, n := expHalves(v, ExpEst)
	return Subtract(p, n)
}

// CosHEst is CosH built on ExpEst.
func CosHEst(v Vector) Vector {
	p, n := expHalves(v, ExpEst)
	return Add(p, n)
}

// tanh(v) = 1 - 2/(e^2v + 1).
func tanH(v Vector, exp func(Vector) Vector) Vector {
	e := exp(Multiply(v, vHyperbolicLog2x))
	e = MultiplyAdd(e, vHalf, vHalf)
	return Subtract(vOne, Divide(vOne, e))
}

// TanH returns the hyperbolic tangent of every lane.
func TanH(v Vector) Vector { return tanH(v, Exp) }

// TanHEst is TanH built on ExpEst.
func TanHEst(v Vector) Vector { return tanH(v, ExpEst) }

// asinh(x) = sign(x) * ln(|x| + sqrt(x² + 1)).
func aSinH(v Vector, log, sqrt func(Vector) Vector) Vector {
	sign := MaskAndUInt(v, vSignMask)
	x := Abs(v)
	r := log(Add(x, sqrt(MultiplyAdd(x, x, vOne))))
	return MaskOrUInt(r, sign)
}

// ASinH returns the inverse hyperbolic sine of every lane.
func ASinH(v Vector) Vector { return aSinH(v, LogE, Sqrt) }

// ASinHEst is ASinH built on the estimate logarithm and square root.
func ASinHEst(v Vector) Vector { return aSinH(v, LogEEst, SqrtEst) }

// acosh(x) = ln(x + sqrt(x² - 1)); lanes below 1 give NaN.
func aCosH(v Vector, log, sqrt func(Vector) Vector) Vector {
	return log(Add(v, sqrt(MultiplyAdd(v, v, vNegOne))))
}

// ACosH returns the inverse hyperbolic cosine of every lane.
func ACosH(v Vector) Vector { return aCosH(v, LogE, Sqrt) }

// ACosHEst is ACosH built on the estimate logarithm and square root.
func ACosHEst(v Vector) Vector { return aCosH(v, LogEEst, SqrtEst) }

// atanh(x) = ln((1 + x) / (1 - x)) / 2; ±1 give ±Inf.
func aTanH(v Vector, log func(Vector) Vector) Vector {
	return Multiply(vHalf, log(Divide(Add(vOne, v), Subtract(vOne, v))))
}

// ATanH returns the inverse hyperbolic tangent of every lane.
func ATanH(v Vector) Vector { return aTanH(v, LogE) }

// ATanHEst is ATanH built on the estimate logarithm.
func ATanHEst(v Vector) Vector { return aTanH(v, LogEEst) }
