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

// reduceSinCos folds angles into [-π/2, π/2]. It returns the folded angle and
// the sign the cosine picks up from the reflection. Out of range lanes stay
// NaN through the polynomials.
func reduceSinCos(v Vector) (x, cosSign Vector) {
	x = ModAngles(v)
	sign := MaskAndUInt(x, vSignMask)
	c := MaskOrUInt(vPi, sign)
	absx := MaskAndCUInt(x, sign)
	rflx := Subtract(c, x)
	comp := CompareLessEqual(absx, vHalfPi)
	x = Select(rflx, x, comp)
	cosSign = Select(vNegOne, vOne, comp)
	return x, cosSign
}

func sinPoly(x Vector) Vector {
	x2 := Multiply(x, x)
	return Multiply(horner(x2, sin1[0], sin0[3], sin0[2], sin0[1], sin0[0], vOne), x)
}

func cosPoly(x, sign Vector) Vector {
	x2 := Multiply(x, x)
	return Multiply(horner(x2, cos1[0], cos0[3], cos0[2], cos0[1], cos0[0], vOne), sign)
}

func sinPolyEst(x Vector) Vector {
	x2 := Multiply(x, x)
	return Multiply(horner(x2, sin1[3], sin1[2], sin1[1], vOne), x)
}

func cosPolyEst(x, sign Vector) Vector {
	x2 := Multiply(x, x)
	return Multiply(horner(x2, cos1[3], cos1[2], cos1[1], vOne), sign)
}

// Sin returns the sine of every lane (radians). Arguments must be within
// MaxAngle; other lanes return NaN.
func Sin(v Vector) Vector {
	x, _ := reduceSinCos(v)
	return sinPoly(x)
}

// Cos returns the cosine of every lane (radians). Arguments must be within
// MaxAngle; other lanes return NaN.
func Cos(v Vector) Vector {
	x, sign := reduceSinCos(v)
	return cosPoly(x, sign)
}

// SinCos returns Sin(v) and Cos(v) sharing one range reduction.
func SinCos(v Vector) (sin, cos Vector) {
	x, sign := reduceSinCos(v)
	return sinPoly(x), cosPoly(x, sign)
}

// SinEst returns a lower precision sine.
func SinEst(v Vector) Vector {
	x, _ := reduceSinCos(v)
	return sinPolyEst(x)
}

// CosEst returns a lower precision cosine.
func CosEst(v Vector) Vector {
	x, sign := reduceSinCos(v)
	return cosPolyEst(x, sign)
}

// SinCosEst returns SinEst(v) and CosEst(v).
func SinCosEst(v Vector) (sin, cos Vector) {
	x, sign := reduceSinCos(v)
	return sinPolyEst(x), cosPolyEst(x, sign)
}

// Tan returns the tangent of every lane. The angle is reduced by multiples of
// π/2 and evaluated as a rational function; near-zero reduced angles use the
// angle itself and an exact zero input returns zero. Lanes beyond MaxAngle,
// infinities and NaN return NaN.
func Tan(v Vector) Vector {
	va := Round(Multiply(v, vTwoOverPi))
	vc := reduceAngle(v, va, vHalfPiHi, vHalfPiMid, vHalfPiLo)
	vb := truncToInt(Abs(va))
	even := CompareEqualUInt(MaskAndUInt(vb, vIntOne), vZero)

	vc2 := Multiply(vc, vc)
	n := Multiply(vc2, horner(vc2, tan1[3], tan1[2], tan1[1]))
	n = MultiplyAdd(vc, n, vc)
	d := horner(vc2, tan1[0], tan0[3], tan0[2], tan0[1], tan0[0])

	nearZero := CompareInBounds(vc, vTanNearZero)
	n = Select(n, vc, nearZero)
	d = Select(d, vOne, nearZero)

	r0 := Divide(d, Negate(n))
	r1 := Divide(n, d)
	result := Select(r0, r1, even)
	result = Select(result, vZero, CompareEqual(v, vZero))
	return limitAngle(v, result)
}

// TanEst returns a lower precision tangent, with the same argument range as
// Tan.
func TanEst(v Vector) Vector {
	v1 := Round(Multiply(v, tanEst[3]))
	v1 = reduceAngle(v, v1, vPiHi, vPiMid, vPiLo)
	v2 := Multiply(v1, v1)
	d := ReciprocalEst(NegativeMultiplySubtract(v1, v1, tanEst[2]))
	n := MultiplyAdd(v2, Multiply(v1, tanEst[1]), Multiply(v1, tanEst[0]))
	return limitAngle(v, Multiply(n, d))
}

// arcCos evaluates acos on |v| through sqrt(1-|v|) and reflects negative
// inputs to π - result. Lanes outside [-1, 1], infinities and NaN return NaN.
func arcCos(v Vector, estimate bool) Vector {
	nonNegative := CompareGreaterEqual(v, vZero)
	x := Abs(v)
	root := Sqrt(Max(vZero, Subtract(vOne, x)))
	var t Vector
	if estimate {
		t = horner(x, arcEst[3], arcEst[2], arcEst[1], arcEst[0])
	} else {
		t = horner(x, arc1[3], arc1[2], arc1[1], arc1[0], arc0[3], arc0[2], arc0[1], arc0[0])
	}
	t = Multiply(t, root)
	t = Select(Subtract(vPi, t), t, nonNegative)
	return Select(vQNaN, t, CompareLessEqual(x, vOne))
}

// ASin returns the arcsine of every lane, in [-π/2, π/2].
func ASin(v Vector) Vector { return Subtract(vHalfPi, arcCos(v, false)) }

// ACos returns the arccosine of every lane, in [0, π].
func ACos(v Vector) Vector { return arcCos(v, false) }

// ASinEst returns a lower precision arcsine.
func ASinEst(v Vector) Vector { return Subtract(vHalfPi, arcCos(v, true)) }

// ACosEst returns a lower precision arccosine.
func ACosEst(v Vector) Vector { return arcCos(v, true) }

// arcTan folds |v| > 1 onto 1/v and applies atan(v) = ±π/2 - atan(1/v).
func arcTan(v Vector, estimate bool) Vector {
	sign := Select(vNegOne, vOne, CompareGreater(v, vOne))
	inside := CompareLessEqual(Abs(v), vOne)
	sign = Select(sign, vZero, inside)
	x := Select(Reciprocal(v), v, inside)
	x2 := Multiply(x, x)

	var poly Vector
	if estimate {
		poly = horner(x2, atanEst1[3], atanEst1[2], atanEst1[1], atanEst1[0], atanEst0)
	} else {
		poly = horner(x2, atan1[3], atan1[2], atan1[1], atan1[0],
			atan0[3], atan0[2], atan0[1], atan0[0], vOne)
	}
	poly = Multiply(poly, x)

	folded := Subtract(Multiply(sign, vHalfPi), poly)
	return Select(folded, poly, CompareEqual(sign, vZero))
}

// ATan returns the arctangent of every lane, in [-π/2, π/2].
func ATan(v Vector) Vector { return arcTan(v, false) }

// ATanEst returns a lower precision arctangent.
func ATanEst(v Vector) Vector { return arcTan(v, true) }

// atan2Special resolves the quadrant table for zero and infinite inputs. Lanes
// that need the ordinary atan(y/x) path come back as all ones.
func atan2Special(y, x Vector) (result, xPositive Vector) {
	ySign := MaskAndUInt(y, vSignMask)
	pi := MaskOrUInt(vPi, ySign)
	halfPi := MaskOrUInt(vHalfPi, ySign)
	quarterPi := MaskOrUInt(vQuarterPi, ySign)
	threeQuarterPi := MaskOrUInt(vThreeQuarter, ySign)

	yZero := CompareEqual(y, vZero)
	xZero := CompareEqual(x, vZero)
	xPositive = CompareEqualUInt(MaskAndUInt(x, vSignMask), vZero)
	yInf := CompareIsInfinite(y)
	xInf := CompareIsInfinite(x)

	r1 := Select(pi, ySign, xPositive)
	r2 := Select(vMaskTrue, halfPi, xZero)
	r3 := Select(r2, r1, yZero)
	r4 := Select(threeQuarterPi, quarterPi, xPositive)
	r5 := Select(halfPi, r4, xInf)
	return Select(r3, r5, yInf), xPositive
}

func atan2(y, x Vector, estimate bool) Vector {
	result, xPositive := atan2Special(y, x)
	valid := CompareEqualUInt(result, vMaskTrue)

	var r0 Vector
	if estimate {
		r0 = ATanEst(Multiply(y, ReciprocalEst(x)))
	} else {
		r0 = ATan(Divide(y, x))
	}
	ySign := MaskAndUInt(y, vSignMask)
	correction := Select(MaskOrUInt(vPi, ySign), vSignMask, xPositive)
	result = Select(result, Add(r0, correction), valid)
	return Select(result, vQNaN, MaskOrUInt(CompareIsNaN(y), CompareIsNaN(x)))
}

// ATan2 returns the angle of the point (x, y) per lane, in [-π, π], covering
// every zero and infinite quadrant case. A NaN in either input gives NaN.
func ATan2(y, x Vector) Vector { return atan2(y, x, false) }

// ATan2Est is ATan2 built on the lower precision arctangent.
func ATan2Est(y, x Vector) Vector { return atan2(y, x, true) }
