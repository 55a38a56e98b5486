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

// Exponentials and logarithms build the IEEE 754 result directly from
// exponent bits. Special inputs are fixed up with bit-pattern masks at the
// end so both paths produce the same edge-case values.

// horner evaluates c[0]*x^(n-1) + c[1]*x^(n-2) + ... + c[n-1].
func horner(x Vector, c ...Vector) Vector {
	r := c[0]
	for _, k := range c[1:] {
		r = MultiplyAdd(r, x, k)
	}
	return r
}

// bitIsNaN marks lanes whose exponent is all ones and mantissa non-zero.
func bitIsNaN(v Vector) Vector {
	expAllOnes := CompareEqualUInt(MaskAndUInt(v, vExpMask), vExpMask)
	mantZero := CompareEqualUInt(MaskAndUInt(v, vMantMask), vZero)
	return MaskAndCUInt(expAllOnes, mantZero)
}

// exp2 computes 2^v. With renormalize set, results below the smallest normal
// float are assembled through a second, shifted exponent; otherwise they
// flush to zero.
func exp2(v Vector, renormalize bool) Vector {
	itrunc := truncToInt(v)
	y := Subtract(v, intToFloat(itrunc))

	// poly approximates 2^-y, so dividing by it adds the fraction back.
	poly := horner(y, expEst7, expEst6, expEst5, expEst4, expEst3, expEst2, expEst1, vOne)

	result0 := Divide(shiftLeftInt(addInt(itrunc, vExponentBias), numTrailing), poly)

	// v < 128 compared on the raw bits; only meaningful for positive v.
	result2 := Select(vInfinity, result0, compareGreaterInt(vBin128, v))

	subnormal := compareGreaterInt(vSubnormalExp, itrunc)
	var result3 Vector
	if renormalize {
		result1 := Divide(shiftLeftInt(addInt(itrunc, vBias253), numTrailing), poly)
		result1 = Multiply(vMinNormal, result1)
		result3 = Select(result0, result1, subnormal)
	} else {
		result3 = Select(result0, vZero, subnormal)
	}

	// |v| < 150 for negative v; anything smaller underflows to zero.
	result4 := Select(vZero, result3, compareGreaterInt(vBinNeg150, v))

	negative := CompareEqualUInt(MaskAndUInt(v, vSignMask), vSignMask)
	result5 := Select(result2, result4, negative)

	return Select(result5, vQNaN, bitIsNaN(v))
}

// Exp2 returns 2^v per lane. Overflow gives +Inf, underflow gives 0 and NaN
// gives a quiet NaN.
func Exp2(v Vector) Vector { return exp2(v, true) }

// Exp2Est is Exp2 with subnormal results flushed to zero.
func Exp2Est(v Vector) Vector { return exp2(v, false) }

// ExpE returns e^v per lane.
func ExpE(v Vector) Vector { return exp2(Multiply(v, vLge), true) }

// ExpEEst is ExpE with subnormal results flushed to zero.
func ExpEEst(v Vector) Vector { return exp2(Multiply(v, vLge), false) }

// Exp is Exp2.
func Exp(v Vector) Vector { return Exp2(v) }

// ExpEst is Exp2Est.
func ExpEst(v Vector) Vector { return Exp2Est(v) }

// leadingBit returns the index of the highest set bit of every lane, found
// four steps at a time by compare, shift and or. Zero lanes give 0.
func leadingBit(v Vector) Vector {
	step := func(v, r Vector, limit uint32, shift uint) (Vector, Vector) {
		c := compareGreaterInt(v, ReplicateUInt(limit))
		s := shiftLeftInt(shiftRightInt(c, 31), shift)
		return shiftRightVar(v, s), MaskOrUInt(r, s)
	}
	r := vZero
	v, r = step(v, r, 0xFFFF, 4)
	v, r = step(v, r, 0xFF, 3)
	v, r = step(v, r, 0xF, 2)
	v, r = step(v, r, 0x3, 1)
	return MaskOrUInt(r, shiftRightInt(v, 1))
}

// log2 computes scale*log2(v). With renormalize set, subnormal inputs are
// normalised through their leading bit; otherwise they count as zero.
func log2(v, scale Vector, renormalize bool) Vector {
	rawBiased := MaskAndUInt(v, vExpMask)
	trailing := MaskAndUInt(v, vMantMask)
	expZero := CompareEqualUInt(rawBiased, vZero)

	e := subInt(shiftRightInt(rawBiased, numTrailing), vExponentBias)
	t := trailing
	if renormalize {
		shift := subInt(vNumTrailing, leadingBit(trailing))
		eSub := subInt(vSubnormalExp, shift)
		tSub := MaskAndUInt(shiftLeftVar(trailing, shift), vMantMask)
		e = Select(e, eSub, expZero)
		t = Select(t, tSub, expZero)
	}

	// y in [0, 1) is the mantissa of v with a zero exponent, minus one.
	y := Subtract(MaskOrUInt(vOneBits, t), vOne)
	poly := horner(y, logEst7, logEst6, logEst5, logEst4, logEst3, logEst2, logEst1, logEst0)
	poly = MultiplyAdd(poly, y, intToFloat(e))
	poly = Multiply(poly, scale)

	abs := MaskAndUInt(v, vAbsMask)
	infinite := CompareEqualUInt(abs, vInfinity)
	positive := MaskAndCUInt(compareGreaterInt(v, vZero), compareGreaterInt(v, vInfinity))
	zero := CompareEqualUInt(abs, vZero)
	if !renormalize {
		zero = expZero
	}

	result := Select(poly, vInfinity, infinite)
	tmp := Select(vNegQNaN, vNegInfinity, zero)
	result = Select(tmp, result, MaskAndCUInt(positive, zero))
	return Select(result, vQNaN, bitIsNaN(v))
}

// Log2 returns log2(v) per lane. Log2(+Inf) is +Inf, Log2(±0) is -Inf and
// negative or NaN lanes give NaN.
func Log2(v Vector) Vector { return log2(v, vOne, true) }

// Log2Est is Log2 with subnormal inputs treated as zero.
func Log2Est(v Vector) Vector { return log2(v, vOne, false) }

// LogE returns the natural logarithm of v per lane.
func LogE(v Vector) Vector { return log2(v, vInvLge, true) }

// LogEEst is LogE with subnormal inputs treated as zero.
func LogEEst(v Vector) Vector { return log2(v, vInvLge, false) }

// Log is Log2.
func Log(v Vector) Vector { return Log2(v) }

// LogEst is Log2Est.
func LogEst(v Vector) Vector { return Log2Est(v) }
