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

import "fmt"

// Fixed-point conversions scale by a power of two while converting between
// the float and integer views of a Vector. Exponents must be below 32.

func checkExponent(op string, e uint32) {
	if e >= 32 {
		panic(fmt.Sprintf("vec4: %s: exponent %d out of range [0, 31]", op, e))
	}
}

// pow2Neg returns 2^-e in every lane, built directly from the exponent bits.
func pow2Neg(e uint32) Vector {
	return ReplicateUInt(0x3F800000 - e<<numTrailing)
}

// ConvertIntToFloat interprets every lane as an int32 and returns it divided
// by 2^divExp.
func ConvertIntToFloat(v Vector, divExp uint32) Vector {
	checkExponent("ConvertIntToFloat", divExp)
	r := intToFloat(v)
	if divExp == 0 {
		return r
	}
	return Multiply(r, pow2Neg(divExp))
}

// ConvertFloatToInt returns every lane multiplied by 2^mulExp and truncated
// to an int32. Values above the int32 range saturate to MaxInt32; values
// below it and NaN give MinInt32.
func ConvertFloatToInt(v Vector, mulExp uint32) Vector {
	checkExponent("ConvertFloatToInt", mulExp)
	r := Multiply(v, Replicate(float32(uint32(1)<<mulExp)))
	overflow := CompareGreater(r, vIntMax)
	return Select(truncToInt(r), ReplicateUInt(0x7FFFFFFF), overflow)
}

// ConvertUIntToFloat interprets every lane as a uint32 and returns it divided
// by 2^divExp.
func ConvertUIntToFloat(v Vector, divExp uint32) Vector {
	checkExponent("ConvertUIntToFloat", divExp)
	high := CompareEqualUInt(MaskAndUInt(v, vSignMask), vSignMask)
	r := intToFloat(MaskAndCUInt(v, vSignMask))
	r = Add(r, MaskAndUInt(vUnsignedFix, high))
	if divExp == 0 {
		return r
	}
	return Multiply(r, pow2Neg(divExp))
}

// ConvertFloatToUInt returns every lane multiplied by 2^mulExp and truncated
// to a uint32. Negative lanes and NaN give 0; values at or above 2^32-256
// saturate to MaxUint32.
func ConvertFloatToUInt(v Vector, mulExp uint32) Vector {
	checkExponent("ConvertFloatToUInt", mulExp)
	r := Multiply(v, Replicate(float32(uint32(1)<<mulExp)))
	r = Max(r, vZero)
	overflow := CompareGreaterEqual(r, vUIntMax)

	// Lanes at or above 2^31 are shifted into int32 range and get the top
	// bit back after truncation.
	high := CompareGreaterEqual(r, vUnsignedFix)
	r = Subtract(r, MaskAndUInt(vUnsignedFix, high))
	i := MaskXorUInt(truncToInt(r), MaskAndUInt(high, vSignMask))
	return MaskOrUInt(i, overflow)
}
