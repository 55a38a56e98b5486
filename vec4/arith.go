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

import "math"

// Clamp limits every lane of v to [lo, hi].
func Clamp(v, lo, hi Vector) Vector {
	return Min(hi, Max(lo, v))
}

// Saturate clamps every lane of v to [0, 1].
func Saturate(v Vector) Vector {
	return Min(vOne, Max(vZero, v))
}

// Fract returns v - Floor(v).
func Fract(v Vector) Vector {
	return Subtract(v, Floor(v))
}

// Mod returns a - Truncate(a/b)*b, the remainder with the sign of a.
func Mod(a, b Vector) Vector {
	q := Truncate(Divide(a, b))
	return Subtract(a, Multiply(q, b))
}

// ModAngles wraps every lane into [-π, π] by removing the nearest multiple
// of 2π. Lanes with magnitude above MaxAngle, infinities and NaN become NaN.
func ModAngles(angles Vector) Vector {
	n := Round(Multiply(angles, vRecipTwoPi))
	r := reduceAngle(angles, n, vTwoPiHi, vTwoPiMid, vTwoPiLo)
	return limitAngle(angles, r)
}

// reduceAngle returns v - n*(hi+mid+lo), subtracting the parts of a split
// constant one at a time.
func reduceAngle(v, n, hi, mid, lo Vector) Vector {
	r := NegativeMultiplySubtract(n, hi, v)
	r = NegativeMultiplySubtract(n, mid, r)
	return NegativeMultiplySubtract(n, lo, r)
}

// limitAngle replaces the lanes of r whose source angle is not within
// MaxAngle with quiet NaN.
func limitAngle(angles, r Vector) Vector {
	return Select(vQNaN, r, CompareLessEqual(Abs(angles), vMaxAngle))
}

// wrapAngle moves lanes of v that are at most -π or above π by one turn, so
// that a sum or difference of two wrapped angles lands in (-π, π].
func wrapAngle(v Vector) Vector {
	offset := MaskAndUInt(CompareLessEqual(v, vNegPi), vTwoPi)
	v = Add(v, offset)
	offset = MaskAndUInt(CompareGreater(v, vPi), vTwoPi)
	return Subtract(v, offset)
}

// AddAngles returns a + b wrapped into (-π, π]. Both inputs must already be
// in that range.
func AddAngles(a, b Vector) Vector {
	return wrapAngle(Add(a, b))
}

// SubtractAngles returns a - b wrapped into (-π, π]. Both inputs must already
// be in that range.
func SubtractAngles(a, b Vector) Vector {
	return wrapAngle(Subtract(a, b))
}

// Pow returns a^b per lane. There is no vector form; both paths evaluate the
// lanes one at a time.
func Pow(a, b Vector) Vector {
	x, y := a.Floats(), b.Floats()
	var r [4]float32
	for i := range 4 {
		r[i] = float32(math.Pow(float64(x[i]), float64(y[i])))
	}
	return FromFloats(r)
}
