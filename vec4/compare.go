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

// Comparisons return mask vectors: each lane is either all ones or all
// zeros. The Is* forms reduce a mask to a single bool; they move the lanes out
// of the vector register and are the only synchronisation points of the
// package.

// CompareEqualEps returns |a-b| <= eps per lane.
func CompareEqualEps(a, b, eps Vector) Vector {
	return CompareLessEqual(Abs(Subtract(a, b)), eps)
}

// CompareInBounds returns -bounds <= v <= bounds per lane.
func CompareInBounds(v, bounds Vector) Vector {
	return MaskAndUInt(CompareLessEqual(v, bounds), CompareLessEqual(Negate(bounds), v))
}

// CompareIsNaN marks the NaN lanes of v.
func CompareIsNaN(v Vector) Vector {
	return CompareNotEqual(v, v)
}

// CompareIsInfinite marks the lanes of v that are +Inf or -Inf.
func CompareIsInfinite(v Vector) Vector {
	return CompareEqualUInt(MaskAndUInt(v, vAbsMask), vInfinity)
}

// CompareNotEqualUInt compares the raw lane bit patterns.
func CompareNotEqualUInt(a, b Vector) Vector {
	return MaskXorUInt(CompareEqualUInt(a, b), vMaskTrue)
}

// MaskNorUInt returns ^(a | b).
func MaskNorUInt(a, b Vector) Vector {
	return MaskXorUInt(MaskOrUInt(a, b), vMaskTrue)
}

// SelectControl builds a Select control from four 0/1 flags: 1 selects the
// second operand. It panics on any other value.
func SelectControl(i0, i1, i2, i3 uint32) Vector {
	var u [4]uint32
	for k, i := range [4]uint32{i0, i1, i2, i3} {
		switch i {
		case 0:
		case 1:
			u[k] = 0xFFFFFFFF
		default:
			panic(fmt.Sprintf("vec4: select control %d must be 0 or 1", i))
		}
	}
	return FromUInts(u)
}

// SwapEndian reverses the byte order of every lane.
func SwapEndian(v Vector) Vector {
	return swapBytes(v)
}

// AnyTrue reports whether any lane of m is non-zero.
func AnyTrue(m Vector) bool { return laneBits(m) != 0 }

// AnyFalse reports whether any lane of m is zero.
func AnyFalse(m Vector) bool { return laneBits(m) != 0xF }

// AllTrue reports whether every lane of m is non-zero.
func AllTrue(m Vector) bool { return laneBits(m) == 0xF }

// AllFalse reports whether every lane of m is zero.
func AllFalse(m Vector) bool { return laneBits(m) == 0 }

func IsEqual(a, b Vector) bool        { return AllTrue(CompareEqual(a, b)) }
func IsGreater(a, b Vector) bool      { return AllTrue(CompareGreater(a, b)) }
func IsGreaterEqual(a, b Vector) bool { return AllTrue(CompareGreaterEqual(a, b)) }
func IsLess(a, b Vector) bool         { return AllTrue(CompareLess(a, b)) }
func IsLessEqual(a, b Vector) bool    { return AllTrue(CompareLessEqual(a, b)) }

// IsNotEqual reports whether any lane of a differs from b.
func IsNotEqual(a, b Vector) bool { return AnyTrue(CompareNotEqual(a, b)) }

func IsEqualEps(a, b, eps Vector) bool { return AllTrue(CompareEqualEps(a, b, eps)) }

// InBounds reports whether every lane satisfies -bounds <= v <= bounds.
func InBounds(v, bounds Vector) bool { return AllTrue(CompareInBounds(v, bounds)) }

// IsNaN reports whether any lane is NaN.
func IsNaN(v Vector) bool { return AnyTrue(CompareIsNaN(v)) }

// IsInfinite reports whether any lane is an infinity.
func IsInfinite(v Vector) bool { return AnyTrue(CompareIsInfinite(v)) }

func IsEqualUInt(a, b Vector) bool { return AllTrue(CompareEqualUInt(a, b)) }

// IsNotEqualUInt reports whether any lane bit pattern differs.
func IsNotEqualUInt(a, b Vector) bool { return AnyTrue(CompareNotEqualUInt(a, b)) }
