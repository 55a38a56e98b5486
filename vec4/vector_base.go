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

//go:build !amd64 || !goexperiment.simd || noasm

package vec4

import (
	"math"

	"github.com/go-highway/vecmath/hwy"
)

// This file provides the portable scalar primitives. Every function here has
// a counterpart with the same signature in vector_sse.go; the composite
// operations in the rest of the package are written against this set only.

// HardwarePath reports whether the archsimd implementation was compiled in.
const HardwarePath = false

// Vector holds four 32-bit lanes. The lanes are stored as raw bit patterns and
// can be viewed as float32, uint32 or int32 without conversion.
type Vector struct {
	v [4]uint32
}

func lane(v Vector, i int) float32 {
	return math.Float32frombits(v.v[i])
}

func fromLanes(x, y, z, w float32) Vector {
	return Vector{[4]uint32{
		math.Float32bits(x), math.Float32bits(y),
		math.Float32bits(z), math.Float32bits(w),
	}}
}

func boolMask(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

// FromFloats builds a Vector from four float32 lanes.
func FromFloats(f [4]float32) Vector {
	return fromLanes(f[0], f[1], f[2], f[3])
}

// FromUInts builds a Vector from four raw 32-bit lanes.
func FromUInts(u [4]uint32) Vector {
	return Vector{u}
}

// Floats returns the lanes viewed as float32.
func (v Vector) Floats() [4]float32 {
	return [4]float32{lane(v, 0), lane(v, 1), lane(v, 2), lane(v, 3)}
}

// UInts returns the raw lane bit patterns.
func (v Vector) UInts() [4]uint32 {
	return v.v
}

// Make builds a Vector from four floats.
func Make(x, y, z, w float32) Vector {
	return fromLanes(x, y, z, w)
}

// Replicate broadcasts f to all four lanes.
func Replicate(f float32) Vector {
	return fromLanes(f, f, f, f)
}

// MakeUInt builds a Vector from four raw lane bit patterns.
func MakeUInt(x, y, z, w uint32) Vector {
	return Vector{[4]uint32{x, y, z, w}}
}

// ReplicateUInt broadcasts the bit pattern u to all four lanes.
func ReplicateUInt(u uint32) Vector {
	return Vector{[4]uint32{u, u, u, u}}
}

// Zero returns the all-zero vector.
func Zero() Vector {
	return Vector{}
}

// GetX returns lane 0 as a float.
func GetX(v Vector) float32 { return lane(v, 0) }

// GetY returns lane 1 as a float.
func GetY(v Vector) float32 { return lane(v, 1) }

// GetZ returns lane 2 as a float.
func GetZ(v Vector) float32 { return lane(v, 2) }

// GetW returns lane 3 as a float.
func GetW(v Vector) float32 { return lane(v, 3) }

// GetByIndex returns lane i as a float. It panics if i is not in 0..3.
func GetByIndex(v Vector, i int) float32 {
	checkLane(i)
	return lane(v, i)
}

// SetByIndex returns v with lane i replaced by f.
func SetByIndex(v Vector, f float32, i int) Vector {
	checkLane(i)
	v.v[i] = math.Float32bits(f)
	return v
}

// GetUIntByIndex returns the bit pattern of lane i.
func GetUIntByIndex(v Vector, i int) uint32 {
	checkLane(i)
	return v.v[i]
}

// SetUIntByIndex returns v with the bit pattern of lane i replaced by u.
func SetUIntByIndex(v Vector, u uint32, i int) Vector {
	checkLane(i)
	v.v[i] = u
	return v
}

// SplatX copies lane 0 to every lane.
func SplatX(v Vector) Vector { return ReplicateUInt(v.v[0]) }

// SplatY copies lane 1 to every lane.
func SplatY(v Vector) Vector { return ReplicateUInt(v.v[1]) }

// SplatZ copies lane 2 to every lane.
func SplatZ(v Vector) Vector { return ReplicateUInt(v.v[2]) }

// SplatW copies lane 3 to every lane.
func SplatW(v Vector) Vector { return ReplicateUInt(v.v[3]) }

// Add returns a + b per lane.
func Add(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(a, i) + lane(b, i))
	}
	return r
}

// Subtract returns a - b per lane.
func Subtract(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(a, i) - lane(b, i))
	}
	return r
}

// Multiply returns a * b per lane.
func Multiply(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(a, i) * lane(b, i))
	}
	return r
}

// Divide returns a / b per lane.
func Divide(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(a, i) / lane(b, i))
	}
	return r
}

// Negate flips the sign bit of every lane.
func Negate(v Vector) Vector {
	for i := range 4 {
		v.v[i] ^= hwy.Float32SignMask
	}
	return v
}

// Scale multiplies every lane by s.
func Scale(v Vector, s float32) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(v, i) * s)
	}
	return r
}

// MultiplyAdd returns a*b + c. The scalar path rounds the product before the
// addition.
func MultiplyAdd(a, b, c Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(float32(lane(a, i)*lane(b, i)) + lane(c, i))
	}
	return r
}

// NegativeMultiplySubtract returns c - a*b.
func NegativeMultiplySubtract(a, b, c Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(lane(c, i) - float32(lane(a, i)*lane(b, i)))
	}
	return r
}

// Min returns the lane-wise minimum. When either lane is NaN the lane of b
// is returned.
func Min(a, b Vector) Vector {
	for i := range 4 {
		if !(lane(a, i) < lane(b, i)) {
			a.v[i] = b.v[i]
		}
	}
	return a
}

// Max returns the lane-wise maximum. When either lane is NaN the lane of b
// is returned.
func Max(a, b Vector) Vector {
	for i := range 4 {
		if !(lane(a, i) > lane(b, i)) {
			a.v[i] = b.v[i]
		}
	}
	return a
}

// Abs clears the sign bit of every lane.
func Abs(v Vector) Vector {
	for i := range 4 {
		v.v[i] &= hwy.Float32AbsMask
	}
	return v
}

// Sqrt returns the correctly rounded square root of every lane.
func Sqrt(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(float32(math.Sqrt(float64(lane(v, i)))))
	}
	return r
}

// SqrtEst returns an estimate of the square root of every lane.
func SqrtEst(v Vector) Vector {
	return Sqrt(v)
}

// Reciprocal returns 1/v per lane.
func Reciprocal(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = math.Float32bits(1 / lane(v, i))
	}
	return r
}

// ReciprocalEst returns an estimate of 1/v per lane.
func ReciprocalEst(v Vector) Vector {
	return Reciprocal(v)
}

// ReciprocalSqrt returns 1/sqrt(v) per lane.
func ReciprocalSqrt(v Vector) Vector {
	var r Vector
	for i := range 4 {
		s := float32(math.Sqrt(float64(lane(v, i))))
		r.v[i] = math.Float32bits(1 / s)
	}
	return r
}

// ReciprocalSqrtEst returns an estimate of 1/sqrt(v) per lane.
func ReciprocalSqrtEst(v Vector) Vector {
	return ReciprocalSqrt(v)
}

// Round rounds every lane to the nearest integer, ties to even. NaN lanes
// become quiet NaN.
func Round(v Vector) Vector {
	for i := range 4 {
		v.v[i] = math.Float32bits(hwy.RoundToNearest32(lane(v, i)))
	}
	return v
}

// Truncate rounds every lane toward zero. NaN lanes become quiet NaN and
// lanes of magnitude 2^23 or more are returned unchanged.
func Truncate(v Vector) Vector {
	for i := range 4 {
		b := v.v[i]
		switch {
		case hwy.BitIsNaN32(b):
			v.v[i] = b | hwy.Float32QuietBit
		case math.Float32frombits(b&hwy.Float32AbsMask) < hwy.Float32NoFraction:
			t := float32(int32(math.Float32frombits(b)))
			v.v[i] = math.Float32bits(t) | b&hwy.Float32SignMask
		}
	}
	return v
}

// Floor rounds every lane toward negative infinity. NaN lanes become quiet
// NaN.
func Floor(v Vector) Vector {
	return roundWith(v, math.Floor)
}

// Ceiling rounds every lane toward positive infinity. NaN lanes become quiet
// NaN.
func Ceiling(v Vector) Vector {
	return roundWith(v, math.Ceil)
}

func roundWith(v Vector, f func(float64) float64) Vector {
	for i := range 4 {
		b := v.v[i]
		if hwy.BitIsNaN32(b) {
			v.v[i] = b | hwy.Float32QuietBit
			continue
		}
		v.v[i] = math.Float32bits(float32(f(float64(math.Float32frombits(b)))))
	}
	return v
}

// Sum adds the four lanes and broadcasts the total.
func Sum(v Vector) Vector {
	return Replicate(((lane(v, 0) + lane(v, 1)) + lane(v, 2)) + lane(v, 3))
}

// Dot returns the four-lane dot product of a and b in every lane.
func Dot(a, b Vector) Vector {
	return Sum(Multiply(a, b))
}

// CompareEqual returns a == b per lane as a mask. NaN lanes compare false.
func CompareEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) == lane(b, i))
	}
	return r
}

// CompareNotEqual returns a != b per lane as a mask. NaN lanes compare true.
func CompareNotEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) != lane(b, i))
	}
	return r
}

// CompareGreater returns a > b per lane as a mask.
func CompareGreater(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) > lane(b, i))
	}
	return r
}

// CompareGreaterEqual returns a >= b per lane as a mask.
func CompareGreaterEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) >= lane(b, i))
	}
	return r
}

// CompareLess returns a < b per lane as a mask.
func CompareLess(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) < lane(b, i))
	}
	return r
}

// CompareLessEqual returns a <= b per lane as a mask.
func CompareLessEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(lane(a, i) <= lane(b, i))
	}
	return r
}

// CompareEqualUInt compares the raw lane bit patterns.
func CompareEqualUInt(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(a.v[i] == b.v[i])
	}
	return r
}

// MaskAndUInt returns a & b.
func MaskAndUInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] &= b.v[i]
	}
	return a
}

// MaskAndCUInt returns a &^ b.
func MaskAndCUInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] &^= b.v[i]
	}
	return a
}

// MaskOrUInt returns a | b.
func MaskOrUInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] |= b.v[i]
	}
	return a
}

// MaskXorUInt returns a ^ b.
func MaskXorUInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] ^= b.v[i]
	}
	return a
}

// Select takes the bits of b where control is set and the bits of a
// elsewhere.
func Select(a, b, control Vector) Vector {
	for i := range 4 {
		a.v[i] = a.v[i]&^control.v[i] | b.v[i]&control.v[i]
	}
	return a
}

// laneBits returns a 4-bit set with bit k set when lane k is non-zero.
func laneBits(v Vector) uint8 {
	var m uint8
	for i := range 4 {
		if v.v[i] != 0 {
			m |= 1 << i
		}
	}
	return m
}

func addInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] += b.v[i]
	}
	return a
}

func subInt(a, b Vector) Vector {
	for i := range 4 {
		a.v[i] -= b.v[i]
	}
	return a
}

func shiftLeftInt(v Vector, n uint) Vector {
	for i := range 4 {
		v.v[i] <<= n
	}
	return v
}

// shiftRightInt is a logical shift.
func shiftRightInt(v Vector, n uint) Vector {
	for i := range 4 {
		v.v[i] >>= n
	}
	return v
}

// shiftLeftVar shifts each lane by the count in the same lane of c.
// Counts of 32 or more produce zero.
func shiftLeftVar(v, c Vector) Vector {
	for i := range 4 {
		v.v[i] = shiftLeft32(v.v[i], c.v[i])
	}
	return v
}

// shiftRightVar is the logical counterpart of shiftLeftVar.
func shiftRightVar(v, c Vector) Vector {
	for i := range 4 {
		v.v[i] = shiftRight32(v.v[i], c.v[i])
	}
	return v
}

// compareGreaterInt compares the lanes as signed 32-bit integers.
func compareGreaterInt(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.v[i] = boolMask(int32(a.v[i]) > int32(b.v[i]))
	}
	return r
}

// truncToInt converts float lanes to int32 toward zero. NaN and out of range
// lanes produce 0x80000000.
func truncToInt(v Vector) Vector {
	for i := range 4 {
		v.v[i] = truncFloat32ToInt32(lane(v, i))
	}
	return v
}

// intToFloat converts int32 lanes to the nearest float.
func intToFloat(v Vector) Vector {
	for i := range 4 {
		v.v[i] = math.Float32bits(float32(int32(v.v[i])))
	}
	return v
}

// swapBytes reverses the byte order of every lane.
func swapBytes(v Vector) Vector {
	for i := range 4 {
		v.v[i] = hwy.ByteSwap32(v.v[i])
	}
	return v
}

// swizzle is the general single-operand lane gather.
func swizzle(v Vector, e0, e1, e2, e3 uint8) Vector {
	return Vector{[4]uint32{v.v[e0], v.v[e1], v.v[e2], v.v[e3]}}
}

// permute is the general two-operand lane gather; indices 4..7 address b.
func permute(a, b Vector, p0, p1, p2, p3 uint8) Vector {
	src := [2][4]uint32{a.v, b.v}
	return Vector{[4]uint32{
		src[p0>>2][p0&3], src[p1>>2][p1&3],
		src[p2>>2][p2&3], src[p3>>2][p3&3],
	}}
}

// blendLanes takes lane k from b when bit k of bits is set.
func blendLanes(a, b Vector, bits uint8) Vector {
	for i := range 4 {
		if bits&(1<<i) != 0 {
			a.v[i] = b.v[i]
		}
	}
	return a
}

// moveLowHalves returns (a0, a1, b0, b1).
func moveLowHalves(a, b Vector) Vector {
	return Vector{[4]uint32{a.v[0], a.v[1], b.v[0], b.v[1]}}
}

// moveHighHalves returns (b2, b3, a2, a3).
func moveHighHalves(a, b Vector) Vector {
	return Vector{[4]uint32{b.v[2], b.v[3], a.v[2], a.v[3]}}
}

// interleaveLow returns (a0, b0, a1, b1).
func interleaveLow(a, b Vector) Vector {
	return Vector{[4]uint32{a.v[0], b.v[0], a.v[1], b.v[1]}}
}

// interleaveHigh returns (a2, b2, a3, b3).
func interleaveHigh(a, b Vector) Vector {
	return Vector{[4]uint32{a.v[2], b.v[2], a.v[3], b.v[3]}}
}

// dupEven returns (v0, v0, v2, v2).
func dupEven(v Vector) Vector {
	return Vector{[4]uint32{v.v[0], v.v[0], v.v[2], v.v[2]}}
}

// dupOdd returns (v1, v1, v3, v3).
func dupOdd(v Vector) Vector {
	return Vector{[4]uint32{v.v[1], v.v[1], v.v[3], v.v[3]}}
}

// shufflePair returns (a[i0], a[i1], b[i2], b[i3]).
func shufflePair(a, b Vector, i0, i1, i2, i3 uint8) Vector {
	return Vector{[4]uint32{a.v[i0], a.v[i1], b.v[i2], b.v[i3]}}
}
