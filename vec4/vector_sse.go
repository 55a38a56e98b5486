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

//go:build amd64 && goexperiment.simd && !noasm

package vec4

import (
	"simd/archsimd"
)

// This file provides the archsimd primitives. They mirror vector_base.go one
// for one. Lane gathers go through SelectFromPair (VSHUFPS); operations
// without a direct archsimd instruction use the store/scalar/load pattern.
// Only VEX forms from AVX, AVX2 and FMA are emitted, never mask registers.

// HardwarePath reports whether the archsimd implementation was compiled in.
const HardwarePath = true

// Vector holds four 32-bit lanes in an XMM register. The lanes can be viewed
// as float32, uint32 or int32 without conversion.
type Vector struct {
	v archsimd.Float32x4
}

var (
	sseAllOnes  = archsimd.BroadcastInt32x4(-1).AsFloat32x4()
	sseZero     = archsimd.BroadcastFloat32x4(0)
	sseOne      = archsimd.BroadcastFloat32x4(1)
	sseSignMask = archsimd.BroadcastInt32x4(-0x80000000)
	sseAbsMask  = archsimd.BroadcastInt32x4(0x7FFFFFFF)

	// blendMasks[bits] has lane k all ones when bit k of bits is set.
	blendMasks = func() (m [16]Vector) {
		for bits := range m {
			var u [4]uint32
			for k := range u {
				if bits&(1<<k) != 0 {
					u[k] = 0xFFFFFFFF
				}
			}
			m[bits] = FromUInts(u)
		}
		return m
	}()
)

func wrapInt(v archsimd.Int32x4) Vector { return Vector{v.AsFloat32x4()} }

func (v Vector) ints() archsimd.Int32x4 { return v.v.AsInt32x4() }

// maskVector widens a comparison mask to all-ones / all-zeros lanes.
func maskVector(m archsimd.Mask32x4) Vector {
	return Vector{sseAllOnes.Merge(sseZero, m)}
}

// FromFloats builds a Vector from four float32 lanes.
func FromFloats(f [4]float32) Vector {
	return Vector{archsimd.LoadFloat32x4Slice(f[:])}
}

// FromUInts builds a Vector from four raw 32-bit lanes.
func FromUInts(u [4]uint32) Vector {
	return Vector{archsimd.LoadUint32x4Slice(u[:]).AsFloat32x4()}
}

// Floats returns the lanes viewed as float32.
func (v Vector) Floats() [4]float32 {
	var f [4]float32
	v.v.StoreSlice(f[:])
	return f
}

// UInts returns the raw lane bit patterns.
func (v Vector) UInts() [4]uint32 {
	var u [4]uint32
	v.v.AsUint32x4().StoreSlice(u[:])
	return u
}

// Make builds a Vector from four floats.
func Make(x, y, z, w float32) Vector {
	return FromFloats([4]float32{x, y, z, w})
}

// Replicate broadcasts f to all four lanes.
func Replicate(f float32) Vector {
	return Vector{archsimd.BroadcastFloat32x4(f)}
}

// MakeUInt builds a Vector from four raw lane bit patterns.
func MakeUInt(x, y, z, w uint32) Vector {
	return FromUInts([4]uint32{x, y, z, w})
}

// ReplicateUInt broadcasts the bit pattern u to all four lanes.
func ReplicateUInt(u uint32) Vector {
	return wrapInt(archsimd.BroadcastInt32x4(int32(u)))
}

// Zero returns the all-zero vector.
func Zero() Vector {
	return Vector{sseZero}
}

// GetX returns lane 0 as a float.
func GetX(v Vector) float32 { return v.v.GetElem(0) }

// GetY returns lane 1 as a float.
func GetY(v Vector) float32 { return v.v.GetElem(1) }

// GetZ returns lane 2 as a float.
func GetZ(v Vector) float32 { return v.v.GetElem(2) }

// GetW returns lane 3 as a float.
func GetW(v Vector) float32 { return v.v.GetElem(3) }

// GetByIndex returns lane i as a float. It panics if i is not in 0..3.
func GetByIndex(v Vector, i int) float32 {
	checkLane(i)
	return v.Floats()[i]
}

// SetByIndex returns v with lane i replaced by f.
func SetByIndex(v Vector, f float32, i int) Vector {
	checkLane(i)
	data := v.Floats()
	data[i] = f
	return FromFloats(data)
}

// GetUIntByIndex returns the bit pattern of lane i.
func GetUIntByIndex(v Vector, i int) uint32 {
	checkLane(i)
	return v.UInts()[i]
}

// SetUIntByIndex returns v with the bit pattern of lane i replaced by u.
func SetUIntByIndex(v Vector, u uint32, i int) Vector {
	checkLane(i)
	data := v.UInts()
	data[i] = u
	return FromUInts(data)
}

// SplatX copies lane 0 to every lane.
func SplatX(v Vector) Vector { return Vector{v.v.SelectFromPair(0, 0, 0, 0, v.v)} }

// SplatY copies lane 1 to every lane.
func SplatY(v Vector) Vector { return Vector{v.v.SelectFromPair(1, 1, 1, 1, v.v)} }

// SplatZ copies lane 2 to every lane.
func SplatZ(v Vector) Vector { return Vector{v.v.SelectFromPair(2, 2, 2, 2, v.v)} }

// SplatW copies lane 3 to every lane.
func SplatW(v Vector) Vector { return Vector{v.v.SelectFromPair(3, 3, 3, 3, v.v)} }

// Add returns a + b per lane.
func Add(a, b Vector) Vector { return Vector{a.v.Add(b.v)} }

// Subtract returns a - b per lane.
func Subtract(a, b Vector) Vector { return Vector{a.v.Sub(b.v)} }

// Multiply returns a * b per lane.
func Multiply(a, b Vector) Vector { return Vector{a.v.Mul(b.v)} }

// Divide returns a / b per lane.
func Divide(a, b Vector) Vector { return Vector{a.v.Div(b.v)} }

// Negate flips the sign bit of every lane.
func Negate(v Vector) Vector { return wrapInt(v.ints().Xor(sseSignMask)) }

// Scale multiplies every lane by s.
func Scale(v Vector, s float32) Vector {
	return Vector{v.v.Mul(archsimd.BroadcastFloat32x4(s))}
}

// MultiplyAdd returns a*b + c with a single rounding.
func MultiplyAdd(a, b, c Vector) Vector {
	return Vector{a.v.MulAdd(b.v, c.v)}
}

// NegativeMultiplySubtract returns c - a*b with a single rounding.
func NegativeMultiplySubtract(a, b, c Vector) Vector {
	return Vector{Negate(a).v.MulAdd(b.v, c.v)}
}

// Min returns the lane-wise minimum. When either lane is NaN the lane of b
// is returned.
func Min(a, b Vector) Vector { return Vector{a.v.Min(b.v)} }

// Max returns the lane-wise maximum. When either lane is NaN the lane of b
// is returned.
func Max(a, b Vector) Vector { return Vector{a.v.Max(b.v)} }

// Abs clears the sign bit of every lane.
func Abs(v Vector) Vector { return wrapInt(v.ints().And(sseAbsMask)) }

// Sqrt returns the correctly rounded square root of every lane.
func Sqrt(v Vector) Vector { return Vector{v.v.Sqrt()} }

// SqrtEst returns an estimate of the square root of every lane.
func SqrtEst(v Vector) Vector { return Vector{v.v.Sqrt()} }

// Reciprocal returns 1/v per lane.
func Reciprocal(v Vector) Vector { return Vector{sseOne.Div(v.v)} }

// ReciprocalEst returns an estimate of 1/v per lane.
func ReciprocalEst(v Vector) Vector { return Vector{sseOne.Div(v.v)} }

// ReciprocalSqrt returns 1/sqrt(v) per lane.
func ReciprocalSqrt(v Vector) Vector { return Vector{sseOne.Div(v.v.Sqrt())} }

// ReciprocalSqrtEst returns an estimate of 1/sqrt(v) per lane.
func ReciprocalSqrtEst(v Vector) Vector { return Vector{sseOne.Div(v.v.Sqrt())} }

// Round rounds every lane to the nearest integer, ties to even.
func Round(v Vector) Vector { return Vector{v.v.RoundToEven()} }

// Truncate rounds every lane toward zero.
func Truncate(v Vector) Vector { return Vector{v.v.Trunc()} }

// Floor rounds every lane toward negative infinity.
func Floor(v Vector) Vector { return Vector{v.v.Floor()} }

// Ceiling rounds every lane toward positive infinity.
func Ceiling(v Vector) Vector { return Vector{v.v.Ceil()} }

// Sum adds the four lanes and broadcasts the total.
func Sum(v Vector) Vector {
	s := ((v.v.GetElem(0) + v.v.GetElem(1)) + v.v.GetElem(2)) + v.v.GetElem(3)
	return Replicate(s)
}

// Dot returns the four-lane dot product of a and b in every lane.
func Dot(a, b Vector) Vector {
	return Sum(Vector{a.v.Mul(b.v)})
}

// CompareEqual returns a == b per lane as a mask. NaN lanes compare false.
func CompareEqual(a, b Vector) Vector { return maskVector(a.v.Equal(b.v)) }

// CompareNotEqual returns a != b per lane as a mask. NaN lanes compare true.
func CompareNotEqual(a, b Vector) Vector { return maskVector(a.v.NotEqual(b.v)) }

// CompareGreater returns a > b per lane as a mask.
func CompareGreater(a, b Vector) Vector { return maskVector(a.v.Greater(b.v)) }

// CompareGreaterEqual returns a >= b per lane as a mask.
func CompareGreaterEqual(a, b Vector) Vector { return maskVector(a.v.GreaterEqual(b.v)) }

// CompareLess returns a < b per lane as a mask.
func CompareLess(a, b Vector) Vector { return maskVector(a.v.Less(b.v)) }

// CompareLessEqual returns a <= b per lane as a mask.
func CompareLessEqual(a, b Vector) Vector { return maskVector(a.v.LessEqual(b.v)) }

// CompareEqualUInt compares the raw lane bit patterns.
func CompareEqualUInt(a, b Vector) Vector {
	return maskVector(a.ints().Equal(b.ints()))
}

// MaskAndUInt returns a & b.
func MaskAndUInt(a, b Vector) Vector { return wrapInt(a.ints().And(b.ints())) }

// MaskAndCUInt returns a &^ b.
func MaskAndCUInt(a, b Vector) Vector { return wrapInt(a.ints().AndNot(b.ints())) }

// MaskOrUInt returns a | b.
func MaskOrUInt(a, b Vector) Vector { return wrapInt(a.ints().Or(b.ints())) }

// MaskXorUInt returns a ^ b.
func MaskXorUInt(a, b Vector) Vector { return wrapInt(a.ints().Xor(b.ints())) }

// Select takes the bits of b where control is set and the bits of a
// elsewhere.
func Select(a, b, control Vector) Vector {
	c := control.ints()
	return wrapInt(a.ints().AndNot(c).Or(b.ints().And(c)))
}

// laneBits returns a 4-bit set with bit k set when lane k is non-zero.
func laneBits(v Vector) uint8 {
	zero := v.ints().Equal(archsimd.BroadcastInt32x4(0))
	return uint8(zero.ToBits()) ^ 0xF
}

func addInt(a, b Vector) Vector { return wrapInt(a.ints().Add(b.ints())) }
func subInt(a, b Vector) Vector { return wrapInt(a.ints().Sub(b.ints())) }

func shiftLeftInt(v Vector, n uint) Vector {
	return wrapInt(v.ints().ShiftAllLeft(uint64(n)))
}

// shiftRightInt is a logical shift.
func shiftRightInt(v Vector, n uint) Vector {
	return Vector{v.v.AsUint32x4().ShiftAllRight(uint64(n)).AsFloat32x4()}
}

// shiftLeftVar shifts each lane by the count in the same lane of c.
// Per-lane shift counts need AVX2, so this uses store/scalar/load.
func shiftLeftVar(v, c Vector) Vector {
	data, counts := v.UInts(), c.UInts()
	for i := range 4 {
		data[i] = shiftLeft32(data[i], counts[i])
	}
	return FromUInts(data)
}

// shiftRightVar is the logical counterpart of shiftLeftVar.
func shiftRightVar(v, c Vector) Vector {
	data, counts := v.UInts(), c.UInts()
	for i := range 4 {
		data[i] = shiftRight32(data[i], counts[i])
	}
	return FromUInts(data)
}

// compareGreaterInt compares the lanes as signed 32-bit integers.
func compareGreaterInt(a, b Vector) Vector {
	return maskVector(a.ints().Greater(b.ints()))
}

// truncToInt converts float lanes to int32 toward zero. NaN and out of range
// lanes produce 0x80000000.
func truncToInt(v Vector) Vector { return wrapInt(v.v.ConvertToInt32()) }

// intToFloat converts int32 lanes to the nearest float.
func intToFloat(v Vector) Vector { return Vector{v.ints().ConvertToFloat32()} }

// swapBytes reverses the byte order of every lane.
func swapBytes(v Vector) Vector {
	x := v.ints()
	b0 := x.ShiftAllLeft(24)
	b1 := x.ShiftAllLeft(8).And(archsimd.BroadcastInt32x4(0x00FF0000))
	b2 := v.v.AsUint32x4().ShiftAllRight(8).AsInt32x4().And(archsimd.BroadcastInt32x4(0x0000FF00))
	b3 := v.v.AsUint32x4().ShiftAllRight(24).AsInt32x4()
	return wrapInt(b0.Or(b1).Or(b2.Or(b3)))
}

// swizzle is the general single-operand lane gather.
func swizzle(v Vector, e0, e1, e2, e3 uint8) Vector {
	return Vector{v.v.SelectFromPair(e0, e1, e2, e3, v.v)}
}

// permute is the general two-operand lane gather; indices 4..7 address b.
func permute(a, b Vector, p0, p1, p2, p3 uint8) Vector {
	return Vector{a.v.SelectFromPair(p0, p1, p2, p3, b.v)}
}

// blendLanes takes lane k from b when bit k of bits is set.
func blendLanes(a, b Vector, bits uint8) Vector {
	return Select(a, b, blendMasks[bits&0xF])
}

// moveLowHalves returns (a0, a1, b0, b1).
func moveLowHalves(a, b Vector) Vector {
	return Vector{a.v.SelectFromPair(0, 1, 4, 5, b.v)}
}

// moveHighHalves returns (b2, b3, a2, a3).
func moveHighHalves(a, b Vector) Vector {
	return Vector{b.v.SelectFromPair(2, 3, 6, 7, a.v)}
}

// interleaveLow returns (a0, b0, a1, b1).
func interleaveLow(a, b Vector) Vector {
	return Vector{a.v.SelectFromPair(0, 4, 1, 5, b.v)}
}

// interleaveHigh returns (a2, b2, a3, b3).
func interleaveHigh(a, b Vector) Vector {
	return Vector{a.v.SelectFromPair(2, 6, 3, 7, b.v)}
}

// dupEven returns (v0, v0, v2, v2).
func dupEven(v Vector) Vector {
	return Vector{v.v.SelectFromPair(0, 0, 2, 2, v.v)}
}

// dupOdd returns (v1, v1, v3, v3).
func dupOdd(v Vector) Vector {
	return Vector{v.v.SelectFromPair(1, 1, 3, 3, v.v)}
}

// shufflePair returns (a[i0], a[i1], b[i2], b[i3]).
func shufflePair(a, b Vector, i0, i1, i2, i3 uint8) Vector {
	return Vector{a.v.SelectFromPair(i0, i1, i2+4, i3+4, b.v)}
}
