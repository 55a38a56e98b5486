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

package hwy

import (
	"math"
	"math/bits"
)

// This file provides scalar bit-level primitives on IEEE 754 binary32
// patterns. They operate on raw bits so the same tests can be expressed
// lane-wise inside vector code.

// Binary32 field masks and special patterns.
const (
	Float32SignMask     uint32 = 0x80000000
	Float32AbsMask      uint32 = 0x7FFFFFFF
	Float32MantissaMask uint32 = 0x007FFFFF

	// Float32QuietBit is the top mantissa bit; it is set in every quiet NaN.
	Float32QuietBit uint32 = 0x00400000

	// Float32NoFraction is 2^23: every float32 at or above it is integral.
	Float32NoFraction float32 = 8388608
)

// BitIsNaN32 reports whether b is the bit pattern of a NaN: exponent all ones
// and a non-zero mantissa. The single unsigned compare covers both signs.
func BitIsNaN32(b uint32) bool {
	return (b&Float32AbsMask)-0x7F800001 < Float32MantissaMask
}

// ByteSwap32 reverses the byte order of v.
func ByteSwap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// RoundToNearest32 rounds f to the nearest integer, ties to even.
// NaN comes back quieted with its payload and sign kept. Infinities and
// values of magnitude 2^23 or more are returned as is; the sign of zero is
// preserved.
func RoundToNearest32(f float32) float32 {
	b := math.Float32bits(f)
	if BitIsNaN32(b) {
		return math.Float32frombits(b | Float32QuietBit)
	}
	a := math.Float32frombits(b & Float32AbsMask)
	if !(a < Float32NoFraction) {
		return f
	}
	// Adding and subtracting 2^23 leaves no fraction bits; the FPU rounds
	// to nearest even in between.
	r := float32(a+Float32NoFraction) - Float32NoFraction
	return math.Float32frombits(math.Float32bits(r) | b&Float32SignMask)
}
