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

import "math"

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: 2^-14 (~6.10e-5)
//   - Min positive subnormal: 2^-24 (~5.96e-8)
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000 // Positive zero
	Float16NegZero   Float16 = 0x8000 // Negative zero
	Float16One       Float16 = 0x3C00 // 1.0
	Float16NegOne    Float16 = 0xBC00 // -1.0
	Float16MaxValue  Float16 = 0x7BFF // 65504 (max finite value)
	Float16MinNormal Float16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	Float16MinValue  Float16 = 0x0001 // Smallest denormal (~5.96e-8)
	Float16Inf       Float16 = 0x7C00 // Positive infinity
	Float16NegInf    Float16 = 0xFC00 // Negative infinity
	Float16NaN       Float16 = 0x7E00 // Quiet NaN (canonical)
)

const (
	// Binary32 pattern of the first value that rounds to half infinity (65520).
	float16OverflowBits = 0x477FF000
	// Binary32 pattern of the largest finite half (65504).
	float16MaxBits = 0x477FE000
	// Binary32 pattern of the smallest normal half (2^-14).
	float16MinNormalBits = 0x38800000
)

// Float16ToFloat32 converts a single Float16 to float32. The conversion is
// exact: subnormals are renormalised and NaN payloads are kept (quieted).
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h & 0x3FF)

	switch {
	case exp == 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	case exp != 0:
		// Rebias 15 -> 127.
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	case mant == 0:
		return math.Float32frombits(sign)
	}

	// Subnormal: shift the leading one into the implicit bit position.
	e := uint32(113)
	for mant&0x400 == 0 {
		mant <<= 1
		e--
	}
	mant &= 0x3FF
	return math.Float32frombits(sign | e<<23 | mant<<13)
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
// Values that round beyond 65504 become infinity; NaN stays a quiet NaN.
func Float32ToFloat16(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint16((b & 0x80000000) >> 16)
	b &= 0x7FFFFFFF

	if b >= float16OverflowBits {
		if b > 0x7F800000 {
			return Float16(sign | 0x7E00 | uint16((b&0x007FFFFF)>>13))
		}
		return Float16(sign | 0x7C00)
	}

	var v uint32
	if b < float16MinNormalBits {
		// Subnormal half: make the implicit bit explicit and shift into place,
		// folding every bit shifted out into a sticky bit.
		shift := 113 - (b >> 23)
		m := 0x00800000 | b&0x007FFFFF
		if shift > 24 {
			return Float16(sign)
		}
		v = m >> shift
		if v<<shift != m {
			v |= 1
		}
	} else {
		// Rebias 127 -> 15 in place.
		v = b + 0xC8000000
	}

	return Float16(sign | uint16(((v+0x0FFF+((v>>13)&1))>>13)&0x7FFF))
}

// Float32ToFloat16Sat converts a float32 to Float16 like Float32ToFloat16, but
// finite values too large for half precision clamp to ±Float16MaxValue instead
// of becoming infinity. Infinities and NaN convert as usual.
func Float32ToFloat16Sat(f float32) Float16 {
	b := math.Float32bits(f)
	if a := b & 0x7FFFFFFF; a > float16MaxBits && a < 0x7F800000 {
		return Float16(uint16((b>>16)&0x8000)) | Float16MaxValue
	}
	return Float32ToFloat16(f)
}

// Float16sToFloat32s widens src into dst.
// It converts min(len(dst), len(src)) elements.
func Float16sToFloat32s(dst []float32, src []Float16) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float16ToFloat32(src[i])
	}
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}
