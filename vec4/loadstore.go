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

import (
	"fmt"
	"unsafe"

	"github.com/go-highway/vecmath/hwy"
)

// Loads zero-fill lanes the source does not cover; stores write only the
// lanes the destination holds. The plain forms require 16-byte alignment
// and panic otherwise; the Packed forms accept any address.

func checkAligned(op string, p unsafe.Pointer) {
	if p == nil {
		panic(fmt.Sprintf("vec4: %s: nil pointer", op))
	}
	if uintptr(p)&15 != 0 {
		panic(fmt.Sprintf("vec4: %s: pointer %p is not 16-byte aligned", op, p))
	}
}

func checkNil(op string, p unsafe.Pointer) {
	if p == nil {
		panic(fmt.Sprintf("vec4: %s: nil pointer", op))
	}
}

// checkLen rejects slices shorter than a vector. Reslicing alone would only
// check the capacity.
func checkLen(op string, n int) {
	if n < 4 {
		panic(fmt.Sprintf("vec4: %s: slice length %d, need 4", op, n))
	}
}

// ReplicatePtr returns *p in every lane.
func ReplicatePtr(p *float32) Vector {
	checkNil("ReplicatePtr", unsafe.Pointer(p))
	return Replicate(*p)
}

// ReplicateUIntPtr returns *p in every lane.
func ReplicateUIntPtr(p *uint32) Vector {
	checkNil("ReplicateUIntPtr", unsafe.Pointer(p))
	return ReplicateUInt(*p)
}

// SplatConstant returns the integer c in every lane, in the int32 view. c
// must be in -16..15.
func SplatConstant(c int32) Vector {
	if c < -16 || c > 15 {
		panic(fmt.Sprintf("vec4: SplatConstant: %d out of range [-16, 15]", c))
	}
	return ReplicateUInt(uint32(c))
}

// SplatConstantScaled returns c / 2^exp as a float in every lane. c must be
// in -16..15 and exp in 0..31.
func SplatConstantScaled(c int32, exp uint32) Vector {
	return ConvertIntToFloat(SplatConstant(c), exp)
}

// LoadRaw1 loads one 32-bit word into the x lane.
func LoadRaw1(p *uint32) Vector {
	checkNil("LoadRaw1", unsafe.Pointer(p))
	return MakeUInt(*p, 0, 0, 0)
}

// LoadRaw2 loads two words from 16-byte aligned memory.
func LoadRaw2(p *[2]uint32) Vector {
	checkAligned("LoadRaw2", unsafe.Pointer(p))
	return MakeUInt(p[0], p[1], 0, 0)
}

// LoadRaw3 loads three words from 16-byte aligned memory.
func LoadRaw3(p *[3]uint32) Vector {
	checkAligned("LoadRaw3", unsafe.Pointer(p))
	return MakeUInt(p[0], p[1], p[2], 0)
}

// LoadRaw4 loads four words from 16-byte aligned memory.
func LoadRaw4(p *[4]uint32) Vector {
	checkAligned("LoadRaw4", unsafe.Pointer(p))
	return FromUInts(*p)
}

// LoadRawPacked2 loads two words from any address.
func LoadRawPacked2(p *[2]uint32) Vector {
	checkNil("LoadRawPacked2", unsafe.Pointer(p))
	return MakeUInt(p[0], p[1], 0, 0)
}

// LoadRawPacked3 loads three words from any address.
func LoadRawPacked3(p *[3]uint32) Vector {
	checkNil("LoadRawPacked3", unsafe.Pointer(p))
	return MakeUInt(p[0], p[1], p[2], 0)
}

// LoadRawPacked4 loads four words from any address.
func LoadRawPacked4(p *[4]uint32) Vector {
	checkNil("LoadRawPacked4", unsafe.Pointer(p))
	return FromUInts(*p)
}

// StoreRaw1 stores the x lane.
func StoreRaw1(v Vector, p *uint32) {
	checkNil("StoreRaw1", unsafe.Pointer(p))
	*p = GetUIntX(v)
}

// StoreRaw2 stores x and y to 16-byte aligned memory.
func StoreRaw2(v Vector, p *[2]uint32) {
	checkAligned("StoreRaw2", unsafe.Pointer(p))
	u := v.UInts()
	*p = [2]uint32(u[:2])
}

// StoreRaw3 stores x, y and z to 16-byte aligned memory.
func StoreRaw3(v Vector, p *[3]uint32) {
	checkAligned("StoreRaw3", unsafe.Pointer(p))
	u := v.UInts()
	*p = [3]uint32(u[:3])
}

// StoreRaw4 stores all lanes to 16-byte aligned memory.
func StoreRaw4(v Vector, p *[4]uint32) {
	checkAligned("StoreRaw4", unsafe.Pointer(p))
	*p = v.UInts()
}

// StoreRawPacked2 stores x and y to any address.
func StoreRawPacked2(v Vector, p *[2]uint32) {
	checkNil("StoreRawPacked2", unsafe.Pointer(p))
	u := v.UInts()
	*p = [2]uint32(u[:2])
}

// StoreRawPacked3 stores x, y and z to any address.
func StoreRawPacked3(v Vector, p *[3]uint32) {
	checkNil("StoreRawPacked3", unsafe.Pointer(p))
	u := v.UInts()
	*p = [3]uint32(u[:3])
}

// StoreRawPacked4 stores all lanes to any address.
func StoreRawPacked4(v Vector, p *[4]uint32) {
	checkNil("StoreRawPacked4", unsafe.Pointer(p))
	*p = v.UInts()
}

// LoadFloat loads one float into the x lane.
func LoadFloat(p *float32) Vector {
	checkNil("LoadFloat", unsafe.Pointer(p))
	return Make(*p, 0, 0, 0)
}

// LoadFloat2 loads two floats from 16-byte aligned memory.
func LoadFloat2(p *[2]float32) Vector {
	checkAligned("LoadFloat2", unsafe.Pointer(p))
	return Make(p[0], p[1], 0, 0)
}

// LoadFloat3 loads three floats from 16-byte aligned memory.
func LoadFloat3(p *[3]float32) Vector {
	checkAligned("LoadFloat3", unsafe.Pointer(p))
	return Make(p[0], p[1], p[2], 0)
}

// LoadFloat4 loads four floats from 16-byte aligned memory.
func LoadFloat4(p *[4]float32) Vector {
	checkAligned("LoadFloat4", unsafe.Pointer(p))
	return FromFloats(*p)
}

// LoadFloat2Packed loads two floats from any address.
func LoadFloat2Packed(p *[2]float32) Vector {
	checkNil("LoadFloat2Packed", unsafe.Pointer(p))
	return Make(p[0], p[1], 0, 0)
}

// LoadFloat3Packed loads three floats from any address.
func LoadFloat3Packed(p *[3]float32) Vector {
	checkNil("LoadFloat3Packed", unsafe.Pointer(p))
	return Make(p[0], p[1], p[2], 0)
}

// LoadFloat4Packed loads four floats from any address.
func LoadFloat4Packed(p *[4]float32) Vector {
	checkNil("LoadFloat4Packed", unsafe.Pointer(p))
	return FromFloats(*p)
}

// StoreFloat stores the x lane.
func StoreFloat(v Vector, p *float32) {
	checkNil("StoreFloat", unsafe.Pointer(p))
	*p = GetX(v)
}

// StoreFloat2 stores x and y to 16-byte aligned memory.
func StoreFloat2(v Vector, p *[2]float32) {
	checkAligned("StoreFloat2", unsafe.Pointer(p))
	f := v.Floats()
	*p = [2]float32(f[:2])
}

// StoreFloat3 stores x, y and z to 16-byte aligned memory.
func StoreFloat3(v Vector, p *[3]float32) {
	checkAligned("StoreFloat3", unsafe.Pointer(p))
	f := v.Floats()
	*p = [3]float32(f[:3])
}

// StoreFloat4 stores all lanes to 16-byte aligned memory.
func StoreFloat4(v Vector, p *[4]float32) {
	checkAligned("StoreFloat4", unsafe.Pointer(p))
	*p = v.Floats()
}

// StoreFloat2Packed stores x and y to any address.
func StoreFloat2Packed(v Vector, p *[2]float32) {
	checkNil("StoreFloat2Packed", unsafe.Pointer(p))
	f := v.Floats()
	*p = [2]float32(f[:2])
}

// StoreFloat3Packed stores x, y and z to any address.
func StoreFloat3Packed(v Vector, p *[3]float32) {
	checkNil("StoreFloat3Packed", unsafe.Pointer(p))
	f := v.Floats()
	*p = [3]float32(f[:3])
}

// StoreFloat4Packed stores all lanes to any address.
func StoreFloat4Packed(v Vector, p *[4]float32) {
	checkNil("StoreFloat4Packed", unsafe.Pointer(p))
	*p = v.Floats()
}

// LoadSlice loads the first four elements of s. It panics if len(s) < 4.
func LoadSlice(s []float32) Vector {
	checkLen("LoadSlice", len(s))
	return FromFloats([4]float32(s[:4]))
}

// StoreSlice stores all lanes to the first four elements of s. It panics if
// len(s) < 4.
func StoreSlice(v Vector, s []float32) {
	checkLen("StoreSlice", len(s))
	f := v.Floats()
	copy(s[:4], f[:])
}

// LoadInt2 loads two int32 values and converts them to float.
func LoadInt2(p *[2]int32) Vector {
	checkNil("LoadInt2", unsafe.Pointer(p))
	return intToFloat(MakeUInt(uint32(p[0]), uint32(p[1]), 0, 0))
}

// LoadInt3 loads three int32 values and converts them to float.
func LoadInt3(p *[3]int32) Vector {
	checkNil("LoadInt3", unsafe.Pointer(p))
	return intToFloat(MakeUInt(uint32(p[0]), uint32(p[1]), uint32(p[2]), 0))
}

// LoadInt4 loads four int32 values and converts them to float.
func LoadInt4(p *[4]int32) Vector {
	checkNil("LoadInt4", unsafe.Pointer(p))
	return intToFloat(FromInts(*p))
}

// LoadUInt2 loads two uint32 values and converts them to float.
func LoadUInt2(p *[2]uint32) Vector {
	checkNil("LoadUInt2", unsafe.Pointer(p))
	return ConvertUIntToFloat(MakeUInt(p[0], p[1], 0, 0), 0)
}

// LoadUInt3 loads three uint32 values and converts them to float.
func LoadUInt3(p *[3]uint32) Vector {
	checkNil("LoadUInt3", unsafe.Pointer(p))
	return ConvertUIntToFloat(MakeUInt(p[0], p[1], p[2], 0), 0)
}

// LoadUInt4 loads four uint32 values and converts them to float.
func LoadUInt4(p *[4]uint32) Vector {
	checkNil("LoadUInt4", unsafe.Pointer(p))
	return ConvertUIntToFloat(FromUInts(*p), 0)
}

// toInt32 truncates to int32 with saturation; NaN lanes give 0.
func toInt32(v Vector) [4]int32 {
	return MaskAndCUInt(ConvertFloatToInt(v, 0), CompareIsNaN(v)).Ints()
}

// StoreInt2 stores x and y as saturated int32 values.
func StoreInt2(v Vector, p *[2]int32) {
	checkNil("StoreInt2", unsafe.Pointer(p))
	i := toInt32(v)
	*p = [2]int32(i[:2])
}

// StoreInt3 stores x, y and z as saturated int32 values.
func StoreInt3(v Vector, p *[3]int32) {
	checkNil("StoreInt3", unsafe.Pointer(p))
	i := toInt32(v)
	*p = [3]int32(i[:3])
}

// StoreInt4 stores all lanes as saturated int32 values.
func StoreInt4(v Vector, p *[4]int32) {
	checkNil("StoreInt4", unsafe.Pointer(p))
	*p = toInt32(v)
}

// StoreUInt2 stores x and y as saturated uint32 values.
func StoreUInt2(v Vector, p *[2]uint32) {
	checkNil("StoreUInt2", unsafe.Pointer(p))
	u := ConvertFloatToUInt(v, 0).UInts()
	*p = [2]uint32(u[:2])
}

// StoreUInt3 stores x, y and z as saturated uint32 values.
func StoreUInt3(v Vector, p *[3]uint32) {
	checkNil("StoreUInt3", unsafe.Pointer(p))
	u := ConvertFloatToUInt(v, 0).UInts()
	*p = [3]uint32(u[:3])
}

// StoreUInt4 stores all lanes as saturated uint32 values.
func StoreUInt4(v Vector, p *[4]uint32) {
	checkNil("StoreUInt4", unsafe.Pointer(p))
	*p = ConvertFloatToUInt(v, 0).UInts()
}

// LoadHalf2 loads two half-precision values.
func LoadHalf2(p *[2]hwy.Float16) Vector {
	checkNil("LoadHalf2", unsafe.Pointer(p))
	return Make(p[0].Float32(), p[1].Float32(), 0, 0)
}

// LoadHalf3 loads three half-precision values.
func LoadHalf3(p *[3]hwy.Float16) Vector {
	checkNil("LoadHalf3", unsafe.Pointer(p))
	return Make(p[0].Float32(), p[1].Float32(), p[2].Float32(), 0)
}

// LoadHalf4 loads four half-precision values.
func LoadHalf4(p *[4]hwy.Float16) Vector {
	checkNil("LoadHalf4", unsafe.Pointer(p))
	var f [4]float32
	hwy.Float16sToFloat32s(f[:], p[:])
	return FromFloats(f)
}

// toHalf converts every lane to half precision. Finite values out of range
// saturate to ±65504.
func toHalf(v Vector) (h [4]hwy.Float16) {
	for i, f := range v.Floats() {
		h[i] = hwy.Float32ToFloat16Sat(f)
	}
	return h
}

// StoreHalf2 stores x and y in half precision.
func StoreHalf2(v Vector, p *[2]hwy.Float16) {
	checkNil("StoreHalf2", unsafe.Pointer(p))
	h := toHalf(v)
	*p = [2]hwy.Float16(h[:2])
}

// StoreHalf3 stores x, y and z in half precision.
func StoreHalf3(v Vector, p *[3]hwy.Float16) {
	checkNil("StoreHalf3", unsafe.Pointer(p))
	h := toHalf(v)
	*p = [3]hwy.Float16(h[:3])
}

// StoreHalf4 stores all lanes in half precision.
func StoreHalf4(v Vector, p *[4]hwy.Float16) {
	checkNil("StoreHalf4", unsafe.Pointer(p))
	*p = toHalf(v)
}
