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
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// ToF32 returns the lanes of v as an f32.Vec4.
func ToF32(v Vector) f32.Vec4 {
	return f32.Vec4(v.Floats())
}

// FromF32 returns a Vector holding the components of a.
func FromF32(a f32.Vec4) Vector {
	return FromFloats([4]float32(a))
}

// MatrixFromF32 converts a row-major f32.Mat4 to a Matrix.
func MatrixFromF32(a f32.Mat4) Matrix {
	var m Matrix
	for r := range m {
		m[r] = FromFloats([4]float32(a[4*r : 4*r+4]))
	}
	return m
}

// F32 returns m as a row-major f32.Mat4.
func (m Matrix) F32() f32.Mat4 {
	var a f32.Mat4
	for r, row := range m {
		f := row.Floats()
		copy(a[4*r:], f[:])
	}
	return a
}

// ToFixed26_6 converts every lane to 26.6 fixed point, truncating toward zero
// and saturating like ConvertFloatToInt.
func ToFixed26_6(v Vector) [4]fixed.Int26_6 {
	var r [4]fixed.Int26_6
	for i, x := range ConvertFloatToInt(v, 6).Ints() {
		r[i] = fixed.Int26_6(x)
	}
	return r
}

// FromFixed26_6 converts four 26.6 fixed-point values to float lanes.
func FromFixed26_6(a [4]fixed.Int26_6) Vector {
	return ConvertIntToFloat(FromInts([4]int32{int32(a[0]), int32(a[1]), int32(a[2]), int32(a[3])}), 6)
}
