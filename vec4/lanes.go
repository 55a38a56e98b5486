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

func checkLane(i int) {
	if uint(i) > 3 {
		panic(fmt.Sprintf("vec4: lane index %d out of range [0, 3]", i))
	}
}

// Ints returns the lanes viewed as signed 32-bit integers.
func (v Vector) Ints() [4]int32 {
	u := v.UInts()
	return [4]int32{int32(u[0]), int32(u[1]), int32(u[2]), int32(u[3])}
}

// FromInts builds a Vector from four signed 32-bit lanes, keeping their bits.
func FromInts(i [4]int32) Vector {
	return FromUInts([4]uint32{uint32(i[0]), uint32(i[1]), uint32(i[2]), uint32(i[3])})
}

// String formats the float view of v.
func (v Vector) String() string {
	f := v.Floats()
	return fmt.Sprintf("(%g, %g, %g, %g)", f[0], f[1], f[2], f[3])
}

func SetX(v Vector, f float32) Vector { return SetByIndex(v, f, 0) }
func SetY(v Vector, f float32) Vector { return SetByIndex(v, f, 1) }
func SetZ(v Vector, f float32) Vector { return SetByIndex(v, f, 2) }
func SetW(v Vector, f float32) Vector { return SetByIndex(v, f, 3) }

func GetUIntX(v Vector) uint32 { return GetUIntByIndex(v, 0) }
func GetUIntY(v Vector) uint32 { return GetUIntByIndex(v, 1) }
func GetUIntZ(v Vector) uint32 { return GetUIntByIndex(v, 2) }
func GetUIntW(v Vector) uint32 { return GetUIntByIndex(v, 3) }

func SetUIntX(v Vector, u uint32) Vector { return SetUIntByIndex(v, u, 0) }
func SetUIntY(v Vector, u uint32) Vector { return SetUIntByIndex(v, u, 1) }
func SetUIntZ(v Vector, u uint32) Vector { return SetUIntByIndex(v, u, 2) }
func SetUIntW(v Vector, u uint32) Vector { return SetUIntByIndex(v, u, 3) }

// shiftLeft32 is a shift whose count may exceed 31, giving zero.
func shiftLeft32(v, n uint32) uint32 {
	if n > 31 {
		return 0
	}
	return v << n
}

func shiftRight32(v, n uint32) uint32 {
	if n > 31 {
		return 0
	}
	return v >> n
}

// truncFloat32ToInt32 converts toward zero the way CVTTPS2DQ does: NaN and
// values outside the int32 range give 0x80000000.
func truncFloat32ToInt32(f float32) uint32 {
	if !(f >= -unsignedFix && f < unsignedFix) {
		return 0x80000000
	}
	return uint32(int32(f))
}
