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

// Selectors classify their lane pattern once, when they are built, so Apply
// can jump straight to a dedicated shuffle. Patterns with no dedicated shuffle
// use the general gather, which is also what the dynamic Swizzle and Permute
// functions always do.

type swizzleClass uint8

const (
	swizzleGeneral swizzleClass = iota
	swizzleIdentity
	swizzleDupLow        // 0101
	swizzleDupHigh       // 2323
	swizzleInterleaveLow // 0011
	swizzleInterleaveHigh
	swizzleDupEven // 0022
	swizzleDupOdd  // 1133
	swizzleBroadcast
)

// SwizzleSelector picks, for each destination lane, one of the four lanes of
// a single source. Build it once with NewSwizzle and reuse it.
type SwizzleSelector struct {
	idx   [4]uint8
	class swizzleClass
}

// NewSwizzle returns the selector (e0, e1, e2, e3). It panics if an index is
// not in 0..3.
func NewSwizzle(e0, e1, e2, e3 uint8) SwizzleSelector {
	checkSwizzle(e0, e1, e2, e3)
	s := SwizzleSelector{idx: [4]uint8{e0, e1, e2, e3}}
	switch s.idx {
	case [4]uint8{0, 1, 2, 3}:
		s.class = swizzleIdentity
	case [4]uint8{0, 1, 0, 1}:
		s.class = swizzleDupLow
	case [4]uint8{2, 3, 2, 3}:
		s.class = swizzleDupHigh
	case [4]uint8{0, 0, 1, 1}:
		s.class = swizzleInterleaveLow
	case [4]uint8{2, 2, 3, 3}:
		s.class = swizzleInterleaveHigh
	case [4]uint8{0, 0, 2, 2}:
		s.class = swizzleDupEven
	case [4]uint8{1, 1, 3, 3}:
		s.class = swizzleDupOdd
	default:
		if e0 == e1 && e1 == e2 && e2 == e3 {
			s.class = swizzleBroadcast
		}
	}
	return s
}

// Indices returns the source lane of each destination lane.
func (s SwizzleSelector) Indices() [4]uint8 { return s.idx }

// Apply returns (v[e0], v[e1], v[e2], v[e3]).
func (s SwizzleSelector) Apply(v Vector) Vector {
	switch s.class {
	case swizzleIdentity:
		return v
	case swizzleDupLow:
		return moveLowHalves(v, v)
	case swizzleDupHigh:
		return moveHighHalves(v, v)
	case swizzleInterleaveLow:
		return interleaveLow(v, v)
	case swizzleInterleaveHigh:
		return interleaveHigh(v, v)
	case swizzleDupEven:
		return dupEven(v)
	case swizzleDupOdd:
		return dupOdd(v)
	case swizzleBroadcast:
		return splat(v, s.idx[0])
	}
	return swizzle(v, s.idx[0], s.idx[1], s.idx[2], s.idx[3])
}

func splat(v Vector, i uint8) Vector {
	switch i {
	case 0:
		return SplatX(v)
	case 1:
		return SplatY(v)
	case 2:
		return SplatZ(v)
	}
	return SplatW(v)
}

func checkSwizzle(e0, e1, e2, e3 uint8) {
	if e0 > 3 || e1 > 3 || e2 > 3 || e3 > 3 {
		panic(fmt.Sprintf("vec4: swizzle index out of range: (%d, %d, %d, %d)", e0, e1, e2, e3))
	}
}

// Swizzle returns (v[e0], v[e1], v[e2], v[e3]) for indices known only at run
// time. It panics if an index is not in 0..3.
func Swizzle(v Vector, e0, e1, e2, e3 uint8) Vector {
	checkSwizzle(e0, e1, e2, e3)
	return swizzle(v, e0, e1, e2, e3)
}

type permuteClass uint8

const (
	permuteGeneral permuteClass = iota
	permuteA
	permuteB
	permuteBlend
	permuteMoveLow     // 0145
	permuteMoveHighBA  // 6723
	permuteMoveHighAB  // 2367
	permuteInterleaveL // 0415
	permuteInterleaveH // 2637
	permutePair
)

// PermuteSelector picks, for each destination lane, one of the eight lanes of
// two sources: 0..3 address the first operand, 4..7 the second.
type PermuteSelector struct {
	idx   [4]uint8
	class permuteClass
	blend uint8
}

// NewPermute returns the selector (p0, p1, p2, p3). It panics if an index is
// not in 0..7.
func NewPermute(p0, p1, p2, p3 uint8) PermuteSelector {
	checkPermute(p0, p1, p2, p3)
	p := PermuteSelector{idx: [4]uint8{p0, p1, p2, p3}}

	inPlace := true
	for k, i := range p.idx {
		if int(i&3) != k {
			inPlace = false
		}
		if i > 3 {
			p.blend |= 1 << k
		}
	}

	switch {
	case inPlace && p.blend == 0:
		p.class = permuteA
	case inPlace && p.blend == 0xF:
		p.class = permuteB
	case inPlace:
		p.class = permuteBlend
	case p.idx == [4]uint8{0, 1, 4, 5}:
		p.class = permuteMoveLow
	case p.idx == [4]uint8{6, 7, 2, 3}:
		p.class = permuteMoveHighBA
	case p.idx == [4]uint8{2, 3, 6, 7}:
		p.class = permuteMoveHighAB
	case p.idx == [4]uint8{0, 4, 1, 5}:
		p.class = permuteInterleaveL
	case p.idx == [4]uint8{2, 6, 3, 7}:
		p.class = permuteInterleaveH
	case p0>>2 == p1>>2 && p2>>2 == p3>>2:
		p.class = permutePair
	}
	return p
}

// Indices returns the source lane of each destination lane.
func (p PermuteSelector) Indices() [4]uint8 { return p.idx }

// Apply returns the lanes of (a, b) chosen by p.
func (p PermuteSelector) Apply(a, b Vector) Vector {
	switch p.class {
	case permuteA:
		return a
	case permuteB:
		return b
	case permuteBlend:
		return blendLanes(a, b, p.blend)
	case permuteMoveLow:
		return moveLowHalves(a, b)
	case permuteMoveHighBA:
		return moveHighHalves(a, b)
	case permuteMoveHighAB:
		return moveHighHalves(b, a)
	case permuteInterleaveL:
		return interleaveLow(a, b)
	case permuteInterleaveH:
		return interleaveHigh(a, b)
	case permutePair:
		src := [2]Vector{a, b}
		return shufflePair(src[p.idx[0]>>2], src[p.idx[2]>>2],
			p.idx[0]&3, p.idx[1]&3, p.idx[2]&3, p.idx[3]&3)
	}
	return permute(a, b, p.idx[0], p.idx[1], p.idx[2], p.idx[3])
}

func checkPermute(p0, p1, p2, p3 uint8) {
	if p0 > 7 || p1 > 7 || p2 > 7 || p3 > 7 {
		panic(fmt.Sprintf("vec4: permute index out of range: (%d, %d, %d, %d)", p0, p1, p2, p3))
	}
}

// Permute returns the lanes of (a, b) chosen by indices known only at run
// time. It panics if an index is not in 0..7.
func Permute(a, b Vector, p0, p1, p2, p3 uint8) Vector {
	checkPermute(p0, p1, p2, p3)
	return permute(a, b, p0, p1, p2, p3)
}

// InsertMask selects the lanes Insert copies from its source.
type InsertMask uint8

const (
	InsertW InsertMask = 1 << iota
	InsertZ
	InsertY
	InsertX

	InsertNone InsertMask = 0
	InsertAll             = InsertX | InsertY | InsertZ | InsertW
)

// insertSelectors holds the permute selector for every InsertMask.
var insertSelectors = func() (t [16]PermuteSelector) {
	for m := range 16 {
		var p [4]uint8
		for k := range 4 {
			p[k] = uint8(k)
			if m&(8>>k) != 0 {
				p[k] += 4
			}
		}
		t[m] = NewPermute(p[0], p[1], p[2], p[3])
	}
	return t
}()

// Insert returns dst with the lanes named by mask replaced by the same lanes
// of src.
func Insert(dst, src Vector, mask InsertMask) Vector {
	return insertSelectors[mask&InsertAll].Apply(dst, src)
}

// InsertSelect replaces the lanes of dst whose flag is 1 with the lanes of
// src. Flags must be 0 or 1.
func InsertSelect(dst, src Vector, s0, s1, s2, s3 uint32) Vector {
	return Select(dst, src, SelectControl(s0, s1, s2, s3))
}

// InsertRotated rotates src left by rot lanes, then inserts it like
// InsertSelect.
func InsertRotated(dst, src Vector, rot int, s0, s1, s2, s3 uint32) Vector {
	return Select(dst, RotateLeft(src, rot), SelectControl(s0, s1, s2, s3))
}

// MergeXY returns (a.x, b.x, a.y, b.y).
func MergeXY(a, b Vector) Vector { return interleaveLow(a, b) }

// MergeZW returns (a.z, b.z, a.w, b.w).
func MergeZW(a, b Vector) Vector { return interleaveHigh(a, b) }

func checkShift(n int) {
	if uint(n) > 3 {
		panic(fmt.Sprintf("vec4: shift count %d out of range [0, 3]", n))
	}
}

// ShiftLeft returns lanes n..n+3 of the eight lanes (a, b).
func ShiftLeft(a, b Vector, n int) Vector {
	checkShift(n)
	k := uint8(n)
	return NewPermute(k, k+1, k+2, k+3).Apply(a, b)
}

// RotateLeft returns (v[n], v[n+1], v[n+2], v[n+3]) with indices mod 4.
func RotateLeft(v Vector, n int) Vector {
	checkShift(n)
	k := uint8(n)
	return NewSwizzle(k&3, (k+1)&3, (k+2)&3, (k+3)&3).Apply(v)
}

// RotateRight is RotateLeft by 4-n.
func RotateRight(v Vector, n int) Vector {
	checkShift(n)
	return RotateLeft(v, (4-n)&3)
}
