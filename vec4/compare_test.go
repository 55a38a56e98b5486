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
	"math"
	"testing"
)

func TestCompareMasks(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Vector) Vector
		ref  func(x, y float32) bool
	}{
		{"CompareEqual", CompareEqual, func(x, y float32) bool { return x == y }},
		{"CompareNotEqual", CompareNotEqual, func(x, y float32) bool { return x != y }},
		{"CompareGreater", CompareGreater, func(x, y float32) bool { return x > y }},
		{"CompareGreaterEqual", CompareGreaterEqual, func(x, y float32) bool { return x >= y }},
		{"CompareLess", CompareLess, func(x, y float32) bool { return x < y }},
		{"CompareLessEqual", CompareLessEqual, func(x, y float32) bool { return x <= y }},
		{"CompareEqualUInt", CompareEqualUInt, func(x, y float32) bool {
			return math.Float32bits(x) == math.Float32bits(y)
		}},
		{"CompareNotEqualUInt", CompareNotEqualUInt, func(x, y float32) bool {
			return math.Float32bits(x) != math.Float32bits(y)
		}},
	}
	inputs := append(append([][4]float32{}, samples...), specials...)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range inputs {
				for _, b := range inputs {
					expectBits(t, tt.name, tt.op(FromFloats(a), FromFloats(b)), refMask(a, b, tt.ref))
				}
			}
		})
	}
}

func TestCompareSpecial(t *testing.T) {
	v := Make(nan32, inf32, ninf32, 1)
	expectBits(t, "CompareIsNaN", CompareIsNaN(v), [4]uint32{0xFFFFFFFF, 0, 0, 0})
	expectBits(t, "CompareIsInfinite", CompareIsInfinite(v), [4]uint32{0, 0xFFFFFFFF, 0xFFFFFFFF, 0})
	if !IsNaN(v) || IsNaN(Make(1, 2, 3, inf32)) {
		t.Error("IsNaN: wrong aggregate")
	}
	if !IsInfinite(v) || IsInfinite(Make(1, 2, 3, nan32)) {
		t.Error("IsInfinite: wrong aggregate")
	}

	got := CompareEqualEps(Make(1, 1, 1, nan32), Make(1.05, 1.2, 0.95, nan32), Replicate(0.1))
	expectBits(t, "CompareEqualEps", got, [4]uint32{0xFFFFFFFF, 0, 0xFFFFFFFF, 0})

	got = CompareInBounds(Make(-1, 1, 2, -2.5), Make(1, 1, 1, 2))
	expectBits(t, "CompareInBounds", got, [4]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0, 0})
}

func TestAggregates(t *testing.T) {
	const on = 0xFFFFFFFF
	tests := []struct {
		mask                      Vector
		any, anyFalse, all, none bool
	}{
		{MakeUInt(0, 0, 0, 0), false, true, false, true},
		{MakeUInt(on, 0, 0, 0), true, true, false, false},
		{MakeUInt(0, 0, 0, 1), true, true, false, false},
		{MakeUInt(on, on, on, on), true, false, true, false},
		{MakeUInt(1, 2, 3, 0x80000000), true, false, true, false},
	}
	for i, tt := range tests {
		if got := AnyTrue(tt.mask); got != tt.any {
			t.Errorf("AnyTrue case %d: got %v, want %v", i, got, tt.any)
		}
		if got := AnyFalse(tt.mask); got != tt.anyFalse {
			t.Errorf("AnyFalse case %d: got %v, want %v", i, got, tt.anyFalse)
		}
		if got := AllTrue(tt.mask); got != tt.all {
			t.Errorf("AllTrue case %d: got %v, want %v", i, got, tt.all)
		}
		if got := AllFalse(tt.mask); got != tt.none {
			t.Errorf("AllFalse case %d: got %v, want %v", i, got, tt.none)
		}
	}
}

func TestBooleanComparisons(t *testing.T) {
	a := Make(1, 2, 3, 4)
	b := Make(1, 2, 3, 5)
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsEqual(a, a)", IsEqual(a, a), true},
		{"IsEqual(a, b)", IsEqual(a, b), false},
		{"IsNotEqual(a, b)", IsNotEqual(a, b), true},
		{"IsNotEqual(a, a)", IsNotEqual(a, a), false},
		{"IsGreater(b+1, a)", IsGreater(Add(b, One()), a), true},
		{"IsGreater(b, a)", IsGreater(b, a), false},
		{"IsGreaterEqual(b, a)", IsGreaterEqual(b, a), true},
		{"IsLess(a, b)", IsLess(a, b), false},
		{"IsLessEqual(a, b)", IsLessEqual(a, b), true},
		{"IsEqualEps", IsEqualEps(a, b, Replicate(1)), true},
		{"InBounds", InBounds(a, Replicate(4)), true},
		{"InBounds(b)", InBounds(b, Replicate(4)), false},
		{"IsEqualUInt(0, -0)", IsEqualUInt(Zero(), Replicate(negZero)), false},
		{"IsEqual(0, -0)", IsEqual(Zero(), Replicate(negZero)), true},
		{"IsNotEqualUInt", IsNotEqualUInt(a, b), true},
		{"IsEqual(NaN, NaN)", IsEqual(NaN(), NaN()), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSelectControl(t *testing.T) {
	got := SelectControl(1, 0, 0, 1)
	expectBits(t, "SelectControl", got, [4]uint32{0xFFFFFFFF, 0, 0, 0xFFFFFFFF})

	r := Select(Make(1, 2, 3, 4), Make(5, 6, 7, 8), got)
	expectFloats(t, "Select", r, [4]float32{5, 2, 3, 8})

	defer func() {
		if recover() == nil {
			t.Error("SelectControl(2, ...) did not panic")
		}
	}()
	SelectControl(2, 0, 0, 0)
}
