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

// The reference model below is plain per-lane Go arithmetic, compiled on
// every build. Tests compare whichever primitive set is active against it.

func refMap(v [4]float32, f func(float32) float32) [4]float32 {
	var r [4]float32
	for i := range v {
		r[i] = f(v[i])
	}
	return r
}

func refMap2(a, b [4]float32, f func(x, y float32) float32) [4]float32 {
	var r [4]float32
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func refMask(a, b [4]float32, f func(x, y float32) bool) [4]uint32 {
	var r [4]uint32
	for i := range a {
		if f(a[i], b[i]) {
			r[i] = 0xFFFFFFFF
		}
	}
	return r
}

func refMin(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

func refMax(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

func ref64(f func(float64) float64) func(float32) float32 {
	return func(x float32) float32 { return float32(f(float64(x))) }
}

// refCross is the 4-D cross product written out lane by lane.
func refCross(a, b, c [4]float32) [4]float32 {
	x, y, z, w := 0, 1, 2, 3
	return [4]float32{
		((b[z]*c[w] - b[w]*c[z]) * a[y]) - ((b[y]*c[w] - b[w]*c[y]) * a[z]) + ((b[y]*c[z] - b[z]*c[y]) * a[w]),
		((b[w]*c[z] - b[z]*c[w]) * a[x]) - ((b[w]*c[x] - b[x]*c[w]) * a[z]) + ((b[z]*c[x] - b[x]*c[z]) * a[w]),
		((b[y]*c[w] - b[w]*c[y]) * a[x]) - ((b[x]*c[w] - b[w]*c[x]) * a[y]) + ((b[x]*c[y] - b[y]*c[x]) * a[w]),
		((b[z]*c[y] - b[y]*c[z]) * a[x]) - ((b[z]*c[x] - b[x]*c[z]) * a[y]) + ((b[y]*c[x] - b[x]*c[y]) * a[z]),
	}
}

func isNaN32(f float32) bool { return f != f }

// sameFloat reports whether two floats have identical bits, treating any two
// NaNs as equal.
func sameFloat(a, b float32) bool {
	if isNaN32(a) || isNaN32(b) {
		return isNaN32(a) && isNaN32(b)
	}
	return math.Float32bits(a) == math.Float32bits(b)
}

// closeFloat reports whether got is within tol of want, relative to
// max(1, |want|). Infinities and NaNs must match exactly.
func closeFloat(got, want float32, tol float64) bool {
	if isNaN32(want) || math.IsInf(float64(want), 0) {
		return sameFloat(got, want)
	}
	if isNaN32(got) {
		return false
	}
	d := math.Abs(float64(got) - float64(want))
	return d <= tol*math.Max(1, math.Abs(float64(want)))
}

func expectFloats(t *testing.T, op string, got Vector, want [4]float32) {
	t.Helper()
	g := got.Floats()
	for i := range 4 {
		if !sameFloat(g[i], want[i]) {
			t.Errorf("%s: lane %d: got %v, want %v", op, i, g[i], want[i])
		}
	}
}

func expectBits(t *testing.T, op string, got Vector, want [4]uint32) {
	t.Helper()
	g := got.UInts()
	for i := range 4 {
		if g[i] != want[i] {
			t.Errorf("%s: lane %d: got %#08x, want %#08x", op, i, g[i], want[i])
		}
	}
}

func expectClose(t *testing.T, op string, got Vector, want [4]float32, tol float64) {
	t.Helper()
	g := got.Floats()
	for i := range 4 {
		if !closeFloat(g[i], want[i], tol) {
			t.Errorf("%s: lane %d: got %v, want %v", op, i, g[i], want[i])
		}
	}
}

var negZero = float32(math.Copysign(0, -1))

var (
	inf32  = float32(math.Inf(1))
	nan32  = float32(math.NaN())
	ninf32 = float32(math.Inf(-1))
)

// samples are ordinary finite inputs; no lane pairs zero with zero except a
// vector with itself.
var samples = [][4]float32{
	{1, 2, 3, 4},
	{-1.5, 0.25, 1e10, -1e-10},
	{0, negZero, 3.5, -2.5},
	{100, -0.5, 0.5, 7},
	{-3, 6.25, -0.125, 1024},
}

// specials mixes infinities and NaN with ordinary values.
var specials = [][4]float32{
	{inf32, ninf32, nan32, 1},
	{nan32, 0, inf32, -1},
}
