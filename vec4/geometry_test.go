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

	"github.com/go-highway/vecmath/hwy/workerpool"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c [4]float32
	}{
		{"Axes", [4]float32{1, 0, 0, 0}, [4]float32{0, 1, 0, 0}, [4]float32{0, 0, 1, 0}},
		{"Mixed", [4]float32{1, 2, 3, 4}, [4]float32{-2, 0, 5, 1}, [4]float32{3, -1, 2, 7}},
		{"Dependent", [4]float32{1, 2, 3, 4}, [4]float32{2, 4, 6, 8}, [4]float32{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := FromFloats(tt.a), FromFloats(tt.b), FromFloats(tt.c)
			got := Cross(a, b, c)
			expectFloats(t, "Cross", got, refCross(tt.a, tt.b, tt.c))
			for _, v := range []Vector{a, b, c} {
				if d := GetX(Dot(got, v)); d != 0 {
					t.Errorf("Cross: Dot with input %v is %v, want 0", v, d)
				}
			}
		})
	}
}

func TestLengths(t *testing.T) {
	v := Make(1, 2, 2, 4)
	expectFloats(t, "Length", Length(v), [4]float32{5, 5, 5, 5})
	expectFloats(t, "LengthEst", LengthEst(v), [4]float32{5, 5, 5, 5})
	expectClose(t, "ReciprocalLength", ReciprocalLength(v), [4]float32{0.2, 0.2, 0.2, 0.2}, 1e-7)
	expectClose(t, "ReciprocalLengthEst", ReciprocalLengthEst(v), [4]float32{0.2, 0.2, 0.2, 0.2}, estimateTol)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   [4]float32
		want [4]float32
	}{
		{"Ordinary", [4]float32{3, 0, 4, 0}, [4]float32{0.6, 0, 0.8, 0}},
		{"Negative", [4]float32{0, -2, 0, 0}, [4]float32{0, -1, 0, 0}},
		{"Zero", [4]float32{}, [4]float32{}},
		{"Infinite", [4]float32{inf32, 1, 0, 0}, [4]float32{nan32, nan32, nan32, nan32}},
		{"Overflow", [4]float32{1e30, 1e30, 0, 0}, [4]float32{nan32, nan32, nan32, nan32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectClose(t, "Normalize", Normalize(FromFloats(tt.in)), tt.want, 1e-6)
			expectClose(t, "NormalizeEst", NormalizeEst(FromFloats(tt.in)), tt.want, estimateTol)
		})
	}

	n := Normalize(Make(1, -7, 3.5, 0.25))
	if l := GetX(Length(n)); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("Normalize: length %v, want 1", l)
	}
}

func TestClampLength(t *testing.T) {
	v := Make(3, 4, 0, 0) // length 5
	tests := []struct {
		name     string
		min, max float32
		want     [4]float32
	}{
		{"Shrink", 1, 2, [4]float32{1.2, 1.6, 0, 0}},
		{"Grow", 6, 10, [4]float32{3.6, 4.8, 0, 0}},
		{"Inside", 1, 10, [4]float32{3, 4, 0, 0}},
		{"EqualBounds", 5, 5, [4]float32{3, 4, 0, 0}},
		{"AtMax", 0, 5, [4]float32{3, 4, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectClose(t, "ClampLength", ClampLength(v, tt.min, tt.max), tt.want, 1e-6)
		})
	}

	// A length that crosses neither bound returns v bit for bit.
	expectBits(t, "ClampLength(inside)", ClampLength(v, 1, 10), v.UInts())
	expectBits(t, "ClampLength(tie)", ClampLength(v, 5, 5), v.UInts())

	// A zero vector has no direction; it stays zero even below min.
	expectFloats(t, "ClampLength(zero)", ClampLength(Zero(), 1, 2), [4]float32{})

	expectClose(t, "ClampLengthV", ClampLengthV(v, Replicate(1), Replicate(2)), [4]float32{1.2, 1.6, 0, 0}, 1e-6)
}

func TestClampLengthPanics(t *testing.T) {
	tests := []struct {
		name     string
		min, max Vector
	}{
		{"MinAboveMax", Replicate(3), Replicate(2)},
		{"NegativeMin", Replicate(-1), Replicate(2)},
		{"NegativeMax", Replicate(0), Replicate(-2)},
		{"NonUniform", Make(1, 2, 1, 1), Replicate(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ClampLengthV(%v, %v) did not panic", tt.min, tt.max)
				}
			}()
			ClampLengthV(Make(1, 1, 1, 1), tt.min, tt.max)
		})
	}
}

func TestReflectRefract(t *testing.T) {
	n := UnitY()
	expectFloats(t, "Reflect", Reflect(Make(1, -1, 0, 0), n), [4]float32{1, 1, 0, 0})

	// Index 1 passes the ray straight through.
	i := Make(0, -1, 0, 0)
	expectFloats(t, "Refract(1)", Refract(i, n, 1), i.Floats())

	// Grazing ray into a lower index: total internal reflection.
	expectFloats(t, "Refract(TIR)", Refract(Make(0.8, -0.6, 0, 0), n, 1.5), [4]float32{})

	// Snell's law: sin(out) = k * sin(in).
	in := Normalize(Make(1, -1, 0, 0))
	out := Refract(in, n, 0.5)
	sinIn := math.Abs(float64(GetX(in)))
	sinOut := math.Abs(float64(GetX(out)))
	if math.Abs(sinOut-0.5*sinIn) > 1e-6 {
		t.Errorf("Refract: sin(out) %v, want %v", sinOut, 0.5*sinIn)
	}
	if l := GetX(Length(out)); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("Refract: length %v, want 1", l)
	}

	got := RefractV(in, n, Replicate(0.5))
	expectFloats(t, "RefractV", got, out.Floats())
}

func TestOrthogonalAndAngles(t *testing.T) {
	v := Make(1, 2, 3, 4)
	o := Orthogonal(v)
	expectFloats(t, "Orthogonal", o, [4]float32{3, 4, -1, -2})
	expectFloats(t, "Dot(v, Orthogonal(v))", Dot(v, o), [4]float32{})

	right := [4]float32{math.Pi / 2, math.Pi / 2, math.Pi / 2, math.Pi / 2}
	expectClose(t, "AngleBetweenNormals", AngleBetweenNormals(UnitX(), UnitY()), right, preciseTol)
	expectClose(t, "AngleBetweenNormalsEst", AngleBetweenNormalsEst(UnitX(), UnitY()), right, estimateTol)
	expectClose(t, "AngleBetweenVectors", AngleBetweenVectors(Make(2, 0, 0, 0), Make(0, 3, 0, 0)), right, preciseTol)

	same := AngleBetweenVectors(Make(1, 1, 0, 0), Make(5, 5, 0, 0))
	expectClose(t, "AngleBetweenVectors(parallel)", same, [4]float32{}, 1e-3)
	opposite := AngleBetweenNormals(UnitZ(), NegativeUnitZ())
	expectClose(t, "AngleBetweenNormals(opposite)", opposite,
		[4]float32{math.Pi, math.Pi, math.Pi, math.Pi}, preciseTol)
}

func refFresnel(c, k float64) float64 {
	g := math.Sqrt(math.Abs(k*k - 1 + c*c))
	s, d := g+c, g-c
	a := (c*s - 1) / (c*d + 1)
	return math.Min(1, math.Max(0, 0.5*(d*d)/(s*s)*(1+a*a)))
}

func TestFresnelTerm(t *testing.T) {
	c := Make(1, 0.5, 0.1, 0.9)
	k := Make(1, 1.5, 1.33, 2.4)
	var want [4]float32
	for i := range 4 {
		want[i] = float32(refFresnel(float64(c.Floats()[i]), float64(k.Floats()[i])))
	}
	expectClose(t, "FresnelTerm", FresnelTerm(c, k), want, 1e-5)
	if got := GetX(FresnelTerm(c, k)); got != 0 {
		t.Errorf("FresnelTerm(1, 1): got %v, want 0", got)
	}
}

func TestInterpolation(t *testing.T) {
	p0 := Make(0, 1, 2, 3)
	p1 := Make(4, 5, 6, 7)
	p2 := Make(-1, 0, 8, 2)
	p3 := Make(2, 2, 2, 2)

	expectFloats(t, "Lerp(0)", Lerp(p0, p1, 0), p0.Floats())
	expectFloats(t, "Lerp(1)", Lerp(p0, p1, 1), p1.Floats())
	expectFloats(t, "Lerp(0.5)", Lerp(p0, p1, 0.5), [4]float32{2, 3, 4, 5})
	expectFloats(t, "LerpV", LerpV(p0, p1, Make(0, 0.25, 0.5, 1)), [4]float32{0, 2, 4, 7})

	expectClose(t, "Hermite(0)", Hermite(p0, p2, p1, p3, 0), p0.Floats(), 1e-6)
	expectClose(t, "Hermite(1)", Hermite(p0, p2, p1, p3, 1), p1.Floats(), 1e-6)
	expectClose(t, "CatmullRom(0)", CatmullRom(p0, p1, p2, p3, 0), p1.Floats(), 1e-6)
	expectClose(t, "CatmullRom(1)", CatmullRom(p0, p1, p2, p3, 1), p2.Floats(), 1e-6)

	for _, tv := range []float32{0, 0.2, 0.5, 0.9, 1} {
		expectClose(t, "HermiteV", HermiteV(p0, p2, p1, p3, Replicate(tv)),
			Hermite(p0, p2, p1, p3, tv).Floats(), 1e-5)
		expectClose(t, "CatmullRomV", CatmullRomV(p0, p1, p2, p3, Replicate(tv)),
			CatmullRom(p0, p1, p2, p3, tv).Floats(), 1e-5)
	}

	expectFloats(t, "Barycentric(0, 0)", Barycentric(p0, p1, p2, 0, 0), p0.Floats())
	expectFloats(t, "Barycentric(1, 0)", Barycentric(p0, p1, p2, 1, 0), p1.Floats())
	expectFloats(t, "Barycentric(0, 1)", Barycentric(p0, p1, p2, 0, 1), p2.Floats())
	expectFloats(t, "BarycentricV", BarycentricV(p0, p1, p2, Make(1, 0, 0, 1), Make(0, 1, 0, 0)),
		[4]float32{4, 0, 2, 7})
}

func TestMatrix(t *testing.T) {
	v := Make(1, -2, 3, 0.5)
	expectFloats(t, "Transform(Identity)", Transform(v, Identity()), v.Floats())

	m := Matrix{
		Make(1, 2, 3, 4),
		Make(5, 6, 7, 8),
		Make(9, 10, 11, 12),
		Make(13, 14, 15, 16),
	}
	var want [4]float32
	for c := range 4 {
		for r := range 4 {
			want[c] += v.Floats()[r] * m[r].Floats()[c]
		}
	}
	expectFloats(t, "Transform", Transform(v, m), want)

	tr := Transpose(m)
	for r := range 4 {
		for c := range 4 {
			if got, w := GetByIndex(tr[r], c), GetByIndex(m[c], r); got != w {
				t.Errorf("Transpose: [%d][%d]: got %v, want %v", r, c, got, w)
			}
		}
	}

	vs := []Vector{UnitX(), UnitY()}
	TransformSlice(vs, m)
	expectFloats(t, "TransformSlice[0]", vs[0], m[0].Floats())
	expectFloats(t, "TransformSlice[1]", vs[1], m[1].Floats())
}

func TestTransformSliceParallel(t *testing.T) {
	m := Matrix{Make(0, 1, 0, 0), Make(-1, 0, 0, 0), Make(0, 0, 2, 0), Make(3, 4, 5, 1)}
	vs := make([]Vector, 3000)
	for i := range vs {
		vs[i] = Make(float32(i), float32(-i), 1, 1)
	}
	want := make([]Vector, len(vs))
	copy(want, vs)
	TransformSlice(want, m)

	pool := workerpool.New(4)
	defer pool.Close()
	for name, p := range map[string]*workerpool.Pool{"pool": pool, "nil": nil} {
		got := make([]Vector, len(vs))
		copy(got, vs)
		TransformSliceParallel(p, got, m)
		for i := range got {
			if got[i].UInts() != want[i].UInts() {
				t.Fatalf("%s: element %d: got %v, want %v", name, i, got[i].Floats(), want[i].Floats())
			}
		}
	}
}
