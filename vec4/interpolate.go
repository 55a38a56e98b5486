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

// Lerp returns a + t*(b-a).
func Lerp(a, b Vector, t float32) Vector {
	return LerpV(a, b, Replicate(t))
}

// LerpV is Lerp with a per-lane t.
func LerpV(a, b, t Vector) Vector {
	return MultiplyAdd(Subtract(b, a), t, a)
}

// Hermite returns the cubic Hermite spline through position p0 with tangent
// t0 and position p1 with tangent t1, evaluated at t.
func Hermite(p0, t0, p1, t1 Vector, t float32) Vector {
	t2 := t * t
	t3 := t * t2
	w0 := Replicate(2*t3 - 3*t2 + 1)
	w1 := Replicate(t3 - 2*t2 + t)
	w2 := Replicate(-2*t3 + 3*t2)
	w3 := Replicate(t3 - t2)
	return hermite(p0, t0, p1, t1, w0, w1, w2, w3)
}

// HermiteV is Hermite with a per-lane t.
func HermiteV(p0, t0, p1, t1, t Vector) Vector {
	t2 := Multiply(t, t)
	t3 := Multiply(t, t2)

	// 2t³ - 3t² + 1
	w0 := Add(Add(t3, t3), NegativeMultiplySubtract(Replicate(3), t2, vOne))
	// t³ - 2t² + t
	w1 := Add(NegativeMultiplySubtract(vTwo, t2, t3), t)
	// -2t³ + 3t²
	w2 := NegativeMultiplySubtract(vTwo, t3, Multiply(Replicate(3), t2))
	// t³ - t²
	w3 := Subtract(t3, t2)
	return hermite(p0, t0, p1, t1, w0, w1, w2, w3)
}

func hermite(p0, t0, p1, t1, w0, w1, w2, w3 Vector) Vector {
	r := Multiply(w0, p0)
	r = MultiplyAdd(w1, t0, r)
	r = MultiplyAdd(w2, p1, r)
	return MultiplyAdd(w3, t1, r)
}

// CatmullRom returns the Catmull-Rom spline through p1 and p2 (with p0 and p3
// as the outer control points), evaluated at t. t=0 gives p1, t=1 gives p2.
func CatmullRom(p0, p1, p2, p3 Vector, t float32) Vector {
	t2 := t * t
	t3 := t * t2
	w0 := Replicate((-t3 + 2*t2 - t) * 0.5)
	w1 := Replicate((3*t3 - 5*t2 + 2) * 0.5)
	w2 := Replicate((-3*t3 + 4*t2 + t) * 0.5)
	w3 := Replicate((t3 - t2) * 0.5)
	return hermite(p0, p1, p2, p3, w0, w1, w2, w3)
}

// CatmullRomV is CatmullRom with a per-lane t.
func CatmullRomV(p0, p1, p2, p3, t Vector) Vector {
	t2 := Multiply(t, t)
	t3 := Multiply(t, t2)
	three, four, five := Replicate(3), Replicate(4), Replicate(5)

	w0 := Subtract(NegativeMultiplySubtract(vOne, t3, Multiply(vTwo, t2)), t)
	w1 := Add(NegativeMultiplySubtract(five, t2, Multiply(three, t3)), vTwo)
	w2 := Add(NegativeMultiplySubtract(three, t3, Multiply(four, t2)), t)
	w3 := Subtract(t3, t2)
	r := hermite(p0, p1, p2, p3, w0, w1, w2, w3)
	return Multiply(r, vHalf)
}

// Barycentric returns p0 + f*(p1-p0) + g*(p2-p0).
func Barycentric(p0, p1, p2 Vector, f, g float32) Vector {
	return BarycentricV(p0, p1, p2, Replicate(f), Replicate(g))
}

// BarycentricV is Barycentric with per-lane weights.
func BarycentricV(p0, p1, p2, f, g Vector) Vector {
	r := MultiplyAdd(Subtract(p1, p0), f, p0)
	return MultiplyAdd(Subtract(p2, p0), g, r)
}
