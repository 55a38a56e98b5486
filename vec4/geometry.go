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

// Geometry operations treat a Vector as a 4-component vector. Results that
// are scalars (lengths, dot products, angles) are broadcast to all lanes.

// Cross returns the 4-D cross product of v1, v2 and v3: the vector
// orthogonal to all three.
func Cross(v1, v2, v3 Vector) Vector {
	// Cofactor expansion along v1; each block is one 2x2 minor of (v2, v3).
	t3 := SwizzleWZWY.Apply(v3)
	result := Multiply(SwizzleZWYZ.Apply(v2), t3)
	t2 := SwizzleWZWY.Apply(v2)
	t3 = SwizzleYXWY.Apply(t3)
	result = Subtract(result, Multiply(t2, t3))
	result = Multiply(result, SwizzleYXXX.Apply(v1))

	t2 = SwizzleYWXZ.Apply(v2)
	t3 = Multiply(SwizzleWXWX.Apply(v3), t2)
	t2 = SwizzleYZYZ.Apply(t2)
	t2 = Multiply(t2, SwizzleYWXZ.Apply(v3))
	t3 = Subtract(t3, t2)
	result = Subtract(result, Multiply(SwizzleZZYY.Apply(v1), t3))

	t2 = SwizzleYZXY.Apply(v2)
	t3 = Multiply(SwizzleZXYX.Apply(v3), t2)
	t2 = SwizzleYZXZ.Apply(t2)
	t1 := Multiply(SwizzleYZXY.Apply(v3), t2)
	t3 = Subtract(t3, t1)
	return Add(result, Multiply(t3, SwizzleWWWZ.Apply(v1)))
}

// LengthSquared returns Dot(v, v).
func LengthSquared(v Vector) Vector { return Dot(v, v) }

// Length returns the Euclidean length of v.
func Length(v Vector) Vector { return Sqrt(LengthSquared(v)) }

// LengthEst is Length through SqrtEst.
func LengthEst(v Vector) Vector { return SqrtEst(LengthSquared(v)) }

// ReciprocalLength returns 1 / Length(v).
func ReciprocalLength(v Vector) Vector { return ReciprocalSqrt(LengthSquared(v)) }

// ReciprocalLengthEst is ReciprocalLength through ReciprocalSqrtEst.
func ReciprocalLengthEst(v Vector) Vector { return ReciprocalSqrtEst(LengthSquared(v)) }

// Normalize returns v scaled to unit length. A zero vector stays zero and a
// vector of infinite length gives NaN in every lane.
func Normalize(v Vector) Vector {
	lsq := LengthSquared(v)
	length := Sqrt(lsq)
	r := MaskAndUInt(Divide(v, length), CompareNotEqual(length, vZero))
	return Select(vQNaN, r, CompareNotEqual(lsq, vInfinity))
}

// NormalizeEst is Normalize through ReciprocalSqrtEst, with the same zero and
// infinity handling.
func NormalizeEst(v Vector) Vector {
	lsq := LengthSquared(v)
	r := MaskAndUInt(Multiply(v, ReciprocalSqrtEst(lsq)), CompareNotEqual(lsq, vZero))
	return Select(vQNaN, r, CompareNotEqual(lsq, vInfinity))
}

// ClampLength returns v rescaled so its length lies in [min, max]. It panics
// if min is negative or greater than max.
func ClampLength(v Vector, min, max float32) Vector {
	return ClampLengthV(v, Replicate(min), Replicate(max))
}

// ClampLengthV is ClampLength with the bounds given as vectors; every lane of
// min and of max must hold the same value.
func ClampLengthV(v, min, max Vector) Vector {
	lo, hi := GetX(min), GetX(max)
	if !IsEqual(min, Replicate(lo)) || !IsEqual(max, Replicate(hi)) {
		panic(fmt.Sprintf("vec4: ClampLength bounds must be uniform, got min %v max %v", min, max))
	}
	if !(lo >= 0 && hi >= 0 && lo <= hi) {
		panic(fmt.Sprintf("vec4: ClampLength bounds out of order: min %g max %g", lo, hi))
	}

	lsq := LengthSquared(v)
	rcp := ReciprocalSqrt(lsq)
	infinite := CompareEqualUInt(lsq, vInfinity)
	zero := CompareEqual(lsq, vZero)

	normal := Multiply(v, rcp)
	length := Multiply(lsq, rcp)

	// Zero and infinite lengths keep lsq itself as both length and normal.
	ordinary := CompareEqualUInt(infinite, zero)
	length = Select(lsq, length, ordinary)
	normal = Select(lsq, normal, ordinary)

	overMax := CompareGreater(length, max)
	underMin := CompareLess(length, min)
	clamp := Select(length, max, overMax)
	clamp = Select(clamp, min, underMin)

	result := Multiply(normal, clamp)
	// Lanes where neither bound was crossed (the masks agree) return v.
	return Select(result, v, CompareEqualUInt(overMax, underMin))
}

// Reflect returns the reflection of incident about normal:
// incident - 2*Dot(incident, normal)*normal.
func Reflect(incident, normal Vector) Vector {
	d := Dot(incident, normal)
	return NegativeMultiplySubtract(Add(d, d), normal, incident)
}

// Refract returns the refraction of incident through a surface with the given
// normal and ratio of refraction indices. Lanes of total internal reflection
// are zero.
func Refract(incident, normal Vector, refractionIndex float32) Vector {
	return RefractV(incident, normal, Replicate(refractionIndex))
}

// RefractV is Refract with a per-lane refraction index.
func RefractV(incident, normal, refractionIndex Vector) Vector {
	k := refractionIndex
	d := Dot(incident, normal)
	r := NegativeMultiplySubtract(d, d, vOne)
	r = NegativeMultiplySubtract(Multiply(k, k), r, vOne)
	valid := CompareGreater(r, vZero)

	r = MultiplyAdd(k, d, Sqrt(r))
	result := Subtract(Multiply(k, incident), Multiply(r, normal))
	return MaskAndUInt(result, valid)
}

// Orthogonal returns (z, w, -x, -y), a vector orthogonal to v.
func Orthogonal(v Vector) Vector {
	return Multiply(SwizzleZWXY.Apply(v), Make(1, 1, -1, -1))
}

// AngleBetweenNormals returns the angle between two unit vectors.
func AngleBetweenNormals(n1, n2 Vector) Vector {
	return ACos(Clamp(Dot(n1, n2), vNegOne, vOne))
}

// AngleBetweenNormalsEst is AngleBetweenNormals through ACosEst.
func AngleBetweenNormalsEst(n1, n2 Vector) Vector {
	return ACosEst(Clamp(Dot(n1, n2), vNegOne, vOne))
}

// AngleBetweenVectors returns the angle between two vectors of any non-zero
// length.
func AngleBetweenVectors(v1, v2 Vector) Vector {
	l := Multiply(ReciprocalLength(v1), ReciprocalLength(v2))
	return ACos(Clamp(Multiply(Dot(v1, v2), l), vNegOne, vOne))
}

// FresnelTerm returns the Fresnel reflectance for unpolarized light per lane,
// given the cosine of the incident angle and the refraction index, clamped
// to [0, 1].
func FresnelTerm(cosIncident, refractionIndex Vector) Vector {
	c, k := cosIncident, refractionIndex
	g := MultiplyAdd(k, k, vNegOne)
	g = MultiplyAdd(c, c, g)
	g = Sqrt(Abs(g))

	s := Add(g, c)
	d := Subtract(g, c)

	v0 := Multiply(Multiply(vHalf, Multiply(d, d)), Reciprocal(Multiply(s, s)))

	v2 := MultiplyAdd(c, s, vNegOne)
	v3 := MultiplyAdd(c, d, vOne)
	v2 = Multiply(v2, v2)
	v3 = Reciprocal(Multiply(v3, v3))
	v2 = MultiplyAdd(v2, v3, vOne)
	return Saturate(Multiply(v2, v0))
}
