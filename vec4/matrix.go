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

import "github.com/go-highway/vecmath/hwy/workerpool"

// Matrix is a 4x4 matrix stored as four row vectors. A Vector is treated as a
// row vector multiplied from the left.
type Matrix [4]Vector

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{vUnitX, vUnitY, vUnitZ, vUnitW}
}

// Transform returns v.x*m[0] + v.y*m[1] + v.z*m[2] + v.w*m[3].
func Transform(v Vector, m Matrix) Vector {
	r := Multiply(SplatX(v), m[0])
	r = MultiplyAdd(SplatY(v), m[1], r)
	r = MultiplyAdd(SplatZ(v), m[2], r)
	return MultiplyAdd(SplatW(v), m[3], r)
}

// Transpose returns the transpose of m.
func Transpose(m Matrix) Matrix {
	p0 := MergeXY(m[0], m[2]) // x0 x2 y0 y2
	p1 := MergeXY(m[1], m[3]) // x1 x3 y1 y3
	p2 := MergeZW(m[0], m[2]) // z0 z2 w0 w2
	p3 := MergeZW(m[1], m[3]) // z1 z3 w1 w3
	return Matrix{
		MergeXY(p0, p1),
		MergeZW(p0, p1),
		MergeXY(p2, p3),
		MergeZW(p2, p3),
	}
}

// TransformSlice applies Transform to every element of vs in place.
func TransformSlice(vs []Vector, m Matrix) {
	for i, v := range vs {
		vs[i] = Transform(v, m)
	}
}

// transformGrain is the smallest run of vectors handed to one worker.
const transformGrain = 256

// TransformSliceParallel is TransformSlice with vs split across the workers
// of p. A nil pool transforms on the calling goroutine.
func TransformSliceParallel(p *workerpool.Pool, vs []Vector, m Matrix) {
	p.ParallelFor(len(vs), transformGrain, func(start, end int) {
		TransformSlice(vs[start:end], m)
	})
}
