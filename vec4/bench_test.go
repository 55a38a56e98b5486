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
	"testing"

	"github.com/go-highway/vecmath/hwy/workerpool"
)

var sink Vector

func BenchmarkSinCos(b *testing.B) {
	v := Make(0.1, 1.2, -2.3, 3.4)
	for b.Loop() {
		s, c := SinCos(v)
		sink = Add(s, c)
	}
}

func BenchmarkExp2(b *testing.B) {
	v := Make(-3.5, 0.25, 7.75, 20)
	for b.Loop() {
		sink = Exp2(v)
	}
}

func BenchmarkLog2(b *testing.B) {
	v := Make(0.001, 1.5, 300, 1e20)
	for b.Loop() {
		sink = Log2(v)
	}
}

func BenchmarkNormalize(b *testing.B) {
	v := Make(3, -4, 12, 0.5)
	for b.Loop() {
		sink = Normalize(v)
	}
}

func BenchmarkCross(b *testing.B) {
	v1, v2, v3 := Make(1, 2, 3, 4), Make(-1, 0.5, 2, 1), Make(0, 3, -2, 5)
	for b.Loop() {
		sink = Cross(v1, v2, v3)
	}
}

func BenchmarkTransform(b *testing.B) {
	m := Matrix{Make(1, 2, 3, 4), Make(5, 6, 7, 8), Make(9, 10, 11, 12), Make(13, 14, 15, 16)}
	vs := make([]Vector, 1024)
	for i := range vs {
		vs[i] = Replicate(float32(i))
	}
	b.SetBytes(int64(len(vs) * 16))
	for b.Loop() {
		TransformSlice(vs, m)
	}
}

func BenchmarkTransformParallel(b *testing.B) {
	m := Matrix{Make(1, 2, 3, 4), Make(5, 6, 7, 8), Make(9, 10, 11, 12), Make(13, 14, 15, 16)}
	vs := make([]Vector, 1<<16)
	for i := range vs {
		vs[i] = Replicate(float32(i))
	}
	pool := workerpool.New(0)
	defer pool.Close()
	b.SetBytes(int64(len(vs) * 16))
	for b.Loop() {
		TransformSliceParallel(pool, vs, m)
	}
}

func BenchmarkSwizzle(b *testing.B) {
	v := Make(1, 2, 3, 4)
	b.Run("Selector", func(b *testing.B) {
		for b.Loop() {
			v = SwizzleWZYX.Apply(v)
		}
		sink = v
	})
	b.Run("Dynamic", func(b *testing.B) {
		for b.Loop() {
			v = Swizzle(v, 3, 2, 1, 0)
		}
		sink = v
	})
	b.Run("DupLow", func(b *testing.B) {
		for b.Loop() {
			v = SwizzleXYXY.Apply(v)
		}
		sink = v
	})
}

func BenchmarkPermute(b *testing.B) {
	a, c := Make(1, 2, 3, 4), Make(5, 6, 7, 8)
	p := NewPermute(0, 5, 2, 7)
	for b.Loop() {
		sink = p.Apply(a, c)
	}
}
