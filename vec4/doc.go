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

// Package vec4 implements a four-lane float32 vector type and the math
// kernels built on it: arithmetic, comparison masks, lane permutation,
// transcendentals, geometry and packed load/store.
//
// A Vector is a 16-byte value. With GOEXPERIMENT=simd on amd64 it wraps an
// archsimd.Float32x4 and the primitives map to SSE/FMA instructions;
// everywhere else (or with -tags noasm) a portable scalar implementation is
// used. Both implementations expose the same functions, and everything above
// the primitive layer is shared, so results agree between them: bit-exact for
// bitwise, permute and compare operations and to within rounding for
// arithmetic.
//
// Masks are Vectors whose lanes are either all ones or all zeros. They feed
// Select and the MaskXxxUInt operations and are reduced with AnyTrue,
// AllTrue and friends.
//
// Example:
//
//	v := vec4.Make(1, 2, 3, 4)
//	n := vec4.Normalize(v)
//	s, c := vec4.SinCos(vec4.Replicate(0.5))
//	w := vec4.SwizzleWZYX.Apply(v)
package vec4

import (
	"log/slog"

	"github.com/go-highway/vecmath/hwy"
)

//go:generate go run ../cmd/vecgen -output selectors_gen.go

// PathName returns "archsimd" when the hardware path is compiled in and
// "scalar" otherwise.
func PathName() string {
	if HardwarePath {
		return "archsimd"
	}
	return "scalar"
}

// ReportDispatch logs which implementation vec4 was built with through the
// hwy logger.
func ReportDispatch() {
	hwy.Logger().Info("vec4 dispatch",
		slog.String("path", PathName()),
		slog.String("level", hwy.CurrentName()))
}
