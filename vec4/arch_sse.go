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

//go:build amd64 && goexperiment.simd && !noasm

package vec4

import "github.com/go-highway/vecmath/hwy"

// cpuChecked is the first variable initialized in the package, so the
// feature check runs before any archsimd constant is built.
var cpuChecked = checkCPU(hwy.HasAVX(), hwy.HasAVX2(), hwy.HasFMA())

// checkCPU panics unless the VEX encodings and broadcasts emitted by the
// archsimd path are available.
func checkCPU(avx, avx2, fma bool) bool {
	if !avx || !avx2 || !fma {
		panic("vec4: archsimd path requires AVX, AVX2 and FMA; rebuild with -tags noasm")
	}
	return true
}
