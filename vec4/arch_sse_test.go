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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCPU(t *testing.T) {
	assert.True(t, cpuChecked)
	assert.True(t, checkCPU(true, true, true))
	for _, missing := range [][3]bool{
		{false, true, true},
		{true, false, true},
		{true, true, false},
	} {
		assert.PanicsWithValue(t,
			"vec4: archsimd path requires AVX, AVX2 and FMA; rebuild with -tags noasm",
			func() { checkCPU(missing[0], missing[1], missing[2]) })
	}
}
