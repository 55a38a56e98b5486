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
package hwy

import (
	"runtime"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchSSE4, "sse4"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentDispatch(t *testing.T) {
	t.Logf("dispatch: level=%s width=%d sse41=%v fma=%v avx=%v avx2=%v asimd=%v",
		CurrentName(), CurrentWidth(), HasSSE41(), HasFMA(), HasAVX(), HasAVX2(), HasASIMD())

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel().String() = %q", CurrentName(), CurrentLevel().String())
	}
	if w := CurrentWidth(); w != 16 && w != 32 && w != 64 {
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but level is %s", CurrentName())
	}
	switch runtime.GOARCH {
	case "arm64":
		if !HasASIMD() {
			t.Error("arm64 should report ASIMD")
		}
		if HasAVX() || HasAVX2() {
			t.Error("arm64 should not report AVX")
		}
	case "amd64":
		if HasASIMD() {
			t.Error("amd64 should not report ASIMD")
		}
		if HasAVX2() && !HasAVX() {
			t.Error("AVX2 reported without AVX")
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
