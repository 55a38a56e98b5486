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
	"math"
	"testing"
)

func TestBitIsNaN32(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want bool
	}{
		{"zero", 0x00000000, false},
		{"neg_zero", 0x80000000, false},
		{"one", 0x3F800000, false},
		{"inf", 0x7F800000, false},
		{"neg_inf", 0xFF800000, false},
		{"max_finite", 0x7F7FFFFF, false},
		{"qnan", 0x7FC00000, true},
		{"neg_qnan", 0xFFC00000, true},
		{"snan_min", 0x7F800001, true},
		{"nan_max", 0x7FFFFFFF, true},
		{"neg_nan_max", 0xFFFFFFFF, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitIsNaN32(tt.bits); got != tt.want {
				t.Errorf("BitIsNaN32(0x%08X) = %v, want %v", tt.bits, got, tt.want)
			}
		})
	}
}

func TestByteSwap32(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0x11223344, 0x44332211},
		{0x000000FF, 0xFF000000},
		{0x3F800000, 0x0000803F},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ByteSwap32(tt.in); got != tt.want {
			t.Errorf("ByteSwap32(0x%08X) = 0x%08X, want 0x%08X", tt.in, got, tt.want)
		}
	}
}

func TestRoundToNearest32(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{-0.5, float32(math.Copysign(0, -1))},
		{-1.5, -2},
		{-2.5, -2},
		{3.7, 4},
		{-3.2, -3},
		{8388608.0, 8388608.0},
		{1e20, 1e20},
	}
	for _, tt := range tests {
		got := RoundToNearest32(tt.in)
		if math.Float32bits(got) != math.Float32bits(tt.want) {
			t.Errorf("RoundToNearest32(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := RoundToNearest32(float32(math.Inf(1))); !math.IsInf(float64(got), 1) {
		t.Errorf("RoundToNearest32(+Inf) = %v, want +Inf", got)
	}
}

func TestRoundToNearest32QuietsNaN(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0x7F800001, 0x7FC00001},
		{0xFF800123, 0xFFC00123},
		{0x7FC00000, 0x7FC00000},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		got := math.Float32bits(RoundToNearest32(math.Float32frombits(tt.in)))
		if got != tt.want {
			t.Errorf("RoundToNearest32(0x%08X) = 0x%08X, want 0x%08X", tt.in, got, tt.want)
		}
	}
}
