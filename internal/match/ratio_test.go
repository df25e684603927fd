// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package match

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"Avatar", "avatar", 100},
		{"Avater", "Avatar", 83},
		{"kitten", "sitting", 57},
		{"", "", 100},
		{"abc", "", 0},
		{"Amélie", "amelie", 83},
		{"avengers", "The Avengers", 67},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Ratio(tt.b, tt.a); got != tt.want {
				t.Errorf("Ratio(%q, %q) not symmetric: %d", tt.b, tt.a, got)
			}
		})
	}
}

func TestSequenceRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want float64
	}{
		{"abcd", "bcde", 0.75},
		{"Dark Night", "The Dark Knight", 0.8},
		{"same", "SAME", 1},
		{"", "", 1},
		{"abc", "", 0},
		{"abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			if got := SequenceRatio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SequenceRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
