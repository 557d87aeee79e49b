// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"math"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	for x := -5.0; x < 5; x++ {
		for y := -5.0; y < 5; y++ {
			p := [2]float64{x + 13.17, y + 91.7}
			a, b := Hash(p), Hash(p)
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("Hash(%v) not reproducible: %v vs %v", p, a, b)
			}
		}
	}
}

func TestHashRange(t *testing.T) {
	for x := 0.0; x < 64; x++ {
		for y := 0.0; y < 64; y++ {
			h := Hash([2]float64{x, y})
			if h < 0 || h >= 1 {
				t.Fatalf("Hash(%v, %v) = %v, want [0,1)", x, y, h)
			}
		}
	}
}

func TestHashSpread(t *testing.T) {
	// The appearance gate keeps cells whose hash exceeds 0.88; some cells
	// must pass and most must not.
	pass := 0
	const n = 40
	for x := 0.0; x < n; x++ {
		for y := 0.0; y < n; y++ {
			if Hash([2]float64{x + 91.7, y + 91.7}) >= 0.88 {
				pass++
			}
		}
	}
	if pass == 0 || pass > n*n/2 {
		t.Errorf("%d of %d cells pass the 0.88 gate", pass, n*n)
	}
}

func TestSmoothstepReversed(t *testing.T) {
	if got := smoothstep(1, 0.15, 0); got != 1 {
		t.Errorf("smoothstep(1, 0.15, 0) = %v, want 1", got)
	}
	if got := smoothstep(1, 0.15, 1); got != 0 {
		t.Errorf("smoothstep(1, 0.15, 1) = %v, want 0", got)
	}
	if got := smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("smoothstep(0, 1, 0.5) = %v, want 0.5", got)
	}
}
