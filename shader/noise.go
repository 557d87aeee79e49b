// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "math"

// Hash returns a pseudo-random value in [0,1) for a 2-D coordinate. It is a
// pure function: the same coordinate always yields the same bits, so the
// inclusion field needs no random generator and frames replay exactly.
func Hash(p [2]float64) float64 {
	x := fract(p[0] * 123.34)
	y := fract(p[1] * 345.45)
	d := x*(x+34.345) + y*(y+34.345)
	x += d
	y += d
	return fract(x * y)
}

// blueNoise is the per-pixel dither term, a classic sine hash over the
// pixel position.
func blueNoise(u, v float64, res [2]float64) float64 {
	return fract(math.Sin(u*res[0]*12.9898+v*res[1]*78.233) * 43758.5453)
}
