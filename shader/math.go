// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "math"

// vec3 is an RGB triple in the working [0,1] range.
type vec3 [3]float64

func (a vec3) add(s float64) vec3   { return vec3{a[0] + s, a[1] + s, a[2] + s} }
func (a vec3) scale(s float64) vec3 { return vec3{a[0] * s, a[1] * s, a[2] * s} }
func (a vec3) mul(b vec3) vec3      { return vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }

func (a vec3) mix(b vec3, t float64) vec3 {
	return vec3{mix(a[0], b[0], t), mix(a[1], b[1], t), mix(a[2], b[2], t)}
}

func (a vec3) clamp01() vec3 {
	return vec3{clamp(a[0], 0, 1), clamp(a[1], 0, 1), clamp(a[2], 0, 1)}
}

func fract(x float64) float64 { return x - math.Floor(x) }

func mix(a, b, t float64) float64 { return a + (b-a)*t }

func clamp(x, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, x)) }

// smoothstep is the Hermite step. A reversed edge pair (e0 > e1) yields the
// falling curve.
func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func luma(r, g, b float64) float64 { return 0.299*r + 0.587*g + 0.114*b }
