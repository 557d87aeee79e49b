// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"math"

	"github.com/gogpu/gemstone/asset"
)

// DefaultFit is the fraction of the output edge covered by the textured quad.
const DefaultFit = 1 / 1.1

// Program constants.
const (
	alphaCutoff  = 0.001
	maxTint      = 0.35
	edgeGain     = 0.75
	dispersion   = 0.003
	contrastGain = 0.8
	hazeGain     = 0.35
	hazeMix      = 0.28
	glintGain    = 0.12
	ditherGain   = 0.003
)

var yellow = vec3{1, 0.94, 0.55}

// Uniforms are the per-frame inputs shared by every pixel.
type Uniforms struct {
	ColorGrade   float64
	CutQuality   float64
	ClarityGrade float64
	Time         float64 // seconds since the first frame

	Texel      [2]float64 // one texel in UV units
	Resolution [2]float64 // output size in device pixels

	// Fit is the fraction of the output covered by the quad. Zero or
	// values above 1 cover the whole output.
	Fit float64
}

// DefaultTexel is the texel used before a texture is available.
func DefaultTexel() [2]float64 {
	return [2]float64{1.0 / asset.DefaultTextureSize, 1.0 / asset.DefaultTextureSize}
}

func (u *Uniforms) fit() float64 {
	if u.Fit <= 0 || u.Fit > 1 {
		return 1
	}
	return u.Fit
}

// QuadUV maps the center of output pixel (x, y) to quad UV coordinates.
// ok is false outside the quad.
func (u *Uniforms) QuadUV(x, y int) (uv [2]float64, ok bool) {
	f := u.fit()
	w, h := u.Resolution[0], u.Resolution[1]
	side := math.Min(w, h) * f
	if side <= 0 {
		return uv, false
	}
	ox := (w - side) / 2
	oy := (h - side) / 2
	uv[0] = (float64(x) + 0.5 - ox) / side
	uv[1] = (float64(y) + 0.5 - oy) / side
	ok = uv[0] >= 0 && uv[0] <= 1 && uv[1] >= 0 && uv[1] <= 1
	return uv, ok
}

func sampleLuma(t *asset.Texture, u, v float64) float64 {
	r, g, b, _ := t.Sample(u, v)
	return luma(r, g, b)
}

// Shade runs the diamond program for one fragment at uv and returns straight
// RGBA in [0,1]. ok is false when the fragment is discarded, which leaves the
// output transparent.
func Shade(t *asset.Texture, uv [2]float64, u *Uniforms) (rgba [4]float64, ok bool) {
	if t == nil {
		return rgba, false
	}
	x, y := uv[0], uv[1]
	br, bg, bb, ba := t.Sample(x, y)
	if ba < alphaCutoff {
		return rgba, false
	}
	color := vec3{br, bg, bb}
	cut := u.CutQuality

	tintAmt := smoothstep(0, 1, u.ColorGrade) * maxTint
	color = color.mix(color.mul(yellow), tintAmt)

	tx, ty := u.Texel[0], u.Texel[1]
	c00 := sampleLuma(t, x-tx, y-ty)
	c10 := sampleLuma(t, x, y-ty)
	c20 := sampleLuma(t, x+tx, y-ty)
	c01 := sampleLuma(t, x-tx, y)
	c21 := sampleLuma(t, x+tx, y)
	c02 := sampleLuma(t, x-tx, y+ty)
	c12 := sampleLuma(t, x, y+ty)
	c22 := sampleLuma(t, x+tx, y+ty)

	gx := -c00 - 2*c10 - c20 + c02 + 2*c12 + c22
	gy := -c00 - 2*c01 - c02 + c20 + 2*c21 + c22
	edge := clamp(math.Hypot(gx, gy), 0, 1)
	dx, dy := gx+1e-5, gy+1e-5
	if n := math.Hypot(dx, dy); n > 0 {
		dx, dy = dx/n, dy/n
	}

	color = color.add(edge * cut * edgeGain)

	disp := edgeGain * cut * (0.5 + 0.5*edge) * math.Max(0, 1-tintAmt) * dispersion
	dr, _, _, _ := t.Sample(x+dx*disp, y+dy*disp)
	_, _, db, _ := t.Sample(x-dx*disp, y-dy*disp)
	color = color.mix(vec3{dr, bg, db}, smoothstep(0.1, 0.9, edge)*0.6*cut)

	k := 1 + cut*contrastGain
	color = color.add(-0.5).scale(k).add(0.5).clamp01()

	lack := 1 - u.ClarityGrade
	px, py := x-0.5, y-0.5
	plen := math.Hypot(px, py)
	d := plen / 0.5
	haze := lack * smoothstep(0.15, 0.95, d) * hazeGain
	color = color.mix(vec3{1, 1, 1}, haze*hazeMix)

	fres := math.Pow(smoothstep(0.2, 1, d), 1.5)
	color = color.add(fres * edge * (0.15 + 0.25*cut))

	color = color.scale(1 - inclusion(x, y, d, lack, u.Time)*(0.18+0.25*lack))

	ang := math.Atan2(py, px) + u.Time*0.35
	fall := smoothstep(0.5, 0.02, plen)
	star1 := math.Pow(math.Max(0, math.Cos(6*ang)), 24) * fall
	star2 := math.Pow(math.Max(0, math.Cos(8*(ang+1.57))), 22) * fall
	color = color.add((star1 + star2) * glintGain * cut)

	color = color.scale(mix(0.95, 1, smoothstep(0.95, 0.4, d)))

	color = color.add((blueNoise(x*1.7, y*1.7, u.Resolution) - 0.5) * ditherGain)

	return [4]float64{color[0], color[1], color[2], ba}, true
}

// inclusion returns the speck coverage at uv: one candidate dot per grid
// cell, gated by a per-cell hash and drifting slowly with time.
func inclusion(x, y, d, lack, time float64) float64 {
	density := mix(24, 140, lack)
	cx, cy := math.Floor(x*density), math.Floor(y*density)
	lx, ly := fract(x*density)-0.5, fract(y*density)-0.5

	ox, oy := speckOffset(cx, cy, time)
	dist := math.Hypot(lx-ox, ly-oy)
	rad := mix(0.006, 0.016, lack)
	inkl := smoothstep(rad, rad*0.6, dist) // 1 inside the dot
	appear := step(mix(0.995, 0.88, lack), Hash([2]float64{cx + 91.7, cy + 91.7}))
	return inkl * appear * step(d, 1) * smoothstep(1, 0.15, d)
}

// speckOffset is the position of the candidate speck of cell (cx, cy)
// relative to the cell center, in cell units. It stays within 0.26 of
// the center.
func speckOffset(cx, cy, time float64) (ox, oy float64) {
	h1 := Hash([2]float64{cx + 13.17, cy + 13.17})
	h2 := Hash([2]float64{cx + 37.91, cy + 37.91})
	ox = (h1-0.5)*0.35 + 0.08*math.Sin(time*1.2+h1*2*math.Pi)
	oy = (h2-0.5)*0.35 + 0.08*math.Cos(time*1.1+h2*2*math.Pi)
	return ox, oy
}
