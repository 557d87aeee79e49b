// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import (
	"math"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Carat bounds applied by Sanitize.
const (
	MinCarat     = 0.1
	MaxCarat     = 4.0
	DefaultCarat = 1.0
)

// Size bounds in logical pixels, reached at MinCarat and MaxCarat.
var (
	MinSize = sizeFromCarat(MinCarat)
	MaxSize = sizeFromCarat(MaxCarat)
)

// GradeInput is the set of grading attributes describing one stone.
type GradeInput struct {
	Carat   float64
	Cut     Cut
	Color   Color
	Clarity Clarity
}

// Sanitize returns a copy of in whose carat is finite and inside
// [MinCarat, MaxCarat]. NaN becomes DefaultCarat. Grades are left as is;
// out-of-scale grades are handled by Rank.
func (in GradeInput) Sanitize() GradeInput {
	switch {
	case math.IsNaN(in.Carat):
		in.Carat = DefaultCarat
	case in.Carat < MinCarat:
		in.Carat = MinCarat
	case in.Carat > MaxCarat:
		in.Carat = MaxCarat
	}
	return in
}

// Tint is the warm color wash applied for lower color grades.
type Tint struct {
	Hue        float64 // degrees
	Saturation float64 // [0,1]
}

// RGBA returns the tint as an opaque color at 50% lightness.
func (t Tint) RGBA() gg.RGBA {
	c := colorful.Hsl(t.Hue, t.Saturation, 0.5).Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Alpha is the opacity of the tint wash. It grows with saturation so that
// color intensity and tint strength move together.
func (t Tint) Alpha() float64 {
	return 0.12 + t.Saturation*0.15
}

// Sparkle describes the point highlights of the compositing backend.
type Sparkle struct {
	Count   int
	Radius  float64 // logical pixels
	Opacity float64
}

// Grades are the three continuous grade scalars consumed by the shader
// backend, each in [0,1].
type Grades struct {
	ColorGrade   float64
	CutQuality   float64
	ClarityGrade float64
}

// Clamp returns g with every scalar clamped to [0,1]. NaN becomes 0.
func (g Grades) Clamp() Grades {
	return Grades{
		ColorGrade:   clamp01(g.ColorGrade),
		CutQuality:   clamp01(g.CutQuality),
		ClarityGrade: clamp01(g.ClarityGrade),
	}
}

// VisualParameters is the contract shared by both renderer backends.
type VisualParameters struct {
	Size         int     // logical pixels
	ContrastGain float64 // compositing backend
	Tint         Tint
	Sparkle      Sparkle
	ColorGrade   float64 // shader backend, 0 = colorless
	CutQuality   float64 // shader backend, 1 = best cut
	ClarityGrade float64 // shader backend, 1 = flawless
}

// Grades returns the shader scalars of p.
func (p VisualParameters) Grades() Grades {
	return Grades{ColorGrade: p.ColorGrade, CutQuality: p.CutQuality, ClarityGrade: p.ClarityGrade}
}

// Valid reports whether every derived value lies in its documented range.
func (p VisualParameters) Valid() bool {
	in01 := func(v float64) bool { return v >= 0 && v <= 1 }
	return p.Size >= MinSize && p.Size <= MaxSize &&
		p.ContrastGain > 0 &&
		in01(p.Tint.Saturation) && in01(p.Tint.Alpha()) &&
		p.Sparkle.Count > 0 && p.Sparkle.Radius > 0 && in01(p.Sparkle.Opacity) &&
		in01(p.ColorGrade) && in01(p.CutQuality) && in01(p.ClarityGrade)
}

// Derive projects a grading input onto visual parameters. It is pure: equal
// inputs always produce equal parameters.
func Derive(in GradeInput) VisualParameters {
	in = in.Sanitize()
	return VisualParameters{
		Size:         sizeFromCarat(in.Carat),
		ContrastGain: ContrastGain(in.Cut),
		Tint:         TintFor(in.Color),
		Sparkle:      SparkleFor(in.Clarity),
		ColorGrade:   ColorGrade(in.Color),
		CutQuality:   CutQuality(in.Cut),
		ClarityGrade: ClarityGrade(in.Clarity),
	}
}

// SizeFromCarat returns the logical canvas size for a carat weight. Growth
// is logarithmic and clamped at MaxCarat.
func SizeFromCarat(carat float64) int {
	return sizeFromCarat(GradeInput{Carat: carat}.Sanitize().Carat)
}

func sizeFromCarat(c float64) int {
	return int(math.Round(220 + math.Log2(1+c)*120))
}

var contrastByCut = [CutLevels]float64{
	CutFair:      0.98,
	CutGood:      1.05,
	CutVeryGood:  1.15,
	CutExcellent: 1.25,
}

// ContrastGain returns the compositing contrast gain for a cut.
func ContrastGain(c Cut) float64 {
	return contrastByCut[c.Rank()]
}

// TintFor returns the tint for a color grade. D carries the faintest tint.
func TintFor(c Color) Tint {
	i := float64(c.Rank())
	return Tint{Hue: 210 + i*6, Saturation: (4 + i*3) / 100}
}

// SparkleFor returns the sparkle layout for a clarity grade: better clarity
// gives more, larger, more opaque sparkles.
func SparkleFor(c Clarity) Sparkle {
	i := float64(c.Rank())
	return Sparkle{
		Count:   3 + int(math.Round(i*0.9)),
		Radius:  10 + i*1.2,
		Opacity: 0.15 + i*0.02,
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
