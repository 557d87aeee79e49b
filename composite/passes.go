// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package composite

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/gemstone/internal/filter"
)

// Layout constants, relative to the canvas edge.
const (
	bgInner        = 0.1
	bgOuter        = 0.55
	gemRadius      = 0.38
	octagonK       = 0.38
	glareInner     = 0.01
	glareOuter     = 0.22
	sparkleOrbit   = 0.18
	sparkleStep    = 0.02
	innerRing      = 0.42
	outerRing      = 0.44
	innerRingAlpha = 0.55
	outerRingAlpha = 0.08
)

// frame carries one Render call through the passes. px is the canvas edge
// in device pixels and u is one logical pixel in device pixels.
type frame struct {
	dc  *gg.Context
	px  float64
	u   float64
	p   gemstone.VisualParameters
	tex *asset.Texture
}

// fillCanvas fills the whole canvas with b.
func (f *frame) fillCanvas(b gg.Brush) error {
	f.dc.SetFillBrush(b)
	f.dc.DrawRectangle(0, 0, f.px, f.px)
	return f.dc.Fill()
}

// layer runs draw inside a layer composited with mode and opacity.
func (f *frame) layer(mode gg.BlendMode, opacity float64, draw func() error) error {
	f.dc.PushLayer(mode, opacity)
	defer f.dc.PopLayer()
	return draw()
}

func (r *Renderer) background(f *frame) error {
	px := f.px
	g := gg.NewRadialGradientBrush(px*0.5, px*0.5, px*bgInner, px*bgOuter).
		SetFocus(px*0.48, px*0.45).
		AddColorStop(0, gg.RGBA{R: 1, G: 1, B: 1, A: 0}).
		AddColorStop(1, gg.RGBA{R: 0, G: 0, B: 0, A: 0.12})
	return f.fillCanvas(g)
}

func (r *Renderer) baseGem(f *frame) error {
	px := f.px
	if f.tex != nil {
		pad := math.Round(px * r.opts.padRatio)
		f.dc.DrawImageEx(gg.ImageBufFromImage(f.tex.Image()), gg.DrawImageOptions{
			X:         pad,
			Y:         pad,
			DstWidth:  px - 2*pad,
			DstHeight: px - 2*pad,
		})
		return nil
	}
	f.dc.SetFillBrush(gg.Solid(r.opts.placeholder))
	octagon(f.dc, px/2, px/2, px*gemRadius)
	return f.dc.Fill()
}

// octagon adds the placeholder outline: a diamond whose diagonal corners
// are pulled in to k times the radius.
func octagon(dc *gg.Context, cx, cy, rad float64) {
	k := rad * octagonK
	dc.MoveTo(cx, cy-rad)
	dc.LineTo(cx+k, cy-k)
	dc.LineTo(cx+rad, cy)
	dc.LineTo(cx+k, cy+k)
	dc.LineTo(cx, cy+rad)
	dc.LineTo(cx-k, cy+k)
	dc.LineTo(cx-rad, cy)
	dc.LineTo(cx-k, cy-k)
	dc.ClosePath()
}

// contrast multiplies the canvas with a contrast-filtered copy of itself.
// The copy is filtered into a fresh buffer; the canvas is never read and
// written by the same operation.
func (r *Renderer) contrast(f *frame) error {
	gain := f.p.ContrastGain
	if f.tex == nil || gain == 0 {
		return nil
	}
	m := filter.Contrast(gain)
	filtered := m.Apply(f.dc.ResizeTarget().ToImage())
	if filtered == nil {
		return nil
	}
	img := gg.ImageBufFromImage(filtered)
	return f.layer(gg.BlendMultiply, 1, func() error {
		f.dc.DrawImageEx(img, gg.DrawImageOptions{DstWidth: f.px, DstHeight: f.px})
		return nil
	})
}

func (r *Renderer) tint(f *frame) error {
	t := f.p.Tint
	return f.layer(gg.BlendMultiply, t.Alpha(), func() error {
		return f.fillCanvas(gg.Solid(t.RGBA()))
	})
}

func (r *Renderer) glare(f *frame) error {
	px := f.px
	g := gg.NewRadialGradientBrush(px*0.34, px*0.30, px*glareInner, px*glareOuter).
		AddColorStop(0, gg.RGBA{R: 1, G: 1, B: 1, A: 0.9}).
		AddColorStop(0.55, gg.RGBA{R: 1, G: 1, B: 1, A: 0.25}).
		AddColorStop(1, gg.RGBA{R: 1, G: 1, B: 1, A: 0})
	return f.layer(gg.BlendScreen, 1, func() error {
		return f.fillCanvas(g)
	})
}

// SparklePositions returns the centers of the sparkles for a canvas of edge
// px, on an ellipse around the center with a per-index jitter.
func SparklePositions(count int, px float64) []gg.Point {
	pts := make([]gg.Point, 0, max(count, 0))
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(count)*2*math.Pi + float64(i%3)*0.3
		rad := px*sparkleOrbit + float64(i%4)*px*sparkleStep
		pts = append(pts, gg.Point{
			X: px/2 + math.Cos(angle)*rad,
			Y: px/2 + math.Sin(angle)*rad*0.75,
		})
	}
	return pts
}

func (r *Renderer) sparkles(f *frame) error {
	s := f.p.Sparkle
	rad := s.Radius * f.u
	half := 0.7 * f.u
	return f.layer(gg.BlendScreen, s.Opacity, func() error {
		for _, c := range SparklePositions(s.Count, f.px) {
			f.dc.SetFillBrush(gg.NewRadialGradientBrush(c.X, c.Y, 0, rad).
				AddColorStop(0, gg.RGBA{R: 1, G: 1, B: 1, A: 1}).
				AddColorStop(1, gg.RGBA{R: 1, G: 1, B: 1, A: 0}))
			f.dc.DrawCircle(c.X, c.Y, rad)
			if err := f.dc.Fill(); err != nil {
				return err
			}

			f.dc.SetRGBA(1, 1, 1, 0.95)
			f.dc.DrawRectangle(c.X-half, c.Y-rad, 2*half, 2*rad)
			if err := f.dc.Fill(); err != nil {
				return err
			}
			f.dc.DrawRectangle(c.X-rad, c.Y-half, 2*rad, 2*half)
			if err := f.dc.Fill(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Renderer) outline(f *frame) error {
	c := f.px / 2
	f.dc.SetRGBA(1, 1, 1, innerRingAlpha)
	f.dc.SetLineWidth(1.2 * f.u)
	f.dc.DrawCircle(c, c, f.px*innerRing)
	if err := f.dc.Stroke(); err != nil {
		return err
	}
	f.dc.SetRGBA(0, 0, 0, outerRingAlpha)
	f.dc.SetLineWidth(2 * f.u)
	f.dc.DrawCircle(c, c, f.px*outerRing)
	return f.dc.Stroke()
}
