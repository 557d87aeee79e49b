// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package composite

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
)

// DefaultPadRatio is the margin around the texture, relative to the canvas.
const DefaultPadRatio = 0.06

// PlaceholderColor fills the octagon drawn while no texture is available.
var PlaceholderColor = gg.Hex("#e9edf1")

// Option configures a Renderer.
type Option func(*options)

type options struct {
	padRatio    float64
	placeholder gg.RGBA
}

// WithPadRatio sets the texture margin as a fraction of the canvas edge.
// Values outside [0, 0.5) are ignored.
func WithPadRatio(r float64) Option {
	return func(o *options) {
		if r >= 0 && r < 0.5 {
			o.padRatio = r
		}
	}
}

// WithPlaceholderColor sets the fill of the placeholder octagon.
func WithPlaceholderColor(c gg.RGBA) Option {
	return func(o *options) {
		o.placeholder = c
	}
}

// Renderer is the compositing backend. It is safe to share between
// goroutines as long as each uses its own Surface.
type Renderer struct {
	src  asset.Source
	opts options
}

var _ gemstone.Renderer = (*Renderer)(nil)

// New returns a compositing renderer reading its texture from src. A nil
// src always draws the placeholder.
func New(src asset.Source, opts ...Option) *Renderer {
	o := options{padRatio: DefaultPadRatio, placeholder: PlaceholderColor}
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		src = asset.Static(nil)
	}
	return &Renderer{src: src, opts: o}
}

// Name implements gemstone.Renderer.
func (r *Renderer) Name() string { return "composite" }

// Render implements gemstone.Renderer.
func (r *Renderer) Render(p gemstone.VisualParameters, s *gemstone.Surface) (image.Image, error) {
	if s.Closed() {
		return nil, gemstone.ErrSurfaceClosed
	}
	if p.Size > 0 {
		if err := s.Resize(p.Size); err != nil {
			return nil, err
		}
	}
	f := frame{
		px:  float64(s.PixelSize()),
		u:   s.Scale(),
		p:   p,
		tex: r.src.Texture(),
	}
	err := s.Draw(func(dc *gg.Context) error {
		f.dc = dc
		return r.paint(&f)
	})
	if err != nil {
		// A failed pass leaves a partial picture, which is still returned.
		gemstone.Logger().Warn("composite: pass failed", "err", err)
	}
	return s.Image(), nil
}

// paint runs every pass in order on a cleared canvas.
func (r *Renderer) paint(f *frame) error {
	f.dc.Identity()
	f.dc.Clear()
	for _, pass := range []func(*frame) error{
		r.background,
		r.baseGem,
		r.contrast,
		r.tint,
		r.glare,
		r.sparkles,
		r.outline,
	} {
		if err := pass(f); err != nil {
			return err
		}
	}
	return nil
}
