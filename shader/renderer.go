// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	now       func() time.Time
	evaluator Evaluator
	damping   float64
	workers   int
	fit       float64
}

// WithClock sets the time source used to advance the animation. Tests use
// it to drive frames deterministically.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithEvaluator replaces the default CPU evaluator. The renderer takes
// ownership and closes it on Close.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		o.evaluator = e
	}
}

// WithDamping sets the smoother damping factor.
func WithDamping(k float64) Option {
	return func(o *options) {
		o.damping = k
	}
}

// WithWorkers sets the CPU evaluator worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFit sets the fraction of the surface covered by the textured quad.
func WithFit(f float64) Option {
	return func(o *options) {
		o.fit = f
	}
}

// Renderer is the procedural backend. Each Render call is one animation
// frame: the smoother and the clock advance before any pixel is evaluated.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	src      asset.Source
	eval     Evaluator
	smoother *Smoother
	now      func() time.Time
	fit      float64

	last  time.Time
	tex   *asset.Texture
	texel [2]float64
	buf   *image.NRGBA
}

var _ gemstone.Renderer = (*Renderer)(nil)

// New returns a procedural renderer reading its texture from src. A nil src
// behaves like a source with no texture.
func New(src asset.Source, opts ...Option) *Renderer {
	o := options{now: time.Now, fit: DefaultFit}
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		src = asset.Static(nil)
	}
	if o.evaluator == nil {
		o.evaluator = NewCPUEvaluator(o.workers)
	}
	return &Renderer{
		src:      src,
		eval:     o.evaluator,
		smoother: NewSmoother(o.damping),
		now:      o.now,
		fit:      o.fit,
		texel:    DefaultTexel(),
	}
}

// Name implements gemstone.Renderer.
func (r *Renderer) Name() string { return "shader" }

// State returns the damped state used by the last frame.
func (r *Renderer) State() RenderState { return r.smoother.State() }

// Render implements gemstone.Renderer.
func (r *Renderer) Render(p gemstone.VisualParameters, s *gemstone.Surface) (image.Image, error) {
	if s.Closed() {
		return nil, gemstone.ErrSurfaceClosed
	}
	if r.eval == nil {
		return nil, ErrEvaluatorClosed
	}
	if p.Size > 0 {
		if err := s.Resize(p.Size); err != nil {
			return nil, err
		}
	}

	u := r.tick(p)
	px := s.PixelSize()
	u.Resolution = [2]float64{float64(px), float64(px)}

	if r.buf == nil || r.buf.Rect.Dx() != px {
		r.buf = image.NewNRGBA(image.Rect(0, 0, px, px))
	}
	if err := r.eval.Evaluate(r.tex, u, r.buf); err != nil {
		return nil, fmt.Errorf("shader: evaluate frame: %w", err)
	}
	blit(s.Pixels(), r.buf.Pix)
	s.MarkDirty()
	return s.Image(), nil
}

// tick runs the per-frame update: texture snapshot, texel refresh, clock and
// smoother. It returns the uniforms for this frame.
func (r *Renderer) tick(p gemstone.VisualParameters) Uniforms {
	if tex := r.src.Texture(); tex != r.tex {
		r.tex = tex
		if tex != nil {
			r.texel = tex.Texel()
			gemstone.Logger().Debug("shader: texture ready",
				"width", tex.Width(), "height", tex.Height())
		} else {
			r.texel = DefaultTexel()
		}
	}

	now := r.now()
	var dt time.Duration
	if !r.last.IsZero() {
		dt = now.Sub(r.last)
	}
	r.last = now

	st := r.smoother.Step(p.Grades(), dt)
	return Uniforms{
		ColorGrade:   st.ColorGrade,
		CutQuality:   st.CutQuality,
		ClarityGrade: st.ClarityGrade,
		Time:         st.Time,
		Texel:        r.texel,
		Fit:          r.fit,
	}
}

// Close releases the evaluator. Close is idempotent.
func (r *Renderer) Close() error {
	if r.eval == nil {
		return nil
	}
	err := r.eval.Close()
	r.eval = nil
	return err
}

// blit copies straight-alpha pixels into a premultiplied destination.
func blit(dst, src []byte) {
	n := min(len(dst), len(src))
	for i := 0; i+3 < n; i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = uint8(a)
	}
}
