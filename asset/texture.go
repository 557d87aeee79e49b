// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultTextureSize is the texture edge assumed before any asset is loaded.
const DefaultTextureSize = 1024

// DefaultMaxSize caps the edge of a loaded texture.
const DefaultMaxSize = 1024

// Texture is an immutable straight-alpha RGBA image shared read-only by the
// renderers once loaded.
type Texture struct {
	img  *image.NRGBA
	w, h int
	pix  []float32 // r, g, b, a in [0,1], row-major
}

// NewTexture converts img into a texture without resizing it.
func NewTexture(img image.Image) *Texture {
	return FromImage(img, 0)
}

// FromImage converts img into a texture, downscaling it with Catmull-Rom
// filtering so neither edge exceeds maxSize. A maxSize of 0 keeps the
// original size. A nil or empty image yields nil.
func FromImage(img image.Image, maxSize int) *Texture {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		scale := float64(maxSize) / float64(max(w, h))
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	pix := make([]float32, w*h*4)
	for i, v := range dst.Pix {
		pix[i] = float32(v) / 255
	}
	return &Texture{img: dst, w: w, h: h, pix: pix}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.h }

// Texel returns the size of one texel in UV units.
func (t *Texture) Texel() [2]float64 {
	return [2]float64{1 / float64(t.w), 1 / float64(t.h)}
}

// Image returns the texture as a straight-alpha image. It must not be
// modified.
func (t *Texture) Image() *image.NRGBA { return t.img }

// At returns the texel at (x, y), clamping coordinates to the edge.
func (t *Texture) At(x, y int) (r, g, b, a float64) {
	x = min(max(x, 0), t.w-1)
	y = min(max(y, 0), t.h-1)
	i := (y*t.w + x) * 4
	p := t.pix[i : i+4 : i+4]
	return float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])
}

// Sample returns the bilinearly filtered color at (u, v) with clamp-to-edge
// addressing. Texel centers lie at (i+0.5)/size.
func (t *Texture) Sample(u, v float64) (r, g, b, a float64) {
	x := u*float64(t.w) - 0.5
	y := v*float64(t.h) - 0.5
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := x - x0
	fy := y - y0
	ix, iy := int(x0), int(y0)

	r00, g00, b00, a00 := t.At(ix, iy)
	r10, g10, b10, a10 := t.At(ix+1, iy)
	r01, g01, b01, a01 := t.At(ix, iy+1)
	r11, g11, b11, a11 := t.At(ix+1, iy+1)

	lerp2 := func(c00, c10, c01, c11 float64) float64 {
		top := c00 + (c10-c00)*fx
		bot := c01 + (c11-c01)*fx
		return top + (bot-top)*fy
	}
	return lerp2(r00, r10, r01, r11), lerp2(g00, g10, g01, g11),
		lerp2(b00, b10, b01, b11), lerp2(a00, a10, a01, a11)
}

// Source supplies the current texture to a renderer. Texture returns nil
// while no texture is available.
type Source interface {
	Texture() *Texture
}

type staticSource struct{ t *Texture }

func (s staticSource) Texture() *Texture { return s.t }

// Static returns a Source that always yields t. Static(nil) is a source
// with no texture, which makes renderers draw their fallback.
func Static(t *Texture) Source { return staticSource{t} }
