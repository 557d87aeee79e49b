// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package composite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
)

func params(carat float64) gemstone.VisualParameters {
	return gemstone.Derive(gemstone.GradeInput{
		Carat:   carat,
		Cut:     gemstone.CutVeryGood,
		Color:   gemstone.ColorF,
		Clarity: gemstone.ClarityVS2,
	})
}

// grayTexture returns an opaque mid-gray texture.
func grayTexture(t *testing.T, size int) *asset.Texture {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{140, 140, 140, 255})
		}
	}
	return asset.NewTexture(img)
}

func newFrame(t *testing.T, px int, tex *asset.Texture) *frame {
	t.Helper()
	dc := gg.NewContext(px, px)
	t.Cleanup(func() { dc.Close() })
	return &frame{dc: dc, px: float64(px), u: 1, p: params(1), tex: tex}
}

func to255(v float64) float64 { return math.Round(v * 255) }

func TestPlaceholderFill(t *testing.T) {
	f := newFrame(t, 200, nil)
	r := New(nil)
	if err := r.baseGem(f); err != nil {
		t.Fatalf("baseGem() error = %v", err)
	}
	got := f.dc.ResizeTarget().GetPixel(100, 100)
	want := [4]float64{0xe9, 0xed, 0xf1, 0xff}
	have := [4]float64{to255(got.R), to255(got.G), to255(got.B), to255(got.A)}
	for i := range want {
		if math.Abs(have[i]-want[i]) > 1 {
			t.Fatalf("center pixel = %v, want #e9edf1", have)
		}
	}
	if a := f.dc.ResizeTarget().GetPixel(2, 2).A; a != 0 {
		t.Errorf("corner alpha = %v, want 0 outside the octagon", a)
	}
}

func TestPlaceholderColorOption(t *testing.T) {
	f := newFrame(t, 100, nil)
	r := New(nil, WithPlaceholderColor(gg.RGBA{R: 1, G: 0, B: 0, A: 1}))
	if err := r.baseGem(f); err != nil {
		t.Fatal(err)
	}
	got := f.dc.ResizeTarget().GetPixel(50, 50)
	if to255(got.R) != 255 || to255(got.G) != 0 {
		t.Errorf("center pixel = %+v, want red", got)
	}
}

func TestBaseGemTexturePadding(t *testing.T) {
	f := newFrame(t, 100, grayTexture(t, 16))
	r := New(nil)
	if err := r.baseGem(f); err != nil {
		t.Fatal(err)
	}
	pm := f.dc.ResizeTarget()
	if a := pm.GetPixel(50, 50).A; a == 0 {
		t.Error("center is empty, want texture")
	}
	// pad = round(100 * 0.06) = 6
	if a := pm.GetPixel(2, 50).A; a != 0 {
		t.Errorf("alpha inside the pad = %v, want 0", a)
	}
}

func TestContrastSkippedWithoutTexture(t *testing.T) {
	f := newFrame(t, 64, nil)
	r := New(nil)
	if err := r.baseGem(f); err != nil {
		t.Fatal(err)
	}
	before := append([]byte(nil), f.dc.ResizeTarget().Data()...)
	if err := r.contrast(f); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, f.dc.ResizeTarget().Data()) {
		t.Error("contrast pass changed the canvas without a texture")
	}
}

func TestContrastDarkensMidtones(t *testing.T) {
	f := newFrame(t, 64, grayTexture(t, 16))
	r := New(nil, WithPadRatio(0))
	if err := r.baseGem(f); err != nil {
		t.Fatal(err)
	}
	before := f.dc.ResizeTarget().GetPixel(32, 32)
	if err := r.contrast(f); err != nil {
		t.Fatal(err)
	}
	after := f.dc.ResizeTarget().GetPixel(32, 32)
	if after.R >= before.R {
		t.Errorf("red after contrast = %v, want below %v", after.R, before.R)
	}

	// Multiply: canvas times its contrast-filtered copy.
	gain := f.p.ContrastGain
	filtered := ((before.R*255-128)*gain + 128) / 255
	if want := before.R * filtered; math.Abs(after.R-want) > 0.02 {
		t.Errorf("red after contrast = %.4f, want %.4f (multiply of %.4f and %.4f)",
			after.R, want, before.R, filtered)
	}
}

func TestSparklePositions(t *testing.T) {
	pts := SparklePositions(3, 100)
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	if math.Abs(pts[0].X-68) > 1e-9 || math.Abs(pts[0].Y-50) > 1e-9 {
		t.Errorf("first sparkle = %+v, want (68, 50)", pts[0])
	}
	for i, p := range pts {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			t.Errorf("sparkle %d = %+v outside the canvas", i, p)
		}
	}
	if got := SparklePositions(0, 100); len(got) != 0 {
		t.Errorf("SparklePositions(0) = %v, want empty", got)
	}
}

func TestRenderPlaceholder(t *testing.T) {
	s := gemstone.MustNewSurface(100)
	defer s.Close()
	r := New(asset.Static(nil))

	p := params(0.5)
	img, err := r.Render(p, s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != p.Size {
		t.Fatalf("width = %d, want %d", b.Dx(), p.Size)
	}
	c := p.Size / 2
	cr, _, _, ca := img.At(c, c).RGBA()
	if ca>>8 < 250 {
		t.Errorf("center alpha = %d, want opaque gem", ca>>8)
	}
	if cr>>8 < 180 {
		t.Errorf("center red = %d, want a light placeholder", cr>>8)
	}
	if !s.IsDirty() {
		t.Error("surface not marked dirty")
	}
}

func TestRenderResizesOnCaratChange(t *testing.T) {
	s := gemstone.MustNewSurface(100)
	defer s.Close()
	r := New(nil)

	for _, carat := range []float64{0.1, 4, 1} {
		p := params(carat)
		img, err := r.Render(p, s)
		if err != nil {
			t.Fatal(err)
		}
		if s.Size() != p.Size || img.Bounds().Dx() != p.Size {
			t.Errorf("carat %v: surface %d image %d, want %d", carat, s.Size(), img.Bounds().Dx(), p.Size)
		}
	}
}

func TestRenderDevicePixelRatio(t *testing.T) {
	s := gemstone.MustNewSurface(100, gemstone.WithScale(2))
	defer s.Close()
	r := New(nil)
	p := params(0.1)
	img, err := r.Render(p, s)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 2*p.Size {
		t.Errorf("width = %d, want %d", got, 2*p.Size)
	}
}

func TestRenderStateless(t *testing.T) {
	r := New(asset.Static(grayTexture(t, 32)))
	p := params(0.3)

	render := func() []byte {
		s := gemstone.MustNewSurface(64)
		defer s.Close()
		img, err := r.Render(p, s)
		if err != nil {
			t.Fatal(err)
		}
		return img.(*image.RGBA).Pix
	}
	if !bytes.Equal(render(), render()) {
		t.Error("two renders of the same parameters differ")
	}
}

func TestRenderClosedSurface(t *testing.T) {
	s := gemstone.MustNewSurface(32)
	s.Close()
	if _, err := New(nil).Render(params(1), s); !errors.Is(err, gemstone.ErrSurfaceClosed) {
		t.Errorf("Render() error = %v, want ErrSurfaceClosed", err)
	}
}

func TestRendererName(t *testing.T) {
	if got := New(nil).Name(); got != "composite" {
		t.Errorf("Name() = %q, want composite", got)
	}
}
