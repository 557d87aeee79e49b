// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"slices"
	"testing"
	"testing/fstest"
	"time"
)

// gemPNG encodes a w x h image with an opaque disc on a transparent field.
func gemPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy, r := float64(w)/2, float64(h)/2, float64(min(w, h))*0.4
	for y := range h {
		for x := range w {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 210, B: 220, A: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestFromImageDownscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2048, 1024))
	tex := FromImage(img, 1024)
	if tex.Width() != 1024 || tex.Height() != 512 {
		t.Errorf("FromImage() size = %dx%d, want 1024x512", tex.Width(), tex.Height())
	}
	if got := tex.Texel(); got[0] != 1.0/1024 || got[1] != 1.0/512 {
		t.Errorf("Texel() = %v", got)
	}
	if FromImage(nil, 0) != nil {
		t.Error("FromImage(nil) should be nil")
	}
	if FromImage(image.NewNRGBA(image.Rectangle{}), 0) != nil {
		t.Error("FromImage(empty) should be nil")
	}
}

func TestSample(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	tex := NewTexture(img)

	tests := []struct {
		u    float64
		want float64
	}{
		{0.25, 0},  // first texel center
		{0.75, 1},  // second texel center
		{0.5, 0.5}, // halfway between centers
		{-1, 0},    // clamped left
		{2, 1},     // clamped right
		{0.0, 0},   // edge uses clamp
		{0.375, 0.25},
	}
	for _, tt := range tests {
		r, _, _, a := tex.Sample(tt.u, 0.5)
		if math.Abs(r-tt.want) > 1e-6 || a != 1 {
			t.Errorf("Sample(%v, 0.5) = r %v a %v, want r %v a 1", tt.u, r, a, tt.want)
		}
	}
	if r, _, _, _ := tex.At(5, -3); r != 1 {
		t.Errorf("At(5, -3) = %v, want clamp to last texel", r)
	}
}

func TestDecodeBytes(t *testing.T) {
	if _, err := DecodeBytes(nil, 0); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image"), 0); err == nil {
		t.Error("DecodeBytes(garbage) error = nil")
	}
	tex, err := DecodeBytes(gemPNG(t, 32, 32), 16)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if tex.Width() != 16 {
		t.Errorf("decoded width = %d, want 16", tex.Width())
	}
}

func TestLoaderPaths(t *testing.T) {
	l := &Loader{}
	want := []string{"diamond-base.png", "diamond.base.png", "diam5.png", "diam1.png"}
	if got := l.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}

	l = &Loader{Primary: "/gems/custom.png", Fallbacks: []string{"/gems/custom.png", "", "b.png"}}
	want = []string{"gems/custom.png", "b.png"}
	if got := l.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestLoaderFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"diam5.png": {Data: gemPNG(t, 8, 8)},
		"diam1.png": {Data: gemPNG(t, 4, 4)},
	}
	tex, err := (&Loader{FS: fsys}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tex.Width() != 8 {
		t.Errorf("Load() picked width %d, want the diam5.png texture (8)", tex.Width())
	}
}

func TestLoaderCorruptPrimary(t *testing.T) {
	fsys := fstest.MapFS{
		"diamond-base.png": {Data: []byte("broken")},
		"diam1.png":        {Data: gemPNG(t, 4, 4)},
	}
	tex, err := (&Loader{FS: fsys}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tex.Width() != 4 {
		t.Errorf("Load() width = %d, want 4", tex.Width())
	}
}

func TestLoaderExhausted(t *testing.T) {
	_, err := (&Loader{FS: fstest.MapFS{}}).Load(context.Background())
	if !errors.Is(err, ErrNoAsset) {
		t.Fatalf("Load() error = %v, want ErrNoAsset", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestLoaderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Loader{FS: fstest.MapFS{}}).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoaderCache(t *testing.T) {
	fsys := fstest.MapFS{"diamond-base.png": {Data: gemPNG(t, 8, 8)}}
	c := NewCache(4)
	a, err := (&Loader{FS: fsys, Cache: c}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := (&Loader{FS: fsys, Cache: c}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a != b {
		t.Error("loaders sharing a cache should share the decoded texture")
	}
	if c.Len() != 1 {
		t.Errorf("Cache.Len() = %d, want 1", c.Len())
	}
}

func TestPending(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok := (&Loader{FS: fstest.MapFS{"diamond-base.png": {Data: gemPNG(t, 8, 8)}}}).Start(ctx)
	tex, err := ok.Wait(ctx)
	if err != nil || tex == nil {
		t.Fatalf("Wait() = %v, %v", tex, err)
	}
	if ok.Texture() != tex || ok.Err() != nil {
		t.Error("completed Pending should expose its texture and no error")
	}

	bad := (&Loader{FS: fstest.MapFS{}}).Start(ctx)
	<-bad.Done()
	if bad.Texture() != nil {
		t.Error("failed Pending should yield a nil texture")
	}
	if !errors.Is(bad.Err(), ErrNoAsset) {
		t.Errorf("Err() = %v, want ErrNoAsset", bad.Err())
	}
}

func TestStatic(t *testing.T) {
	if Static(nil).Texture() != nil {
		t.Error("Static(nil).Texture() should be nil")
	}
	tex := NewTexture(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if Static(tex).Texture() != tex {
		t.Error("Static(tex).Texture() should return tex")
	}
}
