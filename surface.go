// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Common errors returned by Surface operations.
var (
	// ErrSurfaceClosed is returned when a closed or nil surface is used.
	ErrSurfaceClosed = errors.New("gemstone: surface is closed")

	// ErrInvalidSize is returned when a size or scale is not positive.
	ErrInvalidSize = errors.New("gemstone: invalid surface size")
)

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	scale float64
}

// WithScale sets the device pixel ratio. The backing buffer is
// round(size*scale) pixels on each side. Non-positive values are ignored.
func WithScale(scale float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if scale > 0 && !math.IsInf(scale, 0) {
			o.scale = scale
		}
	}
}

// Surface is the square drawable a renderer draws into. Its logical size is
// derived from VisualParameters.Size; the backing gg context is scaled by
// the device pixel ratio.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	ctx    *gg.Context
	size   int
	scale  float64
	dirty  bool
	closed bool
}

// NewSurface creates a surface of size x size logical pixels.
func NewSurface(size int, opts ...SurfaceOption) (*Surface, error) {
	o := surfaceOptions{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size=%d", ErrInvalidSize, size)
	}
	px := devicePixels(size, o.scale)
	return &Surface{
		ctx:   gg.NewContext(px, px),
		size:  size,
		scale: o.scale,
		dirty: true,
	}, nil
}

// MustNewSurface is like NewSurface but panics on error.
func MustNewSurface(size int, opts ...SurfaceOption) *Surface {
	s, err := NewSurface(size, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func devicePixels(size int, scale float64) int {
	return max(1, int(math.Round(float64(size)*scale)))
}

// Size returns the logical size in pixels.
func (s *Surface) Size() int { return s.size }

// Scale returns the device pixel ratio.
func (s *Surface) Scale() float64 { return s.scale }

// PixelSize returns the backing buffer size in device pixels.
func (s *Surface) PixelSize() int { return devicePixels(s.size, s.scale) }

// Context returns the gg drawing context, or nil if the surface is closed.
func (s *Surface) Context() *gg.Context {
	if s == nil || s.closed {
		return nil
	}
	return s.ctx
}

// Resize changes the logical size. It is a no-op when the size is unchanged
// and otherwise reallocates the backing buffer, leaving it cleared.
func (s *Surface) Resize(size int) error {
	if s == nil || s.closed {
		return ErrSurfaceClosed
	}
	if size <= 0 {
		return fmt.Errorf("%w: size=%d", ErrInvalidSize, size)
	}
	if size == s.size {
		return nil
	}
	px := devicePixels(size, s.scale)
	if err := s.ctx.Resize(px, px); err != nil {
		return fmt.Errorf("gemstone: context resize failed: %w", err)
	}
	s.size = size
	s.dirty = true
	return nil
}

// Draw calls fn with the gg context and marks the surface dirty.
func (s *Surface) Draw(fn func(*gg.Context) error) error {
	if s == nil || s.closed {
		return ErrSurfaceClosed
	}
	err := fn(s.ctx)
	s.dirty = true
	return err
}

// MarkDirty flags the surface as changed since it was last presented.
func (s *Surface) MarkDirty() { s.dirty = true }

// IsDirty reports whether the surface changed since ClearDirty.
func (s *Surface) IsDirty() bool { return s.dirty }

// ClearDirty resets the dirty flag after the content has been presented.
func (s *Surface) ClearDirty() { s.dirty = false }

// Image returns a copy of the current content.
func (s *Surface) Image() *image.RGBA {
	if s == nil || s.closed {
		return nil
	}
	return s.ctx.ResizeTarget().ToImage()
}

// Pixels returns the backing premultiplied RGBA bytes without copying.
// The slice is invalidated by Resize.
func (s *Surface) Pixels() []byte {
	if s == nil || s.closed {
		return nil
	}
	return s.ctx.ResizeTarget().Data()
}

// EncodePNG writes the current content as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s == nil || s.closed {
		return ErrSurfaceClosed
	}
	return s.ctx.EncodePNG(w)
}

// SavePNG writes the current content to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s == nil || s.closed {
		return ErrSurfaceClosed
	}
	return s.ctx.SavePNG(path)
}

// Close releases the backing context. Close is idempotent.
func (s *Surface) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	err := s.ctx.Close()
	s.ctx = nil
	return err
}

// Closed reports whether Close has been called.
func (s *Surface) Closed() bool { return s == nil || s.closed }
