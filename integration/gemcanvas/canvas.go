// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gemstone"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gemcanvas: canvas is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gemcanvas: nil DeviceProvider")

	// ErrNilRenderer is returned when a nil Renderer is passed.
	ErrNilRenderer = errors.New("gemcanvas: nil Renderer")

	// ErrTextureCreationFailed is returned when the host cannot create a texture.
	ErrTextureCreationFailed = errors.New("gemcanvas: texture creation failed")
)

// textureDestroyer matches the Destroy method of host textures.
type textureDestroyer interface {
	Destroy()
}

// Canvas renders a diamond into a surface and keeps a host texture in sync
// with it.
type Canvas struct {
	provider gpucontext.DeviceProvider
	renderer gemstone.Renderer
	surface  *gemstone.Surface
	params   gemstone.VisualParameters

	texture    gpucontext.Texture
	oldTexture gpucontext.Texture // replaced texture, destroyed after the next upload
	texSize    int // pixel edge of texture
	frame      []byte
	closed     bool
}

// New creates a Canvas of the given logical size. The surface is rendered
// on the first Update.
func New(provider gpucontext.DeviceProvider, r gemstone.Renderer, size int, opts ...gemstone.SurfaceOption) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if r == nil {
		return nil, ErrNilRenderer
	}
	s, err := gemstone.NewSurface(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Canvas{provider: provider, renderer: r, surface: s}, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, r gemstone.Renderer, size int, opts ...gemstone.SurfaceOption) *Canvas {
	c, err := New(provider, r, size, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Update derives visual parameters from in and renders them.
func (c *Canvas) Update(in gemstone.GradeInput) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.params = gemstone.Derive(in)
	return c.render()
}

// Redraw renders the last parameters again. Animated renderers advance one
// frame per call. Before the first Update it does nothing.
func (c *Canvas) Redraw() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if c.params.Size == 0 {
		return nil
	}
	return c.render()
}

func (c *Canvas) render() error {
	if _, err := c.renderer.Render(c.params, c.surface); err != nil {
		return fmt.Errorf("gemcanvas: %s render: %w", c.renderer.Name(), err)
	}
	return nil
}

// Params returns the parameters of the last Update.
func (c *Canvas) Params() gemstone.VisualParameters { return c.params }

// Surface returns the rendered surface, or nil once closed.
func (c *Canvas) Surface() *gemstone.Surface {
	if c.closed {
		return nil
	}
	return c.surface
}

// PixelSize returns the edge of the rendered image in device pixels.
func (c *Canvas) PixelSize() int {
	if c.closed {
		return 0
	}
	return c.surface.PixelSize()
}

// IsDirty reports whether the surface changed since the last upload.
func (c *Canvas) IsDirty() bool {
	return !c.closed && c.surface.IsDirty()
}

// Flush returns the surface pixels in the provider's surface format. The
// slice is reused by the next Flush.
func (c *Canvas) Flush() ([]byte, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	src := c.surface.Pixels()
	if cap(c.frame) < len(src) {
		c.frame = make([]byte, len(src))
	}
	c.frame = c.frame[:len(src)]
	if isBGRA(c.provider.SurfaceFormat()) {
		swizzle(c.frame, src)
	} else {
		copy(c.frame, src)
	}
	return c.frame, nil
}

func isBGRA(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm
}

// swizzle copies RGBA pixels into dst as BGRA.
func swizzle(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

// Texture returns the current host texture, or nil before the first
// RenderTo.
func (c *Canvas) Texture() gpucontext.Texture { return c.texture }

// Provider returns the DeviceProvider, or nil once closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases the textures and the surface. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroy(c.oldTexture)
	destroy(c.texture)
	c.oldTexture, c.texture = nil, nil
	c.provider = nil
	return c.surface.Close()
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
