// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrNoTextureCreator is returned when the drawer cannot create textures.
var ErrNoTextureCreator = errors.New("gemcanvas: drawer has no TextureCreator")

// RenderTo uploads the surface if it changed and draws it at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition uploads the surface if it changed and draws it at (x, y).
//
// The texture is created through dc.TextureCreator on first use and updated
// in place while the pixel size is unchanged. A texture that cannot be
// updated in place, or whose size no longer matches, is replaced; the old
// one is destroyed only once its replacement exists.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.upload(dc); err != nil {
		return err
	}
	return dc.DrawTexture(c.texture, x, y)
}

func (c *Canvas) upload(dc gpucontext.TextureDrawer) error {
	size := c.surface.PixelSize()
	dirty := c.surface.IsDirty()
	if c.texture != nil {
		_, updatable := c.texture.(gpucontext.TextureUpdater)
		if c.texSize != size || (dirty && !updatable) {
			c.retire()
		}
	}
	if c.texture != nil && !dirty {
		return nil
	}

	data, err := c.Flush()
	if err != nil {
		return err
	}
	if c.texture != nil {
		if err := c.texture.(gpucontext.TextureUpdater).UpdateData(data); err != nil {
			return fmt.Errorf("gemcanvas: texture update failed: %w", err)
		}
		c.surface.ClearDirty()
		return nil
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(size, size, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
	}
	// Surface pixels are premultiplied.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	c.texture = tex
	c.texSize = size
	destroy(c.oldTexture)
	c.oldTexture = nil
	c.surface.ClearDirty()
	return nil
}

// retire moves the current texture aside. It stays alive until the next
// texture has been created.
func (c *Canvas) retire() {
	destroy(c.oldTexture)
	c.oldTexture = c.texture
	c.texture = nil
}
