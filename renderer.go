// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import "image"

// Renderer turns visual parameters into an image on a surface.
//
// Render resizes s to p.Size, redraws it from a cleared buffer, and returns
// the resulting image. Degenerate inputs such as a missing texture resolve
// to a defined fallback image; the only error is an unusable surface.
//
// The compositing and procedural backends both implement Renderer. They
// share no mutable state.
type Renderer interface {
	Render(p VisualParameters, s *Surface) (image.Image, error)
	Name() string
}
