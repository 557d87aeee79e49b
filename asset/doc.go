// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package asset loads the base gem image and exposes it as a read-only
// Texture.
//
// A Loader tries a primary path followed by an ordered list of fallbacks and
// returns the first image that decodes (PNG, JPEG or WebP). Renderers read
// textures through the Source interface, so an asynchronous load (Pending)
// can be swapped in without the renderer knowing: until the load completes
// the source yields nil and the renderer draws its fallback.
package asset
