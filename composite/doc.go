// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package composite is the layer-compositing diamond backend.
//
// Render paints seven full-canvas passes with gg, in order: background
// vignette, base gem (the texture, or an octagon placeholder when none is
// loaded), a contrast pass, a multiply tint, a screen glare, screen
// sparkles and two outline rings. Each pass works in device pixels, so a
// surface with a device pixel ratio above 1 gets a sharper picture of the
// same layout.
//
// The renderer keeps no state between calls. Rendering the same parameters
// twice produces the same image.
package composite
