// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader is the procedural diamond backend.
//
// A per-pixel program ([Shade]) turns the gem texture into a lit stone:
// warm tint from the color grade, Sobel edge highlights and chromatic
// dispersion from the cut, haze and hashed inclusions from the clarity,
// plus rotating glints, vignette and dither. The program exists twice, as
// Go for the [CPUEvaluator] and as embedded WGSL for the [GPUEvaluator].
//
// [Renderer] drives the program one frame per Render call. Before any pixel
// is evaluated it snapshots the texture, refreshes the texel size, advances
// the clock and steps the [Smoother], so parameter changes ease in over a
// few frames instead of jumping.
//
//	r := shader.New(loader.Start(ctx))
//	defer r.Close()
//	img, err := r.Render(gemstone.Derive(in), surface)
//
// Pixels outside the texture's alpha are left transparent, so without a
// texture the output is fully transparent.
package shader
