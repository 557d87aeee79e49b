// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gemstone renders a camera-facing picture of a diamond from its
// four grading attributes.
//
// # Overview
//
// A GradeInput (carat, cut, color, clarity) is projected by Derive onto
// VisualParameters, a small set of continuous values that both renderer
// backends consume:
//
//   - composite: layers and blend modes on a gg canvas (background falloff,
//     base gem, contrast, tint, glare, sparkles, outline)
//   - shader: one fused per-pixel program with edge detection, dispersion,
//     haze, animated inclusions and glints, evaluated on the CPU or through a
//     wgpu compute pipeline
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gemstone"
//	    "github.com/gogpu/gemstone/asset"
//	    "github.com/gogpu/gemstone/composite"
//	)
//
//	p := gemstone.Derive(gemstone.GradeInput{
//	    Carat: 1.2, Cut: gemstone.CutExcellent,
//	    Color: gemstone.ColorF, Clarity: gemstone.ClarityVS1,
//	})
//	s := gemstone.MustNewSurface(p.Size)
//	defer s.Close()
//
//	r := composite.New(asset.Static(nil)) // placeholder gem
//	if _, err := r.Render(p, s); err != nil {
//	    log.Fatal(err)
//	}
//	s.SavePNG("gem.png")
//
// # Grade Scales
//
// Every grading dimension has a fixed ordered scale: cut and clarity run
// worst to best, color runs colorless (D) to tinted (J). Unknown values rank
// 0 and never fail. The shader scalars CutQuality, ColorGrade and
// ClarityGrade are normalized over the best-first reference table, so the
// best cut and the best clarity map to 1.
//
// # Logging
//
// gemstone is silent by default. Call SetLogger to route diagnostics to a
// slog.Logger; sub-packages share it.
package gemstone
