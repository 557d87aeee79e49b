// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
)

const (
	labelBand = 32
	sheetGap  = 12
)

var sheetBackground = gg.Hex("#eceff3")

// writeSheet renders every cut grade with every selected backend into one
// labelled image: one row per backend, one column per cut.
func writeSheet(cfg config, src asset.Source, path string) error {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer func() { _ = source.Close() }()

	names := backends(cfg.backend)
	cuts := gemstone.CutScale()
	p0 := gemstone.Derive(cfg.input)
	cell := int(float64(p0.Size)*cfg.scale + 0.5)

	w := len(cuts)*(cell+sheetGap) + sheetGap
	h := len(names)*(cell+labelBand+sheetGap) + sheetGap
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(sheetBackground)
	dc.SetFont(source.Face(14))

	for row, name := range names {
		for col, cut := range cuts {
			in := cfg.input
			in.Cut = cut
			p := gemstone.Derive(in)

			s, err := render(cfg, src, name, p)
			if err != nil {
				return err
			}
			x := float64(sheetGap + col*(cell+sheetGap))
			y := float64(sheetGap + row*(cell+labelBand+sheetGap))
			dc.DrawImageEx(gg.ImageBufFromImage(s.Image()), gg.DrawImageOptions{X: x, Y: y})
			s.Close()

			dc.SetRGB(0.2, 0.22, 0.25)
			dc.DrawStringAnchored(fmt.Sprintf("%s / %s", name, cut), x+float64(cell)/2, y+float64(cell)+labelBand/2, 0.5, 0.5)
		}
	}
	return dc.SavePNG(path)
}
