// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gemviewer shows a diamond in a window and re-renders it as the
// grading attributes change.
//
// Keys: 1-4 cut, C/V color, K/L clarity, Up/Down carat, Tab backend.
package main

import (
	"context"
	"flag"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/gemstone/cmd/gemviewer/internal/controls"
	"github.com/gogpu/gemstone/composite"
	"github.com/gogpu/gemstone/shader"
)

var backdrop = color.RGBA{R: 0xec, G: 0xef, B: 0xf3, A: 0xff}

type game struct {
	state     controls.State
	renderers []gemstone.Renderer
	surface   *gemstone.Surface
	frame     *ebiten.Image
	title     string
}

func main() {
	assets := flag.String("assets", "public", "directory holding the gem texture")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gemstone.SetLogger(logger)

	// Both backends draw their fallback until the texture arrives.
	src := (&asset.Loader{FS: os.DirFS(*assets)}).Start(context.Background())

	sr := shader.New(src)
	defer func() { _ = sr.Close() }()

	s, err := gemstone.NewSurface(gemstone.SizeFromCarat(gemstone.DefaultCarat),
		gemstone.WithScale(deviceScale()))
	if err != nil {
		slog.Error("create surface", "err", err)
		os.Exit(1)
	}
	defer func() { _ = s.Close() }()

	g := &game{
		state:     controls.New(),
		renderers: []gemstone.Renderer{composite.New(src), sr},
		surface:   s,
	}

	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("gemviewer exited", "err", err)
		os.Exit(1)
	}
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(k) {
			g.state.SetCut(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.state.ShiftColor(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.state.ShiftColor(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.state.ShiftClarity(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.state.ShiftClarity(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.state.ShiftCarat(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.state.ShiftCarat(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.state.NextBackend(len(g.renderers))
	}

	r := g.renderers[g.state.Backend]
	if t := g.state.Title(r.Name()); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	if _, err := r.Render(gemstone.Derive(g.state.Input), g.surface); err != nil {
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	n := g.surface.PixelSize()
	if g.frame == nil || g.frame.Bounds().Dx() != n {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(n, n)
		g.surface.MarkDirty()
	}
	if g.surface.IsDirty() {
		g.frame.WritePixels(g.surface.Pixels())
		g.surface.ClearDirty()
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(sw-n)/2, float64(sh-n)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, &op)
}

// Layout implements ebiten.Game. The screen is kept at device resolution
// so the surface is shown one pixel to one pixel.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := deviceScale()
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}
