// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gemdemo renders diamonds from grading attributes to PNG files.
//
//	gemdemo -carat 1.5 -cut "very good" -color G -clarity VS2 -out ./out
//	gemdemo -sheet -assets ./public
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/gemstone/composite"
	"github.com/gogpu/gemstone/shader"
)

type config struct {
	input   gemstone.GradeInput
	backend string
	assets  string
	out     string
	sheet   bool
	frames  int
	gpu     bool
	scale   float64
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("gemdemo failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("gemdemo", flag.ContinueOnError)
	var (
		carat   = fs.Float64("carat", gemstone.DefaultCarat, "carat weight")
		cut     = fs.String("cut", "Excellent", "cut grade (Fair, Good, Very Good, Excellent)")
		color   = fs.String("color", "D", "color grade (D..J)")
		clarity = fs.String("clarity", "VS1", "clarity grade (I1..FL)")
		backend = fs.String("backend", "both", "renderer: composite, shader or both")
		assets  = fs.String("assets", "", "directory holding the gem texture")
		out     = fs.String("out", ".", "output directory")
		sheet   = fs.Bool("sheet", false, "also write a contact sheet of every cut grade")
		frames  = fs.Int("frames", 60, "shader frames rendered before saving")
		gpu     = fs.Bool("gpu", false, "evaluate the shader on the GPU when available")
		scale   = fs.Float64("scale", 1, "device pixel ratio")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gemstone.SetLogger(logger)

	cfg := config{
		input:   gemstone.GradeInput{Carat: *carat},
		backend: *backend,
		assets:  *assets,
		out:     *out,
		sheet:   *sheet,
		frames:  max(*frames, 1),
		gpu:     *gpu,
		scale:   *scale,
	}
	var ok bool
	// Unknown grades still render, at the lowest rank.
	if cfg.input.Cut, ok = gemstone.ParseCut(*cut); !ok {
		slog.Warn("unknown cut, using lowest grade", "cut", *cut)
	}
	if cfg.input.Color, ok = gemstone.ParseColor(*color); !ok {
		slog.Warn("unknown color, using lowest rank", "color", *color)
	}
	if cfg.input.Clarity, ok = gemstone.ParseClarity(*clarity); !ok {
		slog.Warn("unknown clarity, using lowest grade", "clarity", *clarity)
	}
	switch cfg.backend {
	case "composite", "shader", "both":
	default:
		return config{}, fmt.Errorf("gemdemo: unknown backend %q", cfg.backend)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config) error {
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}
	src := loadTexture(ctx, cfg.assets)

	p := gemstone.Derive(cfg.input)
	slog.Info("derived parameters",
		"size", p.Size, "contrast", p.ContrastGain,
		"cut", p.CutQuality, "color", p.ColorGrade, "clarity", p.ClarityGrade)

	var errs []error
	for _, name := range backends(cfg.backend) {
		path := filepath.Join(cfg.out, "diamond-"+name+".png")
		if err := renderFile(cfg, src, name, p, path); err != nil {
			errs = append(errs, err)
			continue
		}
		slog.Info("saved", "backend", name, "path", path)
	}
	if cfg.sheet {
		path := filepath.Join(cfg.out, "sheet.png")
		if err := writeSheet(cfg, src, path); err != nil {
			errs = append(errs, err)
		} else {
			slog.Info("saved contact sheet", "path", path)
		}
	}
	return errors.Join(errs...)
}

func backends(sel string) []string {
	if sel == "both" {
		return []string{"composite", "shader"}
	}
	return []string{sel}
}

// loadTexture resolves the gem texture from dir. A missing texture is not
// an error: both backends have a fallback.
func loadTexture(ctx context.Context, dir string) asset.Source {
	if dir == "" {
		return asset.Static(nil)
	}
	l := &asset.Loader{FS: os.DirFS(dir)}
	tex, err := l.Load(ctx)
	if err != nil {
		slog.Warn("no gem texture, using fallback", "dir", dir, "err", err)
		return asset.Static(nil)
	}
	return asset.Static(tex)
}

// newRenderer builds the named backend. The returned func releases it.
func newRenderer(cfg config, src asset.Source, name string) (gemstone.Renderer, func()) {
	if name == "composite" {
		return composite.New(src), func() {}
	}
	opts := []shader.Option{shader.WithClock(frameClock(time.Second / 60))}
	if cfg.gpu {
		if e, err := shader.NewGPUEvaluator(); err != nil {
			slog.Warn("GPU unavailable, evaluating on CPU", "err", err)
		} else {
			opts = append(opts, shader.WithEvaluator(e))
		}
	}
	r := shader.New(src, opts...)
	return r, func() { _ = r.Close() }
}

// frameClock returns a clock that advances a fixed step per reading, so
// saved frames do not depend on machine speed.
func frameClock(step time.Duration) func() time.Time {
	var now time.Time
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// render draws p with the named backend, running enough frames for the
// shader smoothing to settle.
func render(cfg config, src asset.Source, name string, p gemstone.VisualParameters) (*gemstone.Surface, error) {
	s, err := gemstone.NewSurface(p.Size, gemstone.WithScale(cfg.scale))
	if err != nil {
		return nil, err
	}
	r, release := newRenderer(cfg, src, name)
	defer release()

	frames := 1
	if name == "shader" {
		frames = cfg.frames
	}
	for i := 0; i < frames; i++ {
		if _, err := r.Render(p, s); err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return s, nil
}

func renderFile(cfg config, src asset.Source, name string, p gemstone.VisualParameters, path string) error {
	s, err := render(cfg, src, name, p)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SavePNG(path)
}
