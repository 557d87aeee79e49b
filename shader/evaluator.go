// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"image"

	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/gemstone/internal/parallel"
)

// ErrEvaluatorClosed is returned by Evaluate after Close.
var ErrEvaluatorClosed = errors.New("shader: evaluator closed")

// minBandRows keeps bands large enough that scheduling stays cheap.
const minBandRows = 8

// Evaluator runs the diamond program over every pixel of dst. Pixels the
// program discards, and every pixel when tex is nil, are left transparent.
// A zero Resolution in the uniforms defaults to the size of dst.
type Evaluator interface {
	Evaluate(tex *asset.Texture, u Uniforms, dst *image.NRGBA) error
	Close() error
}

// CPUEvaluator evaluates the program on the CPU, splitting rows into bands
// over a worker pool.
type CPUEvaluator struct {
	pool *parallel.WorkerPool
}

// NewCPUEvaluator returns an evaluator with the given number of workers.
// workers <= 0 uses GOMAXPROCS.
func NewCPUEvaluator(workers int) *CPUEvaluator {
	return &CPUEvaluator{pool: parallel.NewWorkerPool(workers)}
}

// Evaluate implements Evaluator.
func (e *CPUEvaluator) Evaluate(tex *asset.Texture, u Uniforms, dst *image.NRGBA) error {
	if e.pool == nil {
		return ErrEvaluatorClosed
	}
	clear(dst.Pix)
	if tex == nil {
		return nil
	}
	b := dst.Bounds()
	if u.Resolution == ([2]float64{}) {
		u.Resolution = [2]float64{float64(b.Dx()), float64(b.Dy())}
	}
	e.pool.Bands(b.Dy(), minBandRows, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
			shadeRow(tex, &u, y, row)
		}
	})
	return nil
}

// Close stops the worker pool. Close is idempotent.
func (e *CPUEvaluator) Close() error {
	if e.pool != nil {
		e.pool.Close()
		e.pool = nil
	}
	return nil
}

func shadeRow(tex *asset.Texture, u *Uniforms, y int, row []byte) {
	for x := 0; x*4 < len(row); x++ {
		uv, ok := u.QuadUV(x, y)
		if !ok {
			continue
		}
		c, ok := Shade(tex, uv, u)
		if !ok {
			continue
		}
		p := row[x*4 : x*4+4 : x*4+4]
		p[0] = toByte(c[0])
		p[1] = toByte(c[1])
		p[2] = toByte(c[2])
		p[3] = toByte(c[3])
	}
}

func toByte(v float64) uint8 {
	return uint8(clamp(v, 0, 1)*255 + 0.5)
}
