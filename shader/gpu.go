// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package shader

import (
	"fmt"
	"image"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/gemstone/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// GPUEvaluator runs the WGSL program as a compute dispatch. When a dispatch
// fails the frame is evaluated on the CPU instead, and later frames keep
// using the CPU.
type GPUEvaluator struct {
	prog     *gpu.Program
	fallback *CPUEvaluator
	failed   bool
}

// NewGPUEvaluator opens a GPU device and compiles the program. It returns
// an error when no usable adapter exists; callers fall back to
// NewCPUEvaluator.
func NewGPUEvaluator() (*GPUEvaluator, error) {
	prog, err := gpu.Open("diamond", WGSLSource())
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	return &GPUEvaluator{prog: prog}, nil
}

// NewGPUEvaluatorWithDevice compiles the program on a device owned by the
// caller, typically the one a host window already renders with.
func NewGPUEvaluatorWithDevice(device hal.Device, queue hal.Queue) (*GPUEvaluator, error) {
	prog, err := gpu.NewProgram(device, queue, "diamond", WGSLSource())
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	return &GPUEvaluator{prog: prog}, nil
}

// Evaluate implements Evaluator.
func (e *GPUEvaluator) Evaluate(tex *asset.Texture, u Uniforms, dst *image.NRGBA) error {
	if e.prog == nil {
		return ErrEvaluatorClosed
	}
	if e.failed {
		return e.cpu().Evaluate(tex, u, dst)
	}
	clear(dst.Pix)
	if tex == nil {
		return nil
	}
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	if u.Resolution == ([2]float64{}) {
		u.Resolution = [2]float64{float64(w), float64(h)}
	}
	out, err := e.prog.Run(packUniforms(&u, tex, w, h), gpu.Pack(tex.Image().Pix), uint32(w), uint32(h)) //nolint:gosec // image sizes fit
	if err != nil {
		gemstone.Logger().Warn("shader: GPU dispatch failed, using CPU", "err", err)
		e.failed = true
		return e.cpu().Evaluate(tex, u, dst)
	}
	gpu.Unpack(out, dst.Pix)
	return nil
}

func (e *GPUEvaluator) cpu() *CPUEvaluator {
	if e.fallback == nil {
		e.fallback = NewCPUEvaluator(0)
	}
	return e.fallback
}

// Close releases the pipeline and device. Close is idempotent.
func (e *GPUEvaluator) Close() error {
	if e.prog != nil {
		e.prog.Close()
		e.prog = nil
	}
	if e.fallback != nil {
		return e.fallback.Close()
	}
	return nil
}
