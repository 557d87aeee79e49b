// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogpu

package shader

import (
	"errors"
	"image"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gemstone/asset"
)

// ErrNoGPU is returned by the GPUEvaluator constructors in builds without GPU
// support.
var ErrNoGPU = errors.New("shader: built without GPU support")

// GPUEvaluator is unavailable in nogpu builds.
type GPUEvaluator struct{}

// NewGPUEvaluator always fails in nogpu builds.
func NewGPUEvaluator() (*GPUEvaluator, error) { return nil, ErrNoGPU }

// NewGPUEvaluatorWithDevice always fails in nogpu builds.
func NewGPUEvaluatorWithDevice(hal.Device, hal.Queue) (*GPUEvaluator, error) { return nil, ErrNoGPU }

// Evaluate implements Evaluator.
func (*GPUEvaluator) Evaluate(*asset.Texture, Uniforms, *image.NRGBA) error { return ErrNoGPU }

// Close implements Evaluator.
func (*GPUEvaluator) Close() error { return nil }
