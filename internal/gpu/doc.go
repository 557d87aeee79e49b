// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu runs a single-dispatch WGSL compute program over a packed
// RGBA8 image using gogpu/wgpu's HAL.
//
// A [Program] binds three buffers: a uniform block, a read-only storage
// buffer holding the input texture and a read-write storage buffer that
// receives one packed pixel per invocation. The program must declare
//
//	@group(0) @binding(0) var<uniform> params: ...;
//	@group(0) @binding(1) var<storage, read> tex: array<u32>;
//	@group(0) @binding(2) var<storage, read_write> out_pixels: array<u32>;
//
// and an 8x8 workgroup entry point named "main". Pixels are packed with red
// in the low byte, see [Pack] and [Unpack].
//
// Build with the nogpu tag to drop the HAL dependency; only the packing
// helpers remain.
package gpu
