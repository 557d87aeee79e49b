// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gemstone/asset"
	"github.com/gogpu/naga"
)

//go:embed shaders/diamond.wgsl
var diamondWGSL string

// uniformSize is the byte size of the WGSL Params block.
const uniformSize = 64

// WGSLSource returns the compute program that evaluates the diamond on the
// GPU. It computes the same function as Shade.
func WGSLSource() string { return diamondWGSL }

// CompileSPIRV translates the program to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(diamondWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: compile diamond program: %w", err)
	}
	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// packUniforms lays u out as the WGSL Params block for a w x h output.
func packUniforms(u *Uniforms, tex *asset.Texture, w, h int) []byte {
	b := make([]byte, 0, uniformSize)
	f32 := func(v float64) { b = binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(v))) }
	u32 := func(v int) { b = binary.LittleEndian.AppendUint32(b, uint32(v)) } //nolint:gosec // image sizes fit

	f32(u.ColorGrade)
	f32(u.CutQuality)
	f32(u.ClarityGrade)
	f32(u.Time)
	f32(u.Texel[0])
	f32(u.Texel[1])
	f32(u.Resolution[0])
	f32(u.Resolution[1])
	u32(tex.Width())
	u32(tex.Height())
	u32(w)
	u32(h)
	f32(u.Fit)
	f32(0)
	f32(0)
	f32(0)
	return b
}
