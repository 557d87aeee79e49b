// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
)

// ColorMatrix is a 4x5 color transformation applied in straight-alpha space:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channel values are in [0, 255] during the transformation; the fifth
// column is a bias in the same units.
type ColorMatrix [20]float32

// Identity returns the matrix that leaves colors unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast returns a matrix remapping each color channel around mid-gray:
// (c - 128) * factor + 128. A factor of 1 is the identity, 0 is flat gray.
// Alpha is unchanged.
func Contrast(factor float64) ColorMatrix {
	f := float32(factor)
	offset := 128 * (1 - f)
	return ColorMatrix{
		f, 0, 0, 0, offset,
		0, f, 0, 0, offset,
		0, 0, f, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms the premultiplied image src into a new straight-alpha
// image of the same bounds.
func (m *ColorMatrix) Apply(src *image.RGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	w, h := b.Dx(), b.Dy()

	for y := range h {
		srow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for i := 0; i < len(srow); i += 4 {
			a := float32(srow[i+3])
			if a == 0 {
				continue
			}
			r := float32(srow[i+0]) * 255 / a
			g := float32(srow[i+1]) * 255 / a
			bl := float32(srow[i+2]) * 255 / a

			drow[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*bl + m[3]*a + m[4])
			drow[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*bl + m[8]*a + m[9])
			drow[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*bl + m[13]*a + m[14])
			drow[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*bl + m[18]*a + m[19])
		}
	}
	return dst
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
