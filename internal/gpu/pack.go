// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "encoding/binary"

// Pack converts RGBA8 bytes into the little-endian u32 words the program
// reads, red in the low byte. A trailing partial pixel is ignored.
func Pack(rgba []byte) []byte {
	n := len(rgba) / 4
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		s := rgba[i*4 : i*4+4 : i*4+4]
		packed := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		binary.LittleEndian.PutUint32(out[i*4:], packed)
	}
	return out
}

// Unpack writes packed words back as RGBA8 bytes into dst and returns the
// number of pixels written.
func Unpack(packed, dst []byte) int {
	n := min(len(packed), len(dst)) / 4
	for i := 0; i < n; i++ {
		v := binary.LittleEndian.Uint32(packed[i*4:])
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(v)       //nolint:gosec // low byte
		d[1] = uint8(v >> 8)  //nolint:gosec // masked by truncation
		d[2] = uint8(v >> 16) //nolint:gosec // masked by truncation
		d[3] = uint8(v >> 24)
	}
	return n
}
