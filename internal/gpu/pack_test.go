// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPackLayout(t *testing.T) {
	packed := Pack([]byte{0x11, 0x22, 0x33, 0x44, 1, 2, 3, 4})
	if len(packed) != 8 {
		t.Fatalf("len(Pack()) = %d, want 8", len(packed))
	}
	if got := binary.LittleEndian.Uint32(packed); got != 0x44332211 {
		t.Errorf("word 0 = %#x, want 0x44332211", got)
	}
	if got := binary.LittleEndian.Uint32(packed[4:]); got != 0x04030201 {
		t.Errorf("word 1 = %#x, want 0x04030201", got)
	}
}

func TestPackDropsPartialPixel(t *testing.T) {
	if got := len(Pack([]byte{1, 2, 3, 4, 5, 6})); got != 4 {
		t.Errorf("len(Pack(6 bytes)) = %d, want 4", got)
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	src := []byte{0, 0, 0, 0, 255, 128, 64, 32, 9, 8, 7, 6}
	dst := make([]byte, len(src))
	if n := Unpack(Pack(src), dst); n != 3 {
		t.Fatalf("Unpack() = %d pixels, want 3", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("Unpack(Pack(x)) = %v, want %v", dst, src)
	}
}

func TestUnpackShortDestination(t *testing.T) {
	packed := Pack([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	dst := make([]byte, 4)
	if n := Unpack(packed, dst); n != 1 {
		t.Errorf("Unpack() = %d, want 1", n)
	}
	if !bytes.Equal(dst, []byte{1, 2, 3, 4}) {
		t.Errorf("dst = %v", dst)
	}
}
