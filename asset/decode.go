// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	// Registered decoders for gem images.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Decode errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("asset: empty data")
)

// Decode reads a PNG, JPEG or WebP image and converts it to a texture no
// larger than maxSize on either edge.
func Decode(r io.Reader, maxSize int) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("asset: decode: %w", err)
	}
	t := FromImage(img, maxSize)
	if t == nil {
		return nil, fmt.Errorf("asset: decode %s: %w", format, ErrEmptyData)
	}
	return t, nil
}

// DecodeBytes is like Decode for an in-memory image.
func DecodeBytes(data []byte, maxSize int) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), maxSize)
}
