// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filter provides the color-matrix filter used by the compositing
// contrast pass.
//
// Filters never run in place: Apply reads a premultiplied source and writes
// a fresh straight-alpha destination, so a canvas can be filtered and then
// blended back onto itself without reading pixels it has already written.
package filter
