// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package controls holds the viewer's grading selection and the edits its
// keys apply.
package controls

import (
	"fmt"
	"math"

	"github.com/gogpu/gemstone"
)

const caratStep = 0.1

// State is the viewer's grading selection and active backend index.
type State struct {
	Input   gemstone.GradeInput
	Backend int
}

// New returns the starting selection: 1 ct, Excellent, D, VS1.
func New() State {
	return State{Input: gemstone.GradeInput{
		Carat:   gemstone.DefaultCarat,
		Cut:     gemstone.CutExcellent,
		Color:   gemstone.ColorD,
		Clarity: gemstone.ClarityVS1,
	}}
}

// SetCut selects the cut at index i of the worst-to-best scale.
func (v *State) SetCut(i int) {
	scale := gemstone.CutScale()
	if i >= 0 && i < len(scale) {
		v.Input.Cut = scale[i]
	}
}

// ShiftColor moves d steps along the color scale, stopping at either end.
func (v *State) ShiftColor(d int) {
	v.Input.Color = gemstone.Color(clampInt(int(v.Input.Color)+d, 0, gemstone.ColorLevels-1))
}

// ShiftClarity moves d steps along the clarity scale, stopping at either end.
func (v *State) ShiftClarity(d int) {
	v.Input.Clarity = gemstone.Clarity(clampInt(int(v.Input.Clarity)+d, 0, gemstone.ClarityLevels-1))
}

// ShiftCarat moves the carat by d steps, kept inside the accepted range and
// rounded to one decimal.
func (v *State) ShiftCarat(d int) {
	c := v.Input.Carat + float64(d)*caratStep
	c = math.Round(c*10) / 10
	v.Input.Carat = math.Max(gemstone.MinCarat, math.Min(gemstone.MaxCarat, c))
}

// NextBackend cycles through n backends.
func (v *State) NextBackend(n int) {
	v.Backend = (v.Backend + 1) % n
}

// Title is the window title describing the selection.
func (v State) Title(backend string) string {
	return fmt.Sprintf("gemviewer  %.1f ct  %s  %s  %s  [%s]",
		v.Input.Carat, v.Input.Cut, v.Input.Color, v.Input.Clarity, backend)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
