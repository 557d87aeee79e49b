// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"time"

	"github.com/gogpu/gemstone"
)

// DefaultDamping is the fraction of the remaining distance covered per frame.
const DefaultDamping = 0.08

// RenderState is the damped state the program is evaluated with.
type RenderState struct {
	gemstone.Grades
	Time  float64 // seconds
	Frame uint64
}

// Smoother eases the grade scalars toward their targets with exponential
// smoothing, one step per rendered frame. A Smoother is owned by a single
// renderer and is not safe for concurrent use.
type Smoother struct {
	damping float64
	state   RenderState
}

// NewSmoother returns a smoother starting at zero. A damping outside (0,1]
// uses DefaultDamping.
func NewSmoother(damping float64) *Smoother {
	if !(damping > 0 && damping <= 1) {
		damping = DefaultDamping
	}
	return &Smoother{damping: damping}
}

// Damping returns the per-step factor.
func (s *Smoother) Damping() float64 { return s.damping }

// Step advances one frame toward target and dt further in time.
func (s *Smoother) Step(target gemstone.Grades, dt time.Duration) RenderState {
	target = target.Clamp()
	g := &s.state.Grades
	g.ColorGrade = ease(g.ColorGrade, target.ColorGrade, s.damping)
	g.CutQuality = ease(g.CutQuality, target.CutQuality, s.damping)
	g.ClarityGrade = ease(g.ClarityGrade, target.ClarityGrade, s.damping)
	if dt > 0 {
		s.state.Time += dt.Seconds()
	}
	s.state.Frame++
	return s.state
}

// Reset snaps the grades to g and restarts time.
func (s *Smoother) Reset(g gemstone.Grades) {
	s.state = RenderState{Grades: g.Clamp()}
}

// State returns the current state.
func (s *Smoother) State() RenderState { return s.state }

func ease(prev, target, k float64) float64 {
	return prev + (target-prev)*k
}
