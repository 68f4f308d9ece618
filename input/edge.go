// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input turns raw per-frame controller samples into the discrete
// modes and continuous quantities the rendering pipeline consumes.
package input

// EdgeSwitch converts a held boolean input into a discrete mode cycle:
// one physical press advances the value exactly once, modulo K, no matter
// how many frames the press spans. This is the debounce primitive behind
// the view-lock, skybox and eye-composition mode selectors.
//
// The zero value is not usable; construct with NewEdgeSwitch.
type EdgeSwitch struct {
	k        int
	latched  bool
	value    int
	onChange func(value int)
}

// NewEdgeSwitch creates a switch cycling through k states, starting at 0.
func NewEdgeSwitch(k int) *EdgeSwitch {
	if k < 1 {
		panic("input: EdgeSwitch needs at least one state")
	}
	return &EdgeSwitch{k: k}
}

// SetOnChange installs a hook invoked on each press edge, after the value
// has advanced. The view-lock switch uses it to capture the reference
// pose decomposition at the exact transition instant.
func (s *EdgeSwitch) SetOnChange(fn func(value int)) {
	s.onChange = fn
}

// Sample feeds one frame's pressed state. changed is true only on the
// press edge; while the press is held, and on release, nothing is
// emitted.
func (s *EdgeSwitch) Sample(pressed bool) (value int, changed bool) {
	switch {
	case pressed && !s.latched:
		s.latched = true
		s.value = (s.value + 1) % s.k
		if s.onChange != nil {
			s.onChange(s.value)
		}
		return s.value, true
	case !pressed && s.latched:
		s.latched = false
	}
	return s.value, false
}

// Value returns the current mode value without sampling.
func (s *EdgeSwitch) Value() int {
	return s.value
}

// latch is a bare press-edge detector for inputs that trigger an action
// rather than cycle a mode (the lag/delay adjustment triggers).
type latch struct {
	held bool
}

// rising reports true exactly once per press, on the press edge.
func (l *latch) rising(pressed bool) bool {
	if pressed && !l.held {
		l.held = true
		return true
	}
	if !pressed {
		l.held = false
	}
	return false
}
