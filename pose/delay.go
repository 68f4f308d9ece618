// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pose

import "github.com/go-gl/mathgl/mgl32"

// MaxDelay is the largest frame-hold delay the gate accepts.
const MaxDelay = 10

// DelayGate holds one eye's pose constant across consecutive frames,
// turning the displayed pose stream into a step function: with a delay of
// N the output refreshes once every N frames instead of every frame.
//
// Each eye owns an independent gate; the delay count itself is shared
// across eyes by the caller. The zero value is ready for use.
type DelayGate struct {
	counter int
	held    mgl32.Mat4
}

// Select feeds the eye's live transform for this frame and returns the
// transform to display. A delay of 0 (or less) disables the gate: the
// live transform passes straight through and the hold counter resets so
// that re-enabling the delay starts from a fresh capture.
func (g *DelayGate) Select(live mgl32.Mat4, delay int) mgl32.Mat4 {
	if delay <= 0 {
		g.counter = 0
		g.held = live
		return live
	}
	if g.counter == 0 {
		g.held = live
	}
	out := g.held
	g.counter++
	if g.counter >= delay {
		g.counter = 0
	}
	return out
}

// ClampDelay saturates a delay count to [0, MaxDelay]. Unlike lag offsets,
// delay counts saturate rather than wrap: the boundary values are usable
// operating points, not ring indices.
func ClampDelay(delay int) int {
	if delay < 0 {
		return 0
	}
	if delay > MaxDelay {
		return MaxDelay
	}
	return delay
}
