// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Capacity is the fixed depth of the pose history, in frames.
// A lag offset is always reduced modulo Capacity, so at 60 frames of
// history a one-second-old pose is the oldest reachable sample at
// typical HMD refresh rates.
const Capacity = 60

// History is a fixed-capacity sliding window of recent per-eye head
// transforms plus a parallel window of controller positions, used to
// serve N-frames-old poses for artificial-latency experiments.
//
// The rings are arena-backed: storage is allocated once at construction
// and pre-filled with identity transforms, so every index is valid from
// the first frame and no per-frame allocation occurs. A push overwrites
// the oldest entry; the window length is therefore invariant at Capacity.
//
// History is owned by the frame loop and is not safe for concurrent use.
type History struct {
	eyes  [EyeCount][Capacity]mgl32.Mat4
	heads [EyeCount]int

	ctrl     [Capacity]mgl32.Vec3
	ctrlHead int
}

// NewHistory creates a history pre-filled with identity transforms and
// zero controller positions.
func NewHistory() *History {
	h := &History{}
	for e := range h.eyes {
		for i := range h.eyes[e] {
			h.eyes[e][i] = mgl32.Ident4()
		}
	}
	return h
}

// Push records one eye's head transform for the current frame, evicting
// the oldest entry.
func (h *History) Push(eye Eye, m mgl32.Mat4) {
	h.eyes[eye][h.heads[eye]] = m
	h.heads[eye] = (h.heads[eye] + 1) % Capacity
}

// At returns the transform lag frames old for the given eye. lag 0 is the
// most recently pushed transform. lag must be in [0, Capacity); the caller
// keeps offsets in range with WrapLag, so a violation is a programming
// defect and panics.
func (h *History) At(eye Eye, lag int) mgl32.Mat4 {
	if lag < 0 || lag >= Capacity {
		panic(fmt.Sprintf("pose: lag offset %d out of range [0,%d)", lag, Capacity))
	}
	idx := (h.heads[eye] - 1 - lag + 2*Capacity) % Capacity
	return h.eyes[eye][idx]
}

// PushController records the tracked controller position for the current
// frame, evicting the oldest entry.
func (h *History) PushController(p mgl32.Vec3) {
	h.ctrl[h.ctrlHead] = p
	h.ctrlHead = (h.ctrlHead + 1) % Capacity
}

// ControllerAt returns the controller position lag frames old, indexed
// identically to At. The cursor is lagged together with the head pose so
// that the rendered hand matches the displayed view.
func (h *History) ControllerAt(lag int) mgl32.Vec3 {
	if lag < 0 || lag >= Capacity {
		panic(fmt.Sprintf("pose: lag offset %d out of range [0,%d)", lag, Capacity))
	}
	idx := (h.ctrlHead - 1 - lag + 2*Capacity) % Capacity
	return h.ctrl[idx]
}

// WrapLag applies a signed step to a lag offset with modulo wrap-around:
// incrementing from Capacity-1 yields 0 and decrementing from 0 yields
// Capacity-1. Wrapping, not saturation, keeps the offset a valid History
// index by construction.
func WrapLag(lag, delta int) int {
	lag = (lag + delta) % Capacity
	if lag < 0 {
		lag += Capacity
	}
	return lag
}
