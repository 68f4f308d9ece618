// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view composes per-eye view matrices under the selectable
// view-lock policies and owns the inter-ocular-distance clamp.
package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
)

// LockMode selects which components of the rendered view track live head
// motion and which stay pinned to the reference captured at mode entry.
type LockMode int

const (
	// Free tracks the live head pose in full.
	Free LockMode = iota
	// PositionLocked tracks live orientation with the position pinned.
	PositionLocked
	// RotationLocked tracks live position with the orientation pinned.
	RotationLocked
	// FullyLocked pins both; the scene appears frozen.
	FullyLocked

	// LockModeCount is the number of view-lock modes; the mode switch
	// cycles through them in declaration order.
	LockModeCount
)

// String returns the mode name for logging.
func (m LockMode) String() string {
	switch m {
	case Free:
		return "free"
	case PositionLocked:
		return "position-locked"
	case RotationLocked:
		return "rotation-locked"
	case FullyLocked:
		return "fully-locked"
	}
	return "invalid"
}

// Compose builds the view matrix for one eye under the given lock policy.
//
// live is the eye's effective head-to-world transform for this frame
// (after any lag/delay substitution); ref is the inverse-pose
// decomposition captured at the last mode transition. The reference is
// used as captured, never recomputed, so FullyLocked output is
// bit-identical to the view at the capture instant no matter how the
// live pose moves afterwards.
func Compose(mode LockMode, live mgl32.Mat4, ref pose.Reference) mgl32.Mat4 {
	switch mode {
	case PositionLocked:
		v := live.Inv()
		v.SetCol(3, ref.Position)
		return v
	case RotationLocked:
		v := ref.Rotation.Mat4()
		v.SetCol(3, live.Inv().Col(3))
		return v
	case FullyLocked:
		v := ref.Rotation.Mat4()
		v.SetCol(3, ref.Position)
		return v
	default:
		return live.Inv()
	}
}
