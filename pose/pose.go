// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pose

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Eye identifies one of the two stereo eyes. The pipeline always processes
// Left before Right within a frame.
type Eye int

const (
	// Left is eye index 0.
	Left Eye = iota
	// Right is eye index 1.
	Right

	// EyeCount is the number of stereo eyes.
	EyeCount
)

// String returns the eye name for logging.
func (e Eye) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Other returns the opposite eye. Used by the cross-eye composition mode.
func (e Eye) Other() Eye {
	if e == Left {
		return Right
	}
	return Left
}

// Pose is one orientation + position sample from tracking hardware for a
// single eye or controller at a single instant. Pose is an immutable value;
// the tracking source produces a fresh one per eye per frame.
type Pose struct {
	Orientation mgl32.Quat
	Position    mgl32.Vec3
}

// Identity returns the identity pose (no rotation, origin position).
func Identity() Pose {
	return Pose{Orientation: mgl32.QuatIdent()}
}

// Matrix returns the head-to-world transform for the pose:
// translation * rotation, matching the usual rigid-body convention.
// The inverse of this matrix is the view matrix.
func (p Pose) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	return t.Mul4(p.Orientation.Mat4())
}

// Reference is the rotation/translation decomposition of an inverse head
// pose, captured once at the instant a view-lock mode is entered and held
// unchanged until the mode changes again.
type Reference struct {
	Rotation mgl32.Mat3
	Position mgl32.Vec4
}

// IdentityReference returns a reference that composes to the identity view.
func IdentityReference() Reference {
	return Reference{
		Rotation: mgl32.Ident3(),
		Position: mgl32.Vec4{0, 0, 0, 1},
	}
}

// Decompose splits a transform into its rotation block and translation
// column. The argument is normally an inverse head pose (a view matrix).
func Decompose(m mgl32.Mat4) Reference {
	return Reference{
		Rotation: m.Mat3(),
		Position: m.Col(3),
	}
}
