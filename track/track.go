// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package track defines the tracking-hardware collaborator contract.
//
// The pipeline consumes tracking data through the Source interface and
// never talks to device SDKs directly. A Source is sampled exactly once
// per frame; all returned values are valid for that frame only.
package track

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
)

// Button is a bitmask of controller buttons.
type Button uint32

const (
	// ButtonA cycles the eye-composition mode.
	ButtonA Button = 1 << iota
	// ButtonB cycles the view-lock mode.
	ButtonB
	// ButtonX cycles the skybox mode.
	ButtonX
	// ButtonY is unbound.
	ButtonY
	// ButtonLThumb resets the cube scale.
	ButtonLThumb
	// ButtonRThumb re-centers the IOD offset.
	ButtonRThumb
)

// Hand indexes a controller hand.
type Hand int

const (
	// HandLeft is hand index 0.
	HandLeft Hand = iota
	// HandRight is hand index 1.
	HandRight

	// HandCount is the number of tracked hands.
	HandCount
)

// State is one frame's controller input sample.
type State struct {
	Buttons      Button
	Thumbstick   [HandCount]mgl32.Vec2
	IndexTrigger [HandCount]float32
	HandTrigger  [HandCount]float32
}

// Pressed reports whether every button in b is down.
func (s State) Pressed(b Button) bool {
	return s.Buttons&b == b
}

// Sample carries the per-eye poses predicted for one display frame,
// together with the sensor sample time the compositor wants back at
// submission for latency measurement.
type Sample struct {
	Poses      [pose.EyeCount]pose.Pose
	SampleTime float64 // seconds, tracking clock
}

// Source supplies tracking data once per frame.
//
// EyePoses and Input may fail transiently; the pipeline treats a failure
// as "no update this frame" and retains the previous state. Construction
// failures are fatal and belong to the Source implementation.
type Source interface {
	// EyePoses returns both eye poses predicted for the given frame index.
	EyePoses(frame uint64) (Sample, error)

	// ControllerPosition returns the tracked controller position used for
	// cursor rendering.
	ControllerPosition() mgl32.Vec3

	// Input returns the current controller button/axis state.
	Input() (State, error)

	// SetEyeOffsets installs the per-eye horizontal offsets (meters) that
	// pose prediction applies around the head center. The offsets come
	// from the IOD clamp and are always symmetric about zero.
	SetEyeOffsets(left, right float32)

	// BaselineIOD returns the hardware-reported eye separation in meters.
	BaselineIOD() float32

	// Recenter re-establishes the current head pose as the tracking
	// origin.
	Recenter() error

	// Close releases the tracking session.
	Close() error
}
