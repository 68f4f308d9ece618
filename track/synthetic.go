// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package track

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
)

// defaultBaselineIOD approximates a typical adult inter-pupillary
// distance in meters.
const defaultBaselineIOD float32 = 0.064

// Synthetic is a deterministic, hardware-free tracking source. The head
// sweeps a slow yaw arc with a gentle vertical bob and the controller
// orbits in front of the viewer, so every frame index maps to exactly one
// pose. Tests and the demo binary use it in place of a device session.
type Synthetic struct {
	// Script, when non-nil, supplies the input state per frame.
	Script func(frame uint64) State

	offsets  [pose.EyeCount]float32
	origin   mgl32.Vec3
	frame    uint64
	lastCtrl mgl32.Vec3
}

// NewSynthetic creates a synthetic source with centered eye offsets.
func NewSynthetic() *Synthetic {
	s := &Synthetic{}
	l, r := -defaultBaselineIOD/2, defaultBaselineIOD/2
	s.SetEyeOffsets(l, r)
	return s
}

// EyePoses returns the scripted head pose shifted by each eye's offset.
func (s *Synthetic) EyePoses(frame uint64) (Sample, error) {
	s.frame = frame
	t := float64(frame) / 90.0

	yaw := float32(0.4 * math.Sin(t))
	head := pose.Pose{
		Orientation: mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}),
		Position: mgl32.Vec3{
			0,
			1.6 + 0.02*float32(math.Sin(3*t)),
			0,
		}.Sub(s.origin),
	}

	var out Sample
	out.SampleTime = float64(frame) / 90.0
	for eye := pose.Left; eye < pose.EyeCount; eye++ {
		// The eye offset is applied in head space along the local X axis.
		local := mgl32.Vec3{s.offsets[eye], 0, 0}
		p := head
		p.Position = head.Position.Add(head.Orientation.Rotate(local))
		out.Poses[eye] = p
	}

	s.lastCtrl = mgl32.Vec3{
		0.3 * float32(math.Cos(2*t)),
		1.2,
		-0.5 + 0.1*float32(math.Sin(2*t)),
	}
	return out, nil
}

// ControllerPosition returns the scripted controller position for the
// most recently sampled frame.
func (s *Synthetic) ControllerPosition() mgl32.Vec3 {
	return s.lastCtrl
}

// Input returns the scripted input state, or a neutral state when no
// script is installed.
func (s *Synthetic) Input() (State, error) {
	if s.Script != nil {
		return s.Script(s.frame), nil
	}
	return State{}, nil
}

// SetEyeOffsets installs the per-eye horizontal offsets.
func (s *Synthetic) SetEyeOffsets(left, right float32) {
	s.offsets[pose.Left] = left
	s.offsets[pose.Right] = right
}

// BaselineIOD returns the synthetic hardware eye separation.
func (s *Synthetic) BaselineIOD() float32 {
	return defaultBaselineIOD
}

// Recenter shifts the tracking origin to the current head position.
func (s *Synthetic) Recenter() error {
	t := float64(s.frame) / 90.0
	s.origin = mgl32.Vec3{0, 0.02 * float32(math.Sin(3*t)), 0}
	return nil
}

// Close releases nothing; the synthetic source holds no hardware.
func (s *Synthetic) Close() error {
	return nil
}

var _ Source = (*Synthetic)(nil)
