// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// AxisAccumulator integrates a continuous analog axis into a persistent
// value: each frame the axis reads non-zero, value += axis*scale, then
// the value is clamped to [min, max] when a range is configured.
//
// A reset trigger snaps the value back to the zero baseline. The reset is
// level-triggered (it fires every frame the trigger reads true); since
// resetting is idempotent this is observably identical to an edge reset
// while held.
type AxisAccumulator struct {
	value  float32
	scale  float32
	min    float32
	max    float32
	ranged bool
}

// NewAxisAccumulator creates an unranged accumulator. scale is applied to
// every raw axis sample (e.g. 0.01 for a 1/100 step per unit deflection).
func NewAxisAccumulator(scale float32) *AxisAccumulator {
	return &AxisAccumulator{scale: scale}
}

// NewClampedAxisAccumulator creates an accumulator whose value is held in
// [min, max] at every observation point.
func NewClampedAxisAccumulator(scale, min, max float32) *AxisAccumulator {
	return &AxisAccumulator{scale: scale, min: min, max: max, ranged: true}
}

// Sample integrates one frame's axis reading and returns the new value.
func (a *AxisAccumulator) Sample(axis float32) float32 {
	if axis != 0 {
		a.value += axis * a.scale
		if a.ranged {
			if a.value < a.min {
				a.value = a.min
			}
			if a.value > a.max {
				a.value = a.max
			}
		}
	}
	return a.value
}

// SampleReset feeds one frame's reset-trigger state; while true the value
// sits at the baseline.
func (a *AxisAccumulator) SampleReset(pressed bool) {
	if pressed {
		a.value = 0
	}
}

// Value returns the accumulated value without sampling.
func (a *AxisAccumulator) Value() float32 {
	return a.value
}
