// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

// Bounds for the effective inter-ocular distance in meters. The lower
// bound is negative on purpose: a small negative IOD swaps the eyes'
// disparity, which is one of the perceptual conditions the offset control
// exists to produce.
const (
	MinIOD float32 = -0.1
	MaxIOD float32 = 0.3
)

// EyeOffsets clamps baseline+offset to the effective IOD range and
// splits it into the two per-eye horizontal offsets. The halves are
// symmetric about zero and sum (right - left) to the effective IOD.
func EyeOffsets(baseline, offset float32) (left, right, effective float32) {
	effective = baseline + offset
	if effective < MinIOD {
		effective = MinIOD
	}
	if effective > MaxIOD {
		effective = MaxIOD
	}
	return -effective / 2, effective / 2, effective
}
