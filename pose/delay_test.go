// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pose

import (
	"testing"
)

func TestDelayGateStepFunction(t *testing.T) {
	// With delay 3, poses P0..P3 on four consecutive frames must display
	// as P0, P0, P0, P3: held for three frames, refreshed on the fourth.
	var g DelayGate
	want := []int{0, 0, 0, 3}
	for i := 0; i < 4; i++ {
		got := g.Select(stamp(i), 3)
		if got != stamp(want[i]) {
			t.Fatalf("frame %d: Select = %v, want stamp(%d)", i, got, want[i])
		}
	}
}

func TestDelayGateDisabled(t *testing.T) {
	var g DelayGate
	for i := 0; i < 5; i++ {
		if got := g.Select(stamp(i), 0); got != stamp(i) {
			t.Fatalf("frame %d: disabled gate returned %v, want live stamp(%d)", i, got, i)
		}
	}
}

func TestDelayGateReenableRefreshes(t *testing.T) {
	var g DelayGate

	// Hold through part of a cycle, disable, then re-enable: the gate must
	// capture fresh, not replay the stale held pose.
	g.Select(stamp(0), 3)
	g.Select(stamp(1), 3)
	g.Select(stamp(2), 0)
	if got := g.Select(stamp(3), 3); got != stamp(3) {
		t.Errorf("re-enabled gate returned %v, want fresh stamp(3)", got)
	}
}

func TestDelayGatePerEyeIndependence(t *testing.T) {
	var left, right DelayGate

	// Offset the right eye by one frame; each gate must keep its own
	// hold phase.
	left.Select(stamp(0), 2)
	if got := right.Select(stamp(10), 2); got != stamp(10) {
		t.Fatalf("right frame 0 = %v, want stamp(10)", got)
	}
	if got := left.Select(stamp(1), 2); got != stamp(0) {
		t.Errorf("left frame 1 = %v, want held stamp(0)", got)
	}
	if got := right.Select(stamp(11), 2); got != stamp(10) {
		t.Errorf("right frame 1 = %v, want held stamp(10)", got)
	}
}

func TestDelayGateOneIsPassthrough(t *testing.T) {
	var g DelayGate
	for i := 0; i < 4; i++ {
		if got := g.Select(stamp(i), 1); got != stamp(i) {
			t.Fatalf("frame %d: delay-1 gate returned %v, want stamp(%d)", i, got, i)
		}
	}
}

func TestClampDelay(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{7, 7},
		{MaxDelay, MaxDelay},
		{MaxDelay + 5, MaxDelay},
	}
	for _, tt := range tests {
		if got := ClampDelay(tt.in); got != tt.want {
			t.Errorf("ClampDelay(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
