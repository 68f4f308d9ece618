// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
	"github.com/gogpu/hmd/track"
)

func TestControlsModeCycles(t *testing.T) {
	c := NewControls()

	press := func(b track.Button) {
		c.Apply(track.State{Buttons: b})
		c.Apply(track.State{})
	}

	press(track.ButtonB)
	press(track.ButtonB)
	if got := c.ViewLock.Value(); got != 2 {
		t.Errorf("view-lock value = %d after two B presses, want 2", got)
	}

	for i := 0; i < 3; i++ {
		press(track.ButtonX)
	}
	if got := c.Skybox.Value(); got != 0 {
		t.Errorf("skybox value = %d after three X presses, want 0 (mod 3)", got)
	}

	press(track.ButtonA)
	if got := c.EyeComp.Value(); got != 1 {
		t.Errorf("eye-composition value = %d after one A press, want 1", got)
	}
}

func TestControlsLagWraps(t *testing.T) {
	c := NewControls()

	pull := func(hand track.Hand) {
		var st track.State
		st.IndexTrigger[hand] = 1.0
		c.Apply(st)
		c.Apply(track.State{})
	}

	// Decrement from 0 wraps to the top of the window.
	pull(track.HandLeft)
	if got := c.Lag(); got != pose.Capacity-1 {
		t.Fatalf("lag = %d after decrement from 0, want %d", got, pose.Capacity-1)
	}

	// Increment from 59 wraps back to 0.
	pull(track.HandRight)
	if got := c.Lag(); got != 0 {
		t.Errorf("lag = %d after increment from %d, want 0", got, pose.Capacity-1)
	}
}

func TestControlsLagHeldTriggerStepsOnce(t *testing.T) {
	c := NewControls()

	var st track.State
	st.IndexTrigger[track.HandRight] = 1.0
	for i := 0; i < 10; i++ {
		c.Apply(st)
	}
	if got := c.Lag(); got != 1 {
		t.Errorf("lag = %d after 10-frame trigger hold, want 1", got)
	}
}

func TestControlsDelaySaturates(t *testing.T) {
	c := NewControls()

	pull := func(hand track.Hand) {
		var st track.State
		st.HandTrigger[hand] = 1.0
		c.Apply(st)
		c.Apply(track.State{})
	}

	// Delay saturates at the bounds instead of wrapping.
	pull(track.HandLeft)
	if got := c.Delay(); got != 0 {
		t.Fatalf("delay = %d after decrement from 0, want 0", got)
	}
	for i := 0; i < pose.MaxDelay+4; i++ {
		pull(track.HandRight)
	}
	if got := c.Delay(); got != pose.MaxDelay {
		t.Errorf("delay = %d after saturating increments, want %d", got, pose.MaxDelay)
	}
}

func TestControlsHalfPulledTriggerIgnored(t *testing.T) {
	c := NewControls()

	var st track.State
	st.IndexTrigger[track.HandRight] = 0.4
	c.Apply(st)
	if got := c.Lag(); got != 0 {
		t.Errorf("lag = %d after sub-threshold pull, want 0", got)
	}
}

func TestControlsAxes(t *testing.T) {
	c := NewControls()

	var st track.State
	st.Thumbstick[track.HandLeft] = mgl32.Vec2{1, 0}
	st.Thumbstick[track.HandRight] = mgl32.Vec2{-1, 0}
	c.Apply(st)

	if got := c.CubeScale.Value(); !approx(got, 0.1) {
		t.Errorf("cube scale = %v after one full-deflection frame, want 0.1", got)
	}
	if got := c.IODOffset.Value(); !approx(got, -0.01) {
		t.Errorf("IOD offset = %v after one full-deflection frame, want -0.01", got)
	}

	st.Buttons = track.ButtonLThumb | track.ButtonRThumb
	st.Thumbstick = [track.HandCount]mgl32.Vec2{}
	c.Apply(st)
	if c.CubeScale.Value() != 0 || c.IODOffset.Value() != 0 {
		t.Errorf("thumb resets left cube=%v iod=%v, want 0, 0",
			c.CubeScale.Value(), c.IODOffset.Value())
	}
}

func approx(got, want float32) bool {
	d := got - want
	return d > -1e-6 && d < 1e-6
}
