// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"github.com/gogpu/hmd/pose"
	"github.com/gogpu/hmd/track"
)

// triggerThreshold is the analog trigger deflection treated as a press.
const triggerThreshold = 0.5

// Controls aggregates every input-derived mode and quantity the pipeline
// reads, and applies one tracking sample per frame to all of them.
//
// Bindings:
//
//	A button           cycle eye-composition mode (4 states)
//	B button           cycle view-lock mode (4 states)
//	X button           cycle skybox mode (3 states)
//	left stick X       cube scale, 1/10 step, clamped to [-1, 1]
//	left thumb click   reset cube scale
//	right stick X      IOD offset, 1/100 step
//	right thumb click  re-center IOD offset
//	right index pull   lag +1 frame (wraps 59 -> 0)
//	left index pull    lag -1 frame (wraps 0 -> 59)
//	right grip pull    delay +1 frame (saturates at 10)
//	left grip pull     delay -1 frame (saturates at 0)
//
// All state is owned by the frame loop; Controls is not safe for
// concurrent use.
type Controls struct {
	ViewLock *EdgeSwitch
	Skybox   *EdgeSwitch
	EyeComp  *EdgeSwitch

	CubeScale *AxisAccumulator
	IODOffset *AxisAccumulator

	lag   int
	delay int

	lagUp, lagDown     latch
	delayUp, delayDown latch
}

// NewControls creates the full control set with all modes and
// accumulators at their baselines.
func NewControls() *Controls {
	return &Controls{
		ViewLock:  NewEdgeSwitch(4),
		Skybox:    NewEdgeSwitch(3),
		EyeComp:   NewEdgeSwitch(4),
		CubeScale: NewClampedAxisAccumulator(0.1, -1, 1),
		IODOffset: NewAxisAccumulator(0.01),
	}
}

// Apply feeds one frame's tracking input sample to every switch and
// accumulator.
func (c *Controls) Apply(st track.State) {
	c.ViewLock.Sample(st.Pressed(track.ButtonB))
	c.Skybox.Sample(st.Pressed(track.ButtonX))
	c.EyeComp.Sample(st.Pressed(track.ButtonA))

	c.CubeScale.Sample(st.Thumbstick[track.HandLeft].X())
	c.CubeScale.SampleReset(st.Pressed(track.ButtonLThumb))

	c.IODOffset.Sample(st.Thumbstick[track.HandRight].X())
	c.IODOffset.SampleReset(st.Pressed(track.ButtonRThumb))

	if c.lagUp.rising(st.IndexTrigger[track.HandRight] > triggerThreshold) {
		c.lag = pose.WrapLag(c.lag, 1)
	}
	if c.lagDown.rising(st.IndexTrigger[track.HandLeft] > triggerThreshold) {
		c.lag = pose.WrapLag(c.lag, -1)
	}

	if c.delayUp.rising(st.HandTrigger[track.HandRight] > triggerThreshold) {
		c.delay = pose.ClampDelay(c.delay + 1)
	}
	if c.delayDown.rising(st.HandTrigger[track.HandLeft] > triggerThreshold) {
		c.delay = pose.ClampDelay(c.delay - 1)
	}
}

// Lag returns the current lag offset in frames, always in [0, 60).
func (c *Controls) Lag() int {
	return c.lag
}

// Delay returns the current frame-hold delay, always in [0, 10].
func (c *Controls) Delay() int {
	return c.delay
}
