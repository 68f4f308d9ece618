// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pipeline orchestrates the per-frame stereo render loop: pose
// acquisition, history and delay substitution, view composition, scene
// dispatch and swap-chain submission.
//
// The pipeline is strictly synchronous. One call to Frame runs one
// complete frame: the left eye is always processed before the right, and
// the call does not return until the frame has been committed, submitted
// and mirrored. All mutable state lives in the owned State value; nothing
// here is safe for concurrent use.
package pipeline

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/compositor"
	"github.com/gogpu/hmd/input"
	"github.com/gogpu/hmd/internal/logx"
	"github.com/gogpu/hmd/pose"
	"github.com/gogpu/hmd/scene"
	"github.com/gogpu/hmd/track"
	"github.com/gogpu/hmd/view"
)

// Eye-composition modes, cycled by the A button.
const (
	// ComposeBoth renders both eyes normally.
	ComposeBoth = iota
	// ComposeLeftOnly renders the left eye and suppresses the right.
	ComposeLeftOnly
	// ComposeRightOnly renders the right eye and suppresses the left.
	ComposeRightOnly
	// ComposeCrossed renders each viewport with the other eye's pose and
	// content. Submission order and viewports are unchanged; only the
	// source eye is swapped.
	ComposeCrossed
)

// Config holds the projection parameters for both eyes.
type Config struct {
	// FOVY is the vertical field of view in radians.
	FOVY float32
	// Near and Far are the clip plane distances in meters.
	Near, Far float32
}

// defaults close to a desktop HMD's symmetric-frustum approximation.
func (c Config) withDefaults() Config {
	if c.FOVY == 0 {
		c.FOVY = mgl32.DegToRad(90)
	}
	if c.Near == 0 {
		c.Near = 0.2
	}
	if c.Far == 0 {
		c.Far = 1000
	}
	return c
}

// State is the mutable per-frame state the pipeline owns. It is exposed
// read-only through accessors for logging and tests; only Frame mutates
// it.
type State struct {
	frame      uint64
	sample     track.Sample
	haveSample bool

	liveLeft mgl32.Mat4
	ref      pose.Reference

	history  *pose.History
	gates    [pose.EyeCount]pose.DelayGate
	controls *input.Controls
}

// Frame returns the index of the next frame to run.
func (s *State) Frame() uint64 { return s.frame }

// Reference returns the view-lock reference captured at the last mode
// transition.
func (s *State) Reference() pose.Reference { return s.ref }

// Controls returns the input control set.
func (s *State) Controls() *input.Controls { return s.controls }

// Stereo runs the stereo render loop against its collaborators.
type Stereo struct {
	source   track.Source
	comp     compositor.Compositor
	renderer scene.Renderer

	proj mgl32.Mat4

	state State
	log   *slog.Logger
}

// New wires a pipeline to its collaborators. The projection matrix is
// derived once from the compositor's per-eye extent; compositors report a
// fixed extent for their lifetime.
func New(source track.Source, comp compositor.Compositor, renderer scene.Renderer, cfg Config) (*Stereo, error) {
	if source == nil {
		return nil, fmt.Errorf("pipeline: nil tracking source")
	}
	if comp == nil {
		return nil, fmt.Errorf("pipeline: nil compositor")
	}
	if renderer == nil {
		return nil, fmt.Errorf("pipeline: nil scene renderer")
	}

	w, h := comp.EyeExtent()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("pipeline: compositor reports invalid eye extent %dx%d", w, h)
	}
	cfg = cfg.withDefaults()

	s := &Stereo{
		source:   source,
		comp:     comp,
		renderer: renderer,
		proj:     mgl32.Perspective(cfg.FOVY, float32(w)/float32(h), cfg.Near, cfg.Far),
		log:      logx.Logger(),
	}
	s.state.history = pose.NewHistory()
	s.state.controls = input.NewControls()
	s.state.liveLeft = mgl32.Ident4()

	// The reference must be the inverse head pose at the exact press
	// edge, before this frame's pose reaches the composer.
	s.state.controls.ViewLock.SetOnChange(func(value int) {
		s.state.ref = pose.Decompose(s.state.liveLeft.Inv())
		s.log.Debug("view lock changed",
			"mode", view.LockMode(value).String())
	})

	return s, nil
}

// State returns the pipeline's owned mutable state.
func (s *Stereo) State() *State { return &s.state }

// Frame runs one complete stereo frame and returns the mirror buffer for
// on-screen preview.
//
// A transient tracking failure keeps the previous frame's sample and
// continues; every compositor or renderer failure is fatal and returned.
func (s *Stereo) Frame() (*image.RGBA, error) {
	st := &s.state
	frame := st.frame

	sample, err := s.source.EyePoses(frame)
	switch {
	case err == nil:
		st.sample = sample
		st.haveSample = true
	case !st.haveSample:
		return nil, fmt.Errorf("pipeline: initial pose acquisition failed: %w", err)
	default:
		// No update this frame; render with the previous sample.
		s.log.Warn("pose acquisition failed, reusing previous sample",
			"frame", frame, "error", err)
	}

	for eye := pose.Left; eye < pose.EyeCount; eye++ {
		st.history.Push(eye, st.sample.Poses[eye].Matrix())
	}
	st.history.PushController(s.source.ControllerPosition())
	st.liveLeft = st.sample.Poses[pose.Left].Matrix()

	if in, err := s.source.Input(); err != nil {
		s.log.Warn("input read failed, controls unchanged",
			"frame", frame, "error", err)
	} else {
		st.controls.Apply(in)
	}

	left, right, _ := view.EyeOffsets(s.source.BaselineIOD(), st.controls.IODOffset.Value())
	s.source.SetEyeOffsets(left, right)

	slot, err := s.comp.AcquireSlot()
	if err != nil {
		return nil, fmt.Errorf("pipeline: frame %d: %w", frame, err)
	}

	lag := st.controls.Lag()
	delay := st.controls.Delay()
	lock := view.LockMode(st.controls.ViewLock.Value())
	compMode := st.controls.EyeComp.Value()

	// Both gates tick every frame so a suppressed eye resumes with a
	// consistent hold phase. The gate always captures the live pose;
	// when the delay is active it overrides the lag substitution
	// entirely rather than holding an already-lagged pose.
	var eff [pose.EyeCount]mgl32.Mat4
	for eye := pose.Left; eye < pose.EyeCount; eye++ {
		live := st.sample.Poses[eye].Matrix()
		gated := st.gates[eye].Select(live, delay)
		switch {
		case delay > 0:
			eff[eye] = gated
		case lag > 0:
			eff[eye] = st.history.At(eye, lag)
		default:
			eff[eye] = live
		}
	}

	eyeW, eyeH := s.comp.EyeExtent()
	viewports := [pose.EyeCount]compositor.Viewport{
		{X: 0, Y: 0, W: eyeW, H: eyeH},
		{X: eyeW, Y: 0, W: eyeW, H: eyeH},
	}
	cursor := st.history.ControllerAt(lag)

	for eye := pose.Left; eye < pose.EyeCount; eye++ {
		if suppressed(compMode, eye) {
			continue
		}
		contentEye := eye
		if compMode == ComposeCrossed {
			contentEye = eye.Other()
		}

		err := s.renderer.Draw(scene.DrawParams{
			Projection: s.proj,
			View:       view.Compose(lock, eff[contentEye], st.ref),
			Eye:        contentEye,
			SkyboxMode: st.controls.Skybox.Value(),
			CubeScale:  st.controls.CubeScale.Value(),
			LockMode:   lock,
			Reference:  st.ref,
			Cursor:     cursor,
			Target:     slot.Pixels(),
			Viewport:   viewports[eye].Rect(),
		})
		if err != nil {
			return nil, fmt.Errorf("pipeline: frame %d eye %v: %w", frame, eye, err)
		}
	}

	if err := s.comp.Commit(); err != nil {
		return nil, fmt.Errorf("pipeline: frame %d: %w", frame, err)
	}
	err = s.comp.Submit(compositor.Layer{
		Frame:      frame,
		Viewport:   viewports,
		RenderPose: st.sample.Poses,
		EyeOffset:  [pose.EyeCount]float32{left, right},
		SampleTime: st.sample.SampleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: frame %d: %w", frame, err)
	}

	mirrorImg, err := s.comp.MirrorBuffer()
	if err != nil {
		return nil, fmt.Errorf("pipeline: frame %d: %w", frame, err)
	}

	st.frame++
	return mirrorImg, nil
}

// suppressed reports whether the viewport eye is skipped under the given
// eye-composition mode.
func suppressed(mode int, eye pose.Eye) bool {
	switch mode {
	case ComposeLeftOnly:
		return eye == pose.Right
	case ComposeRightOnly:
		return eye == pose.Left
	}
	return false
}
