// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene defines the scene-drawing collaborator contract.
//
// The pipeline does not know what the scene contains; it hands every eye
// pass a fully composed DrawParams and expects the renderer to draw into
// the supplied target region. Mesh construction, shader programs and
// texturing belong entirely to Renderer implementations.
package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
	"github.com/gogpu/hmd/view"
)

// Skybox display modes, cycled by the 3-state mode switch.
const (
	// SkyboxStereoScene draws the full scene with per-eye skyboxes.
	SkyboxStereoScene = iota
	// SkyboxStereoOnly draws only the per-eye skyboxes.
	SkyboxStereoOnly
	// SkyboxMonoOnly draws the left-eye skybox to both eyes.
	SkyboxMonoOnly

	// SkyboxModeCount is the number of skybox modes.
	SkyboxModeCount
)

// DrawParams carries everything a renderer needs for one eye's pass.
// All values are composed by the pipeline; renderers treat them as
// read-only.
type DrawParams struct {
	// Projection is the eye's perspective projection.
	Projection mgl32.Mat4

	// View is the composed view matrix after lag/delay substitution and
	// view-lock composition.
	View mgl32.Mat4

	// Eye is the eye whose content to draw. Under the cross-eye
	// composition mode this differs from the viewport being drawn into.
	Eye pose.Eye

	// SkyboxMode selects which skybox variant to draw.
	SkyboxMode int

	// CubeScale is the accumulated cube scale control in [-1, 1].
	CubeScale float32

	// LockMode and Reference describe the active view-lock state, for
	// renderers that visualize it.
	LockMode  view.LockMode
	Reference pose.Reference

	// Cursor is the (lag-adjusted) controller position for cursor
	// rendering.
	Cursor mgl32.Vec3

	// Target is the CPU pixel buffer of the acquired swap-chain slot, or
	// nil for GPU-only compositor backends.
	Target *image.RGBA

	// Viewport is the region of Target assigned to this eye.
	Viewport image.Rectangle
}

// Renderer draws scene content for one eye. Draw is a pure side-effecting
// call with no contract beyond completion; an error aborts the frame.
type Renderer interface {
	Draw(p DrawParams) error
}
