// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/hmd/pose"
)

func flatParams(target *image.RGBA, eye pose.Eye, vp image.Rectangle) DrawParams {
	return DrawParams{
		Projection: mgl32.Perspective(mgl32.DegToRad(90), 1, 0.2, 100),
		View:       mgl32.Ident4(),
		Eye:        eye,
		Cursor:     mgl32.Vec3{0, 0, 10}, // behind the camera, no marker
		Target:     target,
		Viewport:   vp,
	}
}

func TestFlatNeedsTarget(t *testing.T) {
	p := flatParams(nil, pose.Left, image.Rect(0, 0, 8, 8))
	if err := (Flat{}).Draw(p); err == nil {
		t.Error("Draw with nil target succeeded, want error")
	}
}

func TestFlatFillsOnlyViewport(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 16, 8))
	vp := image.Rect(0, 0, 8, 8)

	if err := (Flat{}).Draw(flatParams(target, pose.Left, vp)); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if target.RGBAAt(4, 4).A == 0 {
		t.Error("viewport pixel left untouched")
	}
	if target.RGBAAt(12, 4).A != 0 {
		t.Error("pixel outside the viewport was written")
	}
}

func TestFlatEyesDifferStereo(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 16, 8))

	Flat{}.Draw(flatParams(target, pose.Left, image.Rect(0, 0, 8, 8)))
	Flat{}.Draw(flatParams(target, pose.Right, image.Rect(8, 0, 16, 8)))

	if target.RGBAAt(2, 2) == target.RGBAAt(10, 2) {
		t.Error("left and right eye tints are identical in stereo mode")
	}
}

func TestFlatMonoModeMatchesEyes(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 16, 8))

	pl := flatParams(target, pose.Left, image.Rect(0, 0, 8, 8))
	pl.SkyboxMode = SkyboxMonoOnly
	pr := flatParams(target, pose.Right, image.Rect(8, 0, 16, 8))
	pr.SkyboxMode = SkyboxMonoOnly

	Flat{}.Draw(pl)
	Flat{}.Draw(pr)

	if target.RGBAAt(2, 2) != target.RGBAAt(10, 2) {
		t.Error("mono skybox mode should render both eyes with the same tint")
	}
}

func TestFlatCursorMarker(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p := flatParams(target, pose.Left, image.Rect(0, 0, 8, 8))
	p.Cursor = mgl32.Vec3{0, 0, -1} // dead ahead

	if err := (Flat{}).Draw(p); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := target.RGBAAt(4, 4)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("center pixel = %v, want white cursor marker", c)
	}
}
