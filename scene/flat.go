// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"image/color"
)

// Flat is a minimal CPU reference renderer for headless runs. It clears
// the eye viewport with a color derived from the draw parameters and
// projects the cursor position as a small marker, which is enough to make
// mode changes, lag and IOD adjustments visible in the mirror without any
// real scene content.
type Flat struct{}

// eyeTints distinguishes the two eyes' content in the mirror. The crossed
// composition mode is immediately visible as swapped tints.
var eyeTints = [2]color.RGBA{
	{R: 40, G: 40, B: 110, A: 255},
	{R: 110, G: 40, B: 40, A: 255},
}

// Draw clears the viewport and plots the cursor marker.
func (Flat) Draw(p DrawParams) error {
	if p.Target == nil {
		return errors.New("scene: flat renderer needs a CPU target")
	}

	tint := eyeTints[p.Eye]
	if p.SkyboxMode == SkyboxMonoOnly {
		tint = eyeTints[0]
	}
	// The cube scale modulates brightness so the control is observable.
	boost := uint8((p.CubeScale + 1) * 40)
	tint.R += boost
	tint.G += boost
	tint.B += boost

	b := p.Viewport.Intersect(p.Target.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.Target.SetRGBA(x, y, tint)
		}
	}

	drawCursor(p)
	return nil
}

// drawCursor projects the cursor into the viewport and plots a 3x3 white
// marker when it lands in front of the camera.
func drawCursor(p DrawParams) {
	clip := p.Projection.Mul4(p.View).Mul4x1(p.Cursor.Vec4(1))
	if clip.W() <= 0 {
		return
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return
	}

	cx := p.Viewport.Min.X + int((ndcX+1)/2*float32(p.Viewport.Dx()))
	cy := p.Viewport.Min.Y + int((1-ndcY)/2*float32(p.Viewport.Dy()))
	white := color.RGBA{255, 255, 255, 255}
	bounds := p.Target.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if x >= bounds.Min.X && x < bounds.Max.X &&
				y >= bounds.Min.Y && y < bounds.Max.Y {
				p.Target.SetRGBA(x, y, white)
			}
		}
	}
}

var _ Renderer = Flat{}
