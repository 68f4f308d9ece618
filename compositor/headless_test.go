// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"image/color"
	"testing"

	"github.com/gogpu/hmd/pose"
)

func newTestHeadless(t *testing.T) *Headless {
	t.Helper()
	c, err := NewHeadless(Options{EyeWidth: 16, EyeHeight: 8})
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHeadlessEyeExtent(t *testing.T) {
	c := newTestHeadless(t)
	w, h := c.EyeExtent()
	if w != 16 || h != 8 {
		t.Errorf("EyeExtent() = %dx%d, want 16x8", w, h)
	}

	slot, err := c.AcquireSlot()
	if err != nil {
		t.Fatalf("AcquireSlot: %v", err)
	}
	b := slot.Pixels().Bounds()
	if b.Dx() != 32 || b.Dy() != 8 {
		t.Errorf("shared target is %dx%d, want 32x8 (two eyes side by side)", b.Dx(), b.Dy())
	}
}

func TestHeadlessSlotRotation(t *testing.T) {
	c := newTestHeadless(t)

	seen := make([]int, 0, DefaultSwapChainLen+1)
	for i := 0; i < DefaultSwapChainLen+1; i++ {
		slot, err := c.AcquireSlot()
		if err != nil {
			t.Fatalf("AcquireSlot frame %d: %v", i, err)
		}
		seen = append(seen, slot.Index())
		if err := c.Commit(); err != nil {
			t.Fatalf("Commit frame %d: %v", i, err)
		}
	}

	want := []int{0, 1, 2, 0}
	for i, idx := range seen {
		if idx != want[i] {
			t.Fatalf("slot indices = %v, want %v", seen, want)
		}
	}
}

func TestHeadlessSameSlotUntilCommit(t *testing.T) {
	c := newTestHeadless(t)

	a, _ := c.AcquireSlot()
	b, _ := c.AcquireSlot()
	if a.Index() != b.Index() {
		t.Errorf("slot advanced without Commit: %d then %d", a.Index(), b.Index())
	}
	c.Commit()
	d, _ := c.AcquireSlot()
	if d.Index() == a.Index() {
		t.Error("slot did not advance after Commit")
	}
}

func TestHeadlessSubmitBeforeCommit(t *testing.T) {
	c := newTestHeadless(t)
	if err := c.Submit(Layer{Frame: 1}); err == nil {
		t.Error("Submit before any Commit succeeded, want error")
	}
}

func TestHeadlessSubmittedFrameImmutable(t *testing.T) {
	c := newTestHeadless(t)

	slot, _ := c.AcquireSlot()
	red := color.RGBA{255, 0, 0, 255}
	slot.Pixels().SetRGBA(3, 3, red)
	if err := c.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := c.Submit(Layer{Frame: 1}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Scribbling over the old slot after commit must not leak into the
	// submitted frame.
	slot.Pixels().SetRGBA(3, 3, color.RGBA{0, 255, 0, 255})

	m, err := c.MirrorBuffer()
	if err != nil {
		t.Fatalf("MirrorBuffer: %v", err)
	}
	if m == nil {
		t.Fatal("MirrorBuffer returned nil")
	}
	if got := c.committed.RGBAAt(3, 3); got != red {
		t.Errorf("committed pixel = %v, want %v (frame revised after submit)", got, red)
	}
}

func TestHeadlessMirrorSize(t *testing.T) {
	c, err := NewHeadless(Options{EyeWidth: 64, EyeHeight: 32, MirrorDivisor: 4})
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	defer c.Close()

	c.AcquireSlot()
	c.Commit()
	c.Submit(Layer{Frame: 1})

	m, err := c.MirrorBuffer()
	if err != nil {
		t.Fatalf("MirrorBuffer: %v", err)
	}
	if m.Bounds().Dx() != 32 || m.Bounds().Dy() != 8 {
		t.Errorf("mirror is %dx%d, want 32x8 (1/4 of 128x32)", m.Bounds().Dx(), m.Bounds().Dy())
	}
}

func TestHeadlessMirrorBeforeSubmit(t *testing.T) {
	c := newTestHeadless(t)
	if _, err := c.MirrorBuffer(); err == nil {
		t.Error("MirrorBuffer before any Submit succeeded, want error")
	}
}

func TestHeadlessLayerBookkeeping(t *testing.T) {
	c := newTestHeadless(t)

	c.AcquireSlot()
	c.Commit()
	layer := Layer{
		Frame:      7,
		SampleTime: 1.25,
		Viewport: [pose.EyeCount]Viewport{
			{X: 0, Y: 0, W: 16, H: 8},
			{X: 16, Y: 0, W: 16, H: 8},
		},
	}
	if err := c.Submit(layer); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, ok := c.LastLayer()
	if !ok {
		t.Fatal("LastLayer reports no submission")
	}
	if got.Frame != 7 || got.SampleTime != 1.25 {
		t.Errorf("LastLayer = frame %d t=%v, want frame 7 t=1.25", got.Frame, got.SampleTime)
	}
	if got.Viewport[pose.Right].X != 16 {
		t.Errorf("right viewport X = %d, want 16", got.Viewport[pose.Right].X)
	}
}

func TestHeadlessInvalidExtent(t *testing.T) {
	if _, err := NewHeadless(Options{EyeWidth: 0, EyeHeight: 8}); err == nil {
		t.Error("NewHeadless with zero width succeeded, want error")
	}
}

func TestHeadlessClosed(t *testing.T) {
	c := newTestHeadless(t)
	c.Close()

	if _, err := c.AcquireSlot(); err == nil {
		t.Error("AcquireSlot after Close succeeded")
	}
	if err := c.Commit(); err == nil {
		t.Error("Commit after Close succeeded")
	}
	if err := c.Submit(Layer{}); err == nil {
		t.Error("Submit after Close succeeded")
	}
	if _, err := c.MirrorBuffer(); err == nil {
		t.Error("MirrorBuffer after Close succeeded")
	}
}
