// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor defines the display-compositor collaborator
// contract: swap-chain slot rotation, stereo layer submission and mirror
// buffer access.
//
// The pipeline orchestrates when these calls happen and with what layer
// contents; the device specifics live in backends selected through the
// registry. Every call is fatal-on-failure from the pipeline's point of
// view: a stereo frame that cannot be submitted whole cannot be recovered
// (a frame once submitted cannot be revised either — backends must
// snapshot on commit).
package compositor

import (
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/hmd/pose"
)

// Viewport is one eye's region within the shared stereo render target.
type Viewport struct {
	X, Y, W, H int
}

// Rect converts the viewport to an image.Rectangle.
func (v Viewport) Rect() image.Rectangle {
	return image.Rect(v.X, v.Y, v.X+v.W, v.Y+v.H)
}

// Layer describes one submitted stereo frame: where each eye was drawn,
// which pose the content was rendered with, the eye offsets in force, and
// the tracking-clock sample time the content derives from.
type Layer struct {
	Frame      uint64
	Viewport   [pose.EyeCount]Viewport
	RenderPose [pose.EyeCount]pose.Pose
	EyeOffset  [pose.EyeCount]float32
	SampleTime float64
}

// Slot is one acquired swap-chain buffer. The same slot is returned until
// Commit advances the chain.
type Slot interface {
	// Index is the buffer's position in the swap chain.
	Index() int

	// Pixels returns the slot's CPU pixel buffer, or nil for GPU-only
	// backends.
	Pixels() *image.RGBA
}

// Compositor is the display-side collaborator.
type Compositor interface {
	// EyeExtent returns the device-reported per-eye render-target size in
	// pixels. The shared stereo target is two such regions side by side.
	EyeExtent() (w, h int)

	// AcquireSlot returns the swap-chain buffer to draw the current frame
	// into.
	AcquireSlot() (Slot, error)

	// Commit seals the current slot's contents and advances the chain.
	// Drawing into a previously acquired slot after Commit must not
	// change any already committed frame.
	Commit() error

	// Submit hands the most recently committed frame to the display,
	// described by the layer.
	Submit(layer Layer) error

	// MirrorBuffer returns the downscaled copy of the last submitted
	// frame for on-screen preview.
	MirrorBuffer() (*image.RGBA, error)

	// Close releases the compositor's resources.
	Close() error
}

// DefaultSwapChainLen is the swap-chain depth used when Options leaves it
// zero. Double buffering plus one in-flight frame matches what desktop
// HMD runtimes allocate.
const DefaultSwapChainLen = 3

// DefaultMirrorDivisor downsizes the mirror to 1/4 of the render target
// per axis.
const DefaultMirrorDivisor = 4

// Options configures compositor construction.
type Options struct {
	// EyeWidth and EyeHeight are the per-eye render-target extent.
	EyeWidth, EyeHeight int

	// SwapChainLen is the number of buffers in the chain.
	// 0 means DefaultSwapChainLen.
	SwapChainLen int

	// MirrorDivisor is the per-axis downscale factor for the mirror
	// buffer. 0 means DefaultMirrorDivisor.
	MirrorDivisor int

	// Format is the swap-chain texture format.
	// Undefined means RGBA8Unorm.
	Format gputypes.TextureFormat

	// Device is the host GPU device provider, required by GPU backends
	// and ignored by CPU backends.
	Device gpucontext.DeviceProvider
}

// withDefaults returns opts with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.SwapChainLen == 0 {
		o.SwapChainLen = DefaultSwapChainLen
	}
	if o.MirrorDivisor == 0 {
		o.MirrorDivisor = DefaultMirrorDivisor
	}
	if o.Format == gputypes.TextureFormatUndefined {
		o.Format = gputypes.TextureFormatRGBA8Unorm
	}
	return o
}
