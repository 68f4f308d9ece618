// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/hmd/internal/logx"
)

// Headless is a CPU compositor: the swap chain is a ring of image.RGBA
// buffers, commit snapshots the acquired slot so submitted frames can
// never be revised, and the mirror is produced with a bilinear downscale.
//
// It is the reference implementation of the Compositor contract and what
// tests and the demo run against.
type Headless struct {
	opts Options

	chain   []*image.RGBA
	current int

	committed  *image.RGBA
	hasCommit  bool
	submitted  bool
	lastLayer  Layer
	mirror     *image.RGBA
	mirrorDirt bool

	closed bool
	log    *slog.Logger
}

// headlessSlot adapts one ring buffer to the Slot interface.
type headlessSlot struct {
	index int
	img   *image.RGBA
}

func (s headlessSlot) Index() int          { return s.index }
func (s headlessSlot) Pixels() *image.RGBA { return s.img }

// NewHeadless creates a headless compositor.
func NewHeadless(opts Options) (*Headless, error) {
	if opts.EyeWidth <= 0 || opts.EyeHeight <= 0 {
		return nil, fmt.Errorf("compositor: invalid eye extent %dx%d", opts.EyeWidth, opts.EyeHeight)
	}
	opts = opts.withDefaults()

	w, h := 2*opts.EyeWidth, opts.EyeHeight
	c := &Headless{
		opts:      opts,
		chain:     make([]*image.RGBA, opts.SwapChainLen),
		committed: image.NewRGBA(image.Rect(0, 0, w, h)),
		mirror:    image.NewRGBA(image.Rect(0, 0, w/opts.MirrorDivisor, h/opts.MirrorDivisor)),
		log:       logx.Logger(),
	}
	for i := range c.chain {
		c.chain[i] = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	c.log.Debug("compositor: headless swap chain created",
		"len", opts.SwapChainLen, "width", w, "height", h)
	return c, nil
}

// EyeExtent returns the configured per-eye render-target size.
func (c *Headless) EyeExtent() (w, h int) {
	return c.opts.EyeWidth, c.opts.EyeHeight
}

// AcquireSlot returns the current swap-chain buffer.
func (c *Headless) AcquireSlot() (Slot, error) {
	if c.closed {
		return nil, errors.New("compositor: acquire on closed compositor")
	}
	return headlessSlot{index: c.current, img: c.chain[c.current]}, nil
}

// Commit snapshots the current slot and advances the chain.
func (c *Headless) Commit() error {
	if c.closed {
		return errors.New("compositor: commit on closed compositor")
	}
	src := c.chain[c.current]
	draw.Draw(c.committed, c.committed.Bounds(), src, src.Bounds().Min, draw.Src)
	c.hasCommit = true
	c.current = (c.current + 1) % len(c.chain)
	return nil
}

// Submit records the layer for the committed frame and marks the mirror
// stale. Submitting before any commit is a frame-ordering defect in the
// caller and fails.
func (c *Headless) Submit(layer Layer) error {
	if c.closed {
		return errors.New("compositor: submit on closed compositor")
	}
	if !c.hasCommit {
		return errors.New("compositor: submit before commit")
	}
	c.lastLayer = layer
	c.submitted = true
	c.mirrorDirt = true
	return nil
}

// MirrorBuffer downscales the last submitted frame into the mirror
// buffer and returns it. The scale runs only when a new frame has been
// submitted since the previous call.
func (c *Headless) MirrorBuffer() (*image.RGBA, error) {
	if c.closed {
		return nil, errors.New("compositor: mirror on closed compositor")
	}
	if !c.submitted {
		return nil, errors.New("compositor: no submitted frame to mirror")
	}
	if c.mirrorDirt {
		xdraw.ApproxBiLinear.Scale(c.mirror, c.mirror.Bounds(), c.committed, c.committed.Bounds(), xdraw.Src, nil)
		c.mirrorDirt = false
	}
	return c.mirror, nil
}

// LastLayer returns the most recently submitted layer. Tests use it to
// verify submission bookkeeping.
func (c *Headless) LastLayer() (Layer, bool) {
	return c.lastLayer, c.submitted
}

// Close releases the compositor. Further calls fail.
func (c *Headless) Close() error {
	c.closed = true
	return nil
}

var _ Compositor = (*Headless)(nil)

// init registers the built-in headless backend.
func init() {
	Register("headless", 10, func(opts Options) (Compositor, error) {
		return NewHeadless(opts)
	}, nil)
}
