// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"image"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/hmd/compositor"
	"github.com/gogpu/hmd/internal/logx"
)

// Backend errors.
var (
	// ErrNoDevice is returned when Options carries no device provider.
	ErrNoDevice = errors.New("gpu: compositor requires a device provider")
)

// Compositor is the device-backed compositor. It shares the host
// application's GPU device, compiles the mirror-blit pipeline up front,
// and mirrors every frame into a CPU staging chain so slot pixels and the
// mirror buffer stay readable without a texture readback.
type Compositor struct {
	staging *compositor.Headless

	device hal.Device
	queue  hal.Queue
	shader hal.ShaderModule
	spirv  []uint32

	externalDevice bool
}

// halProvider is the duck-typed accessor for raw HAL handles. Device
// providers that wrap a wgpu device expose it this way.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// New creates the GPU compositor.
//
// Options.Device is required. The mirror-blit shader is compiled during
// construction so an unusable shader toolchain fails fast rather than on
// the first frame.
func New(opts compositor.Options) (*Compositor, error) {
	if opts.Device == nil {
		return nil, ErrNoDevice
	}

	staging, err := compositor.NewHeadless(opts)
	if err != nil {
		return nil, err
	}

	spirv, err := compileMirrorBlit()
	if err != nil {
		staging.Close()
		return nil, err
	}

	c := &Compositor{
		staging: staging,
		spirv:   spirv,
	}

	log := logx.Logger()
	if hp, ok := opts.Device.(halProvider); ok {
		if device, ok := hp.HalDevice().(hal.Device); ok && device != nil {
			c.device = device
			c.externalDevice = true
			if queue, ok := hp.HalQueue().(hal.Queue); ok {
				c.queue = queue
			}
			module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
				Label:  "mirror-blit",
				Source: hal.ShaderSource{SPIRV: spirv},
			})
			if err != nil {
				staging.Close()
				return nil, err
			}
			c.shader = module
			log.Debug("gpu: compositor using shared device")
		}
	}
	if c.device == nil {
		// Provider without raw HAL access: frames stay on the staging
		// chain and the shader ships precompiled for when a device
		// becomes reachable.
		log.Debug("gpu: no HAL device exposed, staging-only mode")
	}

	return c, nil
}

// EyeExtent returns the per-eye render-target size.
func (c *Compositor) EyeExtent() (w, h int) {
	return c.staging.EyeExtent()
}

// AcquireSlot returns the current staging swap-chain buffer.
func (c *Compositor) AcquireSlot() (compositor.Slot, error) {
	return c.staging.AcquireSlot()
}

// Commit seals the current slot and advances the chain.
func (c *Compositor) Commit() error {
	if err := c.staging.Commit(); err != nil {
		return err
	}
	// TODO(texture-upload): when wgpu texture upload lands, copy the
	// committed staging buffer into the device swap-chain texture here.
	return nil
}

// Submit hands the committed frame to the display.
func (c *Compositor) Submit(layer compositor.Layer) error {
	if err := c.staging.Submit(layer); err != nil {
		return err
	}
	if c.device != nil && c.queue != nil {
		// TODO(mirror-dispatch): encode the mirror_blit compute pass
		// (src texture, mirror texture, divisor uniform) and submit it
		// on c.queue once texture upload exists.
		_ = c.shader
	}
	return nil
}

// MirrorBuffer returns the downscaled copy of the last submitted frame.
func (c *Compositor) MirrorBuffer() (*image.RGBA, error) {
	return c.staging.MirrorBuffer()
}

// Close releases the compositor. The shared device is not destroyed.
func (c *Compositor) Close() error {
	if c.shader != nil && c.device != nil {
		c.device.DestroyShaderModule(c.shader)
		c.shader = nil
	}
	// Shared resources belong to the provider.
	c.device = nil
	c.queue = nil
	return c.staging.Close()
}

var _ compositor.Compositor = (*Compositor)(nil)

// init registers the device-backed backend. The factory fails without a
// device provider so auto-selection falls through to headless.
func init() {
	compositor.Register("gpu", 100, func(opts compositor.Options) (compositor.Compositor, error) {
		return New(opts)
	}, nil)
}
