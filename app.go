// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/hmd/compositor"
	"github.com/gogpu/hmd/mirror"
	"github.com/gogpu/hmd/pipeline"
	"github.com/gogpu/hmd/scene"
	"github.com/gogpu/hmd/track"
)

// Config wires an App to its collaborators. Tracking, Compositor and
// Scene are required; Mirror is optional and headless runs leave it nil.
type Config struct {
	// Tracking supplies per-eye poses and controller input.
	Tracking track.Source

	// Compositor receives the rendered stereo frames.
	Compositor compositor.Compositor

	// Scene draws each eye's view.
	Scene scene.Renderer

	// Mirror previews the submitted frames on the desktop. Nil disables
	// the preview.
	Mirror mirror.Output

	// MirrorTitle is the preview window title. Empty means "hmd mirror".
	MirrorTitle string

	// FOVY is the vertical field of view in radians; Near and Far are
	// the clip planes in meters. Zero values take pipeline defaults.
	FOVY, Near, Far float32

	// MaxFrames stops the loop after that many frames. 0 means run until
	// the context is canceled or the mirror window closes.
	MaxFrames uint64
}

// App owns the frame loop. It takes ownership of the configured
// collaborators and releases them in Close.
type App struct {
	cfg      Config
	pipeline *pipeline.Stereo

	mirrorUp bool
	closed   bool
}

// New validates the configuration and wires the pipeline.
func New(cfg Config) (*App, error) {
	if cfg.Tracking == nil {
		return nil, errors.New("hmd: Config.Tracking is required")
	}
	if cfg.Compositor == nil {
		return nil, errors.New("hmd: Config.Compositor is required")
	}
	if cfg.Scene == nil {
		return nil, errors.New("hmd: Config.Scene is required")
	}
	if cfg.MirrorTitle == "" {
		cfg.MirrorTitle = "hmd mirror"
	}

	p, err := pipeline.New(cfg.Tracking, cfg.Compositor, cfg.Scene, pipeline.Config{
		FOVY: cfg.FOVY,
		Near: cfg.Near,
		Far:  cfg.Far,
	})
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, pipeline: p}, nil
}

// Pipeline returns the underlying stereo pipeline.
func (a *App) Pipeline() *pipeline.Stereo {
	return a.pipeline
}

// Recenter re-zeros the tracking origin at the current head position.
func (a *App) Recenter() error {
	return a.cfg.Tracking.Recenter()
}

// Run executes the frame loop until the context is canceled, the mirror
// window is closed, or MaxFrames frames have been submitted. An in-flight
// frame always runs to submission before the loop stops.
func (a *App) Run(ctx context.Context) error {
	log := Logger()
	log.Info("render loop starting", "maxFrames", a.cfg.MaxFrames)

	for frames := uint64(0); a.cfg.MaxFrames == 0 || frames < a.cfg.MaxFrames; frames++ {
		select {
		case <-ctx.Done():
			log.Info("render loop stopped", "frames", frames, "reason", "context")
			return ctx.Err()
		default:
		}
		if a.cfg.Mirror != nil && a.mirrorUp && a.cfg.Mirror.ShouldClose() {
			log.Info("render loop stopped", "frames", frames, "reason", "mirror closed")
			return nil
		}

		mirrorImg, err := a.pipeline.Frame()
		if err != nil {
			return fmt.Errorf("hmd: render loop failed: %w", err)
		}

		if a.cfg.Mirror != nil {
			if !a.mirrorUp {
				b := mirrorImg.Bounds()
				if err := a.cfg.Mirror.Start(a.cfg.MirrorTitle, b.Dx(), b.Dy()); err != nil {
					return fmt.Errorf("hmd: mirror start failed: %w", err)
				}
				a.mirrorUp = true
			}
			if err := a.cfg.Mirror.Update(mirrorImg); err != nil {
				return fmt.Errorf("hmd: mirror update failed: %w", err)
			}
		}
	}

	log.Info("render loop finished", "frames", a.cfg.MaxFrames)
	return nil
}

// Close releases the collaborators. Safe to call more than once.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if a.cfg.Mirror != nil {
		errs = append(errs, a.cfg.Mirror.Close())
	}
	errs = append(errs, a.cfg.Compositor.Close())
	errs = append(errs, a.cfg.Tracking.Close())
	return errors.Join(errs...)
}
