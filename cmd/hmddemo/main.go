// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command hmddemo runs the stereo render loop against the synthetic
// tracking source and previews the mirror buffer.
//
// Controls are scripted rather than read from hardware; the demo is a
// smoke test for the pose pipeline, the compositor backends and the
// mirror output.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/hmd"
	"github.com/gogpu/hmd/compositor"
	_ "github.com/gogpu/hmd/compositor/gpu"
	"github.com/gogpu/hmd/mirror"
	"github.com/gogpu/hmd/scene"
	"github.com/gogpu/hmd/track"
)

func main() {
	var (
		frames    = flag.Uint64("frames", 0, "stop after N frames (0 = run until closed)")
		compName  = flag.String("compositor", "", "compositor backend (empty = best available)")
		mirName   = flag.String("mirror", "null", "mirror backend (ebiten, null, none)")
		eyeWidth  = flag.Int("eye-width", 512, "per-eye render width")
		eyeHeight = flag.Int("eye-height", 512, "per-eye render height")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	hmd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := run(*frames, *compName, *mirName, *eyeWidth, *eyeHeight); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Fatalf("hmddemo: %v", err)
	}
}

func run(frames uint64, compName, mirName string, eyeWidth, eyeHeight int) error {
	opts := compositor.Options{EyeWidth: eyeWidth, EyeHeight: eyeHeight}

	var (
		comp compositor.Compositor
		err  error
	)
	if compName == "" {
		comp, err = compositor.New(opts)
	} else {
		comp, err = compositor.NewByName(compName, opts)
	}
	if err != nil {
		return err
	}

	var out mirror.Output
	if mirName != "none" {
		out, err = mirror.NewByName(mirName)
		if err != nil {
			comp.Close()
			return err
		}
	}

	app, err := hmd.New(hmd.Config{
		Tracking:    track.NewSynthetic(),
		Compositor:  comp,
		Scene:       scene.Flat{},
		Mirror:      out,
		MirrorTitle: "hmddemo mirror",
		MaxFrames:   frames,
	})
	if err != nil {
		comp.Close()
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
