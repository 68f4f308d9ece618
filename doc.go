// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hmd drives a stereo head-mounted-display render loop.
//
// The root package wires the collaborators together: a tracking source
// supplies per-eye poses and controller input, the pipeline turns them
// into composed per-eye views with optional artificial latency and
// frame-hold, a compositor submits the stereo frames, and a mirror output
// previews them on the desktop.
//
// Minimal use:
//
//	app, err := hmd.New(hmd.Config{
//	    Tracking:   track.NewSynthetic(),
//	    Compositor: comp,
//	    Scene:      scene.Flat{},
//	})
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//	return app.Run(ctx)
//
// Logging is silent by default; call SetLogger to enable it.
package hmd
