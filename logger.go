// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hmd

import (
	"log/slog"

	"github.com/gogpu/hmd/internal/logx"
)

// SetLogger configures the logger for hmd and all its sub-packages.
// By default, hmd produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by hmd:
//   - [slog.LevelDebug]: internal diagnostics (mode changes, swap-chain state)
//   - [slog.LevelInfo]: lifecycle events (backend selected, loop started)
//   - [slog.LevelWarn]: non-fatal issues (transient tracking failures)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	hmd.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	hmd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the current logger used by hmd.
// Sub-packages call this to share the same logger configuration without
// introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
