// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu provides the device-backed compositor backend.
//
// The backend keeps a CPU staging swap chain so the rest of the pipeline
// can stay backend-agnostic, compiles its mirror-blit shader through naga
// at construction time, and adopts the host application's GPU device via
// gpucontext.DeviceProvider instead of creating its own.
//
// It registers itself as "gpu" at priority 100; construction fails
// without a device provider, which makes registry selection fall through
// to the headless backend.
package gpu
