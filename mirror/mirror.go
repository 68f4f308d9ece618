// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mirror presents the compositor's mirror buffer on a desktop
// window. It is an optional sink: the render loop keeps running when no
// window backend is available, so backends register through the same
// priority scheme the compositor uses and the null backend is always
// there to fall back on.
package mirror

import (
	"errors"
	"image"
	"sort"
	"sync"
)

// Output displays mirror frames.
type Output interface {
	// Start opens the output at the given size.
	Start(title string, width, height int) error

	// Update presents a new mirror frame. The image is copied; the
	// caller may reuse it immediately.
	Update(img *image.RGBA) error

	// ShouldClose reports whether the user asked the output to close.
	ShouldClose() bool

	// Close releases the output.
	Close() error
}

// Factory creates an Output.
type Factory func() (Output, error)

type entry struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

var (
	mu      sync.RWMutex
	entries = map[string]*entry{}
)

// ErrNoBackendAvailable is returned when no mirror backends are
// registered or available.
var ErrNoBackendAvailable = errors.New("mirror: no backend available")

// Register adds a backend. If available is nil, the backend is assumed
// always available. Re-registering a name replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	mu.Lock()
	defer mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	entries[name] = &entry{name: name, priority: priority, factory: factory, available: available}
}

// List returns all registered backend names sorted by priority (highest
// first).
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	es := make([]*entry, 0, len(entries))
	for _, e := range entries {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].priority > es[j].priority })

	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.name
	}
	return names
}

// New creates an output using the best available backend.
func New() (Output, error) {
	for _, name := range List() {
		out, err := NewByName(name)
		if err == nil {
			return out, nil
		}
	}
	return nil, ErrNoBackendAvailable
}

// NewByName creates an output using a specific named backend.
func NewByName(name string) (Output, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, errors.New("mirror: backend not found: " + name)
	}
	if !e.available() {
		return nil, errors.New("mirror: backend unavailable: " + name)
	}
	return e.factory()
}
