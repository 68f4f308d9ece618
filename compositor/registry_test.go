// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"image"
	"testing"
)

// fakeCompositor is a minimal Compositor for registry tests.
type fakeCompositor struct {
	name string
}

func (f *fakeCompositor) EyeExtent() (int, int)             { return 8, 8 }
func (f *fakeCompositor) AcquireSlot() (Slot, error)        { return nil, nil }
func (f *fakeCompositor) Commit() error                     { return nil }
func (f *fakeCompositor) Submit(Layer) error                { return nil }
func (f *fakeCompositor) MirrorBuffer() (*image.RGBA, error) { return nil, nil }
func (f *fakeCompositor) Close() error                      { return nil }

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, func(Options) (Compositor, error) {
		return &fakeCompositor{name: "low"}, nil
	}, nil)
	r.Register("high", 100, func(Options) (Compositor, error) {
		return &fakeCompositor{name: "high"}, nil
	}, nil)

	names := r.List()
	if len(names) != 2 || names[0] != "high" || names[1] != "low" {
		t.Fatalf("List() = %v, want [high low]", names)
	}

	c, err := r.New(Options{EyeWidth: 8, EyeHeight: 8})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if fc, ok := c.(*fakeCompositor); !ok || fc.name != "high" {
		t.Errorf("New() selected %v, want the high-priority backend", c)
	}
}

func TestRegistryUnavailableSkipped(t *testing.T) {
	r := NewRegistry()
	r.Register("gpu", 100, func(Options) (Compositor, error) {
		return &fakeCompositor{name: "gpu"}, nil
	}, func() bool { return false })
	r.Register("cpu", 10, func(Options) (Compositor, error) {
		return &fakeCompositor{name: "cpu"}, nil
	}, nil)

	avail := r.Available()
	if len(avail) != 1 || avail[0] != "cpu" {
		t.Fatalf("Available() = %v, want [cpu]", avail)
	}

	if _, err := r.NewByName("gpu", Options{}); err == nil {
		t.Error("NewByName(gpu) succeeded for an unavailable backend")
	} else {
		var ue *BackendUnavailableError
		if !errors.As(err, &ue) {
			t.Errorf("NewByName(gpu) error = %v, want BackendUnavailableError", err)
		}
	}
}

func TestRegistryNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.NewByName("missing", Options{})
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("NewByName(missing) error = %v, want BackendNotFoundError", err)
	}
}

func TestRegistryFallthroughOnFactoryError(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, func(Options) (Compositor, error) {
		return nil, errors.New("boom")
	}, nil)
	r.Register("working", 10, func(Options) (Compositor, error) {
		return &fakeCompositor{name: "working"}, nil
	}, nil)

	c, err := r.New(Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if fc, ok := c.(*fakeCompositor); !ok || fc.name != "working" {
		t.Errorf("New() = %v, want fallthrough to working backend", c)
	}
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New(Options{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() on empty registry = %v, want ErrNoBackendAvailable", err)
	}
}

func TestGlobalRegistryHasHeadless(t *testing.T) {
	found := false
	for _, name := range List() {
		if name == "headless" {
			found = true
		}
	}
	if !found {
		t.Error("global registry is missing the built-in headless backend")
	}
}
