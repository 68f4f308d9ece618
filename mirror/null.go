// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mirror

import (
	"errors"
	"image"
)

// Null is the no-display output. It validates the call sequence and
// counts frames so headless runs and tests still exercise the mirror
// path.
type Null struct {
	started bool
	closed  bool
	frames  uint64
	width   int
	height  int
}

// NewNull creates a null output.
func NewNull() *Null {
	return &Null{}
}

// Start records the output size.
func (n *Null) Start(_ string, width, height int) error {
	if n.closed {
		return errors.New("mirror: start on closed output")
	}
	n.started = true
	n.width = width
	n.height = height
	return nil
}

// Update counts the frame.
func (n *Null) Update(img *image.RGBA) error {
	if !n.started || n.closed {
		return errors.New("mirror: update on stopped output")
	}
	if img == nil {
		return errors.New("mirror: nil frame")
	}
	n.frames++
	return nil
}

// ShouldClose always reports false; headless runs end by frame count or
// signal instead.
func (n *Null) ShouldClose() bool { return false }

// Close stops the output.
func (n *Null) Close() error {
	n.closed = true
	return nil
}

// Frames returns the number of frames presented.
func (n *Null) Frames() uint64 { return n.frames }

var _ Output = (*Null)(nil)

func init() {
	Register("null", 10, func() (Output, error) {
		return NewNull(), nil
	}, nil)
}
