// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Recorder is a Renderer that records every draw call it receives.
// Pipeline tests use it to assert on composed parameters without any
// actual rendering.
type Recorder struct {
	// Calls holds the parameters of every Draw in arrival order.
	Calls []DrawParams

	// Err, when non-nil, is returned by every Draw.
	Err error
}

// Draw records p.
func (r *Recorder) Draw(p DrawParams) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, p)
	return nil
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

var _ Renderer = (*Recorder)(nil)
