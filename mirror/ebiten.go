// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mirror

import (
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ebiten shows the mirror in a desktop window. The render loop pushes
// frames through Update; ebiten's own game loop pulls the latest frame
// under a read lock on every draw, so the two loops never block each
// other for longer than a buffer copy.
type Ebiten struct {
	mu     sync.RWMutex
	pixels []byte
	width  int
	height int

	firstDraw chan struct{}
	drawOnce  sync.Once
	done      chan struct{}
	doneOnce  sync.Once

	started bool
	closing bool
}

// NewEbiten creates an ebiten window output.
func NewEbiten() *Ebiten {
	return &Ebiten{
		firstDraw: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start opens the window and runs the ebiten game loop in its own
// goroutine. It returns after the first frame has been drawn so callers
// know the window is up.
func (e *Ebiten) Start(title string, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("mirror: invalid window size")
	}

	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return nil
	}
	e.started = true
	e.width = width
	e.height = height
	e.pixels = make([]byte, width*height*4)
	e.mu.Unlock()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)

	go func() {
		defer e.doneOnce.Do(func() { close(e.done) })
		_ = ebiten.RunGame(&mirrorGame{out: e})
	}()

	select {
	case <-e.firstDraw:
	case <-e.done:
		return errors.New("mirror: window exited before first frame")
	}
	return nil
}

// Update publishes a new mirror frame.
func (e *Ebiten) Update(img *image.RGBA) error {
	if img == nil {
		return errors.New("mirror: nil frame")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started || e.closing {
		return errors.New("mirror: update on stopped output")
	}
	if img.Bounds().Dx() != e.width || img.Bounds().Dy() != e.height {
		return errors.New("mirror: frame size does not match window")
	}
	copy(e.pixels, img.Pix)
	return nil
}

// ShouldClose reports whether the window has been closed.
func (e *Ebiten) ShouldClose() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Close asks the game loop to terminate and waits for it.
func (e *Ebiten) Close() error {
	e.mu.Lock()
	alreadyClosing := e.closing
	started := e.started
	e.closing = true
	e.mu.Unlock()

	if !started || alreadyClosing {
		e.doneOnce.Do(func() { close(e.done) })
		return nil
	}
	<-e.done
	return nil
}

var _ Output = (*Ebiten)(nil)

// mirrorGame adapts Ebiten to the ebiten.Game interface. A separate type
// keeps the game-loop Update tick from colliding with the Output frame
// push of the same name.
type mirrorGame struct {
	out    *Ebiten
	window *ebiten.Image
}

// Update watches for shutdown; all mirror state is owned by the render
// loop.
func (g *mirrorGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	g.out.mu.RLock()
	closing := g.out.closing
	g.out.mu.RUnlock()
	if closing {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the latest pushed frame.
func (g *mirrorGame) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(g.out.width, g.out.height)
	}

	g.out.mu.RLock()
	g.window.WritePixels(g.out.pixels)
	g.out.mu.RUnlock()

	screen.DrawImage(g.window, nil)
	g.out.drawOnce.Do(func() { close(g.out.firstDraw) })
}

// Layout reports the fixed mirror resolution.
func (g *mirrorGame) Layout(_, _ int) (int, int) {
	return g.out.width, g.out.height
}

func init() {
	Register("ebiten", 100, func() (Output, error) {
		return NewEbiten(), nil
	}, nil)
}
