//go:build ebiten

// Package ui draws status text on top of the simulation view.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay renders a one-line status readout in the top-left corner.
type Overlay struct {
	hidden bool
}

// NewOverlay constructs an overlay with the status line visible.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle flips the status line visibility.
func (o *Overlay) Toggle() {
	if o == nil {
		return
	}
	o.hidden = !o.hidden
}

// Draw prints the status text unless the overlay is hidden.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if o == nil || o.hidden {
		return
	}
	ebitenutil.DebugPrint(screen, status)
}
