// Package term drives a board in the terminal. It is the display path
// for builds without the ebiten tag.
package term

import (
	"fmt"
	"io"
	"strings"

	"torlife/pkg/life"
)

const (
	aliveGlyph = "██"
	deadGlyph  = "  "

	// ANSI clear-and-home, written before every frame.
	clearHome = "\x1b[2J\x1b[H"
)

// Renderer draws a board as block characters.
type Renderer struct {
	out io.Writer
	sb  strings.Builder
}

// NewRenderer constructs a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Frame draws the whole board in a single write to avoid flicker.
func (r *Renderer) Frame(b *life.Board) {
	w, h := b.Size()
	cells := b.Cells()

	r.sb.Reset()
	r.sb.WriteString(clearHome)
	for y := 0; y < h; y++ {
		for _, c := range cells[y*w : (y+1)*w] {
			if c != 0 {
				r.sb.WriteString(aliveGlyph)
			} else {
				r.sb.WriteString(deadGlyph)
			}
		}
		r.sb.WriteByte('\n')
	}
	fmt.Fprint(r.out, r.sb.String())
}
