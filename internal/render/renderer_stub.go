//go:build !ebiten

// Package render uploads board display buffers to the screen. Without
// the ebiten tag only this placeholder is built; terminal output lives
// in internal/term.
package render

// GridPainter is a no-op placeholder for headless builds.
type GridPainter struct{}

// NewGridPainter returns an inert painter in the headless build.
func NewGridPainter(w, h int) *GridPainter { return &GridPainter{} }

// Size returns zeros in the headless build.
func (gp *GridPainter) Size() (int, int) { return 0, 0 }
