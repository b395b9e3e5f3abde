//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torlife/internal/render"
	"torlife/internal/ui"
	"torlife/pkg/life"
)

// Game adapts a life board to the ebiten.Game interface. It owns the
// frame loop concerns the engine stays clear of: pause state, keyboard
// handling, and mouse toggling of cells.
type Game struct {
	board   *life.Board
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board.
func New(board *life.Board, scale int, seed int64) *Game {
	w, h := board.Size()
	return &Game{
		board:    board,
		painter:  render.NewGridPainter(w, h),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation by one generation
// unless paused. A toggled cell takes effect immediately: the board
// rebuilds its boundary before the next step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.board.Toggle(mx/g.scale, my/g.scale)
	}

	if !g.paused || g.tickOnce {
		g.board.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current board state and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.board.Size()
	return w * g.scale, h * g.scale
}

func (g *Game) status() string {
	s := fmt.Sprintf("gen %d  pop %d", g.board.Generation(), g.board.Population())
	if g.paused {
		s += "  [paused]"
	}
	return s
}
