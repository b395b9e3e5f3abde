//go:build !ebiten

package main

import (
	"log"
	"os"

	"torlife/internal/term"
)

// Without the ebiten tag the simulation runs in the terminal instead of
// a window. Build with `-tags ebiten` for the GUI.
func main() {
	cfg, board := setup()

	if err := term.Run(board, cfg.TPS, cfg.MaxGen, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
