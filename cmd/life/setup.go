package main

import (
	"flag"
	"log"

	"torlife/internal/app"
	"torlife/pkg/life"
)

// setup parses flags and the optional config file, then builds the
// seeded board. Both the GUI and the terminal build start here.
func setup() (*app.Config, *life.Board) {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "JSON config file (overrides other flags)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	board, err := app.BuildBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}
	return cfg, board
}
