package term

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"torlife/pkg/life"
)

// Run drives the board at tps generations per second until the process
// is interrupted or maxGen generations have been displayed. A maxGen of
// zero runs forever.
func Run(b *life.Board, tps, maxGen int, out io.Writer) error {
	if tps < 1 {
		tps = 10
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	r := NewRenderer(out)
	stats := NewStats()
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			fmt.Fprintf(out, "\n%d generations in %.1fs, avg population %.1f\n",
				b.Generation(), stats.Runtime().Seconds(), stats.AvgPopulation())
			return nil
		case <-ticker.C:
			frameStart := time.Now()
			r.Frame(b)
			fmt.Fprintf(out, "gen %d  pop %d  %.1f gen/s\n",
				b.Generation(), b.Population(), stats.GensPerSec())
			if maxGen > 0 && b.Generation() >= maxGen {
				return nil
			}
			b.Step()
			stats.Observe(b.Population(), time.Since(frameStart))
		}
	}
}
