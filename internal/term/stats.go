package term

import "time"

// Stats tracks simulation throughput for the status line.
type Stats struct {
	start      time.Time
	gensPerSec float64
	avgPop     float64
}

// NewStats starts the runtime clock.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// Observe folds one frame into the running figures. Population feeds an
// exponential moving average so the readout stays steady.
func (s *Stats) Observe(population int, frame time.Duration) {
	if frame > 0 {
		s.gensPerSec = 1.0 / frame.Seconds()
	}
	if s.avgPop == 0 {
		s.avgPop = float64(population)
	} else {
		s.avgPop = s.avgPop*0.9 + float64(population)*0.1
	}
}

// GensPerSec returns the most recent generations-per-second figure.
func (s *Stats) GensPerSec() float64 { return s.gensPerSec }

// AvgPopulation returns the smoothed population.
func (s *Stats) AvgPopulation() float64 { return s.avgPop }

// Runtime returns the elapsed time since the stats were created.
func (s *Stats) Runtime() time.Duration { return time.Since(s.start) }
