package life

// Outcome classifies the long-run behavior of a board.
type Outcome int

const (
	// OutcomeActive means the board was still changing when the step
	// budget ran out.
	OutcomeActive Outcome = iota
	// OutcomeExtinct means the population reached zero.
	OutcomeExtinct
	// OutcomeStill means the board reached a fixed point.
	OutcomeStill
	// OutcomeOscillator means the board entered a cycle with period
	// greater than one.
	OutcomeOscillator
)

// String returns a short human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeExtinct:
		return "extinct"
	case OutcomeStill:
		return "still"
	case OutcomeOscillator:
		return "oscillator"
	default:
		return "active"
	}
}

// Result describes how a board settled within a step budget.
type Result struct {
	Outcome    Outcome
	Steps      int // step at which the outcome was established
	Period     int // cycle length; 1 for fixed points, 0 otherwise
	Population int // population when classification stopped
}

// Classify steps the board until it dies out, revisits an earlier state,
// or exhausts maxSteps, and reports which happened first. Revisiting a
// state k steps later means the board is locked in a period-k cycle;
// k == 1 is a fixed point. The board is advanced in place.
func Classify(b *Board, maxSteps int) Result {
	seen := map[string]int{b.Fingerprint(): 0}
	for step := 1; step <= maxSteps; step++ {
		b.Step()
		if b.Population() == 0 {
			return Result{Outcome: OutcomeExtinct, Steps: step}
		}
		fp := b.Fingerprint()
		if prev, ok := seen[fp]; ok {
			period := step - prev
			outcome := OutcomeOscillator
			if period == 1 {
				outcome = OutcomeStill
			}
			return Result{Outcome: outcome, Steps: step, Period: period, Population: b.Population()}
		}
		seen[fp] = step
	}
	return Result{Outcome: OutcomeActive, Steps: maxSteps, Population: b.Population()}
}
