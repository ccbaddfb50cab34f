package trackers

import ts "github.com/samuelfneumann/gridq/timestep"

// Success tracks whether each episode of an experiment reached a
// terminal state (1.0) or was cut off (0.0)
type Success struct {
	successes []float64
	filename  string
}

// NewSuccess returns a new Success Tracker which will save its data at
// filename
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track records the outcome of an episode on its last timestep
func (s *Success) Track(t ts.TimeStep) {
	if !t.Last() {
		return
	}

	if t.EndType() == ts.TerminalStateReached {
		s.successes = append(s.successes, 1.0)
	} else {
		s.successes = append(s.successes, 0.0)
	}
}

// Data returns 1.0 for each successful episode and 0.0 otherwise
func (s *Success) Data() []float64 {
	return s.successes
}

// Save saves the data tracked by the Success Tracker to disk.
func (s *Success) Save() error {
	return save(s.filename, s.successes)
}
