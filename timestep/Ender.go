package timestep

// Ender determines when episodes end
type Ender interface {
	End(*TimeStep) bool
}

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is Last and its EndType is Timeout. Episodes which already ended
// are left untouched.
func (s StepLimit) End(t *TimeStep) bool {
	if t.Last() {
		return true
	}
	if t.Number >= s.episodeSteps {
		t.StepType = Last
		t.SetEnd(Timeout)
		return true
	}
	return false
}
