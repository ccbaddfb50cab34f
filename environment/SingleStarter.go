package environment

// SingleStart is a Starter which always returns the same starting state
type SingleStart struct {
	state State
}

// NewSingleStart returns a Starter that always starts at s
func NewSingleStart(s State) SingleStart {
	return SingleStart{s}
}

// Start returns the starting state
func (s SingleStart) Start() State {
	return s.state
}
