// Package environment outlines the interfaces and value types shared by
// grid environments and the agents that learn in them.
//
// A State is a (row, col) cell of a square grid and an Action is an
// integer identifier which is mapped to a coordinate delta by a fixed
// table. Both are plain comparable values so that they may be used
// directly as map keys by tabular learners.
package environment

import "fmt"

// State is a cell of a grid, given as (row, col) coordinates. States are
// values: they are never mutated in place once produced.
type State struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the State offset from s by the delta d
func (s State) Add(d Delta) State {
	return State{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

// String implements the fmt.Stringer interface
func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Action identifies a move in the grid
type Action int

// Default actions
const (
	Up Action = iota
	Right
	Down
	Left
)

// NumActions is the number of actions in the default delta table
const NumActions int = 4

// String implements the fmt.Stringer interface
func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Delta is the change in (row, col) coordinates caused by an action
type Delta struct {
	Row, Col int
}

// deltas maps each default action to its coordinate delta
var deltas = [NumActions]Delta{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// DeltaOf returns the coordinate delta of action a. If a is not a valid
// key of the delta table, an error wrapping ErrInvalidAction is
// returned.
func DeltaOf(a Action) (Delta, error) {
	if a < 0 || int(a) >= len(deltas) {
		return Delta{}, &Error{
			Op: "delta",
			Err: fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAction, a,
				len(deltas)),
		}
	}
	return deltas[a], nil
}

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() State
}

// Environment implements a simulated grid environment which an agent
// moves through with discrete actions.
//
// Reset places the agent at a starting state and returns it. Step
// applies an action, returning the resulting state, the reward for the
// transition, and whether the resulting state is terminal. State
// returns the current state without side effects.
type Environment interface {
	Reset() State
	Step(a Action) (State, float64, bool, error)
	State() State
	NumActions() int
}
