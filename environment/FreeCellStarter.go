package environment

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// FreeCellStarter returns starting states sampled uniformly from a
// fixed set of candidate cells, usually every free cell of a grid.
type FreeCellStarter struct {
	cells []State
	rng   *rand.Rand
}

// NewFreeCellStarter returns a new FreeCellStarter sampling uniformly
// from cells. The candidate cells are copied.
func NewFreeCellStarter(cells []State, seed uint64) (*FreeCellStarter,
	error) {
	if len(cells) == 0 {
		return nil, &Error{
			Op:  "newFreeCellStarter",
			Err: fmt.Errorf("%w: no candidate start cells", ErrConfig),
		}
	}

	candidates := make([]State, len(cells))
	copy(candidates, cells)

	source := rand.NewSource(seed)
	return &FreeCellStarter{candidates, rand.New(source)}, nil
}

// Start returns a starting state
func (f *FreeCellStarter) Start() State {
	return f.cells[f.rng.Intn(len(f.cells))]
}

// Cells returns the candidate starting cells
func (f *FreeCellStarter) Cells() []State {
	cells := make([]State, len(f.cells))
	copy(cells, f.cells)
	return cells
}
