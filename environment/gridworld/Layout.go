package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gridq/environment"
)

// Layout cell types
const (
	FreeCell     = '.'
	ObstacleCell = '#'
	StartCell    = 'S'
	GoalCell     = 'G'
)

// Parse creates a GridWorld from a square text layout, one string per
// row. Each rune is one of FreeCell, ObstacleCell, StartCell, or
// GoalCell, and exactly one start and one goal cell must be present.
// Leading and trailing whitespace of each row is ignored.
func Parse(layout []string, opts ...Option) (*GridWorld, error) {
	size := len(layout)
	if size == 0 {
		return nil, configError("parse", "empty layout")
	}

	var (
		obstacles           []environment.State
		start, goal         environment.State
		haveStart, haveGoal bool
	)
	for r, line := range layout {
		row := []rune(strings.TrimSpace(line))
		if len(row) != size {
			return nil, configError("parse", "row %d has %d cells, want %d",
				r, len(row), size)
		}

		for c, cell := range row {
			s := environment.State{Row: r, Col: c}
			switch cell {
			case FreeCell:
			case ObstacleCell:
				obstacles = append(obstacles, s)
			case StartCell:
				if haveStart {
					return nil, configError("parse", "second start cell at %v", s)
				}
				start, haveStart = s, true
			case GoalCell:
				if haveGoal {
					return nil, configError("parse", "second goal cell at %v", s)
				}
				goal, haveGoal = s, true
			default:
				return nil, configError("parse", "unknown cell %q at %v",
					cell, s)
			}
		}
	}

	if !haveStart {
		return nil, configError("parse", "no start cell")
	}
	if !haveGoal {
		return nil, configError("parse", "no goal cell")
	}

	return New(size, start, goal, obstacles, opts...)
}

// Layout returns the text layout of the GridWorld, the inverse of Parse
func (g *GridWorld) Layout() []string {
	layout := make([]string, g.size)

	var b strings.Builder
	for r := 0; r < g.size; r++ {
		b.Reset()
		for c := 0; c < g.size; c++ {
			s := environment.State{Row: r, Col: c}
			switch {
			case g.AtGoal(s):
				b.WriteRune(GoalCell)
			case s == g.start:
				b.WriteRune(StartCell)
			case g.IsObstacle(s):
				b.WriteRune(ObstacleCell)
			default:
				b.WriteRune(FreeCell)
			}
		}
		layout[r] = b.String()
	}
	return layout
}

// MustParse is like Parse but panics if the layout is malformed. It is
// intended for layouts fixed at compile time.
func MustParse(layout ...string) *GridWorld {
	g, err := Parse(layout)
	if err != nil {
		panic(fmt.Sprintf("mustParse: %v", err))
	}
	return g
}
