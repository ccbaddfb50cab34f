// Package render draws grid worlds, the agent in them, and the paths the
// agent takes, either to the console or to PNG images.
//
// Rows are drawn top to bottom, so that row 0 is the top row of the
// rendering. If a path is given, the agent is drawn at the last state of
// the path, otherwise it is drawn at the grid's current state.
package render

import (
	"github.com/samuelfneumann/gridq/environment"
)

// Cell characters of ASCII renderings
const (
	FreeCell     = '.'
	ObstacleCell = '#'
	GoalCell     = 'G'
	AgentCell    = 'A'
	PathCell     = '*'
)

// Grid is a grid world which can be rendered
type Grid interface {
	Dims() (r, c int)
	IsObstacle(s environment.State) bool
	AtGoal(s environment.State) bool
	State() environment.State
}

// agentAt returns the state the agent is drawn at
func agentAt(g Grid, path []environment.State) environment.State {
	if len(path) > 0 {
		return path[len(path)-1]
	}
	return g.State()
}

// onPath returns the set of states on a path
func onPath(path []environment.State) map[environment.State]struct{} {
	visited := make(map[environment.State]struct{}, len(path))
	for _, s := range path {
		visited[s] = struct{}{}
	}
	return visited
}

// cellOf returns the character a state is drawn with. The agent is drawn
// over the goal, and the goal over the path.
func cellOf(g Grid, s, agent environment.State,
	visited map[environment.State]struct{}) rune {
	if s == agent {
		return AgentCell
	}
	if g.AtGoal(s) {
		return GoalCell
	}
	if _, ok := visited[s]; ok {
		return PathCell
	}
	if g.IsObstacle(s) {
		return ObstacleCell
	}
	return FreeCell
}
