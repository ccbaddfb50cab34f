// Package gridworld implements 2D gridworld environments
//
// A GridWorld is a square grid of cells. Some cells are obstacles which
// the agent can never enter, and a single cell is the goal. An action
// moves the agent one cell up, right, down, or left. Moves which would
// leave the grid or enter an obstacle are silently rejected and the
// agent stays where it is.
package gridworld

import (
	"fmt"
	"sort"

	"github.com/samuelfneumann/gridq/environment"
)

// GridWorld represents a gridworld environment
//
// Only the grid dimensions, obstacle set, and current agent position are
// tracked; the reward schedule is delegated to a Goal task.
type GridWorld struct {
	*Goal
	environment.Starter

	size      int
	start     environment.State
	obstacles map[environment.State]struct{}

	position environment.State // current position
	started  bool
}

// Option configures a GridWorld on construction
type Option func(*GridWorld)

// WithRewards sets the reward schedule of a GridWorld
func WithRewards(r Rewards) Option {
	return func(g *GridWorld) {
		g.Goal.rewards = r
	}
}

// WithStarter sets the starting state distribution of a GridWorld. By
// default, a GridWorld always starts at its start cell.
func WithStarter(s environment.Starter) Option {
	return func(g *GridWorld) {
		g.Starter = s
	}
}

// New creates a new size x size gridworld with the agent starting at
// start and a single goal state. Obstacles are impassable cells.
//
// New returns an error wrapping environment.ErrConfig if size is not
// positive, if start, goal, or any obstacle lies outside the grid, if
// start and goal are the same cell, or if start or goal coincide with an
// obstacle.
func New(size int, start, goal environment.State,
	obstacles []environment.State, opts ...Option) (*GridWorld, error) {
	if size <= 0 {
		return nil, configError("new", "size = %d must be positive", size)
	}

	inBounds := func(s environment.State) bool {
		return s.Row >= 0 && s.Row < size && s.Col >= 0 && s.Col < size
	}
	if !inBounds(start) {
		return nil, configError("new", "start %v outside %dx%d grid",
			start, size, size)
	}
	if !inBounds(goal) {
		return nil, configError("new", "goal %v outside %dx%d grid",
			goal, size, size)
	}

	obstacleSet := make(map[environment.State]struct{}, len(obstacles))
	for _, o := range obstacles {
		if !inBounds(o) {
			return nil, configError("new", "obstacle %v outside %dx%d grid",
				o, size, size)
		}
		obstacleSet[o] = struct{}{}
	}
	if start == goal {
		return nil, configError("new", "start %v is the goal", start)
	}
	if _, ok := obstacleSet[goal]; ok {
		return nil, configError("new", "goal %v is an obstacle", goal)
	}
	if _, ok := obstacleSet[start]; ok {
		return nil, configError("new", "start %v is an obstacle", start)
	}

	g := &GridWorld{
		Goal:      NewGoal(goal, obstacleSet, DefaultRewards()),
		Starter:   environment.NewSingleStart(start),
		size:      size,
		start:     start,
		obstacles: obstacleSet,
		position:  start,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Reset places the agent at a starting state and returns that state.
// With the default Starter, repeated calls always return the start cell.
func (g *GridWorld) Reset() environment.State {
	g.position = g.Start()
	g.started = true
	return g.position
}

// ResetTo places the agent at s, ignoring the Starter, and returns s. If
// s is outside the grid or an obstacle, an error wrapping
// environment.ErrConfig is returned and the agent does not move.
func (g *GridWorld) ResetTo(s environment.State) (environment.State, error) {
	if !g.InBounds(s) || g.IsObstacle(s) {
		return g.position, configError("resetTo", "%v is not a free cell", s)
	}
	g.position = s
	g.started = true
	return s, nil
}

// Step takes one environmental step given an action. The returned values
// are the resulting state, the reward for the transition, and whether
// the resulting state is the goal.
//
// If a is not a valid action, an error wrapping
// environment.ErrInvalidAction is returned and the agent does not move.
func (g *GridWorld) Step(a environment.Action) (environment.State, float64,
	bool, error) {
	if !g.started {
		g.Reset()
	}

	delta, err := environment.DeltaOf(a)
	if err != nil {
		return g.position, 0, false, &environment.Error{Op: "step", Err: err}
	}

	// Only move if the candidate cell is inside the grid and free
	candidate := g.position.Add(delta)
	if g.InBounds(candidate) && !g.IsObstacle(candidate) {
		g.position = candidate
	}

	reward := g.Reward(g.position)
	return g.position, reward, g.AtGoal(g.position), nil
}

// State returns the current position of the agent
func (g *GridWorld) State() environment.State {
	return g.position
}

// NumActions returns the number of actions in the GridWorld
func (g *GridWorld) NumActions() int {
	return environment.NumActions
}

// Size returns the number of rows, equivalently columns, of the grid
func (g *GridWorld) Size() int {
	return g.size
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.size, g.size
}

// StartState returns the configured start cell of the GridWorld
func (g *GridWorld) StartState() environment.State {
	return g.start
}

// InBounds returns whether s lies inside the grid
func (g *GridWorld) InBounds(s environment.State) bool {
	return s.Row >= 0 && s.Row < g.size && s.Col >= 0 && s.Col < g.size
}

// IsObstacle returns whether s is an obstacle cell
func (g *GridWorld) IsObstacle(s environment.State) bool {
	_, ok := g.obstacles[s]
	return ok
}

// Obstacles returns the obstacle cells in row-major order
func (g *GridWorld) Obstacles() []environment.State {
	obstacles := make([]environment.State, 0, len(g.obstacles))
	for o := range g.obstacles {
		obstacles = append(obstacles, o)
	}
	sortStates(obstacles)

	return obstacles
}

// FreeCells returns every cell which is neither an obstacle nor the goal,
// in row-major order
func (g *GridWorld) FreeCells() []environment.State {
	free := make([]environment.State, 0, g.size*g.size-len(g.obstacles))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			s := environment.State{Row: r, Col: c}
			if !g.IsObstacle(s) && !g.AtGoal(s) {
				free = append(free, s)
			}
		}
	}
	return free
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |   Goal: %v  |  Bounds: (%d, %d)  |  " +
		"Obstacles: %d"

	return fmt.Sprintf(str, g.position, g.GoalState(), g.size, g.size,
		len(g.obstacles))
}

func sortStates(states []environment.State) {
	sort.Slice(states, func(i, j int) bool {
		if states[i].Row != states[j].Row {
			return states[i].Row < states[j].Row
		}
		return states[i].Col < states[j].Col
	})
}

func configError(op, format string, args ...interface{}) error {
	return &environment.Error{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, append([]interface{}{environment.ErrConfig}, args...)...),
	}
}
