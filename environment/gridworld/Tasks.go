package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridq/environment"
	"gonum.org/v1/gonum/floats"
)

// Default rewards
const (
	GoalReward     float64 = 100.0
	ObstacleReward float64 = -10.0
	TimeStepReward float64 = -1.0
)

// Rewards is the reward schedule of a GridWorld, indexed by the kind of
// cell the agent occupies after a transition
type Rewards struct {
	Goal     float64 `json:"goal"`
	Obstacle float64 `json:"obstacle"`
	TimeStep float64 `json:"time_step"`
}

// DefaultRewards returns the default reward schedule
func DefaultRewards() Rewards {
	return Rewards{
		Goal:     GoalReward,
		Obstacle: ObstacleReward,
		TimeStep: TimeStepReward,
	}
}

// Goal represents the task of reaching a single goal state in a GridWorld
type Goal struct {
	goal      environment.State
	obstacles map[environment.State]struct{}
	rewards   Rewards
}

// NewGoal creates and returns a new goal task. The obstacle set is shared
// with the caller and must not be modified afterwards.
func NewGoal(goal environment.State, obstacles map[environment.State]struct{},
	r Rewards) *Goal {
	return &Goal{goal, obstacles, r}
}

// Reward returns the reward for a transition which ends in state s.
//
// A GridWorld never moves the agent onto an obstacle, so the obstacle
// reward is only paid if the agent is placed on one by other means.
func (g *Goal) Reward(s environment.State) float64 {
	if s == g.goal {
		return g.rewards.Goal
	}
	if _, ok := g.obstacles[s]; ok {
		return g.rewards.Obstacle
	}
	return g.rewards.TimeStep
}

// AtGoal returns whether s is the goal state
func (g *Goal) AtGoal(s environment.State) bool {
	return s == g.goal
}

// GoalState returns the goal state
func (g *Goal) GoalState() environment.State {
	return g.goal
}

// Rewards returns the reward schedule of the task
func (g *Goal) Rewards() Rewards {
	return g.rewards
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{g.rewards.Goal, g.rewards.Obstacle,
		g.rewards.TimeStep})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{g.rewards.Goal, g.rewards.Obstacle,
		g.rewards.TimeStep})
}

// String returns the Goal as a string
func (g *Goal) String() string {
	return fmt.Sprintf("Goal%v", g.goal)
}
