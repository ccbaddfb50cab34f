// Package qlearning implements the tabular Q-Learning algorithm.
//
// The QLearning agent learns action values with the one-step Q-learning
// update and behaves with an ε-greedy policy whose ε decays
// multiplicatively towards a floor once per episode. Every agent owns its
// own random number generator, so agents constructed with the same seed
// select the same actions given the same experience.
package qlearning

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridq/agent/tabular"
	"github.com/samuelfneumann/gridq/agent/tabular/policy"
	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	*QLearner
	behaviour *policy.EGreedy
	target    *policy.Greedy
	table     *tabular.QTable

	epsilonDecay float64
	epsilonMin   float64
}

// New creates a new QLearning agent whose random numbers are drawn from
// a source seeded with seed
func New(c Config, seed uint64) (*QLearning, error) {
	return NewWithSource(c, rand.NewSource(seed))
}

// NewWithSource creates a new QLearning agent which draws all random
// numbers from src. Tests may use this to substitute a deterministic
// source.
func NewWithSource(c Config, src rand.Source) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	// Create algorithm components sharing the same table
	table := tabular.NewQTable()
	behaviour, err := policy.NewEGreedy(c.Epsilon, table, c.NActions, src)
	if err != nil {
		return nil, fmt.Errorf("new: could not create behaviour policy: %w",
			err)
	}
	target, err := policy.NewGreedy(table, c.NActions, src)
	if err != nil {
		return nil, fmt.Errorf("new: could not create target policy: %w",
			err)
	}
	learner := NewQLearner(table, c.NActions, c.LearningRate, c.Discount)

	return &QLearning{
		QLearner:     learner,
		behaviour:    behaviour,
		target:       target,
		table:        table,
		epsilonDecay: c.EpsilonDecay,
		epsilonMin:   c.EpsilonMin,
	}, nil
}

// QValue returns the estimated value of taking action a in state s.
// Unseen pairs have value 0.0 and are not inserted into the table.
func (q *QLearning) QValue(s environment.State, a environment.Action) float64 {
	return q.table.Get(s, a)
}

// SelectAction selects an action with the ε-greedy behaviour policy
func (q *QLearning) SelectAction(s environment.State) environment.Action {
	return q.behaviour.SelectAction(s)
}

// BestAction selects an action with the greedy target policy, ignoring
// ε entirely
func (q *QLearning) BestAction(s environment.State) environment.Action {
	return q.target.SelectAction(s)
}

// DecayEpsilon sets ε ← max(ε_min, ε·decay)
func (q *QLearning) DecayEpsilon() {
	e := floatutils.Max(q.epsilonMin, q.behaviour.Epsilon()*q.epsilonDecay)
	q.behaviour.SetEpsilon(e)
}

// Epsilon returns the current exploration rate of the behaviour policy
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// NumActions returns the number of actions the agent selects between
func (q *QLearning) NumActions() int {
	return q.behaviour.NumActions()
}

// Table returns the action values learned by the agent. The table is
// shared with the agent and must not be modified by the caller.
func (q *QLearning) Table() *tabular.QTable {
	return q.table
}

// StateValues returns the learned state values of a rows x cols grid
func (q *QLearning) StateValues(rows, cols int) *mat.Dense {
	return q.table.StateValues(rows, cols, q.NumActions())
}
