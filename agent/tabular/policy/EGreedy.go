// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridq/agent/tabular"
	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a QTable.
//
// With probability ε, EGreedy selects an action uniformly at random.
// Otherwise it selects an action with maximal value, breaking ties
// uniformly at random among all maximizing actions so that no action is
// systematically preferred in unexplored states.
type EGreedy struct {
	table      *tabular.QTable
	epsilon    float64
	numActions int
	rng        *rand.Rand

	values []float64 // buffer of action values
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected, table holds the
// action values, and numActions is the number of actions in the
// environment. The policy draws all random numbers from src.
func NewEGreedy(e float64, table *tabular.QTable, numActions int,
	src rand.Source) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon = %v not in [0, 1]", e)
	}
	if numActions < 1 {
		return nil, fmt.Errorf("newEGreedy: need at least one action, "+
			"have %d", numActions)
	}

	return &EGreedy{
		table:      table,
		epsilon:    e,
		numActions: numActions,
		rng:        rand.New(src),
		values:     make([]float64, numActions),
	}, nil
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(s environment.State) environment.Action {
	if p.rng.Float64() < p.epsilon {
		return environment.Action(p.rng.Intn(p.numActions))
	}
	return p.greedy(s)
}

// greedy returns an action of maximal value in s, chosen uniformly at
// random among ties
func (p *EGreedy) greedy(s environment.State) environment.Action {
	p.values = p.table.Values(p.values, s, p.numActions)
	_, maxActions := floatutils.MaxSlice(p.values)

	if len(maxActions) == 1 {
		return environment.Action(maxActions[0])
	}
	return environment.Action(maxActions[p.rng.Intn(len(maxActions))])
}

// SetEpsilon sets the probability of selecting a random action
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// NumActions returns the number of actions the policy selects between
func (p *EGreedy) NumActions() int {
	return p.numActions
}
