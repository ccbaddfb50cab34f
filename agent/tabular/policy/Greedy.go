package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridq/agent/tabular"
	"github.com/samuelfneumann/gridq/environment"
)

// Greedy is a policy which always selects an action of maximal value,
// breaking ties uniformly at random
type Greedy struct {
	*EGreedy
}

// NewGreedy creates a new Greedy policy
func NewGreedy(table *tabular.QTable, numActions int,
	src rand.Source) (*Greedy, error) {
	p, err := NewEGreedy(0.0, table, numActions, src)
	if err != nil {
		return nil, err
	}
	return &Greedy{p}, nil
}

// SelectAction selects a greedy action, ignoring ε entirely
func (g *Greedy) SelectAction(s environment.State) environment.Action {
	return g.greedy(s)
}
