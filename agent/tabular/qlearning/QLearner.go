package qlearning

import (
	"github.com/samuelfneumann/gridq/agent/tabular"
	"github.com/samuelfneumann/gridq/environment"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	table        *tabular.QTable
	numActions   int
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct which updates the values
// in table
func NewQLearner(table *tabular.QTable, numActions int, learningRate,
	discount float64) *QLearner {
	return &QLearner{table, numActions, learningRate, discount}
}

// Update performs the one-step Q-learning update
//
//	Q(s, a) ← Q(s, a) + α(r + γ max_a' Q(next, a') - Q(s, a))
//
// Exactly one entry of the table, the entry of (s, a), is written.
func (q *QLearner) Update(s environment.State, a environment.Action,
	r float64, next environment.State) {
	currentEstimate := q.table.Get(s, a)

	// Create the update target
	maxVal := q.table.Max(next, q.numActions)
	target := r + q.discount*maxVal

	q.table.Set(s, a, currentEstimate+q.learningRate*(target-currentEstimate))
}
