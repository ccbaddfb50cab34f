// Package tabular implements a sparse table of action values for
// tabular reinforcement learning agents.
//
// A QTable maps (state, action) pairs to estimates of the expected
// discounted return of taking the action in the state. Pairs which were
// never written read as 0.0, and reading never inserts them. The table
// only grows: entries are overwritten in place but never removed.
//
// A QTable is not safe for concurrent use. Updates are read-modify-write
// operations, so callers sharing a table between goroutines must
// serialize all access to it.
package tabular

import (
	"github.com/samuelfneumann/gridq/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Key indexes a single entry of a QTable
type Key struct {
	State  environment.State
	Action environment.Action
}

// QTable is a sparse table of action values
type QTable struct {
	values map[Key]float64
}

// NewQTable returns a new, empty QTable
func NewQTable() *QTable {
	return &QTable{values: make(map[Key]float64)}
}

// Get returns the value of action a in state s, or 0.0 if the pair has
// never been set
func (q *QTable) Get(s environment.State, a environment.Action) float64 {
	return q.values[Key{s, a}]
}

// Set overwrites the value of action a in state s
func (q *QTable) Set(s environment.State, a environment.Action, v float64) {
	q.values[Key{s, a}] = v
}

// Has returns whether the value of action a in state s has been set
func (q *QTable) Has(s environment.State, a environment.Action) bool {
	_, ok := q.values[Key{s, a}]
	return ok
}

// Values stores the values of actions 0, 1, ..., numActions-1 in state s
// in dst and returns it. If dst does not have length numActions, a new
// slice is allocated.
func (q *QTable) Values(dst []float64, s environment.State,
	numActions int) []float64 {
	if len(dst) != numActions {
		dst = make([]float64, numActions)
	}
	for a := range dst {
		dst[a] = q.Get(s, environment.Action(a))
	}
	return dst
}

// Max returns the maximum value over actions 0, 1, ..., numActions-1 in
// state s
func (q *QTable) Max(s environment.State, numActions int) float64 {
	return floats.Max(q.Values(nil, s, numActions))
}

// Len returns the number of entries which have been set
func (q *QTable) Len() int {
	return len(q.values)
}

// Snapshot returns a copy of every entry which has been set
func (q *QTable) Snapshot() map[Key]float64 {
	snapshot := make(map[Key]float64, len(q.values))
	for k, v := range q.values {
		snapshot[k] = v
	}
	return snapshot
}

// StateValues returns the state values V(s) = max_a Q(s, a) of a
// rows x cols grid as a matrix, with element (i, j) holding the value of
// state (i, j)
func (q *QTable) StateValues(rows, cols, numActions int) *mat.Dense {
	values := mat.NewDense(rows, cols, nil)
	buf := make([]float64, numActions)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := environment.State{Row: i, Col: j}
			values.Set(i, j, floats.Max(q.Values(buf, s, numActions)))
		}
	}
	return values
}
