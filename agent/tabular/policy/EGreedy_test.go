package policy

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridq/agent/tabular"
	"github.com/samuelfneumann/gridq/environment"
)

func TestNewEGreedyErrors(t *testing.T) {
	table := tabular.NewQTable()
	src := rand.NewSource(1)

	if _, err := NewEGreedy(-0.1, table, 4, src); err == nil {
		t.Error("newEGreedy: want error for negative epsilon")
	}
	if _, err := NewEGreedy(1.1, table, 4, src); err == nil {
		t.Error("newEGreedy: want error for epsilon above 1")
	}
	if _, err := NewEGreedy(0.1, table, 0, src); err == nil {
		t.Error("newEGreedy: want error for zero actions")
	}
}

func TestEGreedyDistribution(t *testing.T) {
	table := tabular.NewQTable()
	s := environment.State{Row: 2, Col: 1}
	table.Set(s, environment.Right, 1)

	const e = 0.2
	p, err := NewEGreedy(e, table, environment.NumActions, rand.NewSource(8))
	if err != nil {
		t.Fatal(err)
	}

	const trials = 20000
	counts := make([]float64, environment.NumActions)
	for i := 0; i < trials; i++ {
		counts[p.SelectAction(s)]++
	}

	// P(greedy) = 1 - ε + ε/|A|, P(other) = ε/|A|
	want := []float64{e / 4, 1 - e + e/4, e / 4, e / 4}
	for a := range counts {
		have := counts[a] / trials
		if have < want[a]-0.02 || have > want[a]+0.02 {
			t.Errorf("selectAction: action %d frequency %.3f, want %.3f", a,
				have, want[a])
		}
	}
}

func TestGreedyTieBreak(t *testing.T) {
	table := tabular.NewQTable()
	s := environment.State{}
	table.Set(s, environment.Up, 5)
	table.Set(s, environment.Down, 5)
	table.Set(s, environment.Left, 5)

	p, err := NewGreedy(table, environment.NumActions, rand.NewSource(4))
	if err != nil {
		t.Fatal(err)
	}

	const trials = 3000
	counts := make([]int, environment.NumActions)
	for i := 0; i < trials; i++ {
		counts[p.SelectAction(s)]++
	}

	if counts[environment.Right] != 0 {
		t.Errorf("selectAction: non-maximal action chosen %d times",
			counts[environment.Right])
	}
	for _, a := range []environment.Action{environment.Up, environment.Down,
		environment.Left} {
		if counts[a] < trials/5 {
			t.Errorf("selectAction: maximizer %v chosen %d/%d times", a,
				counts[a], trials)
		}
	}
}

func TestGreedyIgnoresEpsilon(t *testing.T) {
	table := tabular.NewQTable()
	s := environment.State{}
	table.Set(s, environment.Left, 1)

	p, err := NewGreedy(table, environment.NumActions, rand.NewSource(4))
	if err != nil {
		t.Fatal(err)
	}
	p.SetEpsilon(1)

	for i := 0; i < 500; i++ {
		if a := p.SelectAction(s); a != environment.Left {
			t.Fatalf("selectAction: want %v, have %v", environment.Left, a)
		}
	}
}

func TestPoliciesShareTable(t *testing.T) {
	table := tabular.NewQTable()
	p, err := NewGreedy(table, environment.NumActions, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	s := environment.State{Row: 4, Col: 4}

	table.Set(s, environment.Up, 3)
	if a := p.SelectAction(s); a != environment.Up {
		t.Errorf("selectAction: want %v after update, have %v",
			environment.Up, a)
	}
}
