package tabular

import (
	"testing"

	"github.com/samuelfneumann/gridq/environment"
)

func TestGetDefault(t *testing.T) {
	q := NewQTable()
	s := environment.State{Row: 3, Col: 4}

	if v := q.Get(s, environment.Down); v != 0.0 {
		t.Errorf("get: want 0.0, have %v", v)
	}
	if q.Has(s, environment.Down) || q.Len() != 0 {
		t.Error("get: reading inserted an entry")
	}
}

func TestSetGet(t *testing.T) {
	q := NewQTable()
	s := environment.State{Row: 1, Col: 1}

	q.Set(s, environment.Left, -3.5)
	q.Set(s, environment.Left, 1.5)
	q.Set(s, environment.Up, 0.0)

	if v := q.Get(s, environment.Left); v != 1.5 {
		t.Errorf("get: want 1.5, have %v", v)
	}
	if !q.Has(s, environment.Up) {
		t.Error("has: explicit zero entry reported missing")
	}
	if q.Len() != 2 {
		t.Errorf("len: want 2, have %d", q.Len())
	}
}

func TestMax(t *testing.T) {
	q := NewQTable()
	s := environment.State{}

	if m := q.Max(s, environment.NumActions); m != 0.0 {
		t.Errorf("max: want 0.0 in unseen state, have %v", m)
	}

	q.Set(s, environment.Up, -2)
	q.Set(s, environment.Right, -1)
	q.Set(s, environment.Down, -4)
	q.Set(s, environment.Left, -3)
	if m := q.Max(s, environment.NumActions); m != -1 {
		t.Errorf("max: want -1, have %v", m)
	}
}

func TestValuesReusesBuffer(t *testing.T) {
	q := NewQTable()
	s := environment.State{Row: 0, Col: 2}
	q.Set(s, environment.Down, 7)

	buf := make([]float64, environment.NumActions)
	values := q.Values(buf, s, environment.NumActions)
	if &values[0] != &buf[0] {
		t.Error("values: buffer of correct length was not reused")
	}
	if values[environment.Down] != 7 {
		t.Errorf("values: want 7 for Down, have %v", values)
	}

	if values := q.Values(nil, s, 2); len(values) != 2 {
		t.Errorf("values: want length 2, have %d", len(values))
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	q := NewQTable()
	s := environment.State{}
	q.Set(s, environment.Up, 1)

	snapshot := q.Snapshot()
	snapshot[Key{s, environment.Up}] = 5
	if v := q.Get(s, environment.Up); v != 1 {
		t.Errorf("snapshot: modifying snapshot changed table to %v", v)
	}
}

func TestStateValues(t *testing.T) {
	q := NewQTable()
	q.Set(environment.State{Row: 0, Col: 1}, environment.Right, 3)
	q.Set(environment.State{Row: 0, Col: 1}, environment.Left, 4)
	q.Set(environment.State{Row: 1, Col: 0}, environment.Up, -2)

	v := q.StateValues(2, 2, environment.NumActions)
	if r, c := v.Dims(); r != 2 || c != 2 {
		t.Fatalf("stateValues: want 2x2, have %dx%d", r, c)
	}

	want := [][]float64{{0, 4}, {0, 0}}
	for i := range want {
		for j := range want[i] {
			if have := v.At(i, j); have != want[i][j] {
				t.Errorf("stateValues (%d, %d): want %v, have %v", i, j,
					want[i][j], have)
			}
		}
	}
}
