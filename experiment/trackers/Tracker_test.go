package trackers

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samuelfneumann/gridq/environment"
	ts "github.com/samuelfneumann/gridq/timestep"
)

// episode returns the timesteps of an episode with the given rewards
// after the first step, ending with end
func episode(rewards []float64, end ts.EndType) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, environment.State{}, 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, environment.State{Row: i + 1}, i+1)
		if i == len(rewards)-1 {
			step.StepType = ts.Last
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func trackAll(t Tracker, episodes ...[]ts.TimeStep) {
	for _, ep := range episodes {
		for _, step := range ep {
			t.Track(step)
		}
	}
}

func TestTrackers(t *testing.T) {
	episodes := [][]ts.TimeStep{
		episode([]float64{-1, -1, 100}, ts.TerminalStateReached),
		episode([]float64{-1, -1, -1, -1}, ts.Timeout),
		episode([]float64{100}, ts.TerminalStateReached),
	}

	tests := []struct {
		name    string
		tracker Tracker
		want    []float64
	}{
		{"Return", NewReturn(""), []float64{98, -4, 100}},
		{"EpisodeLength", NewEpisodeLength(""), []float64{3, 4, 1}},
		{"Success", NewSuccess(""), []float64{1, 0, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trackAll(test.tracker, episodes...)
			if diff := cmp.Diff(test.want, test.tracker.Data()); diff != "" {
				t.Errorf("data mismatch (-want +have):\n%s", diff)
			}
		})
	}
}

func TestUnfinishedEpisodeNotSaved(t *testing.T) {
	r := NewReturn("")
	steps := episode([]float64{-1, -1}, ts.Timeout)
	steps[len(steps)-1].StepType = ts.Mid

	trackAll(r, steps)
	if len(r.Data()) != 0 {
		t.Errorf("data: want no episodes, have %v", r.Data())
	}
}

func TestReturnNonSequentialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: want panic on non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, environment.State{}, 0))
	r.Track(ts.New(ts.Mid, 0, environment.State{}, 2))
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)
	trackAll(r, episode([]float64{-1, 100}, ts.TerminalStateReached),
		episode([]float64{-1, -1}, ts.Timeout))

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{99, -2}, data); diff != "" {
		t.Errorf("loaded data mismatch (-want +have):\n%s", diff)
	}
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("loadData: want error for missing file")
	}
}
