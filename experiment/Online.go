package experiment

import (
	"context"
	"fmt"
	"log"

	"github.com/samuelfneumann/gridq/agent"
	env "github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/experiment/trackers"
	ts "github.com/samuelfneumann/gridq/timestep"
	"github.com/samuelfneumann/gridq/utils/progressbar"
)

// EpisodeResult summarizes a single training episode
type EpisodeResult struct {
	Episode int     // index of the episode, starting at 0
	Steps   int     // number of actions taken
	Return  float64 // sum of rewards
	Success bool    // whether the goal was reached
	Epsilon float64 // exploration rate after decay at the end of the episode

	// Path holds the states visited in the episode, starting state
	// included. It is only recorded for the first episode and for each
	// reported episode.
	Path []env.State
}

// Rollout is a greedy run of a trained agent in an environment
type Rollout struct {
	Path    []env.State // visited states, starting state included
	Return  float64
	Steps   int
	Reached bool // whether the goal was reached
}

// Online is an Experiment that runs an agent online only, learning from
// each transition as it happens
type Online struct {
	env.Environment
	agent.Agent
	ender ts.Ender

	episodes    int
	reportEvery int
	episode     int
	trackers    []trackers.Tracker

	logger *log.Logger
	bar    *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The Config determines how many
// episodes are run and how long each episode may last, and the t
// parameter is a slice of trackers.Tracker which determine what data is
// saved.
func NewOnline(e env.Environment, a agent.Agent, c Config,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		ender:       ts.NewStepLimit(c.MaxSteps),
		episodes:    c.Episodes,
		reportEvery: c.ReportEvery,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetLogger sets the logger progress reports are written to. Reports
// are not written if l is nil.
func (o *Online) SetLogger(l *log.Logger) {
	o.logger = l
}

// SetProgressBar sets a progress bar which is incremented once per
// episode
func (o *Online) SetProgressBar(bar *progressbar.ManualProgressBar) {
	o.bar = bar
}

// RunEpisode runs a single episode of the experiment. The episode ends
// when the goal is reached or the step budget is exhausted, after which
// the agent's exploration rate is decayed once.
func (o *Online) RunEpisode() (EpisodeResult, error) {
	result := EpisodeResult{Episode: o.episode}
	record := o.record(o.episode)

	state := o.Environment.Reset()
	step := ts.New(ts.First, 0.0, state, 0)
	o.track(step)
	if record {
		result.Path = append(result.Path, state)
	}

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(state)
		next, reward, done, err := o.Environment.Step(action)
		if err != nil {
			return result, fmt.Errorf("runEpisode: episode %d: %w",
				o.episode, err)
		}
		o.Agent.Update(state, action, reward, next)

		step = ts.New(ts.Mid, reward, next, step.Number+1)
		if done {
			step.StepType = ts.Last
			step.SetEnd(ts.TerminalStateReached)
		}
		o.ender.End(&step)

		// Cache the environment step in each Tracker
		o.track(step)

		result.Steps = step.Number
		result.Return += reward
		if record {
			result.Path = append(result.Path, next)
		}
		state = next
	}

	result.Success = step.EndType() == ts.TerminalStateReached
	o.Agent.DecayEpsilon()
	result.Epsilon = o.Agent.Epsilon()
	o.episode++

	return result, nil
}

// Run runs the entire experiment for all episodes. The context is
// checked between episodes; if it is cancelled, the results of the
// finished episodes are returned together with the context's error.
func (o *Online) Run(ctx context.Context) ([]EpisodeResult, error) {
	results := make([]EpisodeResult, 0, o.episodes)
	successes := 0

	for i := 0; i < o.episodes; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := o.RunEpisode()
		if err != nil {
			return results, fmt.Errorf("run: %w", err)
		}
		results = append(results, result)

		if result.Success {
			successes++
		}
		if o.reportEvery > 0 && (i+1)%o.reportEvery == 0 {
			o.report(i+1, result.Epsilon, successes)
			successes = 0
		}

		if o.bar != nil {
			o.bar.Increment()
			o.bar.Display()
		}
	}

	if o.bar != nil {
		o.bar.Close()
	}
	return results, nil
}

// fixedStarter is an environment which can be reset to its configured
// start state regardless of how training episodes are started
type fixedStarter interface {
	StartState() env.State
	ResetTo(s env.State) (env.State, error)
}

// Evaluate runs a single greedy episode of at most maxSteps steps. The
// rollout begins at the environment's configured start state if it has
// one, even when training episodes start at random cells, and otherwise
// wherever Reset places the agent. The agent does not learn from the
// rollout and its exploration rate is left untouched.
func (o *Online) Evaluate(maxSteps int) (Rollout, error) {
	var state env.State
	if e, ok := o.Environment.(fixedStarter); ok {
		var err error
		if state, err = e.ResetTo(e.StartState()); err != nil {
			return Rollout{}, fmt.Errorf("evaluate: %w", err)
		}
	} else {
		state = o.Environment.Reset()
	}
	rollout := Rollout{Path: []env.State{state}}

	for rollout.Steps < maxSteps {
		action := o.Agent.BestAction(state)
		next, reward, done, err := o.Environment.Step(action)
		if err != nil {
			return rollout, fmt.Errorf("evaluate: %w", err)
		}

		rollout.Steps++
		rollout.Return += reward
		rollout.Path = append(rollout.Path, next)
		state = next

		if done {
			rollout.Reached = true
			break
		}
	}

	return rollout, nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// Episodes returns the number of episodes run so far
func (o *Online) Episodes() int {
	return o.episode
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// record returns whether the path of an episode should be recorded
func (o *Online) record(episode int) bool {
	if episode == 0 {
		return true
	}
	return o.reportEvery > 0 && (episode+1)%o.reportEvery == 0
}

// report logs the exploration rate and the share of successful episodes
// since the last report
func (o *Online) report(episode int, epsilon float64, successes int) {
	if o.logger == nil {
		return
	}
	o.logger.Printf("Training %d/%d - Random moves: %.1f%% - "+
		"Success rate: %.1f%%", episode, o.episodes, epsilon*100,
		float64(successes)/float64(o.reportEvery)*100)
}
