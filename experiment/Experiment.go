// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/gridq/agent/tabular/qlearning"
	"github.com/samuelfneumann/gridq/environment/envconfig"
	"github.com/samuelfneumann/gridq/environment/gridworld"
)

// maxConfigSize is the largest configuration file LoadConfig will read
const maxConfigSize = 1 << 20

// Config represents a configuration of an experiment.
type Config struct {
	// Episodes is the number of training episodes to run
	Episodes int `json:"episodes"`

	// MaxSteps is the step budget of each training episode
	MaxSteps int `json:"max_steps"`

	// ReportEvery is the number of episodes between progress reports.
	// Paths of the first episode and of each reported episode are
	// recorded.
	ReportEvery int `json:"report_every"`

	// EvalSteps is the step budget of the greedy rollout run after
	// training
	EvalSteps int `json:"eval_steps"`

	Seed  uint64           `json:"seed"`
	Env   envconfig.Config `json:"env"`
	Agent qlearning.Config `json:"agent"`
}

// DefaultConfig returns the default experiment: 1000 episodes of at most
// 200 steps on the default 15x15 grid world
func DefaultConfig() Config {
	return Config{
		Episodes:    1000,
		MaxSteps:    200,
		ReportEvery: 100,
		EvalSteps:   100,
		Seed:        0,
		Env:         envconfig.Default(),
		Agent:       qlearning.DefaultConfig(),
	}
}

// LoadConfig loads a Config from a JSON file. Fields omitted from the
// file keep their values from DefaultConfig, except that an "env" object
// replaces the default grid world entirely. The file must have a .json
// extension and be at most 1MB.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("loadConfig: config file must have "+
			".json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not stat config "+
			"file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("loadConfig: config file too large: "+
			"%d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not read config "+
			"file: %w", err)
	}

	// An env block describes a whole grid, so it replaces the default
	// grid instead of being merged over it
	var sections struct {
		Env json.RawMessage `json:"env"`
	}
	if err := json.Unmarshal(data, &sections); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse config: %w",
			err)
	}

	c := DefaultConfig()
	if sections.Env != nil {
		c.Env = envconfig.Config{}
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse config: %w",
			err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}
	return c, nil
}

// Validate checks that the configuration describes a runnable experiment
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("validate: episodes = %d must be positive",
			c.Episodes)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("validate: max steps = %d must be positive",
			c.MaxSteps)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("validate: report every = %d must be non-negative",
			c.ReportEvery)
	}
	if c.EvalSteps < 1 {
		return fmt.Errorf("validate: eval steps = %d must be positive",
			c.EvalSteps)
	}
	if err := c.Env.Validate(); err != nil {
		return err
	}
	return c.Agent.Validate()
}

// Create creates the environment and agent of the experiment, both
// seeded with the experiment seed
func (c Config) Create() (*gridworld.GridWorld, *qlearning.QLearning,
	error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	env, err := c.Env.Create(c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("create: could not create environment: "+
			"%w", err)
	}

	if n := env.NumActions(); c.Agent.NActions != n {
		return nil, nil, fmt.Errorf("create: agent has %d actions but "+
			"environment has %d", c.Agent.NActions, n)
	}

	agent, err := qlearning.New(c.Agent, c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("create: could not create agent: %w", err)
	}

	return env, agent, nil
}
