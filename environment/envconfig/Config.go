// Package envconfig provides configuration structs for configuring
// grid world environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/environment/gridworld"
)

// Config implements a specific configuration of a grid world.
//
// A grid world can be described either by its size, start, goal, and
// obstacle cells, or by a text Layout (see gridworld.Parse). If Layout
// is non-empty it takes precedence over the other geometry fields.
type Config struct {
	Size      int                 `json:"size,omitempty"`
	Start     environment.State   `json:"start"`
	Goal      environment.State   `json:"goal"`
	Obstacles []environment.State `json:"obstacles,omitempty"`
	Layout    []string            `json:"layout,omitempty"`

	// Rewards overrides the default reward schedule when non-nil
	Rewards *gridworld.Rewards `json:"rewards,omitempty"`

	// RandomStart samples the starting cell of each episode uniformly
	// from the free cells of the grid instead of using Start
	RandomStart bool `json:"random_start,omitempty"`
}

// Default returns the default 15x15 grid world with three obstacle walls
// between the start in the top left corner and the goal in the bottom
// right corner
func Default() Config {
	var obstacles []environment.State
	wall := func(row, from, to int) {
		for c := from; c <= to; c++ {
			obstacles = append(obstacles, environment.State{Row: row, Col: c})
		}
	}
	wall(4, 0, 11)
	wall(8, 3, 14)
	wall(12, 0, 5)
	wall(12, 9, 14)

	return Config{
		Size:      15,
		Start:     environment.State{Row: 0, Col: 0},
		Goal:      environment.State{Row: 14, Col: 14},
		Obstacles: obstacles,
	}
}

// Create returns the environment described by the Config. The seed is
// only used if starting cells are sampled.
func (c Config) Create(seed uint64) (*gridworld.GridWorld, error) {
	var opts []gridworld.Option
	if c.Rewards != nil {
		opts = append(opts, gridworld.WithRewards(*c.Rewards))
	}

	g, err := c.create(opts...)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	if !c.RandomStart {
		return g, nil
	}

	starter, err := environment.NewFreeCellStarter(g.FreeCells(), seed)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	gridworld.WithStarter(starter)(g)

	return g, nil
}

func (c Config) create(opts ...gridworld.Option) (*gridworld.GridWorld,
	error) {
	if len(c.Layout) > 0 {
		return gridworld.Parse(c.Layout, opts...)
	}
	return gridworld.New(c.Size, c.Start, c.Goal, c.Obstacles, opts...)
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	_, err := c.create()
	return err
}
