package envconfig

import (
	"encoding/json"
	"testing"

	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	g, err := c.Create(1)
	require.NoError(t, err)

	assert.Equal(t, 15, g.Size())
	assert.Equal(t, environment.State{}, g.StartState())
	assert.Equal(t, environment.State{Row: 14, Col: 14}, g.GoalState())
	assert.Len(t, g.Obstacles(), 12+12+6+6)
	assert.True(t, g.IsObstacle(environment.State{Row: 4, Col: 11}))
	assert.False(t, g.IsObstacle(environment.State{Row: 4, Col: 12}))
	assert.False(t, g.IsObstacle(environment.State{Row: 12, Col: 7}))
}

func TestLayoutOverridesGeometry(t *testing.T) {
	c := Config{
		Size:   9,
		Layout: []string{"S.", "#G"},
	}

	g, err := c.Create(1)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, []environment.State{{Row: 1, Col: 0}}, g.Obstacles())
}

func TestRewardsOverride(t *testing.T) {
	c := Config{
		Layout:  []string{"SG", ".."},
		Rewards: &gridworld.Rewards{Goal: 1, Obstacle: -1, TimeStep: 0},
	}

	g, err := c.Create(1)
	require.NoError(t, err)

	_, r, done, err := g.Step(environment.Right)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 1.0, r)
}

func TestRandomStart(t *testing.T) {
	c := Config{
		Layout:      []string{"S.#", "...", "#.G"},
		RandomStart: true,
	}

	g, err := c.Create(5)
	require.NoError(t, err)

	seen := make(map[environment.State]bool)
	for i := 0; i < 500; i++ {
		s := g.Reset()
		require.False(t, g.IsObstacle(s), "start on obstacle %v", s)
		require.False(t, g.AtGoal(s), "start on goal")
		seen[s] = true
	}
	assert.Len(t, seen, len(g.FreeCells()))
}

func TestInvalid(t *testing.T) {
	c := Config{Size: 3, Goal: environment.State{Row: 3, Col: 3}}

	err := c.Validate()
	assert.True(t, environment.IsConfig(err), "want config error, have %v", err)

	_, err = c.Create(1)
	assert.True(t, environment.IsConfig(err), "want config error, have %v", err)
}

func TestJSON(t *testing.T) {
	data := []byte(`{
		"size": 4,
		"start": {"row": 0, "col": 1},
		"goal": {"row": 3, "col": 3},
		"obstacles": [{"row": 1, "col": 1}],
		"rewards": {"goal": 10, "obstacle": -10, "time_step": -0.5}
	}`)

	var c Config
	require.NoError(t, json.Unmarshal(data, &c))

	g, err := c.Create(1)
	require.NoError(t, err)
	assert.Equal(t, environment.State{Row: 0, Col: 1}, g.Reset())
	assert.Equal(t, 10.0, g.Max())
	assert.Equal(t, -10.0, g.Min())
}
