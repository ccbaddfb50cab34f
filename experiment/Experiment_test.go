package experiment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gridq/environment"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	assert.Equal(t, 1000, c.Episodes)
	assert.Equal(t, 200, c.MaxSteps)
	assert.Equal(t, 100, c.ReportEvery)
	assert.Equal(t, 100, c.EvalSteps)
	assert.Equal(t, 15, c.Env.Size)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "exp.json", `{
		"episodes": 50,
		"seed": 9,
		"agent": {"learning_rate": 0.5},
		"env": {"layout": ["S.", ".G"]}
	}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, c.Episodes)
	assert.Equal(t, uint64(9), c.Seed)
	assert.Equal(t, 200, c.MaxSteps)
	assert.Equal(t, 0.5, c.Agent.LearningRate)
	assert.Equal(t, 0.95, c.Agent.Discount)

	g, _, err := c.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, environment.State{Row: 1, Col: 1}, g.GoalState())
}

func TestLoadConfigEnvReplacesDefaultGrid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		size      int
		obstacles int
	}{
		{"OpenSmallGrid", `{"env": {"size": 5, "start": {"row": 0, "col": 0},
			"goal": {"row": 4, "col": 4}}}`, 5, 0},
		{"OpenDefaultSize", `{"env": {"size": 15,
			"goal": {"row": 14, "col": 14}}}`, 15, 0},
		{"NoEnv", `{"episodes": 10}`, 15, 36},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := LoadConfig(writeConfig(t, "exp.json", test.content))
			require.NoError(t, err)

			g, _, err := c.Create()
			require.NoError(t, err)
			assert.Equal(t, test.size, g.Size())
			assert.Len(t, g.Obstacles(), test.obstacles)
		})
	}
}

func TestLoadConfigRoundTripWithoutObstacles(t *testing.T) {
	c := DefaultConfig()
	c.Env.Size = 6
	c.Env.Goal = environment.State{Row: 5, Col: 5}
	c.Env.Obstacles = nil

	data, err := json.Marshal(c)
	require.NoError(t, err)

	loaded, err := LoadConfig(writeConfig(t, "exp.json", string(data)))
	require.NoError(t, err)
	assert.Empty(t, loaded.Env.Obstacles)
	assert.Equal(t, c.Env, loaded.Env)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"Extension": writeConfig(t, "exp.yaml", `{}`),
		"Missing":   filepath.Join(t.TempDir(), "missing.json"),
		"Malformed": writeConfig(t, "bad.json", `{"episodes": `),
		"Invalid":   writeConfig(t, "invalid.json", `{"max_steps": 0}`),
		"BadAgent":  writeConfig(t, "agent.json", `{"agent": {"discount": 2}}`),
		"BadEnv":    writeConfig(t, "env.json", `{"env": {"size": -1}}`),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"Episodes":    func(c *Config) { c.Episodes = 0 },
		"MaxSteps":    func(c *Config) { c.MaxSteps = -1 },
		"ReportEvery": func(c *Config) { c.ReportEvery = -1 },
		"EvalSteps":   func(c *Config) { c.EvalSteps = 0 },
		"Epsilon":     func(c *Config) { c.Agent.EpsilonMin = 2 },
		"Goal": func(c *Config) {
			c.Env.Goal = environment.State{Row: 20, Col: 0}
		},
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
