package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gridq/environment"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	NActions     int     `json:"n_actions"`     // must match the environment
	LearningRate float64 `json:"learning_rate"` // α in (0, 1]
	Discount     float64 `json:"discount"`      // γ in [0, 1]
	Epsilon      float64 `json:"epsilon"`       // initial ε of the behaviour policy
	EpsilonDecay float64 `json:"epsilon_decay"` // multiplicative decay of ε per episode
	EpsilonMin   float64 `json:"epsilon_min"`   // floor of ε
}

// DefaultConfig returns the default Config
func DefaultConfig() Config {
	return Config{
		NActions:     environment.NumActions,
		LearningRate: 0.1,
		Discount:     0.95,
		Epsilon:      1.0,
		EpsilonDecay: 0.995,
		EpsilonMin:   0.01,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.NActions < 1 {
		return fmt.Errorf("validate: need at least one action, have %d",
			c.NActions)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("validate: learning rate = %v not in (0, 1]",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount = %v not in [0, 1]",
			c.Discount)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon = %v not in [0, 1]", c.Epsilon)
	}
	if c.EpsilonDecay <= 0 || c.EpsilonDecay > 1 {
		return fmt.Errorf("validate: epsilon decay = %v not in (0, 1]",
			c.EpsilonDecay)
	}
	if c.EpsilonMin < 0 || c.EpsilonMin > c.Epsilon {
		return fmt.Errorf("validate: epsilon min = %v not in [0, %v]",
			c.EpsilonMin, c.Epsilon)
	}
	return nil
}
