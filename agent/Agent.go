// Package agent defines an agent interface
package agent

import "github.com/samuelfneumann/gridq/environment"

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy. The Learner and Policy of an Agent share the same action
// values so that any update made by the Learner is reflected in the
// actions the Policy chooses.
type Agent interface {
	Learner
	Policy
	Explorer

	// BestAction returns a greedy action in a state, ignoring any
	// exploration. It is used to evaluate or deploy a learned policy.
	BestAction(s environment.State) environment.Action
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Update records that taking action a in state s led to reward r
	// and state next, and updates the learned values accordingly
	Update(s environment.State, a environment.Action, r float64,
		next environment.State)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Agents usually have a
// target and behaviour policy.
type Policy interface {
	SelectAction(s environment.State) environment.Action
}

// Explorer is an agent whose rate of exploration decays over episodes
type Explorer interface {
	// DecayEpsilon decays the exploration rate, usually once per episode
	DecayEpsilon()

	// Epsilon returns the current exploration rate
	Epsilon() float64
}
