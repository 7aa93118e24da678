// Package reactive implements a stateless rule-based agent.
//
// The agent keeps no internal state across cycles beyond the single
// most recent observation. Behavior is a table of condition-action
// rules keyed by a discriminator string, with an optional default
// action when nothing matches.
package reactive

import (
	"fmt"

	"github.com/rickchristie/percept"
)

// RuleFunc produces an Action from a raw observation payload. Rule
// functions must not panic for any payload the driver can route to
// them.
type RuleFunc func(data any) percept.Action

// Agent is a reactive agent: it maps the current observation directly
// to an action through its rule table, without memory or learning.
type Agent struct {
	percept.Core

	rules         map[string]RuleFunc
	defaultAction *percept.Action
	current       *percept.Observation
}

// New creates a reactive agent with an empty rule table and no default
// action.
func New(name string) *Agent {
	return &Agent{
		Core:  percept.NewCore(name),
		rules: make(map[string]RuleFunc),
	}
}

// AddRule registers a condition-action rule under the given
// discriminator key. Registering a second rule under the same key
// overwrites the first (last write wins). Returns the agent for
// chaining.
func (a *Agent) AddRule(condition string, fn RuleFunc) *Agent {
	a.rules[condition] = fn
	return a
}

// SetDefaultAction sets the fallback action used when no rule matches.
// Returns the agent for chaining.
func (a *Agent) SetDefaultAction(action percept.Action) *Agent {
	a.defaultAction = &action
	return a
}

// Perceive stores the observation as the current stimulus and appends
// it to the history.
func (a *Agent) Perceive(obs percept.Observation) {
	a.current = &obs
	a.AppendObservation(obs)
}

// Decide resolves the current observation against the rule table.
//
// Resolution is a strict, short-circuiting precedence chain:
//
//  1. No current observation: return the default action (or nil).
//  2. Payload is a map with a "type" field matching a rule key:
//     invoke that rule with the full payload.
//  3. The payload's text rendering matches a rule key: invoke it.
//  4. Otherwise return the default action (or nil).
func (a *Agent) Decide() *percept.Action {
	if a.current == nil {
		return a.defaultAction
	}

	data := a.current.Data
	if m, ok := data.(map[string]any); ok {
		if obsType, ok := m["type"].(string); ok {
			if fn, ok := a.rules[obsType]; ok {
				action := fn(data)
				return &action
			}
		}
	}

	if fn, ok := a.rules[fmt.Sprintf("%v", data)]; ok {
		action := fn(data)
		return &action
	}

	return a.defaultAction
}

// Act executes the action and reports what was done. The Result
// carries "agent", "action", "parameters", and "success" keys.
func (a *Agent) Act(action percept.Action) percept.Result {
	return percept.Result{
		"agent":      a.Name(),
		"action":     action.Name,
		"parameters": action.Parameters,
		"success":    true,
	}
}

// Reset clears the histories and the current observation slot. The
// rule table and default action are configuration and survive.
func (a *Agent) Reset() {
	a.Core.Reset()
	a.current = nil
}

// Compile-time check that Agent implements percept.Agent.
var _ percept.Agent = (*Agent)(nil)
