// Package qlearn implements a tabular Q-learning agent.
//
// The agent derives a string state key from each observation
// (percept.CanonicalKey), selects actions with an epsilon-greedy
// policy over its Q-table, and updates the table with the one-step
// temporal-difference rule on each Learn call.
package qlearn

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rickchristie/percept"
)

// Defaults applied by New.
const (
	DefaultLearningRate    = 0.1
	DefaultDiscountFactor  = 0.9
	DefaultExplorationRate = 0.1
)

// Experience is one audit-trail entry written per successful learning
// update. The learning algorithm never reads it back.
type Experience struct {
	// ID uniquely identifies the entry.
	ID string

	// State is the state the rewarded action was taken in.
	State string

	// Action is the rewarded action's name.
	Action string

	// Reward is the raw feedback signal received.
	Reward float64

	// NextState is the successor state used for bootstrapping.
	NextState string

	// QValue is the updated value of (State, Action).
	QValue float64

	// At is when the update happened.
	At time.Time
}

// Agent is a learning agent that improves its decisions with tabular
// Q-learning.
//
// It tracks three transient markers beside the base histories: the
// current state (set by the most recent Perceive), and the last
// state/action pair (shifted on Perceive, set on Decide). Learn uses
// the pair to attribute a reward to the previous decision while
// bootstrapping from the current state, which therefore must already
// reflect the post-action observation; RunCycleWithFeedback takes
// care of that ordering.
type Agent struct {
	percept.Core

	actions         []string
	learningRate    float64
	discountFactor  float64
	explorationRate float64

	table      *QTable
	experience []Experience

	// Empty string means unset for all three markers.
	currentState string
	lastState    string
	lastAction   string

	rng *rand.Rand
	tp  percept.TimeProvider
}

// New creates a Q-learning agent choosing among the given action
// names. The action set must be non-empty; decision and learning both
// index into it. Hyperparameters start at the package defaults;
// override them with the With* builders.
func New(name string, actions []string) *Agent {
	return &Agent{
		Core:            percept.NewCore(name),
		actions:         actions,
		learningRate:    DefaultLearningRate,
		discountFactor:  DefaultDiscountFactor,
		explorationRate: DefaultExplorationRate,
		table:           NewQTable(),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		tp:              percept.NewDefaultTimeProvider(),
	}
}

// WithLearningRate sets alpha, the step size of value updates.
func (a *Agent) WithLearningRate(alpha float64) *Agent {
	a.learningRate = alpha
	return a
}

// WithDiscountFactor sets gamma, the weight of estimated future reward.
func (a *Agent) WithDiscountFactor(gamma float64) *Agent {
	a.discountFactor = gamma
	return a
}

// WithExplorationRate sets epsilon, the probability of taking a random
// action instead of the best-known one.
func (a *Agent) WithExplorationRate(epsilon float64) *Agent {
	a.explorationRate = epsilon
	return a
}

// WithRand sets the random source used for exploration and
// tie-breaking. Seed it in tests for determinism.
func (a *Agent) WithRand(rng *rand.Rand) *Agent {
	a.rng = rng
	return a
}

// WithTimeProvider sets the clock used to stamp experience entries.
func (a *Agent) WithTimeProvider(tp percept.TimeProvider) *Agent {
	a.tp = tp
	return a
}

// Actions returns the configured action set.
func (a *Agent) Actions() []string {
	return a.actions
}

// ExplorationRate returns the current epsilon.
func (a *Agent) ExplorationRate() float64 {
	return a.explorationRate
}

// Table returns the agent's Q-table.
func (a *Agent) Table() *QTable {
	return a.table
}

// Experience returns the audit trail of learning updates in order.
func (a *Agent) Experience() []Experience {
	return a.experience
}

// Perceive appends the observation to the history, shifts the previous
// current state into the last-state slot, and derives the new current
// state key from the payload.
func (a *Agent) Perceive(obs percept.Observation) {
	a.AppendObservation(obs)
	a.lastState = a.currentState
	a.currentState = percept.CanonicalKey(obs.Data)
}

// Decide chooses an action with the epsilon-greedy policy, or returns
// nil if nothing has been perceived yet.
//
// With probability epsilon an action is drawn uniformly from the
// action set; otherwise the action maximizing Q(currentState, action)
// wins, with ties broken by uniform random choice among the maximizers
// rather than by registration order. The returned action carries
// confidence 1-epsilon on both branches; this is a deliberate
// simplification, not a posterior probability.
func (a *Agent) Decide() *percept.Action {
	if a.currentState == "" {
		return nil
	}

	var name string
	if a.rng.Float64() < a.explorationRate {
		name = a.actions[a.rng.Intn(len(a.actions))]
	} else {
		name = a.bestAction(a.currentState)
	}

	a.lastAction = name

	action := percept.Action{
		Name:       name,
		Parameters: map[string]any{},
		Confidence: 1.0 - a.explorationRate,
	}
	return &action
}

// bestAction returns the action with the highest Q-value for the
// state, choosing uniformly among ties. When every candidate is equal
// (the usual case for an unseen state) the choice is uniform over the
// whole action set.
func (a *Agent) bestAction(state string) string {
	maxQ := a.table.Get(state, a.actions[0])
	minQ := maxQ
	for _, action := range a.actions[1:] {
		q := a.table.Get(state, action)
		if q > maxQ {
			maxQ = q
		}
		if q < minQ {
			minQ = q
		}
	}

	if maxQ == minQ {
		return a.actions[a.rng.Intn(len(a.actions))]
	}

	var best []string
	for _, action := range a.actions {
		if a.table.Get(state, action) == maxQ {
			best = append(best, action)
		}
	}
	return best[a.rng.Intn(len(best))]
}

// Act reports the action being taken together with the current
// Q-value of the (state, action) pair, as a read-only lookup. The
// Result carries "agent", "action", "state", and "q_value" keys.
// Learning state is not touched.
func (a *Agent) Act(action percept.Action) percept.Result {
	return percept.Result{
		"agent":   a.Name(),
		"action":  action.Name,
		"state":   a.currentState,
		"q_value": a.table.Get(a.currentState, action.Name),
	}
}

// Learn applies the one-step temporal-difference update for the
// reward received after the last decided action:
//
//	Q(s,a) <- Q(s,a) + alpha * (r + gamma * max_a' Q(s',a') - Q(s,a))
//
// where s/a are the last state and action and s' is the current state
// set by the most recent Perceive. If no action has been decided since
// construction or the last Reset, there is nothing to attribute the
// reward to and Learn is a silent no-op. Every applied update appends
// an Experience entry.
func (a *Agent) Learn(reward float64) {
	if a.lastState == "" || a.lastAction == "" {
		return
	}

	oldQ := a.table.Get(a.lastState, a.lastAction)

	nextMax := 0.0
	if a.currentState != "" {
		nextMax = a.table.Get(a.currentState, a.actions[0])
		for _, action := range a.actions[1:] {
			if q := a.table.Get(a.currentState, action); q > nextMax {
				nextMax = q
			}
		}
	}

	newQ := oldQ + a.learningRate*(reward+a.discountFactor*nextMax-oldQ)
	a.table.Set(a.lastState, a.lastAction, newQ)

	a.experience = append(a.experience, Experience{
		ID:        uuid.NewString(),
		State:     a.lastState,
		Action:    a.lastAction,
		Reward:    reward,
		NextState: a.currentState,
		QValue:    newQ,
		At:        a.tp.Now(),
	})
}

// Reset clears the histories and the transient state markers so the
// next episode starts fresh. The Q-table, hyperparameters, and the
// experience audit trail survive; they are what the agent has learned,
// not what it has seen.
func (a *Agent) Reset() {
	a.Core.Reset()
	a.currentState = ""
	a.lastState = ""
	a.lastAction = ""
}

// Summary reports aggregate statistics about the learned table.
type Summary struct {
	TotalEntries     int     `yaml:"total_entries"`
	TotalExperiences int     `yaml:"total_experiences"`
	AverageQValue    float64 `yaml:"average_q_value"`
	StatesVisited    int     `yaml:"states_visited"`
}

// Summarize returns the current table statistics: materialized entry
// count, experience count, mean Q-value (0.0 for an empty table), and
// the number of distinct states appearing in the table.
func (a *Agent) Summarize() Summary {
	return Summary{
		TotalEntries:     a.table.Len(),
		TotalExperiences: len(a.experience),
		AverageQValue:    a.table.Mean(),
		StatesVisited:    a.table.States(),
	}
}

// GreedyAction returns the purely greedy choice for a state key with
// no exploration and deterministic tie-breaking (first registered
// action wins ties). Intended for inspecting a learned policy, not for
// driving the cycle; Decide is the policy.
func (a *Agent) GreedyAction(state string) string {
	best := a.actions[0]
	bestQ := a.table.Get(state, best)
	for _, action := range a.actions[1:] {
		if q := a.table.Get(state, action); q > bestQ {
			best = action
			bestQ = q
		}
	}
	return best
}

// Compile-time check that Agent implements percept.Learner.
var _ percept.Learner = (*Agent)(nil)
