package percept

// Agent is the lifecycle contract every agent variant implements.
//
// The cycle is driven externally: a driver constructs an Observation,
// calls Perceive, then Decide, then (if a decision was made) Act. The
// [RunCycle] helper composes the three with the canonical ordering and
// state transitions. Implementations must:
//
//   - Perceive: append the observation to the history and update
//     whatever internal representation the variant keeps.
//   - Decide: read the perceived state and return an Action, or nil
//     when there is nothing to do. Decide never appends to histories.
//   - Act: interpret the action and return a descriptive Result. Act
//     never mutates the agent's histories; the cycle driver owns
//     appending to ActionsTaken via RecordAction.
//
// Agents are not safe for concurrent use. Independent instances share
// no state and may run on separate goroutines freely, but a single
// instance must be driven by one goroutine at a time.
type Agent interface {
	// Name returns the agent's identity, fixed at construction.
	Name() string

	// State returns the currently active cycle phase.
	State() AgentState

	// SetState records the currently active cycle phase. Called by
	// cycle drivers; it gates nothing.
	SetState(state AgentState)

	// Observations returns the perception history in insertion order.
	Observations() []Observation

	// ActionsTaken returns the history of acted-on actions in order.
	ActionsTaken() []Action

	// RecordAction appends an action to ActionsTaken. Called by the
	// cycle driver after Act, never by Decide or Act themselves.
	RecordAction(action Action)

	// Perceive processes one observation from the environment.
	Perceive(obs Observation)

	// Decide returns the next action, or nil for "no decision yet".
	Decide() *Action

	// Act executes the action and returns an implementation-defined
	// Result describing the outcome.
	Act(action Action) Result

	// Reset clears both histories and returns the state to Idle.
	// Learned parameters and configuration survive; reset is about
	// history, not identity.
	Reset()
}

// Learner is an Agent that can incorporate a scalar reward signal.
// Reward semantics (sign, magnitude) are variant-defined and
// caller-supplied.
type Learner interface {
	Agent

	// Learn updates the variant's internal value estimates from the
	// reward attributed to the previously taken action. Calling Learn
	// before any action has been taken is a silent no-op.
	Learn(reward float64)
}

// Core provides the shared lifecycle bookkeeping: name, observable
// state, and the two append-only histories. Concrete agents embed it
// and get the Agent accessor methods for free.
type Core struct {
	name         string
	state        AgentState
	observations []Observation
	actionsTaken []Action
}

// NewCore creates the shared bookkeeping for an agent with the given
// name, starting Idle with empty histories.
func NewCore(name string) Core {
	return Core{
		name:  name,
		state: StateIdle,
	}
}

// Name returns the agent's identity.
func (c *Core) Name() string {
	return c.name
}

// State returns the currently active cycle phase.
func (c *Core) State() AgentState {
	return c.state
}

// SetState records the currently active cycle phase.
func (c *Core) SetState(state AgentState) {
	c.state = state
}

// Observations returns the perception history in insertion order.
// The returned slice is the live history; callers must not modify it.
func (c *Core) Observations() []Observation {
	return c.observations
}

// ActionsTaken returns the action history in insertion order.
// The returned slice is the live history; callers must not modify it.
func (c *Core) ActionsTaken() []Action {
	return c.actionsTaken
}

// AppendObservation appends to the perception history. Perceive
// implementations call this exactly once per observation.
func (c *Core) AppendObservation(obs Observation) {
	c.observations = append(c.observations, obs)
}

// RecordAction appends an action to the action history.
func (c *Core) RecordAction(action Action) {
	c.actionsTaken = append(c.actionsTaken, action)
}

// Reset clears both histories and returns the state to Idle.
func (c *Core) Reset() {
	c.state = StateIdle
	c.observations = nil
	c.actionsTaken = nil
}
