package percept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedAgent is a Learner stub that records the order of lifecycle
// calls and the states observed at each step.
type scriptedAgent struct {
	Core

	nextAction *Action
	calls      []string
	rewards    []float64
	statesSeen []AgentState
}

func newScriptedAgent(next *Action) *scriptedAgent {
	return &scriptedAgent{Core: NewCore("scripted"), nextAction: next}
}

func (s *scriptedAgent) record(call string) {
	s.calls = append(s.calls, call)
	s.statesSeen = append(s.statesSeen, s.State())
}

func (s *scriptedAgent) Perceive(obs Observation) {
	s.record("perceive")
	s.AppendObservation(obs)
}

func (s *scriptedAgent) Decide() *Action {
	s.record("decide")
	return s.nextAction
}

func (s *scriptedAgent) Act(action Action) Result {
	s.record("act")
	return Result{"action": action.Name}
}

func (s *scriptedAgent) Learn(reward float64) {
	s.record("learn")
	s.rewards = append(s.rewards, reward)
}

var _ Learner = (*scriptedAgent)(nil)

func TestRunCycle_WithAction(t *testing.T) {
	action := NewAction("go", nil)
	agent := newScriptedAgent(&action)

	result := RunCycle(agent, Observation{Data: "tick", Timestamp: 1})

	assert.Equal(t, []string{"perceive", "decide", "act"}, agent.calls)
	assert.Equal(t, []AgentState{StateThinking, StateThinking, StateActing}, agent.statesSeen)
	assert.Equal(t, Result{"action": "go"}, result)
	assert.Equal(t, StateIdle, agent.State())

	// The driver, not Act, records the taken action.
	assert.Len(t, agent.ActionsTaken(), 1)
	assert.Equal(t, "go", agent.ActionsTaken()[0].Name)
}

func TestRunCycle_NoAction(t *testing.T) {
	agent := newScriptedAgent(nil)

	result := RunCycle(agent, Observation{Data: "tick", Timestamp: 1})

	assert.Equal(t, []string{"perceive", "decide"}, agent.calls)
	assert.Nil(t, result)
	assert.Equal(t, StateIdle, agent.State())
	assert.Empty(t, agent.ActionsTaken())
	assert.Len(t, agent.Observations(), 1, "perceive still records the observation")
}

func TestRunCycleWithFeedback_Ordering(t *testing.T) {
	action := NewAction("go", nil)
	agent := newScriptedAgent(&action)

	RunCycleWithFeedback(agent, Observation{Data: "s2", Timestamp: 2}, 5.0)

	// Perceive must precede learn so the reward is attributed against
	// the freshly perceived successor state.
	assert.Equal(t, []string{"perceive", "learn", "decide", "act"}, agent.calls)
	assert.Equal(t,
		[]AgentState{StateThinking, StateLearning, StateLearning, StateActing},
		agent.statesSeen)
	assert.Equal(t, []float64{5.0}, agent.rewards)
	assert.Equal(t, StateIdle, agent.State())
}

func TestRunCycleWithFeedback_NoReward(t *testing.T) {
	action := NewAction("go", nil)
	agent := newScriptedAgent(&action)

	RunCycleWithFeedback(agent, Observation{Data: "s1", Timestamp: 1})

	assert.Equal(t, []string{"perceive", "decide", "act"}, agent.calls)
	assert.Empty(t, agent.rewards, "omitted reward must not invoke Learn")
}

func TestRunCycleWithFeedback_ZeroRewardStillLearns(t *testing.T) {
	agent := newScriptedAgent(nil)

	RunCycleWithFeedback(agent, Observation{Data: "s1", Timestamp: 1}, 0.0)

	assert.Contains(t, agent.calls, "learn", "a zero reward is real feedback")
	assert.Equal(t, []float64{0.0}, agent.rewards)
}

func TestRunCycleWithFeedback_TooManyRewardsPanics(t *testing.T) {
	agent := newScriptedAgent(nil)

	assert.Panics(t, func() {
		RunCycleWithFeedback(agent, Observation{Data: "s1", Timestamp: 1}, 1.0, 2.0)
	})
}
