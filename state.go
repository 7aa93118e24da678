package percept

// AgentState reports which phase of the perceive-decide-act cycle an
// agent is currently in. It exists for external observability only:
// no operation is rejected based on the current state, and no dispatch
// logic should be built on top of it.
type AgentState string

const (
	StateIdle     AgentState = "idle"
	StateThinking AgentState = "thinking"
	StateActing   AgentState = "acting"
	StateLearning AgentState = "learning"
	StateStopped  AgentState = "stopped"
)

// String returns the string representation of the state.
func (s AgentState) String() string {
	return string(s)
}

// IsValid returns true if the state is one of the recognized phases.
func (s AgentState) IsValid() bool {
	switch s {
	case StateIdle, StateThinking, StateActing, StateLearning, StateStopped:
		return true
	default:
		return false
	}
}
