package percept

// RunCycle executes one complete perceive-decide-act cycle.
//
// Ordering is fixed: the state moves to Thinking, the observation is
// perceived, then Decide runs. If Decide returns an action, the state
// moves to Acting, Act runs, the action is recorded in ActionsTaken,
// and the state returns to Idle with Act's Result. If Decide returns
// nil, the state returns to Idle and RunCycle returns nil.
func RunCycle(agent Agent, obs Observation) Result {
	agent.SetState(StateThinking)
	agent.Perceive(obs)

	action := agent.Decide()
	if action != nil {
		agent.SetState(StateActing)
		result := agent.Act(*action)
		agent.RecordAction(*action)
		agent.SetState(StateIdle)
		return result
	}

	agent.SetState(StateIdle)
	return nil
}

// RunCycleWithFeedback executes one cycle with an optional learning
// step. At most one reward may be passed; passing none skips learning
// entirely, which is different from passing 0 (a zero reward still
// performs a value update).
//
// The ordering is deliberate: the observation is perceived first, so
// that Learn attributes the reward to the action taken in the prior
// state while using the newly perceived state as the successor for
// bootstrapping. Only then do Decide and Act proceed as in [RunCycle].
func RunCycleWithFeedback(agent Learner, obs Observation, reward ...float64) Result {
	if len(reward) > 1 {
		panic("percept: RunCycleWithFeedback accepts at most one reward")
	}

	// Perceive first so the learner's current state reflects the
	// outcome of the previous action before learning happens.
	agent.SetState(StateThinking)
	agent.Perceive(obs)

	if len(reward) == 1 {
		agent.SetState(StateLearning)
		agent.Learn(reward[0])
	}

	action := agent.Decide()
	if action != nil {
		agent.SetState(StateActing)
		result := agent.Act(*action)
		agent.RecordAction(*action)
		agent.SetState(StateIdle)
		return result
	}

	agent.SetState(StateIdle)
	return nil
}
