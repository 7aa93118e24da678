// Package percept provides a minimal framework for building autonomous
// decision-making agents that follow a perceive-decide-act cycle.
//
// The root package defines the data carriers ([Observation], [Action],
// [Result]), the lifecycle contract ([Agent], [Learner]), the shared
// bookkeeping agents embed ([Core]), and the cycle drivers ([RunCycle],
// [RunCycleWithFeedback]). Concrete strategies live in subpackages.
//
// # Quick Start: Reactive Agent
//
//	agent := reactive.New("thermostat")
//	agent.AddRule("hot", func(data any) percept.Action {
//	    return percept.NewAction("cool_down", map[string]any{"target": 20})
//	})
//	agent.SetDefaultAction(percept.NewAction("maintain", nil))
//
//	tp := percept.NewDefaultTimeProvider()
//	obs := percept.Observation{
//	    Data:      map[string]any{"type": "hot", "temperature": 30},
//	    Timestamp: tp.Unix(),
//	}
//	result := percept.RunCycle(agent, obs) // result["action"] == "cool_down"
//
// # Quick Start: Q-Learning Agent
//
//	agent := qlearn.New("navigator", []string{"up", "down", "left", "right"}).
//	    WithLearningRate(0.1).
//	    WithDiscountFactor(0.9).
//	    WithExplorationRate(0.2)
//
//	var pending []float64
//	for !env.Done() {
//	    obs := percept.Observation{Data: env.StateData(), Timestamp: tp.Unix()}
//	    result := percept.RunCycleWithFeedback(agent, obs, pending...)
//	    if result == nil {
//	        break
//	    }
//	    pending = []float64{env.Step(result["action"].(string))}
//	}
//
// Each reward is fed into the following cycle so that Learn sees the
// successor state the action produced; see env/gridworld.RunEpisode for
// the complete driver including the terminal update.
//
// # Lifecycle
//
// Every agent exposes its current cycle phase via [Agent.State]
// (Idle, Thinking, Acting, Learning, Stopped). The state is a pure
// observability surface for monitoring: no call is rejected based on
// it. [Agent.Reset] clears the observation and action histories and
// returns the state to Idle; learned parameters such as rule tables
// and Q-values are configuration and survive a reset.
//
// # Determinism
//
// All randomness and time is injected. The Q-learning agent takes a
// *rand.Rand via WithRand, and drivers stamp observations through
// [TimeProvider], so tests can pin both.
//
// # Concurrency
//
// The cycle is a plain synchronous call chain with no suspension
// points. Agent instances are self-contained; run as many as you like
// on separate goroutines, but never drive one instance from two
// goroutines at once.
package percept
