// Package gridworld provides a small grid navigation environment for
// driving and demonstrating learning agents.
//
// The agent starts in the top-left cell and must reach the goal in the
// bottom-right cell. Moves that would leave the grid clamp to the
// border. Reaching the goal pays +100, running out of steps pays -50,
// and every other step costs -1 to encourage short paths.
package gridworld

import (
	"fmt"

	"github.com/rickchristie/percept"
)

// Action names understood by the environment.
const (
	ActionUp    = "up"
	ActionDown  = "down"
	ActionLeft  = "left"
	ActionRight = "right"
)

// Actions returns the full action set in registration order.
func Actions() []string {
	return []string{ActionUp, ActionDown, ActionLeft, ActionRight}
}

// Reward constants.
const (
	RewardGoal    = 100.0
	RewardTimeout = -50.0
	RewardStep    = -1.0
)

// World is a size x size grid with one agent and one goal cell.
type World struct {
	size     int
	maxSteps int
	row, col int
	goalRow  int
	goalCol  int
	steps    int
}

// New creates a world of the given size with the goal in the
// bottom-right cell and a cap of maxSteps steps per episode.
func New(size, maxSteps int) *World {
	return &World{
		size:     size,
		maxSteps: maxSteps,
		goalRow:  size - 1,
		goalCol:  size - 1,
	}
}

// Reset moves the agent back to the top-left cell and restarts the
// step counter.
func (w *World) Reset() {
	w.row, w.col = 0, 0
	w.steps = 0
}

// Position returns the agent's cell as "row,col".
func (w *World) Position() string {
	return fmt.Sprintf("%d,%d", w.row, w.col)
}

// StateData returns the observation payload for the current position.
func (w *World) StateData() map[string]any {
	return map[string]any{"position": w.Position()}
}

// Steps returns the number of steps taken this episode.
func (w *World) Steps() int {
	return w.steps
}

// AtGoal returns true when the agent stands on the goal cell.
func (w *World) AtGoal() bool {
	return w.row == w.goalRow && w.col == w.goalCol
}

// Done returns true when the episode is over: goal reached or step cap
// hit.
func (w *World) Done() bool {
	return w.AtGoal() || w.steps >= w.maxSteps
}

// Step applies the named action and returns the resulting reward.
// Unknown action names leave the position unchanged and cost a normal
// step.
func (w *World) Step(action string) float64 {
	w.steps++

	switch action {
	case ActionUp:
		if w.row > 0 {
			w.row--
		}
	case ActionDown:
		if w.row < w.size-1 {
			w.row++
		}
	case ActionLeft:
		if w.col > 0 {
			w.col--
		}
	case ActionRight:
		if w.col < w.size-1 {
			w.col++
		}
	}

	switch {
	case w.AtGoal():
		return RewardGoal
	case w.steps >= w.maxSteps:
		return RewardTimeout
	default:
		return RewardStep
	}
}

// EpisodeResult summarizes one training episode.
type EpisodeResult struct {
	TotalReward float64
	Steps       int
	ReachedGoal bool
}

// RunEpisode drives one full episode of the learner against the world
// through [percept.RunCycleWithFeedback]. Each step's reward is carried
// into the following cycle, where it is learned against the freshly
// perceived successor position; the final reward is learned against the
// terminal position after the loop. The world is reset before the
// episode starts.
func RunEpisode(agent percept.Learner, w *World, tp percept.TimeProvider) EpisodeResult {
	w.Reset()

	var result EpisodeResult
	var pending []float64
	for !w.Done() {
		obs := percept.Observation{Data: w.StateData(), Timestamp: tp.Unix()}
		outcome := percept.RunCycleWithFeedback(agent, obs, pending...)
		if outcome == nil {
			break
		}

		reward := w.Step(outcome["action"].(string))
		result.TotalReward += reward
		pending = []float64{reward}
	}

	// The loop learns each reward one cycle late, so the last step's
	// reward still needs a closing perceive+learn against the terminal
	// position.
	if len(pending) == 1 {
		agent.SetState(percept.StateLearning)
		agent.Perceive(percept.Observation{Data: w.StateData(), Timestamp: tp.Unix()})
		agent.Learn(pending[0])
		agent.SetState(percept.StateIdle)
	}

	result.Steps = w.Steps()
	result.ReachedGoal = w.AtGoal()
	return result
}
