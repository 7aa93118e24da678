package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rickchristie/percept"
)

func coolDown(data any) percept.Action {
	temp, _ := data.(map[string]any)["temperature"]
	return percept.NewAction("cool_down", map[string]any{
		"target_temp":  20,
		"current_temp": temp,
	})
}

func heatUp(data any) percept.Action {
	return percept.NewAction("heat_up", map[string]any{"target_temp": 20})
}

func TestAgent_DecideMatchesTypeRule(t *testing.T) {
	agent := New("thermostat").
		AddRule("hot", coolDown).
		AddRule("cold", heatUp)

	agent.Perceive(percept.Observation{
		Data:      map[string]any{"type": "hot", "temperature": 30},
		Timestamp: 1,
	})

	action := agent.Decide()

	assert.NotNil(t, action)
	assert.Equal(t, "cool_down", action.Name)
	assert.Equal(t, 30, action.Parameters["current_temp"])
}

func TestAgent_DecidePrecedence(t *testing.T) {
	type input struct {
		data          any
		rules         map[string]RuleFunc
		defaultAction *percept.Action
	}

	type expected struct {
		actionName string
		none       bool
	}

	defaultAction := percept.NewAction("maintain", nil)

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name: "map with type beats string rendering",
			input: input{
				data: map[string]any{"type": "hot"},
				rules: map[string]RuleFunc{
					"hot": func(any) percept.Action { return percept.NewAction("by_type", nil) },
					"map[type:hot]": func(any) percept.Action {
						return percept.NewAction("by_string", nil)
					},
				},
			},
			expected: expected{actionName: "by_type"},
		},
		{
			name: "string payload matches rule key directly",
			input: input{
				data: "alarm",
				rules: map[string]RuleFunc{
					"alarm": func(any) percept.Action { return percept.NewAction("ring", nil) },
				},
			},
			expected: expected{actionName: "ring"},
		},
		{
			name: "numeric payload matches by text rendering",
			input: input{
				data: 42,
				rules: map[string]RuleFunc{
					"42": func(any) percept.Action { return percept.NewAction("count", nil) },
				},
			},
			expected: expected{actionName: "count"},
		},
		{
			name: "map without type falls back to default",
			input: input{
				data:          map[string]any{"temperature": 21},
				rules:         map[string]RuleFunc{"hot": coolDown},
				defaultAction: &defaultAction,
			},
			expected: expected{actionName: "maintain"},
		},
		{
			name: "no match and no default yields no action",
			input: input{
				data:  "unknown",
				rules: map[string]RuleFunc{"hot": coolDown},
			},
			expected: expected{none: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := New("tester")
			for key, fn := range tt.input.rules {
				agent.AddRule(key, fn)
			}
			if tt.input.defaultAction != nil {
				agent.SetDefaultAction(*tt.input.defaultAction)
			}

			agent.Perceive(percept.Observation{Data: tt.input.data, Timestamp: 1})
			action := agent.Decide()

			if tt.expected.none {
				assert.Nil(t, action)
				return
			}
			assert.NotNil(t, action)
			assert.Equal(t, tt.expected.actionName, action.Name)
		})
	}
}

func TestAgent_DecideWithoutObservation(t *testing.T) {
	agent := New("tester").AddRule("hot", coolDown)

	assert.Nil(t, agent.Decide(), "no observation and no default means no action")

	fallback := percept.NewAction("idle_patrol", nil)
	agent.SetDefaultAction(fallback)
	action := agent.Decide()

	assert.NotNil(t, action)
	assert.Equal(t, "idle_patrol", action.Name)
}

func TestAgent_AddRuleOverwrites(t *testing.T) {
	agent := New("tester").
		AddRule("hot", func(any) percept.Action { return percept.NewAction("old", nil) }).
		AddRule("hot", func(any) percept.Action { return percept.NewAction("new", nil) })

	agent.Perceive(percept.Observation{
		Data:      map[string]any{"type": "hot"},
		Timestamp: 1,
	})
	action := agent.Decide()

	assert.NotNil(t, action)
	assert.Equal(t, "new", action.Name, "last registration wins")
}

func TestAgent_Act(t *testing.T) {
	agent := New("thermostat")
	action := percept.NewAction("cool_down", map[string]any{"target_temp": 20})

	result := agent.Act(action)

	assert.Equal(t, "thermostat", result["agent"])
	assert.Equal(t, "cool_down", result["action"])
	assert.Equal(t, action.Parameters, result["parameters"])
	assert.Equal(t, true, result["success"])
	assert.Empty(t, agent.ActionsTaken(), "Act never records the action itself")
}

func TestAgent_RunCycle(t *testing.T) {
	agent := New("thermostat").AddRule("hot", coolDown)

	result := percept.RunCycle(agent, percept.Observation{
		Data:      map[string]any{"type": "hot", "temperature": 28},
		Timestamp: 1,
	})

	assert.NotNil(t, result)
	assert.Equal(t, "cool_down", result["action"])
	assert.Equal(t, percept.StateIdle, agent.State())
	assert.Len(t, agent.Observations(), 1)
	assert.Len(t, agent.ActionsTaken(), 1)
}

func TestAgent_Reset(t *testing.T) {
	agent := New("thermostat").AddRule("hot", coolDown)
	agent.Perceive(percept.Observation{
		Data:      map[string]any{"type": "hot"},
		Timestamp: 1,
	})
	agent.RecordAction(percept.NewAction("cool_down", nil))

	agent.Reset()

	assert.Equal(t, percept.StateIdle, agent.State())
	assert.Empty(t, agent.Observations())
	assert.Empty(t, agent.ActionsTaken())
	assert.Nil(t, agent.Decide(), "current observation slot is cleared")

	// Rules survive the reset.
	agent.Perceive(percept.Observation{
		Data:      map[string]any{"type": "hot"},
		Timestamp: 2,
	})
	action := agent.Decide()
	assert.NotNil(t, action)
	assert.Equal(t, "cool_down", action.Name)
}
