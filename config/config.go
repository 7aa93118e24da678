// Package config loads framework settings from defaults, an optional
// YAML file, and PERCEPT_-prefixed environment variables, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix maps PERCEPT_AGENT_LEARNING_RATE -> agent.learning_rate.
const envPrefix = "PERCEPT_"

// Config is the root configuration for the runnable drivers.
type Config struct {
	Agent     AgentConfig     `koanf:"agent"`
	Training  TrainingConfig  `koanf:"training"`
	Assistant AssistantConfig `koanf:"assistant"`
}

// AgentConfig carries the Q-learning hyperparameters and action set.
type AgentConfig struct {
	Name            string   `koanf:"name"`
	Actions         []string `koanf:"actions"`
	LearningRate    float64  `koanf:"learning_rate"`
	DiscountFactor  float64  `koanf:"discount_factor"`
	ExplorationRate float64  `koanf:"exploration_rate"`
}

// TrainingConfig controls the training driver.
type TrainingConfig struct {
	Episodes int   `koanf:"episodes"`
	MaxSteps int   `koanf:"max_steps"`
	Seed     int64 `koanf:"seed"`
}

// AssistantConfig carries the LLM settings for the research assistant.
type AssistantConfig struct {
	Provider      string `koanf:"provider"` // ollama, openai
	Model         string `koanf:"model"`
	BaseURL       string `koanf:"base_url"`
	MaxIterations int    `koanf:"max_iterations"`
}

// Load reads configuration in three layers: built-in defaults, the
// YAML file at path (skipped when path is empty), and environment
// variables (PERCEPT_AGENT_LEARNING_RATE overrides
// agent.learning_rate, and so on).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	k.Set("agent.name", "GridNavigator")
	k.Set("agent.actions", []string{"up", "down", "left", "right"})
	k.Set("agent.learning_rate", 0.1)
	k.Set("agent.discount_factor", 0.9)
	k.Set("agent.exploration_rate", 0.2)

	k.Set("training.episodes", 100)
	k.Set("training.max_steps", 50)
	k.Set("training.seed", 0)

	k.Set("assistant.provider", "ollama")
	k.Set("assistant.model", "llama3.2")
	k.Set("assistant.base_url", "http://localhost:11434")
	k.Set("assistant.max_iterations", 10)

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// 2. Load from ENV (PERCEPT_TRAINING_EPISODES -> training.episodes)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
