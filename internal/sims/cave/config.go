package cave

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// IntRange bounds an integer draw, inclusive on both ends.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange bounds a floating-point draw.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// AutomatonParams holds the smoothing-pass tunables.
type AutomatonParams struct {
	Radius    int     `yaml:"radius"`
	Threshold float64 `yaml:"threshold"`
}

// AgentRanges holds the per-iteration draw ranges for the carving agent.
// A fresh WalkParams is drawn from these at the start of every iteration.
type AgentRanges struct {
	Walks        IntRange   `yaml:"walks"`
	Steps        IntRange   `yaml:"steps"`
	RoomW        IntRange   `yaml:"room_w"`
	RoomH        IntRange   `yaml:"room_h"`
	ProbRoom     FloatRange `yaml:"prob_room"`
	ProbRoomRamp FloatRange `yaml:"prob_room_ramp"`
	ProbTurn     FloatRange `yaml:"prob_turn"`
	ProbTurnRamp FloatRange `yaml:"prob_turn_ramp"`
}

// Config controls the cave generator dimensions and both passes.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Iterations int `yaml:"iterations"`

	Automaton AutomatonParams `yaml:"automaton"`
	Agent     AgentRanges     `yaml:"agent"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     10,
		Seed:       1337,
		Iterations: 5,
		Automaton: AutomatonParams{
			Radius:    1,
			Threshold: 0.5,
		},
		Agent: AgentRanges{
			Walks:        IntRange{Min: 3, Max: 7},
			Steps:        IntRange{Min: 5, Max: 15},
			RoomW:        IntRange{Min: 3, Max: 7},
			RoomH:        IntRange{Min: 2, Max: 5},
			ProbRoom:     FloatRange{Min: 0.05, Max: 0.3},
			ProbRoomRamp: FloatRange{Min: 0.01, Max: 0.1},
			ProbTurn:     FloatRange{Min: 0.05, Max: 0.3},
			ProbTurnRamp: FloatRange{Min: 0.01, Max: 0.1},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Automaton.Radius = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Automaton.Threshold = parsed
		}
	}
	intRange(cfg, "walks", &c.Agent.Walks)
	intRange(cfg, "steps", &c.Agent.Steps)
	intRange(cfg, "room_w", &c.Agent.RoomW)
	intRange(cfg, "room_h", &c.Agent.RoomH)
	floatRange(cfg, "prob_room", &c.Agent.ProbRoom)
	floatRange(cfg, "prob_room_ramp", &c.Agent.ProbRoomRamp)
	floatRange(cfg, "prob_turn", &c.Agent.ProbTurn)
	floatRange(cfg, "prob_turn_ramp", &c.Agent.ProbTurnRamp)
	return c
}

func intRange(cfg map[string]string, key string, dst *IntRange) {
	if v, ok := cfg[key+"_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			dst.Min = parsed
		}
	}
	if v, ok := cfg[key+"_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			dst.Max = parsed
		}
	}
	if dst.Max < dst.Min {
		dst.Max = dst.Min
	}
}

func floatRange(cfg map[string]string, key string, dst *FloatRange) {
	if v, ok := cfg[key+"_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			dst.Min = parsed
		}
	}
	if v, ok := cfg[key+"_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			dst.Max = parsed
		}
	}
	if dst.Max < dst.Min {
		dst.Max = dst.Min
	}
}

// LoadFile reads a YAML configuration file, layered over the defaults.
// Keys absent from the file keep their default values; an explicit
// "seed: 0" is honored as-is, though World.Reset treats 0 as "use the
// configured seed".
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects configurations the generator cannot run. It is the
// boundary check; the passes themselves assume valid inputs.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("map dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be >= 0, got %d", c.Iterations)
	}
	if c.Automaton.Radius < 0 {
		return fmt.Errorf("automaton radius must be >= 0, got %d", c.Automaton.Radius)
	}
	if c.Automaton.Threshold < 0 || c.Automaton.Threshold > 1 {
		return fmt.Errorf("automaton threshold must be in [0,1], got %g", c.Automaton.Threshold)
	}
	for _, r := range []struct {
		name string
		r    IntRange
	}{
		{"walks", c.Agent.Walks},
		{"steps", c.Agent.Steps},
		{"room_w", c.Agent.RoomW},
		{"room_h", c.Agent.RoomH},
	} {
		if r.r.Min < 0 || r.r.Max < r.r.Min {
			return fmt.Errorf("agent %s range [%d,%d] invalid", r.name, r.r.Min, r.r.Max)
		}
	}
	for _, r := range []struct {
		name string
		r    FloatRange
	}{
		{"prob_room", c.Agent.ProbRoom},
		{"prob_room_ramp", c.Agent.ProbRoomRamp},
		{"prob_turn", c.Agent.ProbTurn},
		{"prob_turn_ramp", c.Agent.ProbTurnRamp},
	} {
		if r.r.Min < 0 || r.r.Max < r.r.Min {
			return fmt.Errorf("agent %s range [%g,%g] invalid", r.name, r.r.Min, r.r.Max)
		}
	}
	if c.Agent.ProbRoom.Max > 1 || c.Agent.ProbTurn.Max > 1 {
		return fmt.Errorf("base probability ranges must stay within [0,1]")
	}
	return nil
}
