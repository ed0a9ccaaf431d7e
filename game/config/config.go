// Package config holds the tunable game constants and loads overrides from
// a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snake-arcade/game/types"
)

type Config struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`

	StartLength int `yaml:"start_length"`
	FoodReward  int `yaml:"food_reward"`

	// Tick intervals in milliseconds; higher is slower.
	InitialSpeedMs int `yaml:"initial_speed_ms"`
	MinSpeedMs     int `yaml:"min_speed_ms"`
	SpeedStepMs    int `yaml:"speed_step_ms"`
	// SpeedUpEvery is the score multiple that triggers a speed step.
	SpeedUpEvery int `yaml:"speed_up_every"`

	InputGateMs int `yaml:"input_gate_ms"`

	ScoresFile          string `yaml:"scores_file"`
	LeaderboardCapacity int    `yaml:"leaderboard_capacity"`
	LeaderboardDisplay  int    `yaml:"leaderboard_display"`

	// Seed for food placement. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		GridWidth:           types.DefaultGridWidth,
		GridHeight:          types.DefaultGridHeight,
		StartLength:         types.StartLength,
		FoodReward:          types.FoodReward,
		InitialSpeedMs:      100,
		MinSpeedMs:          30,
		SpeedStepMs:         3,
		SpeedUpEvery:        20,
		InputGateMs:         10,
		ScoresFile:          "highscores.json",
		LeaderboardCapacity: types.LeaderboardCapacity,
		LeaderboardDisplay:  types.LeaderboardDisplay,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GridWidth < 3 || c.GridHeight < 1 {
		return fmt.Errorf("grid %dx%d too small", c.GridWidth, c.GridHeight)
	}
	if c.StartLength < 1 || c.StartLength > c.GridWidth/2+1 {
		return fmt.Errorf("start_length %d does not fit a %d wide grid", c.StartLength, c.GridWidth)
	}
	if c.FoodReward <= 0 {
		return fmt.Errorf("food_reward must be positive, got %d", c.FoodReward)
	}
	if c.MinSpeedMs <= 0 || c.InitialSpeedMs < c.MinSpeedMs {
		return fmt.Errorf("speeds must satisfy 0 < min_speed_ms (%d) <= initial_speed_ms (%d)", c.MinSpeedMs, c.InitialSpeedMs)
	}
	if c.SpeedStepMs < 0 {
		return fmt.Errorf("speed_step_ms must not be negative, got %d", c.SpeedStepMs)
	}
	if c.SpeedUpEvery <= 0 {
		return fmt.Errorf("speed_up_every must be positive, got %d", c.SpeedUpEvery)
	}
	if c.InputGateMs < 0 {
		return fmt.Errorf("input_gate_ms must not be negative, got %d", c.InputGateMs)
	}
	if c.LeaderboardCapacity <= 0 || c.LeaderboardDisplay <= 0 {
		return fmt.Errorf("leaderboard sizes must be positive")
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) InitialInterval() time.Duration {
	return time.Duration(c.InitialSpeedMs) * time.Millisecond
}

func (c Config) MinInterval() time.Duration {
	return time.Duration(c.MinSpeedMs) * time.Millisecond
}

func (c Config) SpeedStep() time.Duration {
	return time.Duration(c.SpeedStepMs) * time.Millisecond
}

func (c Config) InputGate() time.Duration {
	return time.Duration(c.InputGateMs) * time.Millisecond
}
