package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snake-game/game"
	"snake-game/game/types"
)

type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	CellSize int    `yaml:"cell_size"`
	FPS      int    `yaml:"fps"`
}

type GameplayConfig struct {
	BaseMoveInterval    time.Duration `yaml:"base_move_interval"`
	SpawnInterval       time.Duration `yaml:"spawn_interval"`
	EffectDuration      time.Duration `yaml:"effect_duration"`
	EffectDisplayWindow time.Duration `yaml:"effect_display_window"`
	FoodPoints          int           `yaml:"food_points"`
	Seed                int64         `yaml:"seed"` // 0 seeds from the clock
}

type AudioConfig struct {
	Volume float32 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	DataDir  string         `yaml:"data_dir"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:    "Snake Game",
			Width:    800,
			Height:   600,
			CellSize: types.CellSize,
			FPS:      60,
		},
		Gameplay: GameplayConfig{
			BaseMoveInterval:    types.BaseMoveInterval,
			SpawnInterval:       types.SpawnInterval,
			EffectDuration:      types.EffectDuration,
			EffectDisplayWindow: types.EffectDisplayWindow,
			FoodPoints:          types.FoodPoints,
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
		DataDir: "data",
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.Window.CellSize <= 0:
		return fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize)
	case c.Window.Width < c.Window.CellSize*2 || c.Window.Height < c.Window.CellSize*2:
		return fmt.Errorf("window %dx%d too small for cell size %d", c.Window.Width, c.Window.Height, c.Window.CellSize)
	case c.Window.FPS <= 0:
		return fmt.Errorf("window.fps must be positive, got %d", c.Window.FPS)
	case c.Gameplay.BaseMoveInterval <= 0:
		return fmt.Errorf("gameplay.base_move_interval must be positive, got %s", c.Gameplay.BaseMoveInterval)
	case c.Gameplay.SpawnInterval < 0:
		return fmt.Errorf("gameplay.spawn_interval must not be negative, got %s", c.Gameplay.SpawnInterval)
	case c.Gameplay.EffectDuration <= 0:
		return fmt.Errorf("gameplay.effect_duration must be positive, got %s", c.Gameplay.EffectDuration)
	case c.Gameplay.EffectDisplayWindow <= 0:
		return fmt.Errorf("gameplay.effect_display_window must be positive, got %s", c.Gameplay.EffectDisplayWindow)
	case c.Gameplay.FoodPoints < 0:
		return fmt.Errorf("gameplay.food_points must not be negative, got %d", c.Gameplay.FoodPoints)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %.2f", c.Audio.Volume)
	}
	return nil
}

// Grid returns the playfield size in cells
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.Window.Width / c.Window.CellSize,
		Height: c.Window.Height / c.Window.CellSize,
	}
}

// Settings converts the gameplay section into session tuning
func (c Config) Settings() game.Settings {
	s := game.DefaultSettings(c.Grid())
	s.BaseMoveInterval = c.Gameplay.BaseMoveInterval
	s.SpawnInterval = c.Gameplay.SpawnInterval
	s.EffectDuration = c.Gameplay.EffectDuration
	s.FoodPoints = c.Gameplay.FoodPoints
	return s
}
