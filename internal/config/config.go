package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Loop    LoopConfig    `toml:"loop"`
	Audio   AudioConfig   `toml:"audio"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Seed          int64  `toml:"seed"` // 0 = seeded from the clock
	StartingLives int    `toml:"starting_lives"`
}

type LoopConfig struct {
	MaxCatchUpTicks int `toml:"max_catch_up_ticks"` // accumulator cap, in ticks
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // master gain 0.0-1.0
}

type DataConfig struct {
	MiniBossList string `toml:"miniboss_list"`
	WeaponList   string `toml:"weapon_list"`
	ScriptsDir   string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return defaults()
}

func (c *Config) validate() error {
	if c.Game.Width < 320 || c.Game.Height < 240 {
		return fmt.Errorf("game: screen %dx%d too small", c.Game.Width, c.Game.Height)
	}
	if c.Game.StartingLives < 1 {
		return fmt.Errorf("game: starting_lives must be >= 1, got %d", c.Game.StartingLives)
	}
	if c.Loop.MaxCatchUpTicks < 1 {
		return fmt.Errorf("loop: max_catch_up_ticks must be >= 1, got %d", c.Loop.MaxCatchUpTicks)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio: volume %.2f out of range", c.Audio.Volume)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Title:         "APOPHIS",
			Width:         1280,
			Height:        720,
			StartingLives: 3,
		},
		Loop: LoopConfig{
			MaxCatchUpTicks: 5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Data: DataConfig{
			MiniBossList: "data/yaml/miniboss_list.yaml",
			WeaponList:   "data/yaml/weapon_list.yaml",
			ScriptsDir:   "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
