// Package config holds every tunable of a round. A Config is built once in
// main and passed down explicitly; nothing here is process-wide state.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title string `ini:"title"`
	Scale int    `ini:"scale"`
}

// Field is the play-field geometry in logical pixels.
type Field struct {
	Width           int `ini:"width"`
	Height          int `ini:"height"`
	SpawnX          int `ini:"spawn_x"`
	OffscreenMargin int `ini:"offscreen_margin"`
	SafeBand        int `ini:"safe_band"`
}

type Spawn struct {
	Chance        float64 `ini:"chance"`
	SpecialChance float64 `ini:"special_chance"`
	SpeedMin      int     `ini:"speed_min"`
	SpeedMax      int     `ini:"speed_max"`
	Seed          int64   `ini:"seed"` // 0 picks a time-based seed
}

type Round struct {
	Duration  time.Duration `ini:"duration"`
	FPS       int           `ini:"fps"`
	HitReward int           `ini:"hit_reward"`
}

type Record struct {
	File string `ini:"file"` // empty keeps the record in memory only
}

type Sound struct {
	Enabled bool    `ini:"enabled"`
	Volume  float64 `ini:"volume"`
}

type Config struct {
	Window Window
	Field  Field
	Spawn  Spawn
	Round  Round
	Record Record
	Sound  Sound
}

// Default mirrors the classic arcade tuning: a 1000x600 pond, one spawn
// attempt in twenty per frame, one special fish in ten, a 60 second round.
func Default() Config {
	return Config{
		Window: Window{Title: "Catch the special fish!", Scale: 1},
		Field: Field{
			Width:           1000,
			Height:          600,
			SpawnX:          -50,
			OffscreenMargin: 200,
			SafeBand:        120,
		},
		Spawn: Spawn{
			Chance:        1.0 / 20,
			SpecialChance: 1.0 / 10,
			SpeedMin:      2,
			SpeedMax:      5,
		},
		Round: Round{
			Duration:  60 * time.Second,
			FPS:       60,
			HitReward: 10,
		},
		Record: Record{File: "fish_record.json"},
		Sound:  Sound{Enabled: true, Volume: 0.5},
	}
}

// Load reads an INI file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	sections := []struct {
		name string
		dst  any
	}{
		{"window", &cfg.Window},
		{"field", &cfg.Field},
		{"spawn", &cfg.Spawn},
		{"round", &cfg.Round},
		{"record", &cfg.Record},
		{"sound", &cfg.Sound},
	}
	for _, s := range sections {
		if !file.HasSection(s.name) {
			continue
		}
		if err := file.Section(s.name).MapTo(s.dst); err != nil {
			return cfg, fmt.Errorf("failed to read [%s] in %s: %w", s.name, path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size %dx%d", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Field.SafeBand < 0 || 2*c.Field.SafeBand > c.Field.Height:
		return fmt.Errorf("%w: safe band %d does not fit height %d", ErrInvalid, c.Field.SafeBand, c.Field.Height)
	case c.Field.OffscreenMargin < 0:
		return fmt.Errorf("%w: negative offscreen margin", ErrInvalid)
	case c.Spawn.SpeedMin <= 0 || c.Spawn.SpeedMax < c.Spawn.SpeedMin:
		return fmt.Errorf("%w: speed range [%d,%d]", ErrInvalid, c.Spawn.SpeedMin, c.Spawn.SpeedMax)
	case c.Spawn.Chance < 0 || c.Spawn.Chance > 1:
		return fmt.Errorf("%w: spawn chance %v", ErrInvalid, c.Spawn.Chance)
	case c.Spawn.SpecialChance < 0 || c.Spawn.SpecialChance > 1:
		return fmt.Errorf("%w: special chance %v", ErrInvalid, c.Spawn.SpecialChance)
	case c.Round.Duration <= 0:
		return fmt.Errorf("%w: round duration %v", ErrInvalid, c.Round.Duration)
	case c.Round.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Round.FPS)
	case c.Round.HitReward < 0:
		return fmt.Errorf("%w: negative hit reward", ErrInvalid)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Sound.Volume)
	}
	return nil
}
