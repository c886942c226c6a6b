// Package config loads the fight's tuning from TOML.
//
// Defaults come from the embedded document in internal/assets; a user file
// only needs the keys it wants to change.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"bossfight/internal/assets"
	"bossfight/internal/evasion"
)

// Duration decodes TOML strings like "1s" or "5ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Fight struct {
	MaxHP         int      `toml:"max_hp"`
	HitPause      Duration `toml:"hit_pause"`
	BossName      string   `toml:"boss_name"`
	DefeatedLabel string   `toml:"defeated_label"`
	SpawnOffset   float64  `toml:"spawn_offset"`
	RespawnInset  float64  `toml:"respawn_inset"`
}

type Evasion struct {
	ThreatRadius float64 `toml:"threat_radius"`
	FleeSpeed    float64 `toml:"flee_speed"`
	Damping      float64 `toml:"damping"`
	Margin       float64 `toml:"margin"`
}

// Tuning converts to the controller's constants
func (e Evasion) Tuning() evasion.Tuning {
	return evasion.Tuning{
		ThreatRadius: e.ThreatRadius,
		FleeSpeed:    e.FleeSpeed,
		Damping:      e.Damping,
		Margin:       e.Margin,
	}
}

type Particles struct {
	Count       int      `toml:"count"`
	Stagger     Duration `toml:"stagger"`
	HeartChance float64  `toml:"heart_chance"`
	SpawnBelow  float64  `toml:"spawn_below"`
}

type Audio struct {
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

// Terminal maps character cells onto the pixel space the fight runs in
type Terminal struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	FPS        int `toml:"fps"`
}

type Config struct {
	Window    Window    `toml:"window"`
	Fight     Fight     `toml:"fight"`
	Evasion   Evasion   `toml:"evasion"`
	Particles Particles `toml:"particles"`
	Audio     Audio     `toml:"audio"`
	Terminal  Terminal  `toml:"terminal"`
}

// Default decodes the embedded defaults
func Default() (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(string(assets.DefaultConfig()), cfg); err != nil {
		return nil, fmt.Errorf("decode default config: %w", err)
	}
	return cfg, nil
}

// Load reads path over the defaults. A missing file is not an error;
// an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the fight cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Fight.MaxHP <= 0:
		return fmt.Errorf("fight.max_hp %d must be positive", c.Fight.MaxHP)
	case c.Fight.HitPause.Duration < 0:
		return fmt.Errorf("fight.hit_pause %v must not be negative", c.Fight.HitPause.Duration)
	case c.Evasion.ThreatRadius <= 0:
		return fmt.Errorf("evasion.threat_radius %g must be positive", c.Evasion.ThreatRadius)
	case c.Evasion.FleeSpeed <= 0:
		return fmt.Errorf("evasion.flee_speed %g must be positive", c.Evasion.FleeSpeed)
	case c.Evasion.Damping <= 0 || c.Evasion.Damping >= 1:
		return fmt.Errorf("evasion.damping %g must be in (0, 1)", c.Evasion.Damping)
	case c.Evasion.Margin < 0:
		return fmt.Errorf("evasion.margin %g must not be negative", c.Evasion.Margin)
	case c.Particles.Count < 0:
		return fmt.Errorf("particles.count %d must not be negative", c.Particles.Count)
	case c.Particles.Stagger.Duration < 0:
		return fmt.Errorf("particles.stagger %v must not be negative", c.Particles.Stagger.Duration)
	case c.Particles.HeartChance < 0 || c.Particles.HeartChance > 1:
		return fmt.Errorf("particles.heart_chance %g must be in [0, 1]", c.Particles.HeartChance)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate)
	case c.Audio.Volume < 0:
		return fmt.Errorf("audio.volume %g must not be negative", c.Audio.Volume)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell %dx%d must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	case c.Terminal.FPS <= 0:
		return fmt.Errorf("terminal.fps %d must be positive", c.Terminal.FPS)
	}
	return nil
}
