// Package config loads game settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// DefaultPath is read when no -config flag is given; its absence is not an error
const DefaultPath = "vi-snake.toml"

// Glyphs configures board drawing
type Glyphs struct {
	Snake  string `toml:"snake"`
	Food   string `toml:"food"`
	Border string `toml:"border"`
}

// Config holds all file-configurable settings
type Config struct {
	Debug         bool                `toml:"debug"`
	FrameRate     int                 `toml:"frame_rate"`
	HoldTimeoutMs int                 `toml:"hold_timeout_ms"`
	FoodPlacement string              `toml:"food_placement"`
	Seed          uint64              `toml:"seed"`
	Glyphs        Glyphs              `toml:"glyphs"`
	Keys          map[string][]string `toml:"keys"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		FrameRate:     constants.FrameRateDefault,
		HoldTimeoutMs: int(constants.HoldTimeoutDefault / time.Millisecond),
		FoodPlacement: game.FoodUnchecked.String(),
		Glyphs: Glyphs{
			Snake:  string(constants.GlyphSnake),
			Food:   string(constants.GlyphFood),
			Border: constants.BorderStyleDefault,
		},
	}
}

// Load reads path over the defaults
// A missing file is only an error when required is true
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config read: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg and validates the result
// Keys unknown to Config are rejected to surface typos
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Settings are the config values resolved into the types the game consumes
type Settings struct {
	Bindings    *input.Bindings
	Glyphs      render.Glyphs
	FoodPolicy  game.FoodPolicy
	HoldTimeout time.Duration
	FrameRate   int
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	_, err := c.Resolve()
	return err
}

// Resolve validates the config and converts it to Settings
func (c *Config) Resolve() (*Settings, error) {
	if c.FrameRate < 1 || c.FrameRate > constants.FrameRateMax {
		return nil, fmt.Errorf("frame_rate %d out of range [1, %d]", c.FrameRate, constants.FrameRateMax)
	}
	if c.HoldTimeoutMs < 0 {
		return nil, fmt.Errorf("hold_timeout_ms %d must not be negative", c.HoldTimeoutMs)
	}
	policy, err := c.FoodPolicy()
	if err != nil {
		return nil, err
	}
	glyphs, err := c.RenderGlyphs()
	if err != nil {
		return nil, err
	}
	bindings, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	return &Settings{
		Bindings:    bindings,
		Glyphs:      glyphs,
		FoodPolicy:  policy,
		HoldTimeout: c.HoldTimeout(),
		FrameRate:   c.FrameRate,
	}, nil
}

// HoldTimeout returns the held-key window as a duration
func (c *Config) HoldTimeout() time.Duration {
	return time.Duration(c.HoldTimeoutMs) * time.Millisecond
}

// FoodPolicy resolves food_placement
func (c *Config) FoodPolicy() (game.FoodPolicy, error) {
	return game.ParseFoodPolicy(c.FoodPlacement)
}

// RenderGlyphs resolves the [glyphs] table
func (c *Config) RenderGlyphs() (render.Glyphs, error) {
	snake, err := singleRune("glyphs.snake", c.Glyphs.Snake)
	if err != nil {
		return render.Glyphs{}, err
	}
	food, err := singleRune("glyphs.food", c.Glyphs.Food)
	if err != nil {
		return render.Glyphs{}, err
	}
	border, err := render.CharsetByName(c.Glyphs.Border)
	if err != nil {
		return render.Glyphs{}, fmt.Errorf("glyphs.border: %w", err)
	}
	return render.Glyphs{Snake: snake, Food: food, Border: border}, nil
}

// Bindings resolves the [keys] table over the default bindings
func (c *Config) Bindings() (*input.Bindings, error) {
	return input.LoadBindings(c.Keys)
}

func singleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s: want exactly one character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
