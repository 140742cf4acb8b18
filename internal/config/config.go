// Package config loads the optional rpsbomb configuration file (HCL).
// A missing file yields defaults; a malformed one is an error.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete rpsbomb configuration. Both blocks are optional
// in the file; absent blocks take defaults.
type Config struct {
	UI  *UISettings  `hcl:"ui,block"`
	Bot *BotSettings `hcl:"bot,block"`
}

// UISettings controls how the game is presented.
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Emoji    *bool  `hcl:"emoji,optional"`
	Theme    string `hcl:"theme,optional"`
}

// BotSettings controls the computer opponent.
type BotSettings struct {
	Strategy string `hcl:"strategy,optional"`
	Seed     int64  `hcl:"seed,optional"`
}

// EmojiEnabled reports whether moves render with emoji. Defaults to true
// when unset.
func (u *UISettings) EmojiEnabled() bool {
	return u.Emoji == nil || *u.Emoji
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: &UISettings{
			LogLevel: "warn",
			Theme:    "default",
		},
		Bot: &BotSettings{
			Strategy: "random",
			Seed:     0, // 0 means time-seeded
		},
	}
}

// Load reads configuration from an HCL file. A nonexistent file is not an
// error; defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.Bot == nil {
		cfg.Bot = defaults.Bot
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Bot.Strategy == "" {
		cfg.Bot.Strategy = defaults.Bot.Strategy
	}
}

// Validate checks the configuration for values the rest of the program
// would reject later.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	validStrategies := map[string]bool{
		"random": true,
		"cycle":  true,
	}
	if !validStrategies[c.Bot.Strategy] {
		return fmt.Errorf("invalid bot strategy: %s", c.Bot.Strategy)
	}

	return nil
}
