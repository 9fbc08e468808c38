// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/gridmem/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps trial-related settings. Unset keys stay nil.
type GameConfig struct {
	TableSize       *int     `toml:"table-size"`
	Mode            *string  `toml:"mode"`
	Language        *string  `toml:"language"`
	MixedAlphabets  []string `toml:"mixed-alphabets"`
	MemorizeSeconds *int     `toml:"memorize-seconds"`
	NoTimer         *bool    `toml:"no-timer"`
	Vibration       *bool    `toml:"vibration"`
	DarkTheme       *bool    `toml:"dark-theme"`
	Feedback        *string  `toml:"feedback"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the set keys of g onto s and returns the result.
func (g GameConfig) Apply(s model.Settings) (model.Settings, error) {
	if g.TableSize != nil {
		if *g.TableSize < 3 || *g.TableSize > 15 {
			return s, fmt.Errorf("table-size must be between 3 and 15")
		}
		s.TableSize = *g.TableSize
	}
	if g.Mode != nil {
		m, ok := model.ParseMode(*g.Mode)
		if !ok {
			return s, fmt.Errorf("unknown mode %q", *g.Mode)
		}
		s.Mode = m
	}
	if g.Language != nil {
		lang := strings.TrimSpace(*g.Language)
		if lang == "" {
			return s, fmt.Errorf("language must not be empty")
		}
		s.Language = lang
	}
	if g.MixedAlphabets != nil {
		s.MixedAlphabets = append([]string(nil), g.MixedAlphabets...)
	}
	if g.MemorizeSeconds != nil {
		if *g.MemorizeSeconds <= 0 {
			return s, fmt.Errorf("memorize-seconds must be positive")
		}
		s.MemorizeSeconds = *g.MemorizeSeconds
	}
	if g.NoTimer != nil {
		s.NoTimer = *g.NoTimer
	}
	if g.Vibration != nil {
		s.Vibration = *g.Vibration
	}
	if g.DarkTheme != nil {
		s.DarkTheme = *g.DarkTheme
	}
	return s, nil
}
