// Package settings decodes the durable settings snapshot and tracks changes.
package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

// Keys of the durable settings.
const (
	KeyTableSize      = "table_size"
	KeyTableMode      = "table_mode"
	KeyLanguage       = "language"
	KeyMixedAlphabets = "mixed_alphabets"
	KeyMemoryTime     = "memory_time"
	KeyMemoryNoTimer  = "memory_no_timer"
	KeyVibration      = "vibration"
	KeyDarkTheme      = "dark_theme"
)

// Size bounds of the table.
const (
	MinTableSize = 3
	MaxTableSize = 15
)

const (
	defaultTableSize       = 5
	defaultLanguage        = "Russian"
	defaultMemorizeSeconds = 5
)

// Keys lists all recognized settings keys in display order.
func Keys() []string {
	return []string{
		KeyTableSize,
		KeyTableMode,
		KeyLanguage,
		KeyMixedAlphabets,
		KeyMemoryTime,
		KeyMemoryNoTimer,
		KeyVibration,
		KeyDarkTheme,
	}
}

// Defaults returns the default settings.
func Defaults() model.Settings {
	return model.Settings{
		TableSize:       defaultTableSize,
		Mode:            model.ModeDigits,
		Language:        defaultLanguage,
		MemorizeSeconds: defaultMemorizeSeconds,
		Vibration:       true,
	}
}

// Decode builds settings from stored values. Missing or malformed values fall
// back to their defaults one field at a time.
func Decode(values map[string]string) model.Settings {
	return DecodeWith(values, Defaults())
}

// DecodeWith is Decode with base supplying the fallback for each field.
func DecodeWith(values map[string]string, base model.Settings) model.Settings {
	s := base
	s.MixedAlphabets = append([]string(nil), base.MixedAlphabets...)
	if n, ok := ParseTableSize(values[KeyTableSize]); ok {
		s.TableSize = n
	}
	if m, ok := model.ParseMode(values[KeyTableMode]); ok {
		s.Mode = m
	}
	if v := strings.TrimSpace(values[KeyLanguage]); v != "" {
		s.Language = v
	}
	if v, ok := values[KeyMixedAlphabets]; ok {
		s.MixedAlphabets = SplitMixed(v)
	}
	if v, ok := parsePositiveInt(values[KeyMemoryTime]); ok {
		s.MemorizeSeconds = v
	}
	if v, ok := parseBool(values[KeyMemoryNoTimer]); ok {
		s.NoTimer = v
	}
	if v, ok := parseBool(values[KeyVibration]); ok {
		s.Vibration = v
	}
	if v, ok := parseBool(values[KeyDarkTheme]); ok {
		s.DarkTheme = v
	}
	return s
}

// Encode renders settings in their stored form.
func Encode(s model.Settings) map[string]string {
	return map[string]string{
		KeyTableSize:      FormatTableSize(s.TableSize),
		KeyTableMode:      s.Mode.String(),
		KeyLanguage:       s.Language,
		KeyMixedAlphabets: strings.Join(s.MixedAlphabets, "|"),
		KeyMemoryTime:     strconv.Itoa(s.MemorizeSeconds),
		KeyMemoryNoTimer:  strconv.FormatBool(s.NoTimer),
		KeyVibration:      strconv.FormatBool(s.Vibration),
		KeyDarkTheme:      strconv.FormatBool(s.DarkTheme),
	}
}

// Validate checks a single raw value for key.
func Validate(key, value string) error {
	switch key {
	case KeyTableSize:
		if _, ok := ParseTableSize(value); !ok {
			return fmt.Errorf("%s must look like NxN with N in [%d,%d]", key, MinTableSize, MaxTableSize)
		}
	case KeyTableMode:
		if _, ok := model.ParseMode(value); !ok {
			return fmt.Errorf("%s must be one of Digits, Letters, MixedAlphabets", key)
		}
	case KeyLanguage:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	case KeyMixedAlphabets:
	case KeyMemoryTime:
		if _, ok := parsePositiveInt(value); !ok {
			return fmt.Errorf("%s must be a positive number of seconds", key)
		}
	case KeyMemoryNoTimer, KeyVibration, KeyDarkTheme:
		if _, ok := parseBool(value); !ok {
			return fmt.Errorf("%s must be true or false", key)
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// TrialConfig derives the trial parameters from settings.
func TrialConfig(s model.Settings) model.TrialConfig {
	cfg := model.TrialConfig{
		Size:           s.TableSize,
		Mode:           s.Mode,
		Language:       s.Language,
		MixedLanguages: append([]string(nil), s.MixedAlphabets...),
	}
	if !s.NoTimer {
		cfg.MemorizeTime = time.Duration(s.MemorizeSeconds) * time.Second
	}
	return cfg
}

// ParseTableSize parses "NxN" (or a bare "N") with N in the supported range.
func ParseTableSize(value string) (int, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, false
	}
	first, rest, found := strings.Cut(value, "x")
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, false
	}
	if found {
		m, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || m != n {
			return 0, false
		}
	}
	if n < MinTableSize || n > MaxTableSize {
		return 0, false
	}
	return n, true
}

// FormatTableSize renders n as "NxN".
func FormatTableSize(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}

// SplitMixed decodes a "|"-joined alphabet set, dropping blanks and duplicates.
func SplitMixed(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, part := range strings.Split(value, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func parsePositiveInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseBool(value string) (bool, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return b, true
}
