// Package model defines shared data structures.
package model

import (
	"slices"
	"strings"
	"time"
)

// Mode selects which kind of symbols a trial uses.
type Mode int

const (
	// ModeDigits uses the fixed keypad digits.
	ModeDigits Mode = iota
	// ModeLetters uses letters of a single alphabet.
	ModeLetters
	// ModeMixed mixes letters of several alphabets.
	ModeMixed
)

var modeLabels = map[Mode]string{
	ModeDigits:  "Digits",
	ModeLetters: "Letters",
	ModeMixed:   "MixedAlphabets",
}

// Modes lists all modes in display order.
func Modes() []Mode {
	return []Mode{ModeDigits, ModeLetters, ModeMixed}
}

func (m Mode) String() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return "Unknown"
}

// ParseMode resolves a mode label case-insensitively.
func ParseMode(label string) (Mode, bool) {
	label = strings.TrimSpace(label)
	for _, m := range Modes() {
		if strings.EqualFold(label, modeLabels[m]) {
			return m, true
		}
	}
	switch strings.ToLower(label) {
	case "mixed", "mix":
		return ModeMixed, true
	}
	return ModeDigits, false
}

// Phase is the current stage of a trial.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMemorize
	PhaseInput
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMemorize:
		return "memorize"
	case PhaseInput:
		return "input"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TrialConfig defines the parameters of a trial.
type TrialConfig struct {
	Size           int
	Mode           Mode
	Language       string
	MixedLanguages []string
	// MemorizeTime is zero when the memorize phase is untimed.
	MemorizeTime time.Duration
}

// Timed reports whether the memorize phase counts down automatically.
func (c TrialConfig) Timed() bool {
	return c.MemorizeTime > 0
}

// Cells returns the number of grid cells.
func (c TrialConfig) Cells() int {
	return c.Size * c.Size
}

// Equal compares configs, treating mixed languages as a set.
func (c TrialConfig) Equal(other TrialConfig) bool {
	if c.Size != other.Size || c.Mode != other.Mode || c.Language != other.Language || c.MemorizeTime != other.MemorizeTime {
		return false
	}
	a := slices.Clone(c.MixedLanguages)
	b := slices.Clone(other.MixedLanguages)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(slices.Compact(a), slices.Compact(b))
}

// Settings is the decoded form of the durable settings snapshot.
type Settings struct {
	TableSize       int
	Mode            Mode
	Language        string
	MixedAlphabets  []string
	MemorizeSeconds int
	NoTimer         bool
	Vibration       bool
	DarkTheme       bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Size   int
	Mode   string
	Since  *time.Time
	Last   int
	Window int
}

// TrialResult captures a completed trial.
type TrialResult struct {
	StartedAt      time.Time
	EndedAt        time.Time
	Size           int
	Mode           Mode
	Language       string
	MixedLanguages []string
	MemorizeMs     int64
	InputMs        int64
	Correct        int
	Total          int
	Symbols        []SymbolStats
}

// SymbolStats stores per-symbol results for a trial, keyed by the expected symbol.
type SymbolStats struct {
	Symbol    string
	Correct   int
	Incorrect int
}

// SymbolAggregate aggregates symbol stats across trials.
type SymbolAggregate struct {
	Symbol    string
	Correct   int
	Incorrect int
}

// TrialAggregate summarizes a trial for reporting.
type TrialAggregate struct {
	TrialID int64
	EndedAt time.Time
	Size    int
	Mode    string
	Correct int
	Total   int
	InputMs int64
}
