package trial

import (
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

// Snapshot is a read-only projection of machine state for rendering.
type Snapshot struct {
	Config      model.TrialConfig
	Phase       model.Phase
	Pool        []string
	Grid        []string
	Answers     []string
	Cursor      int
	Countdown   int
	Elapsed     time.Duration
	ShowCorrect bool
	// Score is only set once the trial is finished.
	Score int
	Total int
}

// Visible returns the cells to render for the current phase.
func (s Snapshot) Visible() []string {
	switch s.Phase {
	case model.PhaseMemorize:
		return s.Grid
	case model.PhaseInput:
		return s.Answers
	case model.PhaseFinished:
		if s.ShowCorrect {
			return s.Grid
		}
		return s.Answers
	default:
		return nil
	}
}

// CellCorrect reports whether the answer at i matches the grid.
func (s Snapshot) CellCorrect(i int) bool {
	if i < 0 || i >= len(s.Grid) || i >= len(s.Answers) {
		return false
	}
	return s.Answers[i] != "" && s.Answers[i] == s.Grid[i]
}

// Score counts positions where answers equal the grid exactly. Empty answers never match.
func Score(grid, answers []string) int {
	n := len(grid)
	if len(answers) < n {
		n = len(answers)
	}
	score := 0
	for i := 0; i < n; i++ {
		if answers[i] != "" && answers[i] == grid[i] {
			score++
		}
	}
	return score
}
