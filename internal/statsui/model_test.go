package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/gridmem/internal/model"
)

type fakeSource struct {
	trials []model.TrialAggregate
	aggs   []model.SymbolAggregate
	err    error
	last   model.StatsConfig
}

func (f *fakeSource) ListTrials(_ context.Context, cfg model.StatsConfig) ([]model.TrialAggregate, error) {
	f.last = cfg
	return f.trials, f.err
}

func (f *fakeSource) ListSymbolAggregatesForTrials(context.Context, []int64) ([]model.SymbolAggregate, error) {
	return f.aggs, nil
}

func TestOverviewAndTabs(t *testing.T) {
	src := &fakeSource{
		trials: []model.TrialAggregate{
			{TrialID: 1, Correct: 4, Total: 9, InputMs: 9000},
			{TrialID: 2, Correct: 9, Total: 9, InputMs: 6000},
		},
		aggs: []model.SymbolAggregate{
			{Symbol: "7", Correct: 1, Incorrect: 3},
			{Symbol: "1", Correct: 5, Incorrect: 0},
		},
	}
	m := NewModel(src, model.StatsConfig{Window: 1})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	if !strings.Contains(view, "Trials") || !strings.Contains(view, "Accuracy") {
		t.Fatalf("overview missing content:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabSymbols || len(m.symbols.Rows()) != 2 {
		t.Fatalf("expected symbols tab with 2 rows, tab=%d rows=%d", m.activeTab, len(m.symbols.Rows()))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), " 1. 7  1 of 4 recalled") {
		t.Fatalf("hardest tab missing ranking:\n%s", m.View())
	}
}

func TestFilterForm(t *testing.T) {
	src := &fakeSource{}
	m := NewModel(src, model.StatsConfig{Window: 1})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("letters")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter applied, got error %q", m.filterError)
	}
	if src.last.Size != 5 || src.last.Mode != "Letters" {
		t.Fatalf("unexpected filter config: %+v", src.last)
	}
}

func TestParseFilterRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"abc", "", "", "", ""},
		{"", "emoji", "", "", ""},
		{"", "", "yesterday", "", ""},
		{"", "", "", "-1", ""},
		{"", "", "", "", "0"},
	}
	for _, values := range cases {
		if _, err := parseFilter(values); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
	cfg, err := parseFilter([]string{"7x7", "", "2024-01-02", "3", ""})
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cfg.Size != 7 || cfg.Last != 3 || cfg.Window != 1 || cfg.Since == nil {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrorShown(t *testing.T) {
	m := NewModel(&fakeSource{err: errors.New("db locked")}, model.StatsConfig{})
	if !strings.Contains(m.View(), "db locked") {
		t.Fatalf("expected error in view")
	}
}
