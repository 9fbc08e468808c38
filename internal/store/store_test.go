package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "gridmem.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSettingsRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SaveSettings(ctx, map[string]string{"table_size": "7x7", "vibration": "false"}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if err := st.SaveSettings(ctx, map[string]string{"table_size": "9x9"}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	got, err := st.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got["table_size"] != "9x9" || got["vibration"] != "false" || len(got) != 2 {
		t.Fatalf("unexpected settings: %v", got)
	}

	if err := st.DeleteSettings(ctx); err != nil {
		t.Fatalf("delete settings: %v", err)
	}
	got, err = st.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no settings after delete, got %v", got)
	}
}

func TestInsertAndListTrials(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	sizes := []int{3, 5, 5}
	var ids []int64
	for i, size := range sizes {
		start := base.Add(time.Duration(i) * time.Minute)
		id, err := st.InsertTrial(ctx, model.TrialResult{
			StartedAt: start,
			EndedAt:   start.Add(20 * time.Second),
			Size:      size,
			Mode:      model.ModeLetters,
			Language:  "Thai",
			InputMs:   15000,
			Correct:   size,
			Total:     size * size,
			Symbols: []model.SymbolStats{
				{Symbol: "ก", Correct: 2, Incorrect: 1},
				{Symbol: "ข", Correct: 1, Incorrect: 0},
			},
		})
		if err != nil {
			t.Fatalf("insert trial: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListTrials(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list trials: %v", err)
	}
	if len(all) != 3 || all[0].TrialID != ids[0] || all[2].TrialID != ids[2] {
		t.Fatalf("unexpected trials: %+v", all)
	}
	if all[0].Mode != "Letters" || all[0].Total != 9 {
		t.Fatalf("unexpected trial fields: %+v", all[0])
	}

	fives, err := st.ListTrials(ctx, model.StatsConfig{Size: 5, Mode: "Letters"})
	if err != nil {
		t.Fatalf("list filtered trials: %v", err)
	}
	if len(fives) != 2 {
		t.Fatalf("expected 2 trials of size 5, got %d", len(fives))
	}

	since := base.Add(90 * time.Second)
	recent, err := st.ListTrials(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list recent trials: %v", err)
	}
	if len(recent) != 1 || recent[0].TrialID != ids[2] {
		t.Fatalf("unexpected recent trials: %+v", recent)
	}

	aggs, err := st.ListSymbolAggregatesForTrials(ctx, ids[:2])
	if err != nil {
		t.Fatalf("list symbol aggregates: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 symbol aggregates, got %d", len(aggs))
	}
	for _, agg := range aggs {
		if agg.Symbol == "ก" && (agg.Correct != 4 || agg.Incorrect != 2) {
			t.Fatalf("unexpected aggregate: %+v", agg)
		}
	}
}

func TestListSymbolAggregatesEmptyIDs(t *testing.T) {
	st := openTestStore(t)
	aggs, err := st.ListSymbolAggregatesForTrials(context.Background(), nil)
	if err != nil || aggs != nil {
		t.Fatalf("expected nil result, got %v, %v", aggs, err)
	}
}
