package stats

import (
	"context"

	"github.com/verte-zerg/gridmem/internal/model"
)

// TrialSource is the subset of the store used for reports.
type TrialSource interface {
	ListTrials(ctx context.Context, cfg model.StatsConfig) ([]model.TrialAggregate, error)
	ListSymbolAggregatesForTrials(ctx context.Context, trialIDs []int64) ([]model.SymbolAggregate, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Trials         []model.TrialAggregate
	WindowTrialIDs []int64
	SymbolsAll     []model.SymbolAggregate
	SymbolsWindow  []model.SymbolAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, src TrialSource, cfg model.StatsConfig) (Report, error) {
	trials, err := src.ListTrials(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(trials) > cfg.Last {
		trials = trials[len(trials)-cfg.Last:]
	}

	windowIDs := lastTrialIDs(trials, cfg.Window)
	all, err := src.ListSymbolAggregatesForTrials(ctx, trialIDs(trials))
	if err != nil {
		return Report{}, err
	}
	windowed, err := src.ListSymbolAggregatesForTrials(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Trials:         trials,
		WindowTrialIDs: windowIDs,
		SymbolsAll:     all,
		SymbolsWindow:  windowed,
	}, nil
}

func trialIDs(trials []model.TrialAggregate) []int64 {
	ids := make([]int64, len(trials))
	for i, t := range trials {
		ids[i] = t.TrialID
	}
	return ids
}

func lastTrialIDs(trials []model.TrialAggregate, window int) []int64 {
	if window <= 0 || len(trials) <= window {
		return trialIDs(trials)
	}
	return trialIDs(trials[len(trials)-window:])
}
