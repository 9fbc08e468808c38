package stats

import (
	"sort"

	"github.com/verte-zerg/gridmem/internal/model"
)

// HardestSymbols returns up to n symbols with the lowest recall accuracy.
// Ties go to the symbol seen more often, then by symbol.
func HardestSymbols(aggs []model.SymbolAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	candidates := make([]model.SymbolAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Correct+agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai, aj := symbolAccuracy(candidates[i]), symbolAccuracy(candidates[j])
		if ai != aj {
			return ai < aj
		}
		ti := candidates[i].Correct + candidates[i].Incorrect
		tj := candidates[j].Correct + candidates[j].Incorrect
		if ti != tj {
			return ti > tj
		}
		return candidates[i].Symbol < candidates[j].Symbol
	})
	n = min(n, len(candidates))
	out := make([]string, 0, n)
	for _, agg := range candidates[:n] {
		out = append(out, agg.Symbol)
	}
	return out
}
