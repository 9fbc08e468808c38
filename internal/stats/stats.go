// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

const sparkChars = " .:-=+*#%@"

// TrialMetrics computes accuracy and recall speed for a trial.
// Speed is correct symbols per second of input time.
func TrialMetrics(correct, total int, inputMs int64) (accuracy, perSecond float64) {
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}
	if inputMs > 0 {
		perSecond = float64(correct) / (float64(inputMs) / 1000.0)
	}
	return accuracy, perSecond
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// AccuracySeries returns per-trial accuracy in percent, smoothed over window.
func AccuracySeries(trials []model.TrialAggregate, window int) []float64 {
	values := make([]float64, len(trials))
	for i, t := range trials {
		acc, _ := TrialMetrics(t.Correct, t.Total, t.InputMs)
		values[i] = acc * 100
	}
	return MovingAverage(values, window)
}

// RenderSummary prints a summary block for trials.
func RenderSummary(w io.Writer, trials []model.TrialAggregate, window int) error {
	if len(trials) == 0 {
		_, err := fmt.Fprintln(w, "No trials found.")
		return err
	}
	var totalAcc, totalSpeed float64
	bestAcc := 0.0
	perfect := 0
	var fastest int64
	for _, t := range trials {
		acc, speed := TrialMetrics(t.Correct, t.Total, t.InputMs)
		totalAcc += acc
		totalSpeed += speed
		bestAcc = math.Max(bestAcc, acc)
		if t.Total > 0 && t.Correct == t.Total {
			perfect++
			if fastest == 0 || (t.InputMs > 0 && t.InputMs < fastest) {
				fastest = t.InputMs
			}
		}
	}
	count := float64(len(trials))
	lines := []string{
		"Summary",
		fmt.Sprintf("Trials: %d", len(trials)),
		fmt.Sprintf("Avg Accuracy: %.2f%%", totalAcc/count*100),
		fmt.Sprintf("Best Accuracy: %.2f%%", bestAcc*100),
		fmt.Sprintf("Avg Symbols/s: %.2f", totalSpeed/count),
		fmt.Sprintf("Perfect Trials: %d", perfect),
	}
	if fastest > 0 {
		lines = append(lines, fmt.Sprintf("Fastest Perfect: %s", FormatElapsed(time.Duration(fastest)*time.Millisecond)))
	}
	lines = append(lines, fmt.Sprintf("Trend: [%s]", Sparkline(AccuracySeries(trials, window))), "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSymbolTable prints per-symbol aggregates, weakest first.
func RenderSymbolTable(w io.Writer, aggs []model.SymbolAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No symbol stats found.")
		return err
	}
	rows := make([]model.SymbolAggregate, len(aggs))
	copy(rows, aggs)
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := symbolAccuracy(rows[i]), symbolAccuracy(rows[j])
		if ai == aj {
			return rows[i].Symbol < rows[j].Symbol
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, "Per-Symbol (Windowed)"); err != nil {
		return err
	}
	headers := []string{"Symbol", "Accuracy", "Correct", "Missed"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Symbol,
			fmt.Sprintf("%.2f%%", symbolAccuracy(r)*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
		})
	}
	for _, line := range formatTable(headers, tableRows, map[int]bool{1: true, 2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// FormatElapsed renders d as seconds with hundredths, "ss.hh".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d.%02d", cs/100, cs%100)
}

func symbolAccuracy(agg model.SymbolAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
