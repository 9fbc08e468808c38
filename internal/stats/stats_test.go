package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"
)

func TestTrialMetrics(t *testing.T) {
	acc, speed := TrialMetrics(8, 16, 4000)
	if acc != 0.5 || speed != 2 {
		t.Fatalf("unexpected metrics: %v %v", acc, speed)
	}
	acc, speed = TrialMetrics(0, 0, 0)
	if acc != 0 || speed != 0 {
		t.Fatalf("expected zero metrics, got %v %v", acc, speed)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 100}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestHardestSymbols(t *testing.T) {
	aggs := []model.SymbolAggregate{
		{Symbol: "b", Correct: 3, Incorrect: 1},
		{Symbol: "a", Correct: 1, Incorrect: 1},
		{Symbol: "c", Correct: 2, Incorrect: 2},
		{Symbol: "d", Correct: 0, Incorrect: 0},
	}
	got := HardestSymbols(aggs, 2)
	if len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
	if HardestSymbols(aggs, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	trials := []model.TrialAggregate{
		{TrialID: 1, Correct: 9, Total: 9, InputMs: 4500},
		{TrialID: 2, Correct: 3, Total: 9, InputMs: 3000},
	}
	if err := RenderSummary(&buf, trials, 1); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Trials: 2", "Best Accuracy: 100.00%", "Perfect Trials: 1", "Fastest Perfect: 04.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, nil, 1); err != nil || !strings.Contains(buf.String(), "No trials") {
		t.Fatalf("unexpected empty summary: %q, %v", buf.String(), err)
	}
}

func TestRenderSymbolTableWeakestFirst(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSymbolTable(&buf, []model.SymbolAggregate{
		{Symbol: "x", Correct: 4, Incorrect: 0},
		{Symbol: "y", Correct: 1, Incorrect: 3},
	})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 || !strings.HasPrefix(lines[2], "y") || !strings.HasPrefix(lines[3], "x") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(3*time.Second + 70*time.Millisecond); got != "03.07" {
		t.Fatalf("unexpected elapsed %q", got)
	}
	if got := FormatElapsed(-time.Second); got != "00.00" {
		t.Fatalf("unexpected negative elapsed %q", got)
	}
}

func TestRenderCurve(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCurve(&buf, "Accuracy", []float64{0, 50, 100}, 30); err != nil {
		t.Fatalf("render curve: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Accuracy" || len(lines) != 1+curveHeight {
		t.Fatalf("unexpected curve output:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[1], "100% ┤") || !strings.HasPrefix(lines[curveHeight], "  0% ┤") {
		t.Fatalf("unexpected axis labels:\n%s", buf.String())
	}
	buf.Reset()
	if err := RenderCurve(&buf, "Empty", nil, 30); err != nil || buf.Len() != 0 {
		t.Fatalf("expected no output for empty series")
	}
}
