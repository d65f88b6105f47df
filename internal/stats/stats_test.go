package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/fittrack/internal/model"
)

func TestMeanSpeed(t *testing.T) {
	if got := MeanSpeed(model.TypeAggregate{Distance: 15, Duration: 1.5}); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := MeanSpeed(model.TypeAggregate{Distance: 15}); got != 0 {
		t.Fatalf("expected 0 for empty duration, got %v", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if got := MovingAverage([]float64{1, 2}, 0); got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("expected min/max sparkline, got %q", got)
	}
}

func TestRenderTotals(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTotals(&buf, []model.TypeAggregate{
		{TrainingType: "Swimming", Count: 1, Duration: 1, Distance: 0.9936, Calories: 336},
		{TrainingType: "Running", Count: 2, Duration: 1.5, Distance: 14.75, Calories: 1059.75},
	})
	if err != nil {
		t.Fatalf("render totals: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Totals" {
		t.Fatalf("unexpected title: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Running") || !strings.HasSuffix(lines[2], "1059.750") {
		t.Fatalf("unexpected first row: %q", lines[2])
	}
	if !strings.Contains(lines[2], "9.833") {
		t.Fatalf("expected running speed in row: %q", lines[2])
	}
	if !strings.HasPrefix(lines[4], "All") || !strings.HasSuffix(lines[4], "1395.750") {
		t.Fatalf("unexpected totals row: %q", lines[4])
	}
}

func TestRenderTotalsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTotals(&buf, nil); err != nil {
		t.Fatalf("render totals: %v", err)
	}
	if buf.String() != "No workouts recorded.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHistory(&buf, []model.Summary{
		{Code: "RUN", TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75},
	})
	if err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Recorded", "RUN", "Running", "9.750", "699.750"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestRenderTrend(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrend(&buf, []model.Summary{{Calories: 100}}, 3); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no trend for a single workout, got %q", buf.String())
	}
	err := RenderTrend(&buf, []model.Summary{{Calories: 100}, {Calories: 300}}, 1)
	if err != nil {
		t.Fatalf("render trend: %v", err)
	}
	if buf.String() != "Calories trend (window 1): [ @]\n" {
		t.Fatalf("unexpected trend: %q", buf.String())
	}
}
