package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/fittrack/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MeanSpeed returns the overall speed of an aggregate in km/h.
func MeanSpeed(agg model.TypeAggregate) float64 {
	if agg.Duration <= 0 {
		return 0
	}
	return agg.Distance / agg.Duration
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
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
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderTotals prints per-type totals.
func RenderTotals(w io.Writer, aggs []model.TypeAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No workouts recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Totals"); err != nil {
		return err
	}
	headers := []string{"Type", "Workouts", "Hours", "Distance (km)", "Speed (km/h)", "Calories"}
	rows := make([][]string, 0, len(aggs)+1)
	var total model.TypeAggregate
	for _, agg := range SortByCalories(aggs) {
		rows = append(rows, totalsRow(agg.TrainingType, agg))
		total.Count += agg.Count
		total.Duration += agg.Duration
		total.Distance += agg.Distance
		total.Calories += agg.Calories
	}
	if len(aggs) > 1 {
		rows = append(rows, totalsRow("All", total))
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}))
}

func totalsRow(label string, agg model.TypeAggregate) []string {
	return []string{
		label,
		fmt.Sprintf("%d", agg.Count),
		fmt.Sprintf("%.3f", agg.Duration),
		fmt.Sprintf("%.3f", agg.Distance),
		fmt.Sprintf("%.3f", MeanSpeed(agg)),
		fmt.Sprintf("%.3f", agg.Calories),
	}
}

// RenderHistory prints journaled summaries as a table.
func RenderHistory(w io.Writer, summaries []model.Summary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No workouts recorded.")
		return err
	}
	headers := []string{"Recorded", "Code", "Type", "Hours", "Distance (km)", "Speed (km/h)", "Calories"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, HistoryRow(s))
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{3: true, 4: true, 5: true, 6: true}))
}

// HistoryRow formats the cells of one journal row.
func HistoryRow(s model.Summary) []string {
	return []string{
		s.RecordedAt.Local().Format("2006-01-02 15:04"),
		s.Code,
		s.TrainingType,
		fmt.Sprintf("%.3f", s.Duration),
		fmt.Sprintf("%.3f", s.Distance),
		fmt.Sprintf("%.3f", s.Speed),
		fmt.Sprintf("%.3f", s.Calories),
	}
}

// RenderTrend prints a calories sparkline smoothed over window workouts.
func RenderTrend(w io.Writer, summaries []model.Summary, window int) error {
	if len(summaries) < 2 {
		return nil
	}
	calories := make([]float64, len(summaries))
	for i, s := range summaries {
		calories[i] = s.Calories
	}
	smoothed := MovingAverage(calories, window)
	_, err := fmt.Fprintf(w, "Calories trend (window %d): [%s]\n", max(window, 1), Sparkline(smoothed))
	return err
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
