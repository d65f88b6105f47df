package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/fittrack/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func seed(t *testing.T, st *Store) []int64 {
	t.Helper()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rows := []model.Summary{
		{RunID: "r1", RecordedAt: base, Code: "SWM", TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
		{RunID: "r1", RecordedAt: base.Add(time.Minute), Code: "RUN", TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75},
		{RunID: "r2", RecordedAt: base.Add(2 * time.Minute), Code: "WLK", TrainingType: "SportsWalking", Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 157.5},
		{RunID: "r2", RecordedAt: base.Add(3 * time.Minute), Code: "RUN", TrainingType: "Running", Duration: 0.5, Distance: 5, Speed: 10, Calories: 360},
	}
	ids, err := st.InsertSummaries(context.Background(), rows)
	if err != nil {
		t.Fatalf("insert summaries: %v", err)
	}
	if len(ids) != len(rows) {
		t.Fatalf("expected %d ids, got %d", len(rows), len(ids))
	}
	return ids
}

func TestListSummariesOrderAndLimit(t *testing.T) {
	st := openTestStore(t)
	ids := seed(t, st)
	ctx := context.Background()

	all, err := st.ListSummaries(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(all))
	}
	for i, sm := range all {
		if sm.ID != ids[i] {
			t.Fatalf("unexpected order: %+v", all)
		}
	}
	if !all[0].RecordedAt.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected recorded_at: %v", all[0].RecordedAt)
	}

	last, err := st.ListSummaries(ctx, model.HistoryFilter{Last: 2})
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(last) != 2 || last[0].ID != ids[2] || last[1].ID != ids[3] {
		t.Fatalf("unexpected last summaries: %+v", last)
	}
}

func TestListSummariesByType(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)

	runs, err := st.ListSummaries(context.Background(), model.HistoryFilter{TrainingType: "Running"})
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Code != "RUN" {
			t.Fatalf("unexpected row: %+v", r)
		}
	}
}

func TestAggregateByType(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)

	aggs, err := st.AggregateByType(context.Background(), model.HistoryFilter{})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(aggs) != 3 {
		t.Fatalf("expected 3 aggregates, got %d", len(aggs))
	}
	var running model.TypeAggregate
	for _, agg := range aggs {
		if agg.TrainingType == "Running" {
			running = agg
		}
	}
	if running.Count != 2 || running.Duration != 1.5 || running.Distance != 14.75 || running.Calories != 1059.75 {
		t.Fatalf("unexpected running aggregate: %+v", running)
	}

	recent, err := st.AggregateByType(context.Background(), model.HistoryFilter{Last: 1})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(recent) != 1 || recent[0].TrainingType != "Running" || recent[0].Count != 1 {
		t.Fatalf("unexpected windowed aggregate: %+v", recent)
	}
}

func TestInsertSummariesEmpty(t *testing.T) {
	st := openTestStore(t)
	ids, err := st.InsertSummaries(context.Background(), nil)
	if err != nil {
		t.Fatalf("insert summaries: %v", err)
	}
	if ids != nil {
		t.Fatalf("expected no ids, got %v", ids)
	}
}
