package stats

import (
	"context"

	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Summaries  []model.Summary
	Aggregates []model.TypeAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.HistoryFilter) (Report, error) {
	summaries, err := st.ListSummaries(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	aggs, err := st.AggregateByType(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Summaries:  summaries,
		Aggregates: SortByCalories(aggs),
	}, nil
}

// Calories returns the calories of each summary in order.
func (r Report) Calories() []float64 {
	out := make([]float64, len(r.Summaries))
	for i, s := range r.Summaries {
		out[i] = s.Calories
	}
	return out
}
