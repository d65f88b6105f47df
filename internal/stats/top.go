package stats

import (
	"sort"

	"github.com/verte-zerg/fittrack/internal/model"
)

// SortByCalories returns a copy of aggs ordered by total calories, highest first.
func SortByCalories(aggs []model.TypeAggregate) []model.TypeAggregate {
	out := make([]model.TypeAggregate, len(aggs))
	copy(out, aggs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calories == out[j].Calories {
			return out[i].TrainingType < out[j].TrainingType
		}
		return out[i].Calories > out[j].Calories
	})
	return out
}
