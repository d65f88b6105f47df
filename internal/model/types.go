// Package model defines shared data structures.
package model

import "time"

// Config defines tracker settings after merging the config file and flags.
type Config struct {
	Journal bool
	Workers int
	DBPath  string
}

// HistoryFilter selects journal rows for history and stats output.
type HistoryFilter struct {
	TrainingType string
	Last         int
}

// Summary is one computed workout as recorded in the journal.
type Summary struct {
	ID           int64
	RunID        string
	RecordedAt   time.Time
	Code         string
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// TypeAggregate sums journal rows of one training type.
type TypeAggregate struct {
	TrainingType string
	Count        int
	Duration     float64
	Distance     float64
	Calories     float64
}
