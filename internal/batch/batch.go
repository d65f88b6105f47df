// Package batch computes summaries for a list of sensor packages.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/report"
	"github.com/verte-zerg/fittrack/internal/sensor"
	"github.com/verte-zerg/fittrack/internal/training"
)

// Result pairs a package with its computed summary.
type Result struct {
	Package sensor.Package
	Info    report.InfoMessage
}

// Process summarizes every package using up to workers goroutines. Results
// keep the input order. The first failing package aborts the batch.
func Process(ctx context.Context, pkgs []sensor.Package, workers int) ([]Result, error) {
	results := make([]Result, len(pkgs))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(max(workers, 1))
	for i, pkg := range pkgs {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := Summarize(pkg)
			if err != nil {
				return fmt.Errorf("package %d (%s): %w", i+1, pkg.Code, err)
			}
			log.Debug().Int("index", i).Str("code", pkg.Code).Float64("calories", info.Calories()).Msg("summarized")
			results[i] = Result{Package: pkg, Info: info}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize reads a single package and builds its summary.
func Summarize(pkg sensor.Package) (report.InfoMessage, error) {
	tr, err := pkg.Read()
	if err != nil {
		return report.InfoMessage{}, err
	}
	return training.Summarize(tr)
}

// NewRunID returns a fresh identifier grouping the summaries of one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// Summaries converts results into journal rows.
func Summaries(runID string, at time.Time, results []Result) []model.Summary {
	out := make([]model.Summary, 0, len(results))
	for i, r := range results {
		out = append(out, model.Summary{
			RunID:        runID,
			RecordedAt:   at.Add(time.Duration(i) * time.Microsecond),
			Code:         r.Package.Code,
			TrainingType: r.Info.TrainingType(),
			Duration:     r.Info.Duration(),
			Distance:     r.Info.Distance(),
			Speed:        r.Info.Speed(),
			Calories:     r.Info.Calories(),
		})
	}
	return out
}

// Message rebuilds the rendered report of a journal row.
func Message(s model.Summary) string {
	return report.New(s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories).Message()
}
