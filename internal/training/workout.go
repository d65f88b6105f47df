package training

import (
	"errors"
	"fmt"
	"math"

	"github.com/verte-zerg/fittrack/internal/report"
)

var (
	// ErrInvalidInput is returned when a workout is built from out-of-range values.
	ErrInvalidInput = errors.New("invalid workout input")
	// ErrUnimplemented is returned when calories are requested from a bare Workout.
	ErrUnimplemented = errors.New("calorie computation is not implemented for a bare workout")
)

// Training is satisfied by every workout variant.
type Training interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Workout holds the readings shared by all variants.
type Workout struct {
	kind     Kind
	action   int
	duration float64
	weight   float64
}

// NewWorkout validates the shared readings. The result has no variant and
// cannot report calories.
func NewWorkout(action int, duration, weight float64) (Workout, error) {
	return newWorkout("", action, duration, weight)
}

func newWorkout(kind Kind, action int, duration, weight float64) (Workout, error) {
	if action < 0 {
		return Workout{}, fmt.Errorf("%w: action must be >= 0, got %d", ErrInvalidInput, action)
	}
	if err := requirePositive("duration", duration); err != nil {
		return Workout{}, err
	}
	if err := requirePositive("weight", weight); err != nil {
		return Workout{}, err
	}
	return Workout{kind: kind, action: action, duration: duration, weight: weight}, nil
}

func requirePositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// Kind returns the variant, or an empty Kind for a bare Workout.
func (w Workout) Kind() Kind { return w.kind }

// Action returns the number of steps or strokes.
func (w Workout) Action() int { return w.action }

// Duration returns the workout duration in hours.
func (w Workout) Duration() float64 { return w.duration }

// Weight returns the athlete weight in kilograms.
func (w Workout) Weight() float64 { return w.weight }

// Distance returns the covered distance in kilometers.
func (w Workout) Distance() float64 {
	return float64(w.action) * stepLength(w.kind) / MetersPerKm
}

// MeanSpeed returns the mean speed in km/h.
func (w Workout) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories always fails for a bare Workout.
func (w Workout) SpentCalories() (float64, error) {
	return 0, ErrUnimplemented
}

// ShowTrainingInfo fails for a bare Workout; see Summarize.
func (w Workout) ShowTrainingInfo() (report.InfoMessage, error) {
	return Summarize(w)
}

func (w Workout) durationMinutes() float64 {
	return w.duration * MinutesPerHour
}

// Summarize builds the report of a workout from its own computations.
func Summarize(t Training) (report.InfoMessage, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return report.InfoMessage{}, err
	}
	return report.New(t.Kind().String(), t.Duration(), t.Distance(), t.MeanSpeed(), calories), nil
}
