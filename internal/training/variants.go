package training

import (
	"fmt"
	"math"

	"github.com/verte-zerg/fittrack/internal/report"
)

// Running is a run measured in steps.
type Running struct {
	Workout
}

// NewRunning validates the readings of a run.
func NewRunning(action int, duration, weight float64) (Running, error) {
	w, err := newWorkout(KindRunning, action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{Workout: w}, nil
}

// SpentCalories returns the kilocalories burned during the run.
func (r Running) SpentCalories() (float64, error) {
	c := coefficients[KindRunning]
	return (c.SpeedFactor*r.MeanSpeed() - c.SpeedShift) * r.weight / MetersPerKm * r.durationMinutes(), nil
}

// ShowTrainingInfo returns the summary of the run.
func (r Running) ShowTrainingInfo() (report.InfoMessage, error) {
	return Summarize(r)
}

// SportsWalking is a walk measured in steps, adjusted for the athlete's height.
type SportsWalking struct {
	Workout
	height float64
}

// NewSportsWalking validates the readings of a walk. Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	w, err := newWorkout(KindSportsWalking, action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if err := requirePositive("height", height); err != nil {
		return SportsWalking{}, err
	}
	return SportsWalking{Workout: w, height: height}, nil
}

// Height returns the athlete height in centimeters.
func (s SportsWalking) Height() float64 { return s.height }

// SpentCalories returns the kilocalories burned during the walk. The speed
// term is floor-divided by height.
func (s SportsWalking) SpentCalories() (float64, error) {
	c := coefficients[KindSportsWalking]
	speedTerm := math.Floor(math.Pow(s.MeanSpeed(), c.SpeedPower) / s.height)
	return (c.WeightFactor*s.weight + speedTerm*c.SpeedFactor*s.weight) * s.durationMinutes(), nil
}

// ShowTrainingInfo returns the summary of the walk.
func (s SportsWalking) ShowTrainingInfo() (report.InfoMessage, error) {
	return Summarize(s)
}

// Swimming is a pool swim. Speed comes from the pool length and lap count.
type Swimming struct {
	Workout
	lengthPool float64
	countPool  int
}

// NewSwimming validates the readings of a swim. Pool length is in meters.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	w, err := newWorkout(KindSwimming, action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if err := requirePositive("length_pool", lengthPool); err != nil {
		return Swimming{}, err
	}
	if countPool < 0 {
		return Swimming{}, fmt.Errorf("%w: count_pool must be >= 0, got %d", ErrInvalidInput, countPool)
	}
	return Swimming{Workout: w, lengthPool: lengthPool, countPool: countPool}, nil
}

// LengthPool returns the pool length in meters.
func (s Swimming) LengthPool() float64 { return s.lengthPool }

// CountPool returns the number of laps.
func (s Swimming) CountPool() int { return s.countPool }

// MeanSpeed returns the mean speed in km/h computed from the laps swum.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MetersPerKm / s.duration
}

// SpentCalories returns the kilocalories burned during the swim.
func (s Swimming) SpentCalories() (float64, error) {
	c := coefficients[KindSwimming]
	return (s.MeanSpeed() + c.SpeedShift) * c.WeightFactor * s.weight, nil
}

// ShowTrainingInfo returns the summary of the swim.
func (s Swimming) ShowTrainingInfo() (report.InfoMessage, error) {
	return Summarize(s)
}
