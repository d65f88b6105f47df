// Package sensor turns raw tracker packages into workouts.
package sensor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/fittrack/internal/training"
)

var (
	// ErrUnknownWorkoutCode is returned for a code outside SWM, RUN and WLK.
	ErrUnknownWorkoutCode = errors.New("unknown workout code")
	// ErrInvalidArguments is returned when the data list does not fit the code.
	ErrInvalidArguments = errors.New("invalid workout arguments")
)

// Code is the short workout token sent by the tracker.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

type variant struct {
	kind  training.Kind
	arity int
	build func(data []float64) (training.Training, error)
}

var variants = map[Code]variant{
	CodeSwimming: {
		kind:  training.KindSwimming,
		arity: 5,
		build: func(data []float64) (training.Training, error) {
			action, err := integral("action", data[0])
			if err != nil {
				return nil, err
			}
			laps, err := integral("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return training.NewSwimming(action, data[1], data[2], data[3], laps)
		},
	},
	CodeRunning: {
		kind:  training.KindRunning,
		arity: 3,
		build: func(data []float64) (training.Training, error) {
			action, err := integral("action", data[0])
			if err != nil {
				return nil, err
			}
			return training.NewRunning(action, data[1], data[2])
		},
	},
	CodeWalking: {
		kind:  training.KindSportsWalking,
		arity: 4,
		build: func(data []float64) (training.Training, error) {
			action, err := integral("action", data[0])
			if err != nil {
				return nil, err
			}
			return training.NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// Codes lists the accepted workout codes.
func Codes() []Code {
	return []Code{CodeSwimming, CodeRunning, CodeWalking}
}

// Arity returns the number of data values a code expects.
func Arity(code string) (int, error) {
	v, ok := variants[Code(code)]
	if !ok {
		return 0, unknownCode(code)
	}
	return v.arity, nil
}

// KindOf returns the workout variant a code maps to.
func KindOf(code string) (training.Kind, error) {
	v, ok := variants[Code(code)]
	if !ok {
		return "", unknownCode(code)
	}
	return v.kind, nil
}

// ReadPackage builds the workout described by a code and its positional data.
func ReadPackage(code string, data []float64) (training.Training, error) {
	v, ok := variants[Code(code)]
	if !ok {
		return nil, unknownCode(code)
	}
	if len(data) != v.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidArguments, code, v.arity, len(data))
	}
	return v.build(data)
}

// ParseArgs parses command line tokens into package data.
func ParseArgs(args []string) ([]float64, error) {
	data := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArguments, arg)
		}
		data = append(data, v)
	}
	return data, nil
}

func integral(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidArguments, name, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s is out of range: %v", ErrInvalidArguments, name, v)
	}
	return int(v), nil
}

func unknownCode(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, code)
}

// Package is one reading as sent by the tracker.
type Package struct {
	Code string
	Data []float64
}

// Read builds the workout described by p.
func (p Package) Read() (training.Training, error) {
	return ReadPackage(p.Code, p.Data)
}

// DemoPackages returns the sample batch used when nothing else is configured.
func DemoPackages() []Package {
	return []Package{
		{Code: string(CodeSwimming), Data: []float64{720, 1, 80, 25, 40}},
		{Code: string(CodeRunning), Data: []float64{15000, 1, 75}},
		{Code: string(CodeWalking), Data: []float64{9000, 1, 75, 180}},
	}
}
