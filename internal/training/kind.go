// Package training computes distance, speed and calorie summaries for workouts.
package training

const (
	// MetersPerKm converts meters to kilometers.
	MetersPerKm = 1000
	// MinutesPerHour converts hours to minutes.
	MinutesPerHour = 60
	// DefaultStepLength is the distance in meters covered by one step.
	DefaultStepLength = 0.65
)

// Kind names a workout variant. The value doubles as the report type name.
type Kind string

const (
	KindRunning       Kind = "Running"
	KindSportsWalking Kind = "SportsWalking"
	KindSwimming      Kind = "Swimming"
)

// Kinds lists every supported variant.
func Kinds() []Kind {
	return []Kind{KindRunning, KindSportsWalking, KindSwimming}
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the supported variants.
func (k Kind) Valid() bool {
	_, ok := coefficients[k]
	return ok
}

// Coefficients holds the constants used by one variant's formulas.
//
//	Running:       (SpeedFactor*speed - SpeedShift) * weight / 1000 * minutes
//	SportsWalking: (WeightFactor*weight + floor(speed^SpeedPower / height) * SpeedFactor * weight) * minutes
//	Swimming:      (speed + SpeedShift) * WeightFactor * weight
type Coefficients struct {
	StepLength   float64
	SpeedFactor  float64
	SpeedShift   float64
	WeightFactor float64
	SpeedPower   float64
}

var coefficients = map[Kind]Coefficients{
	KindRunning: {
		StepLength:  DefaultStepLength,
		SpeedFactor: 18,
		SpeedShift:  20,
	},
	KindSportsWalking: {
		StepLength:   DefaultStepLength,
		WeightFactor: 0.035,
		SpeedPower:   2,
		SpeedFactor:  0.029,
	},
	KindSwimming: {
		StepLength:   1.38,
		SpeedShift:   1.1,
		WeightFactor: 2,
	},
}

// CoefficientsFor returns the coefficient row of a variant.
func CoefficientsFor(k Kind) (Coefficients, bool) {
	c, ok := coefficients[k]
	return c, ok
}

func stepLength(k Kind) float64 {
	if c, ok := coefficients[k]; ok {
		return c.StepLength
	}
	return DefaultStepLength
}
