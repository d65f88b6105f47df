// Package report holds the rendered summary of a single workout.
package report

import "fmt"

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is an immutable workout summary.
type InfoMessage struct {
	trainingType string
	duration     float64
	distance     float64
	speed        float64
	calories     float64
}

// New builds an InfoMessage. Values are copied and never change afterwards.
func New(trainingType string, duration, distance, speed, calories float64) InfoMessage {
	return InfoMessage{
		trainingType: trainingType,
		duration:     duration,
		distance:     distance,
		speed:        speed,
		calories:     calories,
	}
}

// TrainingType returns the workout type name.
func (m InfoMessage) TrainingType() string { return m.trainingType }

// Duration returns the workout duration in hours.
func (m InfoMessage) Duration() float64 { return m.duration }

// Distance returns the covered distance in kilometers.
func (m InfoMessage) Distance() float64 { return m.distance }

// Speed returns the mean speed in km/h.
func (m InfoMessage) Speed() float64 { return m.speed }

// Calories returns the spent kilocalories.
func (m InfoMessage) Calories() float64 { return m.calories }

// Message renders the summary line. Numbers always use a decimal point.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.trainingType, m.duration, m.distance, m.speed, m.calories)
}

func (m InfoMessage) String() string {
	return m.Message()
}
