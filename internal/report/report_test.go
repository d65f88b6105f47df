package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFormat(t *testing.T) {
	msg := New("Running", 1, 9.75, 9.75, 701.25)

	want := "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; " +
		"Ср. скорость: 9.750 км/ч; Потрачено ккал: 701.250."
	assert.Equal(t, want, msg.Message())
	assert.Equal(t, want, msg.String())
}

func TestMessageRoundsToThreeDecimals(t *testing.T) {
	msg := New("Swimming", 1.5, 0.9936, 1.0, 336.00049)

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.500 ч.; Дистанция: 0.994 км; "+
			"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		msg.Message())
}

func TestMessageIsIdempotent(t *testing.T) {
	msg := New("SportsWalking", 1, 5.85, 5.85, 157.5)

	first := msg.Message()
	require.NotEmpty(t, first)
	assert.Equal(t, first, msg.Message())
}

func TestAccessors(t *testing.T) {
	msg := New("Running", 2, 3, 4, 5)

	assert.Equal(t, "Running", msg.TrainingType())
	assert.Equal(t, 2.0, msg.Duration())
	assert.Equal(t, 3.0, msg.Distance())
	assert.Equal(t, 4.0, msg.Speed())
	assert.Equal(t, 5.0, msg.Calories())
}
