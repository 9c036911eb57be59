package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForFixedKinds(t *testing.T) {
	tests := []struct {
		kind ActivityKind
		want int
	}{
		{ActivityDevotional, 30},
		{ActivityMotivation, 20},
		{ActivitySobriety, 20},
		{ActivityTrigger, 15},
		{ActivityGratitude, 15},
		{ActivityTask, 10},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, PointsFor(tt.kind, ""))
			// mood label must not leak into fixed kinds
			assert.Equal(t, tt.want, PointsFor(tt.kind, "Irritado"))
		})
	}
}

func TestPointsForMood(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Ótimo", 10},
		{"Bem", 5},
		{"Desmotivado", -3},
		{"Triste", -5},
		{"Irritado", -10},
		{"inexistente", 0}, // unknown label scores zero, never errors
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsFor(ActivityMood, tt.label))
		})
	}
}

func TestPointsForUnknownKind(t *testing.T) {
	assert.Equal(t, 0, PointsFor(ActivityKind("selfie"), ""))
	assert.False(t, ValidKind(ActivityKind("selfie")))
	assert.True(t, ValidKind(ActivityMood))
}

func TestCheckInPoints(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Ótimo", 10},
		{"Bem", 5},
		{"Neutro", 0},
		{"Desafiado", -3},
		{"Difícil", -5},
		{"Triste", 0}, // ledger-scale label; not part of the check-in scale
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckInPoints(tt.label), "label %q", tt.label)
	}
}
