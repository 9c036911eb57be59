package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "none"},
		{29, "none"},
		{30, "bronze"}, // exact threshold belongs to the tier it defines
		{89, "bronze"},
		{90, "silver"},
		{179, "silver"},
		{180, "gold"},
		{364, "gold"},
		{365, "platinum"},
		{1000, "platinum"},
		{-3, "none"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.days).Name, "days=%d", tt.days)
	}
}

func TestMilestonesAscending(t *testing.T) {
	ms := Milestones()
	assert.Len(t, ms, 4)
	assert.Equal(t, []int{30, 90, 180, 365}, []int{ms[0].MinDays, ms[1].MinDays, ms[2].MinDays, ms[3].MinDays})
	for _, m := range ms {
		assert.NotEmpty(t, m.Glyph)
	}
}
