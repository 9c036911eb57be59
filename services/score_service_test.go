package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		score int
		want  ThermometerZone
	}{
		{-10, ZoneAlerta},
		{-1, ZoneAlerta},
		{0, ZoneAtencao},
		{49, ZoneAtencao},
		{50, ZoneEstavel},
		{99, ZoneEstavel},
		{100, ZoneExcelente},
		{500, ZoneExcelente},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneFor(tt.score), "score=%d", tt.score)
	}
}
