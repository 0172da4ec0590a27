package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPointsSeeded(t *testing.T) {
	a := randomPoints(10, 50, 42)
	b := randomPoints(10, 50, 42)
	assert.Equal(t, a, b, "same seed must produce the same point set")

	for _, p := range a {
		assert.True(t, p.X >= 0 && p.X < 50)
		assert.True(t, p.Y >= 0 && p.Y < 50)
	}
}

func TestRandomPointsDifferentSeeds(t *testing.T) {
	a := randomPoints(10, 50, 1)
	b := randomPoints(10, 50, 2)
	assert.NotEqual(t, a, b)
}

func TestDefaultSettingsBound(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, 20, s.Count)
	assert.Equal(t, float64(0), s.Bound, "zero bound means derive 5*count at load time")
}
