package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistanceZeroAtIdentity(t *testing.T) {
	assert.Zero(t, CalculateDistance(37.7749, -122.4194, 37.7749, -122.4194))
	assert.Zero(t, CalculateDistance(0, 0, 0, 0))
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{37.7749, -122.4194, 34.0522, -118.2437},
		{40.7128, -74.0060, 38.9072, -77.0369},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 10, -89.9, -170},
	}

	for _, p := range pairs {
		ab := CalculateDistance(p[0], p[1], p[2], p[3])
		ba := CalculateDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestCalculateDistanceSanFranciscoToLosAngeles(t *testing.T) {
	distance := CalculateDistance(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 559, distance, 2)
}

func TestIsWithinRadius(t *testing.T) {
	// SF to LA is ~559 km
	assert.False(t, IsWithinRadius(37.7749, -122.4194, 34.0522, -118.2437, 500))
	assert.True(t, IsWithinRadius(37.7749, -122.4194, 34.0522, -118.2437, 600))
}

func TestRoundDistance(t *testing.T) {
	assert.Equal(t, 2.0, RoundDistance(2.0005))
	assert.Equal(t, 9.9, RoundDistance(9.94))
	assert.Equal(t, 10.0, RoundDistance(9.96))
	assert.Equal(t, 0.0, RoundDistance(0))
}
