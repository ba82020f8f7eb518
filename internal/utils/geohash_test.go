package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeLocation(t *testing.T) {
	// Nairobi CBD
	hash := EncodeLocation(-1.2921, 36.8219, 6)
	assert.Len(t, hash, 6)

	// Same point at higher precision shares the prefix
	finer := EncodeLocation(-1.2921, 36.8219, 9)
	assert.Len(t, finer, 9)
	assert.Equal(t, hash, finer[:6])
}

func TestDecodeGeohash_RoundTrip(t *testing.T) {
	lat, lon := -1.2921, 36.8219
	hash := EncodeLocation(lat, lon, 9)

	gotLat, gotLon := DecodeGeohash(hash)
	assert.InDelta(t, lat, gotLat, 0.001)
	assert.InDelta(t, lon, gotLon, 0.001)
}

func TestGetNeighbors(t *testing.T) {
	neighbors := GetNeighbors(EncodeLocation(-1.2921, 36.8219, 6))
	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.Len(t, n, 6)
	}
}

func TestCalculateDistance(t *testing.T) {
	nairobi := GeoPoint{Latitude: -1.2921, Longitude: 36.8219}
	mombasa := GeoPoint{Latitude: -4.0435, Longitude: 39.6682}

	// Roughly 440 km apart
	d := CalculateDistance(nairobi, mombasa)
	assert.InDelta(t, 440.0, d, 10.0)

	assert.Zero(t, CalculateDistance(nairobi, nairobi))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-1.2921, 36.8219))
	assert.False(t, ValidCoordinates(0, 0))
	assert.False(t, ValidCoordinates(91, 36.8219))
	assert.False(t, ValidCoordinates(-1.2921, 181))
	assert.False(t, ValidCoordinates(-91, -181))
}
