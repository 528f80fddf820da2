package feregion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	c, err := NewCoordinates(36.2, -122.5)
	require.NoError(t, err)
	assert.Equal(t, 36.2, c.Latitude())
	assert.Equal(t, -122.5, c.Longitude())
	assert.Equal(t, "36.2N 122.5W", c.String())

	for _, edge := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		_, err := NewCoordinates(edge[0], edge[1])
		assert.NoError(t, err, "%v", edge)
	}
}

func TestNewCoordinates_OutOfRange(t *testing.T) {
	tests := []struct {
		lat, lon float64
		axis     string
	}{
		{90.0001, 0, "latitude"},
		{-91, 0, "latitude"},
		{0, 180.5, "longitude"},
		{0, -181, "longitude"},
		{math.NaN(), 0, "latitude"},
		{0, math.NaN(), "longitude"},
	}
	for _, tt := range tests {
		_, err := NewCoordinates(tt.lat, tt.lon)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIllegalCoordinate)

		var ce *CoordinateError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, tt.axis, ce.Axis)
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		lon, lat         string
		wantLat, wantLon float64
	}{
		{"122.5W", "36.2N", 36.2, -122.5},
		{"-122.5", "36.2", 36.2, -122.5},
		{"122.5w", "36.2n", 36.2, -122.5},
		{" 10E ", "10S", -10, 10},
		{"45.5°E", "12°S", -12, 45.5},
		{"-45.5°", "12°", 12, -45.5},
		{"180", "-90", -90, 180},
		{"0W", "0N", 0, 0},
		{"+15", "+1.5", 1.5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.lon+"_"+tt.lat, func(t *testing.T) {
			c, err := ParseCoordinates(tt.lon, tt.lat)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, c.Latitude())
			assert.Equal(t, tt.wantLon, c.Longitude())
		})
	}
}

func TestParseCoordinates_Invalid(t *testing.T) {
	tests := []struct {
		name, lon, lat string
		axis, reason   string
	}{
		{"not a number", "abc", "36.2", "longitude", "not a decimal number"},
		{"empty latitude", "10", "", "latitude", "empty value"},
		{"wrong hemisphere letter", "36.2N", "10", "longitude", "hemisphere must be E or W"},
		{"latitude with east", "10", "10E", "latitude", "hemisphere must be N or S"},
		{"longitude out of range", "181W", "0", "longitude", ""},
		{"latitude out of range", "0", "90.5", "latitude", ""},
		{"signed with hemisphere", "-10W", "0", "longitude", "signed magnitude with hemisphere letter"},
		{"infinite", "Inf", "0", "longitude", "not a decimal number"},
		{"nan", "0", "NaN", "latitude", "not a decimal number"},
		{"only letter", "W", "0", "longitude", "not a decimal number"},
		{"word ending in hemisphere letter", "10", "abcN", "latitude", "not a decimal number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCoordinates(tt.lon, tt.lat)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIllegalCoordinate)

			var ce *CoordinateError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.axis, ce.Axis)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, ce.Reason)
			}
		})
	}
}
