package feregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantOf(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     Quadrant
	}{
		{10, 10, NE},
		{10, -10, NW},
		{-10, 10, SE},
		{-10, -10, SW},
		{0, 0, NE},
		{0, -0.5, NW},
		{-0.5, 0, SE},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuadrantOf(tt.lat, tt.lon), "(%v, %v)", tt.lat, tt.lon)
	}
}

func TestParseQuadrant(t *testing.T) {
	for _, q := range Quadrants {
		got, err := ParseQuadrant(q.Code())
		require.NoError(t, err)
		assert.Equal(t, q, got)
	}

	got, err := ParseQuadrant(" SW ")
	require.NoError(t, err)
	assert.Equal(t, SW, got)

	_, err = ParseQuadrant("xx")
	assert.Error(t, err)
}

func TestQuadrantHemispheres(t *testing.T) {
	assert.True(t, NE.North())
	assert.True(t, NE.East())
	assert.False(t, NW.East())
	assert.False(t, SE.North())
	assert.Equal(t, -1, SW.latSign())
	assert.Equal(t, -1, SW.lonSign())
	assert.Equal(t, "NW", NW.String())
	assert.Equal(t, "quadrant(7)", Quadrant(7).Code())
}
