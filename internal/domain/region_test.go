package domain

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock locator ---

type mockLocator struct {
	region     feregion.Region
	locateErr  error
	seismic    int
	seismicErr error
	calls      int
}

func (m *mockLocator) Locate(_ feregion.Coordinates) (feregion.Region, error) {
	m.calls++
	return m.region, m.locateErr
}

func (m *mockLocator) SeismicRegionNumber(_ int) (int, error) {
	return m.seismic, m.seismicErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- tests ---

func TestEnrichWithRegion_NilLocator(t *testing.T) {
	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: 36.2, Lon: -122.5}}

	result := EnrichWithRegion(event, nil, discardLogger())

	assert.Empty(t, result.RegionSource)
	assert.Zero(t, result.RegionNumber)
}

func TestEnrichWithRegion_Success(t *testing.T) {
	loc := &mockLocator{
		region:  feregion.Region{Number: 46, Name: "Central California"},
		seismic: 3,
	}
	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: 36.2, Lon: -122.5}}

	result := EnrichWithRegion(event, loc, discardLogger())

	assert.Equal(t, 46, result.RegionNumber)
	assert.Equal(t, "Central California", result.RegionName)
	assert.Equal(t, 3, result.SeismicRegion)
	assert.Equal(t, RegionSourceFE, result.RegionSource)
	assert.Equal(t, 1, loc.calls)
}

func TestEnrichWithRegion_LocateFails(t *testing.T) {
	loc := &mockLocator{locateErr: feregion.ErrIndexOutOfRange}
	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: 1, Lon: 1}}

	result := EnrichWithRegion(event, loc, discardLogger())

	assert.Equal(t, RegionSourceFailed, result.RegionSource)
	assert.Zero(t, result.RegionNumber)
	assert.Empty(t, result.RegionName)
}

func TestEnrichWithRegion_SeismicFails(t *testing.T) {
	loc := &mockLocator{
		region:     feregion.Region{Number: 1, Name: "Somewhere"},
		seismicErr: errors.New("boom"),
	}

	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: 1, Lon: 1}}

	result := EnrichWithRegion(event, loc, discardLogger())

	assert.Equal(t, RegionSourceFailed, result.RegionSource)
	assert.Zero(t, result.RegionNumber)
	assert.Equal(t, 1, loc.calls)
}

func TestEnrichWithRegion_NoCoordinates(t *testing.T) {
	loc := &mockLocator{}
	event := QuakeEvent{ID: testEventID, CoordinateError: "latitude out of range"}

	result := EnrichWithRegion(event, loc, discardLogger())

	assert.Equal(t, RegionSourceFailed, result.RegionSource)
	assert.Zero(t, loc.calls)
}

func TestEnrichWithRegion_InvalidGeo(t *testing.T) {
	loc := &mockLocator{}
	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: 120, Lon: 0}}

	result := EnrichWithRegion(event, loc, discardLogger())

	assert.Equal(t, RegionSourceFailed, result.RegionSource)
	assert.Zero(t, loc.calls)
}

func TestEnrichWithRegion_Classifier(t *testing.T) {
	idx, err := feregion.LoadDir("../feregion/testdata/synthetic")
	require.NoError(t, err)
	classifier := feregion.NewClassifier(idx, discardLogger())

	event := QuakeEvent{ID: testEventID, Geo: &Geo{Lat: -70, Lon: -170}}
	result := EnrichWithRegion(event, classifier, discardLogger())

	assert.Equal(t, 15, result.RegionNumber)
	assert.Equal(t, "Southern dateline", result.RegionName)
	assert.Equal(t, 7, result.SeismicRegion)
	assert.Equal(t, RegionSourceFE, result.RegionSource)
}
