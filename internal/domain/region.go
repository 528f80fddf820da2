package domain

import (
	"log/slog"

	"github.com/couchcryptid/feregion-service/internal/feregion"
)

// RegionSourceFE marks events whose region came from the F-E 1995 tables.
const RegionSourceFE = "fe1995"

// RegionLocator resolves points to Flinn-Engdahl regions.
type RegionLocator interface {
	Locate(coords feregion.Coordinates) (feregion.Region, error)
	SeismicRegionNumber(fenum int) (int, error)
}

// RegionSourceFailed marks events that could not be placed in a region.
const RegionSourceFailed = "failed"

// EnrichWithRegion tags an event with its F-E geographical and seismic
// region. If locator is nil the event is returned unchanged. An event with no
// usable coordinates, or whose lookup fails, keeps flowing with RegionSource
// set to "failed".
func EnrichWithRegion(event QuakeEvent, locator RegionLocator, logger *slog.Logger) QuakeEvent {
	if locator == nil {
		return event
	}

	if event.Geo == nil {
		logger.Warn("region lookup skipped",
			"event_id", event.ID,
			"error", event.CoordinateError,
		)
		event.RegionSource = RegionSourceFailed
		return event
	}

	region, seismic, err := locate(*event.Geo, locator)
	if err == nil {
		event.RegionNumber = region.Number
		event.RegionName = region.Name
		event.SeismicRegion = seismic
		event.RegionSource = RegionSourceFE
		return event
	}

	logger.Warn("region lookup failed",
		"event_id", event.ID,
		"lat", event.Geo.Lat,
		"lon", event.Geo.Lon,
		"error", err,
	)
	event.RegionSource = RegionSourceFailed
	return event
}

func locate(geo Geo, locator RegionLocator) (feregion.Region, int, error) {
	coords, err := feregion.NewCoordinates(geo.Lat, geo.Lon)
	if err != nil {
		return feregion.Region{}, 0, err
	}
	region, err := locator.Locate(coords)
	if err != nil {
		return feregion.Region{}, 0, err
	}
	seismic, err := locator.SeismicRegionNumber(region.Number)
	if err != nil {
		return feregion.Region{}, 0, err
	}
	return region, seismic, nil
}
