package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/feregion-service/internal/feregion"
)

// bulletinTimeLayout is the GEOFON listing format, always UTC.
const bulletinTimeLayout = "2006-01-02 15:04:05"

// ParseRawEvent deserializes a RawEvent's value into a QuakeEvent. Only
// malformed JSON is an error. Illegal coordinates leave Geo nil and record
// the reason in CoordinateError, so the event still reaches the sink and
// region enrichment marks it failed.
func ParseRawEvent(raw RawEvent) (QuakeEvent, error) {
	var rec RawQuakeRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return QuakeEvent{}, fmt.Errorf("parse raw event: %w", err)
	}

	event := QuakeEvent{
		Time:          parseEventTime(raw.Timestamp, rec.Time),
		Magnitude:     parseFloatOrZero(rec.Magnitude),
		MagnitudeType: strings.TrimSpace(rec.MagnitudeType),
		DepthKm:       parseFloatOrZero(rec.Depth),
		Status:        strings.ToUpper(strings.TrimSpace(rec.Status)),

		RawPayload: raw.Value,
	}

	coords, err := feregion.ParseCoordinates(rec.Longitude, rec.Latitude)
	if err != nil {
		event.CoordinateError = err.Error()
	} else {
		event.Geo = &Geo{Lat: coords.Latitude(), Lon: coords.Longitude()}
	}

	event.ID = strings.TrimSpace(rec.ID)
	if event.ID == "" {
		event.ID = generateID(event.Time, event.Geo, event.Magnitude)
	}
	return event, nil
}

// EnrichQuakeEvent derives the magnitude class and stamps the processing time.
func EnrichQuakeEvent(event QuakeEvent) QuakeEvent {
	event.MagnitudeClass = deriveMagnitudeClass(event.Magnitude)
	event.ProcessedAt = clock.Now()
	return event
}

// SerializeEvent encodes an event for the sink topic, keyed by event ID.
func SerializeEvent(event QuakeEvent) (OutputEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize quake event: %w", err)
	}
	headers := map[string]string{
		"region_source": event.RegionSource,
		"processed_at":  event.ProcessedAt.Format(time.RFC3339),
	}
	if event.RegionNumber > 0 {
		headers["region_number"] = strconv.Itoa(event.RegionNumber)
	}
	return OutputEvent{
		Key:     []byte(event.ID),
		Value:   data,
		Headers: headers,
	}, nil
}

// parseFloatOrZero parses a string as float64, returning 0 on failure or "UNK".
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "UNK") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseEventTime accepts the bulletin layout or RFC 3339, falling back to the
// message timestamp.
func parseEventTime(fallback time.Time, s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if t, err := time.ParseInLocation(bulletinTimeLayout, s, time.UTC); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return fallback
}

// deriveMagnitudeClass maps a magnitude to its descriptive class. Returns ""
// for unknown (zero or negative) magnitudes.
func deriveMagnitudeClass(m float64) string {
	switch {
	case m <= 0:
		return ""
	case m < 2:
		return "micro"
	case m < 4:
		return "minor"
	case m < 5:
		return "light"
	case m < 6:
		return "moderate"
	case m < 7:
		return "strong"
	case m < 8:
		return "major"
	default:
		return "great"
	}
}

// generateID produces a deterministic ID from the event's key fields, so
// reprocessing the same bulletin row yields the same key. A nil geo hashes
// as the origin.
func generateID(t time.Time, geo *Geo, magnitude float64) string {
	var lat, lon float64
	if geo != nil {
		lat, lon = geo.Lat, geo.Lon
	}
	input := fmt.Sprintf("%s|%.4f|%.4f|%g", t.UTC().Format(time.RFC3339), lat, lon, magnitude)
	hash := sha256.Sum256([]byte(input))
	return "eq-" + hex.EncodeToString(hash[:8])
}
