package domain

import (
	"context"
	"time"
)

// RawQuakeRecord represents the flat JSON structure produced by the collector.
// All values are strings as scraped from the bulletin table.
type RawQuakeRecord struct {
	ID            string `json:"id"`
	Time          string `json:"time"`
	Magnitude     string `json:"magnitude"`
	MagnitudeType string `json:"magnitude_type"`
	Latitude      string `json:"latitude"`  // "36.20°N" or "36.2"
	Longitude     string `json:"longitude"` // "122.50°W" or "-122.5"
	Depth         string `json:"depth"`     // kilometres
	Status        string `json:"status"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// QuakeEvent is the domain-rich representation after parsing.
type QuakeEvent struct {
	ID             string    `json:"id"`
	Time           time.Time `json:"time"`
	Magnitude      float64   `json:"magnitude"`
	MagnitudeType  string    `json:"magnitude_type,omitempty"`
	MagnitudeClass string    `json:"magnitude_class,omitempty"`
	DepthKm        float64   `json:"depth_km"`
	Geo            *Geo      `json:"geo,omitempty"` // nil when the coordinates were illegal
	Status         string    `json:"status,omitempty"`

	// CoordinateError explains why Geo is nil.
	CoordinateError string `json:"coordinate_error,omitempty"`

	// Region enrichment fields.
	RegionNumber  int    `json:"region_number,omitempty"`
	RegionName    string `json:"region_name,omitempty"`
	SeismicRegion int    `json:"seismic_region,omitempty"`
	RegionSource  string `json:"region_source,omitempty"` // "fe1995", "failed"

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
