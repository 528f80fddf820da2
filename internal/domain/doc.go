// Package domain models earthquake bulletin events and their Flinn-Engdahl
// region enrichment.
//
// # Data Source
//
// Events originate from seismological bulletins such as the GEOFON program's
// recent earthquake listing. An upstream collector scrapes the listing and
// publishes each row as flat JSON to the Kafka source topic:
//
//	{"id":"gfz2024hxyz","time":"2024-04-26 15:10:12","magnitude":"5.4",
//	 "magnitude_type":"Mw","latitude":"36.20°N","longitude":"122.50°W",
//	 "depth":"10","status":"M"}
//
// # Bulletin Conventions
//
// Coordinates:
//
//	Either signed decimal degrees ("-122.5") or a magnitude with a hemisphere
//	letter ("122.50°W"). Parsing is delegated to feregion.ParseCoordinates, so
//	the pipeline accepts exactly what the command line accepts.
//
// Time format:
//
//	"YYYY-MM-DD hh:mm:ss" in UTC, or RFC 3339. When the field is missing or
//	unparseable the Kafka message timestamp is used instead.
//
// Magnitude:
//
//	Decimal value plus an optional scale ("Mw", "mb", "ML"). Empty or "UNK"
//	means unknown and is stored as zero. The magnitude class uses the usual
//	descriptive scale:
//
//	  <2 micro | <4 minor | <5 light | <6 moderate | <7 strong | <8 major | >=8 great
//
// Status:
//
//	"A" automatic, "M" manually revised, "C" confirmed. Passed through as is.
//
// # Region Enrichment
//
// Each event is located in its F-E geographical region and tagged with the
// region number, name and seismic region. Neither illegal coordinates nor
// lookup failures drop the event; RegionSource records whether enrichment
// succeeded ("fe1995") or not ("failed"), and CoordinateError carries the
// parse failure when Geo is nil. See [EnrichWithRegion].
//
// # ID Generation
//
// Events without a bulletin ID get a deterministic SHA-256 based ID derived
// from time, position and magnitude, so replays produce the same key
// downstream. See [generateID].
package domain
