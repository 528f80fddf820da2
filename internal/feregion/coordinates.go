package feregion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// Coordinates is a validated point in decimal degrees. The zero value is the
// origin (0, 0), which is valid.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates validates latitude in [-90, 90] and longitude in [-180, 180].
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if err := checkRange("latitude", formatFloat(lat), lat, maxLatitude); err != nil {
		return Coordinates{}, err
	}
	if err := checkRange("longitude", formatFloat(lon), lon, maxLongitude); err != nil {
		return Coordinates{}, err
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

// Latitude returns the latitude in decimal degrees, negative south.
func (c Coordinates) Latitude() float64 { return c.lat }

// Longitude returns the longitude in decimal degrees, negative west.
func (c Coordinates) Longitude() float64 { return c.lon }

// Quadrant returns the dataset quadrant the point falls in.
func (c Coordinates) Quadrant() Quadrant { return QuadrantOf(c.lat, c.lon) }

func (c Coordinates) String() string {
	return fmt.Sprintf("%s %s", formatHemisphere(c.lat, 'N', 'S'), formatHemisphere(c.lon, 'E', 'W'))
}

// ParseCoordinates parses a longitude and a latitude, in that order, as typed
// on the command line. Each value is either a signed decimal ("-122.5") or a
// non-negative magnitude followed by a hemisphere letter ("122.5W", "36.2n").
// A degree sign before the letter is tolerated.
func ParseCoordinates(lonText, latText string) (Coordinates, error) {
	lon, err := parseAxis("longitude", lonText, 'E', 'W', maxLongitude)
	if err != nil {
		return Coordinates{}, err
	}
	lat, err := parseAxis("latitude", latText, 'N', 'S', maxLatitude)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

func parseAxis(axis, text string, positive, negative byte, limit float64) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &CoordinateError{Axis: axis, Input: text, Reason: "empty value"}
	}

	sign := 1.0
	hemisphere := false
	switch last := upper(s[len(s)-1]); {
	case last == positive:
		hemisphere = true
	case last == negative:
		hemisphere = true
		sign = -1
	case isLetter(last):
		// Only blame the letter when the rest reads as a number.
		if _, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s[:len(s)-1]), "°"), 64); err != nil {
			return 0, &CoordinateError{Axis: axis, Input: text, Reason: "not a decimal number"}
		}
		return 0, &CoordinateError{Axis: axis, Input: text,
			Reason: fmt.Sprintf("hemisphere must be %c or %c", positive, negative)}
	}
	if hemisphere {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	s = strings.TrimSuffix(s, "°")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CoordinateError{Axis: axis, Input: text, Reason: "not a decimal number"}
	}
	if hemisphere {
		if v < 0 || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
			return 0, &CoordinateError{Axis: axis, Input: text, Reason: "signed magnitude with hemisphere letter"}
		}
		v *= sign
	}
	if err := checkRange(axis, text, v, limit); err != nil {
		return 0, err
	}
	return v, nil
}

func checkRange(axis, input string, v, limit float64) error {
	if math.IsNaN(v) || v < -limit || v > limit {
		return &CoordinateError{
			Axis:   axis,
			Input:  input,
			Reason: fmt.Sprintf("outside [%g, %g]", -limit, limit),
		}
	}
	return nil
}

func formatHemisphere(v float64, positive, negative byte) string {
	letter := positive
	if v < 0 {
		letter = negative
	}
	return formatFloat(math.Abs(v)) + string(letter)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }
