package feregion

import (
	"fmt"
	"strings"
)

// Quadrant is one of the four hemisphere sign combinations the dataset is
// split into.
type Quadrant uint8

const (
	NE Quadrant = iota
	NW
	SE
	SW
)

// Quadrants lists every quadrant in dataset order.
var Quadrants = [...]Quadrant{NE, NW, SE, SW}

var quadrantCodes = [...]string{NE: "ne", NW: "nw", SE: "se", SW: "sw"}

// QuadrantOf maps a sign pair to a quadrant. Zero counts as non-negative.
func QuadrantOf(lat, lon float64) Quadrant {
	switch {
	case lat >= 0 && lon >= 0:
		return NE
	case lat >= 0:
		return NW
	case lon >= 0:
		return SE
	default:
		return SW
	}
}

// ParseQuadrant accepts a two-letter code such as "ne" or "SW".
func ParseQuadrant(code string) (Quadrant, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for i, qc := range quadrantCodes {
		if c == qc {
			return Quadrant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quadrant %q", code)
}

// Code returns the lowercase two-letter code used in dataset file names.
func (q Quadrant) Code() string {
	if int(q) < len(quadrantCodes) {
		return quadrantCodes[q]
	}
	return fmt.Sprintf("quadrant(%d)", q)
}

func (q Quadrant) String() string { return strings.ToUpper(q.Code()) }

// North reports whether the quadrant lies in the northern hemisphere.
func (q Quadrant) North() bool { return q == NE || q == NW }

// East reports whether the quadrant lies in the eastern hemisphere.
func (q Quadrant) East() bool { return q == NE || q == SE }

func (q Quadrant) latSign() int {
	if q.North() {
		return 1
	}
	return -1
}

func (q Quadrant) lonSign() int {
	if q.East() {
		return 1
	}
	return -1
}
