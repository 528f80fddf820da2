package feregion

import (
	"fmt"
	"slices"
)

// Region is a Flinn-Engdahl geographical region.
type Region struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func (r Region) String() string { return fmt.Sprintf("%d %s", r.Number, r.Name) }

// LongitudeRange spans From to To in signed degrees, negative west. For
// western ranges From is closer to the prime meridian than To.
type LongitudeRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether lon lies within the range, endpoints included.
func (r LongitudeRange) Contains(lon float64) bool {
	lo, hi := float64(min(r.From, r.To)), float64(max(r.From, r.To))
	return lon >= lo && lon <= hi
}

func (r LongitudeRange) String() string { return fmt.Sprintf("[%d, %d]", r.From, r.To) }

// Extent maps signed latitude bands to the longitude ranges a region covers
// within them. Each band's ranges are unique and kept in discovery order.
type Extent map[int][]LongitudeRange

func (e Extent) add(band int, r LongitudeRange) {
	if slices.Contains(e[band], r) {
		return
	}
	e[band] = append(e[band], r)
}

// Bands returns the band keys in ascending order.
func (e Extent) Bands() []int {
	bands := make([]int, 0, len(e))
	for b := range e {
		bands = append(bands, b)
	}
	slices.Sort(bands)
	return bands
}

// Contains reports whether the point falls in one of the extent's cells.
func (e Extent) Contains(lat, lon float64) bool {
	for _, r := range e[BandOf(lat)] {
		if r.Contains(lon) {
			return true
		}
	}
	return false
}

// BandOf returns the signed band key for a latitude: +1 for [0, 1), -1 for
// (-1, 0) and so on.
func BandOf(lat float64) int {
	b := int(absFloor(lat)) + 1
	if lat < 0 {
		return -b
	}
	return b
}

// bandBounds returns the southern and northern latitude of a band.
func bandBounds(band int) (float64, float64) {
	if band > 0 {
		return float64(band - 1), float64(band)
	}
	return float64(band), float64(band + 1)
}
