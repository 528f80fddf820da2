package feregion

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

const wgs84 = 4326

// MultiPolygon renders the extent as one rectangle per band and range,
// suitable for GeoJSON output. Bands are emitted south to north.
func (e Extent) MultiPolygon() (*geom.MultiPolygon, error) {
	mp := geom.NewMultiPolygon(geom.XY).SetSRID(wgs84)
	for _, band := range e.Bands() {
		south, north := bandBounds(band)
		for _, r := range e[band] {
			west := float64(min(r.From, r.To))
			east := float64(max(r.From, r.To))
			poly := geom.NewPolygonFlat(geom.XY, []float64{
				west, south,
				east, south,
				east, north,
				west, north,
				west, south,
			}, []int{10})
			if err := mp.Push(poly); err != nil {
				return nil, fmt.Errorf("band %d range %s: %w", band, r, err)
			}
		}
	}
	return mp, nil
}
