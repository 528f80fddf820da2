package feregion

import (
	"log/slog"
	"time"
)

// ReverseMapper reconstructs the footprint of a region from the Index.
type ReverseMapper struct {
	idx    *Index
	logger *slog.Logger
}

// NewReverseMapper creates a ReverseMapper sharing idx with any Classifier.
func NewReverseMapper(idx *Index, logger *slog.Logger) *ReverseMapper {
	return &ReverseMapper{idx: idx, logger: logger}
}

// LatitudeLongitudeMap returns every latitude band and longitude range
// assigned to fenum. Each call scans the whole index. A number that never
// occurs, including one outside the valid range, yields an empty Extent.
func (m *ReverseMapper) LatitudeLongitudeMap(fenum int) Extent {
	start := time.Now()
	extent := make(Extent)

	for _, q := range Quadrants {
		t := &m.idx.tables[q]
		for i, f := range t.fenums {
			if f != fenum {
				continue
			}
			j, ok := t.tierOf(i)
			if !ok {
				continue
			}
			extent.add(j*q.latSign(), LongitudeRange{
				From: t.lons[i] * q.lonSign(),
				To:   t.upperBound(i) * q.lonSign(),
			})
		}
	}

	m.logger.Debug("reverse lookup",
		"fenum", fenum,
		"bands", len(extent),
		"duration", time.Since(start),
	)
	return extent
}

// upperBound returns the breakpoint following flat index i. A following 0
// starts the next tier, so the range runs to 180. The last entry has no
// successor and maps onto itself.
func (t *regionTable) upperBound(i int) int {
	if i+1 >= len(t.lons) {
		return t.lons[i]
	}
	if next := t.lons[i+1]; next != 0 {
		return next
	}
	return 180
}
