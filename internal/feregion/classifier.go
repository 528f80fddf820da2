package feregion

import (
	"fmt"
	"log/slog"
	"math"
)

// Classifier answers forward F-E lookups against a shared Index.
type Classifier struct {
	idx    *Index
	logger *slog.Logger
}

// NewClassifier creates a Classifier. Build the Index once and reuse it;
// loading costs far more than a lookup.
func NewClassifier(idx *Index, logger *slog.Logger) *Classifier {
	return &Classifier{idx: idx, logger: logger}
}

// RegionCount returns the number of geographical regions in the dataset.
func (c *Classifier) RegionCount() int { return c.idx.RegionCount() }

// RegionNumber returns the geographical region number for a point.
func (c *Classifier) RegionNumber(coords Coordinates) (int, error) {
	lt := int(absFloor(coords.Latitude()))
	ln := int(absFloor(coords.Longitude()))
	q := coords.Quadrant()

	lons, fenums, err := c.idx.Tier(q, lt)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, lon := range lons {
		if lon > ln {
			break
		}
		n++
	}

	i := n - 1
	if i < 0 || i >= len(fenums) {
		return 0, fmt.Errorf("%w: no breakpoint at or below longitude %d in tier %s/%d", ErrIndexOutOfRange, ln, q, lt)
	}

	c.logger.Debug("region lookup",
		"quadrant", q.String(),
		"lt", lt,
		"ln", ln,
		"tier_size", len(lons),
		"index", i,
		"fenum", fenums[i],
	)
	return fenums[i], nil
}

// Region returns the geographical region with the given number.
func (c *Classifier) Region(fenum int) (Region, error) {
	name, err := c.idx.name(fenum)
	if err != nil {
		return Region{}, err
	}
	return Region{Number: fenum, Name: name}, nil
}

// Locate resolves a point to its geographical region.
func (c *Classifier) Locate(coords Coordinates) (Region, error) {
	fenum, err := c.RegionNumber(coords)
	if err != nil {
		return Region{}, err
	}
	return c.Region(fenum)
}

// SeismicRegionNumber returns the seismic region containing the given
// geographical region.
func (c *Classifier) SeismicRegionNumber(fenum int) (int, error) {
	return c.idx.seismicRegion(fenum)
}

// AllRegions returns every geographical region ordered by number, so element
// i holds region i+1.
func (c *Classifier) AllRegions() []Region {
	regions := make([]Region, c.idx.RegionCount())
	for i, name := range c.idx.names {
		regions[i] = Region{Number: i + 1, Name: name}
	}
	return regions
}

func absFloor(v float64) float64 { return math.Floor(math.Abs(v)) }
