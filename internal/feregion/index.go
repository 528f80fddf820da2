package feregion

import "fmt"

// Tiers is the number of integer latitudes per quadrant, 0 through 90.
const Tiers = 91

// QuadrantTable is the raw per-quadrant data as handed over by a loader.
type QuadrantTable struct {
	LonCounts []int // entries per tier, indexed by integer latitude
	Lons      []int // ascending longitude breakpoints, tiers concatenated
	Fenums    []int // region number effective from the matching breakpoint
}

type regionTable struct {
	latBegin [Tiers]int
	lonCount [Tiers]int
	lons     []int
	fenums   []int
}

// Index holds the parsed F-E tables. It is immutable once built and may be
// shared by any number of goroutines.
type Index struct {
	tables  [len(Quadrants)]regionTable
	names   []string
	seismic []int
}

// NewIndex checks the structural invariants of the raw tables and builds an
// Index from them. Violations are reported as *DatasetFormatError.
func NewIndex(quads [len(Quadrants)]QuadrantTable, names []string, seismic []int) (*Index, error) {
	if len(names) == 0 {
		return nil, formatErr(namesFile, 0, "no region names")
	}
	if len(seismic) != len(names) {
		return nil, formatErr(seismicFile, 0, "%d seismic regions for %d geographical regions", len(seismic), len(names))
	}

	idx := &Index{
		names:   append([]string(nil), names...),
		seismic: append([]int(nil), seismic...),
	}
	for _, q := range Quadrants {
		t, err := buildTable(q, quads[q], len(names))
		if err != nil {
			return nil, err
		}
		idx.tables[q] = t
	}
	return idx, nil
}

func buildTable(q Quadrant, raw QuadrantTable, regionCount int) (regionTable, error) {
	res := sectFile(q)
	var t regionTable

	if len(raw.LonCounts) != Tiers {
		return t, formatErr(indexFile, 0, "%s: %d tier counts, want %d", q.Code(), len(raw.LonCounts), Tiers)
	}
	if len(raw.Lons) != len(raw.Fenums) {
		return t, formatErr(res, 0, "%d longitudes but %d region numbers", len(raw.Lons), len(raw.Fenums))
	}

	begin := 0
	for lat, n := range raw.LonCounts {
		if n < 1 {
			return t, formatErr(indexFile, 0, "%s: tier %d has %d entries", q.Code(), lat, n)
		}
		t.latBegin[lat] = begin
		t.lonCount[lat] = n
		begin += n
	}
	if begin != len(raw.Lons) {
		return t, formatErr(res, 0, "tier counts total %d but file holds %d entries", begin, len(raw.Lons))
	}

	for lat := range Tiers {
		tier := raw.Lons[t.latBegin[lat] : t.latBegin[lat]+t.lonCount[lat]]
		if tier[0] != 0 {
			return t, formatErr(res, 0, "tier %d starts at longitude %d, want 0", lat, tier[0])
		}
		for i := 1; i < len(tier); i++ {
			if tier[i] <= tier[i-1] || tier[i] > 180 {
				return t, formatErr(res, 0, "tier %d: breakpoint %d after %d", lat, tier[i], tier[i-1])
			}
		}
	}
	for i, fenum := range raw.Fenums {
		if fenum < 1 || fenum > regionCount {
			return t, formatErr(res, 0, "entry %d: region number %d not in [1, %d]", i, fenum, regionCount)
		}
	}

	t.lons = append([]int(nil), raw.Lons...)
	t.fenums = append([]int(nil), raw.Fenums...)
	return t, nil
}

// RegionCount returns the number of geographical regions.
func (x *Index) RegionCount() int { return len(x.names) }

// Entries returns the number of breakpoints stored for a quadrant.
func (x *Index) Entries(q Quadrant) int { return len(x.tables[q].lons) }

// Tier returns the breakpoints and region numbers for one integer latitude of
// a quadrant. The returned slices alias the index and must not be modified.
func (x *Index) Tier(q Quadrant, lat int) (lons, fenums []int, err error) {
	if lat < 0 || lat >= Tiers {
		return nil, nil, fmt.Errorf("%w: latitude tier %d", ErrIndexOutOfRange, lat)
	}
	t := &x.tables[q]
	beg, end := t.latBegin[lat], t.latBegin[lat]+t.lonCount[lat]
	return t.lons[beg:end:end], t.fenums[beg:end:end], nil
}

// tierOf returns the smallest latitude whose tier begins after flat index i,
// which is the northern edge of the tier containing i. ok is false for the
// last tier.
func (t *regionTable) tierOf(i int) (int, bool) {
	for j := range Tiers {
		if t.latBegin[j] > i {
			return j, true
		}
	}
	return 0, false
}

func (x *Index) name(fenum int) (string, error) {
	if fenum < 1 || fenum > len(x.names) {
		return "", regionRangeErr(fenum, len(x.names))
	}
	return x.names[fenum-1], nil
}

func (x *Index) seismicRegion(fenum int) (int, error) {
	if fenum < 1 || fenum > len(x.seismic) {
		return 0, regionRangeErr(fenum, len(x.seismic))
	}
	return x.seismic[fenum-1], nil
}
