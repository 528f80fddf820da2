// Package feregion implements the 1995 revision of the Flinn-Engdahl (F-E)
// seismic and geographical regionalization scheme.
//
// # Dataset
//
// The scheme partitions the globe into 757 numbered geographical regions,
// grouped into 50 coarser seismic regions. The USGS distribution
// (ftp://hazards.cr.usgs.gov/feregion/fe_1995/) ships the partition as a set of
// ASCII files, which [Load] reads from any [fs.FS]:
//
//	names.asc      one region name per line, line i = region i
//	quadsidx.asc   4 x 91 integers: longitude entries per integer latitude,
//	               quadrants in order ne, nw, se, sw
//	nesect.asc     "lon fenum" pairs for the NE quadrant, tiers concatenated
//	nwsect.asc     ... NW quadrant
//	sesect.asc     ... SE quadrant
//	swsect.asc     ... SW quadrant
//	seisrdef.asc   seismic region number for each geographical region
//
// # Lookup
//
// Latitude and longitude are reduced to the integer parts of their absolute
// values. The signs select a quadrant; the integer latitude selects a tier of
// ascending longitude breakpoints within that quadrant. The region is the one
// attached to the last breakpoint not greater than the integer longitude:
//
//	tier 36 of NW:  0 -> 7, 90 -> 8
//	122.5W 36.2N -> lt=36, ln=122 -> breakpoints <= 122: [0 90] -> region 8
//
// Zero latitude or longitude counts as non-negative, so the origin is NE.
//
// # Reverse mapping
//
// [ReverseMapper] walks every quadrant looking for a region number and turns
// each matching breakpoint into a longitude range keyed by a signed latitude
// band. Band +j holds the tier starting at latitude j-1 in the northern
// hemisphere; band -j is its southern mirror. Ranges are not merged across
// tiers, so a region's footprint is a stack of one-degree rectangles.
//
// # Invariants
//
// [Load] rejects datasets where a tier is empty, a tier does not start at
// longitude 0, breakpoints are not strictly ascending, or a region number is
// out of range. A loaded [Index] is immutable and safe for concurrent use.
package feregion
