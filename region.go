package pygmt

import (
	"strconv"
	"strings"
)

// Region is a map extent in the order west, east, south, north, matching
// GMT's -R option. Two extra values extend it to a 3-D volume (zmin, zmax).
//
// Region implements fmt.Stringer, so params structs render it directly:
//
//	pygmt.Region{-90, -70, 0, 20} // "-90/-70/0/20"
type Region []float64

// String renders the region in GMT's slash-separated form.
func (r Region) String() string {
	if len(r) == 0 {
		return ""
	}
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, "/")
}

// GlobalRegion covers the whole earth, -180/180/-90/90.
var GlobalRegion = Region{-180, 180, -90, 90}
