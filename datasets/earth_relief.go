package datasets

import "fmt"

// earthReliefResolutions lists the published earth relief grid resolutions,
// arc-degrees (d), arc-minutes (m) and arc-seconds (s).
var earthReliefResolutions = map[string]bool{
	"01d": true,
	"30m": true,
	"20m": true,
	"15m": true,
	"10m": true,
	"06m": true,
	"05m": true,
	"04m": true,
	"03m": true,
	"02m": true,
	"01m": true,
	"30s": true,
	"15s": true,
}

// InvalidResolutionError is returned for a resolution the earth relief
// dataset is not published at.
type InvalidResolutionError struct {
	Resolution string
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("datasets: earth relief is not available at resolution %q", e.Resolution)
}

// EarthRelief returns the GMT remote-file name of the global earth relief
// grid at the given resolution, e.g. "@earth_relief_01d" for one
// arc-degree. GMT downloads and caches the grid itself when the name is
// first used; the name can be passed wherever a grid file is accepted:
//
//	fig.GrdImage(grid, pygmt.GrdImageParams{CMap: "geo"})
func EarthRelief(resolution string) (string, error) {
	if !earthReliefResolutions[resolution] {
		return "", &InvalidResolutionError{Resolution: resolution}
	}
	return "@earth_relief_" + resolution, nil
}
