// Package pygmt provides Go bindings for the Generic Mapping Tools (GMT).
//
// # Overview
//
// pygmt drives the GMT C library (libgmt) to draw publication-quality maps
// and figures. The library is loaded at runtime, so no cgo and no compile-time
// GMT dependency: install GMT through your package manager and pygmt finds it.
// Rasterization of the PostScript output is handled by GMT's psconvert module,
// which shells out to GhostScript.
//
// # Quick Start
//
//	import "github.com/Chaostremor/pygmt"
//
//	// Create a figure and plot a coastline map.
//	fig := pygmt.NewFigure()
//	err := fig.Coast(pygmt.CoastParams{
//	    Region:     pygmt.Region{-90, -70, 0, 20},
//	    Projection: "M15c",
//	    Land:       "chocolate",
//	    Frame:      "af",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Save to PNG (format chosen by extension).
//	err = fig.Savefig("coast.png")
//
// # Architecture
//
// The module is organized into:
//   - Public API: Figure, params structs, Savefig, Show, Config
//   - clib: shared-library loading, API sessions, module dispatch
//   - datasets: cached downloads of GMT sample data
//   - figtest: image comparison helpers for figure tests
//
// Each plotting method opens a fresh GMT API session, dispatches one module
// call, and destroys the session. All figure state (current plot, history)
// lives inside libgmt, keyed by the figure's unique name.
//
// # Requirements
//
// GMT 6 must be installed and locatable. pygmt searches the usual shared
// library names per platform; set GMT_LIBRARY_PATH to the directory holding
// libgmt if it lives somewhere unusual. GhostScript is required for raster
// output (PNG, JPEG, BMP, TIFF).
package pygmt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
