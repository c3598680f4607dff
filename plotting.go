package pygmt

// Params structs mirror the options of the GMT modules they drive. Each
// exported field carries the GMT flag it stands for in its gmt tag; zero
// values mean "option not given". Free-form string fields take the exact
// text GMT expects after the flag letter.

// BasemapParams are options for the basemap module, which draws map frames,
// axes, scale bars and direction roses.
type BasemapParams struct {
	// Region is the map extent (-R).
	Region Region `gmt:"R"`
	// Projection is the map projection and width, e.g. "M15c" (-J).
	Projection string `gmt:"J"`
	// Frame configures frame and axis attributes, e.g. "af" (-B).
	Frame string `gmt:"B"`
	// MapScale places a map scale bar (-L).
	MapScale string `gmt:"L"`
	// Rose places a directional rose (-T).
	Rose string `gmt:"T"`
	// Timestamp draws the GMT timestamp logo (-U).
	Timestamp bool `gmt:"U"`
}

// CoastParams are options for the coast module, which plots coastlines,
// borders, rivers and paints land or water areas.
type CoastParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	Frame      string `gmt:"B"`
	// AreaThresh skips features smaller than this area in km^2 (-A).
	AreaThresh float64 `gmt:"A"`
	// Resolution picks the coastline dataset: (f)ull, (h)igh,
	// (i)ntermediate, (l)ow or (c)rude (-D).
	Resolution string `gmt:"D"`
	// Land fills dry areas with this color or pattern (-G).
	Land string `gmt:"G"`
	// Water fills wet areas with this color or pattern (-S).
	Water string `gmt:"S"`
	// Shorelines draws shorelines with this pen (-W).
	Shorelines string `gmt:"W"`
	// Rivers draws rivers, e.g. "a/blue" (-I).
	Rivers string `gmt:"I"`
	// Borders draws political boundaries, e.g. "1/thin" (-N).
	Borders string `gmt:"N"`
}

// PlotParams are options for the plot module, which plots symbols, lines
// and polygons from a table of coordinates.
type PlotParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	Frame      string `gmt:"B"`
	// Style is the symbol code and size, e.g. "c0.3c" for circles (-S).
	Style string `gmt:"S"`
	// Color fills symbols or polygons (-G).
	Color string `gmt:"G"`
	// Pen draws outlines and lines (-W).
	Pen string `gmt:"W"`
	// CMap colors symbols through a color palette table (-C).
	CMap string `gmt:"C"`
	// Columns selects and orders input columns, e.g. "0,1,2" (-i).
	Columns string `gmt:"i"`
}

// GrdImageParams are options for the grdimage module, which renders a grid
// as a color image.
type GrdImageParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	Frame      string `gmt:"B"`
	// CMap is the color palette table (-C).
	CMap string `gmt:"C"`
	// Shading applies intensity shading, e.g. "+a45+nt1" (-I).
	Shading string `gmt:"I"`
	// Monochrome converts the image to grayscale (-M).
	Monochrome bool `gmt:"M"`
}

// GrdContourParams are options for the grdcontour module, which contours
// a grid.
type GrdContourParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	Frame      string `gmt:"B"`
	// Interval is the contour interval or a contour file (-C).
	Interval string `gmt:"C"`
	// Annotation controls annotated contours (-A).
	Annotation string `gmt:"A"`
	// Limits restricts contouring to this z range, low/high (-L).
	Limits []float64 `gmt:"L"`
	// Pen sets the contour pen (-W).
	Pen string `gmt:"W"`
}

// LogoParams are options for the logo module, which places the GMT logo.
type LogoParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	// Position places the logo, e.g. "jTR+o0.3c" (-D).
	Position string `gmt:"D"`
	// Box draws a box behind the logo (-F).
	Box string `gmt:"F"`
}

// ImageParams are options for the image module, which places a raster or
// EPS image on the plot.
type ImageParams struct {
	Region     Region `gmt:"R"`
	Projection string `gmt:"J"`
	// Position places the image, e.g. "x0/0+w5c" (-D).
	Position string `gmt:"D"`
	// Box draws a box around the image (-F).
	Box string `gmt:"F"`
	// Monochrome converts the image to grayscale (-M).
	Monochrome bool `gmt:"M"`
}

// Basemap draws the map frame and axes.
func (f *Figure) Basemap(p BasemapParams) error {
	return f.dispatch("basemap", p)
}

// Coast plots coastlines and paints land or water.
func (f *Figure) Coast(p CoastParams) error {
	return f.dispatch("coast", p)
}

// Plot plots symbols, lines or polygons from the given data file.
func (f *Figure) Plot(data string, p PlotParams) error {
	return f.dispatch("plot", p, data)
}

// GrdImage renders the given grid file as a color image. The grid may be a
// local file or a GMT remote file name such as "@earth_relief_01d".
func (f *Figure) GrdImage(grid string, p GrdImageParams) error {
	return f.dispatch("grdimage", p, grid)
}

// GrdContour contours the given grid file.
func (f *Figure) GrdContour(grid string, p GrdContourParams) error {
	return f.dispatch("grdcontour", p, grid)
}

// Logo places the GMT logo on the figure.
func (f *Figure) Logo(p LogoParams) error {
	return f.dispatch("logo", p)
}

// Image places a raster or EPS image file on the figure.
func (f *Figure) Image(imagefile string, p ImageParams) error {
	return f.dispatch("image", p, imagefile)
}
