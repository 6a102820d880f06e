package molecule

// Canvas is the 2D drawing context the renderer paints on. Colours are CSS
// colour strings so browser and raster backends share the same values.
type Canvas interface {
	Width() int
	Height() int
	// SetSize resizes the backing pixel buffer. Content is discarded.
	SetSize(width, height int)

	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)

	SetStrokeColor(color string)
	SetLineWidth(width float64)
	Stroke()

	SetFillColor(color string)
	SetFillGradient(g RadialGradient)
	Fill()
}

// RadialGradient blends between the circle (X0, Y0, R0) and the circle
// (X1, Y1, R1), matching CanvasRenderingContext2D.createRadialGradient.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// ColorStop is a gradient colour at Offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  string
}

// Drawing styles.
const (
	BondColor      = "#64748b"
	BondWidth      = 2.0
	HighlightColor = "rgba(255, 255, 255, 0.4)"
	GradientStart  = "white"

	// Highlight offset and size relative to the atom radius
	HighlightRatio = 0.3
)
