package plot

import "courtview/internal/geom"

// Series is a scatter overlay.
type Series struct {
	Label  string
	Points [][2]float64
	Color  string
	Marker rune
}

// Axes is a drawing surface that records patches and scatter series in
// insertion order. Renderers read it; nothing is drawn until then.
type Axes struct {
	patches []Patch
	series  []Series

	xlim, ylim       [2]float64
	hasXLim, hasYLim bool
	axisOff          bool
}

func NewAxes() *Axes { return &Axes{} }

// AddPatch appends p to the surface.
func (a *Axes) AddPatch(p Patch) {
	a.patches = append(a.patches, p)
}

// Patches returns a copy of the recorded patches.
func (a *Axes) Patches() []Patch {
	out := make([]Patch, len(a.patches))
	copy(out, a.patches)
	return out
}

// DefaultMarker is the glyph Scatter draws points with.
const DefaultMarker = '●'

// Scatter appends a series of points drawn with the default marker.
func (a *Axes) Scatter(label string, pts [][2]float64, color string) {
	a.AddSeries(Series{Label: label, Points: pts, Color: color, Marker: DefaultMarker})
}

// AddSeries appends s; a zero Marker becomes DefaultMarker.
func (a *Axes) AddSeries(s Series) {
	if s.Marker == 0 {
		s.Marker = DefaultMarker
	}
	a.series = append(a.series, s)
}

func (a *Axes) Series() []Series {
	out := make([]Series, len(a.series))
	copy(out, a.series)
	return out
}

func (a *Axes) SetXLim(lo, hi float64) {
	a.xlim, a.hasXLim = [2]float64{lo, hi}, true
}

func (a *Axes) SetYLim(lo, hi float64) {
	a.ylim, a.hasYLim = [2]float64{lo, hi}, true
}

func (a *Axes) SetAxisOff()        { a.axisOff = true }
func (a *Axes) AxisVisible() bool { return !a.axisOff }

// DataBounds is the union of all patch and series extents.
func (a *Axes) DataBounds() (geom.BBox, bool) {
	var bb geom.Builder
	for _, p := range a.patches {
		bb.AddBox(p.Bounds())
	}
	for _, s := range a.series {
		for _, pt := range s.Points {
			bb.Add(pt)
		}
	}
	return bb.BBox(), !bb.Empty()
}

// Limits returns the view box: explicit limits where set, data bounds
// elsewhere.
func (a *Axes) Limits() geom.BBox {
	b, _ := a.DataBounds()
	if a.hasXLim {
		b.MinX, b.MaxX = a.xlim[0], a.xlim[1]
	}
	if a.hasYLim {
		b.MinY, b.MaxY = a.ylim[0], a.ylim[1]
	}
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b
}

var current *Axes

// Current returns the process-wide axes, creating it on first use.
// It is not safe for concurrent use.
func Current() *Axes {
	if current == nil {
		current = NewAxes()
	}
	return current
}

// NewFigure replaces the current axes with a fresh one and returns it.
func NewFigure() *Axes {
	current = NewAxes()
	return current
}
