// Package plot is a small plotting layer: patch shapes, an Axes surface that
// records them alongside scatter overlays, and braille and SVG back ends.
package plot

import (
	"courtview/internal/geom"
)

// Kind tags the variant held by a Patch.
type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindArc:
		return "arc"
	}
	return "unknown"
}

// Style is the stroke and fill of a patch.
type Style struct {
	Color     string
	LineWidth float64
	Fill      bool
	Dashed    bool
}

// Patch is a single shape added to an Axes.
//
// Circles use Center and Radius. Rectangles use Anchor with a signed Width
// and Height, exactly as given. Arcs use Center, Width and Height as
// diameters, and Theta1/Theta2 in degrees, drawn counter-clockwise.
type Patch struct {
	Kind   Kind
	Name   string
	Center [2]float64
	Anchor [2]float64
	Width  float64
	Height float64
	Radius float64
	Theta1 float64
	Theta2 float64
	Style  Style
}

func NewCircle(name string, center [2]float64, radius float64, st Style) Patch {
	return Patch{Kind: KindCircle, Name: name, Center: center, Radius: radius, Style: st}
}

func NewRectangle(name string, anchor [2]float64, width, height float64, st Style) Patch {
	return Patch{Kind: KindRectangle, Name: name, Anchor: anchor, Width: width, Height: height, Style: st}
}

// NewArc builds an arc patch. Arcs are never filled.
func NewArc(name string, center [2]float64, width, height, theta1, theta2 float64, st Style) Patch {
	st.Fill = false
	return Patch{Kind: KindArc, Name: name, Center: center, Width: width, Height: height, Theta1: theta1, Theta2: theta2, Style: st}
}

// Bounds returns the extent of the patch. Arcs report the extent of their
// sampled outline, not of the full ellipse.
func (p Patch) Bounds() geom.BBox {
	switch p.Kind {
	case KindCircle:
		return geom.BBox{
			MinX: p.Center[0] - p.Radius, MinY: p.Center[1] - p.Radius,
			MaxX: p.Center[0] + p.Radius, MaxY: p.Center[1] + p.Radius,
		}
	case KindRectangle:
		return geom.RectBBox(p.Anchor[0], p.Anchor[1], p.Width, p.Height)
	}
	bb, _ := geom.BBoxOf(p.Outline(geom.DefaultStep)[0])
	return bb
}

// Outline returns the stroked polylines of the patch, before dashing.
func (p Patch) Outline(step float64) [][][2]float64 {
	switch p.Kind {
	case KindCircle:
		return [][][2]float64{geom.Circle(p.Center[0], p.Center[1], p.Radius, step)}
	case KindRectangle:
		return [][][2]float64{geom.Rect(p.Anchor[0], p.Anchor[1], p.Width, p.Height)}
	case KindArc:
		return [][][2]float64{geom.Arc(p.Center[0], p.Center[1], p.Width, p.Height, p.Theta1, p.Theta2, step)}
	}
	return nil
}

// Strokes returns the outline split into dashes when the patch is dashed.
func (p Patch) Strokes(step, dash float64) [][][2]float64 {
	out := p.Outline(step)
	if !p.Style.Dashed {
		return out
	}
	var dashed [][][2]float64
	for _, line := range out {
		dashed = append(dashed, geom.Dashes(line, dash)...)
	}
	return dashed
}
