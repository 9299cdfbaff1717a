package plot

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	svg "github.com/ajstarks/svgo"

	"courtview/internal/geom"
)

const (
	svgStep        = 1.0
	svgMarkerSize  = 3
	svgDashPattern = "6,4"
)

// Colors reach the document as raw attribute text, so only plain color
// names and hex triplets are accepted.
var svgColorRe = regexp.MustCompile(`^(?:[A-Za-z]+|#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8}))$`)

type svgTransform struct {
	b      geom.BBox
	scale  float64
	padX   float64
	padY   float64
	height float64
}

func newSVGTransform(b geom.BBox, width, height int) svgTransform {
	scale := math.Min(float64(width)/b.Width(), float64(height)/b.Height())
	return svgTransform{
		b:      b,
		scale:  scale,
		padX:   (float64(width) - b.Width()*scale) / 2,
		padY:   (float64(height) - b.Height()*scale) / 2,
		height: float64(height),
	}
}

func (t svgTransform) pt(p [2]float64) (float64, float64) {
	x := (p[0]-t.b.MinX)*t.scale + t.padX
	y := t.height - ((p[1]-t.b.MinY)*t.scale + t.padY)
	return x, y
}

func (t svgTransform) ipt(p [2]float64) (int, int) {
	x, y := t.pt(p)
	return int(math.Round(x)), int(math.Round(y))
}

// WriteSVG renders the axes as a standalone SVG document of the given pixel
// size. The limits box is fitted keeping its aspect ratio; y points up.
func WriteSVG(w io.Writer, ax *Axes, width, height int) error {
	b := ax.Limits()
	if !b.Valid() {
		return fmt.Errorf("svg: empty or degenerate limits [%.2f, %.2f, %.2f, %.2f]", b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	// validate every color before the first byte is written
	for _, p := range ax.patches {
		if _, err := svgColor(p.Style.Color); err != nil {
			return fmt.Errorf("svg: patch %q: %w", p.Name, err)
		}
	}
	for _, s := range ax.series {
		if _, err := svgColor(s.Color); err != nil {
			return fmt.Errorf("svg: series %q: %w", s.Label, err)
		}
	}
	t := newSVGTransform(b, width, height)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	canvas.Rect(0, 0, width, height, "fill:#FFFFFF")
	if ax.AxisVisible() {
		x0, y0 := t.ipt([2]float64{b.MinX, b.MaxY})
		x1, y1 := t.ipt([2]float64{b.MaxX, b.MinY})
		canvas.Rect(x0, y0, x1-x0, y1-y0, "fill:none;stroke:#BBBBBB;stroke-width:1")
	}
	for _, p := range ax.patches {
		writeSVGPatch(canvas, t, p)
	}
	for _, s := range ax.series {
		color, _ := svgColor(s.Color)
		canvas.Gstyle("fill:" + color + ";fill-opacity:0.7")
		for _, pt := range s.Points {
			x, y := t.ipt(pt)
			canvas.Circle(x, y, svgMarkerSize)
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func writeSVGPatch(canvas *svg.SVG, t svgTransform, p Patch) {
	color, _ := svgColor(p.Style.Color)
	fill := "none"
	if p.Style.Fill {
		fill = color
	}
	lw := p.Style.LineWidth
	if lw <= 0 {
		lw = 1
	}
	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.2f", fill, color, lw)
	if p.Style.Dashed {
		style += ";stroke-dasharray:" + svgDashPattern
	}

	switch p.Kind {
	case KindCircle:
		x, y := t.ipt(p.Center)
		canvas.Circle(x, y, int(math.Round(p.Radius*t.scale)), style)
	case KindRectangle:
		bb := p.Bounds()
		x0, y0 := t.ipt([2]float64{bb.MinX, bb.MaxY})
		x1, y1 := t.ipt([2]float64{bb.MaxX, bb.MinY})
		if x1 == x0 || y1 == y0 {
			// zero-area rectangles are not drawn by SVG renderers
			canvas.Line(x0, y0, x1, y1, style)
			return
		}
		canvas.Rect(x0, y0, x1-x0, y1-y0, style)
	case KindArc:
		var d strings.Builder
		for i, pt := range p.Outline(svgStep)[0] {
			x, y := t.pt(pt)
			if i == 0 {
				fmt.Fprintf(&d, "M %.2f %.2f", x, y)
			} else {
				fmt.Fprintf(&d, " L %.2f %.2f", x, y)
			}
		}
		canvas.Path(d.String(), style)
	}
}

// svgColor maps a style color to its SVG form. Empty and "k" mean black.
func svgColor(c string) (string, error) {
	c = strings.TrimSpace(c)
	switch strings.ToLower(c) {
	case "", "k":
		return "black", nil
	}
	if !svgColorRe.MatchString(c) {
		return "", fmt.Errorf("invalid color %q", c)
	}
	return c, nil
}
