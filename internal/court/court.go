// Package court draws a regulation basketball half court.
//
// The coordinate system is centered on the hoop with y increasing away from
// the baseline; 10 units are roughly one foot. These are the units shot
// locations (LOC_X, LOC_Y) are reported in.
package court

import "courtview/internal/plot"

const (
	DefaultColor     = "black"
	DefaultLineWidth = 2.0
)

// Options style the court lines.
type Options struct {
	Color      string
	LineWidth  float64
	OuterLines bool // baseline, sidelines and half-court line
}

// DefaultOptions returns black lines of width 2 without the outer boundary.
func DefaultOptions() Options {
	return Options{Color: DefaultColor, LineWidth: DefaultLineWidth}
}

func (o Options) withDefaults() Options {
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	return o
}

// Surface is anything court patches can be added to.
type Surface interface {
	AddPatch(p plot.Patch)
}

// Elements returns the court patches in drawing order: 12 shapes, or 13
// when the outer lines are requested.
func Elements(opts Options) []plot.Patch {
	opts = opts.withDefaults()
	line := plot.Style{Color: opts.Color, LineWidth: opts.LineWidth}
	solid := line
	solid.Fill = true
	dashed := line
	dashed.Dashed = true

	els := []plot.Patch{
		// 18" rim
		plot.NewCircle("hoop", [2]float64{0, 0}, 7.5, line),
		plot.NewRectangle("backboard", [2]float64{-30, -7.5}, 60, -1, solid),
		// the paint: 16ft and 12ft wide, 19ft deep
		plot.NewRectangle("outer_box", [2]float64{-80, -47.5}, 160, 190, line),
		plot.NewRectangle("inner_box", [2]float64{-60, -47.5}, 120, 190, line),
		plot.NewArc("top_free_throw", [2]float64{0, 142.5}, 120, 120, 0, 180, line),
		plot.NewArc("bottom_free_throw", [2]float64{0, 142.5}, 120, 120, 180, 0, dashed),
		// 4ft from the center of the hoop
		plot.NewArc("restricted", [2]float64{0, 0}, 80, 80, 0, 180, line),
		// corner threes run 14ft before the arc starts
		plot.NewRectangle("corner_three_a", [2]float64{-220, -47.5}, 0, 140, line),
		plot.NewRectangle("corner_three_b", [2]float64{220, -47.5}, 0, 140, line),
		// 23'9" from the hoop, meeting the corner lines
		plot.NewArc("three_arc", [2]float64{0, 0}, 475, 475, 22, 158, line),
		plot.NewArc("center_outer_arc", [2]float64{0, 422.5}, 120, 120, 180, 0, line),
		plot.NewArc("center_inner_arc", [2]float64{0, 422.5}, 40, 40, 180, 0, line),
	}
	if opts.OuterLines {
		els = append(els, plot.NewRectangle("outer_lines", [2]float64{-250, -47.5}, 500, 470, line))
	}
	return els
}

// Draw adds the court to s and returns s so callers can keep composing on
// it, e.g. scatter shots and set limits.
func Draw[S Surface](s S, opts Options) S {
	for _, el := range Elements(opts) {
		s.AddPatch(el)
	}
	return s
}

// DrawCurrent draws onto the process-wide current axes.
func DrawCurrent(opts Options) *plot.Axes {
	return Draw(plot.Current(), opts)
}

// HalfCourt is the view box used for shot charts: the half court plus a
// margin on every side.
func HalfCourt() (xmin, xmax, ymin, ymax float64) {
	return -300, 300, -100, 500
}
