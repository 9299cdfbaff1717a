// Package chart composes a shot chart: the court plus made and missed shot
// overlays on one set of axes.
package chart

import (
	"courtview/internal/court"
	"courtview/internal/geom"
	"courtview/internal/plot"
	"courtview/internal/shots"
)

const (
	MadeColor    = "green"
	MissedColor  = "red"
	MadeMarker   = '●'
	MissedMarker = '×'
)

// Layers toggles what Build draws.
type Layers struct {
	Court  bool
	Made   bool
	Missed bool
}

func AllLayers() Layers { return Layers{Court: true, Made: true, Missed: true} }

type Options struct {
	Court  court.Options
	Layers Layers
	// Limits fixes the view box; an invalid box falls back to the data
	// bounds.
	Limits geom.BBox
}

// DefaultLimits is the half-court view box.
func DefaultLimits() geom.BBox {
	xmin, xmax, ymin, ymax := court.HalfCourt()
	return geom.BBox{MinX: xmin, MinY: ymin, MaxX: xmax, MaxY: ymax}
}

// Build draws the court and the shots of set onto fresh axes. Missed shots
// go below made ones.
func Build(set shots.Set, opts Options) *plot.Axes {
	ax := plot.NewAxes()
	if opts.Layers.Court {
		court.Draw(ax, opts.Court)
	}
	if pts := set.Missed(); opts.Layers.Missed && len(pts) > 0 {
		ax.AddSeries(plot.Series{Label: "missed", Points: pts, Color: MissedColor, Marker: MissedMarker})
	}
	if pts := set.Made(); opts.Layers.Made && len(pts) > 0 {
		ax.AddSeries(plot.Series{Label: "made", Points: pts, Color: MadeColor, Marker: MadeMarker})
	}
	if opts.Limits.Valid() {
		ax.SetXLim(opts.Limits.MinX, opts.Limits.MaxX)
		ax.SetYLim(opts.Limits.MinY, opts.Limits.MaxY)
	}
	ax.SetAxisOff()
	return ax
}
