package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courtview/internal/plot"
	"courtview/internal/shots"
)

const (
	hoverMarker = '◉'
	hoverColor  = "yellow"
	// a shot within this many micro-pixels of the cursor is snapped to
	snapRadius = 6
	svgWidth   = 1000
)

// projector returns the data/cell mapping the canvas is drawn with.
func (m Model) projector(w, h int) (plot.Projector, bool) {
	return plot.NewProjector(m.axes().Limits(), m.view, w, h)
}

func (m Model) renderCourt(w, h int) string {
	ax := m.axes()
	if m.hoverShot >= 0 && m.hoverShot < m.set.Len() {
		ax.AddSeries(plot.Series{
			Label:  "hover",
			Points: [][2]float64{m.set.Shots[m.hoverShot].Point()},
			Color:  hoverColor,
			Marker: hoverMarker,
		})
	}
	return plot.Rasterize(ax, m.view, w, h).Render()
}

// visible reports whether a shot's layer is switched on.
func (m Model) visible(s shots.Shot) bool {
	if s.Made {
		return m.layers.Made
	}
	return m.layers.Missed
}

// nearestVisible returns the visible shot closest to pt in data units.
func (m Model) nearestVisible(pt [2]float64) int {
	var vis shots.Set
	var idx []int
	for i, s := range m.set.Shots {
		if m.visible(s) {
			vis.Shots = append(vis.Shots, s)
			idx = append(idx, i)
		}
	}
	if j := vis.Nearest(pt); j >= 0 {
		return idx[j]
	}
	return -1
}

// hover updates the hover state for a canvas cell.
func (m *Model) hover(cx, cy int) {
	lo := m.layout()
	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy
	m.hoverShot = -1
	proj, ok := m.projector(lo.mapW, lo.mapH)
	m.hoverHasXY = ok
	if !ok {
		return
	}
	m.hoverPos = proj.CellData(cx, cy)
	i := m.nearestVisible(m.hoverPos)
	if i < 0 {
		return
	}
	mx, my := proj.Micro(m.set.Shots[i].Point())
	dx, dy := mx-(cx*2+1), my-(cy*4+2)
	if dx*dx+dy*dy <= snapRadius*snapRadius {
		m.hoverShot = i
	}
}

// inspectTarget is the hovered position, or the canvas center.
func (m Model) inspectTarget() ([2]float64, bool) {
	if m.hovering && m.hoverHasXY {
		return m.hoverPos, true
	}
	lo := m.layout()
	proj, ok := m.projector(lo.mapW, lo.mapH)
	if !ok {
		return [2]float64{}, false
	}
	return proj.CellData(lo.mapW/2, lo.mapH/2), true
}

func shotDetails(i int, s shots.Shot) string {
	name := s.PlayerName
	if name == "" {
		name = "<unknown player>"
	}
	lines := []string{
		fmt.Sprintf("shot #%d: %s", i+1, result(s)),
		fmt.Sprintf("player: %s", name),
	}
	if s.TeamName != "" {
		lines = append(lines, fmt.Sprintf("team: %s", s.TeamName))
	}
	if s.GameID != "" {
		lines = append(lines, fmt.Sprintf("game: %s  event: %d", s.GameID, s.EventID))
	}
	if s.Period > 0 {
		lines = append(lines, fmt.Sprintf("period: %d", s.Period))
	}
	if s.ActionType != "" {
		lines = append(lines, fmt.Sprintf("action: %s", s.ActionType))
	}
	if s.ShotType != "" || s.ZoneBasic != "" {
		lines = append(lines, fmt.Sprintf("type: %s  zone: %s", s.ShotType, s.ZoneBasic))
	}
	lines = append(lines,
		fmt.Sprintf("distance: %.0f ft", s.Distance),
		fmt.Sprintf("loc: x=%.0f y=%.0f (%.1f ft, %.1f ft)", s.X, s.Y, s.X/10, s.Y/10),
	)
	return strings.Join(lines, "\n")
}

// exportName derives the SVG file name from the loaded source.
func (m Model) exportName() string {
	base := "courtview"
	if m.selPath != "" {
		base = strings.TrimSuffix(filepath.Base(m.selPath), filepath.Ext(m.selPath))
	}
	return filepath.Join(m.cwd, base+".svg")
}

// exportSVG writes the current chart, without hover marks, to path.
func (m Model) exportSVG(path string) error {
	ax := m.axes()
	b := ax.Limits()
	h := svgWidth
	if b.Valid() {
		h = int(float64(svgWidth) * b.Height() / b.Width())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.WriteSVG(f, ax, svgWidth, max(h, 1)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
