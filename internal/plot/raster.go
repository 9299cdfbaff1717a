package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"courtview/internal/geom"
)

const (
	rasterStep = 2.0 // degrees per arc sample
	rasterDash = 8.0 // dash length in data units
)

// View is the interactive transform applied on top of the axes limits.
// Offsets are in cells.
type View struct {
	Zoom    float64
	OffsetX int
	OffsetY int
}

// Projector maps data coordinates onto a w x h cell grid with a 2x4
// braille microgrid per cell. The limits box is fitted into the grid
// keeping its aspect ratio, then zoomed around its center and panned.
type Projector struct {
	cx, cy     float64
	scale      float64
	wMic, hMic int
	offX, offY int
}

// NewProjector returns false when the box is degenerate or the grid is too
// small to draw on.
func NewProjector(b geom.BBox, v View, w, h int) (Projector, bool) {
	if !b.Valid() || w <= 1 || h <= 1 {
		return Projector{}, false
	}
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	wMic, hMic := w*2, h*4
	scale := math.Min(float64(wMic-1)/b.Width(), float64(hMic-1)/b.Height()) * zoom
	return Projector{
		cx:    (b.MinX + b.MaxX) / 2,
		cy:    (b.MinY + b.MaxY) / 2,
		scale: scale,
		wMic:  wMic,
		hMic:  hMic,
		offX:  v.OffsetX * 2,
		offY:  v.OffsetY * 4,
	}, true
}

// Micro maps a data point to microgrid coordinates. y grows downward.
func (p Projector) Micro(pt [2]float64) (int, int) {
	mx := float64(p.wMic-1)/2 + (pt[0]-p.cx)*p.scale
	my := float64(p.hMic-1)/2 - (pt[1]-p.cy)*p.scale
	return int(math.Round(mx)) + p.offX, int(math.Round(my)) + p.offY
}

// Cell maps a data point to the cell that contains it.
func (p Projector) Cell(pt [2]float64) (int, int) {
	mx, my := p.Micro(pt)
	return floorDiv(mx, 2), floorDiv(my, 4)
}

// Data maps a microgrid coordinate back to data units.
func (p Projector) Data(mx, my int) [2]float64 {
	x := float64(mx-p.offX) - float64(p.wMic-1)/2
	y := float64(p.hMic-1)/2 - float64(my-p.offY)
	return [2]float64{p.cx + x/p.scale, p.cy + y/p.scale}
}

// CellData maps the center of a cell back to data units.
func (p Projector) CellData(cx, cy int) [2]float64 {
	return p.Data(cx*2+1, cy*4+2)
}

// Scale is the number of micro-pixels per data unit.
func (p Projector) Scale() float64 { return p.scale }

// Raster is a rendered w x h cell grid.
type Raster struct {
	W, H int

	buf       *brailleBuf
	marks     [][]rune
	markColor [][]string
	proj      Projector
	ok        bool
}

// Rasterize draws the axes onto a braille grid. Patches are drawn in order,
// filled patches first filled then stroked; scatter points replace the cell
// they land in with the series marker.
func Rasterize(ax *Axes, v View, w, h int) *Raster {
	w, h = max(w, 1), max(h, 1)
	r := &Raster{W: w, H: h, buf: newBrailleBuf(w, h)}
	r.marks = make([][]rune, h)
	r.markColor = make([][]string, h)
	for i := range r.marks {
		r.marks[i] = make([]rune, w)
		r.markColor[i] = make([]string, w)
	}
	r.proj, r.ok = NewProjector(ax.Limits(), v, w, h)
	if !r.ok {
		return r
	}
	for _, p := range ax.patches {
		r.drawPatch(p)
	}
	for _, s := range ax.series {
		for _, pt := range s.Points {
			cx, cy := r.proj.Cell(pt)
			if cx < 0 || cy < 0 || cx >= w || cy >= h {
				continue
			}
			r.marks[cy][cx] = s.Marker
			r.markColor[cy][cx] = s.Color
		}
	}
	return r
}

func (r *Raster) drawPatch(p Patch) {
	color := p.Style.Color
	if p.Style.Fill {
		for _, line := range p.Outline(rasterStep) {
			r.buf.fillRing(r.microLine(line), color)
		}
	}
	// widths of 3 and more get a second, offset pass
	thick := p.Style.LineWidth >= 3
	for _, line := range p.Strokes(rasterStep, rasterDash) {
		ml := r.microLine(line)
		for i := 1; i < len(ml); i++ {
			a, b := ml[i-1], ml[i]
			r.buf.drawLineMicro(a[0], a[1], b[0], b[1], color)
			if thick {
				r.buf.drawLineMicro(a[0]+1, a[1]+1, b[0]+1, b[1]+1, color)
			}
		}
		if len(ml) == 1 {
			r.buf.setPixel(ml[0][0], ml[0][1], color)
		}
	}
}

func (r *Raster) microLine(line [][2]float64) [][2]int {
	out := make([][2]int, 0, len(line))
	for _, pt := range line {
		mx, my := r.proj.Micro(pt)
		out = append(out, [2]int{mx, my})
	}
	return out
}

// Projector returns the projection used for this raster and false when
// nothing could be drawn.
func (r *Raster) Projector() (Projector, bool) { return r.proj, r.ok }

// Glyph returns the character and color at a cell.
func (r *Raster) Glyph(x, y int) (rune, string) {
	if m := r.marks[y][x]; m != 0 {
		return m, r.markColor[y][x]
	}
	return r.buf.glyph(x, y), r.buf.color[y][x]
}

// Lines returns the raster as plain text rows.
func (r *Raster) Lines() []string {
	out := make([]string, r.H)
	for y := 0; y < r.H; y++ {
		row := make([]rune, r.W)
		for x := 0; x < r.W; x++ {
			row[x], _ = r.Glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the raster with ANSI colors, one style per run of
// same-colored cells.
func (r *Raster) Render() string {
	lines := make([]string, r.H)
	for y := 0; y < r.H; y++ {
		var sb strings.Builder
		var run []rune
		runColor := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if c := TermColor(runColor); c != "" {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < r.W; x++ {
			g, c := r.Glyph(x, y)
			if g == ' ' {
				c = ""
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run = append(run, g)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

var namedColors = map[string]string{
	"red":     "#E5484D",
	"green":   "#30A46C",
	"blue":    "#3E63DD",
	"orange":  "#F76B15",
	"yellow":  "#FFE629",
	"purple":  "#8E4EC6",
	"gray":    "#8B8D98",
	"grey":    "#8B8D98",
	"white":   "#FFFFFF",
	"cyan":    "#00A2C7",
	"magenta": "#D6409F",
}

// TermColor maps a color name or hex string onto a terminal color. Black
// and empty map to "", meaning the terminal's own foreground, so the court
// stays visible on dark backgrounds.
func TermColor(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	switch {
	case c == "" || c == "black" || c == "k":
		return ""
	case strings.HasPrefix(c, "#"):
		return c
	}
	if hex, ok := namedColors[c]; ok {
		return hex
	}
	return ""
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
