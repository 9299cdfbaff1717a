package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtview/internal/geom"
)

func TestProjector_RoundTrip(t *testing.T) {
	b := geom.BBox{MinX: -300, MinY: -100, MaxX: 300, MaxY: 500}
	p, ok := NewProjector(b, View{Zoom: 1}, 80, 40)
	require.True(t, ok)

	mx, my := p.Micro([2]float64{0, 200})
	back := p.Data(mx, my)
	tol := 1 / p.Scale()
	assert.InDelta(t, 0, back[0], tol)
	assert.InDelta(t, 200, back[1], tol)

	// y grows downward on screen
	_, top := p.Micro([2]float64{0, 500})
	_, bottom := p.Micro([2]float64{0, -100})
	assert.Less(t, top, bottom)
}

func TestProjector_Degenerate(t *testing.T) {
	_, ok := NewProjector(geom.BBox{}, View{}, 80, 40)
	assert.False(t, ok)

	_, ok = NewProjector(geom.BBox{MaxX: 1, MaxY: 1}, View{}, 1, 40)
	assert.False(t, ok)
}

func TestProjector_ZoomAndPan(t *testing.T) {
	b := geom.BBox{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}
	p1, _ := NewProjector(b, View{Zoom: 1}, 40, 20)
	p2, _ := NewProjector(b, View{Zoom: 2}, 40, 20)
	assert.InDelta(t, 2*p1.Scale(), p2.Scale(), 1e-9)

	panned, _ := NewProjector(b, View{Zoom: 1, OffsetX: 3, OffsetY: -2}, 40, 20)
	x1, y1 := p1.Micro([2]float64{0, 0})
	x2, y2 := panned.Micro([2]float64{0, 0})
	assert.Equal(t, x1+6, x2)
	assert.Equal(t, y1-8, y2)
}

func TestRasterize_Empty(t *testing.T) {
	r := Rasterize(NewAxes(), View{Zoom: 1}, 10, 4)
	_, ok := r.Projector()
	assert.False(t, ok)
	for _, line := range r.Lines() {
		assert.Equal(t, strings.Repeat(" ", 10), line)
	}
}

func TestRasterize_DrawsPatchesAndMarkers(t *testing.T) {
	ax := NewAxes()
	ax.SetXLim(-10, 10)
	ax.SetYLim(-10, 10)
	ax.AddPatch(NewRectangle("box", [2]float64{-8, -8}, 16, 16, Style{Color: "red", LineWidth: 1}))
	ax.Scatter("made", [][2]float64{{0, 0}}, "green")

	r := Rasterize(ax, View{Zoom: 1}, 40, 20)
	p, ok := r.Projector()
	require.True(t, ok)

	cx, cy := p.Cell([2]float64{0, 0})
	g, c := r.Glyph(cx, cy)
	assert.Equal(t, '●', g)
	assert.Equal(t, "green", c)

	ex, ey := p.Cell([2]float64{-8, 0})
	g, c = r.Glyph(ex, ey)
	assert.NotEqual(t, ' ', g)
	assert.Equal(t, "red", c)

	lines := r.Lines()
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Equal(t, 40, len([]rune(l)))
	}
	assert.NotEmpty(t, r.Render())
}

func TestRasterize_FilledPatch(t *testing.T) {
	filled := NewAxes()
	filled.SetXLim(-10, 10)
	filled.SetYLim(-10, 10)
	filled.AddPatch(NewRectangle("solid", [2]float64{-5, -5}, 10, 10, Style{Fill: true}))
	hollow := NewAxes()
	hollow.SetXLim(-10, 10)
	hollow.SetYLim(-10, 10)
	hollow.AddPatch(NewRectangle("hollow", [2]float64{-5, -5}, 10, 10, Style{}))

	rf := Rasterize(filled, View{Zoom: 1}, 40, 20)
	rh := Rasterize(hollow, View{Zoom: 1}, 40, 20)
	p, _ := rf.Projector()
	cx, cy := p.Cell([2]float64{0, 0})

	g, _ := rf.Glyph(cx, cy)
	assert.NotEqual(t, ' ', g)
	g, _ = rh.Glyph(cx, cy)
	assert.Equal(t, ' ', g)
}

func TestTermColor(t *testing.T) {
	assert.Equal(t, "", TermColor("black"))
	assert.Equal(t, "", TermColor(""))
	assert.Equal(t, "#E5484D", TermColor("Red"))
	assert.Equal(t, "#abcdef", TermColor("#ABCDEF"))
	assert.Equal(t, "", TermColor("no-such-color"))
}
