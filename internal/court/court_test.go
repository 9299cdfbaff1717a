package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtview/internal/geom"
	"courtview/internal/plot"
)

type recorder struct {
	patches []plot.Patch
}

func (r *recorder) AddPatch(p plot.Patch) { r.patches = append(r.patches, p) }

func byName(t *testing.T, ps []plot.Patch, name string) plot.Patch {
	t.Helper()
	for _, p := range ps {
		if p.Name == name {
			return p
		}
	}
	require.Failf(t, "patch not found", "name %q", name)
	return plot.Patch{}
}

func TestDraw_ShapeCount(t *testing.T) {
	r := Draw(&recorder{}, DefaultOptions())
	assert.Len(t, r.patches, 12)

	opts := DefaultOptions()
	opts.OuterLines = true
	r = Draw(&recorder{}, opts)
	assert.Len(t, r.patches, 13)
}

func TestDraw_ReturnsSameSurface(t *testing.T) {
	ax := plot.NewAxes()
	got := Draw(ax, DefaultOptions())
	assert.Same(t, ax, got)
	assert.Len(t, ax.Patches(), 12)
}

func TestDraw_Hoop(t *testing.T) {
	for _, opts := range []Options{
		DefaultOptions(),
		{Color: "red", LineWidth: 1, OuterLines: true},
		{Color: "#123456", LineWidth: 5},
	} {
		hoop := byName(t, Elements(opts), "hoop")
		assert.Equal(t, plot.KindCircle, hoop.Kind)
		assert.Equal(t, [2]float64{0, 0}, hoop.Center)
		assert.Equal(t, 7.5, hoop.Radius)
	}
}

func TestDraw_OnlyBackboardFilled(t *testing.T) {
	opts := DefaultOptions()
	opts.OuterLines = true
	for _, p := range Elements(opts) {
		if p.Name == "backboard" {
			assert.True(t, p.Style.Fill, p.Name)
		} else {
			assert.False(t, p.Style.Fill, p.Name)
		}
	}
}

func TestDraw_StyleOnlyChangesStroke(t *testing.T) {
	a := Elements(Options{Color: "black", LineWidth: 2})
	b := Elements(Options{Color: "red", LineWidth: 1})
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, "black", a[i].Style.Color)
		assert.Equal(t, 2.0, a[i].Style.LineWidth)
		assert.Equal(t, "red", b[i].Style.Color)
		assert.Equal(t, 1.0, b[i].Style.LineWidth)

		pa, pb := a[i], b[i]
		pa.Style.Color, pa.Style.LineWidth = "", 0
		pb.Style.Color, pb.Style.LineWidth = "", 0
		assert.Equal(t, pa, pb)
	}
}

func TestDraw_Idempotent(t *testing.T) {
	opts := Options{Color: "blue", LineWidth: 3, OuterLines: true}
	a := Draw(plot.NewAxes(), opts)
	b := Draw(plot.NewAxes(), opts)
	assert.Equal(t, a.Patches(), b.Patches())
}

func TestDraw_OuterLines(t *testing.T) {
	opts := DefaultOptions()
	opts.OuterLines = true
	els := Elements(opts)
	last := els[len(els)-1]
	assert.Equal(t, "outer_lines", last.Name)
	assert.Equal(t, plot.KindRectangle, last.Kind)
	assert.False(t, last.Style.Fill)
	assert.Equal(t, geom.BBox{MinX: -250, MinY: -47.5, MaxX: 250, MaxY: 422.5}, last.Bounds())
}

func TestDraw_RedThinWithOuterLines(t *testing.T) {
	ax := Draw(plot.NewAxes(), Options{Color: "red", LineWidth: 1, OuterLines: true})
	ps := ax.Patches()

	hoop := byName(t, ps, "hoop")
	assert.Equal(t, "red", hoop.Style.Color)
	assert.Equal(t, 1.0, hoop.Style.LineWidth)
	assert.Equal(t, 7.5, hoop.Radius)
	assert.Equal(t, [2]float64{0, 0}, hoop.Center)

	outer := byName(t, ps, "outer_lines")
	assert.Equal(t, "red", outer.Style.Color)
	assert.Equal(t, 1.0, outer.Style.LineWidth)
	assert.Equal(t, 500.0, outer.Width)
	assert.Equal(t, 470.0, outer.Height)
}

func TestElements_Constants(t *testing.T) {
	els := Elements(DefaultOptions())

	bb := byName(t, els, "backboard")
	assert.Equal(t, [2]float64{-30, -7.5}, bb.Anchor)
	assert.Equal(t, 60.0, bb.Width)
	assert.Equal(t, -1.0, bb.Height)

	for name, w := range map[string]float64{"outer_box": 160, "inner_box": 120} {
		p := byName(t, els, name)
		assert.Equal(t, w, p.Width, name)
		assert.Equal(t, 190.0, p.Height, name)
		assert.Equal(t, -47.5, p.Anchor[1], name)
		assert.Equal(t, -w/2, p.Anchor[0], name)
	}

	top := byName(t, els, "top_free_throw")
	bottom := byName(t, els, "bottom_free_throw")
	assert.Equal(t, [2]float64{0, 142.5}, top.Center)
	assert.Equal(t, [2]float64{0, 142.5}, bottom.Center)
	assert.Equal(t, [2]float64{0, 180}, [2]float64{top.Theta1, top.Theta2})
	assert.Equal(t, [2]float64{180, 0}, [2]float64{bottom.Theta1, bottom.Theta2})
	assert.False(t, top.Style.Dashed)
	assert.True(t, bottom.Style.Dashed)

	ra := byName(t, els, "restricted")
	assert.Equal(t, 80.0, ra.Width)
	assert.Equal(t, [2]float64{0, 180}, [2]float64{ra.Theta1, ra.Theta2})

	for _, name := range []string{"corner_three_a", "corner_three_b"} {
		p := byName(t, els, name)
		assert.Equal(t, 0.0, p.Width, name)
		assert.Equal(t, 140.0, p.Height, name)
		assert.Equal(t, 220.0, abs(p.Anchor[0]), name)
	}

	three := byName(t, els, "three_arc")
	assert.Equal(t, 475.0, three.Width)
	assert.Equal(t, [2]float64{22, 158}, [2]float64{three.Theta1, three.Theta2})

	outer := byName(t, els, "center_outer_arc")
	inner := byName(t, els, "center_inner_arc")
	assert.Equal(t, [2]float64{0, 422.5}, outer.Center)
	assert.Equal(t, 120.0, outer.Width)
	assert.Equal(t, 40.0, inner.Width)
}

func TestOptions_ZeroValueDefaults(t *testing.T) {
	els := Elements(Options{})
	for _, p := range els {
		assert.Equal(t, DefaultColor, p.Style.Color)
		assert.Equal(t, DefaultLineWidth, p.Style.LineWidth)
	}
}

func TestDrawCurrent(t *testing.T) {
	ax := plot.NewFigure()
	got := DrawCurrent(DefaultOptions())
	assert.Same(t, ax, got)
	assert.Len(t, got.Patches(), 12)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
