package geom

import "math"

// DefaultStep is the angular sampling step, in degrees, used for arcs and circles.
const DefaultStep = 2.0

// Arc samples an elliptical arc centered at (cx, cy) with the given
// diameters. Angles are in degrees and run counter-clockwise from theta1
// to theta2; when theta2 <= theta1 the arc wraps through 360.
func Arc(cx, cy, width, height, theta1, theta2, step float64) [][2]float64 {
	if step <= 0 {
		step = DefaultStep
	}
	t1 := math.Mod(theta1, 360)
	t2 := math.Mod(theta2, 360)
	if t2 <= t1 {
		t2 += 360
	}
	rx, ry := width/2, height/2
	n := int(math.Ceil((t2 - t1) / step))
	if n < 1 {
		n = 1
	}
	out := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := (t1 + (t2-t1)*float64(i)/float64(n)) * math.Pi / 180
		out = append(out, [2]float64{cx + rx*math.Cos(a), cy + ry*math.Sin(a)})
	}
	return out
}

// Circle samples a closed circle; the first point is repeated at the end.
func Circle(cx, cy, r, step float64) [][2]float64 {
	pts := Arc(cx, cy, 2*r, 2*r, 0, 360, step)
	pts[len(pts)-1] = pts[0]
	return pts
}

// Rect returns the closed outline of the rectangle anchored at (x, y) with
// signed width and height.
func Rect(x, y, w, h float64) [][2]float64 {
	return [][2]float64{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
		{x, y},
	}
}

// RectBBox normalizes a rectangle with signed width and height.
func RectBBox(x, y, w, h float64) BBox {
	b := BBox{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b
}

// Dashes splits a polyline into alternating on/off runs of roughly dash
// length, keeping the "on" runs.
func Dashes(pts [][2]float64, dash float64) [][][2]float64 {
	if len(pts) < 2 || dash <= 0 {
		return [][][2]float64{pts}
	}
	var out [][][2]float64
	on := true
	run := [][2]float64{pts[0]}
	left := dash
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b[0]-a[0], b[1]-a[1])
		for seg > left {
			t := left / seg
			mid := [2]float64{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
			if on {
				run = append(run, mid)
				out = append(out, run)
			}
			run = [][2]float64{mid}
			on = !on
			seg -= left
			a = mid
			left = dash
		}
		left -= seg
		run = append(run, b)
	}
	if on && len(run) > 1 {
		out = append(out, run)
	}
	return out
}
