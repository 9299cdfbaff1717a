package geom

// BBox is an axis-aligned bounding box in data units.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside the box, edges included.
func (b BBox) Contains(p [2]float64) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[1] >= b.MinY && p[1] <= b.MaxY
}

// Pad grows the box by d on every side.
func (b BBox) Pad(d float64) BBox {
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// Builder accumulates points into a bounding box. The zero value is empty.
type Builder struct {
	bbox BBox
	n    int
}

// Add extends the box to include p.
func (bb *Builder) Add(p [2]float64) {
	if bb.n == 0 {
		bb.bbox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
	} else {
		if p[0] < bb.bbox.MinX {
			bb.bbox.MinX = p[0]
		}
		if p[1] < bb.bbox.MinY {
			bb.bbox.MinY = p[1]
		}
		if p[0] > bb.bbox.MaxX {
			bb.bbox.MaxX = p[0]
		}
		if p[1] > bb.bbox.MaxY {
			bb.bbox.MaxY = p[1]
		}
	}
	bb.n++
}

// AddBox extends the box to include both corners of o.
func (bb *Builder) AddBox(o BBox) {
	bb.Add([2]float64{o.MinX, o.MinY})
	bb.Add([2]float64{o.MaxX, o.MaxY})
}

// Empty reports whether nothing was added.
func (bb *Builder) Empty() bool { return bb.n == 0 }

// BBox returns the accumulated box.
func (bb *Builder) BBox() BBox { return bb.bbox }

// BBoxOf returns the bounding box of pts and false when pts is empty.
func BBoxOf(pts [][2]float64) (BBox, bool) {
	var bb Builder
	for _, p := range pts {
		bb.Add(p)
	}
	return bb.BBox(), !bb.Empty()
}
