package gridbag

import "github.com/matzehuels/gridbag/pkg/geom"

// track is one laid-out axis: column sizes and their leading edges.
type track struct {
	sizes []int
	lead  []int
}

func newTrack(sizes []int, origin, gap int) track {
	return track{sizes: sizes, lead: starts(sizes, origin, gap)}
}

// extent returns the position and length of cells [i, i+n).
func (t track) extent(i, n int) (int, int) {
	if i >= len(t.sizes) || n <= 0 {
		return 0, 0
	}
	last := min(i+n, len(t.sizes)) - 1
	return t.lead[i], t.lead[last] + t.sizes[last] - t.lead[i]
}

// cellRect returns the pixel rectangle covered by c.
func cellRect(c Cell, cols, rows track) geom.Rect {
	x, w := cols.extent(c.Column, c.Columns)
	y, h := rows.extent(c.Row, c.Rows)
	return geom.NewRect(x, y, w, h)
}

// place computes an element's bounds within its cell rectangle.
//
// The content size is the preferred size plus twice the internal padding,
// capped by the maximum size. Fill stretches it to the inset cell; it never
// exceeds the inset cell and is never negative. The content is then aligned
// by anchor. Bounds that start left of or above the container are clipped at
// its edge, and bounds left without area become the empty rectangle.
func place(it *item, cell geom.Rect, o Orientation) geom.Rect {
	c := it.con
	inner := cell.Inset(c.Insets)
	avail := geom.NewSize(max(inner.Width, 0), max(inner.Height, 0))

	w := min(it.pref.Width+2*c.IPadX, it.max.Width)
	h := min(it.pref.Height+2*c.IPadY, it.max.Height)
	if c.Fill.horizontal() {
		w = avail.Width
	}
	if c.Fill.vertical() {
		h = avail.Height
	}
	w = clamp(w, 0, avail.Width)
	h = clamp(h, 0, avail.Height)

	ha, va := c.Anchor.alignment(o)
	r := geom.NewRect(
		inner.X+offset(ha, avail.Width-w),
		inner.Y+offset(va, avail.Height-h),
		w, h,
	)

	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.IsEmpty() {
		return geom.Rect{}
	}
	return r
}

func offset(a align, slack int) int {
	switch a {
	case alignCenter:
		return slack / 2
	case alignEnd:
		return slack
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
