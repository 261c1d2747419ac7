package gridbag

import "github.com/matzehuels/gridbag/pkg/geom"

// Cell is an element's resolved position and span in grid units.
type Cell struct {
	Column  int `json:"column"`
	Row     int `json:"row"`
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// item is one visible element during a pass.
type item struct {
	elem           Element
	con            Constraint
	cell           Cell
	min, pref, max geom.Size
}

// cursor tracks auto-placement state across elements.
//
// xMax[r] is the first free column of row r and yMax[c] the first free row of
// column c, as left by the most recent element covering them. curRow and
// curCol, when non-negative, pin relative elements to a row or column that a
// remainder span has opened.
type cursor struct {
	xMax, yMax     []int
	curRow, curCol int
}

func newCursor() *cursor {
	return &cursor{curRow: -1, curCol: -1}
}

// start picks the row (or column) for an element with both coordinates relative.
func (c *cursor) start(x, y int) (int, int) {
	if x >= 0 || y >= 0 {
		return x, y
	}
	switch {
	case c.curRow >= 0:
		return x, c.curRow
	case c.curCol >= 0:
		return c.curCol, y
	}
	return x, 0
}

// occupy records that [x, x+w) × [y, y+h) is taken.
func (c *cursor) occupy(x, y, w, h int) {
	c.xMax = growTo(c.xMax, y+h)
	c.yMax = growTo(c.yMax, x+w)
	for r := y; r < y+h; r++ {
		c.xMax[r] = x + w
	}
	for col := x; col < x+w; col++ {
		c.yMax[col] = y + h
	}
}

// advance applies the row and column breaks opened by remainder spans.
func (c *cursor) advance(con Constraint, x, y, w, h int) {
	wRem, hRem := con.GridWidth.IsRemainder(), con.GridHeight.IsRemainder()
	if wRem && hRem {
		c.curRow, c.curCol = -1, -1
	}
	if hRem && c.curRow < 0 {
		c.curCol = x + w
	} else if wRem && c.curCol < 0 {
		c.curRow = y + h
	}
}

// resolve assigns a concrete cell to every item and returns the grid extent.
//
// The first pass places elements with sentinel spans counted as one cell to
// find the extent. The second pass repeats the placement, stretching
// [Remainder] spans to the last column or row and [Relative] spans to the one
// before it.
func resolve(items []item) (cols, rows int) {
	cur := newCursor()
	for i := range items {
		con := items[i].con
		w, h := con.GridWidth.provisional(), con.GridHeight.provisional()
		x, y := cur.start(con.GridX.value(), con.GridY.value())
		if x < 0 {
			x = maxIn(cur.xMax, y, y+h)
		} else if y < 0 {
			y = maxIn(cur.yMax, x, x+w)
		}
		x, w = fit(x, w)
		y, h = fit(y, h)
		cols, rows = max(cols, x+w), max(rows, y+h)
		cur.occupy(x, y, w, h)
		cur.advance(con, x, y, w, h)
	}

	extentX, extentY := cols, rows
	cur = newCursor()
	for i := range items {
		con := items[i].con
		w, okW := con.GridWidth.Count()
		h, okH := con.GridHeight.Count()
		x, y := cur.start(con.GridX.value(), con.GridY.value())
		if x < 0 {
			if !okH {
				h, okH = con.GridHeight.stretch(y, extentY), true
			}
			x = maxIn(cur.xMax, y, y+h)
		} else if y < 0 {
			if !okW {
				w, okW = con.GridWidth.stretch(x, extentX), true
			}
			y = maxIn(cur.yMax, x, x+w)
		}
		if !okW {
			w = con.GridWidth.stretch(x, extentX)
		}
		if !okH {
			h = con.GridHeight.stretch(y, extentY)
		}
		x, w = fit(x, w)
		y, h = fit(y, h)
		items[i].cell = Cell{Column: x, Row: y, Columns: w, Rows: h}
		cols, rows = max(cols, x+w), max(rows, y+h)
		cur.occupy(x, y, w, h)
		cur.advance(con, x, y, w, h)
	}
	return cols, rows
}

// fit keeps the cells [pos, pos+n) inside the first MaxCells.
func fit(pos, n int) (int, int) {
	pos = clamp(pos, 0, MaxCells-1)
	return pos, clamp(n, 1, MaxCells-pos)
}

// maxIn returns the largest value of s in [lo, hi), treating missing entries as 0.
func maxIn(s []int, lo, hi int) int {
	m := 0
	for i := lo; i < hi && i < len(s); i++ {
		m = max(m, s[i])
	}
	return m
}

func growTo(s []int, n int) []int {
	for len(s) < n {
		s = append(s, 0)
	}
	return s
}
