package gridbag

import (
	"slices"

	"github.com/matzehuels/gridbag/pkg/geom"
)

// Placement is the outcome of a layout pass for one element.
type Placement struct {
	Element Element   `json:"-"`
	Cell    Cell      `json:"cell"`
	Bounds  geom.Rect `json:"bounds"`
}

// Info describes the grid computed by the most recent pass.
type Info struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// ColumnWidths and RowHeights are the sizes after distribution.
	ColumnWidths []int `json:"column_widths"`
	RowHeights   []int `json:"row_heights"`

	MinColumnWidths  []int `json:"min_column_widths"`
	MinRowHeights    []int `json:"min_row_heights"`
	PrefColumnWidths []int `json:"pref_column_widths"`
	PrefRowHeights   []int `json:"pref_row_heights"`

	ColumnWeights []float64 `json:"column_weights"`
	RowWeights    []float64 `json:"row_weights"`

	// Origin is the top-left corner of the grid block in container
	// coordinates.
	Origin geom.Point `json:"origin"`

	Orientation Orientation `json:"-"`
	HGap        int         `json:"hgap,omitempty"`
	VGap        int         `json:"vgap,omitempty"`

	Placements []Placement `json:"placements"`

	content geom.Rect
}

// clone returns a deep copy so callers cannot corrupt cached state.
func (in Info) clone() Info {
	out := in
	out.ColumnWidths = slices.Clone(in.ColumnWidths)
	out.RowHeights = slices.Clone(in.RowHeights)
	out.MinColumnWidths = slices.Clone(in.MinColumnWidths)
	out.MinRowHeights = slices.Clone(in.MinRowHeights)
	out.PrefColumnWidths = slices.Clone(in.PrefColumnWidths)
	out.PrefRowHeights = slices.Clone(in.PrefRowHeights)
	out.ColumnWeights = slices.Clone(in.ColumnWeights)
	out.RowWeights = slices.Clone(in.RowWeights)
	out.Placements = slices.Clone(in.Placements)
	return out
}

// Location returns the cell containing the point (x, y) in container
// coordinates. Points before the grid map to column or row 0 and points past
// it to Columns or Rows.
func (in Info) Location(x, y int) (col, row int) {
	if in.Orientation == RightToLeft {
		x = in.content.X + in.content.Right() - 1 - x
	}
	return locate(in.ColumnWidths, in.Origin.X, in.HGap, x), locate(in.RowHeights, in.Origin.Y, in.VGap, y)
}

func locate(sizes []int, origin, gap, p int) int {
	d := origin
	i := 0
	for ; i < len(sizes); i++ {
		d += sizes[i]
		if d > p {
			break
		}
		d += gap
	}
	return i
}

// Bounds returns the bounds assigned to e, if e was placed.
func (in Info) Bounds(e Element) (geom.Rect, bool) {
	if !keyable(e) {
		return geom.Rect{}, false
	}
	for _, p := range in.Placements {
		if p.Element == e {
			return p.Bounds, true
		}
	}
	return geom.Rect{}, false
}
