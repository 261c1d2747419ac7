package sink

import (
	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/gridbag"
)

// Frame is a laid-out panel. It is self-contained so it can be cached and
// rendered without the live element objects.
type Frame struct {
	Size   geom.Size   `json:"size"`
	Insets geom.Insets `json:"insets"`
	Grid   Grid        `json:"grid"`
	Boxes  []Box       `json:"boxes"`
}

// Grid is the column and row structure of a frame.
type Grid struct {
	ColumnWidths  []int      `json:"column_widths"`
	RowHeights    []int      `json:"row_heights"`
	ColumnWeights []float64  `json:"column_weights"`
	RowWeights    []float64  `json:"row_weights"`
	Origin        geom.Point `json:"origin"`
	HGap          int        `json:"hgap,omitempty"`
	VGap          int        `json:"vgap,omitempty"`
	RightToLeft   bool       `json:"right_to_left,omitempty"`
}

// Box is one placed element.
type Box struct {
	ID     string       `json:"id"`
	Cell   gridbag.Cell `json:"cell"`
	Bounds geom.Rect    `json:"bounds"`
}

// NewGrid copies the grid structure out of debug info.
func NewGrid(info gridbag.Info) Grid {
	return Grid{
		ColumnWidths:  info.ColumnWidths,
		RowHeights:    info.RowHeights,
		ColumnWeights: info.ColumnWeights,
		RowWeights:    info.RowWeights,
		Origin:        info.Origin,
		HGap:          info.HGap,
		VGap:          info.VGap,
		RightToLeft:   info.Orientation == gridbag.RightToLeft,
	}
}

// columnEdges returns the x coordinates of every column boundary, left to
// right on screen.
func (g Grid) columnEdges(content geom.Rect) []int {
	edges := boundaries(g.ColumnWidths, g.Origin.X, g.HGap)
	if !g.RightToLeft {
		return edges
	}
	out := make([]int, len(edges))
	for i, x := range edges {
		out[len(edges)-1-i] = 2*content.X + content.Width - x
	}
	return out
}

func (g Grid) rowEdges() []int {
	return boundaries(g.RowHeights, g.Origin.Y, g.VGap)
}

// boundaries returns the leading edge of each track and the trailing edge of
// the last one. Gaps are split evenly between neighbours.
func boundaries(sizes []int, origin, gap int) []int {
	if len(sizes) == 0 {
		return nil
	}
	out := make([]int, 0, len(sizes)+1)
	pos := origin
	out = append(out, pos)
	for i, s := range sizes {
		pos += s
		if i < len(sizes)-1 {
			out = append(out, pos+gap/2)
			pos += gap
		}
	}
	return append(out, pos)
}

// content returns the frame area inside its insets.
func (f Frame) content() geom.Rect {
	return geom.NewRect(0, 0, f.Size.Width, f.Size.Height).Inset(f.Insets)
}
