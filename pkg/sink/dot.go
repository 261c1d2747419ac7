package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT describes the frame's grid as a single Graphviz node whose label is
// an HTML table. Each box becomes a cell spanning its columns and rows; free
// cells are drawn empty. Boxes overlapping an earlier box cannot be
// expressed in a table and are listed under it instead.
func ToDOT(f Frame) string {
	cols, rows := len(f.Grid.ColumnWidths), len(f.Grid.RowHeights)
	owner := make([][]int, rows)
	for r := range owner {
		owner[r] = slices.Repeat([]int{-1}, cols)
	}

	var overlaps []string
	for i, b := range f.Boxes {
		if !claim(owner, b, i) {
			overlaps = append(overlaps, b.ID)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=11];\n")
	buf.WriteString("  grid [label=<\n")
	buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"2\" CELLPADDING=\"6\">\n")

	for r := range rows {
		buf.WriteString("      <TR>")
		for c := range cols {
			col := c
			if f.Grid.RightToLeft {
				col = cols - 1 - c
			}
			switch i := owner[r][col]; {
			case i < 0:
				fmt.Fprintf(&buf, `<TD WIDTH="%d" HEIGHT="%d"></TD>`, cellWidth(f, col), cellHeight(f, r))
			case isAnchorCell(f, f.Boxes[i], col, r):
				b := f.Boxes[i]
				fmt.Fprintf(&buf, `<TD COLSPAN="%d" ROWSPAN="%d" BGCOLOR="%s">%s<BR/><FONT POINT-SIZE="9">%dx%d</FONT></TD>`,
					b.Cell.Columns, b.Cell.Rows, boxColor(i).hex(), html.EscapeString(b.ID), b.Bounds.Width, b.Bounds.Height)
			}
		}
		buf.WriteString("</TR>\n")
	}
	if rows == 0 || cols == 0 {
		buf.WriteString("      <TR><TD>empty</TD></TR>\n")
	}
	buf.WriteString("    </TABLE>\n  >];\n")

	if len(overlaps) > 0 {
		fmt.Fprintf(&buf, "  overlaps [shape=note, label=%q];\n", "overlapping: "+strings.Join(overlaps, ", "))
		buf.WriteString("  grid -> overlaps [style=dashed, arrowhead=none];\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

// claim marks b's cells as owned by index i unless any is taken.
func claim(owner [][]int, b Box, i int) bool {
	c := b.Cell
	for r := c.Row; r < c.Row+c.Rows; r++ {
		for col := c.Column; col < c.Column+c.Columns; col++ {
			if r >= len(owner) || col >= len(owner[r]) || owner[r][col] >= 0 {
				return false
			}
		}
	}
	for r := c.Row; r < c.Row+c.Rows; r++ {
		for col := c.Column; col < c.Column+c.Columns; col++ {
			owner[r][col] = i
		}
	}
	return true
}

// isAnchorCell reports whether (col, r) is the first cell of b in table order.
func isAnchorCell(f Frame, b Box, col, r int) bool {
	if r != b.Cell.Row {
		return false
	}
	if f.Grid.RightToLeft {
		return col == b.Cell.Column+b.Cell.Columns-1
	}
	return col == b.Cell.Column
}

func cellWidth(f Frame, col int) int  { return max(f.Grid.ColumnWidths[col], 8) }
func cellHeight(f Frame, row int) int { return max(f.Grid.RowHeights[row], 8) }

// RenderDiagram renders [ToDOT] output to SVG with the embedded Graphviz.
func RenderDiagram(ctx context.Context, f Frame) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(f)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
