package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "inspect [document]",
		Short: "Print the computed grid and element bounds",
		Long: `Print the computed grid and element bounds.

Shows column widths, row heights, weights and the grid origin next to every
element's cell and bounds. Useful for working out why an element ended up
where it did.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], opts)
		},
	}
	opts.addFlags(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts layoutOpts) error {
	doc, err := readDocument(ctx, input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layout, cacheHit, err := runner.ComputeWithCacheInfo(ctx, doc, opts.pipelineOptions())
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	printTitle(input)
	printKeyValue("Container", sizeString(layout.Frame.Size.Width, layout.Frame.Size.Height))
	printKeyValue("Minimum", sizeString(layout.Minimum.Width, layout.Minimum.Height))
	printKeyValue("Preferred", sizeString(layout.Preferred.Width, layout.Preferred.Height))
	g := layout.Frame.Grid
	printKeyValue("Origin", fmt.Sprintf("%d, %d", g.Origin.X, g.Origin.Y))
	if g.RightToLeft {
		printKeyValue("Orientation", "right-to-left")
	}
	printNewline()

	printBlock(trackTable("Column", g.ColumnWidths, g.ColumnWeights, g.Origin.X, g.HGap))
	printBlock(trackTable("Row", g.RowHeights, g.RowWeights, g.Origin.Y, g.VGap))
	printBlock(elementTable(layout))
	if len(layout.Hidden) > 0 {
		printDetail("Hidden: %s", strings.Join(layout.Hidden, ", "))
	}
	printStats(len(layout.Frame.Boxes), layout.Columns(), layout.Rows(), cacheHit)
	return nil
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableNumberStyle = StyleNumber.Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return tableHeaderStyle
			case col == 0:
				return tableCellStyle
			}
			return tableNumberStyle
		})
}

// trackTable lists one axis: index, size, weight and start coordinate.
func trackTable(name string, sizes []int, weights []float64, origin, gap int) string {
	t := newTable(name, "Size", "Weight", "Start")
	pos := origin
	for i, size := range sizes {
		w := 0.0
		if i < len(weights) {
			w = weights[i]
		}
		t.Row(strconv.Itoa(i), strconv.Itoa(size), strconv.FormatFloat(w, 'g', 4, 64), strconv.Itoa(pos))
		pos += size + gap
	}
	return t.Render()
}

// elementTable lists every placed element with its cell and bounds.
func elementTable(l pipeline.Layout) string {
	t := newTable("Element", "Cell", "Span", "Bounds")
	for _, b := range l.Frame.Boxes {
		bounds := "empty"
		if !b.Bounds.IsEmpty() {
			bounds = fmt.Sprintf("%d,%d %s", b.Bounds.X, b.Bounds.Y, sizeString(b.Bounds.Width, b.Bounds.Height))
		}
		t.Row(b.ID,
			fmt.Sprintf("%d,%d", b.Cell.Column, b.Cell.Row),
			sizeString(b.Cell.Columns, b.Cell.Rows),
			bounds)
	}
	return t.Render()
}

func sizeString(w, h int) string {
	return fmt.Sprintf("%d×%d", w, h)
}
