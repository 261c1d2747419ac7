package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/pipeline"
	"github.com/matzehuels/gridbag/pkg/sink"
)

// Pixels covered by one terminal cell at the smallest zoom. Cells are
// roughly twice as tall as wide.
const (
	pxPerCol = 8
	pxPerRow = 16
)

var resizeSteps = []int{1, 5, 10, 50}

var (
	previewBoxColors  = []lipgloss.Color{"36", "35", "75", "220", "167", "141", "114", "209"}
	previewEmptyStyle = lipgloss.NewStyle().Foreground(colorDim)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PreviewModel - Interactive container resizing
// =============================================================================

// PreviewModel is the bubbletea model for "gridbag preview". Arrow keys
// resize the container and the layout is recomputed after every change.
type PreviewModel struct {
	Doc    *document.Document
	Width  int
	Height int
	Layout pipeline.Layout
	Err    error

	step     int // index into resizeSteps
	initialW int
	initialH int
	termW    int
	termH    int
}

// NewPreviewModel lays out doc at its own size and returns the model.
func NewPreviewModel(doc *document.Document) (PreviewModel, error) {
	l, err := pipeline.ComputeLayout(doc, pipeline.Options{})
	if err != nil {
		return PreviewModel{}, err
	}
	w, h := l.Frame.Size.Width, l.Frame.Size.Height
	return PreviewModel{
		Doc:      doc,
		Width:    w,
		Height:   h,
		Layout:   l,
		step:     1,
		initialW: w,
		initialH: h,
		termW:    80,
		termH:    24,
	}, nil
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := resizeSteps[m.step]
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			return m.resize(m.Width-step, m.Height), nil
		case "right", "l":
			return m.resize(m.Width+step, m.Height), nil
		case "up", "k":
			return m.resize(m.Width, m.Height-step), nil
		case "down", "j":
			return m.resize(m.Width, m.Height+step), nil
		case "+", "=":
			m.step = min(m.step+1, len(resizeSteps)-1)
		case "-", "_":
			m.step = max(m.step-1, 0)
		case "r":
			return m.resize(m.initialW, m.initialH), nil
		}
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
	}
	return m, nil
}

// resize lays the document out at w×h. Sizes below one pixel are clamped.
func (m PreviewModel) resize(w, h int) PreviewModel {
	m.Width, m.Height = max(w, 1), max(h, 1)
	m.Layout, m.Err = pipeline.ComputeLayout(m.Doc, pipeline.Options{Width: m.Width, Height: m.Height})
	return m
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · step %d", sizeString(m.Width, m.Height), resizeSteps[m.step])))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ width  ↑/↓ height  +/- step  r reset  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		return b.String()
	}
	b.WriteString(drawFrame(m.Layout.Frame, m.termW, max(m.termH-5, 4)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d×%d grid · min %s · pref %s",
		m.Layout.Columns(), m.Layout.Rows(),
		sizeString(m.Layout.Minimum.Width, m.Layout.Minimum.Height),
		sizeString(m.Layout.Preferred.Width, m.Layout.Preferred.Height))))
	return b.String()
}

// =============================================================================
// Character Canvas
// =============================================================================

// canvas is a terminal-cell raster; owner records which box drew each cell.
type canvas struct {
	cells [][]rune
	owner [][]int
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cells: make([][]rune, rows), owner: make([][]int, rows)}
	for y := range rows {
		c.cells[y] = []rune(strings.Repeat("·", cols))
		c.owner[y] = make([]int, cols)
		for x := range c.owner[y] {
			c.owner[y][x] = -1
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, owner int) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = r
	c.owner[y][x] = owner
}

// box draws a rectangle outline with label written along its top edge.
// Boxes one cell thick collapse to a solid bar.
func (c *canvas) box(x0, y0, x1, y1 int, label string, owner int) {
	if x0 == x1 || y0 == y1 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.set(x, y, '█', owner)
			}
		}
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', owner)
		c.set(x, y1, '─', owner)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', owner)
		c.set(x1, y, '│', owner)
		for x := x0 + 1; x < x1; x++ {
			c.set(x, y, ' ', owner)
		}
	}
	c.set(x0, y0, '┌', owner)
	c.set(x1, y0, '┐', owner)
	c.set(x0, y1, '└', owner)
	c.set(x1, y1, '┘', owner)

	for i, r := range []rune(label) {
		if x0+1+i >= x1 {
			break
		}
		c.set(x0+1+i, y0, r, owner)
	}
}

// render joins the canvas into styled lines, one style run per owner.
func (c *canvas) render() string {
	var b strings.Builder
	for y, row := range c.cells {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.owner[y][x] == c.owner[y][start] {
				continue
			}
			b.WriteString(cellStyle(c.owner[y][start]).Render(string(row[start:x])))
			start = x
		}
		if y < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(owner int) lipgloss.Style {
	if owner < 0 {
		return previewEmptyStyle
	}
	return lipgloss.NewStyle().Foreground(previewBoxColors[owner%len(previewBoxColors)])
}

// frameScale returns the pixels per column and row needed to fit a w×h
// frame into cols×rows terminal cells.
func frameScale(w, h, cols, rows int) (sx, sy int) {
	sx = max(pxPerCol, ceilDiv(w, max(cols, 1)))
	sy = max(pxPerRow, ceilDiv(h, max(rows, 1)))
	return sx, sy
}

// drawFrame rasterizes a frame into at most cols×rows terminal cells.
func drawFrame(f sink.Frame, cols, rows int) string {
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		return ""
	}
	sx, sy := frameScale(f.Size.Width, f.Size.Height, cols, rows)
	c := newCanvas(ceilDiv(f.Size.Width, sx), ceilDiv(f.Size.Height, sy))
	for i, box := range f.Boxes {
		r := box.Bounds
		if r.IsEmpty() {
			continue
		}
		c.box(r.X/sx, r.Y/sy, (r.Right()-1)/sx, (r.Bottom()-1)/sy, box.ID, i)
	}
	return c.render()
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
