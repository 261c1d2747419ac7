package gridbag

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/observability"
)

// grid is the cached result of resolving and measuring a container.
type grid struct {
	items      []item
	cols, rows int
	x, y       axis
}

// stale returns why the grid no longer describes elems, or "" if it still
// does. The grid is stale when the visible elements differ from the ones it
// was built from, or when any of them reports a different size.
func (g *grid) stale(elems []Element) string {
	n := 0
	for _, e := range elems {
		if isNil(e) || hidden(e) {
			continue
		}
		if n >= len(g.items) || !sameElement(g.items[n].elem, e) {
			return "membership"
		}
		it := &g.items[n]
		if e.MinimumSize() != it.min || e.PreferredSize() != it.pref || e.MaximumSize() != it.max {
			return "element resize"
		}
		n++
	}
	if n != len(g.items) {
		return "membership"
	}
	return ""
}

func sameElement(a, b Element) bool {
	if !keyable(a) || !keyable(b) {
		return false
	}
	return a == b
}

// Layout is the grid layout engine for one container.
//
// Layout caches the measured grid between passes. It is VALID after a pass
// and INVALID after any mutation that could change the grid; the next query
// recomputes from scratch.
type Layout struct {
	table *Table
	opts  options

	grid   *grid
	info   *Info
	reason string

	size   geom.Size
	insets geom.Insets
	sized  bool
}

// New creates an engine.
func New(opts ...Option) *Layout {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Layout{table: NewTable(), opts: o, reason: "initial"}
}

// =============================================================================
// Constraints
// =============================================================================

// Register associates con with e, replacing any previous constraint.
func (l *Layout) Register(c Container, e Element, con Constraint) error {
	if err := checkContainer(c); err != nil {
		return err
	}
	if err := checkElement(e); err != nil {
		return err
	}
	l.table.Set(e, con)
	l.invalidate("register")
	return nil
}

// Unregister removes e's constraint. If e is still in the container it falls
// back to the default constraint.
func (l *Layout) Unregister(c Container, e Element) error {
	if err := checkContainer(c); err != nil {
		return err
	}
	if err := checkElement(e); err != nil {
		return err
	}
	l.table.Remove(e)
	l.invalidate("unregister")
	return nil
}

// SetDefaultConstraint replaces the constraint used by elements without one.
func (l *Layout) SetDefaultConstraint(c Container, con Constraint) error {
	if err := checkContainer(c); err != nil {
		return err
	}
	l.table.SetDefault(con)
	l.invalidate("default")
	return nil
}

// DefaultConstraint returns the constraint used by elements without one.
func (l *Layout) DefaultConstraint() Constraint {
	return l.table.Default()
}

// Constraint returns e's constraint, or the default if e has none.
func (l *Layout) Constraint(c Container, e Element) (Constraint, error) {
	if err := checkContainer(c); err != nil {
		return Constraint{}, err
	}
	if err := checkElement(e); err != nil {
		return Constraint{}, err
	}
	return l.table.Get(e), nil
}

// =============================================================================
// Cache State
// =============================================================================

// Invalidate discards the cached grid.
func (l *Layout) Invalidate(c Container) error {
	if err := checkContainer(c); err != nil {
		return err
	}
	l.invalidate("explicit")
	return nil
}

// Valid reports whether the cached grid can be reused.
func (l *Layout) Valid() bool {
	return l.grid != nil
}

func (l *Layout) invalidate(reason string) {
	wasValid := l.grid != nil
	l.grid, l.info, l.reason = nil, nil, reason
	if wasValid {
		observability.Engine().OnInvalidate(reason)
	}
}

// ensure returns the grid for c, recomputing it when invalid.
func (l *Layout) ensure(c Container) (g *grid, cached bool) {
	size, insets := c.Size(), c.Insets()
	elems := c.Elements()

	if l.grid != nil {
		if l.sized && (size != l.size || insets != l.insets) {
			l.invalidate("resize")
		} else if reason := l.grid.stale(elems); reason != "" {
			l.invalidate(reason)
		}
	}
	l.size, l.insets, l.sized = size, insets, true
	if l.grid != nil {
		return l.grid, true
	}

	start := time.Now()
	l.grid = l.compute(elems)
	elapsed := time.Since(start)

	l.opts.logger.Debug("recomputed grid",
		"reason", l.reason,
		"elements", len(l.grid.items),
		"columns", l.grid.cols,
		"rows", l.grid.rows,
		"duration", elapsed)
	observability.Engine().OnCompute(len(l.grid.items), l.grid.cols, l.grid.rows, elapsed)
	return l.grid, false
}

func (l *Layout) compute(elems []Element) *grid {
	items := make([]item, 0, len(elems))
	for _, e := range elems {
		if isNil(e) || hidden(e) {
			continue
		}
		items = append(items, item{
			elem: e,
			con:  l.table.Get(e).normalized(),
			min:  e.MinimumSize(),
			pref: e.PreferredSize(),
			max:  e.MaximumSize(),
		})
	}

	cols, rows := resolve(items)
	cols = min(max(cols, len(l.opts.columnWidths)), MaxCells)
	rows = min(max(rows, len(l.opts.rowHeights)), MaxCells)

	x, y := measure(items, cols, rows, &l.opts)
	return &grid{items: items, cols: cols, rows: rows, x: x, y: y}
}

// =============================================================================
// Sizes
// =============================================================================

// MinimumSize returns the smallest size that fits every element at its
// minimum size, insets included.
func (l *Layout) MinimumSize(c Container) (geom.Size, error) {
	if err := checkContainer(c); err != nil {
		return geom.Size{}, err
	}
	g, _ := l.ensure(c)
	return l.total(c, g.x.min, g.y.min), nil
}

// PreferredSize returns the size that fits every element at its preferred
// size, insets included.
func (l *Layout) PreferredSize(c Container) (geom.Size, error) {
	if err := checkContainer(c); err != nil {
		return geom.Size{}, err
	}
	g, _ := l.ensure(c)
	return l.total(c, g.x.pref, g.y.pref), nil
}

// MaximumSize is unbounded on both axes.
func (l *Layout) MaximumSize(c Container) (geom.Size, error) {
	if err := checkContainer(c); err != nil {
		return geom.Size{}, err
	}
	return geom.Unbounded(), nil
}

func (l *Layout) total(c Container, cols, rows []int) geom.Size {
	in := c.Insets()
	return geom.NewSize(
		saturate(int64(span(cols, l.opts.hgap))+int64(in.Horizontal())),
		saturate(int64(span(rows, l.opts.vgap))+int64(in.Vertical())),
	)
}

func saturate(v int64) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// =============================================================================
// Layout Pass
// =============================================================================

// Layout computes bounds for every visible element and writes them back
// with SetBounds.
func (l *Layout) Layout(c Container) error {
	if err := checkContainer(c); err != nil {
		return err
	}
	g, cached := l.ensure(c)
	info := l.arrange(c, g)
	for _, p := range info.Placements {
		p.Element.SetBounds(p.Bounds)
	}
	l.info = &info
	observability.Engine().OnLayout(len(info.Placements), cached)
	return nil
}

// Debug returns the grid of the most recent pass, or of a pass computed
// now without touching element bounds when none is cached.
func (l *Layout) Debug(c Container) (Info, error) {
	if err := checkContainer(c); err != nil {
		return Info{}, err
	}
	g, cached := l.ensure(c)
	if cached && l.info != nil {
		return l.info.clone(), nil
	}
	info := l.arrange(c, g)
	l.info = &info
	return info.clone(), nil
}

// Location returns the column and row containing the point (x, y).
func (l *Layout) Location(c Container, x, y int) (col, row int, err error) {
	info, err := l.Debug(c)
	if err != nil {
		return 0, 0, err
	}
	col, row = info.Location(x, y)
	return col, row, nil
}

// arrange distributes the container's space and places every item.
func (l *Layout) arrange(c Container, g *grid) Info {
	in := c.Insets()
	content := geom.NewRect(0, 0, c.Size().Width, c.Size().Height).Inset(in)

	widths, dx := distribute(g.x, content.Width, l.opts.hgap)
	heights, dy := distribute(g.y, content.Height, l.opts.vgap)
	origin := geom.Point{X: content.X + dx, Y: content.Y + dy}

	cols := newTrack(widths, origin.X, l.opts.hgap)
	rows := newTrack(heights, origin.Y, l.opts.vgap)

	info := Info{
		Columns:          g.cols,
		Rows:             g.rows,
		ColumnWidths:     widths,
		RowHeights:       heights,
		MinColumnWidths:  slices.Clone(g.x.min),
		MinRowHeights:    slices.Clone(g.y.min),
		PrefColumnWidths: slices.Clone(g.x.pref),
		PrefRowHeights:   slices.Clone(g.y.pref),
		ColumnWeights:    slices.Clone(g.x.weights),
		RowWeights:       slices.Clone(g.y.weights),
		Origin:           origin,
		Orientation:      l.opts.orientation,
		HGap:             l.opts.hgap,
		VGap:             l.opts.vgap,
		Placements:       make([]Placement, 0, len(g.items)),
		content:          content,
	}
	for i := range g.items {
		it := &g.items[i]
		cell := cellRect(it.cell, cols, rows)
		if l.opts.orientation == RightToLeft {
			cell = cell.MirrorX(content.X, content.Width)
		}
		info.Placements = append(info.Placements, Placement{
			Element: it.elem,
			Cell:    it.cell,
			Bounds:  place(it, cell, l.opts.orientation),
		})
	}
	return info
}
