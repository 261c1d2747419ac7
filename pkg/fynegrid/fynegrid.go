// Package fynegrid exposes the grid engine as a fyne.Layout.
//
//	grid := fynegrid.New(gridbag.WithGaps(4, 4))
//	grid.Set(label, gridbag.Constraint{Anchor: gridbag.East})
//	grid.Set(entry, gridbag.Constraint{GridWidth: gridbag.Remainder(), WeightX: 1, Fill: gridbag.Horizontal})
//	form := container.New(grid, label, entry)
//
// Canvas object minimum sizes serve as both the minimum and preferred sizes
// of their elements; fyne has no separate preferred size.
package fynegrid

import (
	"math"

	"fyne.io/fyne/v2"

	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/gridbag"
)

// Layout arranges canvas objects on a grid.
type Layout struct {
	engine *gridbag.Layout
	panel  panel
	elems  map[fyne.CanvasObject]*element
	cons   map[fyne.CanvasObject]gridbag.Constraint
}

// New creates a layout. Options are passed to the engine.
func New(opts ...gridbag.Option) *Layout {
	return &Layout{
		engine: gridbag.New(opts...),
		elems:  make(map[fyne.CanvasObject]*element),
		cons:   make(map[fyne.CanvasObject]gridbag.Constraint),
	}
}

// Set assigns a constraint to o. Objects without one use the default.
func (l *Layout) Set(o fyne.CanvasObject, c gridbag.Constraint) {
	l.cons[o] = c
	if e, ok := l.elems[o]; ok {
		l.check("register", l.engine.Register(&l.panel, e, c))
	}
}

// Engine returns the underlying engine, for debug info and cell lookup.
func (l *Layout) Engine() *gridbag.Layout { return l.engine }

// Layout implements fyne.Layout.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.sync(objects)
	l.panel.size = geom.NewSize(int(size.Width), int(size.Height))
	l.check("layout", l.engine.Layout(&l.panel))
}

// MinSize implements fyne.Layout.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	l.sync(objects)
	s, err := l.engine.PreferredSize(&l.panel)
	if err != nil {
		l.check("min size", err)
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// check logs engine errors; fyne.Layout has no way to return them.
func (l *Layout) check(op string, err error) {
	if err != nil {
		l.engine.Logger().Error("grid layout failed", "op", op, "err", err)
	}
}

// sync mirrors objects into the panel, registering new ones and dropping
// those that left the container.
func (l *Layout) sync(objects []fyne.CanvasObject) {
	seen := make(map[fyne.CanvasObject]bool, len(objects))
	l.panel.elems = l.panel.elems[:0]
	for _, o := range objects {
		if o == nil || seen[o] {
			continue
		}
		seen[o] = true
		e, ok := l.elems[o]
		if !ok {
			e = &element{obj: o}
			l.elems[o] = e
			if c, ok := l.cons[o]; ok {
				l.check("register", l.engine.Register(&l.panel, e, c))
			}
		}
		l.panel.elems = append(l.panel.elems, e)
	}
	for o, e := range l.elems {
		if !seen[o] {
			l.check("unregister", l.engine.Unregister(&l.panel, e))
			delete(l.elems, o)
		}
	}
}

type panel struct {
	elems []gridbag.Element
	size  geom.Size
}

func (p *panel) Elements() []gridbag.Element { return p.elems }
func (p *panel) Size() geom.Size             { return p.size }
func (p *panel) Insets() geom.Insets         { return geom.Insets{} }

// element adapts a canvas object.
type element struct {
	obj fyne.CanvasObject
}

func (e *element) MinimumSize() geom.Size {
	s := e.obj.MinSize()
	return geom.NewSize(ceil(s.Width), ceil(s.Height))
}

func (e *element) PreferredSize() geom.Size { return e.MinimumSize() }
func (e *element) MaximumSize() geom.Size   { return geom.Unbounded() }
func (e *element) Visible() bool            { return e.obj.Visible() }

func (e *element) SetBounds(r geom.Rect) {
	e.obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	e.obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

func ceil(v float32) int { return int(math.Ceil(float64(v))) }

var _ fyne.Layout = (*Layout)(nil)
