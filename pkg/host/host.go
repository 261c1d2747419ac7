// Package host provides plain [gridbag.Element] and [gridbag.Container]
// implementations for layouts that are not backed by a widget toolkit:
// layout documents, the CLI, the HTTP server and tests.
package host

import (
	"slices"

	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/gridbag"
)

// Box is an element with fixed size hints. It records the bounds it is given.
type Box struct {
	ID     string
	Min    geom.Size
	Pref   geom.Size
	Max    geom.Size
	Hidden bool

	bounds geom.Rect
}

// NewBox creates a box whose minimum and preferred sizes are both pref and
// whose maximum size is unbounded.
func NewBox(id string, pref geom.Size) *Box {
	return &Box{ID: id, Min: pref, Pref: pref, Max: geom.Unbounded()}
}

func (b *Box) MinimumSize() geom.Size   { return b.Min }
func (b *Box) PreferredSize() geom.Size { return b.Pref }

// MaximumSize returns Max, or an unbounded size if Max was never set.
func (b *Box) MaximumSize() geom.Size {
	if b.Max.IsZero() {
		return geom.Unbounded()
	}
	return b.Max
}

func (b *Box) SetBounds(r geom.Rect) { b.bounds = r }
func (b *Box) Visible() bool         { return !b.Hidden }

// Bounds returns the bounds from the most recent layout pass.
func (b *Box) Bounds() geom.Rect { return b.bounds }

func (b *Box) String() string { return b.ID }

// Panel is a container holding elements in insertion order.
type Panel struct {
	elems  []gridbag.Element
	size   geom.Size
	insets geom.Insets
}

// NewPanel creates an empty panel of the given size.
func NewPanel(size geom.Size, insets geom.Insets) *Panel {
	return &Panel{size: size, insets: insets}
}

func (p *Panel) Elements() []gridbag.Element { return p.elems }
func (p *Panel) Size() geom.Size             { return p.size }
func (p *Panel) Insets() geom.Insets         { return p.insets }

// Add appends e unless it is already present.
func (p *Panel) Add(e gridbag.Element) {
	if !slices.Contains(p.elems, e) {
		p.elems = append(p.elems, e)
	}
}

// Remove deletes e and reports whether it was present.
func (p *Panel) Remove(e gridbag.Element) bool {
	i := slices.Index(p.elems, e)
	if i < 0 {
		return false
	}
	p.elems = slices.Delete(p.elems, i, i+1)
	return true
}

// Resize changes the panel size. The engine notices on its next pass.
func (p *Panel) Resize(size geom.Size) { p.size = size }

// SetInsets changes the panel insets.
func (p *Panel) SetInsets(in geom.Insets) { p.insets = in }

var (
	_ gridbag.Element   = (*Box)(nil)
	_ gridbag.Container = (*Panel)(nil)
)
