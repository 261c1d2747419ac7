package gridbag

import "github.com/matzehuels/gridbag/pkg/geom"

type testElement struct {
	name           string
	min, pref, max geom.Size
	bounds         geom.Rect
	hidden         bool
	sets           int
}

// newTestElement creates an element whose minimum and preferred sizes are both w×h.
func newTestElement(name string, w, h int) *testElement {
	return &testElement{name: name, min: geom.NewSize(w, h), pref: geom.NewSize(w, h), max: geom.Unbounded()}
}

func (e *testElement) MinimumSize() geom.Size   { return e.min }
func (e *testElement) PreferredSize() geom.Size { return e.pref }
func (e *testElement) MaximumSize() geom.Size   { return e.max }
func (e *testElement) Visible() bool            { return !e.hidden }
func (e *testElement) SetBounds(r geom.Rect) {
	e.bounds = r
	e.sets++
}

type testContainer struct {
	elems  []Element
	size   geom.Size
	insets geom.Insets
}

func newTestContainer(w, h int) *testContainer {
	return &testContainer{size: geom.NewSize(w, h)}
}

func (c *testContainer) Elements() []Element { return c.elems }
func (c *testContainer) Size() geom.Size     { return c.size }
func (c *testContainer) Insets() geom.Insets { return c.insets }

// add appends e to the container and registers con with l.
func (c *testContainer) add(l *Layout, e *testElement, con Constraint) {
	c.elems = append(c.elems, e)
	if err := l.Register(c, e, con); err != nil {
		panic(err)
	}
}

// nonComparable is an element type that cannot be used as a map key.
type nonComparable struct {
	tags []string
}

func (nonComparable) MinimumSize() geom.Size   { return geom.Size{} }
func (nonComparable) PreferredSize() geom.Size { return geom.Size{} }
func (nonComparable) MaximumSize() geom.Size   { return geom.Unbounded() }
func (nonComparable) SetBounds(geom.Rect)      {}
