package gridbag

import (
	"testing"

	"github.com/matzehuels/gridbag/pkg/geom"
)

func TestTableStoresCopies(t *testing.T) {
	tbl := NewTable()
	e := newTestElement("a", 10, 10)

	con := Constraint{GridX: At(2), WeightX: 1, Insets: geom.InsetAll(3)}
	tbl.Set(e, con)

	con.WeightX = 9
	con.Insets.Top = 100
	got := tbl.Get(e)
	if got.WeightX != 1 || got.Insets.Top != 3 {
		t.Errorf("stored constraint changed with caller's copy: %+v", got)
	}

	got.WeightX = 7
	if tbl.Get(e).WeightX != 1 {
		t.Error("mutating a returned constraint changed the table")
	}
}

func TestTableDefaultFallback(t *testing.T) {
	tbl := NewTable()
	registered := newTestElement("a", 10, 10)
	unregistered := newTestElement("b", 10, 10)

	tbl.Set(registered, Constraint{Fill: Both})

	if got := tbl.Get(unregistered); got != DefaultConstraint() {
		t.Errorf("Get(unregistered) = %+v, want default", got)
	}

	tbl.SetDefault(Constraint{Anchor: North})
	if got := tbl.Get(unregistered).Anchor; got != North {
		t.Errorf("Get(unregistered).Anchor = %v, want north after SetDefault", got)
	}
	if got := tbl.Get(registered).Fill; got != Both {
		t.Errorf("Get(registered).Fill = %v, want both", got)
	}

	tbl.Remove(registered)
	if got := tbl.Get(registered).Anchor; got != North {
		t.Errorf("Get(removed).Anchor = %v, want current default", got)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}

func TestTableNonComparable(t *testing.T) {
	tbl := NewTable()
	e := nonComparable{tags: []string{"x"}}
	if tbl.Set(e, Constraint{Fill: Both}) {
		t.Error("Set(non-comparable) = true, want false")
	}
	if tbl.Set(nil, Constraint{}) {
		t.Error("Set(nil) = true, want false")
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	if _, ok := tbl.Lookup(e); ok {
		t.Error("Lookup(non-comparable) should report no entry")
	}
	tbl.Remove(e)
	if got := tbl.Get(e); got != DefaultConstraint() {
		t.Errorf("Get(non-comparable) = %+v, want default", got)
	}
}
