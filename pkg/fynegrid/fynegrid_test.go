package fynegrid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridbag/pkg/gridbag"
)

// fakeObject is a minimal fyne.CanvasObject.
type fakeObject struct {
	min    fyne.Size
	pos    fyne.Position
	size   fyne.Size
	hidden bool
}

func newFake(w, h float32) *fakeObject { return &fakeObject{min: fyne.NewSize(w, h)} }

func (f *fakeObject) MinSize() fyne.Size      { return f.min }
func (f *fakeObject) Move(p fyne.Position)    { f.pos = p }
func (f *fakeObject) Position() fyne.Position { return f.pos }
func (f *fakeObject) Resize(s fyne.Size)      { f.size = s }
func (f *fakeObject) Size() fyne.Size         { return f.size }
func (f *fakeObject) Hide()                   { f.hidden = true }
func (f *fakeObject) Visible() bool           { return !f.hidden }
func (f *fakeObject) Show()                   { f.hidden = false }
func (f *fakeObject) Refresh()                {}

func TestFormLayout(t *testing.T) {
	grid := New(gridbag.WithGaps(4, 0))
	label := newFake(40.5, 20)
	entry := newFake(100, 20)
	grid.Set(label, gridbag.Constraint{Anchor: gridbag.East})
	grid.Set(entry, gridbag.Constraint{GridWidth: gridbag.Remainder(), WeightX: 1, Fill: gridbag.Horizontal})
	objects := []fyne.CanvasObject{label, entry}

	if got, want := grid.MinSize(objects), fyne.NewSize(145, 20); got != want {
		t.Errorf("MinSize() = %v, want %v", got, want)
	}

	grid.Layout(objects, fyne.NewSize(300, 20))
	if label.pos != fyne.NewPos(0, 0) || label.size != fyne.NewSize(41, 20) {
		t.Errorf("label = %v %v", label.pos, label.size)
	}
	if entry.pos != fyne.NewPos(45, 0) || entry.size != fyne.NewSize(255, 20) {
		t.Errorf("entry = %v %v", entry.pos, entry.size)
	}
}

func TestHiddenAndRemovedObjects(t *testing.T) {
	grid := New()
	a, b := newFake(30, 10), newFake(50, 10)

	b.Hide()
	if got := grid.MinSize([]fyne.CanvasObject{a, b}); got.Width != 30 {
		t.Errorf("MinSize() with hidden = %v, want width 30", got)
	}
	b.Show()
	if got := grid.MinSize([]fyne.CanvasObject{a, b}); got.Width != 80 {
		t.Errorf("MinSize() after Show = %v, want width 80", got)
	}
	if got := grid.MinSize([]fyne.CanvasObject{b}); got.Width != 50 {
		t.Errorf("MinSize() after removal = %v, want width 50", got)
	}
	if len(grid.elems) != 1 {
		t.Errorf("tracked elements = %d, want 1", len(grid.elems))
	}
}

func TestSetAfterAdd(t *testing.T) {
	grid := New()
	a, b := newFake(30, 10), newFake(30, 10)
	objects := []fyne.CanvasObject{a, b}
	grid.Layout(objects, fyne.NewSize(60, 20))
	if b.pos.X != 30 {
		t.Fatalf("b.X = %v, want 30", b.pos.X)
	}

	grid.Set(b, gridbag.Constraint{GridX: gridbag.At(0), GridY: gridbag.At(1)})
	grid.Layout(objects, fyne.NewSize(60, 20))
	if b.pos != fyne.NewPos(15, 10) {
		t.Errorf("b moved to %v, want (15, 10)", b.pos)
	}
}

func TestMinSizePicksUpContentChanges(t *testing.T) {
	grid := New()
	a := newFake(30, 10)
	objects := []fyne.CanvasObject{a}
	grid.Layout(objects, fyne.NewSize(30, 10))

	a.min = fyne.NewSize(50, 12)
	if got := grid.MinSize(objects); got != fyne.NewSize(50, 12) {
		t.Errorf("MinSize() = %v, want 50x12", got)
	}
}

func TestEngineErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	grid := New(gridbag.WithLogger(log.New(&buf)))

	grid.check("layout", nil)
	if buf.Len() != 0 {
		t.Fatalf("nil error logged: %q", buf.String())
	}

	grid.check("layout", errors.New("boom"))
	out := buf.String()
	for _, want := range []string{"grid layout failed", "op=layout", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
