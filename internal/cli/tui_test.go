package cli

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/gridbag"
	"github.com/matzehuels/gridbag/pkg/sink"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func newPreview(t *testing.T) PreviewModel {
	t.Helper()
	doc, err := document.Parse([]byte(sidebarTOML), document.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewPreviewModel(doc)
	if err != nil {
		t.Fatalf("NewPreviewModel() error: %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m PreviewModel, keys ...string) PreviewModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(PreviewModel)
	}
	return m
}

func TestPreviewResize(t *testing.T) {
	m := newPreview(t)
	if m.Width != 200 || m.Height != 100 {
		t.Fatalf("initial size = %dx%d, want 200x100", m.Width, m.Height)
	}

	m = send(m, "right", "up")
	if m.Width != 205 || m.Height != 95 {
		t.Errorf("size after right, up = %dx%d, want 205x95", m.Width, m.Height)
	}
	if got, want := m.Layout.Bounds()["main"], geom.NewRect(40, 0, 165, 95); got != want {
		t.Errorf("main = %v, want %v", got, want)
	}

	m = send(m, "+", "left", "left")
	if m.Width != 185 {
		t.Errorf("width after step 10 = %d, want 185", m.Width)
	}

	m = send(m, "r")
	if m.Width != 200 || m.Height != 100 {
		t.Errorf("size after reset = %dx%d, want 200x100", m.Width, m.Height)
	}
}

func TestPreviewClampsSize(t *testing.T) {
	m := newPreview(t)
	m = send(m, "+", "+", "+") // step 50, capped at the largest
	m = send(m, "left", "left", "left", "left", "left")
	if m.Width != 1 {
		t.Errorf("width = %d, want clamp at 1", m.Width)
	}
	if m.Err != nil {
		t.Errorf("layout error at width 1: %v", m.Err)
	}
}

func TestPreviewQuit(t *testing.T) {
	m := newPreview(t)
	for _, k := range []string{"q", "esc"} {
		msg := key(k)
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%q did not return a command", k)
		}
	}
}

func TestPreviewView(t *testing.T) {
	m := newPreview(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := stripANSI(next.(PreviewModel).View())

	for _, want := range []string{"Layout Preview", "200×100", "┌sid", "┌main", "2×1 grid"} {
		if !regexp.MustCompile(regexp.QuoteMeta(want)).MatchString(view) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	f := sink.Frame{
		Size: geom.NewSize(80, 32),
		Boxes: []sink.Box{
			{ID: "a", Bounds: geom.NewRect(0, 0, 40, 32)},
			{ID: "b", Bounds: geom.NewRect(40, 0, 40, 32)},
			{ID: "gone", Cell: gridbag.Cell{Column: 2}, Bounds: geom.Rect{}},
		},
	}

	got := stripANSI(drawFrame(f, 80, 10))
	want := "┌a──┐┌b──┐\n└───┘└───┘"
	if got != want {
		t.Errorf("drawFrame() =\n%s\nwant\n%s", got, want)
	}
}

func TestDrawFrameThinBoxesAndScale(t *testing.T) {
	f := sink.Frame{
		Size:  geom.NewSize(16, 32),
		Boxes: []sink.Box{{ID: "bar", Bounds: geom.NewRect(0, 16, 16, 4)}},
	}
	if got, want := stripANSI(drawFrame(f, 80, 10)), "··\n██"; got != want {
		t.Errorf("drawFrame() = %q, want %q", got, want)
	}

	if sx, sy := frameScale(1600, 800, 80, 20); sx != 20 || sy != 40 {
		t.Errorf("frameScale() = %d, %d, want 20, 40", sx, sy)
	}
	if drawFrame(sink.Frame{}, 80, 10) != "" {
		t.Error("empty frame should draw nothing")
	}
}
