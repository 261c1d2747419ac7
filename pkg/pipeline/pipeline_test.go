package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/gridbag/pkg/cache"
	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/geom"
)

const testTOML = `
[container]
width = 200
height = 100

[[element]]
id = "side"
pref = { width = 40, height = 20 }
constraint = { gridheight = "remainder", fill = "vertical" }

[[element]]
id = "main"
pref = { width = 100, height = 50 }
constraint = { gridwidth = "remainder", weightx = 1, weighty = 1, fill = "both" }

[[element]]
id = "ghost"
pref = { width = 10, height = 10 }
hidden = true
`

const testJSON = `{
  "container": {"width": 200, "height": 100},
  "elements": [
    {"id": "side", "pref": {"width": 40, "height": 20}, "constraint": {"gridheight": "remainder", "fill": "vertical"}},
    {"id": "main", "pref": {"width": 100, "height": 50}, "constraint": {"gridwidth": "remainder", "weightx": 1, "weighty": 1, "fill": "both"}},
    {"id": "ghost", "pref": {"width": 10, "height": 10}, "hidden": true}
  ]
}`

func parseTest(t *testing.T) *document.Document {
	t.Helper()
	doc, _, err := Parse(context.Background(), []byte(testTOML), document.FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"dot", false},
		{"diagram", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"filled", false},
		{"outline", false},
		{"", false},
		{"handdrawn", true},
	}
	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Style != string(DefaultStyle) || o.Scale != DefaultScale || o.Logger == nil {
		t.Errorf("defaults not applied: %+v", o)
	}

	bad := []Options{
		{Width: -1},
		{Scale: MaxScale + 1},
		{Formats: []string{"gif"}},
		{Style: "sketchy"},
	}
	for _, o := range bad {
		if err := o.ValidateAndSetDefaults(); err == nil {
			t.Errorf("ValidateAndSetDefaults(%+v) error = nil", o)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Style: "outline", Scale: 3, Labels: true}
	if got := o.ArtifactKeyOpts(FormatDOT); got != (cache.ArtifactKeyOpts{Format: FormatDOT}) {
		t.Errorf("dot key opts = %+v, want format only", got)
	}
	if got := o.ArtifactKeyOpts(FormatSVG); got.Scale != 0 || !got.Labels || got.Style != "outline" {
		t.Errorf("svg key opts = %+v", got)
	}
	if got := o.ArtifactKeyOpts(FormatPNG); got.Scale != 3 {
		t.Errorf("png key opts = %+v, want scale 3", got)
	}
}

func TestDocumentHashIgnoresEncoding(t *testing.T) {
	ctx := context.Background()
	_, h1, err := Parse(ctx, []byte(testTOML), document.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	_, h2, err := Parse(ctx, []byte(testJSON), document.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("hashes differ for equivalent documents: %s vs %s", h1, h2)
	}
}

func TestComputeLayout(t *testing.T) {
	l, err := ComputeLayout(parseTest(t), Options{})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	want := map[string]geom.Rect{
		"side": geom.NewRect(0, 0, 40, 100),
		"main": geom.NewRect(40, 0, 160, 100),
	}
	got := l.Bounds()
	if len(got) != len(want) {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	for id, r := range want {
		if got[id] != r {
			t.Errorf("%s = %v, want %v", id, got[id], r)
		}
	}
	if l.Preferred != geom.NewSize(140, 50) {
		t.Errorf("Preferred = %v, want 140x50", l.Preferred)
	}
	if len(l.Hidden) != 1 || l.Hidden[0] != "ghost" {
		t.Errorf("Hidden = %v, want [ghost]", l.Hidden)
	}
	if l.Columns() != 2 || l.Rows() != 1 {
		t.Errorf("extent = %dx%d, want 2x1", l.Columns(), l.Rows())
	}
	if l.ID == "" {
		t.Error("ID should be set")
	}
}

func TestComputeLayoutSizeOverride(t *testing.T) {
	l, err := ComputeLayout(parseTest(t), Options{Width: 300, Height: 60})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if l.Frame.Size != geom.NewSize(300, 60) {
		t.Errorf("Size = %v, want 300x60", l.Frame.Size)
	}
	if got := l.Bounds()["main"]; got != geom.NewRect(40, 0, 260, 60) {
		t.Errorf("main = %v", got)
	}
}

func TestRenderFormats(t *testing.T) {
	l, err := ComputeLayout(parseTest(t), Options{})
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Formats: ValidFormats, Labels: true}
	if err := opts.ValidateForRender(); err != nil {
		t.Fatal(err)
	}
	artifacts, err := Render(context.Background(), l, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	checks := map[string]func([]byte) bool{
		FormatSVG:     func(b []byte) bool { return bytes.Contains(b, []byte(`id="box-main"`)) },
		FormatPNG:     func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG")) },
		FormatJSON:    func(b []byte) bool { return bytes.Contains(b, []byte(`"id": "side"`)) },
		FormatDOT:     func(b []byte) bool { return bytes.HasPrefix(b, []byte("digraph")) },
		FormatDiagram: func(b []byte) bool { return bytes.Contains(b, []byte("<svg")) },
	}
	for format, ok := range checks {
		if !ok(artifacts[format]) {
			t.Errorf("%s artifact unexpected: %.80q", format, artifacts[format])
		}
	}
}

func TestRunnerCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()
	doc := parseTest(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want misses", first.CacheInfo)
	}
	if first.Stats.ElementCount != 2 || first.Stats.Columns != 2 {
		t.Errorf("Stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want hits", second.CacheInfo)
	}
	if second.Layout.ID != first.Layout.ID {
		t.Error("cached layout should keep its id")
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached SVG differs")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh CacheInfo = %+v, want misses", third.CacheInfo)
	}
	if third.Layout.ID == first.Layout.ID {
		t.Error("refresh should compute a new layout")
	}
	// A new id over the same frame still maps to the same artifacts.
	opts.Refresh = false
	_, hit, err := r.RenderWithCacheInfo(ctx, third.Layout, opts)
	if err != nil || !hit {
		t.Errorf("RenderWithCacheInfo() hit = %v, err = %v, want hit", hit, err)
	}
}

func TestRunnerErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), parseTest(t), Options{Formats: []string{"pdf"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}

	_, _, err = Parse(context.Background(), []byte("{"), document.FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Parse() error = %v", err)
	}
}
