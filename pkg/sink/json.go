package sink

import (
	"encoding/json"

	"github.com/matzehuels/gridbag/pkg/geom"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	grid  bool
	style Style
}

// WithJSONGrid includes column and row data in the output.
func WithJSONGrid() JSONOption { return func(r *jsonRenderer) { r.grid = true } }

// WithJSONStyle records the style name for round-trip rendering.
func WithJSONStyle(s Style) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Insets geom.Insets `json:"insets"`
	Style  Style       `json:"style,omitempty"`
	Grid   *Grid       `json:"grid,omitempty"`
	Boxes  []Box       `json:"boxes"`
}

// RenderJSON exports the frame as pretty-printed JSON. Boxes keep their
// document order.
func RenderJSON(f Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Width:  f.Size.Width,
		Height: f.Size.Height,
		Insets: f.Insets,
		Style:  r.style,
		Boxes:  f.Boxes,
	}
	if out.Boxes == nil {
		out.Boxes = []Box{}
	}
	if r.grid {
		g := f.Grid
		out.Grid = &g
	}
	return json.MarshalIndent(out, "", "  ")
}
