package pipeline

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/host"
	"github.com/matzehuels/gridbag/pkg/sink"
)

// =============================================================================
// Layout
// =============================================================================

// Layout is the serializable outcome of laying out one document.
type Layout struct {
	// ID identifies this computation. Cached layouts keep the ID they were
	// computed with.
	ID string `json:"id"`

	Frame     sink.Frame `json:"frame"`
	Minimum   geom.Size  `json:"minimum"`
	Preferred geom.Size  `json:"preferred"`

	// Hidden lists elements that took no space.
	Hidden []string `json:"hidden,omitempty"`
}

// Bounds returns the bounds of every placed element by id.
func (l Layout) Bounds() map[string]geom.Rect {
	out := make(map[string]geom.Rect, len(l.Frame.Boxes))
	for _, b := range l.Frame.Boxes {
		out[b.ID] = b.Bounds
	}
	return out
}

// Columns returns the number of grid columns.
func (l Layout) Columns() int { return len(l.Frame.Grid.ColumnWidths) }

// Rows returns the number of grid rows.
func (l Layout) Rows() int { return len(l.Frame.Grid.RowHeights) }

// MarshalLayout serializes a layout for caching.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a cached layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	err := json.Unmarshal(data, &l)
	return l, err
}

// ComputeLayout builds the document's panel, runs a layout pass and captures
// the resulting frame.
func ComputeLayout(doc *document.Document, opts Options) (Layout, error) {
	scene, err := doc.Build(document.BuildOptions{
		Width:  opts.Width,
		Height: opts.Height,
		Logger: opts.Logger,
	})
	if err != nil {
		return Layout{}, err
	}
	engine, panel := scene.Layout, scene.Panel

	minSize, err := engine.MinimumSize(panel)
	if err != nil {
		return Layout{}, err
	}
	prefSize, err := engine.PreferredSize(panel)
	if err != nil {
		return Layout{}, err
	}
	if err := engine.Layout(panel); err != nil {
		return Layout{}, err
	}
	info, err := engine.Debug(panel)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		ID:        uuid.NewString(),
		Minimum:   minSize,
		Preferred: prefSize,
		Frame: sink.Frame{
			Size:   panel.Size(),
			Insets: panel.Insets(),
			Grid:   sink.NewGrid(info),
			Boxes:  make([]sink.Box, 0, len(info.Placements)),
		},
	}
	for _, p := range info.Placements {
		b := p.Element.(*host.Box)
		l.Frame.Boxes = append(l.Frame.Boxes, sink.Box{ID: b.ID, Cell: p.Cell, Bounds: p.Bounds})
	}
	for _, b := range scene.Boxes {
		if b.Hidden {
			l.Hidden = append(l.Hidden, b.ID)
		}
	}
	return l, nil
}
