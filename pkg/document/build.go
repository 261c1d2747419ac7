package document

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/geom"
	"github.com/matzehuels/gridbag/pkg/gridbag"
	"github.com/matzehuels/gridbag/pkg/host"
)

// Scene is a document instantiated as live host objects.
type Scene struct {
	Panel  *host.Panel
	Layout *gridbag.Layout
	Boxes  []*host.Box

	byID map[string]*host.Box
}

// Box returns the box with the given id.
func (s *Scene) Box(id string) (*host.Box, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// BuildOptions adjusts how a document is instantiated.
type BuildOptions struct {
	// Width and Height override the container size when positive.
	Width, Height int

	// Logger receives the engine's debug output.
	Logger *log.Logger
}

// Build creates the panel, the engine and one box per element, registers
// every constraint and sizes the panel. A container dimension left at 0 is
// set to the preferred size.
func (d *Document) Build(opts BuildOptions) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	engineOpts, err := d.Container.options()
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, gridbag.WithLogger(opts.Logger))
	}

	s := &Scene{
		Panel:  host.NewPanel(geom.Size{}, d.Container.Insets),
		Layout: gridbag.New(engineOpts...),
		Boxes:  make([]*host.Box, 0, len(d.Elements)),
		byID:   make(map[string]*host.Box, len(d.Elements)),
	}
	if d.Defaults != nil {
		def, _ := d.Defaults.constraint()
		if err := s.Layout.SetDefaultConstraint(s.Panel, def); err != nil {
			return nil, err
		}
	}

	for _, e := range d.Elements {
		b := e.box()
		s.Panel.Add(b)
		s.Boxes = append(s.Boxes, b)
		s.byID[e.ID] = b
		if e.Constraint == nil {
			continue
		}
		con, _ := e.Constraint.constraint()
		if err := s.Layout.Register(s.Panel, b, con); err != nil {
			return nil, err
		}
	}

	w, h := d.Container.Width, d.Container.Height
	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}
	if w == 0 || h == 0 {
		pref, err := s.Layout.PreferredSize(s.Panel)
		if err != nil {
			return nil, err
		}
		if w == 0 {
			w = pref.Width
		}
		if h == 0 {
			h = pref.Height
		}
	}
	if err := errors.ValidateDimensions(w, h); err != nil {
		return nil, err
	}
	s.Panel.Resize(geom.NewSize(w, h))
	return s, nil
}

func (e Element) box() *host.Box {
	b := host.NewBox(e.ID, e.Pref)
	if e.Min != nil {
		b.Min = *e.Min
	}
	if e.Max != nil {
		b.Max = *e.Max
	}
	b.Hidden = e.Hidden
	return b
}

func (c Container) orientation() (gridbag.Orientation, error) {
	if c.Orientation == "" {
		return gridbag.LeftToRight, nil
	}
	o, err := gridbag.ParseOrientation(c.Orientation)
	if err != nil {
		return o, errors.Wrap(errors.ErrCodeInvalidDocument, err, "container")
	}
	return o, nil
}

func (c Container) options() ([]gridbag.Option, error) {
	o, err := c.orientation()
	if err != nil {
		return nil, err
	}
	return []gridbag.Option{
		gridbag.WithGaps(c.HGap, c.VGap),
		gridbag.WithOrientation(o),
		gridbag.WithColumnWidths(c.ColumnWidths...),
		gridbag.WithRowHeights(c.RowHeights...),
		gridbag.WithColumnWeights(c.ColumnWeights...),
		gridbag.WithRowWeights(c.RowWeights...),
	}, nil
}

// constraint converts c, parsing the anchor and fill names.
func (c Constraint) constraint() (gridbag.Constraint, error) {
	con := gridbag.Constraint{
		GridX:      c.GridX.Pos,
		GridY:      c.GridY.Pos,
		GridWidth:  c.GridWidth.Span,
		GridHeight: c.GridHeight.Span,
		WeightX:    c.WeightX,
		WeightY:    c.WeightY,
		Insets:     c.Insets,
		IPadX:      c.IPadX,
		IPadY:      c.IPadY,
	}
	if c.Anchor != "" {
		a, err := gridbag.ParseAnchor(c.Anchor)
		if err != nil {
			return con, err
		}
		con.Anchor = a
	}
	if c.Fill != "" {
		f, err := gridbag.ParseFill(c.Fill)
		if err != nil {
			return con, err
		}
		con.Fill = f
	}
	return con, nil
}
