package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/geom"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Document is a decoded layout document.
type Document struct {
	Container Container   `toml:"container" json:"container"`
	Defaults  *Constraint `toml:"defaults" json:"defaults,omitempty"`
	Elements  []Element   `toml:"element" json:"elements"`
}

// Container describes the panel being laid out.
type Container struct {
	Width         int         `toml:"width" json:"width"`
	Height        int         `toml:"height" json:"height"`
	Insets        geom.Insets `toml:"insets" json:"insets"`
	HGap          int         `toml:"hgap" json:"hgap,omitempty"`
	VGap          int         `toml:"vgap" json:"vgap,omitempty"`
	Orientation   string      `toml:"orientation" json:"orientation,omitempty"`
	ColumnWidths  []int       `toml:"column_widths" json:"column_widths,omitempty"`
	RowHeights    []int       `toml:"row_heights" json:"row_heights,omitempty"`
	ColumnWeights []float64   `toml:"column_weights" json:"column_weights,omitempty"`
	RowWeights    []float64   `toml:"row_weights" json:"row_weights,omitempty"`
}

// Element is one box in the panel.
type Element struct {
	ID         string      `toml:"id" json:"id"`
	Min        *geom.Size  `toml:"min" json:"min,omitempty"`
	Pref       geom.Size   `toml:"pref" json:"pref"`
	Max        *geom.Size  `toml:"max" json:"max,omitempty"`
	Hidden     bool        `toml:"hidden" json:"hidden,omitempty"`
	Constraint *Constraint `toml:"constraint" json:"constraint,omitempty"`
}

// Constraint is the document form of [gridbag.Constraint].
type Constraint struct {
	GridX      Pos         `toml:"gridx" json:"gridx"`
	GridY      Pos         `toml:"gridy" json:"gridy"`
	GridWidth  Span        `toml:"gridwidth" json:"gridwidth"`
	GridHeight Span        `toml:"gridheight" json:"gridheight"`
	WeightX    float64     `toml:"weightx" json:"weightx,omitempty"`
	WeightY    float64     `toml:"weighty" json:"weighty,omitempty"`
	Anchor     string      `toml:"anchor" json:"anchor,omitempty"`
	Fill       string      `toml:"fill" json:"fill,omitempty"`
	Insets     geom.Insets `toml:"insets" json:"insets"`
	IPadX      int         `toml:"ipadx" json:"ipadx,omitempty"`
	IPadY      int         `toml:"ipady" json:"ipady,omitempty"`
}

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format from %q (want .toml or .json)", path)
}

// ContentType returns the HTTP Content-Type used to send documents of format f.
func (f Format) ContentType() string {
	if f == FormatTOML {
		return "application/toml"
	}
	return "application/json"
}

// FormatFromContentType returns the format for an HTTP Content-Type.
// JSON is assumed when the type is empty.
func FormatFromContentType(ct string) (Format, error) {
	mt, _, _ := strings.Cut(ct, ";")
	switch strings.TrimSpace(strings.ToLower(mt)) {
	case "", "application/json":
		return FormatJSON, nil
	case "application/toml", "text/toml", "application/x-toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported content type %q", ct)
}

// Read decodes a document from r and validates it.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undec[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte, format Format) (*Document, error) {
	return Read(bytes.NewReader(data), format)
}

// Load reads the document at path, selecting the format by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Validate checks ids, sizes and enumerated names.
func (d *Document) Validate() error {
	c := d.Container
	if err := errors.ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.HGap < 0 || c.VGap < 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "gaps must be non-negative")
	}
	if _, err := c.orientation(); err != nil {
		return err
	}
	if d.Defaults != nil {
		if _, err := d.Defaults.constraint(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "defaults")
		}
	}

	seen := make(map[string]bool, len(d.Elements))
	for i, e := range d.Elements {
		if err := errors.ValidateElementID(e.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "element %d", i)
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate element id %q", e.ID)
		}
		seen[e.ID] = true

		for _, s := range []*geom.Size{&e.Pref, e.Min, e.Max} {
			if s != nil && (s.Width < 0 || s.Height < 0) {
				return errors.New(errors.ErrCodeInvalidDocument, "element %q: sizes must be non-negative", e.ID)
			}
		}
		if e.Constraint != nil {
			if _, err := e.Constraint.constraint(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDocument, err, "element %q", e.ID)
			}
		}
	}
	return nil
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (Element, bool) {
	for _, e := range d.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
