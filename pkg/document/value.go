package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/gridbag/pkg/gridbag"
)

const (
	keywordRelative  = "relative"
	keywordRemainder = "remainder"
)

// Pos is a grid coordinate in a document: an integer index or "relative".
// Numbers outside the grid are clamped rather than rejected.
type Pos struct{ gridbag.Pos }

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Pos) UnmarshalTOML(v any) error {
	return p.set(v)
}

func (p *Pos) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}
	return p.set(v)
}

func (p Pos) MarshalJSON() ([]byte, error) {
	if n, ok := p.Index(); ok {
		return json.Marshal(n)
	}
	return json.Marshal(keywordRelative)
}

func (p *Pos) set(v any) error {
	switch v := v.(type) {
	case int64:
		p.Pos = gridbag.At(cells(float64(v)))
	case float64:
		p.Pos = gridbag.At(cells(v))
	case string:
		if !strings.EqualFold(v, keywordRelative) {
			return fmt.Errorf("grid position %q: want an index or %q", v, keywordRelative)
		}
		p.Pos = gridbag.Auto()
	default:
		return fmt.Errorf("grid position has type %T", v)
	}
	return nil
}

// Span is a cell count in a document: an integer, "relative" or "remainder".
type Span struct{ gridbag.Span }

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Span) UnmarshalTOML(v any) error {
	return s.set(v)
}

func (s *Span) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}
	return s.set(v)
}

func (s Span) MarshalJSON() ([]byte, error) {
	switch {
	case s.IsRemainder():
		return json.Marshal(keywordRemainder)
	case s.IsRelative():
		return json.Marshal(keywordRelative)
	}
	n, _ := s.Count()
	return json.Marshal(n)
}

func (s *Span) set(v any) error {
	switch v := v.(type) {
	case int64:
		s.Span = gridbag.Cells(cells(float64(v)))
	case float64:
		s.Span = gridbag.Cells(cells(v))
	case string:
		switch strings.ToLower(v) {
		case keywordRelative:
			s.Span = gridbag.Relative()
		case keywordRemainder:
			s.Span = gridbag.Remainder()
		default:
			return fmt.Errorf("grid span %q: want a count, %q or %q", v, keywordRelative, keywordRemainder)
		}
	default:
		return fmt.Errorf("grid span has type %T", v)
	}
	return nil
}

// cells converts a document number to a cell count, truncating fractions.
// Out-of-range values are left to [gridbag.At] and [gridbag.Cells] to clamp.
func cells(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return -1
	case v > gridbag.MaxCells:
		return gridbag.MaxCells
	}
	return int(v)
}

// decodeScalar decodes a JSON number or string.
func decodeScalar(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
