package gridbag

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/gridbag/pkg/geom"
)

// =============================================================================
// Positions and Spans
// =============================================================================

// MaxCells bounds the number of columns and rows in a grid. Positions and
// spans beyond it are clamped.
const MaxCells = 1 << 14

// Pos is a column or row coordinate. It is either a fixed cell index or
// relative, meaning the element follows the previously placed one.
// The zero value is relative.
type Pos struct {
	fixed bool
	index int
}

// At returns a fixed position. Indexes clamp to [0, MaxCells).
func At(n int) Pos {
	return Pos{fixed: true, index: clamp(n, 0, MaxCells-1)}
}

// Auto returns a relative position.
func Auto() Pos {
	return Pos{}
}

// IsRelative reports whether p follows the previous element.
func (p Pos) IsRelative() bool { return !p.fixed }

// Index returns the fixed cell index and true, or 0 and false for a relative position.
func (p Pos) Index() (int, bool) { return p.index, p.fixed }

// value returns the index, or -1 when relative.
func (p Pos) value() int {
	if !p.fixed {
		return -1
	}
	return p.index
}

func (p Pos) String() string {
	if !p.fixed {
		return "relative"
	}
	return strconv.Itoa(p.index)
}

type spanKind uint8

const (
	spanCells spanKind = iota
	spanRelative
	spanRemainder
)

// Span is the number of columns or rows an element covers. Besides a fixed
// count it can be [Relative] (up to the next-to-last column or row) or
// [Remainder] (through the last one). The zero value spans one cell.
type Span struct {
	kind spanKind
	n    int
}

// Cells returns a fixed span. Counts clamp to [1, MaxCells].
func Cells(n int) Span {
	return Span{kind: spanCells, n: clamp(n, 1, MaxCells)}
}

// Relative returns a span ending at the next-to-last column or row.
func Relative() Span {
	return Span{kind: spanRelative}
}

// Remainder returns a span ending at the last column or row.
func Remainder() Span {
	return Span{kind: spanRemainder}
}

// IsRemainder reports whether s extends through the last column or row.
func (s Span) IsRemainder() bool { return s.kind == spanRemainder }

// IsRelative reports whether s extends through the next-to-last column or row.
func (s Span) IsRelative() bool { return s.kind == spanRelative }

// Count returns the fixed cell count and true, or 0 and false for the sentinels.
func (s Span) Count() (int, bool) {
	if s.kind != spanCells {
		return 0, false
	}
	return max(s.n, 1), true
}

// provisional returns the span used while the grid extent is unknown.
// Sentinels occupy a single cell.
func (s Span) provisional() int {
	n, _ := s.Count()
	return max(n, 1)
}

// stretch resolves a sentinel span starting at pos against the grid extent.
func (s Span) stretch(pos, extent int) int {
	switch s.kind {
	case spanRemainder:
		return max(extent-pos, 1)
	case spanRelative:
		return max(extent-pos-1, 1)
	}
	return s.provisional()
}

func (s Span) String() string {
	switch s.kind {
	case spanRemainder:
		return "remainder"
	case spanRelative:
		return "relative"
	}
	return strconv.Itoa(max(s.n, 1))
}

// =============================================================================
// Anchor
// =============================================================================

// Anchor places content within its cell when fill leaves slack.
type Anchor uint8

// Compass anchors.
const (
	Center Anchor = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Orientation-relative anchors. Line anchors follow the container's
// [Orientation]; page anchors are always top or bottom.
const (
	PageStart Anchor = iota + NorthWest + 1
	PageEnd
	LineStart
	LineEnd
	FirstLineStart
	FirstLineEnd
	LastLineStart
	LastLineEnd
)

// Baseline anchors. Baseline alignment is not computed; all of these place
// content as [Center].
const (
	Baseline Anchor = iota + LastLineEnd + 1
	BaselineLeading
	BaselineTrailing
	AboveBaseline
	AboveBaselineLeading
	AboveBaselineTrailing
	BelowBaseline
	BelowBaselineLeading
	BelowBaselineTrailing
)

var anchorNames = [...]string{
	Center:                "center",
	North:                 "north",
	NorthEast:             "northeast",
	East:                  "east",
	SouthEast:             "southeast",
	South:                 "south",
	SouthWest:             "southwest",
	West:                  "west",
	NorthWest:             "northwest",
	PageStart:             "page_start",
	PageEnd:               "page_end",
	LineStart:             "line_start",
	LineEnd:               "line_end",
	FirstLineStart:        "first_line_start",
	FirstLineEnd:          "first_line_end",
	LastLineStart:         "last_line_start",
	LastLineEnd:           "last_line_end",
	Baseline:              "baseline",
	BaselineLeading:       "baseline_leading",
	BaselineTrailing:      "baseline_trailing",
	AboveBaseline:         "above_baseline",
	AboveBaselineLeading:  "above_baseline_leading",
	AboveBaselineTrailing: "above_baseline_trailing",
	BelowBaseline:         "below_baseline",
	BelowBaselineLeading:  "below_baseline_leading",
	BelowBaselineTrailing: "below_baseline_trailing",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("anchor(%d)", uint8(a))
}

// ParseAnchor parses an anchor name. Case, '-' and '_' are ignored, so
// "NORTH_EAST", "north-east" and "northeast" are equivalent.
func ParseAnchor(s string) (Anchor, error) {
	key := foldName(s)
	for i, name := range anchorNames {
		if foldName(name) == key {
			return Anchor(i), nil
		}
	}
	return Center, fmt.Errorf("unknown anchor %q", s)
}

type align int8

const (
	alignStart align = iota
	alignCenter
	alignEnd
)

// alignment maps a to physical horizontal and vertical alignment.
func (a Anchor) alignment(o Orientation) (h, v align) {
	lead, trail := alignStart, alignEnd
	if o == RightToLeft {
		lead, trail = alignEnd, alignStart
	}
	switch a {
	case North:
		return alignCenter, alignStart
	case NorthEast:
		return alignEnd, alignStart
	case East:
		return alignEnd, alignCenter
	case SouthEast:
		return alignEnd, alignEnd
	case South:
		return alignCenter, alignEnd
	case SouthWest:
		return alignStart, alignEnd
	case West:
		return alignStart, alignCenter
	case NorthWest:
		return alignStart, alignStart
	case PageStart:
		return alignCenter, alignStart
	case PageEnd:
		return alignCenter, alignEnd
	case LineStart:
		return lead, alignCenter
	case LineEnd:
		return trail, alignCenter
	case FirstLineStart:
		return lead, alignStart
	case FirstLineEnd:
		return trail, alignStart
	case LastLineStart:
		return lead, alignEnd
	case LastLineEnd:
		return trail, alignEnd
	}
	return alignCenter, alignCenter
}

// =============================================================================
// Fill and Orientation
// =============================================================================

// Fill controls how content stretches to its cell.
type Fill uint8

const (
	None Fill = iota
	Horizontal
	Vertical
	Both
)

var fillNames = [...]string{None: "none", Horizontal: "horizontal", Vertical: "vertical", Both: "both"}

func (f Fill) String() string {
	if int(f) < len(fillNames) {
		return fillNames[f]
	}
	return fmt.Sprintf("fill(%d)", uint8(f))
}

// ParseFill parses a fill name, ignoring case.
func ParseFill(s string) (Fill, error) {
	key := foldName(s)
	for i, name := range fillNames {
		if name == key {
			return Fill(i), nil
		}
	}
	return None, fmt.Errorf("unknown fill %q", s)
}

func (f Fill) horizontal() bool { return f == Horizontal || f == Both }
func (f Fill) vertical() bool   { return f == Vertical || f == Both }

// Orientation is the direction columns are laid out in.
type Orientation uint8

const (
	LeftToRight Orientation = iota
	RightToLeft
)

func (o Orientation) String() string {
	if o == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ParseOrientation accepts "ltr", "rtl" and their long forms.
func ParseOrientation(s string) (Orientation, error) {
	switch foldName(s) {
	case "", "ltr", "lefttoright":
		return LeftToRight, nil
	case "rtl", "righttoleft":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("unknown orientation %q", s)
}

func foldName(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// =============================================================================
// Constraint
// =============================================================================

// Constraint describes where and how an element is placed in the grid.
//
// The zero value is the default constraint: relative position, one cell
// span, no weight, centered, no fill, no insets and no padding.
type Constraint struct {
	GridX, GridY          Pos
	GridWidth, GridHeight Span

	// WeightX and WeightY are the element's claim on surplus space.
	// Negative, NaN and infinite weights are treated as 0.
	WeightX, WeightY float64

	Anchor Anchor
	Fill   Fill

	// Insets is the margin between the cell and the element.
	Insets geom.Insets

	// IPadX and IPadY are added to the element's own size. Negative values
	// are treated as 0.
	IPadX, IPadY int
}

// DefaultConstraint returns the default constraint.
func DefaultConstraint() Constraint {
	return Constraint{}
}

// normalized returns c with malformed numeric fields clamped.
func (c Constraint) normalized() Constraint {
	c.WeightX = cleanWeight(c.WeightX)
	c.WeightY = cleanWeight(c.WeightY)
	c.IPadX = clamp(c.IPadX, 0, maxPad)
	c.IPadY = clamp(c.IPadY, 0, maxPad)
	return c
}

const maxPad = 1 << 20

func cleanWeight(w float64) float64 {
	if math.IsNaN(w) || w < 0 || math.IsInf(w, 0) {
		return 0
	}
	return w
}
