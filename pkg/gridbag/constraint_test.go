package gridbag

import (
	"math"
	"testing"
)

func TestZeroConstraintIsDefault(t *testing.T) {
	var c Constraint
	if !c.GridX.IsRelative() || !c.GridY.IsRelative() {
		t.Error("zero GridX/GridY should be relative")
	}
	if n, ok := c.GridWidth.Count(); !ok || n != 1 {
		t.Errorf("zero GridWidth.Count() = %d, %v, want 1, true", n, ok)
	}
	if n, ok := c.GridHeight.Count(); !ok || n != 1 {
		t.Errorf("zero GridHeight.Count() = %d, %v, want 1, true", n, ok)
	}
	if c.Anchor != Center {
		t.Errorf("zero Anchor = %v, want center", c.Anchor)
	}
	if c.Fill != None {
		t.Errorf("zero Fill = %v, want none", c.Fill)
	}
	if c != DefaultConstraint() {
		t.Error("DefaultConstraint() should equal the zero value")
	}
}

func TestMalformedFieldsAreClamped(t *testing.T) {
	if i, _ := At(-3).Index(); i != 0 {
		t.Errorf("At(-3).Index() = %d, want 0", i)
	}
	for _, n := range []int{0, -1, -100} {
		if got, _ := Cells(n).Count(); got != 1 {
			t.Errorf("Cells(%d).Count() = %d, want 1", n, got)
		}
	}

	if i, _ := At(math.MaxInt).Index(); i != MaxCells-1 {
		t.Errorf("At(MaxInt).Index() = %d, want %d", i, MaxCells-1)
	}
	if got, _ := Cells(math.MaxInt).Count(); got != MaxCells {
		t.Errorf("Cells(MaxInt).Count() = %d, want %d", got, MaxCells)
	}

	c := Constraint{WeightX: -2, WeightY: math.NaN(), IPadX: -4, IPadY: 3}.normalized()
	if c.WeightX != 0 || c.WeightY != 0 {
		t.Errorf("normalized weights = %v, %v, want 0, 0", c.WeightX, c.WeightY)
	}
	if c.IPadX != 0 || c.IPadY != 3 {
		t.Errorf("normalized ipad = %d, %d, want 0, 3", c.IPadX, c.IPadY)
	}
	if c := (Constraint{IPadX: math.MaxInt}).normalized(); c.IPadX != maxPad {
		t.Errorf("normalized ipad = %d, want %d", c.IPadX, maxPad)
	}
}

func TestSpanStretch(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		pos    int
		extent int
		want   int
	}{
		{"remainder from start", Remainder(), 0, 4, 4},
		{"remainder from middle", Remainder(), 1, 4, 3},
		{"relative from start", Relative(), 0, 4, 3},
		{"relative at last column", Relative(), 3, 4, 1},
		{"remainder past extent", Remainder(), 5, 4, 1},
		{"fixed ignores extent", Cells(2), 0, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.stretch(tt.pos, tt.extent); got != tt.want {
				t.Errorf("stretch(%d, %d) = %d, want %d", tt.pos, tt.extent, got, tt.want)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{"center", Center, false},
		{"NORTH_EAST", NorthEast, false},
		{"north-east", NorthEast, false},
		{"line_start", LineStart, false},
		{"FirstLineEnd", FirstLineEnd, false},
		{"below_baseline_trailing", BelowBaselineTrailing, false},
		{"middle", Center, true},
	}
	for _, tt := range tests {
		got, err := ParseAnchor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAnchor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnchor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAnchorRoundTrip(t *testing.T) {
	for a := Center; a <= BelowBaselineTrailing; a++ {
		got, err := ParseAnchor(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAnchor(%q) = %v, %v, want %v", a.String(), got, err, a)
		}
	}
}

func TestParseFillAndOrientation(t *testing.T) {
	for f := None; f <= Both; f++ {
		if got, err := ParseFill(f.String()); err != nil || got != f {
			t.Errorf("ParseFill(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseFill("diagonal"); err == nil {
		t.Error("ParseFill(diagonal) should fail")
	}
	if o, err := ParseOrientation("right-to-left"); err != nil || o != RightToLeft {
		t.Errorf("ParseOrientation(right-to-left) = %v, %v", o, err)
	}
	if o, err := ParseOrientation(""); err != nil || o != LeftToRight {
		t.Errorf("ParseOrientation(\"\") = %v, %v", o, err)
	}
}

func TestAnchorAlignment(t *testing.T) {
	tests := []struct {
		anchor Anchor
		o      Orientation
		h, v   align
	}{
		{Center, LeftToRight, alignCenter, alignCenter},
		{NorthWest, LeftToRight, alignStart, alignStart},
		{SouthEast, RightToLeft, alignEnd, alignEnd},
		{LineStart, LeftToRight, alignStart, alignCenter},
		{LineStart, RightToLeft, alignEnd, alignCenter},
		{FirstLineEnd, RightToLeft, alignStart, alignStart},
		{LastLineStart, LeftToRight, alignStart, alignEnd},
		{PageEnd, RightToLeft, alignCenter, alignEnd},
		{BaselineLeading, LeftToRight, alignCenter, alignCenter},
		{AboveBaseline, RightToLeft, alignCenter, alignCenter},
	}
	for _, tt := range tests {
		h, v := tt.anchor.alignment(tt.o)
		if h != tt.h || v != tt.v {
			t.Errorf("%v.alignment(%v) = %v, %v, want %v, %v", tt.anchor, tt.o, h, v, tt.h, tt.v)
		}
	}
}
