package geom

import (
	"fmt"
	"math"
)

// MaxSize is the dimension reported for unbounded maximum sizes.
const MaxSize = math.MaxInt32

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width" toml:"width" bson:"width"`
	Height int `json:"height" toml:"height" bson:"height"`
}

// NewSize creates a Size.
func NewSize(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Unbounded returns a Size of MaxSize on both axes.
func Unbounded() Size {
	return Size{Width: MaxSize, Height: MaxSize}
}

// Grow returns s enlarged by the given amounts. Results saturate at MaxSize.
func (s Size) Grow(dw, dh int) Size {
	return Size{Width: saturate(s.Width + dw), Height: saturate(s.Height + dh)}
}

// Min returns the per-axis minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// Max returns the per-axis maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func saturate(v int) int {
	if v > MaxSize {
		return MaxSize
	}
	return v
}

// Point is a position in container coordinates.
type Point struct {
	X int `json:"x" toml:"x" bson:"x"`
	Y int `json:"y" toml:"y" bson:"y"`
}
