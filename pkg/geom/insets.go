package geom

// Insets is the space reserved on each side of a box.
type Insets struct {
	Top    int `json:"top,omitempty" toml:"top" bson:"top,omitempty"`
	Left   int `json:"left,omitempty" toml:"left" bson:"left,omitempty"`
	Bottom int `json:"bottom,omitempty" toml:"bottom" bson:"bottom,omitempty"`
	Right  int `json:"right,omitempty" toml:"right" bson:"right,omitempty"`
}

// InsetAll creates Insets with the same value on all sides.
func InsetAll(n int) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetTLBR creates Insets in top, left, bottom, right order.
func InsetTLBR(t, l, b, r int) Insets {
	return Insets{Top: t, Left: l, Bottom: b, Right: r}
}

// Horizontal returns the sum of Left and Right.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns the sum of Top and Bottom.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// IsZero returns true if all sides are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Mirror swaps Left and Right.
func (i Insets) Mirror() Insets {
	return Insets{Top: i.Top, Left: i.Right, Bottom: i.Bottom, Right: i.Left}
}
