package sink

import (
	"fmt"
	"slices"
)

// Style selects how boxes are painted.
type Style string

const (
	StyleFilled  Style = "filled"
	StyleOutline Style = "outline"
)

// Styles lists the accepted style names.
var Styles = []Style{StyleFilled, StyleOutline}

// ParseStyle validates a style name. The empty string selects StyleFilled.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleFilled, nil
	}
	if slices.Contains(Styles, Style(s)) {
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown style %q", s)
}

type rgb struct{ r, g, b uint8 }

func (c rgb) hex() string { return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b) }

func (c rgb) floats() (float64, float64, float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

var (
	palette = []rgb{
		{0x4e, 0x79, 0xa7}, {0xf2, 0x8e, 0x2b}, {0xe1, 0x57, 0x59}, {0x76, 0xb7, 0xb2},
		{0x59, 0xa1, 0x4f}, {0xed, 0xc9, 0x48}, {0xb0, 0x7a, 0xa1}, {0xff, 0x9d, 0xa7},
	}
	background = rgb{0xfa, 0xfa, 0xfa}
	insetColor = rgb{0xee, 0xee, 0xee}
	lineColor  = rgb{0x99, 0x99, 0x99}
	textColor  = rgb{0x22, 0x22, 0x22}
)

func boxColor(i int) rgb { return palette[i%len(palette)] }
