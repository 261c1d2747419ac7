package sink

import (
	"bytes"
	"fmt"
	"html"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  Style
	grid   bool
	labels bool
}

func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithGridLines() SVGOption    { return func(r *svgRenderer) { r.grid = true } }
func WithLabels() SVGOption       { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws the frame at 1 unit per pixel.
func RenderSVG(f Frame, opts ...SVGOption) []byte {
	r := svgRenderer{style: StyleFilled}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Size.Width, f.Size.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect class="panel" x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", w, h, insetColor.hex())
	c := f.content()
	if !c.IsEmpty() {
		fmt.Fprintf(&buf, `  <rect class="content" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			c.X, c.Y, c.Width, c.Height, background.hex())
	}

	if r.grid {
		renderGridLines(&buf, f)
	}
	for i, b := range f.Boxes {
		r.renderBox(&buf, i, b)
	}
	if r.labels {
		for _, b := range f.Boxes {
			renderLabel(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderBox(buf *bytes.Buffer, i int, b Box) {
	if b.Bounds.IsEmpty() {
		return
	}
	color := boxColor(i).hex()
	fill, opacity := color, "0.55"
	if r.style == StyleOutline {
		fill, opacity = "none", "1"
	}
	fmt.Fprintf(buf, `  <rect id="box-%s" class="box" x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="1"/>`+"\n",
		html.EscapeString(b.ID), b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height, fill, opacity, color)
}

func renderLabel(buf *bytes.Buffer, b Box) {
	if b.Bounds.IsEmpty() {
		return
	}
	cx := float64(b.Bounds.X) + float64(b.Bounds.Width)/2
	cy := float64(b.Bounds.Y) + float64(b.Bounds.Height)/2
	fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-size="11" fill="%s">%s</text>`+"\n",
		cx, cy, textColor.hex(), html.EscapeString(b.ID))
}

func renderGridLines(buf *bytes.Buffer, f Frame) {
	xs, ys := f.Grid.columnEdges(f.content()), f.Grid.rowEdges()
	if len(xs) == 0 || len(ys) == 0 {
		return
	}
	top, bottom := ys[0], ys[len(ys)-1]
	left, right := xs[0], xs[len(xs)-1]

	buf.WriteString(`  <g class="grid" stroke="` + lineColor.hex() + `" stroke-width="1" stroke-dasharray="4 3">` + "\n")
	for _, x := range xs {
		fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x, top, x, bottom)
	}
	for _, y := range ys {
		fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", left, y, right, y)
	}
	buf.WriteString("  </g>\n")
}
