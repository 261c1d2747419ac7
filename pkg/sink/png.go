package sink

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svg   svgRenderer
	scale float64
}

// WithPNGSVGOptions applies SVG options (style, grid lines, labels) to the raster output.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) {
		for _, opt := range opts {
			opt(&r.svg)
		}
	}
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterizes the frame.
func RenderPNG(f Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{svg: svgRenderer{style: StyleFilled}, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	w := max(int(float64(f.Size.Width)*r.scale), 1)
	h := max(int(float64(f.Size.Height)*r.scale), 1)
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetRGB(insetColor.floats())
	dc.Clear()
	if c := f.content(); !c.IsEmpty() {
		dc.SetRGB(background.floats())
		dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
		dc.Fill()
	}

	if r.svg.grid {
		drawGridLines(dc, f)
	}
	for i, b := range f.Boxes {
		if b.Bounds.IsEmpty() {
			continue
		}
		x, y := float64(b.Bounds.X), float64(b.Bounds.Y)
		bw, bh := float64(b.Bounds.Width), float64(b.Bounds.Height)
		cr, cg, cb := boxColor(i).floats()
		if r.svg.style != StyleOutline {
			dc.SetRGBA(cr, cg, cb, 0.55)
			dc.DrawRectangle(x, y, bw, bh)
			dc.Fill()
		}
		dc.SetRGB(cr, cg, cb)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, bw-1, bh-1)
		dc.Stroke()
	}
	if r.svg.labels {
		dc.SetRGB(textColor.floats())
		for _, b := range f.Boxes {
			if b.Bounds.IsEmpty() {
				continue
			}
			cx := float64(b.Bounds.X) + float64(b.Bounds.Width)/2
			cy := float64(b.Bounds.Y) + float64(b.Bounds.Height)/2
			dc.DrawStringAnchored(b.ID, cx, cy, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGridLines(dc *gg.Context, f Frame) {
	xs, ys := f.Grid.columnEdges(f.content()), f.Grid.rowEdges()
	if len(xs) == 0 || len(ys) == 0 {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.SetRGB(lineColor.floats())
	dc.SetLineWidth(1)
	dc.SetDash(4, 3)
	for _, x := range xs {
		dc.DrawLine(float64(x), float64(ys[0]), float64(x), float64(ys[len(ys)-1]))
		dc.Stroke()
	}
	for _, y := range ys {
		dc.DrawLine(float64(xs[0]), float64(y), float64(xs[len(xs)-1]), float64(y))
		dc.Stroke()
	}
}
