package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/gridbag/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l Layout, opts Options) (map[string][]byte, error) {
	style, err := sink.ParseStyle(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Grid {
		svgOpts = append(svgOpts, sink.WithGridLines())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l.Frame, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l.Frame,
				sink.WithScale(float64(opts.Scale)),
				sink.WithPNGSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l.Frame, sink.WithJSONGrid(), sink.WithJSONStyle(style))
		case FormatDOT:
			data = []byte(sink.ToDOT(l.Frame))
		case FormatDiagram:
			data, err = sink.RenderDiagram(ctx, l.Frame)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
