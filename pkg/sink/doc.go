// Package sink renders laid-out panels.
//
// # Overview
//
// A "sink" turns a [Frame], the bounds and grid computed for one panel,
// into an output format:
//
//   - SVG: boxes, labels and optional grid lines
//   - PNG: the same picture rasterized with gg
//   - JSON: bounds and grid data for external tools
//   - DOT: the grid as a Graphviz HTML table, with spans as colspan/rowspan
//
// # SVG Output
//
//	svg := sink.RenderSVG(frame,
//	    sink.WithStyle(sink.StyleOutline),
//	    sink.WithGridLines(),
//	    sink.WithLabels(),
//	)
//
// # PNG Output
//
// [RenderPNG] draws directly with github.com/fogleman/gg, so no external
// converter is needed. [WithScale] sets the pixel density.
//
// # Diagram Output
//
// [ToDOT] describes the cell structure of the grid. [RenderDiagram] runs it
// through the embedded Graphviz to produce SVG.
package sink
