// Package pkg holds the libraries behind gridbag, a grid constraint layout
// engine with a CLI and an HTTP API on top.
//
// # Overview
//
//  1. [gridbag] - The engine: constraints, grid resolution, size measurement,
//     weight distribution and bounds assignment, with a layout cache.
//  2. [geom] - Sizes, points, rectangles and insets shared by every package.
//  3. [host] - A minimal in-memory container and element implementation.
//  4. [document] - TOML/JSON layout documents describing a container and
//     its elements.
//  5. [pipeline] - Orchestration (parse → layout → render) with caching, used
//     by the CLI and the API alike.
//  6. [sink] - Output formats for a computed frame (SVG, PNG, JSON, DOT).
//  7. [cache] - Cache backends: file, Redis, MongoDB and a no-op cache.
//  8. [client] - HTTP client for a running gridbag server.
//  9. [fynegrid] - The engine as a Fyne layout.
//
// # Data Flow
//
//	TOML/JSON document
//	         ↓
//	    [document] package (decode + validate)
//	         ↓
//	    [host] panel with one box per element
//	         ↓
//	    [gridbag] layout pass
//	         ↓
//	    [sink] SVG/PNG/JSON/DOT output
//
// # Quick Start
//
//	doc, _, err := pipeline.Parse(ctx, data, document.FormatTOML)
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), nil)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/gridbag/...            # Engine only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB backends
//
// [gridbag]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/gridbag
// [geom]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/geom
// [host]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/host
// [document]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/document
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/pipeline
// [sink]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/sink
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/cache
// [client]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/client
// [fynegrid]: https://pkg.go.dev/github.com/matzehuels/gridbag/pkg/fynegrid
package pkg
