// Package gridbag implements a grid constraint layout engine.
//
// Every managed element of a container is described by a [Constraint]: the
// cell it starts in, how many columns and rows it spans, how much of any
// surplus space its columns and rows absorb (weights), how it stretches within
// its cell (fill), where it sits when it does not stretch (anchor), and the
// margins and internal padding around it. The engine turns those declarative
// records into pixel bounds.
//
// # Pipeline
//
// A layout pass runs five stages, each in its own file:
//
//  1. [Table] looks up the constraint of every element, falling back to the
//     container's default.
//  2. resolve assigns concrete cells, expanding auto positions ([Auto]) and
//     the [Relative] and [Remainder] spans.
//  3. measure computes minimum and preferred sizes and weights per column and
//     row, single-span elements first.
//  4. distribute hands surplus space to weighted columns and rows, or centers
//     the grid when nothing is weighted. A deficit below the minimum sizes is
//     taken from the leading columns and rows first.
//  5. place computes each element's cell rectangle and applies insets, fill
//     and anchor before calling [Element.SetBounds].
//
// # Caching
//
// [Layout] keeps the measured tables until something invalidates them:
// registering or unregistering an element, changing the default constraint,
// a change in the container's size, insets or element list, or an explicit
// [Layout.Invalidate]. Repeated passes over an unchanged container reuse the
// tables and produce identical bounds.
//
// # Usage
//
//	panel := host.NewPanel(geom.NewSize(542, 444), geom.Insets{})
//	lay := gridbag.New(gridbag.WithGaps(4, 4))
//
//	a := host.NewBox("a", geom.NewSize(100, 100))
//	panel.Add(a)
//	lay.Register(panel, a, gridbag.Constraint{
//	    GridX: gridbag.At(0), GridY: gridbag.At(0),
//	    WeightX: 1, WeightY: 1, Fill: gridbag.Both,
//	})
//
//	if err := lay.Layout(panel); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// A Layout is not safe for concurrent use. Each container owns its own Layout,
// and distinct containers may be laid out on different goroutines.
package gridbag
