// Package document reads declarative layout documents.
//
// A document describes one panel: its size, insets, gaps and column/row
// overrides, an optional default constraint, and a list of elements with
// size hints and grid constraints. Documents are written in TOML or JSON.
//
// # TOML Format
//
//	[container]
//	width = 400
//	height = 300
//	insets = { top = 8, left = 8, bottom = 8, right = 8 }
//	hgap = 4
//	vgap = 4
//	orientation = "left_to_right"
//	column_weights = [0, 1]
//
//	[defaults]
//	fill = "horizontal"
//
//	[[element]]
//	id = "label"
//	pref = { width = 80, height = 24 }
//
//	[[element]]
//	id = "field"
//	pref = { width = 160, height = 24 }
//	min = { width = 60, height = 24 }
//	constraint = { gridwidth = "remainder", weightx = 1 }
//
// The JSON form uses the same keys with "elements" as the array name.
//
// # Constraints
//
// Element constraint keys: gridx, gridy (an index or "relative"),
// gridwidth, gridheight (a count, "relative" or "remainder"), weightx,
// weighty, anchor, fill, insets, ipadx, ipady. Absent keys take the
// engine's zero-value default. An element without a constraint table uses
// the document's [defaults] constraint.
//
// # Size Hints
//
// pref is required. min defaults to pref, and max defaults to unbounded.
// A container width or height of 0 is replaced by the preferred size.
//
// # Loading
//
// Use [Load] to read a file, selecting the format by extension, or [Read]
// with an explicit [Format]. [Document.Build] turns a document into a
// panel, a configured engine and the boxes by id.
package document
