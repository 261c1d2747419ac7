// Package pipeline provides the parse → layout → render pipeline for gridbag.
//
// This package implements the document pipeline shared by the CLI and the
// HTTP API. By centralizing this logic, both entry points validate, cache and
// render identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode a TOML or JSON layout document
//  2. Layout: Build the panel, run the grid engine and capture the frame
//  3. Render: Generate output in various formats (SVG, PNG, JSON, DOT, grid diagram)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _, err := pipeline.Parse(data, document.FormatTOML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	layout, hit, err := runner.ComputeWithCacheInfo(ctx, doc, opts)
//
//	// Render an existing layout
//	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridbag/pkg/cache"
	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2

	// MaxScale bounds the PNG pixel density.
	MaxScale = 8
)

// DefaultStyle is the default box style.
const DefaultStyle = sink.StyleFilled

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"

	// FormatDiagram is the DOT grid table rendered to SVG by Graphviz.
	FormatDiagram = "diagram"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatDiagram}

// ContentTypes maps output formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:     "image/svg+xml",
	FormatPNG:     "image/png",
	FormatJSON:    "application/json",
	FormatDOT:     "text/vnd.graphviz",
	FormatDiagram: "image/svg+xml",
}

// Extensions maps output formats to file extensions.
var Extensions = map[string]string{
	FormatSVG:     ".svg",
	FormatPNG:     ".png",
	FormatJSON:    ".json",
	FormatDOT:     ".dot",
	FormatDiagram: ".diagram.svg",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width  int `json:"width,omitempty"`  // Container width override
	Height int `json:"height,omitempty"` // Container height override

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Grid    bool     `json:"grid,omitempty"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocumentHash is the content hash of the normalized document.
	DocumentHash string

	// Layout contains the computed frame.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	Columns      int
	Rows         int
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if _, err := sink.ParseStyle(style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid style")
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLayout checks the container size override.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return errors.ValidateDimensions(o.Width, o.Height)
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = string(DefaultStyle)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 1 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 1 and %d", MaxScale)
	}
	return ValidateStyle(o.Style)
}

// ValidateAndSetDefaults checks every stage's options.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Only the options that affect the given format are included.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		opts.Style, opts.Labels, opts.Grid = o.Style, o.Labels, o.Grid
	case FormatPNG:
		opts.Style, opts.Labels, opts.Grid = o.Style, o.Labels, o.Grid
		opts.Scale = o.Scale
	case FormatJSON:
		opts.Style = o.Style
	}
	return opts
}
