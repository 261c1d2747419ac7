package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layoutOpts
	formats string // comma-separated output formats
	style   string // box style: filled or outline
	scale   int    // PNG pixel density
	labels  bool   // draw element ids
	grid    bool   // draw column and row boundaries
}

func (o *renderOpts) pipelineOptions(cfg RenderConfig) pipeline.Options {
	opts := o.layoutOpts.pipelineOptions()
	opts.Formats = parseFormats(o.formats)
	opts.Style = o.style
	opts.Scale = o.scale
	opts.Labels = o.labels
	opts.Grid = o.grid
	applyRenderConfig(&opts, cfg)
	return opts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a layout document to SVG, PNG, JSON or a grid diagram",
		Long: `Render a layout document to SVG, PNG, JSON or a grid diagram.

With a single format and -o, the artifact is written to exactly that path.
Otherwise -o (or the document path) is used as a base and each artifact gets
its format's extension.

The dot format is a Graphviz grid diagram: columns and rows as a table with
every element spanning its cells. The diagram format is the same diagram
rendered to SVG (written as <base>.diagram.svg).

With --server (or GRIDBAG_SERVER) the document is sent to a running
gridbag server instead of being processed locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json, dot, diagram (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "box style: filled (default), outline")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, fmt.Sprintf("PNG pixel density, 1-%d (default %d)", pipeline.MaxScale, pipeline.DefaultScale))
	cmd.Flags().BoolVar(&opts.labels, "labels", true, "draw element ids")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "draw column and row boundaries")
	opts.addFlags(cmd)

	return cmd
}

// runRender lays out the document and writes every requested artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts := opts.pipelineOptions(cfg.Render)
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Rendering...")

	var result *pipeline.Result
	if opts.server != "" {
		spinner.Start()
		result, err = c.remoteRender(ctx, opts.server, input, popts)
	} else {
		result, err = c.localRender(ctx, spinner, input, opts.noCache, popts)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := artifactPaths(opts.output, input, popts.Formats)
	for _, format := range popts.Formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[format], err)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(popts.Formats)))

	printSuccess("Render complete")
	for _, format := range popts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.ElementCount, result.Stats.Columns, result.Stats.Rows,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	return nil
}

func (c *CLI) localRender(ctx context.Context, spinner *Spinner, input string, noCache bool, popts pipeline.Options) (*pipeline.Result, error) {
	doc, err := readDocument(ctx, input)
	if err != nil {
		return nil, err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner.Start()
	return runner.Execute(ctx, doc, popts)
}

// artifactPaths maps each format to its output file. A derived path never
// overwrites the input document.
func artifactPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := outputBase(output, input)
	for _, f := range formats {
		p := base + pipeline.Extensions[f]
		if filepath.Clean(p) == filepath.Clean(input) {
			p = base + ".render" + pipeline.Extensions[f]
		}
		paths[f] = p
	}
	return paths
}
