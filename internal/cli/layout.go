package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// layoutOpts holds the flags shared by commands that compute a layout.
type layoutOpts struct {
	output  string
	width   int
	height  int
	noCache bool
	refresh bool
	server  string
}

func (o *layoutOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.width, "width", 0, "container width (default: document width, else preferred)")
	cmd.Flags().IntVar(&o.height, "height", 0, "container height (default: document height, else preferred)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().StringVar(&o.server, "server", os.Getenv(envServer), "gridbag server URL to compute on (env: "+envServer+")")
}

func (o *layoutOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{Width: o.width, Height: o.height, Refresh: o.refresh}
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Compute element bounds for a layout document",
		Long: `Compute element bounds for a layout document.

The document is TOML (.toml) or JSON (.json). The result is written to
<document>.layout.json and holds the grid structure, every element's cell and
bounds, and the container's minimum and preferred sizes.

Results are cached for faster subsequent runs.

With --server (or GRIDBAG_SERVER) the document is sent to a running
gridbag server instead of being processed locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <document>.layout.json)")
	opts.addFlags(cmd)

	return cmd
}

// runLayout loads the document, computes the layout and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, input string, opts layoutOpts) error {
	spinner := newSpinner(ctx, "Computing layout...")

	var (
		layout   pipeline.Layout
		cacheHit bool
		err      error
	)
	if opts.server != "" {
		spinner.Start()
		layout, cacheHit, err = c.remoteLayout(ctx, opts.server, input, opts.pipelineOptions())
	} else {
		layout, cacheHit, err = c.localLayout(ctx, spinner, input, opts)
	}
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = outputBase("", input) + ".layout.json"
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Frame.Boxes), layout.Columns(), layout.Rows(), cacheHit)
	printNewline()
	printNextStep("Render", "gridbag render "+input)

	return nil
}

func (c *CLI) localLayout(ctx context.Context, spinner *Spinner, input string, opts layoutOpts) (pipeline.Layout, bool, error) {
	doc, err := readDocument(ctx, input)
	if err != nil {
		return pipeline.Layout{}, false, err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return pipeline.Layout{}, false, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner.Start()
	layout, hit, err := runner.ComputeWithCacheInfo(ctx, doc, opts.pipelineOptions())
	if err != nil {
		return pipeline.Layout{}, false, fmt.Errorf("compute layout: %w", err)
	}
	return layout, hit, nil
}

// readDocument loads a layout document, picking the format from its extension.
func readDocument(ctx context.Context, path string) (*document.Document, error) {
	data, format, err := readInput(path)
	if err != nil {
		return nil, err
	}
	doc, _, err := pipeline.Parse(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", path, err)
	}
	return doc, nil
}
