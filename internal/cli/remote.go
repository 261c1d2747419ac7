package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/gridbag/pkg/buildinfo"
	"github.com/matzehuels/gridbag/pkg/client"
	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// envServer names a gridbag server used when --server is not given.
const envServer = "GRIDBAG_SERVER"

// remoteClient returns a client for the gridbag server at url.
func (c *CLI) remoteClient(url string) *client.Client {
	return client.New(url, client.WithHeader("User-Agent", appName+"/"+buildinfo.Version))
}

// readInput reads a document file without decoding it.
func readInput(path string) ([]byte, document.Format, error) {
	format, err := document.FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read document: %w", err)
	}
	return data, format, nil
}

// remoteLayout computes the layout of the document at input on a server.
func (c *CLI) remoteLayout(ctx context.Context, server, input string, opts pipeline.Options) (pipeline.Layout, bool, error) {
	data, format, err := readInput(input)
	if err != nil {
		return pipeline.Layout{}, false, err
	}
	c.Logger.Debug("remote layout", "server", server, "document", input)
	res, err := c.remoteClient(server).Layout(ctx, data, format, opts)
	if err != nil {
		return pipeline.Layout{}, false, fmt.Errorf("remote layout: %w", err)
	}
	return res.Layout, res.Cached, nil
}

// remoteRender renders the document at input on a server, one request per
// format. The result mirrors what a local run produces.
func (c *CLI) remoteRender(ctx context.Context, server, input string, opts pipeline.Options) (*pipeline.Result, error) {
	data, format, err := readInput(input)
	if err != nil {
		return nil, err
	}
	cl := c.remoteClient(server)

	start := time.Now()
	layout, err := cl.Layout(ctx, data, format, opts)
	if err != nil {
		return nil, fmt.Errorf("remote layout: %w", err)
	}
	result := &pipeline.Result{
		DocumentHash: layout.DocumentHash,
		Layout:       layout.Layout,
		Artifacts:    make(map[string][]byte, len(opts.Formats)),
		Stats: pipeline.Stats{
			ElementCount: len(layout.Layout.Frame.Boxes),
			Columns:      layout.Layout.Columns(),
			Rows:         layout.Layout.Rows(),
			LayoutTime:   time.Since(start),
		},
		CacheInfo: pipeline.CacheInfo{LayoutHit: layout.Cached, RenderHit: true},
	}

	start = time.Now()
	for _, f := range opts.Formats {
		c.Logger.Debug("remote render", "server", server, "format", f)
		art, err := cl.Render(ctx, data, format, f, opts)
		if err != nil {
			return nil, fmt.Errorf("remote render %s: %w", f, err)
		}
		result.Artifacts[f] = art.Data
		result.CacheInfo.RenderHit = result.CacheInfo.RenderHit && art.Cached
	}
	result.Stats.RenderTime = time.Since(start)
	return result, nil
}
