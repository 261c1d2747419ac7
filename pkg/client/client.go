// Package client talks to a running gridbag HTTP server.
//
// It mirrors the local [pipeline.Runner] operations so the CLI can offload
// layout and rendering to a shared server (and its shared cache):
//
//	c := client.New("http://localhost:8080")
//	res, err := c.Layout(ctx, data, document.FormatTOML, pipeline.Options{Width: 800})
//
// Network failures and 5xx responses are retried with exponential backoff.
// Error responses are decoded back into [errors.Error] values carrying the
// server's error code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/httputil"
	"github.com/matzehuels/gridbag/pkg/pipeline"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// Client calls the gridbag HTTP API.
type Client struct {
	http     *http.Client
	baseURL  string
	headers  map[string]string
	attempts int
	delay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithRetry sets the number of attempts and the initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		headers:  map[string]string{"User-Agent": "gridbag-client"},
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health is the server's health report.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// LayoutResult is a layout computed by the server.
type LayoutResult struct {
	DocumentHash string          `json:"document_hash"`
	Cached       bool            `json:"cached"`
	Layout       pipeline.Layout `json:"layout"`
}

// Artifact is a rendered output returned by the server.
type Artifact struct {
	Data        []byte
	ContentType string
	Cached      bool
}

// Health queries the server's health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/healthz", nil, nil, "", func(resp *http.Response) error {
		return json.NewDecoder(resp.Body).Decode(&h)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Layout sends a document to the server and returns the computed layout.
func (c *Client) Layout(ctx context.Context, doc []byte, format document.Format, opts pipeline.Options) (*LayoutResult, error) {
	var res LayoutResult
	err := c.do(ctx, http.MethodPost, "/v1/layout", layoutQuery(opts), doc, format.ContentType(), func(resp *http.Response) error {
		return json.NewDecoder(resp.Body).Decode(&res)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Render sends a document to the server and returns it rendered in the
// given output format.
func (c *Client) Render(ctx context.Context, doc []byte, format document.Format, output string, opts pipeline.Options) (*Artifact, error) {
	if err := pipeline.ValidateFormat(output); err != nil {
		return nil, err
	}
	var art Artifact
	path := "/v1/render/" + url.PathEscape(output)
	err := c.do(ctx, http.MethodPost, path, renderQuery(opts), doc, format.ContentType(), func(resp *http.Response) error {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return httputil.Retryable(err)
		}
		art = Artifact{
			Data:        data,
			ContentType: resp.Header.Get("Content-Type"),
			Cached:      resp.Header.Get("X-Cache") == "HIT",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &art, nil
}

func layoutQuery(opts pipeline.Options) url.Values {
	q := url.Values{}
	if opts.Width > 0 {
		q.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Refresh {
		q.Set("refresh", "true")
	}
	return q
}

func renderQuery(opts pipeline.Options) url.Values {
	q := layoutQuery(opts)
	if opts.Style != "" {
		q.Set("style", opts.Style)
	}
	if opts.Scale > 0 {
		q.Set("scale", strconv.Itoa(opts.Scale))
	}
	q.Set("labels", strconv.FormatBool(opts.Labels))
	if opts.Grid {
		q.Set("grid", "true")
	}
	return q
}

// do performs a request with retries and hands successful responses to read.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, read func(*http.Response) error) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return httputil.Retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
		if err != nil {
			return err
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return httputil.Retryable(fmt.Errorf("%s %s: %w", method, path, err))
		}
		defer resp.Body.Close()

		if err := checkStatus(resp); err != nil {
			return err
		}
		return read(resp)
	})
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	code := errors.Code(body.Error.Code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := body.Error.Message
	if msg == "" {
		msg = fmt.Sprintf("status %d", resp.StatusCode)
	}
	err := errors.New(code, "%s", msg)
	if resp.StatusCode >= http.StatusInternalServerError {
		return httputil.Retryable(err)
	}
	return err
}
