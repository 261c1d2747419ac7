package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridbag/pkg/buildinfo"
	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// LayoutResponse is the body of a successful /v1/layout request.
type LayoutResponse struct {
	DocumentHash string          `json:"document_hash"`
	Cached       bool            `json:"cached"`
	Layout       pipeline.Layout `json:"layout"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Get().Version})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	doc, hash, err := s.readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := layoutOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	layout, hit, err := s.runner.ComputeWithCacheInfo(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LayoutResponse{DocumentHash: hash, Cached: hit, Layout: layout})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusNotFound, string(errors.ErrCodeInvalidFormat), errors.UserMessage(err))
		return
	}
	doc, _, err := s.readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := renderOptions(r, format)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	layout, err := s.runner.Compute(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), layout, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Cache", cacheHeader(hit))
	w.WriteHeader(http.StatusOK)
	w.Write(artifacts[format])
}

func (s *Server) readDocument(r *http.Request) (*document.Document, string, error) {
	format, err := document.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", err
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, "", errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return pipeline.Parse(r.Context(), data, format)
}

func layoutOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options
	var err error
	if opts.Width, err = intParam(q.Get("width")); err != nil {
		return opts, err
	}
	if opts.Height, err = intParam(q.Get("height")); err != nil {
		return opts, err
	}
	if opts.Refresh, err = boolParam(q.Get("refresh")); err != nil {
		return opts, err
	}
	return opts, nil
}

func renderOptions(r *http.Request, format string) (pipeline.Options, error) {
	opts, err := layoutOptions(r)
	if err != nil {
		return opts, err
	}
	q := r.URL.Query()
	opts.Formats = []string{format}
	opts.Style = q.Get("style")
	if opts.Scale, err = intParam(q.Get("scale")); err != nil {
		return opts, err
	}
	if opts.Labels, err = boolParam(q.Get("labels")); err != nil {
		return opts, err
	}
	if opts.Grid, err = boolParam(q.Get("grid")); err != nil {
		return opts, err
	}
	return opts, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid integer %q", v)
	}
	return n, nil
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid boolean %q", v)
	}
	return b, nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// fail writes err as a JSON error body, logging server-side failures.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestID(r.Context()))
		msg = "internal error"
	}
	writeError(w, status, string(code), msg)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidFormat:
		return http.StatusUnsupportedMediaType
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}
