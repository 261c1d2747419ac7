package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/gridbag/pkg/cache"
	"github.com/matzehuels/gridbag/pkg/document"
	"github.com/matzehuels/gridbag/pkg/observability"
)

// Parse decodes a layout document and returns it with its hash.
func Parse(ctx context.Context, data []byte, format document.Format) (*document.Document, string, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, string(format), len(data))
	start := time.Now()

	doc, err := document.Parse(data, format)
	if err != nil {
		hooks.OnParseComplete(ctx, string(format), 0, time.Since(start), err)
		return nil, "", err
	}
	hash, err := DocumentHash(doc)
	hooks.OnParseComplete(ctx, string(format), len(doc.Elements), time.Since(start), err)
	if err != nil {
		return nil, "", err
	}
	return doc, hash, nil
}

// DocumentHash hashes the normalized JSON form of doc, so equivalent TOML
// and JSON documents share cache entries.
func DocumentHash(doc *document.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return cache.Hash(data), nil
}
