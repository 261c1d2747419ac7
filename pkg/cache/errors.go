package cache

import (
	"context"
	"errors"

	"github.com/matzehuels/gridbag/pkg/httputil"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned when a remote backend cannot be reached.
	ErrNetwork = errors.New("network error")
)

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError = httputil.RetryableError

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error { return httputil.Retryable(err) }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool { return httputil.IsRetryable(err) }

// RetryWithBackoff retries fn up to 3 times with exponential backoff.
// Only errors wrapped with Retryable will trigger retries.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return httputil.RetryWithBackoff(ctx, fn)
}
