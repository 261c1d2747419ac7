// Package httputil provides retry helpers for talking to remote services.
//
// Transient failures (network errors, 5xx responses, unreachable cache
// backends) are marked with [Retryable]. [Retry] re-runs an operation only
// while it keeps failing with such errors, doubling the delay between
// attempts:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// The gridbag API client and the Redis and MongoDB cache backends share
// these helpers.
package httputil
