// Package httputil provides HTTP helpers for the overlay upload client.
//
// # Retry
//
// [Retry] re-runs an operation with exponential backoff while it fails with
// a [RetryableError]. [CheckResponse] classifies HTTP responses so that only
// transient failures are retried:
//
//   - 2xx: success
//   - 5xx and 429: retryable
//   - 401 and 403: unauthorized, not retried
//   - 404: not found, not retried
//   - anything else: network error, not retried
//
// Typical use:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckResponse(resp)
//	})
//
// The delay doubles after each attempt.
// A Retry-After header on 429 and 5xx responses lengthens the next wait,
// capped at [MaxDelay].
package httputil
