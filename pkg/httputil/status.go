package httputil

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/svglayer/pkg/errors"
)

// maxErrorBody bounds how much of an error response is quoted in the error.
const maxErrorBody = 512

// CheckResponse maps a response status onto an error. It returns nil for
// 2xx responses. The body is read (up to a limit) but not closed.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &RetryableError{
			Err:   errors.New(errors.ErrCodeNetwork, "server returned %d: %s", resp.StatusCode, msg),
			After: retryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "access denied (%d): %s", resp.StatusCode, msg)
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "not found: %s", msg)
	default:
		return errors.New(errors.ErrCodeNetwork, "request failed with %d: %s", resp.StatusCode, msg)
	}
}

// retryAfter parses a Retry-After header given in seconds. HTTP dates and
// malformed values yield 0.
func retryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
