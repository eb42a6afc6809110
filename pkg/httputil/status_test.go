package httputil

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/svglayer/pkg/errors"
)

func response(code int, body string) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(body))}
}

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		body      string
		wantErr   bool
		retryable bool
		wantCode  errors.Code
	}{
		{"ok", http.StatusOK, "", false, false, ""},
		{"created", http.StatusCreated, "", false, false, ""},
		{"server error", http.StatusBadGateway, "upstream down", true, true, errors.ErrCodeNetwork},
		{"rate limited", http.StatusTooManyRequests, "", true, true, errors.ErrCodeNetwork},
		{"unauthorized", http.StatusUnauthorized, "bad key", true, false, errors.ErrCodeUnauthorized},
		{"forbidden", http.StatusForbidden, "", true, false, errors.ErrCodeUnauthorized},
		{"not found", http.StatusNotFound, "no room", true, false, errors.ErrCodeNotFound},
		{"bad request", http.StatusBadRequest, "bad file", true, false, errors.ErrCodeNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResponse(response(tt.code, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", IsRetryable(err), tt.retryable)
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
			if tt.body != "" && !strings.Contains(err.Error(), tt.body) {
				t.Errorf("error %q does not quote the body %q", err, tt.body)
			}
		})
	}
}

func TestCheckResponseRetryAfter(t *testing.T) {
	resp := response(http.StatusTooManyRequests, "slow down")
	resp.Header = http.Header{"Retry-After": []string{"7"}}

	var re *RetryableError
	if !stderrors.As(CheckResponse(resp), &re) {
		t.Fatal("429 should be retryable")
	}
	if re.After != 7*time.Second {
		t.Errorf("After = %v, want 7s", re.After)
	}
}

func TestRetryAfterParsing(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"3", 3 * time.Second},
		{" 12 ", 12 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := retryAfter(tt.in); got != tt.want {
			t.Errorf("retryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
