package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/httputil"
	"github.com/matzehuels/svglayer/pkg/observability"
)

// DefaultBaseURL is the public conference API.
const DefaultBaseURL = "https://api.eyeson.team"

// DefaultZIndex is the layer position used when none is given. Positive
// values are drawn above the video, negative values below.
const DefaultZIndex = 1

const (
	httpTimeout    = 30 * time.Second
	retryAttempts  = 3
	retryDelay     = time.Second
	uploadFilename = "layer.svg"
	svgContentType = "image/svg+xml"
)

// Client talks to the layers endpoint of the conference API.
type Client struct {
	http     *http.Client
	baseURL  string
	logger   *log.Logger
	attempts int
	delay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API origin. An empty value keeps the default.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetry sets the number of attempts and the initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// NewClient creates a client for DefaultBaseURL unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: httpTimeout},
		baseURL:  DefaultBaseURL,
		logger:   log.New(io.Discard),
		attempts: retryAttempts,
		delay:    retryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) layersURL(accessKey string) string {
	return c.baseURL + "/rooms/" + url.PathEscape(accessKey) + "/layers"
}

// SendLayer uploads svg as the layer at zIndex of the room identified by
// accessKey, replacing what was shown there.
func (c *Client) SendLayer(ctx context.Context, accessKey string, svg []byte, zIndex int) error {
	if err := errors.ValidateAccessKey(accessKey); err != nil {
		return err
	}
	if len(svg) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "empty layer")
	}

	body, contentType, err := layerForm(svg, zIndex)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "build upload form")
	}

	start := time.Now()
	err = c.do(ctx, http.MethodPost, c.layersURL(accessKey), contentType, body)
	observability.Upload().OnUpload(ctx, zIndex, len(svg), time.Since(start), err)
	if err != nil {
		return err
	}
	c.logger.Debug("layer sent", "z-index", zIndex, "bytes", len(svg), "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// ClearLayer removes the layer at zIndex from the room.
func (c *Client) ClearLayer(ctx context.Context, accessKey string, zIndex int) error {
	if err := errors.ValidateAccessKey(accessKey); err != nil {
		return err
	}
	u := c.layersURL(accessKey) + "/" + strconv.Itoa(zIndex)
	err := c.do(ctx, http.MethodDelete, u, "", nil)
	observability.Upload().OnClear(ctx, zIndex, err)
	if err != nil {
		return err
	}
	c.logger.Debug("layer cleared", "z-index", zIndex)
	return nil
}

// layerForm encodes the multipart body: the SVG as "file" and the layer
// position as "z-index".
func layerForm(svg []byte, zIndex int) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, uploadFilename))
	h.Set("Content-Type", svgContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(svg); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("z-index", strconv.Itoa(zIndex)); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body []byte) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid url %s", rawURL)
	}
	hooks := observability.HTTP()

	return httputil.Retry(ctx, c.attempts, c.delay, func() error {
		var r io.Reader
		if body != nil {
			r = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, r)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create request")
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		start := time.Now()
		hooks.OnRequest(ctx, method, u.Host, u.Path)
		resp, err := c.http.Do(req)
		if err != nil {
			hooks.OnError(ctx, method, u.Host, u.Path, err)
			c.logger.Debug("request failed", "method", method, "err", err)
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, u.Host)}
		}
		defer resp.Body.Close()
		hooks.OnResponse(ctx, method, u.Host, u.Path, resp.StatusCode, time.Since(start))

		if err := httputil.CheckResponse(resp); err != nil {
			c.logger.Debug("request rejected", "method", method, "status", resp.StatusCode, "retry", httputil.IsRetryable(err))
			return err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	})
}
