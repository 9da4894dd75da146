package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a single attempt when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Response is the raw outcome of a fetch.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status is 2xx.
func (r *Response) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher performs a GET with caller-supplied headers.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, headers http.Header) (*Response, error)
}

// HTTPFetcher is the resty-backed Fetcher.
type HTTPFetcher struct {
	client  *resty.Client
	timeout time.Duration
	retries int
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithRetries sets how many extra attempts follow a transport failure or a
// 429/5xx response. Zero means a single attempt.
func WithRetries(n int) Option {
	return func(f *HTTPFetcher) {
		if n >= 0 {
			f.retries = n
		}
	}
}

// WithHTTPClient sets the underlying HTTP client (useful for testing). The
// client is copied, so c keeps its own Timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		clone := *c
		f.client = resty.NewWithClient(&clone)
	}
}

// New creates an HTTPFetcher.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = resty.New()
	}
	f.client.
		SetTimeout(f.timeout).
		SetRetryCount(f.retries).
		SetRetryWaitTime(250 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			if r == nil {
				return false
			}
			code := r.StatusCode()
			return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
		})
	return f
}

// Timeout returns the configured per-attempt timeout.
func (f *HTTPFetcher) Timeout() time.Duration { return f.timeout }

// Retries returns the configured extra attempt count.
func (f *HTTPFetcher) Retries() int { return f.retries }

// Fetch sends GET endpoint with headers copied verbatim.
func (f *HTTPFetcher) Fetch(ctx context.Context, endpoint string, headers http.Header) (*Response, error) {
	req := f.client.R().SetContext(ctx)
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("fetch failed")
		return nil, apperr.New(apperr.TransportFailure, "GET "+endpoint, err)
	}

	log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Int("bytes", len(resp.Body())).
		Msg("fetched")

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
