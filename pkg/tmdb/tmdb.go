package tmdb

import (
	"context"
	"net/http"
	"time"

	mhttp "github.com/kasuboski/mediarec/pkg/http"
)

// Options tunes the transport used by New
type Options struct {
	RequestsPerSecond float64
	Burst             int
	MaxRetries        int
	// BaseBackoff is the first retry delay, the http client default when zero
	BaseBackoff time.Duration
	Breaker     BreakerSettings
	// HTTPClient is the underlying doer, http.DefaultClient when nil
	HTTPClient mhttp.HTTPClient
}

func DefaultOptions() Options {
	return Options{
		RequestsPerSecond: 20,
		Burst:             5,
		MaxRetries:        mhttp.DefaultMaxRetries,
		Breaker:           DefaultBreakerSettings(),
	}
}

// New builds a catalog client that authenticates with apiKey. Requests pass
// through the circuit breaker and then the paced, retrying http client.
func New(server, apiKey string, opts Options) (*Client, error) {
	httpOpts := []mhttp.ClientOption{
		mhttp.WithMaxRetries(opts.MaxRetries),
		mhttp.WithRequestsPerSecond(opts.RequestsPerSecond, opts.Burst),
	}
	if opts.BaseBackoff > 0 {
		httpOpts = append(httpOpts, mhttp.WithBaseBackoff(opts.BaseBackoff))
	}
	if opts.HTTPClient != nil {
		httpOpts = append(httpOpts, mhttp.WithHTTPClient(opts.HTTPClient))
	}

	doer := NewBreakerDoer(mhttp.NewRateLimitedHTTPClient(httpOpts...), opts.Breaker)
	return NewClient(server, WithHTTPClient(doer), WithRequestEditorFn(SetRequestAPIKey(apiKey)))
}

func SetRequestAPIKey(apiKey string) func(ctx context.Context, req *http.Request) error {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}
