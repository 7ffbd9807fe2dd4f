package http

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kasuboski/mediarec/pkg/metrics"
)

type RateLimitedClient struct {
	client  HTTPClient
	policy  RetryPolicy
	limiter *rate.Limiter
}

// ClientOption is a function that can be used to configure a RateLimitedClient
type ClientOption func(*RateLimitedClient)

// NewRateLimitedHTTPClient creates a client that paces outgoing requests and
// retries rate limited, server error and transport failures
func NewRateLimitedHTTPClient(opts ...ClientOption) *RateLimitedClient {
	c := &RateLimitedClient{
		client:  http.DefaultClient,
		policy:  DefaultRetryPolicy(),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the total number of attempts for a request
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RateLimitedClient) {
		c.policy.MaxAttempts = maxRetries
	}
}

// WithBaseBackoff sets the base backoff time for the client
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		c.policy.BaseBackoff = baseBackoff
	}
}

// WithMaxBackoff caps the computed backoff
func WithMaxBackoff(maxBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		c.policy.MaxBackoff = maxBackoff
	}
}

// WithRetryPolicy replaces the whole retry policy
func WithRetryPolicy(policy RetryPolicy) ClientOption {
	return func(c *RateLimitedClient) {
		c.policy = policy
	}
}

// WithRequestsPerSecond paces requests with a token bucket. Zero disables pacing.
func WithRequestsPerSecond(rps float64, burst int) ClientOption {
	return func(c *RateLimitedClient) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RateLimitedClient) {
		c.client = client
	}
}

// Do executes the request, waiting for the rate limiter before every attempt.
// This is a blocking call until the request succeeds, the request context is done
// or the attempts run out. When attempts run out on a retryable status the last
// response is returned together with ErrRetriesExhausted.
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	attempts := max(c.policy.MaxAttempts, 1)

	var resp *http.Response
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err = c.client.Do(req)
		if !c.policy.Retryable(resp, err) {
			return resp, nil
		}

		last := attempt == attempts-1
		if last {
			break
		}

		wait := c.policy.Backoff(resp, attempt)
		if resp != nil {
			resp.Body.Close()
		}
		metrics.CatalogRetries.Inc()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, err)
	}
	return resp, fmt.Errorf("%w after %d attempts: status %d", ErrRetriesExhausted, attempts, resp.StatusCode)
}
