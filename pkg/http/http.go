package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
	DefaultMaxBackoff  = time.Second * 30
)

// ErrRetriesExhausted is returned with the last response when every attempt was retryable
var ErrRetriesExhausted = errors.New("retries exhausted")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryPolicy decides which responses are retried and how long to wait between attempts
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultRetryPolicy returns the policy used when no options are given
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxRetries,
		BaseBackoff: DefaultBaseBackoff,
		MaxBackoff:  DefaultMaxBackoff,
	}
}

// Retryable reports whether a response or transport error is worth another attempt
func (p RetryPolicy) Retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}

// Backoff returns the delay before the next attempt. A Retry-After header wins,
// otherwise the delay doubles each attempt with up to one base backoff of jitter.
func (p RetryPolicy) Backoff(resp *http.Response, attempt int) time.Duration {
	if resp != nil {
		if d, ok := retryAfter(resp.Header.Get("Retry-After")); ok {
			return d
		}
	}

	// 2^n backoff
	backoff := time.Duration(1<<attempt) * p.BaseBackoff

	// staggers the backoff to avoid a thundering herd
	if p.BaseBackoff > 0 {
		backoff += time.Duration(rand.Int63n(int64(p.BaseBackoff)))
	}

	if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
		return p.MaxBackoff
	}
	return backoff
}

// retryAfter parses the delay-seconds and http-date forms of Retry-After
func retryAfter(header string) (time.Duration, bool) {
	if header == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(max(seconds, 0)) * time.Second, true
	}

	if at, err := http.ParseTime(header); err == nil {
		return max(time.Until(at), 0), true
	}

	return 0, false
}
