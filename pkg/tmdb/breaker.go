package tmdb

import (
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/metrics"
)

const breakerName = "catalog"

var errServerStatus = errors.New("server error status")

// BreakerSettings configures when the catalog breaker opens
type BreakerSettings struct {
	// MinRequests is the number of requests in an interval before the ratio is considered
	MinRequests uint32
	// FailureRatio opens the breaker once reached
	FailureRatio float64
	// Interval resets the closed state counts
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing
	Timeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MinRequests:  10,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      time.Second * 30,
	}
}

// BreakerDoer stops sending requests to the catalog after repeated failures.
// Transport errors and 5xx responses count as failures.
type BreakerDoer struct {
	next HttpRequestDoer
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

func NewBreakerDoer(next HttpRequestDoer, s BreakerSettings) *BreakerDoer {
	metrics.CircuitBreakerState.Set(stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= s.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Infow("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.Set(stateValue(to))
		},
	})

	return &BreakerDoer{next: next, cb: cb}
}

// Do forwards the request unless the breaker is open. A 5xx response is
// returned to the caller as is, it only counts against the breaker.
func (b *BreakerDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := b.cb.Execute(func() (*http.Response, error) {
		resp, err := b.next.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})
	if errors.Is(err, errServerStatus) {
		return resp, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.FromCtx(req.Context()).Debugw("catalog request rejected", "url", req.URL.Path, "error", err)
	}
	return resp, err
}

// State reports the breaker state as closed, half-open or open
func (b *BreakerDoer) State() string {
	return b.cb.State().String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
