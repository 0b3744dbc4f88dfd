// Package webfetch provides the resilient HTTP fetcher that every outbound
// call in the discovery pipeline goes through.  The fetcher absorbs the
// transient failure modes of rate-limited third-party APIs: it retries with
// a cause-specific pause and, once attempts are exhausted, degrades to "no
// data" instead of surfacing an error.  Callers must treat a nil payload as
// an ordinary empty result, never as a fatal condition.
package webfetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
)

// DefaultMaxAttempts bounds the retry loop when Options.MaxAttempts is unset.
const DefaultMaxAttempts = 3

// DefaultTimeout applies when Options.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// Retry pauses by failure cause.  429 responses back off exponentially from
// rateLimitBase; timeouts and transport failures pause a fixed interval.
const (
	rateLimitBase  = 1 * time.Second
	timeoutPause   = 1 * time.Second
	transportPause = 500 * time.Millisecond
)

// retry causes, used as the metric label and in debug logs.
const (
	causeRateLimited = "rate_limited"
	causeTimeout     = "timeout"
	causeTransport   = "transport"
)

// Options tunes a single fetch.
type Options struct {
	// Timeout bounds each individual attempt.  Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxAttempts bounds the retry loop.  Zero means DefaultMaxAttempts.
	MaxAttempts int

	// Collaborator labels the external-call metric: "synonym_db",
	// "patent_search" or "registry_crawler".
	Collaborator string
}

// Fetcher issues JSON GET requests with bounded retry.  It is safe for
// concurrent use; per-attempt timeouts come from a context deadline rather
// than the shared http.Client.
type Fetcher struct {
	client      *http.Client
	log         logging.Logger
	metrics     *prometheus.PipelineMetrics
	maxAttempts int
}

// NewFetcher constructs a Fetcher.  metrics may be nil when the caller does
// not record pipeline metrics (CLI one-shot runs, tests).
func NewFetcher(log logging.Logger, metrics *prometheus.PipelineMetrics) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		log:     log.Named("webfetch"),
		metrics: metrics,
	}
}

// WithMaxAttempts sets the fetcher-wide retry bound applied when a call's
// Options leave MaxAttempts unset.  Returns the receiver for chaining at
// construction.
func (f *Fetcher) WithMaxAttempts(n int) *Fetcher {
	if n > 0 {
		f.maxAttempts = n
	}
	return f
}

// GetJSON fetches rawURL with the given query parameters and returns the raw
// JSON payload, or nil after opts.MaxAttempts failed attempts.  Retry
// policy: HTTP 429 backs off exponentially (1s doubling per attempt),
// attempt timeouts pause 1s, transport failures and other non-2xx statuses
// pause 0.5s.  A cancelled parent context stops the loop immediately.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, params url.Values, opts Options) []byte {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = f.maxAttempts
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	target := rawURL
	if len(params) > 0 {
		sep := "?"
		if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		target = rawURL + sep + params.Encode()
	}

	rateLimitWait := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(rateLimitBase),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)
	timeoutWait := backoff.NewConstantBackOff(timeoutPause)
	transportWait := backoff.NewConstantBackOff(transportPause)

	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil
		}

		payload, cause := f.attempt(ctx, target, opts)
		if cause == "" {
			return payload
		}

		f.log.Debug("fetch attempt failed",
			logging.String("cause", cause),
			logging.Int("attempt", attempt+1),
			logging.String("collaborator", opts.Collaborator),
		)
		if f.metrics != nil {
			f.metrics.FetchRetriesTotal.WithLabelValues(cause).Inc()
		}

		if attempt == opts.MaxAttempts-1 {
			break
		}

		var pause time.Duration
		switch cause {
		case causeRateLimited:
			pause = rateLimitWait.NextBackOff()
		case causeTimeout:
			pause = timeoutWait.NextBackOff()
		default:
			pause = transportWait.NextBackOff()
		}
		if !sleep(ctx, pause) {
			return nil
		}
	}

	return nil
}

// attempt performs one GET.  It returns (payload, "") on success or
// (nil, cause) on failure.
func (f *Fetcher) attempt(ctx context.Context, target string, opts Options) ([]byte, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if f.metrics != nil && opts.Collaborator != "" {
		f.metrics.ExternalCallsTotal.WithLabelValues(opts.Collaborator).Inc()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, causeTransport
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded {
			return nil, causeTimeout
		}
		return nil, causeTransport
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, causeRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, causeTransport
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded {
			return nil, causeTimeout
		}
		return nil, causeTransport
	}
	if !json.Valid(body) {
		return nil, causeTransport
	}
	return body, ""
}

// sleep pauses for d, returning false if ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
