package discovery

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces successive calls to an upstream source at a fixed minimum
// interval.  The pacing intervals are rate-limit contracts with the sources,
// so the pipeline asks the pacer before every outbound call rather than
// sleeping after it; the first call through a fresh Pacer proceeds
// immediately.
type Pacer struct {
	lim *rate.Limiter
}

// NewPacer returns a Pacer enforcing the given minimum interval between
// calls.  A non-positive interval disables pacing, which is what tests use.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call may proceed or ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.lim == nil {
		return ctx.Err()
	}
	return p.lim.Wait(ctx)
}
