// Package credentials provides the API credential pool shared by all search
// requests.  Rotation spreads load across keys so no single key trips the
// upstream per-key rate limit.
package credentials

import (
	"sync"

	"github.com/turtacn/pharmyrus/pkg/errors"
)

// Rotator cycles through a fixed ordered pool of API keys.  It is the only
// mutable state shared across concurrent search requests; the mutex guards a
// single read-and-advance of the rotation index and no I/O is ever performed
// while it is held.
//
// Rotation is blind: the Rotator does not track per-key health or back off
// keys that start failing.  The fetcher's retry policy absorbs those
// failures instead.
type Rotator struct {
	mu   sync.Mutex
	keys []string
	next int
}

// NewRotator constructs a Rotator over the given pool.  The pool must be
// non-empty; its order is preserved and determines rotation order.
func NewRotator(keys []string) (*Rotator, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidParam("credential pool must not be empty")
	}
	pool := make([]string, len(keys))
	copy(pool, keys)
	return &Rotator{keys: pool}, nil
}

// Next returns the next key in round-robin order.  Safe for concurrent use;
// over a long run every key is handed out an equal number of times.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.keys[r.next]
	r.next = (r.next + 1) % len(r.keys)
	return key
}

// Size returns the number of keys in the pool.
func (r *Rotator) Size() int {
	return len(r.keys)
}
