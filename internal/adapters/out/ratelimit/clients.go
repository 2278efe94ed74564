// Package ratelimit throttles write requests to the HTTP bridge per client.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/dockside/dockside/internal/boundaries/out"
)

// DefaultIdleTTL is how long a client's bucket survives without requests.
const DefaultIdleTTL = 10 * time.Minute

var _ out.RateLimiter = (*ClientStore)(nil)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientStore keeps one token bucket per client key ("ip:<address>"). Buckets
// of clients that went quiet are evicted by Prune.
type ClientStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rps     float64
	burst   int
	now     func() time.Time
	log     zerowrap.Logger
}

// NewClientStore creates a store refilling rps tokens per second per client,
// up to burst.
func NewClientStore(rps float64, burst int, log zerowrap.Logger) *ClientStore {
	return &ClientStore{
		buckets: make(map[string]*bucket),
		rps:     rps,
		burst:   burst,
		now:     time.Now,
		log:     log,
	}
}

// Allow reports whether one more request from key fits in its bucket.
func (s *ClientStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n more requests from key fit in its bucket.
func (s *ClientStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.now()
	if s.touch(key, now).AllowN(now, n) {
		return true
	}
	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "ratelimit").
		Str("client", key).
		Int("requested", n).
		Msg("client rate limited")
	return false
}

func (s *ClientStore) touch(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Clients returns the number of tracked clients.
func (s *ClientStore) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// Prune drops the buckets of clients idle for longer than idle and returns
// how many were dropped.
func (s *ClientStore) Prune(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for key, b := range s.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
			pruned++
		}
	}
	return pruned
}

// Run prunes idle clients every interval until ctx is done.
func (s *ClientStore) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(idle); n > 0 {
				s.log.Debug().Int("pruned", n).Int("clients", s.Clients()).Msg("dropped idle rate limit buckets")
			}
		}
	}
}
