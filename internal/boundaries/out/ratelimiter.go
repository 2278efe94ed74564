package out

import "context"

// RateLimiter throttles requests per key. Keys are "ip:<address>".
type RateLimiter interface {
	// Allow reports whether a request identified by key may proceed.
	Allow(ctx context.Context, key string) bool

	// AllowN reports whether n requests identified by key may proceed.
	AllowN(ctx context.Context, key string, n int) bool
}
