package httppipe

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// hostLimiter paces outbound calls per target host. Disabled (nil) by
// default; the pipeline itself guarantees no retries, so the limiter
// only smooths bursts from list-heavy CLI commands.
type hostLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byHost  map[string]*hostLimiterEntry
	hits    uint64
	idleTTL time.Duration
}

type hostLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newHostLimiter(rps float64, burst int) *hostLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &hostLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		byHost:  make(map[string]*hostLimiterEntry),
		idleTTL: 10 * time.Minute,
	}
}

func (l *hostLimiter) wait(ctx context.Context, rawURL string) error {
	if l == nil {
		return nil
	}
	host := limiterKey(rawURL)

	l.mu.Lock()
	entry, ok := l.byHost[host]
	now := time.Now()
	if !ok {
		entry = &hostLimiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byHost[host] = entry
	}
	entry.lastSeen = now

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byHost {
			if v.lastSeen.Before(cutoff) {
				delete(l.byHost, k)
			}
		}
	}
	limiter := entry.limiter
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

func limiterKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Host
}
