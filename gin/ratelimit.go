package gin

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IdleTimeout is the minimum time a client must be inactive before its
// limiter is dropped.
const IdleTimeout = 10 * time.Minute

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client gets its own limiter, so one noisy client cannot exhaust the
// budget of the others. Limiters of idle clients are evicted.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       float64
	burst     int
	idle      time.Duration
	lastSweep time.Time

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with bursts of up to burst requests.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	idle := IdleTimeout
	// Evicted clients come back with a full bucket; never evict earlier than a refill.
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &ClientLimiter{
		clients: make(map[string]*clientEntry),
		rps:     rps,
		burst:   burst,
		idle:    idle,
		Now:     time.Now,
	}
}

// Allow reports whether the client may make a request now, consuming a token
// if so.
func (l *ClientLimiter) Allow(client string) bool {
	now := l.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients idle for longer than the idle timeout. Callers must
// hold l.mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}
