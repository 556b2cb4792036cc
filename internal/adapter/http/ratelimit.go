package adapthttp

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sessionLimiter keeps one token bucket per session.
type sessionLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	visitors  map[string]*visitor
	lastPrune time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// idleAfter is how long an untouched bucket is kept.
const idleAfter = 30 * time.Minute

func newSessionLimiter(limit rate.Limit, burst int) *sessionLimiter {
	return &sessionLimiter{
		limit:    limit,
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

// allow reports whether the session may act now.
func (l *sessionLimiter) allow(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastPrune) > time.Minute {
		for id, v := range l.visitors {
			if now.Sub(v.lastSeen) > idleAfter {
				delete(l.visitors, id)
			}
		}
		l.lastPrune = now
	}

	v, ok := l.visitors[sessionID]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[sessionID] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// forget drops the bucket of an ended session.
func (l *sessionLimiter) forget(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.visitors, sessionID)
}
