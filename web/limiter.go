package web

import (
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ipLimiter throttles admin login attempts per client IP. Entries are pruned
// lazily: any limiter idle past the horizon is dropped on the next lookup
// sweep once the map grows.
type ipLimiter struct {
	mu    sync.Mutex
	peers map[string]*peer
	rate  rate.Limit
	burst int
}

type peer struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterSweepThreshold = 1000

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		peers: make(map[string]*peer),
		rate:  r,
		burst: burst,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if len(l.peers) > limiterSweepThreshold {
		for k, p := range l.peers {
			if now.Sub(p.lastSeen) > time.Hour {
				delete(l.peers, k)
			}
		}
	}

	p, ok := l.peers[ip]
	if !ok {
		p = &peer{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.peers[ip] = p
	}
	p.lastSeen = now
	return p.limiter.Allow()
}

// requestLogger is a thin structured-logging middleware; chi's RealIP runs
// before it so RemoteAddr is the client address.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}
