package middlewares

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-client token bucket that blocks a client for a while
// once its bucket runs dry. It guards the submission endpoints; the general
// per-IP limit is applied by httprate in the router.
type RateLimiter struct {
	limiters  map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
	log       *zap.Logger
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleTimeout = 10 * time.Minute

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
		log:       logger,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			r.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(req.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("submission rate exceeded")))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	client, exists := r.limiters[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
		r.limiters[ip] = client
	}
	client.lastSeen = now

	if !client.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep drops idle clients and expired blocks at most once a minute.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < time.Minute {
		return
	}
	r.lastSweep = now

	for ip, client := range r.limiters {
		if now.Sub(client.lastSeen) > limiterIdleTimeout {
			delete(r.limiters, ip)
		}
	}
	for ip, until := range r.blocked {
		if !now.Before(until) {
			delete(r.blocked, ip)
		}
	}
}

// SubmissionRateLimit builds the limiter for POST endpoints from config. A
// non-positive limit disables it.
func (m *Middlewares) SubmissionRateLimit() func(http.Handler) http.Handler {
	perMinute := m.InternalConfig.App.SubmissionMaxRequestsPerMinute
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := NewRateLimiter(
		perMinute,
		time.Minute/time.Duration(perMinute),
		time.Duration(m.InternalConfig.App.SubmissionBlockTimeInSeconds)*time.Second,
		m.Log,
	)
	return limiter.Limit
}
