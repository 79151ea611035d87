package middleware

import (
	"log/slog"
	"sync"
	"time"

	"its/config"
	domainerrors "its/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 20
	defaultIdleTTL           = 3 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer than
// the configured TTL are evicted by a background sweep until Close is called.
type RateLimiter struct {
	enabled bool
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	clients map[string]*client

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter builds the limiter from http.rateLimit. A nil section disables it.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:   defaultRequestsPerSecond,
		burst:   defaultBurst,
		idleTTL: defaultIdleTTL,
		logger:  logger,
		now:     time.Now,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}

	if rc := cfg.HTTP.RateLimit; rc != nil {
		rl.enabled = rc.Enabled
		if rc.RequestsPerSecond > 0 {
			rl.limit = rate.Limit(rc.RequestsPerSecond)
		}
		if rc.Burst > 0 {
			rl.burst = rc.Burst
		}
		if rc.IdleTTL > 0 {
			rl.idleTTL = rc.IdleTTL
		}
	}

	if rl.enabled {
		go rl.sweepLoop()
	}

	return rl
}

// Handle rejects a request with RATE_LIMITED when its client bucket is empty.
func (rl *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !rl.allow(ip) {
			rl.logger.Warn("Rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
			)
			c.Response().Header().Set("Retry-After", "1")

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

// Close stops the sweep. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}
