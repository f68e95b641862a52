package ratelimiter

import (
	"sync"
	"time"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	return NewFixedWindowLimiter(cfg, logger)
}

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter allows RequestsPerTimeFrame requests per client in each TimeFrame.
type FixedWindowRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*window
	limit     int
	timeFrame time.Duration
	lastSweep time.Time
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:   make(map[string]*window),
		limit:     cfg.RequestsPerTimeFrame,
		timeFrame: cfg.TimeFrame,
		logger:    logger,
		now:       time.Now,
	}
}

// Allow records one request from key. When it is refused, the duration tells when the window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.timeFrame {
		rl.clients[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for %s", key)
		return false, w.start.Add(rl.timeFrame).Sub(now)
	}

	w.count++
	return true, 0
}

// sweep drops expired windows once per time frame.
func (rl *FixedWindowRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.timeFrame {
		return
	}
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.timeFrame {
			delete(rl.clients, key)
		}
	}
	rl.lastSweep = now
}
