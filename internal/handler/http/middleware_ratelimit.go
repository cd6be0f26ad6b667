// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"golang.org/x/time/rate"
)

const (
	limiterTTL      = 15 * time.Minute
	cleanupInterval = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client IP. A bucket refills
// perMinute tokens a minute and holds at most perMinute tokens.
type rateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	perMinute   int
	lastCleanup time.Time
	now         func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter returns a limiter allowing perMinute requests per client
// IP. perMinute <= 0 disables limiting.
func newRateLimiter(perMinute int) *rateLimiter {
	return &rateLimiter{
		limiters:  make(map[string]*limiterEntry),
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (l *rateLimiter) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := l.limiter(clientIP(r))
		if limiter == nil || limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		retryAfter := time.Minute / time.Duration(l.perMinute)
		logger.FromRequest(r).Warn().Str("client", clientIP(r)).Str("path", r.URL.Path).Msg("rate limit exceeded")
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter/time.Second)+1))
		utils.WriteMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
	})
}

func (l *rateLimiter) limiter(key string) *rate.Limiter {
	if l.perMinute <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry, ok := l.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	// idle buckets are dropped on insert, at most once per cleanupInterval
	if now.Sub(l.lastCleanup) > cleanupInterval {
		l.cleanup(now)
		l.lastCleanup = now
	}

	interval := time.Minute / time.Duration(l.perMinute)
	limiter := rate.NewLimiter(rate.Every(interval), l.perMinute)
	l.limiters[key] = &limiterEntry{limiter: limiter, lastSeen: now}

	return limiter
}

func (l *rateLimiter) cleanup(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > limiterTTL {
			delete(l.limiters, key)
		}
	}
}

// clientIP returns the host part of the remote address.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
