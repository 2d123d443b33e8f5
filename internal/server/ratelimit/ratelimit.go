// Package ratelimit throttles API clients with per-endpoint token buckets.
// The matching and analysis endpoints burn CPU per request and the auth
// endpoints are credential-guessing targets, so each endpoint tier carries
// its own limit; everything else falls through to a generous default.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket. Tokens refill continuously at rate per second up
// to burst capacity; each allowed request consumes one token.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity int
	rate     float64
	refilled time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	return &bucket{
		tokens:   float64(capacity),
		capacity: capacity,
		rate:     rate,
		refilled: time.Now(),
	}
}

// refill credits tokens for the time elapsed since the last refill.
// Callers must hold mu.
func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.refilled).Seconds() * b.rate
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.refilled = now
}

// take consumes one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())
	if b.tokens < 1.0 {
		return false
	}
	b.tokens -= 1.0
	return true
}

// status reports remaining whole tokens and when the bucket refills to
// capacity, without consuming anything.
func (b *bucket) status() (remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)

	remaining = int(b.tokens)
	resetAt = now
	if deficit := float64(b.capacity) - b.tokens; deficit > 0 {
		resetAt = now.Add(time.Duration(deficit / b.rate * float64(time.Second)))
	}
	return remaining, resetAt
}

// Info is the rate-limit state reported back to clients through the
// X-RateLimit-* and Retry-After response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter configuration, normally built by LoadConfig from
// RATE_LIMIT_* environment variables.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one bucket per client+method+path combination, so a client
// hammering POST /analyze is throttled without losing access to GET /jobs.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket

	accessMu   sync.RWMutex
	lastAccess map[string]time.Time

	config      *Config
	cleanupTick *time.Ticker
	cleanupStop chan struct{}
}

// NewLimiter creates a Limiter. A nil config enables limiting with a
// 1000/minute default and five-minute bucket cleanup.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTick = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID to method+endpoint may
// proceed, returning the decision and header state. Whitelisted clients and
// unlimited endpoints (health check) bypass bucket accounting entirely;
// blacklisted clients are always refused.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	rule := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if rule == nil {
		rule = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	b := l.bucketFor(key, rule)

	l.accessMu.Lock()
	l.lastAccess[key] = time.Now()
	l.accessMu.Unlock()

	allowed := b.take()
	remaining, resetAt := b.status()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetAt); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      rule.Limit,
		Remaining:  remaining,
		ResetTime:  resetAt,
		RetryAfter: retryAfter,
	}
}

// bucketFor returns the bucket for key, creating it from the endpoint rule
// on first sight.
func (l *Limiter) bucketFor(key string, rule *EndpointConfig) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b = newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTick.C:
			l.evictIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets untouched for over an hour so per-client state
// does not grow without bound.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.accessMu.RLock()
	keys := make([]string, 0, len(l.lastAccess))
	for key := range l.lastAccess {
		keys = append(keys, key)
	}
	l.accessMu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessMu.Lock()
	defer l.accessMu.Unlock()

	for _, key := range keys {
		if at, ok := l.lastAccess[key]; ok && at.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop halts the cleanup goroutine. Called during server shutdown.
func (l *Limiter) Stop() {
	if l.cleanupTick != nil {
		l.cleanupTick.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
