package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		assert.True(t, b.take(), "request %d within burst", i+1)
	}
	assert.False(t, b.take(), "request past burst capacity")
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 10; i++ {
		b.take()
	}

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, b.take(), "one token refilled after a second")
	assert.False(t, b.take(), "refilled token already spent")
}

func TestBucket_Status(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 5; i++ {
		b.take()
	}

	remaining, resetAt := b.status()
	assert.Equal(t, 5, remaining)
	assert.False(t, resetAt.Before(time.Now().Add(-time.Second)), "reset time in the future")
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/jobs", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/jobs", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/analyze", "POST")
		require.True(t, allowed, "whitelisted request %d", i+1)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/jobs", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/auth/login", "POST")
		require.True(t, allowed, "request %d with limiting disabled", i+1)
	}
}

func TestLimiter_EndpointRuleOverridesDefault(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyze", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/analyze", "POST")
		require.True(t, allowed, "analysis request %d", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/analyze", "POST")
	assert.False(t, allowed, "analysis burst exhausted")
	assert.Equal(t, 5, info.Limit)

	// Other endpoints keep their own buckets and the default limit.
	allowed, info = limiter.Allow("127.0.0.1", "/jobs", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_ConcurrentClients(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/recommendations", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_RecentBucketsSurviveCleanup(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 100 * time.Millisecond,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/jobs", "GET")
		require.True(t, allowed)
	}

	time.Sleep(150 * time.Millisecond)

	// Recently used buckets stay functional across cleanup ticks.
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/jobs", "GET")
		assert.True(t, allowed, "client %s after cleanup", clientID)
	}
}

func TestLimiter_BurstSmallerThanLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/auth/login", "POST")
		require.True(t, allowed, "login attempt %d within burst", i+1)
	}

	allowed, _ := limiter.Allow("127.0.0.1", "/auth/login", "POST")
	assert.False(t, allowed, "login attempts past burst are throttled")
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/jobs", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	rule := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, rule)
	assert.Equal(t, 0, rule.Limit)
}

func TestMatchEndpoint_PrefixCoversParameterizedRoutes(t *testing.T) {
	configs := DefaultEndpointConfigs()

	rule := MatchEndpoint("/resumes/1b4e28ba/analyze", "POST", configs)
	require.NotNil(t, rule)
	assert.Equal(t, "/resumes/", rule.Path)

	rule = MatchEndpoint("/analysis/1b4e28ba/2c5f39cb", "GET", configs)
	require.NotNil(t, rule)
	assert.Equal(t, "/analysis/", rule.Path)
}

func TestMatchEndpoint_ExactBeatsPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/resumes/", Method: "POST", Limit: 60, Window: time.Minute},
		{Path: "/resumes/special", Method: "POST", Limit: 5, Window: time.Minute},
	}

	rule := MatchEndpoint("/resumes/special", "POST", configs)
	require.NotNil(t, rule)
	assert.Equal(t, 5, rule.Limit)
}
