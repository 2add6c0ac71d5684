package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  60,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/questions/generate", Method: "POST", Limit: 3, Window: time.Minute},
			{Path: "/sessions/", Method: "POST", Limit: 5, Window: time.Minute},
		},
	}
}

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a", "/questions/generate", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a", "/questions/generate", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("client-a", "/questions/generate", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a", "/questions/generate", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("client-b", "/questions/generate", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-a", "/questions/generate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 200; i++ {
		allowed, _ := l.Allow("client-a", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_BurstCapsInitialTokens(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = []EndpointConfig{
		{Path: "/questions/generate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("c", "/questions/generate", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("c", "/questions/generate", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("c", "/questions/generate", "POST")
	assert.False(t, allowed, "burst of 2 blocks the third immediate request")
}

func TestLimiter_Concurrent(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = nil // use default limit of 60
	l := NewLimiter(cfg)
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				l.Allow(fmt.Sprintf("client-%d", n), "/sessions/abc", "GET")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/questions/generate", Method: "POST", Limit: 10},
		{Path: "/sessions/", Method: "POST", Limit: 30},
		{Path: "/sessions", Method: "POST", Limit: 60},
	}

	t.Run("exact match", func(t *testing.T) {
		cfg := MatchEndpoint("/questions/generate", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 10, cfg.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		cfg := MatchEndpoint("/sessions/abc123/messages", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 30, cfg.Limit)
	})

	t.Run("exact beats prefix", func(t *testing.T) {
		cfg := MatchEndpoint("/sessions", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 60, cfg.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		cfg := MatchEndpoint("/questions/generate", "GET", configs)
		assert.Nil(t, cfg)
	})

	t.Run("health unlimited", func(t *testing.T) {
		cfg := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, -1, cfg.Limit)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/other", "GET", configs))
	})
}
