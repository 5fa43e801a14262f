package tui

import (
	"net"
	"testing"
	"time"
)

func TestIPRateLimiterBurst(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{ConnectionsPerSecond: 1, Burst: 2, CleanupInterval: time.Minute})
	defer rl.Stop()

	now := time.Now()
	if !rl.allowAt("10.0.0.1", now) || !rl.allowAt("10.0.0.1", now) {
		t.Fatal("burst should be allowed")
	}
	if rl.allowAt("10.0.0.1", now) {
		t.Error("third session in the same instant should be refused")
	}
	if !rl.allowAt("10.0.0.2", now) {
		t.Error("other IPs have their own budget")
	}
	if !rl.allowAt("10.0.0.1", now.Add(time.Second)) {
		t.Error("budget should refill")
	}
}

func TestIPRateLimiterCleanup(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{ConnectionsPerSecond: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	now := time.Now()
	rl.allowAt("10.0.0.1", now)
	rl.cleanup(now.Add(3 * time.Minute))

	if _, ok := rl.limiters.Load("10.0.0.1"); ok {
		t.Error("stale limiter should be dropped")
	}
}

func TestHostOf(t *testing.T) {
	addr := &net.TCPAddr{IP: net.ParseIP("192.0.2.7"), Port: 5555}
	if got := hostOf(addr); got != "192.0.2.7" {
		t.Errorf("hostOf() = %q", got)
	}
	if hostOf(nil) != "" {
		t.Error("hostOf(nil) should be empty")
	}
}
