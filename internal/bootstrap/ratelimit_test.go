package bootstrap

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	now := time.Unix(1700000000, 0)
	limiter := NewFixedWindowLimiter(5, time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 1; i <= 5; i++ {
		if limiter.IsLimited("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if !limiter.IsLimited("1.2.3.4") {
		t.Error("6th request within the window should be limited")
	}
	if !limiter.IsLimited("1.2.3.4") {
		t.Error("limited address must stay limited within the window")
	}

	if limiter.IsLimited("5.6.7.8") {
		t.Error("a different address must not be limited")
	}

	now = now.Add(61 * time.Second)
	if limiter.IsLimited("1.2.3.4") {
		t.Error("request after the window elapsed should be allowed again")
	}
}

func TestFixedWindowLimiterWindowBoundary(t *testing.T) {
	now := time.Unix(1700000000, 0)
	limiter := NewFixedWindowLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.IsLimited("addr")
	limiter.IsLimited("addr")
	if !limiter.IsLimited("addr") {
		t.Fatal("3rd request should be limited")
	}

	// Ровно на границе окно еще действует
	now = now.Add(time.Minute)
	if !limiter.IsLimited("addr") {
		t.Error("request exactly at resetAt should still be limited")
	}
	now = now.Add(time.Nanosecond)
	if limiter.IsLimited("addr") {
		t.Error("request past resetAt should start a fresh window")
	}
}
