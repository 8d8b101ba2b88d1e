package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxFailures int64, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxFailures, window), mr
}

func TestLoginLimiter_AllowsFreshUsername(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)

	ok, err := limiter.Allow(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected fresh username to be allowed")
	}
}

func TestLoginLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "bob")
		if err != nil || !ok {
			t.Fatalf("attempt %d should be allowed: ok=%v err=%v", i, ok, err)
		}
		if err := limiter.RecordFailure(ctx, "bob"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	ok, err := limiter.Allow(ctx, "bob")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected fourth attempt to be blocked")
	}

	// Other usernames are unaffected.
	if ok, _ := limiter.Allow(ctx, "carol"); !ok {
		t.Fatalf("unrelated username must not be blocked")
	}
}

func TestLoginLimiter_ResetClearsCounter(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "dave"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if ok, _ := limiter.Allow(ctx, "dave"); ok {
		t.Fatalf("expected block after failure")
	}

	if err := limiter.Reset(ctx, "dave"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if ok, _ := limiter.Allow(ctx, "dave"); !ok {
		t.Fatalf("expected allow after reset")
	}
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "erin"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if ok, _ := limiter.Allow(ctx, "erin"); ok {
		t.Fatalf("expected block inside window")
	}

	mr.FastForward(2 * time.Minute)

	if ok, _ := limiter.Allow(ctx, "erin"); !ok {
		t.Fatalf("expected allow after window expiry")
	}
}
