package http

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterWait(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RPS: 10.0})

	ctx := context.Background()
	url := "https://www.youtube.com/youtubei/v1/browse"

	if err := rl.Wait(ctx, url); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	start := time.Now()
	if err := rl.Wait(ctx, url); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("second request took %v, expected ~100ms", elapsed)
	}
}

func TestRateLimiterUnlimited(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{})
	for i := 0; i < 100; i++ {
		if err := rl.Wait(context.Background(), "https://www.youtube.com/"); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
}

func TestRateLimiterContextCanceled(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RPS: 0.5})

	ctx, cancel := context.WithCancel(context.Background())
	url := "https://www.youtube.com/youtubei/v1/search"

	if err := rl.Wait(ctx, url); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	cancel()

	if err := rl.Wait(ctx, url); err == nil {
		t.Fatal("expected context canceled error")
	}
}

func TestRateLimiterCustomRate(t *testing.T) {
	cfg := DefaultRateLimiterConfig()
	cfg.CustomRates["i.ytimg.com"] = 0
	rl := NewRateLimiter(cfg)

	if l := rl.getLimiter("https://i.ytimg.com/vi/x/hq.jpg"); l != nil {
		t.Error("expected no limiter for unlimited host")
	}
	if l := rl.getLimiter("https://www.youtube.com:443/"); l == nil {
		t.Error("expected a limiter for youtube host")
	}

	rl.SetCustomRate("www.youtube.com", 7)
	if got := rl.getLimiter("https://www.youtube.com/").Limit(); got != 7 {
		t.Errorf("expected custom limit 7, got %v", got)
	}
}

func TestRecordRateLimitErrorBackoff(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/youtubei/v1/next"
	rl.getLimiter(url)

	if got := rl.RecordRateLimitError(url, 0); got != InitialBackoff {
		t.Errorf("first backoff = %v, want %v", got, InitialBackoff)
	}
	if got := rl.RecordRateLimitError(url, 0); got != 2*InitialBackoff {
		t.Errorf("second backoff = %v, want %v", got, 2*InitialBackoff)
	}
	if got := rl.RecordRateLimitError(url, 30*time.Second); got != 30*time.Second {
		t.Errorf("retry-after backoff = %v, want 30s", got)
	}

	state := rl.GetBackoffState(url)
	if state == nil {
		t.Fatal("expected backoff state")
	}
	if state.ReducedRPS != state.OriginalRPS*MinRPSMultiplier {
		t.Errorf("reduced rps = %v, want %v", state.ReducedRPS, state.OriginalRPS*MinRPSMultiplier)
	}

	rl.RecordSuccess(url)
	if got := rl.GetBackoffState(url).ConsecutiveErrors; got != 2 {
		t.Errorf("consecutive errors after success = %d, want 2", got)
	}
}

func TestWaitForBackoffCanceled(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/"
	rl.RecordRateLimitError(url, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.WaitForBackoff(ctx, url); err == nil {
		t.Fatal("expected context error while backed off")
	}
}
