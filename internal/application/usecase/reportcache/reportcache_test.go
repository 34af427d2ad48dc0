package reportcache

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
)

func TestGetOrCompute(t *testing.T) {
	ctx := context.Background()
	cache := adaptertest.NewCache()
	owner := uuid.New()

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrCompute(ctx, cache, owner, "answer", compute)
		if err != nil || got != 42 {
			t.Fatalf("GetOrCompute() = %d, %v", got, err)
		}
	}
	if calls != 1 || cache.Hits != 1 {
		t.Errorf("calls=%d hits=%d, want 1/1", calls, cache.Hits)
	}

	Invalidate(ctx, cache, owner)
	if _, err := GetOrCompute(ctx, cache, owner, "answer", compute); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls after invalidation = %d, want 2", calls)
	}
}

func TestGetOrCompute_InvalidatedWhileComputing(t *testing.T) {
	ctx := context.Background()
	cache := adaptertest.NewCache()
	owner := uuid.New()

	stale := func(ctx context.Context) (string, error) {
		Invalidate(ctx, cache, owner)
		return "stale", nil
	}
	got, err := GetOrCompute(ctx, cache, owner, "summary", stale)
	if err != nil || got != "stale" {
		t.Fatalf("GetOrCompute() = %q, %v", got, err)
	}

	var cached string
	if hit, _ := cache.Get(ctx, owner, "summary", &cached); hit {
		t.Errorf("view computed across an invalidation was cached: %q", cached)
	}

	fresh := func(context.Context) (string, error) { return "fresh", nil }
	if got, _ := GetOrCompute(ctx, cache, owner, "summary", fresh); got != "fresh" {
		t.Errorf("GetOrCompute() = %q, want fresh", got)
	}
}

func TestGetOrCompute_ComputeError(t *testing.T) {
	ctx := context.Background()
	cache := adaptertest.NewCache()
	boom := errors.New("boom")

	_, err := GetOrCompute(ctx, cache, uuid.New(), "summary", func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if cache.Sets != 0 {
		t.Errorf("Sets = %d, want 0", cache.Sets)
	}
}

func TestGetOrCompute_NilCache(t *testing.T) {
	got, err := GetOrCompute(context.Background(), nil, uuid.New(), "k", func(context.Context) (int, error) {
		return 7, nil
	})
	if err != nil || got != 7 {
		t.Errorf("GetOrCompute() = %d, %v", got, err)
	}
	Invalidate(context.Background(), nil, uuid.New())
}
