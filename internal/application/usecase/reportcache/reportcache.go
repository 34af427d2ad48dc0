// Package reportcache wraps report computations with the optional view cache.
package reportcache

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// GetOrCompute returns the cached view under key or computes and stores it.
// A view is not stored when the owner's cache was invalidated while it was
// being computed. Cache failures are logged and never fail the request.
func GetOrCompute[T any](
	ctx context.Context,
	cache adapter.ReportCache,
	userID uuid.UUID,
	key string,
	compute func(ctx context.Context) (T, error),
) (T, error) {
	if cache == nil {
		return compute(ctx)
	}

	var cached T
	hit, err := cache.Get(ctx, userID, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "report cache read failed", "key", key, "error", err)
	} else if hit {
		slog.DebugContext(ctx, "report cache hit", "key", key)
		return cached, nil
	}

	generation, genErr := cache.Generation(ctx, userID)
	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if genErr != nil {
		slog.WarnContext(ctx, "report cache generation read failed", "key", key, "error", genErr)
		return value, nil
	}
	if err := cache.Set(ctx, userID, generation, key, value); err != nil {
		slog.WarnContext(ctx, "report cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Invalidate drops the owner's cached views after a write.
func Invalidate(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateOwner(ctx, userID); err != nil {
		slog.WarnContext(ctx, "report cache invalidation failed", "user_id", userID, "error", err)
	}
}
