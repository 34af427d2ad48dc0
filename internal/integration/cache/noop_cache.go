package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// noopCache never stores anything, so every view is recomputed.
type noopCache struct{}

// NewNoopCache returns a report cache used when Redis is not configured.
func NewNoopCache() adapter.ReportCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, uuid.UUID, string, any) (bool, error) { return false, nil }

func (noopCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (noopCache) Set(context.Context, uuid.UUID, int64, string, any) error { return nil }

func (noopCache) InvalidateOwner(context.Context, uuid.UUID) error { return nil }
