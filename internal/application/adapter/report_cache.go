package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache stores computed report views per owner. A miss is reported as
// (false, nil); implementations may drop entries at any time.
//
// Every invalidation advances the owner's generation. A view computed from
// data read at generation g is only stored while the generation is still g.
type ReportCache interface {
	// Get decodes the cached value for key into dest.
	Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error)

	// Generation returns the owner's current invalidation counter.
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)

	// Set stores value under key unless the owner was invalidated after generation.
	Set(ctx context.Context, userID uuid.UUID, generation int64, key string, value any) error

	// InvalidateOwner advances the owner's generation and drops every cached view.
	InvalidateOwner(ctx context.Context, userID uuid.UUID) error
}
