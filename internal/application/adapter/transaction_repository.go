// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Every query is scoped to a single owner.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves an owner's transaction by its ID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Transaction, error)

	// FindByDateRange retrieves transactions whose date lies in the inclusive
	// calendar-day range [start, end], newest first.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindRecent retrieves the owner's most recent transactions, newest first.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
