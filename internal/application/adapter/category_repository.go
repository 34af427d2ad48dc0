// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves an owner's category by its ID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a given user ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database. Transactions and budgets
	// keep their dangling reference.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
