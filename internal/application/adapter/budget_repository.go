package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// Duplicate budgets for the same category and month are not rejected.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves an owner's budget by its ID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Budget, error)

	// FindByPeriod retrieves the budgets of a month ordered by creation time.
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
