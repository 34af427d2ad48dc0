package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an owner's account by its ID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// Delete soft-deletes an account from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
