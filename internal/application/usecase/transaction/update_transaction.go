package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged; ClearCategory removes the category.
type UpdateTransactionInput struct {
	TransactionID  uuid.UUID
	UserID         uuid.UUID
	AccountID      *uuid.UUID
	CategoryID     *uuid.UUID
	ClearCategory  bool
	Description    *string
	Amount         *decimal.Decimal
	Type           *entity.TransactionType
	Date           *time.Time
	IsConsolidated *bool
	Notes          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       validator
	cache           adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator{accountRepo: accountRepo, categoryRepo: categoryRepo},
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.UserID, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.AccountID != nil {
		transaction.AccountID = *input.AccountID
	}
	if input.ClearCategory {
		transaction.CategoryID = nil
	} else if input.CategoryID != nil {
		transaction.CategoryID = input.CategoryID
	}
	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Date != nil {
		transaction.Date = entity.NormalizeDate(*input.Date)
	}
	if input.IsConsolidated != nil {
		transaction.IsConsolidated = *input.IsConsolidated
	}
	if input.Notes != nil {
		transaction.Notes = input.Notes
	}

	// References the input leaves alone may point at deleted records.
	if err := validateFields(transaction); err != nil {
		return nil, err
	}
	if input.AccountID != nil {
		if err := uc.validator.validateAccount(ctx, transaction); err != nil {
			return nil, err
		}
	}
	if !input.ClearCategory && input.CategoryID != nil {
		if err := uc.validator.validateCategory(ctx, transaction); err != nil {
			return nil, err
		}
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
