package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CategoryID         *uuid.UUID
	Description        string
	Amount             decimal.Decimal
	Type               entity.TransactionType
	Date               time.Time
	IsConsolidated     *bool // Optional, defaults to true
	IsRecurring        bool
	RecurrenceRule     *string
	InstallmentCurrent *int
	InstallmentTotal   *int
	Notes              *string
	AttachmentURL      *string
	TransferPeerID     *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       validator
	cache           adapter.ReportCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator{accountRepo: accountRepo, categoryRepo: categoryRepo},
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		input.CategoryID,
		strings.TrimSpace(input.Description),
		input.Amount,
		input.Type,
		input.Date,
	)
	if input.IsConsolidated != nil {
		transaction.IsConsolidated = *input.IsConsolidated
	}
	transaction.IsRecurring = input.IsRecurring
	transaction.RecurrenceRule = input.RecurrenceRule
	transaction.InstallmentCurrent = input.InstallmentCurrent
	transaction.InstallmentTotal = input.InstallmentTotal
	transaction.Notes = input.Notes
	transaction.AttachmentURL = input.AttachmentURL
	transaction.TransferPeerID = input.TransferPeerID

	if transaction.IsRecurring {
		groupID := uuid.New()
		transaction.RecurrenceGroupID = &groupID
	}

	if err := uc.validator.validate(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	slog.DebugContext(ctx, "transaction created",
		"transaction_id", transaction.ID,
		"user_id", transaction.UserID,
		"type", transaction.Type,
	)
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
