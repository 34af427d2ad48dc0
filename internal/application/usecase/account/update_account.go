package account

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

// UpdateAccountInput represents the input for account update. Nil fields are left unchanged.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Type      *entity.AccountType
	Balance   *decimal.Decimal
	Color     *string
	Icon      *string
	IsActive  *bool
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.ReportCache
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, cache adapter.ReportCache) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.UserID, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		account.Name = name
	}

	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		account.Type = *input.Type
	}

	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if input.Color != nil {
		if err := validateColor(input.Color); err != nil {
			return nil, err
		}
		account.Color = input.Color
	}

	if input.Icon != nil {
		account.Icon = input.Icon
	}

	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
