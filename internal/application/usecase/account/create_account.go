package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID  uuid.UUID
	Name    string
	Type    entity.AccountType
	Balance decimal.Decimal
	Color   *string
	Icon    *string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.ReportCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, cache adapter.ReportCache) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	account := entity.NewAccount(input.UserID, name, input.Type, input.Balance, input.Color, input.Icon)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
