package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID   uuid.UUID
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Month      *int
	Year       *int
	Amount     *decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.UserID, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if input.CategoryID != nil {
		if err := validateCategory(ctx, uc.categoryRepo, input.UserID, *input.CategoryID); err != nil {
			return nil, err
		}
		budget.CategoryID = *input.CategoryID
	}
	if input.Month != nil {
		budget.Month = *input.Month
	}
	if input.Year != nil {
		budget.Year = *input.Year
	}
	if err := validatePeriod(budget.Month, budget.Year); err != nil {
		return nil, err
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		budget.Amount = *input.Amount
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
