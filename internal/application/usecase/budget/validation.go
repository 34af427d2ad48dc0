package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1900 || year > 9999 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be 1-12 and year 1900-9999",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func validateCategory(ctx context.Context, repo adapter.CategoryRepository, userID, categoryID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, userID, categoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeCategoryNotOwned,
				"category does not belong to user",
				domainerror.ErrCategoryNotOwned,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	return nil
}

func notFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
