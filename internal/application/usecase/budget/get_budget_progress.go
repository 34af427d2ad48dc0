package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GetBudgetProgressInput represents the input for a month's budget progress.
type GetBudgetProgressInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetBudgetProgressOutput represents a month's budget progress.
type GetBudgetProgressOutput struct {
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Summary BudgetSummary    `json:"summary"`
	Budgets []BudgetProgress `json:"budgets"`
}

// GetBudgetProgressUseCase computes spend against each budget of a month.
type GetBudgetProgressUseCase struct {
	loader snapshot.Loader
	cache  adapter.ReportCache
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(loader snapshot.Loader, cache adapter.ReportCache) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{
		loader: loader,
		cache:  cache,
	}
}

// Execute computes the progress of the month's budgets.
func (uc *GetBudgetProgressUseCase) Execute(
	ctx context.Context,
	input GetBudgetProgressInput,
) (*GetBudgetProgressOutput, error) {
	if err := valueobject.ValidateReportMonth(input.Month, input.Year); err != nil {
		return nil, err
	}

	period := valueobject.MonthFor(input.Year, time.Month(input.Month), time.UTC)
	key := "budgets:" + period.Key()

	return reportcache.GetOrCompute(ctx, uc.cache, input.UserID, key,
		func(ctx context.Context) (*GetBudgetProgressOutput, error) {
			ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
				UserID:  input.UserID,
				Start:   period.Start,
				End:     period.End,
				Month:   input.Month,
				Year:    input.Year,
				Include: snapshot.PartCategories | snapshot.PartTransactions | snapshot.PartBudgets,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to load budget snapshot: %w", err)
			}

			lookup := valueobject.NewLedgerLookup(ledger.Categories, nil)
			progress := BuildBudgetProgress(ledger.Budgets, ledger.Transactions, lookup)

			return &GetBudgetProgressOutput{
				Month:   input.Month,
				Year:    input.Year,
				Summary: SummarizeBudgets(progress),
				Budgets: progress,
			}, nil
		})
}
