// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Period        BreakdownPeriod `json:"period"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Categories    []CategorySlice `json:"categories"`
}

// BreakdownPeriod represents the period information for category breakdown.
type BreakdownPeriod struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PeriodLabel string    `json:"period_label"`
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	loader  snapshot.Loader
	cache   adapter.ReportCache
	labeler *MonthLabeler
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	loader snapshot.Loader,
	cache adapter.ReportCache,
	labeler *MonthLabeler,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		loader:  loader,
		cache:   cache,
		labeler: labeler,
	}
}

// Execute retrieves spending breakdown by category for the given inclusive range.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	if err := valueobject.ValidateReportRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("breakdown:%s:%s",
		valueobject.DateString(input.StartDate),
		valueobject.DateString(input.EndDate),
	)

	return reportcache.GetOrCompute(ctx, uc.cache, input.UserID, key,
		func(ctx context.Context) (*GetCategoryBreakdownOutput, error) {
			ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
				UserID:  input.UserID,
				Start:   input.StartDate,
				End:     input.EndDate,
				Include: snapshot.PartCategories | snapshot.PartTransactions,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to get category breakdown: %w", err)
			}

			lookup := valueobject.NewLedgerLookup(ledger.Categories, nil)
			categories := BuildCategoryBreakdown(ledger.Transactions, lookup)

			return &GetCategoryBreakdownOutput{
				Period: BreakdownPeriod{
					StartDate:   input.StartDate,
					EndDate:     input.EndDate,
					PeriodLabel: labelerOrDefault(uc.labeler).RangeLabel(input.StartDate, input.EndDate),
				},
				TotalExpenses: BreakdownTotal(categories),
				Categories:    categories,
			}, nil
		})
}

func labelerOrDefault(l *MonthLabeler) *MonthLabeler {
	if l == nil {
		return NewMonthLabeler(DefaultLocale)
	}
	return l
}
