package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Month count bounds for the trailing series.
const (
	MinSeriesMonths     = 1
	MaxSeriesMonths     = 24
	DefaultSeriesMonths = 6
)

// GetMonthlySeriesInput represents the input for the trailing monthly series.
// A zero Months uses the configured default; a zero ReferenceDate means today.
type GetMonthlySeriesInput struct {
	UserID        uuid.UUID
	Months        int
	ReferenceDate time.Time
}

// GetMonthlySeriesOutput represents the trailing monthly series.
type GetMonthlySeriesOutput struct {
	Months int            `json:"months"`
	Totals Totals         `json:"totals"`
	Points []MonthlyPoint `json:"points"`
}

// GetMonthlySeriesUseCase builds the income/expense series for the last N months.
type GetMonthlySeriesUseCase struct {
	loader        snapshot.Loader
	cache         adapter.ReportCache
	labeler       *MonthLabeler
	defaultMonths int
	now           func() time.Time
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase instance.
func NewGetMonthlySeriesUseCase(
	loader snapshot.Loader,
	cache adapter.ReportCache,
	labeler *MonthLabeler,
	defaultMonths int,
	now func() time.Time,
) *GetMonthlySeriesUseCase {
	if defaultMonths < MinSeriesMonths || defaultMonths > MaxSeriesMonths {
		defaultMonths = DefaultSeriesMonths
	}
	if now == nil {
		now = time.Now
	}
	return &GetMonthlySeriesUseCase{
		loader:        loader,
		cache:         cache,
		labeler:       labeler,
		defaultMonths: defaultMonths,
		now:           now,
	}
}

// Execute computes the series ending at the reference month.
func (uc *GetMonthlySeriesUseCase) Execute(
	ctx context.Context,
	input GetMonthlySeriesInput,
) (*GetMonthlySeriesOutput, error) {
	months := input.Months
	if months == 0 {
		months = uc.defaultMonths
	}
	if months < MinSeriesMonths || months > MaxSeriesMonths {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("months must be between %d and %d", MinSeriesMonths, MaxSeriesMonths),
			domainerror.ErrInvalidMonthCount,
		)
	}

	ref := input.ReferenceDate
	if ref.IsZero() {
		ref = uc.now()
	}
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	periods := valueobject.TrailingMonths(ref, months)
	first, last := periods[0], periods[len(periods)-1]
	key := fmt.Sprintf("series:%s:%d", last.Key(), months)

	return reportcache.GetOrCompute(ctx, uc.cache, input.UserID, key,
		func(ctx context.Context) (*GetMonthlySeriesOutput, error) {
			ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
				UserID:  input.UserID,
				Start:   first.Start,
				End:     last.End,
				Include: snapshot.PartTransactions,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to load series transactions: %w", err)
			}

			points := BuildMonthlySeries(ledger.Transactions, ref, months, uc.labeler)
			return &GetMonthlySeriesOutput{
				Months: months,
				Totals: sumPoints(points),
				Points: points,
			}, nil
		})
}

func sumPoints(points []MonthlyPoint) Totals {
	totals := Totals{}
	for _, p := range points {
		totals.Income = totals.Income.Add(p.Income)
		totals.Expense = totals.Expense.Add(p.Expense)
	}
	return totals
}
