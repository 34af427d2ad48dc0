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
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RecentTransactionLimit is how many transactions the summary lists.
const RecentTransactionLimit = 5

// GetSummaryInput represents the input for the monthly dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// SummaryPeriod identifies the summarized month.
type SummaryPeriod struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RecentTransaction is a transaction row with resolved names.
type RecentTransaction struct {
	ID            uuid.UUID              `json:"id"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          entity.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
	CategoryName  string                 `json:"category_name"`
	CategoryColor string                 `json:"category_color"`
	AccountName   string                 `json:"account_name"`
}

// GetSummaryOutput represents the monthly dashboard summary.
type GetSummaryOutput struct {
	Period             SummaryPeriod       `json:"period"`
	TotalBalance       decimal.Decimal     `json:"total_balance"`
	ActiveBalance      decimal.Decimal     `json:"active_balance"`
	Income             decimal.Decimal     `json:"income"`
	Expense            decimal.Decimal     `json:"expense"`
	Net                decimal.Decimal     `json:"net"`
	Breakdown          []CategorySlice     `json:"breakdown"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}

// GetSummaryUseCase builds the monthly dashboard.
type GetSummaryUseCase struct {
	loader          snapshot.Loader
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
	labeler         *MonthLabeler
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	loader snapshot.Loader,
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
	labeler *MonthLabeler,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		loader:          loader,
		transactionRepo: transactionRepo,
		cache:           cache,
		labeler:         labeler,
	}
}

// Execute computes the summary of the requested month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := valueobject.ValidateReportMonth(input.Month, input.Year); err != nil {
		return nil, err
	}

	period := valueobject.MonthFor(input.Year, time.Month(input.Month), time.UTC)
	key := "summary:" + period.Key()

	return reportcache.GetOrCompute(ctx, uc.cache, input.UserID, key,
		func(ctx context.Context) (*GetSummaryOutput, error) {
			ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
				UserID:  input.UserID,
				Start:   period.Start,
				End:     period.End,
				Include: snapshot.PartAccounts | snapshot.PartCategories | snapshot.PartTransactions,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to load summary snapshot: %w", err)
			}

			recent, err := uc.transactionRepo.FindRecent(ctx, input.UserID, RecentTransactionLimit)
			if err != nil {
				return nil, fmt.Errorf("failed to load recent transactions: %w", err)
			}

			lookup := valueobject.NewLedgerLookup(ledger.Categories, ledger.Accounts)
			totals := PeriodTotals(ledger.Transactions)

			return &GetSummaryOutput{
				Period: SummaryPeriod{
					Key:       period.Key(),
					Label:     labelerOrDefault(uc.labeler).Label(period.Start),
					StartDate: period.Start,
					EndDate:   period.End,
				},
				TotalBalance:       TotalBalance(ledger.Accounts),
				ActiveBalance:      ActiveBalance(ledger.Accounts),
				Income:             totals.Income,
				Expense:            totals.Expense,
				Net:                totals.Net(),
				Breakdown:          BuildCategoryBreakdown(ledger.Transactions, lookup),
				RecentTransactions: toRecentTransactions(recent, lookup),
			}, nil
		})
}

func toRecentTransactions(transactions []*entity.Transaction, lookup *valueobject.LedgerLookup) []RecentTransaction {
	rows := make([]RecentTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		ref := lookup.Category(tx.CategoryID)
		accountName, _ := lookup.AccountName(tx.AccountID)
		rows = append(rows, RecentTransaction{
			ID:            tx.ID,
			Description:   tx.Description,
			Amount:        tx.Amount,
			Type:          tx.Type,
			Date:          tx.Date,
			CategoryName:  ref.Name,
			CategoryColor: ref.Color,
			AccountName:   accountName,
		})
	}
	return rows
}
