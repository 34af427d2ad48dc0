package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
// Zero dates default to the current month.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	Search     string // Case-insensitive description match
}

// TransactionOutput is a transaction with its resolved category and account names.
type TransactionOutput struct {
	*entity.Transaction
	CategoryName  string
	CategoryColor string
	AccountName   string
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	StartDate    time.Time
	EndDate      time.Time
	Transactions []*TransactionOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase lists an owner's transactions in a date range, newest first.
type ListTransactionsUseCase struct {
	loader snapshot.Loader
	now    func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(loader snapshot.Loader, now func() time.Time) *ListTransactionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ListTransactionsUseCase{
		loader: loader,
		now:    now,
	}
}

// Execute lists the matching transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() && end.IsZero() {
		month := valueobject.MonthOf(uc.now().UTC())
		start, end = month.Start, month.End
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date and end_date must form a valid range",
			domainerror.ErrInvalidDateRange,
		)
	}

	ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
		UserID:  input.UserID,
		Start:   start,
		End:     end,
		Include: snapshot.PartAccounts | snapshot.PartCategories | snapshot.PartTransactions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	lookup := valueobject.NewLedgerLookup(ledger.Categories, ledger.Accounts)
	search := strings.ToLower(strings.TrimSpace(input.Search))

	matched := make([]*entity.Transaction, 0, len(ledger.Transactions))
	rows := make([]*TransactionOutput, 0, len(ledger.Transactions))
	for _, tx := range ledger.Transactions {
		if !matches(tx, input, search) {
			continue
		}
		matched = append(matched, tx)

		ref := lookup.Category(tx.CategoryID)
		accountName, _ := lookup.AccountName(tx.AccountID)
		rows = append(rows, &TransactionOutput{
			Transaction:   tx,
			CategoryName:  ref.Name,
			CategoryColor: ref.Color,
			AccountName:   accountName,
		})
	}

	totals := dashboard.PeriodTotals(matched)

	return &ListTransactionsOutput{
		StartDate:    start,
		EndDate:      end,
		Transactions: rows,
		Totals: TotalsOutput{
			IncomeTotal:  totals.Income,
			ExpenseTotal: totals.Expense,
			NetTotal:     totals.Net(),
		},
	}, nil
}

func matches(tx *entity.Transaction, input ListTransactionsInput, search string) bool {
	if input.Type != nil && tx.Type != *input.Type {
		return false
	}
	if input.CategoryID != nil && (tx.CategoryID == nil || *tx.CategoryID != *input.CategoryID) {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(tx.Description), search) {
		return false
	}
	return true
}
