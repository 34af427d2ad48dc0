package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Totals holds the income and expense sums of a set of transactions.
// Expense is always a magnitude.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// TotalBalance sums the balance of every account, inactive ones included.
func TotalBalance(accounts []*entity.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a == nil {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// ActiveBalance sums the balance of active accounts only.
func ActiveBalance(accounts []*entity.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a == nil || !a.IsActive {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// PeriodTotals sums income and expense over transactions already filtered to a period.
// Transfers and unknown types contribute to neither side.
func PeriodTotals(transactions []*entity.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		totals = totals.add(tx)
	}
	return totals
}

func (t Totals) add(tx *entity.Transaction) Totals {
	switch tx.Type {
	case entity.TransactionTypeIncome:
		t.Income = t.Income.Add(tx.Amount)
	case entity.TransactionTypeExpense:
		t.Expense = t.Expense.Add(valueobject.Magnitude(tx.Amount))
	}
	return t
}
