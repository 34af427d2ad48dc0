package dashboard

import (
	"testing"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestPeriodTotals(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*entity.Transaction
		income       string
		expense      string
		net          string
	}{
		{
			name:         "empty list",
			transactions: nil,
			income:       "0",
			expense:      "0",
			net:          "0",
		},
		{
			name: "expense sign does not matter",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeExpense, "-40.50", "2024-03-01", nil),
				tx(entity.TransactionTypeExpense, "9.50", "2024-03-02", nil),
			},
			income:  "0",
			expense: "50",
			net:     "-50",
		},
		{
			name: "transfers are excluded",
			transactions: []*entity.Transaction{
				tx(entity.TransactionTypeIncome, "1000", "2024-03-01", nil),
				tx(entity.TransactionTypeTransfer, "-300", "2024-03-02", nil),
				tx(entity.TransactionTypeTransfer, "300", "2024-03-02", nil),
				tx(entity.TransactionTypeExpense, "-250", "2024-03-03", nil),
			},
			income:  "1000",
			expense: "250",
			net:     "750",
		},
		{
			name: "unknown type is excluded",
			transactions: []*entity.Transaction{
				tx(entity.TransactionType("refund"), "10", "2024-03-01", nil),
				nil,
			},
			income:  "0",
			expense: "0",
			net:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodTotals(tt.transactions)
			if !got.Income.Equal(dec(tt.income)) {
				t.Errorf("Income = %s, want %s", got.Income, tt.income)
			}
			if !got.Expense.Equal(dec(tt.expense)) {
				t.Errorf("Expense = %s, want %s", got.Expense, tt.expense)
			}
			if !got.Net().Equal(dec(tt.net)) {
				t.Errorf("Net = %s, want %s", got.Net(), tt.net)
			}
		})
	}
}

func TestTotalBalance(t *testing.T) {
	active := entity.NewAccount(testUser, "Checking", entity.AccountTypeChecking, dec("1500.25"), nil, nil)
	inactive := entity.NewAccount(testUser, "Old savings", entity.AccountTypeSavings, dec("-200"), nil, nil)
	inactive.IsActive = false

	accounts := []*entity.Account{active, inactive, nil}

	if got := TotalBalance(accounts); !got.Equal(dec("1300.25")) {
		t.Errorf("TotalBalance = %s, want 1300.25", got)
	}
	if got := ActiveBalance(accounts); !got.Equal(dec("1500.25")) {
		t.Errorf("ActiveBalance = %s, want 1500.25", got)
	}
	if got := TotalBalance(nil); !got.IsZero() {
		t.Errorf("TotalBalance(nil) = %s, want 0", got)
	}
}
