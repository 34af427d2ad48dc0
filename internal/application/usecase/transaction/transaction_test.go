package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var testUser = uuid.MustParse("11111111-1111-1111-1111-111111111111")

type fixture struct {
	store    *adaptertest.Store
	cache    *adaptertest.Cache
	account  *entity.Account
	category *entity.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store:    adaptertest.NewStore(),
		cache:    adaptertest.NewCache(),
		account:  entity.NewAccount(testUser, "Wallet", entity.AccountTypeCash, decimal.Zero, nil, nil),
		category: entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil),
	}
	if err := f.store.Accounts().Create(ctx, f.account); err != nil {
		t.Fatal(err)
	}
	if err := f.store.Categories().Create(ctx, f.category); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *fixture) create() *CreateTransactionUseCase {
	return NewCreateTransactionUseCase(f.store.Transactions(), f.store.Accounts(), f.store.Categories(), f.cache)
}

func (f *fixture) input() CreateTransactionInput {
	return CreateTransactionInput{
		UserID:      testUser,
		AccountID:   f.account.ID,
		CategoryID:  &f.category.ID,
		Description: "Lunch",
		Amount:      decimal.RequireFromString("-35.90"),
		Type:        entity.TransactionTypeExpense,
		Date:        time.Date(2024, time.March, 10, 18, 30, 0, 0, time.UTC),
	}
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestCreateTransactionUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	uc := f.create()
	unknown := uuid.New()

	tests := []struct {
		name   string
		modify func(*CreateTransactionInput)
		want   error
	}{
		{
			name:   "blank description",
			modify: func(in *CreateTransactionInput) { in.Description = "   " },
			want:   domainerror.ErrInvalidName,
		},
		{
			name:   "unknown type",
			modify: func(in *CreateTransactionInput) { in.Type = "refund" },
			want:   domainerror.ErrInvalidTransactionType,
		},
		{
			name:   "missing date",
			modify: func(in *CreateTransactionInput) { in.Date = time.Time{} },
			want:   domainerror.ErrMissingDate,
		},
		{
			name:   "account of another owner",
			modify: func(in *CreateTransactionInput) { in.AccountID = unknown },
			want:   domainerror.ErrAccountNotOwned,
		},
		{
			name:   "unknown category",
			modify: func(in *CreateTransactionInput) { in.CategoryID = &unknown },
			want:   domainerror.ErrCategoryNotOwned,
		},
		{
			name: "installment beyond total",
			modify: func(in *CreateTransactionInput) {
				in.InstallmentCurrent = intPtr(4)
				in.InstallmentTotal = intPtr(3)
			},
			want: domainerror.ErrInvalidInstallment,
		},
		{
			name:   "installment without total",
			modify: func(in *CreateTransactionInput) { in.InstallmentCurrent = intPtr(1) },
			want:   domainerror.ErrInvalidInstallment,
		},
		{
			name: "recurring with unknown rule",
			modify: func(in *CreateTransactionInput) {
				in.IsRecurring = true
				in.RecurrenceRule = strPtr("daily")
			},
			want: domainerror.ErrInvalidRecurrence,
		},
		{
			name: "recurring installment",
			modify: func(in *CreateTransactionInput) {
				in.IsRecurring = true
				in.RecurrenceRule = strPtr(entity.RecurrenceMonthly)
				in.InstallmentCurrent = intPtr(1)
				in.InstallmentTotal = intPtr(10)
			},
			want: domainerror.ErrInvalidRecurrence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := f.input()
			tt.modify(&input)
			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var ledgerErr *domainerror.LedgerError
			if !errors.As(err, &ledgerErr) {
				t.Errorf("error %T is not a LedgerError", err)
			}
		})
	}
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	f := newFixture(t)
	input := f.input()
	input.IsRecurring = true
	input.RecurrenceRule = strPtr(entity.RecurrenceWeekly)

	out, err := f.create().Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	tx := out.Transaction
	if !tx.Date.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %s, want calendar day", tx.Date)
	}
	if !tx.IsConsolidated {
		t.Error("IsConsolidated should default to true")
	}
	if tx.RecurrenceGroupID == nil {
		t.Error("recurring transaction should get a recurrence group")
	}
	if f.cache.Invalidated != 1 {
		t.Errorf("Invalidated = %d, want 1", f.cache.Invalidated)
	}
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.create().Execute(ctx, f.input())
	if err != nil {
		t.Fatal(err)
	}

	update := NewUpdateTransactionUseCase(f.store.Transactions(), f.store.Accounts(), f.store.Categories(), f.cache)
	amount := decimal.RequireFromString("-40")
	out, err := update.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        testUser,
		Amount:        &amount,
		ClearCategory: true,
	})
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	if out.Transaction.CategoryID != nil || !out.Transaction.Amount.Equal(amount) {
		t.Errorf("updated = %+v", out.Transaction)
	}

	badType := entity.TransactionType("bogus")
	if _, err := update.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        testUser,
		Type:          &badType,
	}); !errors.Is(err, domainerror.ErrInvalidTransactionType) {
		t.Errorf("invalid update error = %v", err)
	}

	del := NewDeleteTransactionUseCase(f.store.Transactions(), f.cache)
	if _, err := del.Execute(ctx, DeleteTransactionInput{TransactionID: created.Transaction.ID, UserID: testUser}); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if _, err := update.Execute(ctx, UpdateTransactionInput{TransactionID: created.Transaction.ID, UserID: testUser}); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("update after delete error = %v", err)
	}
}

func TestUpdateTransaction_DanglingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.create().Execute(ctx, f.input())
	if err != nil {
		t.Fatal(err)
	}
	if err := f.store.Categories().Delete(ctx, testUser, f.category.ID); err != nil {
		t.Fatal(err)
	}
	if err := f.store.Accounts().Delete(ctx, testUser, f.account.ID); err != nil {
		t.Fatal(err)
	}

	update := NewUpdateTransactionUseCase(f.store.Transactions(), f.store.Accounts(), f.store.Categories(), f.cache)

	tests := []struct {
		name    string
		input   UpdateTransactionInput
		wantErr error
	}{
		{
			name:  "description only",
			input: UpdateTransactionInput{Description: strPtr("Almoço")},
		},
		{
			name:    "point at the deleted category again",
			input:   UpdateTransactionInput{CategoryID: &f.category.ID},
			wantErr: domainerror.ErrCategoryNotOwned,
		},
		{
			name:    "point at the deleted account again",
			input:   UpdateTransactionInput{AccountID: &f.account.ID},
			wantErr: domainerror.ErrAccountNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.TransactionID = created.Transaction.ID
			tt.input.UserID = testUser
			out, err := update.Execute(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("update error = %v", err)
			}
			if out.Transaction.Description != "Almoço" || out.Transaction.CategoryID == nil || *out.Transaction.CategoryID != f.category.ID {
				t.Errorf("updated = %+v", out.Transaction)
			}
		})
	}
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	create := f.create()

	for _, in := range []CreateTransactionInput{
		{Description: "Salary", Amount: decimal.RequireFromString("5000"), Type: entity.TransactionTypeIncome, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Description: "Market", Amount: decimal.RequireFromString("-200"), Type: entity.TransactionTypeExpense, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), CategoryID: &f.category.ID},
		{Description: "Old", Amount: decimal.RequireFromString("-1"), Type: entity.TransactionTypeExpense, Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	} {
		in.UserID = testUser
		in.AccountID = f.account.ID
		if _, err := create.Execute(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	loader := snapshot.NewLoadSnapshotUseCase(f.store.Accounts(), f.store.Categories(), f.store.Transactions(), f.store.Budgets(), f.store.Goals())
	now := func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) }
	uc := NewListTransactionsUseCase(loader, now)

	out, err := uc.Execute(ctx, ListTransactionsInput{UserID: testUser})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Transactions) != 2 {
		t.Fatalf("len = %d, want 2", len(out.Transactions))
	}
	if out.Transactions[0].Description != "Market" || out.Transactions[0].CategoryName != "Food" {
		t.Errorf("first row = %+v", out.Transactions[0])
	}
	if out.Transactions[1].AccountName != "Wallet" {
		t.Errorf("AccountName = %q", out.Transactions[1].AccountName)
	}
	if !out.Totals.NetTotal.Equal(decimal.RequireFromString("4800")) {
		t.Errorf("NetTotal = %s", out.Totals.NetTotal)
	}

	out, err = uc.Execute(ctx, ListTransactionsInput{UserID: testUser, Search: "sal"})
	if err != nil || len(out.Transactions) != 1 || out.Transactions[0].Description != "Salary" {
		t.Errorf("search result = %+v, err = %v", out, err)
	}

	_, err = uc.Execute(ctx, ListTransactionsInput{
		UserID:    testUser,
		StartDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("reversed range error = %v", err)
	}
}
