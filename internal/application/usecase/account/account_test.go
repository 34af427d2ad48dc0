package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var testUser = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func TestCreateAccountUseCase_Validation(t *testing.T) {
	store := adaptertest.NewStore()
	uc := NewCreateAccountUseCase(store.Accounts(), nil)
	badColor := "blue"

	tests := []struct {
		name  string
		input CreateAccountInput
		want  domainerror.LedgerErrorCode
	}{
		{
			name:  "empty name",
			input: CreateAccountInput{UserID: testUser, Type: entity.AccountTypeCash},
			want:  domainerror.ErrCodeInvalidName,
		},
		{
			name:  "name too long",
			input: CreateAccountInput{UserID: testUser, Name: strings.Repeat("a", MaxAccountNameLength+1), Type: entity.AccountTypeCash},
			want:  domainerror.ErrCodeNameTooLong,
		},
		{
			name:  "unknown type",
			input: CreateAccountInput{UserID: testUser, Name: "Broker", Type: "crypto"},
			want:  domainerror.ErrCodeInvalidAccountType,
		},
		{
			name:  "bad color",
			input: CreateAccountInput{UserID: testUser, Name: "Broker", Type: entity.AccountTypeInvestment, Color: &badColor},
			want:  domainerror.ErrCodeInvalidColorFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var ledgerErr *domainerror.LedgerError
			if !errors.As(err, &ledgerErr) || ledgerErr.Code != tt.want {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestAccountUseCases(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	cache := adaptertest.NewCache()

	create := NewCreateAccountUseCase(store.Accounts(), cache)
	update := NewUpdateAccountUseCase(store.Accounts(), cache)
	list := NewListAccountsUseCase(store.Accounts())
	del := NewDeleteAccountUseCase(store.Accounts(), cache)

	savings, err := create.Execute(ctx, CreateAccountInput{
		UserID:  testUser,
		Name:    "Savings",
		Type:    entity.AccountTypeSavings,
		Balance: decimal.RequireFromString("1000"),
	})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if _, err := create.Execute(ctx, CreateAccountInput{
		UserID:  testUser,
		Name:    "Checking",
		Type:    entity.AccountTypeChecking,
		Balance: decimal.RequireFromString("-150.50"),
	}); err != nil {
		t.Fatalf("create error = %v", err)
	}

	inactive := false
	if _, err := update.Execute(ctx, UpdateAccountInput{AccountID: savings.Account.ID, UserID: testUser, IsActive: &inactive}); err != nil {
		t.Fatalf("update error = %v", err)
	}

	out, err := list.Execute(ctx, ListAccountsInput{UserID: testUser})
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if len(out.Accounts) != 2 || out.Accounts[0].Name != "Checking" {
		t.Errorf("accounts = %+v", out.Accounts)
	}
	if !out.TotalBalance.Equal(decimal.RequireFromString("849.50")) {
		t.Errorf("TotalBalance = %s, inactive accounts still count", out.TotalBalance)
	}

	if _, err := del.Execute(ctx, DeleteAccountInput{AccountID: savings.Account.ID, UserID: testUser}); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if _, err := update.Execute(ctx, UpdateAccountInput{AccountID: savings.Account.ID, UserID: testUser}); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("update after delete error = %v", err)
	}
}
