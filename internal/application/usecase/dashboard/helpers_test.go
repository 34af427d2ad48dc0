package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var (
	testUser    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testAccount = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tx(typ entity.TransactionType, amount, date string, categoryID *uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(testUser, testAccount, categoryID, "test", dec(amount), typ, day(date))
}

func category(name string, color *string) *entity.Category {
	return entity.NewCategory(testUser, name, entity.CategoryTypeExpense, nil, color, nil)
}

func strPtr(s string) *string {
	return &s
}
