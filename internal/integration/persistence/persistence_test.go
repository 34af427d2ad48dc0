package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{Driver: config.DriverSQLite, URL: "file::memory:"})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database.DB()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	owner, stranger := uuid.New(), uuid.New()

	color := "#22c55e"
	wallet := entity.NewAccount(owner, "Wallet", entity.AccountTypeCash, decimal.RequireFromString("25.50"), &color, nil)
	bank := entity.NewAccount(owner, "Bank", entity.AccountTypeChecking, decimal.RequireFromString("-10"), nil, nil)
	for _, a := range []*entity.Account{wallet, bank, entity.NewAccount(stranger, "Other", entity.AccountTypeCash, decimal.Zero, nil, nil)} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	accounts, err := repo.FindByUser(ctx, owner)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(accounts) != 2 || accounts[0].Name != "Bank" || accounts[1].Name != "Wallet" {
		t.Fatalf("FindByUser() = %+v", accounts)
	}
	if !accounts[1].Balance.Equal(decimal.RequireFromString("25.5")) || accounts[1].Color == nil || *accounts[1].Color != color {
		t.Errorf("wallet = %+v", accounts[1])
	}

	if _, err := repo.FindByID(ctx, stranger, wallet.ID); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("FindByID() by stranger error = %v", err)
	}

	wallet.IsActive = false
	wallet.Balance = decimal.NewFromInt(99)
	if err := repo.Update(ctx, wallet); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := repo.FindByID(ctx, owner, wallet.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.IsActive || !got.Balance.Equal(decimal.NewFromInt(99)) {
		t.Errorf("updated = %+v", got)
	}

	if err := repo.Delete(ctx, stranger, wallet.ID); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("Delete() by stranger error = %v", err)
	}
	if err := repo.Delete(ctx, owner, wallet.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, owner, wallet.ID); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("second Delete() error = %v", err)
	}
	if err := repo.Update(ctx, wallet); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("Update() after delete error = %v", err)
	}
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))
	owner := uuid.New()

	food := entity.NewCategory(owner, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	market := entity.NewCategory(owner, "Market", entity.CategoryTypeExpense, &food.ID, nil, nil)
	salary := entity.NewCategory(owner, "Salary", entity.CategoryTypeIncome, nil, nil, nil)
	for _, c := range []*entity.Category{salary, market, food} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	categories, err := repo.FindByUser(ctx, owner)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	names := []string{}
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if len(names) != 3 || names[0] != "Food" || names[1] != "Market" || names[2] != "Salary" {
		t.Errorf("names = %v", names)
	}
	if categories[1].ParentID == nil || *categories[1].ParentID != food.ID {
		t.Errorf("ParentID = %v", categories[1].ParentID)
	}

	if err := repo.Delete(ctx, owner, food.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, owner, food.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("FindByID() after delete error = %v", err)
	}
}

func TestTransactionRepository_FindByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	owner := uuid.New()
	account := uuid.New()
	category := uuid.New()

	dates := []time.Time{
		day(2024, time.February, 29),
		day(2024, time.March, 1),
		time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC),
		day(2024, time.March, 31),
		day(2024, time.April, 1),
	}
	for i, d := range dates {
		tx := entity.NewTransaction(owner, account, &category, "tx", decimal.NewFromInt(int64(i+1)), entity.TransactionTypeExpense, d)
		tx.CreatedAt = tx.CreatedAt.Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Create(ctx, entity.NewTransaction(uuid.New(), account, nil, "foreign", decimal.NewFromInt(1), entity.TransactionTypeIncome, day(2024, time.March, 10))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByDateRange(ctx, owner, day(2024, time.March, 1), time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("FindByDateRange() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("FindByDateRange() returned %d transactions, want 3", len(got))
	}
	wantDays := []int{31, 15, 1}
	for i, tx := range got {
		if tx.Date.Day() != wantDays[i] || tx.Date.Month() != time.March {
			t.Errorf("got[%d].Date = %v, want March %d", i, tx.Date, wantDays[i])
		}
		if tx.CategoryID == nil || *tx.CategoryID != category {
			t.Errorf("got[%d].CategoryID = %v", i, tx.CategoryID)
		}
	}

	recent, err := repo.FindRecent(ctx, owner, 2)
	if err != nil {
		t.Fatalf("FindRecent() error = %v", err)
	}
	if len(recent) != 2 || recent[0].Date.Month() != time.April {
		t.Errorf("FindRecent() = %+v", recent)
	}
}

func TestTransactionRepository_UpdateKeepsScheduleFields(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	owner := uuid.New()

	tx := entity.NewTransaction(owner, uuid.New(), nil, "Laptop", decimal.RequireFromString("-300.00"), entity.TransactionTypeExpense, day(2024, time.May, 10))
	current, total := 1, 10
	tx.InstallmentCurrent = &current
	tx.InstallmentTotal = &total
	if err := repo.Create(ctx, tx); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	category := uuid.New()
	tx.CategoryID = &category
	tx.IsConsolidated = false
	if err := repo.Update(ctx, tx); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.FindByID(ctx, owner, tx.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.IsConsolidated || got.CategoryID == nil || *got.CategoryID != category {
		t.Errorf("got = %+v", got)
	}
	if got.InstallmentTotal == nil || *got.InstallmentTotal != 10 || !got.IsInstallment() {
		t.Errorf("installments lost: %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromInt(-300)) {
		t.Errorf("Amount = %s", got.Amount)
	}

	other := *got
	other.UserID = uuid.New()
	if err := repo.Update(ctx, &other); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("Update() by stranger error = %v", err)
	}
}

func TestBudgetRepository_FindByPeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	owner := uuid.New()
	category := uuid.New()

	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	var march []*entity.Budget
	for i, amount := range []string{"100", "250", "50"} {
		b := entity.NewBudget(owner, category, 3, 2024, decimal.RequireFromString(amount))
		b.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		march = append(march, b)
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Create(ctx, entity.NewBudget(owner, category, 4, 2024, decimal.NewFromInt(10))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByPeriod(ctx, owner, 3, 2024)
	if err != nil {
		t.Fatalf("FindByPeriod() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("FindByPeriod() returned %d budgets, want 3 (duplicates kept)", len(got))
	}
	for i := range got {
		if got[i].ID != march[i].ID {
			t.Errorf("got[%d] = %s, want creation order", i, got[i].ID)
		}
	}

	march[1].Amount = decimal.NewFromInt(300)
	if err := repo.Update(ctx, march[1]); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, err := repo.FindByID(ctx, owner, march[1].ID)
	if err != nil || !updated.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("FindByID() = %+v, err = %v", updated, err)
	}
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	owner := uuid.New()

	target := time.Date(2025, time.December, 24, 15, 0, 0, 0, time.UTC)
	trip := entity.NewGoal(owner, "Trip", nil, decimal.NewFromInt(5000), decimal.NewFromInt(1200), &target)
	car := entity.NewGoal(owner, "Car", nil, decimal.NewFromInt(40000), decimal.Zero, nil)
	car.IsCompleted = true
	for _, g := range []*entity.Goal{trip, car} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	goals, err := repo.FindByUser(ctx, owner)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(goals) != 2 || goals[0].Title != "Car" || !goals[0].IsCompleted {
		t.Fatalf("FindByUser() = %+v", goals)
	}
	if goals[1].TargetDate == nil || !goals[1].TargetDate.Equal(day(2025, time.December, 24)) {
		t.Errorf("TargetDate = %v", goals[1].TargetDate)
	}

	if err := repo.Delete(ctx, owner, trip.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, owner, trip.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("FindByID() after delete error = %v", err)
	}
}
