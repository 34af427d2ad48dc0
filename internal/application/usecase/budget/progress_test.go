package budget

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
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

var testUser = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(amount string, categoryID *uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(testUser, uuid.New(), categoryID, "test", dec(amount),
		entity.TransactionTypeExpense, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
}

func TestBuildBudgetProgress_OverBudget(t *testing.T) {
	groceries := entity.NewCategory(testUser, "Groceries", entity.CategoryTypeExpense, nil, nil, nil)
	b := entity.NewBudget(testUser, groceries.ID, 3, 2024, dec("100"))

	got := BuildBudgetProgress(
		[]*entity.Budget{b},
		[]*entity.Transaction{expense("-70", &groceries.ID), expense("-50", &groceries.ID)},
		valueobject.NewLedgerLookup([]*entity.Category{groceries}, nil),
	)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	p := got[0]
	if p.Percent != 100 || !p.IsOver || !p.Overage.Equal(dec("20")) || !p.Spent.Equal(dec("120")) {
		t.Errorf("progress = %+v", p)
	}
	if p.Label != "Groceries" || !p.CategoryFound {
		t.Errorf("label = %q found = %v", p.Label, p.CategoryFound)
	}
}

func TestBuildBudgetProgress_Cases(t *testing.T) {
	food := entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	removed := uuid.New()
	lookup := valueobject.NewLedgerLookup([]*entity.Category{food}, nil)

	tests := []struct {
		name         string
		budget       *entity.Budget
		transactions []*entity.Transaction
		percent      int
		isOver       bool
		overage      string
		label        string
	}{
		{
			name:    "no spend",
			budget:  entity.NewBudget(testUser, food.ID, 3, 2024, dec("300")),
			percent: 0,
			overage: "0",
			label:   "Food",
		},
		{
			name:         "exactly at limit is not over",
			budget:       entity.NewBudget(testUser, food.ID, 3, 2024, dec("300")),
			transactions: []*entity.Transaction{expense("300", &food.ID)},
			percent:      100,
			overage:      "0",
			label:        "Food",
		},
		{
			name:         "rounds half away from zero",
			budget:       entity.NewBudget(testUser, food.ID, 3, 2024, dec("200")),
			transactions: []*entity.Transaction{expense("-1", &food.ID)},
			percent:      1,
			overage:      "0",
			label:        "Food",
		},
		{
			name:         "zero limit with spend",
			budget:       entity.NewBudget(testUser, food.ID, 3, 2024, dec("0")),
			transactions: []*entity.Transaction{expense("-15", &food.ID)},
			percent:      0,
			isOver:       true,
			overage:      "15",
			label:        "Food",
		},
		{
			name:         "negative limit is treated as zero",
			budget:       entity.NewBudget(testUser, food.ID, 3, 2024, dec("-50")),
			transactions: []*entity.Transaction{expense("-15", &food.ID)},
			percent:      0,
			isOver:       true,
			overage:      "15",
			label:        "Food",
		},
		{
			name:   "uncategorized spend never counts",
			budget: entity.NewBudget(testUser, food.ID, 3, 2024, dec("100")),
			transactions: []*entity.Transaction{
				expense("-500", nil),
				entity.NewTransaction(testUser, uuid.New(), &food.ID, "salary", dec("900"),
					entity.TransactionTypeIncome, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
			},
			percent: 0,
			overage: "0",
			label:   "Food",
		},
		{
			name:         "deleted category",
			budget:       entity.NewBudget(testUser, removed, 3, 2024, dec("100")),
			transactions: []*entity.Transaction{expense("-40", &removed)},
			percent:      40,
			overage:      "0",
			label:        valueobject.RemovedCategoryLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildBudgetProgress([]*entity.Budget{tt.budget}, tt.transactions, lookup)
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			p := got[0]
			if p.Percent != tt.percent {
				t.Errorf("Percent = %d, want %d", p.Percent, tt.percent)
			}
			if p.IsOver != tt.isOver {
				t.Errorf("IsOver = %v, want %v", p.IsOver, tt.isOver)
			}
			if !p.Overage.Equal(dec(tt.overage)) {
				t.Errorf("Overage = %s, want %s", p.Overage, tt.overage)
			}
			if p.Label != tt.label {
				t.Errorf("Label = %q, want %q", p.Label, tt.label)
			}
		})
	}
}

func TestBuildBudgetProgress_DuplicatesKept(t *testing.T) {
	food := entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	first := entity.NewBudget(testUser, food.ID, 3, 2024, dec("100"))
	second := entity.NewBudget(testUser, food.ID, 3, 2024, dec("50"))

	got := BuildBudgetProgress(
		[]*entity.Budget{first, second},
		[]*entity.Transaction{expense("-75", &food.ID)},
		valueobject.NewLedgerLookup([]*entity.Category{food}, nil),
	)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].BudgetID != first.ID || got[0].Percent != 75 || got[0].IsOver {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].BudgetID != second.ID || got[1].Percent != 100 || !got[1].IsOver {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestBuildBudgetProgress_PercentInRange(t *testing.T) {
	food := entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	lookup := valueobject.NewLedgerLookup([]*entity.Category{food}, nil)

	for _, limit := range []string{"0", "0.01", "1", "99.99", "1000"} {
		for _, spent := range []string{"0", "0.005", "1", "250", "100000"} {
			got := BuildBudgetProgress(
				[]*entity.Budget{entity.NewBudget(testUser, food.ID, 3, 2024, dec(limit))},
				[]*entity.Transaction{expense(spent, &food.ID)},
				lookup,
			)
			if p := got[0].Percent; p < 0 || p > 100 {
				t.Errorf("limit=%s spent=%s: percent %d out of range", limit, spent, p)
			}
		}
	}
}

func TestSummarizeBudgets(t *testing.T) {
	progress := []BudgetProgress{
		{Limit: dec("100"), Spent: dec("120"), IsOver: true},
		{Limit: dec("300"), Spent: dec("80")},
		{Limit: dec("-10"), Spent: dec("0")},
	}

	got := SummarizeBudgets(progress)
	if !got.TotalBudgeted.Equal(dec("400")) || !got.TotalSpent.Equal(dec("200")) {
		t.Errorf("totals = %s / %s", got.TotalBudgeted, got.TotalSpent)
	}
	if got.Percent != 50 || got.IsOver || got.OverCount != 1 {
		t.Errorf("summary = %+v", got)
	}

	empty := SummarizeBudgets(nil)
	if !empty.TotalBudgeted.IsZero() || empty.Percent != 0 || empty.IsOver {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestGetBudgetProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	food := entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	_ = store.Categories().Create(ctx, food)
	_ = store.Budgets().Create(ctx, entity.NewBudget(testUser, food.ID, 3, 2024, dec("100")))
	_ = store.Budgets().Create(ctx, entity.NewBudget(testUser, food.ID, 4, 2024, dec("999")))
	_ = store.Transactions().Create(ctx, expense("-120", &food.ID))

	loader := snapshot.NewLoadSnapshotUseCase(store.Accounts(), store.Categories(), store.Transactions(), store.Budgets(), store.Goals())
	uc := NewGetBudgetProgressUseCase(loader, nil)

	out, err := uc.Execute(ctx, GetBudgetProgressInput{UserID: testUser, Month: 3, Year: 2024})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Budgets) != 1 {
		t.Fatalf("budgets = %d, want 1", len(out.Budgets))
	}
	if !out.Budgets[0].IsOver || !out.Summary.TotalSpent.Equal(dec("120")) {
		t.Errorf("out = %+v", out)
	}

	_, err = uc.Execute(ctx, GetBudgetProgressInput{UserID: testUser, Month: 13, Year: 2024})
	if !errors.Is(err, domainerror.ErrInvalidReportPeriod) {
		t.Errorf("error = %v, want ErrInvalidReportPeriod", err)
	}
}
