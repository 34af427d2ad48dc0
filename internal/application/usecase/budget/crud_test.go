package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestBudgetUseCases(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	cache := adaptertest.NewCache()

	food := entity.NewCategory(testUser, "Food", entity.CategoryTypeExpense, nil, nil, nil)
	foreign := entity.NewCategory(uuid.New(), "Other owner", entity.CategoryTypeExpense, nil, nil, nil)
	_ = store.Categories().Create(ctx, food)
	_ = store.Categories().Create(ctx, foreign)

	create := NewCreateBudgetUseCase(store.Budgets(), store.Categories(), cache)
	update := NewUpdateBudgetUseCase(store.Budgets(), store.Categories(), cache)
	list := NewListBudgetsUseCase(store.Budgets())
	del := NewDeleteBudgetUseCase(store.Budgets(), cache)

	tests := []struct {
		name  string
		input CreateBudgetInput
		want  error
	}{
		{
			name:  "month out of range",
			input: CreateBudgetInput{UserID: testUser, CategoryID: food.ID, Month: 13, Year: 2024, Amount: dec("10")},
			want:  domainerror.ErrInvalidBudgetPeriod,
		},
		{
			name:  "negative amount",
			input: CreateBudgetInput{UserID: testUser, CategoryID: food.ID, Month: 3, Year: 2024, Amount: dec("-1")},
			want:  domainerror.ErrInvalidAmount,
		},
		{
			name:  "category of another owner",
			input: CreateBudgetInput{UserID: testUser, CategoryID: foreign.ID, Month: 3, Year: 2024, Amount: dec("10")},
			want:  domainerror.ErrCategoryNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := create.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	first, err := create.Execute(ctx, CreateBudgetInput{UserID: testUser, CategoryID: food.ID, Month: 3, Year: 2024, Amount: dec("100")})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if _, err := create.Execute(ctx, CreateBudgetInput{UserID: testUser, CategoryID: food.ID, Month: 3, Year: 2024, Amount: dec("50")}); err != nil {
		t.Fatalf("duplicate budgets must be accepted, got %v", err)
	}

	out, err := list.Execute(ctx, ListBudgetsInput{UserID: testUser, Month: 3, Year: 2024})
	if err != nil || len(out.Budgets) != 2 || out.Budgets[0].ID != first.Budget.ID {
		t.Fatalf("list = %+v, err = %v", out, err)
	}

	month := 0
	if _, err := update.Execute(ctx, UpdateBudgetInput{BudgetID: first.Budget.ID, UserID: testUser, Month: &month}); !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
		t.Errorf("update error = %v", err)
	}

	amount := dec("250")
	updated, err := update.Execute(ctx, UpdateBudgetInput{BudgetID: first.Budget.ID, UserID: testUser, Amount: &amount})
	if err != nil || !updated.Budget.Amount.Equal(amount) {
		t.Fatalf("update = %+v, err = %v", updated, err)
	}

	if _, err := del.Execute(ctx, DeleteBudgetInput{BudgetID: first.Budget.ID, UserID: uuid.New()}); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("foreign delete error = %v", err)
	}
	if _, err := del.Execute(ctx, DeleteBudgetInput{BudgetID: first.Budget.ID, UserID: testUser}); err != nil {
		t.Errorf("delete error = %v", err)
	}
	if cache.Invalidated != 4 {
		t.Errorf("Invalidated = %d, want 4", cache.Invalidated)
	}
}
