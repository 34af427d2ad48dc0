package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var testUser = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func strPtr(s string) *string { return &s }

func TestCategoryUseCases(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	cache := adaptertest.NewCache()

	create := NewCreateCategoryUseCase(store.Categories(), cache)
	update := NewUpdateCategoryUseCase(store.Categories(), cache)
	list := NewListCategoriesUseCase(store.Categories())
	del := NewDeleteCategoryUseCase(store.Categories(), cache)

	food, err := create.Execute(ctx, CreateCategoryInput{
		UserID: testUser,
		Name:   "Food",
		Type:   entity.CategoryTypeExpense,
		Color:  strPtr("#f97316"),
	})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	if _, err := create.Execute(ctx, CreateCategoryInput{
		UserID:   testUser,
		Name:     "Restaurants",
		Type:     entity.CategoryTypeExpense,
		ParentID: &food.Category.ID,
	}); err != nil {
		t.Fatalf("create child error = %v", err)
	}

	if _, err := create.Execute(ctx, CreateCategoryInput{
		UserID: testUser,
		Name:   "Salary",
		Type:   entity.CategoryTypeIncome,
	}); err != nil {
		t.Fatalf("create income error = %v", err)
	}

	missing := uuid.New()
	failures := []struct {
		name  string
		input CreateCategoryInput
		want  error
	}{
		{name: "blank name", input: CreateCategoryInput{UserID: testUser, Name: " ", Type: entity.CategoryTypeExpense}, want: domainerror.ErrInvalidName},
		{name: "bad type", input: CreateCategoryInput{UserID: testUser, Name: "X", Type: "savings"}, want: domainerror.ErrInvalidCategoryType},
		{name: "bad color", input: CreateCategoryInput{UserID: testUser, Name: "X", Type: entity.CategoryTypeExpense, Color: strPtr("#12345")}, want: domainerror.ErrInvalidColorFormat},
		{name: "unknown parent", input: CreateCategoryInput{UserID: testUser, Name: "X", Type: entity.CategoryTypeExpense, ParentID: &missing}, want: domainerror.ErrCategoryNotOwned},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := create.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	expense := entity.CategoryTypeExpense
	out, err := list.Execute(ctx, ListCategoriesInput{UserID: testUser, Type: &expense})
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if len(out.Categories) != 2 || out.Categories[0].Name != "Food" || out.Categories[1].Name != "Restaurants" {
		t.Errorf("categories = %+v", out.Categories)
	}

	renamed, err := update.Execute(ctx, UpdateCategoryInput{CategoryID: food.Category.ID, UserID: testUser, Name: strPtr(" Groceries ")})
	if err != nil || renamed.Category.Name != "Groceries" {
		t.Fatalf("rename = %+v, err = %v", renamed, err)
	}

	if _, err := del.Execute(ctx, DeleteCategoryInput{CategoryID: food.Category.ID, UserID: uuid.New()}); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("foreign delete error = %v", err)
	}
	if _, err := del.Execute(ctx, DeleteCategoryInput{CategoryID: food.Category.ID, UserID: testUser}); err != nil {
		t.Errorf("delete error = %v", err)
	}
}
