package valueobject

import (
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestLedgerLookup_Category(t *testing.T) {
	groceriesID := uuid.New()
	plainID := uuid.New()
	deletedID := uuid.New()

	lookup := NewLedgerLookup([]*entity.Category{
		{ID: groceriesID, Name: "Groceries", Color: strPtr("#22c55e")},
		{ID: plainID, Name: "Plain"},
		nil,
	}, nil)

	t.Run("resolved category keeps its name and color", func(t *testing.T) {
		ref := lookup.Category(&groceriesID)
		if !ref.Found || ref.Name != "Groceries" || ref.Color != "#22c55e" || ref.ID != groceriesID.String() {
			t.Errorf("unexpected ref %+v", ref)
		}
	})

	t.Run("category without color gets the neutral color", func(t *testing.T) {
		ref := lookup.Category(&plainID)
		if !ref.Found || ref.Color != FallbackCategoryColor {
			t.Errorf("unexpected ref %+v", ref)
		}
	})

	t.Run("nil reference falls back", func(t *testing.T) {
		ref := lookup.Category(nil)
		if ref.Found || ref.Name != FallbackCategoryName || ref.ID != FallbackCategoryKey {
			t.Errorf("unexpected ref %+v", ref)
		}
	})

	t.Run("deleted reference falls back", func(t *testing.T) {
		ref := lookup.Category(&deletedID)
		if ref.Found || ref.Name != "Outros" || ref.Color != "#94a3b8" {
			t.Errorf("unexpected ref %+v", ref)
		}
	})
}

func TestLedgerLookup_NilIsEmpty(t *testing.T) {
	var lookup *LedgerLookup
	id := uuid.New()

	if ref := lookup.Category(&id); ref.Found {
		t.Error("expected nil lookup to resolve nothing")
	}
	if _, ok := lookup.CategoryName(&id); ok {
		t.Error("expected nil lookup to resolve no category name")
	}
	if _, ok := lookup.AccountName(id); ok {
		t.Error("expected nil lookup to resolve no account name")
	}
}

func TestLedgerLookup_AccountName(t *testing.T) {
	accID := uuid.New()
	lookup := NewLedgerLookup(nil, []*entity.Account{
		{ID: accID, Name: "Nubank"},
		{ID: accID, Name: "Duplicate"},
	})

	name, ok := lookup.AccountName(accID)
	if !ok || name != "Nubank" {
		t.Errorf("expected first account to win, got %q (%v)", name, ok)
	}
	if _, ok := lookup.AccountName(uuid.New()); ok {
		t.Error("expected unknown account to be missing")
	}
}
