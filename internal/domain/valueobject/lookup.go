// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

const (
	// FallbackCategoryKey groups every transaction whose category cannot be resolved.
	FallbackCategoryKey = "uncategorized"

	// FallbackCategoryName is the display name for unresolved categories.
	FallbackCategoryName = "Outros"

	// FallbackCategoryColor is the neutral color for unresolved or colorless categories.
	FallbackCategoryColor = "#94a3b8"

	// RemovedCategoryLabel is shown for budgets whose category no longer exists.
	RemovedCategoryLabel = "Categoria removida"
)

// CategoryRef is the display view of a category reference after fallback resolution.
type CategoryRef struct {
	ID    string
	Name  string
	Color string
	Found bool
}

// LedgerLookup resolves category and account references from a snapshot.
// A nil *LedgerLookup behaves as an empty one.
type LedgerLookup struct {
	categories map[uuid.UUID]*entity.Category
	accounts   map[uuid.UUID]*entity.Account
}

// NewLedgerLookup indexes the given categories and accounts by ID.
// Nil entries are skipped; for duplicate IDs the first occurrence wins.
func NewLedgerLookup(categories []*entity.Category, accounts []*entity.Account) *LedgerLookup {
	l := &LedgerLookup{
		categories: make(map[uuid.UUID]*entity.Category, len(categories)),
		accounts:   make(map[uuid.UUID]*entity.Account, len(accounts)),
	}

	for _, c := range categories {
		if c == nil {
			continue
		}
		if _, exists := l.categories[c.ID]; !exists {
			l.categories[c.ID] = c
		}
	}

	for _, a := range accounts {
		if a == nil {
			continue
		}
		if _, exists := l.accounts[a.ID]; !exists {
			l.accounts[a.ID] = a
		}
	}

	return l
}

// Category resolves a category reference, falling back to "Outros" when it is nil or unknown.
func (l *LedgerLookup) Category(id *uuid.UUID) CategoryRef {
	cat := l.findCategory(id)
	if cat == nil {
		return CategoryRef{
			ID:    FallbackCategoryKey,
			Name:  FallbackCategoryName,
			Color: FallbackCategoryColor,
		}
	}

	color := FallbackCategoryColor
	if cat.Color != nil && *cat.Color != "" {
		color = *cat.Color
	}

	return CategoryRef{
		ID:    cat.ID.String(),
		Name:  cat.Name,
		Color: color,
		Found: true,
	}
}

// CategoryName returns the category's name and whether it was found.
func (l *LedgerLookup) CategoryName(id *uuid.UUID) (string, bool) {
	cat := l.findCategory(id)
	if cat == nil {
		return "", false
	}
	return cat.Name, true
}

// AccountName returns the account's name and whether it was found.
func (l *LedgerLookup) AccountName(id uuid.UUID) (string, bool) {
	if l == nil {
		return "", false
	}
	acc, ok := l.accounts[id]
	if !ok {
		return "", false
	}
	return acc.Name, true
}

func (l *LedgerLookup) findCategory(id *uuid.UUID) *entity.Category {
	if l == nil || id == nil {
		return nil
	}
	return l.categories[*id]
}
