// Package snapshot assembles ledger snapshots from the persistence layer.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Part selects which entity kinds a snapshot holds.
type Part uint8

const (
	PartAccounts Part = 1 << iota
	PartCategories
	PartTransactions
	PartBudgets
	PartGoals

	PartAll = PartAccounts | PartCategories | PartTransactions | PartBudgets | PartGoals
)

// Has reports whether p includes part.
func (p Part) Has(part Part) bool {
	return p&part != 0
}

// LoadSnapshotInput represents the input for loading a snapshot.
// Start and End bound transactions (inclusive calendar days); Month and Year
// select budgets.
type LoadSnapshotInput struct {
	UserID  uuid.UUID
	Start   time.Time
	End     time.Time
	Month   int
	Year    int
	Include Part
}

// Loader loads ledger snapshots.
type Loader interface {
	Execute(ctx context.Context, input LoadSnapshotInput) (*entity.Ledger, error)
}

// LoadSnapshotUseCase fetches the requested entity kinds concurrently.
type LoadSnapshotUseCase struct {
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
}

// NewLoadSnapshotUseCase creates a new LoadSnapshotUseCase instance.
func NewLoadSnapshotUseCase(
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
) *LoadSnapshotUseCase {
	return &LoadSnapshotUseCase{
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

// Execute loads the snapshot. The first failing fetch cancels the others.
func (uc *LoadSnapshotUseCase) Execute(ctx context.Context, input LoadSnapshotInput) (*entity.Ledger, error) {
	ledger := &entity.Ledger{
		Accounts:     []*entity.Account{},
		Categories:   []*entity.Category{},
		Transactions: []*entity.Transaction{},
		Budgets:      []*entity.Budget{},
		Goals:        []*entity.Goal{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if input.Include.Has(PartAccounts) {
		g.Go(func() error {
			accounts, err := uc.accountRepo.FindByUser(gctx, input.UserID)
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}
			ledger.Accounts = accounts
			return nil
		})
	}

	if input.Include.Has(PartCategories) {
		g.Go(func() error {
			categories, err := uc.categoryRepo.FindByUser(gctx, input.UserID)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			ledger.Categories = categories
			return nil
		})
	}

	if input.Include.Has(PartTransactions) {
		g.Go(func() error {
			transactions, err := uc.transactionRepo.FindByDateRange(gctx, input.UserID, input.Start, input.End)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			ledger.Transactions = transactions
			return nil
		})
	}

	if input.Include.Has(PartBudgets) {
		g.Go(func() error {
			budgets, err := uc.budgetRepo.FindByPeriod(gctx, input.UserID, input.Month, input.Year)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			ledger.Budgets = budgets
			return nil
		})
	}

	if input.Include.Has(PartGoals) {
		g.Go(func() error {
			goals, err := uc.goalRepo.FindByUser(gctx, input.UserID)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			ledger.Goals = goals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ledger, nil
}
