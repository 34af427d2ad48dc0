// Package adaptertest provides in-memory implementations of the adapter ports for tests.
package adaptertest

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Store keeps every entity kind in memory. It implements all repository ports
// through its typed views.
type Store struct {
	mu           sync.RWMutex
	accounts     map[uuid.UUID]*entity.Account
	categories   map[uuid.UUID]*entity.Category
	transactions map[uuid.UUID]*entity.Transaction
	budgets      map[uuid.UUID]*entity.Budget
	goals        map[uuid.UUID]*entity.Goal
	seq          map[uuid.UUID]int

	// Err, when set, is returned by every read.
	Err error
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts:     map[uuid.UUID]*entity.Account{},
		categories:   map[uuid.UUID]*entity.Category{},
		transactions: map[uuid.UUID]*entity.Transaction{},
		budgets:      map[uuid.UUID]*entity.Budget{},
		goals:        map[uuid.UUID]*entity.Goal{},
		seq:          map[uuid.UUID]int{},
	}
}

// Accounts returns the account repository view.
func (s *Store) Accounts() *AccountRepository { return &AccountRepository{s} }

// Categories returns the category repository view.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s} }

// Transactions returns the transaction repository view.
func (s *Store) Transactions() *TransactionRepository { return &TransactionRepository{s} }

// Budgets returns the budget repository view.
func (s *Store) Budgets() *BudgetRepository { return &BudgetRepository{s} }

// Goals returns the goal repository view.
func (s *Store) Goals() *GoalRepository { return &GoalRepository{s} }

func (s *Store) next(id uuid.UUID) {
	if _, ok := s.seq[id]; !ok {
		s.seq[id] = len(s.seq)
	}
}

// AccountRepository is the in-memory account store.
type AccountRepository struct{ s *Store }

func (r *AccountRepository) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *AccountRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	a, ok := r.s.accounts[id]
	if !ok || a.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AccountRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Account{}
	for _, a := range r.s.accounts {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.Compare(out[i].Name, out[j].Name) < 0 })
	return out, nil
}

func (r *AccountRepository) Update(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.accounts[a.ID]; !ok {
		return domainerror.ErrAccountNotFound
	}
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.accounts[id]; !ok || a.UserID != userID {
		return domainerror.ErrAccountNotFound
	}
	delete(r.s.accounts, id)
	return nil
}

// CategoryRepository is the in-memory category store.
type CategoryRepository struct{ s *Store }

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Category{}
	for _, c := range r.s.categories {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; !ok || c.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.s.categories, id)
	return nil
}

// TransactionRepository is the in-memory transaction store.
type TransactionRepository struct{ s *Store }

func (r *TransactionRepository) Create(_ context.Context, tx *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *tx
	r.s.transactions[tx.ID] = &cp
	r.s.next(tx.ID)
	return nil
}

func (r *TransactionRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	tx, ok := r.s.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *TransactionRepository) FindByDateRange(
	_ context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	from := entity.NormalizeDate(start)
	to := entity.NormalizeDate(end)
	out := []*entity.Transaction{}
	for _, tx := range r.s.transactions {
		day := entity.NormalizeDate(tx.Date)
		if tx.UserID == userID && !day.Before(from) && !day.After(to) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	r.sortNewestFirst(out)
	return out, nil
}

func (r *TransactionRepository) FindRecent(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Transaction{}
	for _, tx := range r.s.transactions {
		if tx.UserID == userID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	r.sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// sortNewestFirst orders by date desc, then by insertion order.
func (r *TransactionRepository) sortNewestFirst(txs []*entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return r.s.seq[txs[i].ID] < r.s.seq[txs[j].ID]
	})
}

func (r *TransactionRepository) Update(_ context.Context, tx *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.transactions[tx.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	cp := *tx
	r.s.transactions[tx.ID] = &cp
	return nil
}

func (r *TransactionRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tx, ok := r.s.transactions[id]; !ok || tx.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.s.transactions, id)
	return nil
}

// BudgetRepository is the in-memory budget store.
type BudgetRepository struct{ s *Store }

func (r *BudgetRepository) Create(_ context.Context, b *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *b
	r.s.budgets[b.ID] = &cp
	r.s.next(b.ID)
	return nil
}

func (r *BudgetRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Budget, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	b, ok := r.s.budgets[id]
	if !ok || b.UserID != userID {
		return nil, domainerror.ErrBudgetNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BudgetRepository) FindByPeriod(_ context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Budget{}
	for _, b := range r.s.budgets {
		if b.UserID == userID && b.Month == month && b.Year == year {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return r.s.seq[out[i].ID] < r.s.seq[out[j].ID] })
	return out, nil
}

func (r *BudgetRepository) Update(_ context.Context, b *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.budgets[b.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	cp := *b
	r.s.budgets[b.ID] = &cp
	return nil
}

func (r *BudgetRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.budgets[id]; !ok || b.UserID != userID {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.s.budgets, id)
	return nil
}

// GoalRepository is the in-memory goal store.
type GoalRepository struct{ s *Store }

func (r *GoalRepository) Create(_ context.Context, g *entity.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *g
	r.s.goals[g.ID] = &cp
	return nil
}

func (r *GoalRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	g, ok := r.s.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *GoalRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*entity.Goal{}
	for _, g := range r.s.goals {
		if g.UserID == userID {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *GoalRepository) Update(_ context.Context, g *entity.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.goals[g.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	cp := *g
	r.s.goals[g.ID] = &cp
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.goals[id]; !ok || g.UserID != userID {
		return domainerror.ErrGoalNotFound
	}
	delete(r.s.goals, id)
	return nil
}

// Cache is an in-memory report cache that records its traffic.
type Cache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]map[string][]byte
	generations map[uuid.UUID]int64
	Hits        int
	Sets        int
	Invalidated int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries:     map[uuid.UUID]map[string][]byte{},
		generations: map[uuid.UUID]int64{},
	}
}

func (c *Cache) Get(_ context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[userID][key]
	if !ok {
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *Cache) Generation(_ context.Context, userID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID], nil
}

func (c *Cache) Set(_ context.Context, userID uuid.UUID, generation int64, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != generation {
		return nil
	}
	if c.entries[userID] == nil {
		c.entries[userID] = map[string][]byte{}
	}
	c.entries[userID][key] = raw
	c.Sets++
	return nil
}

func (c *Cache) InvalidateOwner(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.generations[userID]++
	c.Invalidated++
	return nil
}
