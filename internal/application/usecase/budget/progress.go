// Package budget contains budget progress use cases.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// BudgetProgress is the spend of one budget record against its limit.
type BudgetProgress struct {
	BudgetID      uuid.UUID       `json:"budget_id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	Label         string          `json:"label"`
	Color         string          `json:"color"`
	CategoryFound bool            `json:"category_found"`
	Limit         decimal.Decimal `json:"limit"`
	Spent         decimal.Decimal `json:"spent"`
	Percent       int             `json:"percent"`
	IsOver        bool            `json:"is_over"`
	Overage       decimal.Decimal `json:"overage"`
}

// BudgetSummary aggregates every progress entry of a month.
type BudgetSummary struct {
	TotalBudgeted decimal.Decimal `json:"total_budgeted"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	Percent       int             `json:"percent"`
	IsOver        bool            `json:"is_over"`
	OverCount     int             `json:"over_count"`
}

// BuildBudgetProgress returns one entry per budget in input order. Spend is the
// sum of expense magnitudes in the budget's category; uncategorized
// transactions never count. Duplicate budgets each get their own entry.
func BuildBudgetProgress(
	budgets []*entity.Budget,
	transactions []*entity.Transaction,
	lookup *valueobject.LedgerLookup,
) []BudgetProgress {
	spent := spendByCategory(transactions)

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		if b == nil {
			continue
		}

		s, ok := spent[b.CategoryID]
		if !ok {
			s = decimal.Zero
		}
		limit := valueobject.NonNegative(b.Amount)
		isOver := s.GreaterThan(limit)

		overage := decimal.Zero
		if isOver {
			overage = s.Sub(limit)
		}

		categoryID := b.CategoryID
		ref := lookup.Category(&categoryID)
		label := ref.Name
		if !ref.Found {
			label = valueobject.RemovedCategoryLabel
		}

		progress = append(progress, BudgetProgress{
			BudgetID:      b.ID,
			CategoryID:    b.CategoryID,
			Label:         label,
			Color:         ref.Color,
			CategoryFound: ref.Found,
			Limit:         b.Amount,
			Spent:         s,
			Percent:       valueobject.ClampedPercent(s, b.Amount),
			IsOver:        isOver,
			Overage:       overage,
		})
	}
	return progress
}

// SummarizeBudgets totals the limits and spend of a month's progress entries.
func SummarizeBudgets(progress []BudgetProgress) BudgetSummary {
	summary := BudgetSummary{TotalBudgeted: decimal.Zero, TotalSpent: decimal.Zero}
	for _, p := range progress {
		summary.TotalBudgeted = summary.TotalBudgeted.Add(valueobject.NonNegative(p.Limit))
		summary.TotalSpent = summary.TotalSpent.Add(p.Spent)
		if p.IsOver {
			summary.OverCount++
		}
	}
	summary.Percent = valueobject.ClampedPercent(summary.TotalSpent, summary.TotalBudgeted)
	summary.IsOver = summary.TotalSpent.GreaterThan(summary.TotalBudgeted)
	return summary
}

func spendByCategory(transactions []*entity.Transaction) map[uuid.UUID]decimal.Decimal {
	spent := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if tx == nil || tx.Type != entity.TransactionTypeExpense || tx.CategoryID == nil {
			continue
		}
		spent[*tx.CategoryID] = spent[*tx.CategoryID].Add(valueobject.Magnitude(tx.Amount))
	}
	return spent
}
