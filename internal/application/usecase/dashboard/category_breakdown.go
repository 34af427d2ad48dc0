package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CategorySlice is one group of the expense breakdown.
type CategorySlice struct {
	CategoryID       string          `json:"category_id"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Value            decimal.Decimal `json:"value"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// BuildCategoryBreakdown groups expense transactions by resolved category and
// sums their magnitudes. Transactions whose category is missing or deleted share
// the single fallback group. The result is sorted by value descending; equal
// values keep first-encounter order.
func BuildCategoryBreakdown(
	transactions []*entity.Transaction,
	lookup *valueobject.LedgerLookup,
) []CategorySlice {
	slices := make([]CategorySlice, 0)
	index := make(map[string]int)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx == nil || tx.Type != entity.TransactionTypeExpense {
			continue
		}

		ref := lookup.Category(tx.CategoryID)
		i, ok := index[ref.ID]
		if !ok {
			i = len(slices)
			index[ref.ID] = i
			slices = append(slices, CategorySlice{
				CategoryID: ref.ID,
				Name:       ref.Name,
				Color:      ref.Color,
				Value:      decimal.Zero,
			})
		}

		amount := valueobject.Magnitude(tx.Amount)
		slices[i].Value = slices[i].Value.Add(amount)
		slices[i].TransactionCount++
		total = total.Add(amount)
	}

	for i := range slices {
		slices[i].Percentage = valueobject.Share(slices[i].Value, total)
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Value.GreaterThan(slices[b].Value)
	})
	return slices
}

// BreakdownTotal sums the values of a breakdown.
func BreakdownTotal(slices []CategorySlice) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	return total
}
