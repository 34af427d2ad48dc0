package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MonthlyPoint is one month of the income/expense series.
type MonthlyPoint struct {
	Key              string          `json:"key"`
	Label            string          `json:"label"`
	Start            time.Time       `json:"start"`
	End              time.Time       `json:"end"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// BuildMonthlySeries returns n points, oldest first, ending at the month of ref.
// Each transaction lands in the month of its calendar day; months without
// transactions are zero-filled.
func BuildMonthlySeries(
	transactions []*entity.Transaction,
	ref time.Time,
	n int,
	labeler *MonthLabeler,
) []MonthlyPoint {
	periods := valueobject.TrailingMonths(ref, n)
	if len(periods) == 0 {
		return []MonthlyPoint{}
	}
	labeler = labelerOrDefault(labeler)

	type bucket struct {
		totals Totals
		count  int
	}
	buckets := make(map[string]*bucket, len(periods))
	for _, p := range periods {
		buckets[p.Key()] = &bucket{totals: Totals{Income: decimal.Zero, Expense: decimal.Zero}}
	}

	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		b, ok := buckets[valueobject.MonthKey(tx.Date)]
		if !ok {
			continue
		}
		b.totals = b.totals.add(tx)
		b.count++
	}

	points := make([]MonthlyPoint, 0, len(periods))
	for _, p := range periods {
		b := buckets[p.Key()]
		points = append(points, MonthlyPoint{
			Key:              p.Key(),
			Label:            labeler.Label(p.Start),
			Start:            p.Start,
			End:              p.End,
			Income:           b.totals.Income,
			Expense:          b.totals.Expense,
			Net:              b.totals.Net(),
			TransactionCount: b.count,
		})
	}
	return points
}
