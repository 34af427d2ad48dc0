// Package export builds downloadable documents from the owner's transactions.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Header is the fixed column set of every export.
var Header = []string{"Date", "Description", "Type", "Amount", "Category", "Account"}

// Row renders one transaction as export columns.
// Missing category or account references render as an empty string.
func Row(tx *entity.Transaction, lookup *valueobject.LedgerLookup) []string {
	category, _ := lookup.CategoryName(tx.CategoryID)
	account, _ := lookup.AccountName(tx.AccountID)
	return []string{
		valueobject.DateString(tx.Date),
		tx.Description,
		string(tx.Type),
		tx.Amount.StringFixed(2),
		category,
		account,
	}
}

// FormatCSV renders transactions in the given order as an RFC 4180 document.
func FormatCSV(transactions []*entity.Transaction, lookup *valueobject.LedgerLookup) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Writes into a bytes.Buffer cannot fail.
	_ = w.Write(Header)
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		_ = w.Write(Row(tx, lookup))
	}
	w.Flush()

	return buf.Bytes()
}
