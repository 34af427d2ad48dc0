package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SheetName is the name of the single worksheet of an XLSX export.
const SheetName = "Transacoes"

// FormatXLSX renders the same rows as FormatCSV into a single-sheet workbook.
func FormatXLSX(transactions []*entity.Transaction, lookup *valueobject.LedgerLookup) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A new file starts with "Sheet1"; rename instead of adding a second sheet.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, 1, Header); err != nil {
		return nil, err
	}

	row := 2
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		cols := Row(tx, lookup)
		if err := setRow(f, row, cols); err != nil {
			return nil, err
		}
		// Keep the amount numeric so spreadsheets can sum it.
		amount, _ := tx.Amount.Round(2).Float64()
		if err := f.SetCellValue(SheetName, cellName(4, row), amount); err != nil {
			return nil, fmt.Errorf("failed to write amount: %w", err)
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for i, v := range values {
		if err := f.SetCellValue(SheetName, cellName(i+1, row), v); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
