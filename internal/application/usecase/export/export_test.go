package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

var testUser = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func fixture() ([]*entity.Transaction, *valueobject.LedgerLookup) {
	account := entity.NewAccount(testUser, "Nubank", entity.AccountTypeChecking, decimal.Zero, nil, nil)
	groceries := entity.NewCategory(testUser, `Food "home"`, entity.CategoryTypeExpense, nil, nil, nil)
	deleted := uuid.New()

	txs := []*entity.Transaction{
		entity.NewTransaction(testUser, account.ID, &groceries.ID, "Rice, beans and coffee", decimal.RequireFromString("-50.5"),
			entity.TransactionTypeExpense, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)),
		entity.NewTransaction(testUser, uuid.New(), &deleted, "Salary", decimal.RequireFromString("3000"),
			entity.TransactionTypeIncome, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
	}
	return txs, valueobject.NewLedgerLookup([]*entity.Category{groceries}, []*entity.Account{account})
}

func TestFormatCSV(t *testing.T) {
	txs, lookup := fixture()

	records, err := csv.NewReader(bytes.NewReader(FormatCSV(txs, lookup))).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := [][]string{
		{"Date", "Description", "Type", "Amount", "Category", "Account"},
		{"2024-03-15", "Rice, beans and coffee", "expense", "-50.50", `Food "home"`, "Nubank"},
		{"2024-03-05", "Salary", "income", "3000.00", "", ""},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record[%d][%d] = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestFormatCSV_Empty(t *testing.T) {
	got := string(FormatCSV(nil, nil))
	if got != "Date,Description,Type,Amount,Category,Account\n" {
		t.Errorf("FormatCSV(nil) = %q", got)
	}
}

func TestFormatXLSX(t *testing.T) {
	txs, lookup := fixture()

	content, err := FormatXLSX(txs, lookup)
	if err != nil {
		t.Fatalf("FormatXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Date" || rows[1][1] != "Rice, beans and coffee" || rows[1][5] != "Nubank" || rows[2][1] != "Salary" {
		t.Errorf("rows = %v", rows)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	if got := Filename(FilenamePrefix, now, CSV); got != "transacoes_2024-03-15.csv" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename(FilenamePrefix, now, XLSX); got != "transacoes_2024-03-15.xlsx" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestExportTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	account := entity.NewAccount(testUser, "Main", entity.AccountTypeChecking, decimal.Zero, nil, nil)
	_ = store.Accounts().Create(ctx, account)
	_ = store.Transactions().Create(ctx, entity.NewTransaction(testUser, account.ID, nil, "Coffee", decimal.RequireFromString("-4"),
		entity.TransactionTypeExpense, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	_ = store.Transactions().Create(ctx, entity.NewTransaction(testUser, account.ID, nil, "Old", decimal.RequireFromString("-4"),
		entity.TransactionTypeExpense, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	loader := snapshot.NewLoadSnapshotUseCase(store.Accounts(), store.Categories(), store.Transactions(), store.Budgets(), store.Goals())
	now := func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	uc := NewExportTransactionsUseCase(loader, now)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	out, err := uc.Execute(ctx, ExportTransactionsInput{UserID: testUser, StartDate: start, EndDate: end})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	doc := out.Document
	if doc.Filename != "transacoes_2024-04-01.csv" || doc.ContentType != "text/csv; charset=utf-8" || doc.Rows != 1 {
		t.Errorf("document = %+v", doc)
	}

	tests := []struct {
		name  string
		input ExportTransactionsInput
		want  error
	}{
		{name: "bad format", input: ExportTransactionsInput{UserID: testUser, StartDate: start, EndDate: end, Format: "pdf"}, want: domainerror.ErrInvalidExportFormat},
		{name: "missing start", input: ExportTransactionsInput{UserID: testUser, EndDate: end}, want: domainerror.ErrMissingStartDate},
		{name: "missing end", input: ExportTransactionsInput{UserID: testUser, StartDate: start}, want: domainerror.ErrMissingEndDate},
		{name: "inverted range", input: ExportTransactionsInput{UserID: testUser, StartDate: end, EndDate: start}, want: domainerror.ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
