package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Format identifies an export document format.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FilenamePrefix is the base name of exported files.
const FilenamePrefix = "transacoes"

// IsValid reports whether the format is supported.
func (f Format) IsValid() bool {
	return f == CSV || f == XLSX
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds "<prefix>_YYYY-MM-DD.<format>".
func Filename(prefix string, now time.Time, format Format) string {
	return fmt.Sprintf("%s_%s.%s", prefix, valueobject.DateString(now), format)
}

// Document is an export ready to be handed to a download or file sink.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// ExportTransactionsInput represents the input for a transaction export.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Format    Format
}

// ExportTransactionsOutput represents the output of a transaction export.
type ExportTransactionsOutput struct {
	Document Document
}

// ExportTransactionsUseCase builds transaction exports for an inclusive date range.
type ExportTransactionsUseCase struct {
	loader snapshot.Loader
	now    func() time.Time
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(loader snapshot.Loader, now func() time.Time) *ExportTransactionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportTransactionsUseCase{
		loader: loader,
		now:    now,
	}
}

// Execute loads the range and renders it newest first.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.Format == "" {
		input.Format = CSV
	}
	if !input.Format.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			"format must be 'csv' or 'xlsx'",
			domainerror.ErrInvalidExportFormat,
		)
	}
	if err := valueobject.ValidateReportRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	ledger, err := uc.loader.Execute(ctx, snapshot.LoadSnapshotInput{
		UserID:  input.UserID,
		Start:   input.StartDate,
		End:     input.EndDate,
		Include: snapshot.PartAccounts | snapshot.PartCategories | snapshot.PartTransactions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	lookup := valueobject.NewLedgerLookup(ledger.Categories, ledger.Accounts)

	var content []byte
	switch input.Format {
	case XLSX:
		content, err = FormatXLSX(ledger.Transactions, lookup)
		if err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	default:
		content = FormatCSV(ledger.Transactions, lookup)
	}

	slog.DebugContext(ctx, "transactions exported",
		"user_id", input.UserID,
		"format", input.Format,
		"rows", len(ledger.Transactions),
	)

	return &ExportTransactionsOutput{
		Document: Document{
			Filename:    Filename(FilenamePrefix, uc.now(), input.Format),
			ContentType: input.Format.ContentType(),
			Content:     content,
			Rows:        len(ledger.Transactions),
		},
	}, nil
}
