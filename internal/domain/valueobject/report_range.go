package valueobject

import (
	"time"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ValidateReportMonth checks a calendar month selector of a report.
func ValidateReportMonth(month, year int) error {
	if month < 1 || month > 12 || year < 1900 || year > 9999 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			"month must be 1-12 and year 1900-9999",
			domainerror.ErrInvalidReportPeriod,
		)
	}
	return nil
}

// ValidateReportRange checks the inclusive date range of a report or export.
func ValidateReportRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if end.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if end.Before(start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
