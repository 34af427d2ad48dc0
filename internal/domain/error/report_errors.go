// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Report request errors. The aggregation functions themselves never fail;
// these cover malformed requests for a report.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidMonthCount is returned when the trailing month count is out of range.
	ErrInvalidMonthCount = errors.New("invalid month count")

	// ErrInvalidReportPeriod is returned when a month or year parameter is out of range.
	ErrInvalidReportPeriod = errors.New("invalid month or year")

	// ErrInvalidExportFormat is returned for an unsupported export format.
	ErrInvalidExportFormat = errors.New("export format must be: csv or xlsx")

	// ErrMissingOwner is returned when no owner identifies the request.
	ErrMissingOwner = errors.New("owner is required")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate    ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate      ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange    ReportErrorCode = "RPT-010003"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010004"
	ErrCodeInvalidMonthCount   ReportErrorCode = "RPT-010005"
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010006"
	ErrCodeInvalidExportFormat ReportErrorCode = "RPT-010007"
	ErrCodeMissingOwner        ReportErrorCode = "RPT-010008"
	ErrCodeExportRateLimited   ReportErrorCode = "RPT-020001"
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
