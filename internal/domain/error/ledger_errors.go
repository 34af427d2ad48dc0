// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Ledger entity errors.
var (
	// ErrAccountNotFound is returned when an account is not found for the owner.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCategoryNotFound is returned when a category is not found for the owner.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when a transaction is not found for the owner.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when a budget is not found for the owner.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrGoalNotFound is returned when a goal is not found for the owner.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidName is returned when a required name or title is empty.
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidAccountType is returned for an unknown account type.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidCategoryType is returned for an unknown category type.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrInvalidTransactionType is returned for an unknown transaction type.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrMissingDate is returned when a transaction date is not provided.
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidInstallment is returned when installment metadata is inconsistent.
	ErrInvalidInstallment = errors.New("invalid installment")

	// ErrInvalidBudgetPeriod is returned when a budget month or year is out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidAmount is returned when a monetary amount is negative where it must not be.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRecurrence is returned for an unknown recurrence rule or a
	// recurring transaction that is also an installment.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrNameTooLong is returned when a name or title exceeds its column size.
	ErrNameTooLong = errors.New("name too long")

	// ErrDescriptionTooLong is returned when a transaction description exceeds its column size.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidColorFormat is returned when a color is not a #RRGGBB hex string.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrAccountNotOwned is returned when a transaction references another owner's account.
	ErrAccountNotOwned = errors.New("account does not belong to user")

	// ErrCategoryNotOwned is returned when a record references another owner's category.
	ErrCategoryNotOwned = errors.New("category does not belong to user")
)

// LedgerErrorCode defines error codes for ledger entity errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Not found errors (01XXXX)
	ErrCodeAccountNotFound     LedgerErrorCode = "LDG-010001"
	ErrCodeCategoryNotFound    LedgerErrorCode = "LDG-010002"
	ErrCodeTransactionNotFound LedgerErrorCode = "LDG-010003"
	ErrCodeBudgetNotFound      LedgerErrorCode = "LDG-010004"
	ErrCodeGoalNotFound        LedgerErrorCode = "LDG-010005"

	// Validation errors (02XXXX)
	ErrCodeInvalidName            LedgerErrorCode = "LDG-020001"
	ErrCodeInvalidAccountType     LedgerErrorCode = "LDG-020002"
	ErrCodeInvalidCategoryType    LedgerErrorCode = "LDG-020003"
	ErrCodeInvalidTransactionType LedgerErrorCode = "LDG-020004"
	ErrCodeMissingDate            LedgerErrorCode = "LDG-020005"
	ErrCodeInvalidInstallment     LedgerErrorCode = "LDG-020006"
	ErrCodeInvalidBudgetPeriod    LedgerErrorCode = "LDG-020007"
	ErrCodeInvalidAmount          LedgerErrorCode = "LDG-020008"
	ErrCodeMissingLedgerFields    LedgerErrorCode = "LDG-020009"
	ErrCodeNameTooLong            LedgerErrorCode = "LDG-020010"
	ErrCodeDescriptionTooLong     LedgerErrorCode = "LDG-020011"
	ErrCodeInvalidColorFormat     LedgerErrorCode = "LDG-020012"
	ErrCodeInvalidRecurrence      LedgerErrorCode = "LDG-020013"

	// Ownership errors (03XXXX)
	ErrCodeAccountNotOwned  LedgerErrorCode = "LDG-030001"
	ErrCodeCategoryNotOwned LedgerErrorCode = "LDG-030002"

	// Internal errors (99XXXX)
	ErrCodeLedgerInternalError LedgerErrorCode = "LDG-990001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err wraps one of the ledger not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrGoalNotFound)
}
