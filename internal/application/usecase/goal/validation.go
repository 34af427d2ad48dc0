package goal

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxTitleLength is the maximum goal title length in characters.
const MaxTitleLength = 100

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidName,
			"title is required",
			domainerror.ErrInvalidName,
		)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNameTooLong,
			"title must be at most 100 characters",
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			field+" must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
