// Package account contains account-related use cases.
package account

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidName,
			"account name is required",
			domainerror.ErrInvalidName,
		)
	}
	if utf8.RuneCountInString(name) > MaxAccountNameLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func validateType(accountType entity.AccountType) error {
	if !accountType.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'checking', 'savings', 'investment' or 'cash'",
			domainerror.ErrInvalidAccountType,
		)
	}
	return nil
}

func validateColor(color *string) error {
	if color != nil && *color != "" && !valueobject.IsHexColor(*color) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}
