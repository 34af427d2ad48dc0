// Package category contains category-related use cases.
package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxIconLength is the maximum allowed length for icon names.
	MaxIconLength = 50
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidName,
			"category name is required",
			domainerror.ErrInvalidName,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func validateType(categoryType entity.CategoryType) error {
	if !categoryType.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidCategoryType,
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

func validateIcon(icon *string) error {
	if icon != nil && utf8.RuneCountInString(*icon) > MaxIconLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNameTooLong,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
