// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// validator checks a transaction before it is written.
type validator struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
}

// validate checks the fields and both references of a new transaction.
func (v validator) validate(ctx context.Context, tx *entity.Transaction) error {
	if err := validateFields(tx); err != nil {
		return err
	}
	if err := v.validateAccount(ctx, tx); err != nil {
		return err
	}
	return v.validateCategory(ctx, tx)
}

func validateFields(tx *entity.Transaction) error {
	if strings.TrimSpace(tx.Description) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidName,
			"description is required",
			domainerror.ErrInvalidName,
		)
	}

	if utf8.RuneCountInString(tx.Description) > MaxDescriptionLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if tx.Notes != nil && utf8.RuneCountInString(*tx.Notes) > MaxNotesLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !tx.Type.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if tx.Date.IsZero() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}

	return validateSchedule(tx)
}

func (v validator) validateAccount(ctx context.Context, tx *entity.Transaction) error {
	if _, err := v.accountRepo.FindByID(ctx, tx.UserID, tx.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeAccountNotOwned,
				"account does not belong to user",
				domainerror.ErrAccountNotOwned,
			)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	return nil
}

func (v validator) validateCategory(ctx context.Context, tx *entity.Transaction) error {
	if tx.CategoryID != nil {
		if _, err := v.categoryRepo.FindByID(ctx, tx.UserID, *tx.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return domainerror.NewLedgerError(
					domainerror.ErrCodeCategoryNotOwned,
					"category does not belong to user",
					domainerror.ErrCategoryNotOwned,
				)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}
	}

	return nil
}

// validateSchedule checks recurrence and installment metadata. A transaction
// is either recurring or an installment, never both.
func validateSchedule(tx *entity.Transaction) error {
	if tx.IsRecurring {
		if tx.RecurrenceRule == nil || !entity.IsValidRecurrence(*tx.RecurrenceRule) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidRecurrence,
				"recurrence rule must be 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidRecurrence,
			)
		}
		if tx.InstallmentTotal != nil {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidRecurrence,
				"a recurring transaction cannot have installments",
				domainerror.ErrInvalidRecurrence,
			)
		}
	}

	if tx.InstallmentTotal == nil && tx.InstallmentCurrent == nil {
		return nil
	}
	if tx.InstallmentTotal == nil || tx.InstallmentCurrent == nil ||
		*tx.InstallmentTotal < 1 || *tx.InstallmentCurrent < 1 ||
		*tx.InstallmentCurrent > *tx.InstallmentTotal {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallment,
			"installment current must be between 1 and total",
			domainerror.ErrInvalidInstallment,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
