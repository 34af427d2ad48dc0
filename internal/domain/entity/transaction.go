// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether the transaction type is one of the known kinds.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// Recurrence rules accepted for recurring transactions.
const (
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// IsValidRecurrence reports whether rule is a known recurrence rule.
func IsValidRecurrence(rule string) bool {
	return rule == RecurrenceWeekly || rule == RecurrenceMonthly || rule == RecurrenceYearly
}

// Transaction represents a single ledger movement.
// Expense amounts may be stored with either sign; aggregation always uses their magnitude.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CategoryID         *uuid.UUID // Optional, can be uncategorized
	Description        string
	Amount             decimal.Decimal
	Type               TransactionType
	Date               time.Time // Calendar day, no time component
	IsConsolidated     bool
	IsRecurring        bool
	RecurrenceRule     *string
	RecurrenceGroupID  *uuid.UUID
	InstallmentCurrent *int
	InstallmentTotal   *int
	Notes              *string
	AttachmentURL      *string
	TransferPeerID     *uuid.UUID // Other half of a linked transfer pair
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewTransaction creates a new consolidated Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:             uuid.New(),
		UserID:         userID,
		AccountID:      accountID,
		CategoryID:     categoryID,
		Description:    description,
		Amount:         amount,
		Type:           transactionType,
		Date:           NormalizeDate(date),
		IsConsolidated: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsInstallment reports whether the transaction is part of an installment plan.
func (t *Transaction) IsInstallment() bool {
	return t.InstallmentTotal != nil && *t.InstallmentTotal > 1
}

// NormalizeDate drops the time component, keeping the calendar day as UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
