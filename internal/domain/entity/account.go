// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account holding the money.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCash       AccountType = "cash"
)

// IsValid reports whether the account type is one of the known kinds.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeCash:
		return true
	}
	return false
}

// Account represents a bank account, wallet or brokerage owned by a user.
// Balance is maintained by whatever posts transactions; the aggregation code only reads it.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	Color     *string
	Icon      *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new active Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, balance decimal.Decimal, color, icon *string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      accountType,
		Balance:   balance,
		Color:     color,
		Icon:      icon,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
