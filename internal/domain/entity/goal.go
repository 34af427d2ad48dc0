// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the Finance Tracker system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   *string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	ImageURL      *string
	IsCompleted   bool // Informational; never derived from progress
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, title string, description *string, targetAmount, currentAmount decimal.Decimal, targetDate *time.Time) *Goal {
	now := time.Now().UTC()

	if targetDate != nil {
		d := NormalizeDate(*targetDate)
		targetDate = &d
	}

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
