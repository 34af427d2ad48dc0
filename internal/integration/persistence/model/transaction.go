package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	Date               time.Time       `gorm:"type:date;not null;index"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type               string          `gorm:"type:varchar(10);not null;index"`
	IsConsolidated     bool            `gorm:"not null;default:true"`
	IsRecurring        bool            `gorm:"default:false"`
	RecurrenceRule     *string         `gorm:"type:varchar(20)"`
	RecurrenceGroupID  *uuid.UUID      `gorm:"type:uuid;index"`
	InstallmentCurrent *int            `gorm:"type:integer"`
	InstallmentTotal   *int            `gorm:"type:integer"`
	Notes              *string         `gorm:"type:text"`
	AttachmentURL      *string         `gorm:"type:text"`
	TransferPeerID     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		AccountID:          m.AccountID,
		CategoryID:         m.CategoryID,
		Description:        m.Description,
		Amount:             m.Amount,
		Type:               entity.TransactionType(m.Type),
		Date:               entity.NormalizeDate(m.Date),
		IsConsolidated:     m.IsConsolidated,
		IsRecurring:        m.IsRecurring,
		RecurrenceRule:     m.RecurrenceRule,
		RecurrenceGroupID:  m.RecurrenceGroupID,
		InstallmentCurrent: m.InstallmentCurrent,
		InstallmentTotal:   m.InstallmentTotal,
		Notes:              m.Notes,
		AttachmentURL:      m.AttachmentURL,
		TransferPeerID:     m.TransferPeerID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                 transaction.ID,
		UserID:             transaction.UserID,
		AccountID:          transaction.AccountID,
		CategoryID:         transaction.CategoryID,
		Description:        transaction.Description,
		Amount:             transaction.Amount,
		Type:               string(transaction.Type),
		Date:               entity.NormalizeDate(transaction.Date),
		IsConsolidated:     transaction.IsConsolidated,
		IsRecurring:        transaction.IsRecurring,
		RecurrenceRule:     transaction.RecurrenceRule,
		RecurrenceGroupID:  transaction.RecurrenceGroupID,
		InstallmentCurrent: transaction.InstallmentCurrent,
		InstallmentTotal:   transaction.InstallmentTotal,
		Notes:              transaction.Notes,
		AttachmentURL:      transaction.AttachmentURL,
		TransferPeerID:     transaction.TransferPeerID,
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
	}
}
