package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID          string          `json:"account_id" binding:"required,uuid"`
	CategoryID         *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Description        string          `json:"description" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type" binding:"required"`
	Date               string          `json:"date" binding:"required"`
	IsConsolidated     *bool           `json:"is_consolidated,omitempty"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurrenceRule     *string         `json:"recurrence_rule,omitempty"`
	InstallmentCurrent *int            `json:"installment_current,omitempty"`
	InstallmentTotal   *int            `json:"installment_total,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	AttachmentURL      *string         `json:"attachment_url,omitempty"`
	TransferPeerID     *string         `json:"transfer_peer_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// ClearCategory removes the category; it wins over CategoryID.
type UpdateTransactionRequest struct {
	AccountID      *string          `json:"account_id,omitempty" binding:"omitempty,uuid"`
	CategoryID     *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory  bool             `json:"clear_category"`
	Description    *string          `json:"description,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Type           *string          `json:"type,omitempty"`
	Date           *string          `json:"date,omitempty"`
	IsConsolidated *bool            `json:"is_consolidated,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                 string          `json:"id"`
	AccountID          string          `json:"account_id"`
	AccountName        string          `json:"account_name,omitempty"`
	CategoryID         *string         `json:"category_id,omitempty"`
	CategoryName       string          `json:"category_name,omitempty"`
	CategoryColor      string          `json:"category_color,omitempty"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	Date               string          `json:"date"`
	IsConsolidated     bool            `json:"is_consolidated"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurrenceRule     *string         `json:"recurrence_rule,omitempty"`
	RecurrenceGroupID  *string         `json:"recurrence_group_id,omitempty"`
	InstallmentCurrent *int            `json:"installment_current,omitempty"`
	InstallmentTotal   *int            `json:"installment_total,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	AttachmentURL      *string         `json:"attachment_url,omitempty"`
	TransferPeerID     *string         `json:"transfer_peer_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// TransactionTotalsResponse represents the totals of a transaction listing.
type TransactionTotalsResponse struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	StartDate    string                    `json:"start_date"`
	EndDate      string                    `json:"end_date"`
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 t.ID.String(),
		AccountID:          t.AccountID.String(),
		CategoryID:         uuidString(t.CategoryID),
		Description:        t.Description,
		Amount:             t.Amount,
		Type:               string(t.Type),
		Date:               t.Date.Format("2006-01-02"),
		IsConsolidated:     t.IsConsolidated,
		IsRecurring:        t.IsRecurring,
		RecurrenceRule:     t.RecurrenceRule,
		RecurrenceGroupID:  uuidString(t.RecurrenceGroupID),
		InstallmentCurrent: t.InstallmentCurrent,
		InstallmentTotal:   t.InstallmentTotal,
		Notes:              t.Notes,
		AttachmentURL:      t.AttachmentURL,
		TransferPeerID:     uuidString(t.TransferPeerID),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	items := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		item := ToTransactionResponse(t.Transaction)
		item.AccountName = t.AccountName
		item.CategoryName = t.CategoryName
		item.CategoryColor = t.CategoryColor
		items[i] = item
	}
	return TransactionListResponse{
		StartDate:    output.StartDate.Format("2006-01-02"),
		EndDate:      output.EndDate.Format("2006-01-02"),
		Transactions: items,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal,
			ExpenseTotal: output.Totals.ExpenseTotal,
			NetTotal:     output.Totals.NetTotal,
		},
	}
}
