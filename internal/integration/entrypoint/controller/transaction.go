package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
// Query parameters: start_date, end_date, type, category_id, search.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	startDate, err := parseDate(ctx.Query("start_date"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	endDate, err := parseDate(ctx.Query("end_date"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Search:    ctx.Query("search"),
	}
	if typeParam := ctx.Query("type"); typeParam != "" {
		txType := entity.TransactionType(typeParam)
		input.Type = &txType
	}
	if categoryParam := ctx.Query("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			badRequest(ctx, "Invalid category ID format", string(domainerror.ErrCodeMissingLedgerFields))
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:             userID,
		AccountID:          uuid.MustParse(req.AccountID),
		CategoryID:         parseOptionalUUID(req.CategoryID),
		Description:        req.Description,
		Amount:             req.Amount,
		Type:               entity.TransactionType(req.Type),
		Date:               date,
		IsConsolidated:     req.IsConsolidated,
		IsRecurring:        req.IsRecurring,
		RecurrenceRule:     req.RecurrenceRule,
		InstallmentCurrent: req.InstallmentCurrent,
		InstallmentTotal:   req.InstallmentTotal,
		Notes:              req.Notes,
		AttachmentURL:      req.AttachmentURL,
		TransferPeerID:     parseOptionalUUID(req.TransferPeerID),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID:  transactionID,
		UserID:         userID,
		AccountID:      parseOptionalUUID(req.AccountID),
		CategoryID:     parseOptionalUUID(req.CategoryID),
		ClearCategory:  req.ClearCategory,
		Description:    req.Description,
		Amount:         req.Amount,
		Date:           date,
		IsConsolidated: req.IsConsolidated,
		Notes:          req.Notes,
	}
	if req.Type != nil {
		txType := entity.TransactionType(*req.Type)
		input.Type = &txType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
