package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetsUseCase
	createUseCase   *budget.CreateBudgetUseCase
	updateUseCase   *budget.UpdateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	progressUseCase *budget.GetBudgetProgressUseCase
	now             func() time.Time
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
	now func() time.Time,
) *BudgetController {
	if now == nil {
		now = time.Now
	}
	return &BudgetController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		progressUseCase: progressUseCase,
		now:             now,
	}
}

// List handles GET /budgets?month=&year= requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	month, year, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Progress handles GET /budgets/progress?month=&year= requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	month, year, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), budget.GetBudgetProgressInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:     userID,
		CategoryID: uuid.MustParse(req.CategoryID),
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		BudgetID:   budgetID,
		UserID:     userID,
		CategoryID: parseOptionalUUID(req.CategoryID),
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
