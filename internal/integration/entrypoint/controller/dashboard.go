package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DashboardController handles report endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	seriesUseCase    *dashboard.GetMonthlySeriesUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	now              func() time.Time
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	seriesUseCase *dashboard.GetMonthlySeriesUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	now func() time.Time,
) *DashboardController {
	if now == nil {
		now = time.Now
	}
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		seriesUseCase:    seriesUseCase,
		breakdownUseCase: breakdownUseCase,
		now:              now,
	}
}

// Summary handles GET /dashboard/summary?month=&year= requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}
	month, year, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
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

// MonthlySeries handles GET /dashboard/monthly-series requests.
// Query parameters: months (defaults to the configured window), reference_date.
func (c *DashboardController) MonthlySeries(ctx *gin.Context) {
	userID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	months, err := queryInt(ctx, "months", 0)
	if err != nil {
		badRequest(ctx, "months must be a number", string(domainerror.ErrCodeInvalidMonthCount))
		return
	}
	reference, err := parseDate(ctx.Query("reference_date"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.seriesUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySeriesInput{
		UserID:        userID,
		Months:        months,
		ReferenceDate: reference,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CategoryBreakdown handles GET /dashboard/category-breakdown?start_date=&end_date= requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
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

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}
