package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/export"
)

// ExportController serves downloadable transaction documents.
type ExportController struct {
	exportUseCase *export.ExportTransactionsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportTransactionsUseCase) *ExportController {
	return &ExportController{exportUseCase: exportUseCase}
}

// Transactions handles GET /export/transactions?start_date=&end_date=&format= requests.
func (c *ExportController) Transactions(ctx *gin.Context) {
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

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportTransactionsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Format:    export.Format(ctx.Query("format")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	doc := output.Document
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	ctx.Data(http.StatusOK, doc.ContentType, doc.Content)
}
