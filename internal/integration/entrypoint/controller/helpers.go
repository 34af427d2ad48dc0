package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(statusForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "request failed",
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound,
		domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountNotOwned, domainerror.ErrCodeCategoryNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeLedgerInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// statusForReportError maps report error codes to HTTP status codes.
func statusForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeExportRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeMissingOwner:
		return http.StatusUnauthorized
	case domainerror.ErrCodeReportInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// requireOwner reads the owner set by middleware.OwnerMiddleware.
func requireOwner(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Owner not identified",
			Code:  string(domainerror.ErrCodeMissingOwner),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id route parameter.
func pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " ID format",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest answers a malformed body or query.
func badRequest(ctx *gin.Context, message string, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func invalidBody(ctx *gin.Context, err error) {
	badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingLedgerFields))
}

// parseDate parses a YYYY-MM-DD value; the empty string yields the zero time.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := valueobject.ParseDate(value)
	if err != nil {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date "+strconv.Quote(value)+", expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return t, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, nil
	}
	return &t, nil
}

// parseOptionalUUID parses an already validated optional UUID string.
func parseOptionalUUID(value *string) *uuid.UUID {
	if value == nil || *value == "" {
		return nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil
	}
	return &id
}

// queryInt reads an integer query parameter, returning fallback when absent.
func queryInt(ctx *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// monthQuery reads month and year, defaulting to the current month.
func monthQuery(ctx *gin.Context, now time.Time) (int, int, bool) {
	month, err := queryInt(ctx, "month", int(now.Month()))
	if err != nil {
		badRequest(ctx, "month must be a number", string(domainerror.ErrCodeInvalidReportPeriod))
		return 0, 0, false
	}
	year, err := queryInt(ctx, "year", now.Year())
	if err != nil {
		badRequest(ctx, "year must be a number", string(domainerror.ErrCodeInvalidReportPeriod))
		return 0, 0, false
	}
	return month, year, true
}
