package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "not found",
			err:    domainerror.NewLedgerError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound),
			status: http.StatusNotFound,
		},
		{
			name:   "wrapped ownership",
			err:    fmt.Errorf("failed to create: %w", domainerror.NewLedgerError(domainerror.ErrCodeCategoryNotOwned, "nope", domainerror.ErrCategoryNotOwned)),
			status: http.StatusForbidden,
		},
		{
			name:   "validation",
			err:    domainerror.NewLedgerError(domainerror.ErrCodeInvalidName, "name is required", domainerror.ErrInvalidName),
			status: http.StatusBadRequest,
		},
		{
			name:   "report range",
			err:    domainerror.NewReportError(domainerror.ErrCodeInvalidDateRange, "bad range", domainerror.ErrInvalidDateRange),
			status: http.StatusBadRequest,
		},
		{
			name:   "rate limited",
			err:    domainerror.NewReportError(domainerror.ErrCodeExportRateLimited, "slow down", nil),
			status: http.StatusTooManyRequests,
		},
		{
			name:   "unexpected",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	if !got.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parseDate() = %v", got)
	}

	if got, err := parseDate(""); err != nil || !got.IsZero() {
		t.Errorf("parseDate(\"\") = %v, %v", got, err)
	}

	_, err = parseDate("2024-02-30")
	if !errors.Is(err, domainerror.ErrInvalidDateFormat) {
		t.Errorf("parseDate() error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestParseOptionalUUID(t *testing.T) {
	empty, bad, good := "", "zzz", "7f0c1e9a-4a43-4f55-9a4f-0f5d3f9c2b11"
	if parseOptionalUUID(nil) != nil || parseOptionalUUID(&empty) != nil || parseOptionalUUID(&bad) != nil {
		t.Error("expected nil for absent or malformed values")
	}
	if id := parseOptionalUUID(&good); id == nil || id.String() != good {
		t.Errorf("parseOptionalUUID() = %v", id)
	}
}

func TestMonthQuery(t *testing.T) {
	now := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		query      string
		wantMonth  int
		wantYear   int
		wantParsed bool
	}{
		{query: "", wantMonth: 7, wantYear: 2024, wantParsed: true},
		{query: "?month=2&year=2023", wantMonth: 2, wantYear: 2023, wantParsed: true},
		{query: "?month=feb", wantParsed: false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			month, year, ok := monthQuery(ctx, now)
			if ok != tt.wantParsed {
				t.Fatalf("ok = %v, want %v", ok, tt.wantParsed)
			}
			if ok && (month != tt.wantMonth || year != tt.wantYear) {
				t.Errorf("monthQuery() = %d/%d, want %d/%d", month, year, tt.wantMonth, tt.wantYear)
			}
			if !ok && w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
