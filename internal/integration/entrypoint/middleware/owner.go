// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the ledger owner's ID.
	UserIDKey ContextKey = "user_id"

	// OwnerHeader carries the owner ID set by the upstream gateway.
	OwnerHeader = "X-User-ID"
)

// OwnerMiddleware scopes every request to the owner named in the X-User-ID header.
// Authenticating that header is the gateway's job.
type OwnerMiddleware struct{}

// NewOwnerMiddleware creates a new owner middleware instance.
func NewOwnerMiddleware() *OwnerMiddleware {
	return &OwnerMiddleware{}
}

// RequireOwner returns a Gin middleware handler that rejects requests without a valid owner.
func (m *OwnerMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if header == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: OwnerHeader + " header is required",
				Code:  string(domainerror.ErrCodeMissingOwner),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil || userID == uuid.Nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: OwnerHeader + " header must be a UUID",
				Code:  string(domainerror.ErrCodeMissingOwner),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the owner ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
