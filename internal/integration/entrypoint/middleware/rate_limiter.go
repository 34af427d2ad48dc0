package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// defaultExportWindow applies when no window length is configured.
const defaultExportWindow = time.Minute

// pruneThreshold is the number of tracked keys above which expired windows are dropped.
const pruneThreshold = 1024

type window struct {
	count    int
	resetsAt time.Time
}

// RateLimiter caps export downloads per owner in fixed windows. Requests
// without an owner are counted by client address.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	length  time.Duration
	now     func() time.Time
}

// NewRateLimiterWithConfig allows limit requests per key every length.
// A non-positive limit disables limiting.
func NewRateLimiterWithConfig(limit int, length time.Duration) *RateLimiter {
	if length <= 0 {
		length = defaultExportWindow
	}
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		length:  length,
		now:     time.Now,
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		ok, wait := rl.take(limiterKey(c))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "export limit reached, try again later",
				Code:  string(domainerror.ErrCodeExportRateLimited),
			})
			return
		}
		c.Next()
	}
}

func limiterKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return userID.String()
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return c.Request.RemoteAddr
}

// take counts one request for key. When the window is full it returns false
// and the time left until the window resets.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetsAt) {
		if !ok && len(rl.windows) >= pruneThreshold {
			rl.prune(now)
		}
		rl.windows[key] = &window{count: 1, resetsAt: now.Add(rl.length)}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, w.resetsAt.Sub(now)
	}
	w.count++
	return true, 0
}

func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if !now.Before(w.resetsAt) {
			delete(rl.windows, key)
		}
	}
}
