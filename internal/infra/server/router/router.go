// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Account     *controller.AccountController
	Category    *controller.CategoryController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Dashboard   *controller.DashboardController
	Export      *controller.ExportController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	controllers       Controllers
	ownerMiddleware   *middleware.OwnerMiddleware
	exportRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	ownerMiddleware *middleware.OwnerMiddleware,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		controllers:       controllers,
		ownerMiddleware:   ownerMiddleware,
		exportRateLimiter: exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
// Every route below /api/v1 is scoped to the owner named by the X-User-ID header.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.ownerMiddleware.RequireOwner())

	if c := r.controllers.Account; c != nil {
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", c.List)
			accounts.POST("", c.Create)
			accounts.PATCH("/:id", c.Update)
			accounts.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Category; c != nil {
		categories := v1.Group("/categories")
		{
			categories.GET("", c.List)
			categories.POST("", c.Create)
			categories.PATCH("/:id", c.Update)
			categories.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Transaction; c != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", c.List)
			transactions.POST("", c.Create)
			transactions.PATCH("/:id", c.Update)
			transactions.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Budget; c != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", c.List)
			budgets.GET("/progress", c.Progress)
			budgets.POST("", c.Create)
			budgets.PATCH("/:id", c.Update)
			budgets.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Goal; c != nil {
		goals := v1.Group("/goals")
		{
			goals.GET("", c.List)
			goals.GET("/progress", c.Progress)
			goals.POST("", c.Create)
			goals.PATCH("/:id", c.Update)
			goals.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Dashboard; c != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", c.Summary)
			dashboard.GET("/monthly-series", c.MonthlySeries)
			dashboard.GET("/category-breakdown", c.CategoryBreakdown)
		}
	}

	if c := r.controllers.Export; c != nil {
		exports := v1.Group("/export")
		if r.exportRateLimiter != nil {
			exports.Use(r.exportRateLimiter.Middleware())
		}
		{
			exports.GET("/transactions", c.Transactions)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
