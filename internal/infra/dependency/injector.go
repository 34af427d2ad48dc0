// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/export"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/snapshot"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Options carries the optional collaborators of the injector.
type Options struct {
	// Cache stores computed reports. Nil disables caching.
	Cache adapter.ReportCache
	// CacheHealth reports cache reachability on /health.
	CacheHealth controller.HealthChecker
	// Now overrides the clock used for default periods and export filenames.
	Now func() time.Time
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Report use cases shared with the command line tool.
	Summary        *dashboard.GetSummaryUseCase
	BudgetProgress *budget.GetBudgetProgressUseCase
	GoalProgress   *goal.GetGoalProgressUseCase
	Export         *export.ExportTransactionsUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	reportCache := opts.Cache
	if reportCache == nil {
		reportCache = cache.NewNoopCache()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	loader := snapshot.NewLoadSnapshotUseCase(accountRepo, categoryRepo, transactionRepo, budgetRepo, goalRepo)
	labeler := dashboard.NewMonthLabeler(cfg.Report.Locale)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, reportCache)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo, reportCache)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, reportCache)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, reportCache)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, reportCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, reportCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(loader, now)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, reportCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, reportCache)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo, reportCache)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, reportCache)
	budgetProgressUseCase := budget.NewGetBudgetProgressUseCase(loader, reportCache)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, reportCache)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, reportCache)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, reportCache)
	goalProgressUseCase := goal.NewGetGoalProgressUseCase(goalRepo, reportCache)

	// Create report use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(loader, transactionRepo, reportCache, labeler)
	seriesUseCase := dashboard.NewGetMonthlySeriesUseCase(loader, reportCache, labeler, cfg.Report.DefaultMonths, now)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(loader, reportCache, labeler)
	exportUseCase := export.NewExportTransactionsUseCase(loader, now)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}, opts.CacheHealth),
		Account: controller.NewAccountController(
			listAccountsUseCase,
			createAccountUseCase,
			updateAccountUseCase,
			deleteAccountUseCase,
		),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			createBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
			budgetProgressUseCase,
			now,
		),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			createGoalUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			goalProgressUseCase,
		),
		Dashboard: controller.NewDashboardController(summaryUseCase, seriesUseCase, breakdownUseCase, now),
		Export:    controller.NewExportController(exportUseCase),
	}

	// Create middleware
	ownerMiddleware := middleware.NewOwnerMiddleware()
	exportRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Export.RateLimit, cfg.Export.RateWindow)

	r := router.NewRouter(controllers, ownerMiddleware, exportRateLimiter)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		Summary:        summaryUseCase,
		BudgetProgress: budgetProgressUseCase,
		GoalProgress:   goalProgressUseCase,
		Export:         exportUseCase,
	}
}
