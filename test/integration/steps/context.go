// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

// testContext holds the state of one scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	cfg      *config.Config
	db       *mock.Db
	redis    *miniredis.Miniredis
	redisCli *redis.Client
	timeMock *mock.Time

	headers  map[string]string
	response *response

	// Named fixtures, resolved by {{kind:name}} placeholders.
	owners     map[string]uuid.UUID
	accounts   map[string]uuid.UUID
	categories map[string]uuid.UUID
	goals      map[string]uuid.UUID
	owner      uuid.UUID
	lastID     uuid.UUID
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	redisServer, redisClient := mock.NewRedis()
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		redis:    redisServer,
		redisCli: redisClient,
		timeMock: mock.NewTime(),
		db: mock.NewDb(map[string]any{
			"accounts":     &model.AccountModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
			"goals":        &model.GoalModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Setup steps
	ctx.Step(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)
	ctx.Step(`^the export limit is (\d+) requests per minute$`, test.theExportLimitIs)
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^I am the owner "([^"]*)"$`, test.iAmTheOwner)
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Fixture steps
	ctx.Step(`^the owner has an account "([^"]*)" of type "([^"]*)" with balance "([^"]*)"$`, test.theOwnerHasAnAccount)
	ctx.Step(`^the owner has an inactive account "([^"]*)" with balance "([^"]*)"$`, test.theOwnerHasAnInactiveAccount)
	ctx.Step(`^the owner has a category "([^"]*)" of type "([^"]*)"$`, test.theOwnerHasACategory)
	ctx.Step(`^the owner has the transactions:$`, test.theOwnerHasTheTransactions)
	ctx.Step(`^the owner has a budget of "([^"]*)" for "([^"]*)" in (\d+)/(\d+)$`, test.theOwnerHasABudget)
	ctx.Step(`^the owner has a goal "([^"]*)" of "([^"]*)" with "([^"]*)" saved$`, test.theOwnerHasAGoal)
	ctx.Step(`^the category "([^"]*)" is deleted$`, test.theCategoryIsDeleted)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^the report cache expires$`, test.theReportCacheExpires)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal amount "([^"]*)"$`, test.theResponseFieldShouldEqualAmount)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should be "(.*)"$`, test.theResponseHeaderShouldBe)
	ctx.Step(`^the response body should be:$`, test.theResponseBodyShouldBe)

	// Storage assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Step(`^the report cache should hold (\d+) entries for the owner$`, test.theReportCacheShouldHoldEntries)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.owners = make(map[string]uuid.UUID)
	t.accounts = make(map[string]uuid.UUID)
	t.categories = make(map[string]uuid.UUID)
	t.goals = make(map[string]uuid.UUID)
	t.owner = uuid.Nil
	t.lastID = uuid.Nil
	t.timeMock.SetCurrentTime(time.Now())

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Report.Locale = "pt-BR"
	cfg.Report.DefaultMonths = 6
	cfg.Export.RateLimit = 100
	cfg.Export.RateWindow = time.Minute
	cfg.Redis.TTL = 10 * time.Minute
	t.cfg = cfg

	if err := mock.ClearRedis(t.redisCli); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return t.db.ClearDB()
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
}

// theAPIServerIsRunning wires the application against the shared sqlite
// database and miniredis, using the scenario clock.
func (t *testContext) theAPIServerIsRunning() error {
	if t.server != nil {
		return nil
	}

	injector := dependency.NewInjector(t.cfg, t.db.DbConn, dependency.Options{
		Cache: cache.NewRedisCache(t.redisCli, t.cfg.Redis.TTL),
		CacheHealth: func() bool {
			return t.redisCli.Ping(context.Background()).Err() == nil
		},
		Now: t.timeMock.Now,
	})
	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}
