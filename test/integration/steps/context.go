// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finex/backend/config"
	"github.com/finex/backend/internal/infra/dependency"
	"github.com/finex/backend/internal/integration/persistence/model"
	"github.com/finex/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	redis       *mock.Redis
	timeMock    *mock.Time
	cfg         *config.Config
	accessToken string
	operatorIDs map[string]uuid.UUID
	lastID      string
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

var (
	serverInit sync.Once
	testServer *httptest.Server
	suiteTime  = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: suiteTime,
		db:       mock.NewDb(model.AllModels()...),
		redis:    mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Data setup steps
	ctx.Given(`^an operator "([^"]*)" named "([^"]*)" exists$`, test.anOperatorNamedExists)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the operator "([^"]*)" has the products:$`, test.theOperatorHasTheProducts)
	ctx.Given(`^the following movements exist:$`, test.theFollowingMovementsExist)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should be a workbook$`, test.theResponseBodyShouldBeAWorkbook)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.operatorIDs = make(map[string]uuid.UUID)
	t.lastID = ""
	t.timeMock.Reset()

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.Auth.PasswordHash = ""
		cfg.Auth.RateLimitEnabled = false

		injector := dependency.NewInjector(cfg, t.db.DbConn, t.redis.Client, dependency.Options{
			Clock: suiteTime,
		})

		testServer = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	t.uri = testServer.URL
	t.cfg = config.Load()
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
