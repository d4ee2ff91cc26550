// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finex/backend/config"
	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/application/usecase/auth"
	"github.com/finex/backend/internal/application/usecase/category"
	"github.com/finex/backend/internal/application/usecase/export"
	"github.com/finex/backend/internal/application/usecase/movement"
	"github.com/finex/backend/internal/application/usecase/operator"
	"github.com/finex/backend/internal/application/usecase/product"
	"github.com/finex/backend/internal/infra/cache"
	"github.com/finex/backend/internal/infra/server/router"
	"github.com/finex/backend/internal/integration/adapters"
	"github.com/finex/backend/internal/integration/entrypoint/controller"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
	"github.com/finex/backend/internal/integration/i18n"
	"github.com/finex/backend/internal/integration/persistence"
	"github.com/finex/backend/internal/integration/spreadsheet"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// Options overrides collaborators, mostly for tests.
type Options struct {
	Clock           adapter.Clock
	PasswordService adapter.PasswordService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil Redis client selects the in-memory locker, revoker and rate limiter.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	passwordService := opts.PasswordService
	if passwordService == nil {
		passwordService = adapters.NewPasswordService()
	}

	// Repositories
	operatorRepo := persistence.NewOperatorRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	movementRepo := persistence.NewMovementRepository(db)

	// Adapters
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)
	var (
		codeLocker   adapter.CodeLocker
		tokenRevoker adapter.TokenRevoker
	)
	if redisClient != nil {
		codeLocker = adapters.NewRedisCodeLocker(redisClient)
		tokenRevoker = adapters.NewRedisTokenRevoker(redisClient)
	} else {
		codeLocker = adapters.NewMemoryCodeLocker()
		tokenRevoker = adapters.NewMemoryTokenRevoker()
	}
	translator := i18n.NewTranslator()

	// Auth use cases
	loginUseCase := auth.NewLoginOperatorUseCase(operatorRepo, passwordService, tokenService, clock, auth.CredentialPolicy{
		PasswordPrefix: cfg.Auth.PasswordPrefix,
		PasswordHash:   cfg.Auth.PasswordHash,
	})
	logoutUseCase := auth.NewLogoutOperatorUseCase(tokenRevoker)
	resolveSessionUseCase := auth.NewResolveSessionUseCase(tokenService, tokenRevoker)

	// Operator and category use cases
	listOperatorsUseCase := operator.NewListOperatorsUseCase(operatorRepo)
	createOperatorUseCase := operator.NewCreateOperatorUseCase(operatorRepo)
	deleteOperatorUseCase := operator.NewDeleteOperatorUseCase(operatorRepo)

	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Product use cases
	codeGenerator := product.NewCodeGenerator(productRepo, codeLocker)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	productUseCases := controller.ProductUseCases{
		Catalog:         product.NewGetCatalogUseCase(listProductsUseCase),
		Pick:            product.NewPickProductsUseCase(productRepo),
		NextCode:        product.NewNextCodeUseCase(codeGenerator),
		Create:          product.NewCreateProductUseCase(productRepo, categoryRepo, codeGenerator),
		CreateInline:    product.NewCreateInlineProductUseCase(productRepo, codeGenerator),
		Update:          product.NewUpdateProductUseCase(productRepo, categoryRepo, codeGenerator),
		SoftDelete:      product.NewSoftDeleteProductsUseCase(productRepo),
		PermanentDelete: product.NewPermanentDeleteProductsUseCase(productRepo),
		Restore:         product.NewRestoreProductUseCase(productRepo, codeGenerator),
	}

	// Movement and export use cases
	listMovementsUseCase := movement.NewListMovementsUseCase(movementRepo)
	monthOptionsUseCase := movement.NewMonthOptionsUseCase(clock)
	createMovementUseCase := movement.NewCreateMovementUseCase(movementRepo, categoryRepo, productRepo)
	deleteMovementUseCase := movement.NewDeleteMovementUseCase(movementRepo)
	exportUseCase := export.NewExportMovementsUseCase(movementRepo, spreadsheet.NewRenderer())

	// Controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = cache.HealthCheck(redisClient)
	}
	controllers := router.Controllers{
		Health: controller.NewHealthController(func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}, cacheHealthChecker),
		Auth:     controller.NewAuthController(loginUseCase, logoutUseCase, translator),
		Operator: controller.NewOperatorController(listOperatorsUseCase, createOperatorUseCase, deleteOperatorUseCase, translator),
		Category: controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, deleteCategoryUseCase, translator),
		Product:  controller.NewProductController(productUseCases, translator),
		Movement: controller.NewMovementController(
			listMovementsUseCase,
			monthOptionsUseCase,
			createMovementUseCase,
			deleteMovementUseCase,
			translator,
		),
		Export: controller.NewExportController(exportUseCase, translator),
	}

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Enabled:        cfg.Auth.RateLimitEnabled,
		MaxAttempts:    cfg.Auth.LoginMaxAttempts,
		WindowDuration: cfg.Auth.LoginWindow,
	}, redisClient, translator)
	authMiddleware := middleware.NewAuthMiddleware(resolveSessionUseCase, translator)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: router.NewRouter(controllers, loginRateLimiter, authMiddleware),
	}
}
