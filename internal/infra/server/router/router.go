// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finex/backend/internal/integration/entrypoint/controller"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
)

// Controllers holds the HTTP handlers served by the router.
type Controllers struct {
	Health   *controller.HealthController
	Auth     *controller.AuthController
	Operator *controller.OperatorController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Movement *controller.MovementController
	Export   *controller.ExportController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default logger and recovery, then locale resolution for every request
	r.engine = gin.Default()
	r.engine.Use(middleware.Locale())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	// Public: the login screen lists operators before anyone is authenticated
	v1.GET("/operators", c.Operator.List)
	v1.POST("/auth/login", r.loginRateLimiter.Middleware(), c.Auth.Login)

	authenticated := v1.Group("")
	authenticated.Use(r.authMiddleware.Authenticate())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)
		authenticated.GET("/session", c.Auth.Session)

		operators := authenticated.Group("/operators")
		{
			operators.POST("", c.Operator.Create)
			operators.DELETE("/:id", c.Operator.Delete)
		}

		categories := authenticated.Group("/categories")
		{
			categories.GET("", c.Category.List)
			categories.POST("", c.Category.Create)
			categories.DELETE("/:id", c.Category.Delete)
		}

		products := authenticated.Group("/products")
		{
			products.GET("/catalog", c.Product.Catalog)
			products.GET("/picker", c.Product.Picker)
			products.GET("/next-code", c.Product.NextCode)
			products.POST("", c.Product.Create)
			products.POST("/inline", c.Product.CreateInline)
			products.PUT("/:id", c.Product.Update)
			products.POST("/soft-delete", c.Product.SoftDelete)
			products.POST("/permanent-delete", c.Product.PermanentDelete)
			products.POST("/:id/restore", c.Product.Restore)
		}

		movements := authenticated.Group("/movements")
		{
			movements.GET("", c.Movement.List)
			movements.GET("/months", c.Movement.Months)
			movements.GET("/export", c.Export.Movements)
			movements.POST("", c.Movement.Create)
			movements.DELETE("/:id", c.Movement.Delete)
		}
	}
}
