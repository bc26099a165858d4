package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/api/handler"
	"github.com/lokeshec23/Track-Me/internal/api/middleware"
	"github.com/lokeshec23/Track-Me/internal/core/service"
	mongodb "github.com/lokeshec23/Track-Me/internal/infrastructure/db/mongo"
	redisdb "github.com/lokeshec23/Track-Me/internal/infrastructure/db/redis"
	"github.com/lokeshec23/Track-Me/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("trackme"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, logger)
	authHandler := handler.NewAuthHandler(authService)
	auth := middleware.Auth(tokenService, userRepo)

	transactionService := service.NewTransactionService(
		mongodb.NewTransactionRepository(db), redisdb.NewSyncGuard(rdb), logger)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	budgetHandler := handler.NewBudgetHandler(service.NewBudgetService(mongodb.NewBudgetRepository(db), logger))
	goalHandler := handler.NewGoalHandler(service.NewGoalService(mongodb.NewGoalRepository(db), logger))
	recurringHandler := handler.NewRecurringHandler(service.NewRecurringService(mongodb.NewRecurringRepository(db), logger))
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(mongodb.NewCategoryRepository(db), logger))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)
	e.PUT("/auth/onboarding", authHandler.CompleteOnboarding, auth)
	e.PUT("/auth/theme", authHandler.UpdateTheme, auth)

	// --- Owned resources ---
	tx := e.Group("/transactions", auth)
	tx.GET("/", transactionHandler.List)
	tx.POST("/", transactionHandler.Create)
	tx.POST("/sync", transactionHandler.Sync)
	tx.PUT("/:id", transactionHandler.Update)
	tx.DELETE("/:id", transactionHandler.Delete)

	budgets := e.Group("/budgets", auth)
	budgets.GET("/", budgetHandler.List)
	budgets.POST("/", budgetHandler.Create)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	goals := e.Group("/goals", auth)
	goals.GET("/", goalHandler.List)
	goals.POST("/", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	recurring := e.Group("/recurring", auth)
	recurring.GET("/", recurringHandler.List)
	recurring.POST("/", recurringHandler.Create)
	recurring.PUT("/:id", recurringHandler.Update)
	recurring.DELETE("/:id", recurringHandler.Delete)

	categories := e.Group("/categories", auth)
	categories.GET("/", categoryHandler.List)
	categories.POST("/", categoryHandler.Create)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Track Me API"})
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
