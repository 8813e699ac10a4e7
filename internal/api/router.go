package api

import (
	"database/sql"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/linity/todo-api/internal/api/handler"
	"github.com/linity/todo-api/internal/api/middleware"
	"github.com/linity/todo-api/internal/core/service"
	"github.com/linity/todo-api/internal/infrastructure/config"
	"github.com/linity/todo-api/internal/infrastructure/db/postgres"
)

const tokenTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	todoRepo := postgres.NewTodoRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, tokenTTL)
	authService := service.NewAuthService(authRepo, tokenService, log)
	todoService := service.NewTodoService(todoRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	requireAuth := middleware.Auth(tokenService, log)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	todos := e.Group("/todos", requireAuth)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.GET("/:id", todoHandler.Get)
	todos.PUT("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
