package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/todo-api/internal/api/handler"
	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// RouterConfig carries everything the HTTP layer needs. Services are built
// by the caller (cmd/api) so the router stays free of storage wiring.
type RouterConfig struct {
	Auth        ports.AuthService
	Tasks       ports.TaskService
	Activity    ports.ActivityService
	Tokens      middleware.TokenVerifier
	Mongo       *mongo.Database
	Redis       *redis.Client
	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	authHandler := handler.NewAuthHandler(cfg.Auth)
	taskHandler := handler.NewTaskHandler(cfg.Tasks)
	activityHandler := handler.NewActivityHandler(cfg.Activity)
	authMiddleware := middleware.Auth(cfg.Tokens)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Task routes (all protected) ---
	tasks := e.Group("/api/tasks", authMiddleware)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.PATCH("/:id/complete", taskHandler.ToggleComplete)

	// --- Activity feed ---
	e.GET("/api/activity", activityHandler.List, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
