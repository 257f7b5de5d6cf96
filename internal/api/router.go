package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userdept/admin-system/docs"
	"github.com/userdept/admin-system/internal/api/handler"
	"github.com/userdept/admin-system/internal/api/middleware"
	"github.com/userdept/admin-system/internal/core/ports"
	"github.com/userdept/admin-system/internal/core/service"
	mongorepo "github.com/userdept/admin-system/internal/infrastructure/db/mongo"
	"github.com/userdept/admin-system/pkg/logger"
)

// RouterConfig carries the settings and shared collaborators the router
// needs beyond the datastore handles.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Blacklist ports.TokenBlacklist
	AuditSink ports.AuditSink
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin"))

	// --- Dependencies ---
	log := logger.Get()

	userRepo := mongorepo.NewUserRepository(db)
	deptRepo := mongorepo.NewDepartmentRepository(db)

	authService := service.NewAuthService(userRepo, cfg.Blacklist, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, cfg.AuditSink, log)
	deptService := service.NewDepartmentService(deptRepo, userRepo, cfg.AuditSink, log)
	dashService := service.NewDashboardService(userRepo, deptRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	deptHandler := handler.NewDepartmentHandler(deptService)
	dashHandler := handler.NewDashboardHandler(dashService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, cfg.Blacklist)

	// --- Auth routes ---
	e.POST("/api/v1/auth/login", authHandler.Login)
	e.POST("/api/v1/auth/logout", authHandler.Logout, authMiddleware)

	// --- Protected API ---
	v1 := e.Group("/api/v1", authMiddleware)

	v1.GET("/departments", deptHandler.List)
	v1.GET("/departments/tree", deptHandler.Tree)
	v1.GET("/departments/:id", deptHandler.Get)
	v1.POST("/departments", deptHandler.Create)
	v1.PUT("/departments/:id", deptHandler.Update)
	v1.DELETE("/departments/:id", deptHandler.Delete)
	v1.GET("/departments/:id/users", deptHandler.Users)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.POST("/users", userHandler.Create)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)
	v1.PATCH("/users/:id/status", userHandler.SetStatus)
	v1.PATCH("/users/:id/reset-password", userHandler.ResetPassword)

	v1.GET("/dashboard/stats", dashHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
