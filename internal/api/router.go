package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lepdv/todolist-rest/docs"
	"github.com/lepdv/todolist-rest/internal/api/handler"
	"github.com/lepdv/todolist-rest/internal/api/middleware"
	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
	"github.com/lepdv/todolist-rest/internal/core/service"
	"github.com/lepdv/todolist-rest/internal/core/token"
	mongodb "github.com/lepdv/todolist-rest/internal/infrastructure/db/mongo"
	redisdb "github.com/lepdv/todolist-rest/internal/infrastructure/db/redis"
	"github.com/lepdv/todolist-rest/internal/pkg/config"
	"github.com/lepdv/todolist-rest/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the login throttle is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todolist"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Lifetime())

	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	var throttle ports.LoginThrottle = ports.NopLoginThrottle{}
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window())
	}

	authService := service.NewAuthService(userRepo, codec, throttle, audit, log)
	userService := service.NewUserService(userRepo, taskRepo, audit, log)
	taskService := service.NewTaskService(taskRepo, userRepo, audit, log)
	adminService := service.NewAdminService(userRepo, taskRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API v2 ---
	v2 := e.Group("/api/v2", middleware.Auth(codec))

	auth := v2.Group("/authenticate")
	auth.POST("/login", authHandler.Login)
	auth.POST("/registration", authHandler.Registration)

	user := v2.Group("/user", middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	user.GET("", userHandler.Get)
	user.PUT("", userHandler.Update)
	user.PUT("/edit-password", userHandler.EditPassword)
	user.DELETE("/delete-account", userHandler.DeleteAccount)

	tasks := v2.Group("/tasks", middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	tasks.POST("", taskHandler.Create)
	tasks.GET("/todo-list", taskHandler.TodoList)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.PUT("/:id/mark-as-completed", taskHandler.MarkAsCompleted)
	tasks.DELETE("/:id", taskHandler.Delete)

	admin := v2.Group("/admin", middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id/lock", adminHandler.LockUser)
	admin.PUT("/users/:id/unlock", adminHandler.UnlockUser)
	admin.DELETE("/users/:id/delete", adminHandler.DeleteUser)
	admin.GET("/tasks", adminHandler.ListTasks)
	admin.GET("/tasks/:id", adminHandler.GetTask)

	return e
}
