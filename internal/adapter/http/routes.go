package http

import (
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, accessLogger *otelzap.Logger, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("taskapp"))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.HTTPSEnforcerMiddleware(cfg))

	if accessLogger != nil {
		router.Use(middleware.LoggingMiddleware(accessLogger))
	}

	if metrics != nil {
		router.Use(metrics.GinMiddleware())
	}

	// Identity resolution never aborts; unauthenticated requests reach the
	// handlers so each one answers with its own status.
	router.Use(middleware.IdentityMiddleware())

	rateLimiter := middleware.NewRateLimiter(cfg)
	router.Use(rateLimiter.Middleware())

	setupUserRoutes(router, handlers.UserHandler)
	setupTaskRoutes(router, handlers.TaskHandler)

	return router
}

// SetupRouterForTests wires the handlers with no telemetry or access log.
func SetupRouterForTests(handlers HandlersConfig, cfg *config.AppConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.IdentityMiddleware())

	setupUserRoutes(router, handlers.UserHandler)
	setupTaskRoutes(router, handlers.TaskHandler)

	return router
}

func setupUserRoutes(router *gin.Engine, userHandler *handler.UserHandler) {
	if userHandler == nil {
		return
	}

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.DELETE("/:id", userHandler.DeactivateUser)
	}
}

func setupTaskRoutes(router *gin.Engine, taskHandler *handler.TaskHandler) {
	if taskHandler == nil {
		return
	}

	tasks := router.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListMyTasks)
		tasks.PUT("/:id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
