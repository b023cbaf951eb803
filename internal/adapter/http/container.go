package http

import (
	"github.com/rs/zerolog"

	"taskapp/internal/adapter/database/memory"
	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/telemetry"
	core "taskapp/internal/core/handler"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/config"
)

type Container struct {
	Repo *memory.Repository

	UserService port.UserService
	TaskService port.TaskService

	App *core.App

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(cfg *config.AppConfig, logger zerolog.Logger, metrics *telemetry.AppMetrics) *Container {
	repo := memory.NewRepository()

	userSvc := service.NewUserService(repo)
	taskSvc := service.NewTaskService(repo, cfg, logger)

	app := core.NewApp(userSvc, taskSvc)

	return &Container{
		Repo: repo,

		UserService: userSvc,
		TaskService: taskSvc,

		App: app,

		UserHandler: handler.NewUserHandler(app, userSvc, metrics),
		TaskHandler: handler.NewTaskHandler(app, taskSvc, metrics),
	}
}
