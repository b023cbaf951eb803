package handler

import (
	"context"
	"net/http"
	"strings"

	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
)

// App groups the request handlers. Each one is a pure translation step
// from a request envelope to a status code plus payload; no transport
// lives here.
//
// The handlers use slightly different conventions about errors and status
// codes. Missing input they pre-check themselves comes back as a clean
// 4xx; anything a service rejects after that propagates as the returned
// error instead.
type App struct {
	users port.UserService
	tasks port.TaskService
}

func NewApp(users port.UserService, tasks port.TaskService) *App {
	return &App{
		users: users,
		tasks: tasks,
	}
}

// CreateUser registers a user keyed by its email. A missing email is a
// handled 400; a malformed one fails inside the service and is returned
// unhandled.
func (a *App) CreateUser(ctx context.Context, req request.Request) (response.Response, error) {
	email := req.StringField("email")

	if email == "" {
		return response.New(http.StatusBadRequest, map[string]any{
			"error": "email is required",
		}), nil
	}

	user, err := a.users.Create(ctx, email, email)

	if err != nil {
		return response.Response{}, err
	}

	return response.New(http.StatusCreated, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	}), nil
}

// CreateTask creates a task for the current caller. The caller's existence
// is never verified. The task id is "<caller>:<title>", so a repeated
// title from the same caller overwrites the earlier task.
func (a *App) CreateTask(ctx context.Context, req request.Request) (response.Response, error) {
	if req.CallerID == "" {
		// TODO: decide whether this should be 401 or 403.
		return response.New(http.StatusBadRequest, map[string]any{
			"error": "user_id missing",
		}), nil
	}

	title := strings.TrimSpace(req.StringField("title"))

	if title == "" {
		return response.New(http.StatusUnprocessableEntity, map[string]any{
			"error": "title is required",
		}), nil
	}

	task, err := a.tasks.Create(ctx, req.CallerID+":"+title, req.CallerID, title, req.StringField("description"))

	if err != nil {
		return response.Response{}, err
	}

	return response.New(http.StatusCreated, map[string]any{
		"id":          task.ID,
		"owner_id":    task.OwnerID,
		"title":       task.Title,
		"description": task.Description,
	}), nil
}

// ListMyTasks lists the caller's tasks. Page and page_size are accepted
// but only the size is respected downstream; whatever page is asked for,
// the first one comes back.
func (a *App) ListMyTasks(ctx context.Context, req request.Request) (response.Response, error) {
	if req.CallerID == "" {
		return response.New(http.StatusUnauthorized, map[string]any{
			"error": "authentication required",
		}), nil
	}

	page := req.IntField("page", 1)
	pageSize := req.OptionalIntField("page_size")

	tasks := a.tasks.ListForOwner(ctx, req.CallerID, page, pageSize)

	items := make([]map[string]any, 0, len(tasks))

	for _, t := range tasks {
		items = append(items, map[string]any{
			"id":           t.ID,
			"title":        t.Title,
			"is_completed": t.IsCompleted,
		})
	}

	return response.New(http.StatusOK, map[string]any{
		"items": items,
	}), nil
}
