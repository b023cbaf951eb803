package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/adapter/telemetry"
	"taskapp/internal/core/domain"
	core "taskapp/internal/core/handler"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/pkg/tracing"
)

type TaskHandler struct {
	app     *core.App
	svc     port.TaskService
	metrics *telemetry.AppMetrics
}

func NewTaskHandler(app *core.App, svc port.TaskService, metrics *telemetry.AppMetrics) *TaskHandler {
	return &TaskHandler{
		app:     app,
		svc:     svc,
		metrics: metrics,
	}
}

// CreateTask feeds the JSON body plus the resolved caller identity into
// the core handler. An unauthenticated request still goes through; the
// core handler answers 400 for it.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.task.CreateTask", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	payload := map[string]any{}

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			if validationErrors := validation.FormatValidationErrors(err); len(validationErrors) > 0 {
				helper.SendValidationError(c, validationErrors)
				return
			}

			helper.SendBadRequestError(c, "request", "invalid request body")
			return
		}
	}

	resp, err := h.app.CreateTask(ctx, request.NewAuthenticated(payload, middleware.CallerID(c)))

	if err != nil {
		tracing.AddSpanError(span, err)
		helper.SendInternalError(c, err.Error())
		return
	}

	h.metrics.CountTaskOperation("create")

	c.JSON(resp.Status, resp.Body)
}

// ListMyTasks accepts page and page_size from the query string or the
// body; query wins when both are present.
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.task.ListMyTasks", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	payload := map[string]any{}

	if page, ok := queryInt(c, "page"); ok {
		payload["page"] = page
	}

	if pageSize, ok := queryInt(c, "page_size"); ok {
		payload["page_size"] = pageSize
	}

	resp, err := h.app.ListMyTasks(ctx, request.NewAuthenticated(payload, middleware.CallerID(c)))

	if err != nil {
		tracing.AddSpanError(span, err)
		helper.SendInternalError(c, err.Error())
		return
	}

	h.metrics.CountTaskOperation("list")

	span.SetAttributes(attribute.Int("http.status_code", resp.Status))

	c.JSON(resp.Status, resp.Body)
}

// CompleteTask is idempotent: completing twice answers 200 both times.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.svc.Complete(c.Request.Context(), c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, err.Error())
		return
	}

	h.metrics.CountTaskOperation("complete")

	helper.SendSuccess(c, http.StatusOK, taskResponse(task))
}

// DeleteTask always answers 200; a missing id is a no-op downstream.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	h.svc.Delete(c.Request.Context(), c.Param("id"))

	h.metrics.CountTaskOperation("delete")

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)

	if raw == "" {
		return 0, false
	}

	value, err := strconv.Atoi(raw)

	if err != nil {
		return 0, false
	}

	return value, true
}

func taskResponse(task domain.Task) response.TaskResponse {
	return response.TaskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}
