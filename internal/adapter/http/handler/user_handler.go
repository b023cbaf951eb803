package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/adapter/telemetry"
	"taskapp/internal/core/domain"
	core "taskapp/internal/core/handler"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
)

type UserHandler struct {
	app     *core.App
	svc     port.UserService
	metrics *telemetry.AppMetrics
}

func NewUserHandler(app *core.App, svc port.UserService, metrics *telemetry.AppMetrics) *UserHandler {
	return &UserHandler{
		app:     app,
		svc:     svc,
		metrics: metrics,
	}
}

// CreateUser binds the JSON body into the core payload and lets the core
// handler pick the status. A core-handler error is the unhandled path
// (malformed email past the pre-check) and surfaces as a 500 here.
func (h *UserHandler) CreateUser(c *gin.Context) {
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

	resp, err := h.app.CreateUser(c.Request.Context(), request.New(payload))

	if err != nil {
		helper.SendInternalError(c, err.Error())
		return
	}

	h.metrics.CountUserOperation("create")

	c.JSON(resp.Status, resp.Body)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, err.Error())
		return
	}

	h.metrics.CountUserOperation("get")

	helper.SendSuccess(c, http.StatusOK, userResponse(user))
}

// DeactivateUser flips the active flag off. The record stays; users are
// never deleted.
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	user, err := h.svc.Deactivate(c.Request.Context(), c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, err.Error())
		return
	}

	h.metrics.CountUserOperation("deactivate")

	helper.SendSuccess(c, http.StatusOK, userResponse(user), "User deactivated successfully")
}

func userResponse(user domain.User) response.UserResponse {
	return response.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
