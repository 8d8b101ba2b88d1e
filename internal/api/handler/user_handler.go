package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/playgroundhq/playground-api/internal/api/metrics"
	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// UserHandler exposes the administrative user management endpoints plus the
// authenticated /me lookup.
type UserHandler struct {
	users ports.UserService
	audit AuditRecorder
}

func NewUserHandler(users ports.UserService, audit AuditRecorder) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// List handles GET /v1/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Me handles GET /v1/users/me — the caller's own record.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /v1/users — admin creation with an explicit role.
//
// @Summary      Create a user with a chosen role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.CreateUser(c.Request().Context(), req.Username, req.Password, req.Email, domain.Role(req.Role))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Activate handles PATCH /v1/users/:id/activate. It is the only transition
// that returns a suspended account to active.
//
// @Summary      Activate a user account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/activate [patch]
func (h *UserHandler) Activate(c echo.Context) error {
	return h.setStatus(c, domain.StatusActive, h.users.Activate)
}

// Deactivate handles PATCH /v1/users/:id/deactivate.
//
// @Summary      Deactivate a user account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c echo.Context) error {
	return h.setStatus(c, domain.StatusInactive, h.users.Deactivate)
}

// Suspend handles PATCH /v1/users/:id/suspend.
//
// @Summary      Suspend a user account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/suspend [patch]
func (h *UserHandler) Suspend(c echo.Context) error {
	return h.setStatus(c, domain.StatusSuspended, h.users.Suspend)
}

func (h *UserHandler) setStatus(c echo.Context, status domain.Status, op func(ctx context.Context, id int64) (bool, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ok, err := op(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	_, username, _ := ctxIdentity(c)
	h.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Kind:      domain.AuditStatusChange,
		Detail:    "user " + c.Param("id") + " -> " + string(status),
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ok, err := h.users.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.NoContent(http.StatusNoContent)
}
