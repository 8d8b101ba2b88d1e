package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/playgroundhq/playground-api/internal/api/metrics"
	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// LoginLimiter throttles repeated failed logins (Redis-backed in production).
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuditRecorder is the interface the handlers use to enqueue audit events.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}

type AuthHandler struct {
	users   ports.UserService
	tokens  ports.TokenIssuer
	limiter LoginLimiter
	audit   AuditRecorder
}

func NewAuthHandler(users ports.UserService, tokens ports.TokenIssuer, limiter LoginLimiter, audit AuditRecorder) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, limiter: limiter, audit: audit}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// Register creates a new user account. Public registration always yields the
// regular user role; admin accounts are created through the user admin API.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.CreateUser(c.Request().Context(), req.Username, req.Password, req.Email, domain.RoleUser)
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	allowed, err := h.limiter.Allow(ctx, req.Username)
	if err == nil && !allowed {
		metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many failed attempts")
	}
	// A limiter outage must not lock everyone out; fall through and let
	// credentials decide.

	user, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			_ = h.limiter.RecordFailure(ctx, req.Username)
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			h.audit.Enqueue(domain.AuditEvent{
				Username:  req.Username,
				Kind:      domain.AuditLoginFailure,
				RemoteIP:  c.RealIP(),
				Timestamp: time.Now().UTC(),
			})
		}
		return err
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}

	_ = h.limiter.Reset(ctx, req.Username)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(domain.AuditEvent{
		Username:  user.Username,
		Kind:      domain.AuditLoginSuccess,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// ChangePassword replaces the caller's password after verifying the current
// one. A missing account and a wrong current password are deliberately
// indistinguishable: both yield 400.
//
// @Summary      Change the caller's password
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ok, err := h.users.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "new password must be at least 8 characters with letters and digits")
		}
		return err
	}
	if !ok {
		metrics.PasswordChangesTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "password change rejected")
	}

	metrics.PasswordChangesTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Kind:      domain.AuditPasswordChange,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
	return c.NoContent(http.StatusNoContent)
}
