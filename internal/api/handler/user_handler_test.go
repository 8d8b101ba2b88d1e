package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	users := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected a json array, got %q: %v", rec.Body.String(), err)
	}
	if len(resp) != 0 {
		t.Fatalf("expected empty list, got %+v", resp)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	users := &stubUserService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	users := &stubUserService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if code := httpCode(t, h.Get(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Me(t *testing.T) {
	users := &stubUserService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 7 {
				t.Fatalf("expected lookup for caller id 7, got %d", id)
			}
			return &domain.User{ID: 7, Username: "alice", Role: domain.RoleUser, Status: domain.StatusActive}, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/users/me", "")
	c.Set("user_id", int64(7))
	c.Set("username", "alice")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Create_ExplicitRole(t *testing.T) {
	users := &stubUserService{
		createUserFn: func(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error) {
			if role != domain.RoleAdmin {
				t.Fatalf("expected admin role, got %s", role)
			}
			return &domain.User{ID: 2, Username: username, Email: email, Role: role, Status: domain.StatusActive}, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/users",
		`{"username":"root1","email":"root@example.com","password":"hunter2024","role":"admin"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_BadRole(t *testing.T) {
	users := &stubUserService{
		createUserFn: func(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/users",
		`{"username":"root1","email":"root@example.com","password":"hunter2024","role":"superuser"}`)

	if code := httpCode(t, h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestUserHandler_Deactivate_Success(t *testing.T) {
	users := &stubUserService{
		deactivateFn: func(ctx context.Context, userID int64) (bool, error) {
			if userID != 5 {
				t.Fatalf("expected id 5, got %d", userID)
			}
			return true, nil
		},
	}
	audit := &stubRecorder{}
	h := NewUserHandler(users, audit)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/5/deactivate", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set("user_id", int64(1))
	c.Set("username", "root")

	if err := h.Deactivate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.AuditStatusChange {
		t.Fatalf("expected status_change audit event, got %+v", audit.events)
	}
}

func TestUserHandler_Activate_NotFound(t *testing.T) {
	users := &stubUserService{
		activateFn: func(ctx context.Context, userID int64) (bool, error) {
			return false, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPatch, "/v1/users/99/activate", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if code := httpCode(t, h.Activate(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUserHandler_Suspend_Success(t *testing.T) {
	users := &stubUserService{
		suspendFn: func(ctx context.Context, userID int64) (bool, error) {
			return true, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/5/suspend", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set("user_id", int64(1))
	c.Set("username", "root")

	if err := h.Suspend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := map[int64]bool{}
	users := &stubUserService{
		deleteUserFn: func(ctx context.Context, id int64) (bool, error) {
			if deleted[id] {
				return false, nil
			}
			deleted[id] = true
			return true, nil
		},
	}
	h := NewUserHandler(users, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodDelete, "/v1/users/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodDelete, "/v1/users/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if code := httpCode(t, h.Delete(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", code)
	}
}
