package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing or zero
// user_id proves the middleware did not run (or the token had no subject),
// so the request is rejected before touching the service layer.
func ctxIdentity(c echo.Context) (userID int64, username string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get("username").(string)
	return userID, username, nil
}
