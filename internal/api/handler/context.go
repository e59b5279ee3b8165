package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxCaller extracts the authenticated caller injected by the Auth
// middleware. user_id must be present (presence proves the middleware
// ran); a token without it is structurally valid but unusable, so the
// request is rejected rather than passed on with an empty caller.
func ctxCaller(c echo.Context) (callerID, role string, err error) {
	callerID, _ = c.Get("user_id").(string)
	if callerID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return callerID, role, nil
}
