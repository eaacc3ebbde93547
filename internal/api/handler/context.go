package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authClaims is the identity extracted from the request context by the Auth
// middleware.
type authClaims struct {
	UserID string
	Email  string
	Role   string
}

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing user id means
// the middleware did not run or the token carried no subject — reject with 401
// rather than attributing writes to an empty creator.
func ctxClaims(c echo.Context) (authClaims, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)
	return authClaims{UserID: userID, Email: email, Role: role}, nil
}
