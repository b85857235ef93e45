package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turi333-pixel/Gigstar/session"
)

const (
	contextKeyUserID       = "userID"
	contextKeySessionToken = "sessionToken"
)

func (h handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			}
		}

		userID, err := h.sessions.Get(c.Request().Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired session",
			}
		}
		if err != nil {
			return fmt.Errorf("resolving session: %w", err)
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeySessionToken, token)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}

func userID(c echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(contextKeySessionToken).(string)
	return token
}
