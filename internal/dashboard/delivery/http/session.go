package http

import (
	"net/http"
	"time"

	"stock-sentiment-dashboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionCookie identifies the browser session of a request.
type SessionCookie struct {
	Name string
	TTL  time.Duration
}

// ID returns the session id carried by the request, issuing a fresh cookie when it is
// missing or not a valid UUID.
func (s SessionCookie) ID(c echo.Context) string {
	if cookie, err := c.Cookie(s.Name); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// RequestContext copies the echo request id into the request context for logging.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if id != "" {
				ctx := logger.WithRequestID(c.Request().Context(), id)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
