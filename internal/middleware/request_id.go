package middleware

import (
	"context"

	"landingCards/business/ranking"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID injects a trace id into the request context so engine debug logs
// can be correlated with the HTTP call. An inbound X-Request-ID is reused.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			ctx := context.WithValue(c.Request().Context(), ranking.TraceIDKey, rid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
