package middleware

import (
	"net/http"

	"landingCards/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler for anything a handler did
// not translate itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	logger.Error("http_error",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", code,
		"error", err,
	)

	_ = c.JSON(code, map[string]string{"message": msg})
}
