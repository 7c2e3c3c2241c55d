package middleware

import (
	"time"

	"gridmeet/core/logger"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the cross-cutting request handlers modules register on
// their routes.
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// RequestLogger logs method, path, status and latency for every request.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
