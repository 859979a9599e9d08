package order

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gunturaf/sukab-restaurant/internal/logger"
)

const requestIDKey = "request_id"

// RequestLogger assigns a request ID to every request and logs its
// start and completion with method, path, status, and duration.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := logger.GenerateRequestID()
			c.Set(requestIDKey, requestID)

			req := c.Request()
			log.Debug("request_started",
				fmt.Sprintf("%s %s", req.Method, req.URL.Path),
				requestID,
				map[string]interface{}{
					"method":      req.Method,
					"path":        req.URL.Path,
					"remote_addr": c.RealIP(),
					"user_agent":  req.UserAgent(),
				})

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			log.Debug("request_completed",
				fmt.Sprintf("%s %s - %d", req.Method, req.URL.Path, status),
				requestID,
				map[string]interface{}{
					"method":      req.Method,
					"path":        req.URL.Path,
					"status_code": status,
					"duration_ms": time.Since(start).Milliseconds(),
				})

			return err
		}
	}
}
