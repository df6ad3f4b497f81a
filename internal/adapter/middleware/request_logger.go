package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorContextKey carries the failure behind a non-2xx response from the
// handler to the request logger.
const ErrorContextKey = "handler_error"

// RequestObserver receives one sample per served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestLogger writes one structured line per request and echoes the
// X-Request-Id header, generating a uuid when the client sent none.
// obs may be nil.
func RequestLogger(log logrus.FieldLogger, obs RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			if err := next(c); err != nil {
				c.Error(err)
				c.Set(ErrorContextKey, err)
			}

			elapsed := time.Since(start)
			status := c.Response().Status
			route := c.Path()
			if obs != nil {
				obs.ObserveRequest(req.Method, route, status, elapsed)
			}

			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     req.Method,
				"route":      route,
				"uri":        req.RequestURI,
				"status":     status,
				"latency_ms": elapsed.Milliseconds(),
				"remote_ip":  c.RealIP(),
			})
			if err, ok := c.Get(ErrorContextKey).(error); ok && err != nil {
				entry = entry.WithError(err)
			}
			switch {
			case status >= 500:
				entry.Error("request failed")
			case status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request served")
			}
			return nil
		}
	}
}
