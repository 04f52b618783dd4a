package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests once the global token bucket runs dry. One
// bucket for the whole process is enough here: extraction is the
// expensive part and it is the same cost for every caller.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"error":   "rate limit exceeded, try again later",
				})
			}
			return next(c)
		}
	}
}
