package api

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/tubegrab/tubegrab/internal/api/controllers"
	"github.com/tubegrab/tubegrab/internal/app"
)

func RegisterRoutes(e *echo.Echo, app *app.Context) {

	// Middleware: Request Logger
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			app.Logger.Info("%s %s | %d | %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	// The landing page is served from a different origin in dev setups
	e.Use(middleware.CORS())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	limiter := rate.NewLimiter(rate.Limit(app.Config.RateLimit.PerSecond), app.Config.RateLimit.Burst)
	e.Use(RateLimit(limiter))

	dlCtrl := &controllers.DownloadController{App: app}
	healthCtrl := &controllers.HealthController{App: app}
	historyCtrl := &controllers.HistoryController{App: app}

	// Core download endpoint
	e.POST("/download", dlCtrl.Handle)

	// Observability and history
	e.GET("/healthz", healthCtrl.Handle)
	e.GET("/history", historyCtrl.Handle)

	// Static landing page
	e.File("/", filepath.Join(app.Config.Web.StaticDir, "index.html"))
}
