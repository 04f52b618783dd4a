package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/tubegrab/tubegrab/internal/app"
)

type HealthController struct {
	App *app.Context
}

func (ctrl *HealthController) Handle(c *echo.Context) error {
	snap := ctrl.App.Stats.Snapshot()

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Active:    snap.Active,
		Completed: snap.Completed,
		Failed:    snap.Failed,
		Uptime:    snap.Uptime.Round(time.Second).String(),
	})
}
