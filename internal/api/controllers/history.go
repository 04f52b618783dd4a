package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
)

type HistoryController struct {
	App *app.Context
}

func (ctrl *HistoryController) Handle(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := ctrl.App.History.RecentDownloads(c.Request().Context(), limit)
	if err != nil {
		ctrl.App.Logger.Error("history query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load history"})
	}

	if records == nil {
		records = []*domain.DownloadRecord{}
	}

	return c.JSON(http.StatusOK, HistoryResponse{Downloads: records})
}
