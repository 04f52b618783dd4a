package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v5"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
)

type DownloadController struct {
	App *app.Context
}

// Handle runs one download request end to end and streams the resolved
// file back as an attachment. The scratch directory holding the file is
// removed once the stream finishes, or on any earlier failure.
func (ctrl *DownloadController) Handle(c *echo.Context) error {
	var req DownloadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	file, err := ctrl.App.Fetcher.Fetch(c.Request().Context(), req.URL, req.Format)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsClientError(err) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, ErrorResponse{Error: err.Error()})
	}

	defer func() {
		if err := file.Cleanup(); err != nil {
			ctrl.App.Logger.Warn("scratch cleanup failed for %s: %v", file.Token, err)
		}
	}()

	f, err := os.Open(file.Path)
	if err != nil {
		ctrl.App.Logger.Error("resolved file vanished before streaming: %s: %v", file.Path, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: domain.ErrFileNotFound.Error()})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Stream(http.StatusOK, file.MIME, f)
}
