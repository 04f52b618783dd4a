package controllers

import "github.com/tubegrab/tubegrab/internal/domain"

type DownloadRequest struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Active    int64  `json:"active_downloads"`
	Completed int64  `json:"completed_downloads"`
	Failed    int64  `json:"failed_downloads"`
	Uptime    string `json:"uptime"`
}

type HistoryResponse struct {
	Downloads []*domain.DownloadRecord `json:"downloads"`
}
