package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

type stubFetcher struct {
	file *domain.FetchedFile
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, rawURL, rawFormat string) (*domain.FetchedFile, error) {
	return s.file, s.err
}

func newTestApp(t *testing.T, fetcher app.Fetcher) *app.Context {
	t.Helper()

	log, err := logger.New(filepath.Join(t.TempDir(), "test.log"), logger.LevelError, false)
	if err != nil {
		t.Fatal(err)
	}

	appCtx := app.NewContext(&config.Config{}, log)
	appCtx.Fetcher = fetcher
	return appCtx
}

func doDownload(t *testing.T, appCtx *app.Context, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	ctrl := &DownloadController{App: appCtx}
	e.POST("/download", ctrl.Handle)

	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
	}
	return resp
}

func TestHandleValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "missing url", err: domain.ErrMissingURL},
		{name: "invalid format", err: domain.ErrInvalidFormat},
		{name: "invalid url", err: domain.ErrInvalidURL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCtx := newTestApp(t, &stubFetcher{err: tc.err})
			rec := doDownload(t, appCtx, `{"url":"x","format":"video"}`)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", rec.Code)
			}
			resp := decodeError(t, rec)
			if resp.Success {
				t.Fatal("success must be false")
			}
			if resp.Error == "" {
				t.Fatal("error message missing")
			}
		})
	}
}

func TestHandlePipelineFailuresAre500(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "extraction failed", err: fmt.Errorf("%w: this video is private", domain.ErrExtractionFailed)},
		{name: "file not found", err: domain.ErrFileNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCtx := newTestApp(t, &stubFetcher{err: tc.err})
			rec := doDownload(t, appCtx, `{"url":"https://youtu.be/abc","format":"video"}`)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("got status %d, want 500", rec.Code)
			}
			if resp := decodeError(t, rec); resp.Success || resp.Error == "" {
				t.Fatalf("bad error body: %+v", resp)
			}
		})
	}
}

func TestHandleInvalidJSONBody(t *testing.T) {
	appCtx := newTestApp(t, &stubFetcher{err: domain.ErrMissingURL})
	rec := doDownload(t, appCtx, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestHandleStreamsFileAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tok_My Video.mp4")
	if err := os.WriteFile(path, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	cleaned := false
	fetcher := &stubFetcher{file: &domain.FetchedFile{
		Token: "tok",
		Path:  path,
		Name:  "My Video.mp4",
		MIME:  "video/mp4",
		Size:  int64(len("payload")),
		Cleanup: func() error {
			cleaned = true
			return os.RemoveAll(dir)
		},
	}}

	appCtx := newTestApp(t, fetcher)
	rec := doDownload(t, appCtx, `{"url":"https://youtu.be/abc","format":"video"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "payload" {
		t.Fatalf("body = %q, want file contents", got)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "video/mp4") {
		t.Fatalf("content type = %q", ct)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "My Video.mp4") {
		t.Fatalf("content disposition = %q", cd)
	}

	if !cleaned {
		t.Fatal("scratch cleanup was not invoked after streaming")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("scratch dir still present: %v", err)
	}
}
