package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	settingshttp "github.com/tair/ims-admin/internal/settings/delivery/http"
	"github.com/tair/ims-admin/internal/settings/domain"
	"github.com/tair/ims-admin/internal/settings/usecase/command"
	"github.com/tair/ims-admin/internal/settings/usecase/query"
	"github.com/tair/ims-admin/kafka"
)

type memRepo struct {
	row *domain.Settings
}

func (m *memRepo) First(context.Context) (*domain.Settings, error) { return m.row, nil }

func (m *memRepo) Save(_ context.Context, s *domain.Settings) error {
	if s.ID == 0 {
		s.ID = 1
	}
	m.row = s
	return nil
}

func newTestRouter(repo domain.SettingsRepository, uploadDir string) *mux.Router {
	h := settingshttp.NewSettingsHandler(
		query.NewGetSettingsHandler(repo),
		command.NewUpdateSettingsHandler(repo, kafka.NoopPublisher{}),
		command.NewStoreLogoHandler(uploadDir),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func TestGetSettings_NullWhenMissing(t *testing.T) {
	router := newTestRouter(&memRepo{}, t.TempDir())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("body = %s, want null", body)
	}
}

func TestPutThenGetSettings(t *testing.T) {
	router := newTestRouter(&memRepo{}, t.TempDir())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"company_name":"Acme Retail","timezone":"Europe/Berlin"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	var got domain.Settings
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CompanyName != "Acme Retail" || got.Timezone != "Europe/Berlin" || got.Currency != "USD" {
		t.Errorf("settings = %+v", got)
	}
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/settings/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadLogo(t *testing.T) {
	dir := t.TempDir()
	router := newTestRouter(&memRepo{}, dir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "acme.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp map[string]string
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["originalname"] != "acme.png" || resp["filename"] == "" {
		t.Fatalf("response = %v", resp)
	}
	if filepath.Ext(resp["filename"]) != ".png" {
		t.Errorf("filename = %q, want .png extension", resp["filename"])
	}
	if _, err := os.Stat(filepath.Join(dir, resp["filename"])); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestUploadLogo_RejectsHTML(t *testing.T) {
	dir := t.TempDir()
	router := newTestRouter(&memRepo{}, dir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "logo.png", "<html><script>alert(document.cookie)</script></html>"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Failed to upload logo" {
		t.Errorf("error = %q", resp["error"])
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("%d files stored, want none", len(entries))
	}
}

func TestUploadLogo_MissingFile(t *testing.T) {
	router := newTestRouter(&memRepo{}, t.TempDir())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("note", "no file here")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/settings/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/settings/logo", strings.NewReader("plain")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-multipart status = %d, want 400", rec.Code)
	}
}
