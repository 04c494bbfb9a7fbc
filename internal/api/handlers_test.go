package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/monitoring"
	"contactscraper/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	logger := zap.NewNop()
	return NewServer(cfg, storage.NewStore(logger),
		monitoring.NewMetrics(prometheus.NewRegistry()), logger)
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestScrapeRequestValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/scrape", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodPost, "/api/scrape", `{"state":"Karnataka","city":"Bangalore"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunStatusUnknownID(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/api/runs/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFiles(t *testing.T) {
	s := newTestServer(t)

	// Only .csv files are listed.
	require.NoError(t, os.WriteFile(
		filepath.Join(s.cfg.OutputDir, "a_contacts.csv"), []byte("name\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(s.cfg.OutputDir, "notes.txt"), []byte("x"), 0o644))

	rec := doRequest(s, http.MethodGet, "/api/files", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var files []fileInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	require.Len(t, files, 1)
	require.Equal(t, "a_contacts.csv", files[0].Name)
}

func TestListFilesMissingDirIsEmpty(t *testing.T) {
	s := newTestServer(t)
	s.cfg.OutputDir = filepath.Join(s.cfg.OutputDir, "does-not-exist")

	rec := doRequest(s, http.MethodGet, "/api/files", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestRepairEndpoint(t *testing.T) {
	s := newTestServer(t)
	csv := "name,email,phone\nAsha Rao,a@b.in,9.19876543e+11\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(s.cfg.OutputDir, "broken.csv"), []byte(csv), 0o644))

	rec := doRequest(s, http.MethodPost, "/api/repair", `{"file":"broken.csv"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"repaired":1}`, rec.Body.String())

	fixed, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, "broken.csv"))
	require.NoError(t, err)
	require.Contains(t, string(fixed), "+919876543000")
}

func TestRepairRejectsPathTraversal(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodPost, "/api/repair", `{"file":"../../etc/passwd"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
