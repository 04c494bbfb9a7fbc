package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/monitoring"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.StatusBackoffMinMS, cfg.StatusBackoffMaxMS = 0, 0
	cfg.ErrorBackoffMinMS, cfg.ErrorBackoffMaxMS = 0, 0
	return NewClient(cfg, monitoring.NewMetrics(prometheus.NewRegistry()), zap.NewNop())
}

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>ok</html>")
	}))
	defer srv.Close()

	body, err := newTestClient(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", body)
}

func TestFetchSendsIdentityHeaders(t *testing.T) {
	var ua, referer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		referer = r.Header.Get("Referer")
	}))
	defer srv.Close()

	_, err := newTestClient(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, ua, "Mozilla/5.0")
	require.Equal(t, "https://www.google.com/", referer)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(t).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrBadStatus)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusTooManyRequests, se.Code)
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(t).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrBadStatus))
}
