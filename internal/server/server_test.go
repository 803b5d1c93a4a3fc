package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"articled/internal/article"
)

// stubScraper returns a canned result or error and records its calls.
type stubScraper struct {
	res     article.Result
	err     error
	calls   int
	lastURL string
}

func (s *stubScraper) Scrape(ctx context.Context, url string, timeout time.Duration) (article.Result, error) {
	s.calls++
	s.lastURL = url
	return s.res, s.err
}

func newTestServer(t *testing.T, scraper Scraper) *Server {
	t.Helper()
	return New(Config{ServiceVersion: "test"}, scraper, zap.NewNop())
}

func postScrape(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/scrape", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeScrape(t *testing.T, w *httptest.ResponseRecorder) ScrapeResponse {
	t.Helper()
	var resp ScrapeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestScrapeSuccess(t *testing.T) {
	stub := &stubScraper{res: article.Result{
		Content:   "First paragraph.\n\nSecond paragraph.",
		Succeeded: true,
	}}
	srv := newTestServer(t, stub)

	w := postScrape(t, srv, `{"url":"https://example.com/story"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeScrape(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", resp.Content)
	assert.Equal(t, 4, resp.WordCount)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "https://example.com/story", stub.lastURL)
}

func TestScrapeNoContentFound(t *testing.T) {
	srv := newTestServer(t, &stubScraper{res: article.Result{}})

	w := postScrape(t, srv, `{"url":"https://example.com/story"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeScrape(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "no content found", resp.Error)
}

func TestScrapeInfrastructureFailure(t *testing.T) {
	srv := newTestServer(t, &stubScraper{err: errors.New("failed to navigate: net::ERR_NAME_NOT_RESOLVED")})

	w := postScrape(t, srv, `{"url":"https://example.com/story"}`)

	// Browser lifecycle failures are reported in-band with HTTP 200.
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeScrape(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "failed to navigate")
	assert.Empty(t, resp.Content)
}

func TestScrapeValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing url", `{}`},
		{"not json", `not json`},
		{"bad scheme", `{"url":"ftp://example.com/story"}`},
		{"no host", `{"url":"https://"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubScraper{}
			srv := newTestServer(t, stub)

			w := postScrape(t, srv, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, stub.calls)
		})
	}
}

func TestScrapeTimeoutClamped(t *testing.T) {
	var gotTimeout time.Duration
	scraper := scraperFunc(func(ctx context.Context, url string, timeout time.Duration) (article.Result, error) {
		gotTimeout = timeout
		return article.Result{Content: "ok words here", Succeeded: true}, nil
	})
	srv := newTestServer(t, scraper)

	// 10 minutes requested, clamped to the 2 minute ceiling.
	w := postScrape(t, srv, `{"url":"https://example.com/story","timeout":600000}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2*time.Minute, gotTimeout)
}

type scraperFunc func(ctx context.Context, url string, timeout time.Duration) (article.Result, error)

func (f scraperFunc) Scrape(ctx context.Context, url string, timeout time.Duration) (article.Result, error) {
	return f(ctx, url, timeout)
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer(t, &stubScraper{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"articled"`)
	assert.Contains(t, w.Body.String(), `"test"`)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, &stubScraper{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/scrape", nil)
	req.Header.Set("Origin", "https://blog.example.com")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
