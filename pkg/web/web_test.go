package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchHTMLToText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><style>.x{}</style></head><body>
			<h1>Title</h1>
			<p>Some text.</p>
			<ul><li>first</li><li>second</li></ul>
			<script>alert(1)</script>
		</body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, slog.Default())
	page, err := f.Fetch(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	assert.Contains(t, page.Content, "# Title")
	assert.Contains(t, page.Content, "Some text.")
	assert.Contains(t, page.Content, "- first")
	assert.NotContains(t, page.Content, "alert")
	assert.NotContains(t, page.Content, ".x{}")
}

func TestFetchPlainPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, slog.Default())
	page, err := f.Fetch(context.Background(), srv.URL, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, page.Content)
}

func TestFetchCapsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, slog.Default())
	page, err := f.Fetch(context.Background(), srv.URL, 100)
	require.NoError(t, err)
	assert.Len(t, page.Content, 100)
	assert.True(t, page.Truncated)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, slog.Default())
	page, err := f.Fetch(context.Background(), srv.URL, 0)
	assert.ErrorIs(t, err, ErrHTTPStatus)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.Status)
}

func TestFetchRejectsBadURLs(t *testing.T) {
	f := NewFetcher(time.Second, slog.Default())
	for _, u := range []string{"ftp://host/x", "not a url at all://", "/relative", ""} {
		_, err := f.Fetch(context.Background(), u, 0)
		assert.ErrorIs(t, err, ErrInvalidURL, "url %q", u)
	}
}

func TestAPIClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`created`))
	}))
	defer srv.Close()

	c := NewAPIClient(5*time.Second, 0, slog.Default())
	resp, err := c.Do(context.Background(), APIRequest{
		URL:     srv.URL,
		Method:  "post",
		Headers: map[string]string{"Authorization": "Bearer tok"},
		Body:    `{"name":"x"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "created", resp.Body)
}

// Error statuses come back as data, not errors.
func TestAPIClientErrorStatusIsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewAPIClient(5*time.Second, 0, slog.Default())
	resp, err := c.Do(context.Background(), APIRequest{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.Status)
}

func TestAPIClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	c := NewAPIClient(10*time.Second, 0, slog.Default())
	_, err := c.Do(context.Background(), APIRequest{URL: srv.URL, Timeout: 100 * time.Millisecond})
	assert.Error(t, err)
}
