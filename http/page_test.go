package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/refgen"
	refhttp "github.com/fwojciec/refgen/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageReader_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/Num.html", r.URL.Path)
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><div class="entry-detail"></div></body></html>`))
		}))
		defer server.Close()

		reader := refhttp.NewPageReader()

		html, err := reader.ReadPage(context.Background(), server.URL+"/api/Num.html")
		require.NoError(t, err)
		assert.Equal(t, `<html><body><div class="entry-detail"></div></body></html>`, html)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		reader := refhttp.NewPageReader(refhttp.WithTimeout(10 * time.Millisecond))

		_, err := reader.ReadPage(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		reader := refhttp.NewPageReader()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := reader.ReadPage(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns ENOTFOUND for 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		reader := refhttp.NewPageReader()

		_, err := reader.ReadPage(context.Background(), server.URL+"/missing.html")
		assert.Equal(t, refgen.ENOTFOUND, refgen.ErrorCode(err))
	})

	t.Run("returns error for other non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		reader := refhttp.NewPageReader()

		_, err := reader.ReadPage(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := refhttp.NewPageReader().ReadPage(context.Background(), "http://[::1")

		assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
	})
}
