package ubikais

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubikais/mirror/internal/logging"
)

func init() {
	_ = logging.Init("test")
}

func testClient(baseURL string, retries int) *Client {
	return NewClient(Options{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retries: retries,
		Backoff: time.Millisecond,
		Rate:    1000,
	})
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"records":[{"notamId":"C1/26"}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 3)
	res, ok := c.Fetch(context.Background(), Endpoint{Path: "/x"})
	require.True(t, ok)
	assert.Equal(t, 3, attempts)
	require.Len(t, res.Records(), 1)
	assert.Equal(t, "C1/26", res.Records()[0]["notamId"])
}

func TestFetchExhaustsRetries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 3)
	res, ok := c.Fetch(context.Background(), Endpoint{Path: "/x"})
	assert.False(t, ok)
	assert.Nil(t, res)
	assert.Equal(t, 3, attempts)
}

func TestFetchNonJSONBodyIsNotAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>" + strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 1)
	res, ok := c.Fetch(context.Background(), Endpoint{Path: "/x"})
	require.True(t, ok)
	assert.Nil(t, res.Payload)
	assert.Len(t, res.Raw, rawBodyLimit)
	assert.True(t, strings.HasPrefix(res.Raw, "<html>"))
}

func TestFetchSendsSessionCookiesAndHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 1)
	c.SetSession("abc123", "scout1")

	_, ok := c.Fetch(context.Background(), Endpoint{Path: "/x", Referer: "/sysUbikais/biz/main.ubikais"})
	require.True(t, ok)

	cookie, err := got.Cookie("JSESSIONID")
	require.NoError(t, err)
	assert.Equal(t, "abc123", cookie.Value)
	assert.Equal(t, "XMLHttpRequest", got.Header.Get("X-Requested-With"))
	assert.Contains(t, got.Header.Get("Referer"), "/sysUbikais/biz/main.ubikais")
}

func TestRecordsFallsBackToDataKey(t *testing.T) {
	res := &Result{Payload: map[string]interface{}{
		"data": []interface{}{map[string]interface{}{"id": "1"}},
	}}
	require.Len(t, res.Records(), 1)

	res = &Result{Payload: map[string]interface{}{"total": float64(0)}}
	assert.Empty(t, res.Records())
}

func TestFetchContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(srv.URL, 3)
	_, ok := c.Fetch(ctx, Endpoint{Path: "/x"})
	assert.False(t, ok)
}
