package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL+"/"))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient("", zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("k", zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultLanguage, client.language)
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	})

	t.Run("options", func(t *testing.T) {
		client, err := NewClient("k", zerolog.Nop(),
			WithBaseURL("http://localhost:9999/3/"),
			WithLanguage("pt-BR"),
			WithTimeout(5*time.Second),
		)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/3", client.baseURL)
		assert.Equal(t, "pt-BR", client.language)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("timeout leaves caller client untouched", func(t *testing.T) {
		shared := &http.Client{Timeout: time.Minute}
		client, err := NewClient("k", zerolog.Nop(),
			WithHTTPClient(shared),
			WithTimeout(5*time.Second),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, shared.Timeout)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
		assert.NotSame(t, shared, client.httpClient)
	})

	t.Run("nil HTTP client keeps default", func(t *testing.T) {
		var client *Client
		require.NotPanics(t, func() {
			var err error
			client, err = NewClient("k", zerolog.Nop(),
				WithHTTPClient(nil),
				WithTimeout(5*time.Second),
			)
			require.NoError(t, err)
		})
		require.NotNil(t, client.httpClient)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})
}

func TestFetch_InjectsAPIKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"results":[]}`))
	})

	body, err := client.Fetch(context.Background(), "/movie/popular", map[string]string{"page": "1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(body))
}

func TestFetch_CallerLanguageWins(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "de-DE", r.URL.Query().Get("language"))
		w.Write([]byte(`{}`))
	})

	_, err := client.Fetch(context.Background(), "/genre/movie/list", map[string]string{"language": "de-DE"})
	require.NoError(t, err)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
	})

	body, err := client.Fetch(context.Background(), "/movie/now_playing", nil)
	require.Error(t, err)
	assert.Nil(t, body)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "/movie/now_playing", statusErr.Endpoint)
	assert.Equal(t, "Invalid API key", statusErr.Message)
	assert.Contains(t, err.Error(), "status 401")
}

func TestFetch_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, "/movie/popular", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPosterURL(t *testing.T) {
	tests := []struct {
		base     string
		size     string
		path     string
		expected string
	}{
		{DefaultImageBaseURL, "w200", "/x.jpg", "https://image.tmdb.org/t/p/w200/x.jpg"},
		{DefaultImageBaseURL + "/", "w300", "/y.png", "https://image.tmdb.org/t/p/w300/y.png"},
		{DefaultImageBaseURL, "w200", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PosterURL(tt.base, tt.size, tt.path))
	}
}

func TestTrailerURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", TrailerURL("dQw4w9WgXcQ"))
}
