package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults for the public TMDB endpoints
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-US"
	DefaultTimeout      = 30 * time.Second

	YouTubeWatchURL = "https://www.youtube.com/watch?v="
)

// Query parameter names
const (
	ParamAPIKey     = "api_key"
	ParamLanguage   = "language"
	ParamPage       = "page"
	ParamQuery      = "query"
	ParamWithGenres = "with_genres"
)

// StatusError is returned when the API answers with a non-success status
type StatusError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
}

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLanguage sets the language parameter sent with every request
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithTimeout sets the HTTP client timeout. The client is copied, so a
// client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			return
		}
		hc := http.Client{}
		if c.httpClient != nil {
			hc = *c.httpClient
		}
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithHTTPClient replaces the underlying HTTP client; nil keeps the default
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new TMDB client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tmdb API key is required")
	}

	c := &Client{
		baseURL:  DefaultBaseURL,
		apiKey:   apiKey,
		language: DefaultLanguage,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fetch performs a GET against endpoint with params and returns the raw JSON
// body. The api_key parameter is always injected.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	if c.language != "" && query.Get(ParamLanguage) == "" {
		query.Set(ParamLanguage, c.language)
	}
	query.Set(ParamAPIKey, c.apiKey)

	reqURL := c.baseURL + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("TMDB request")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    statusMessage(body),
		}
	}

	return json.RawMessage(body), nil
}

// get fetches endpoint and decodes the JSON body into out
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	body, err := c.Fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", endpoint, err)
	}
	return nil
}

// statusMessage extracts status_message from a TMDB error body
func statusMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.StatusMessage
}

// PosterURL builds the CDN URL for a poster path at the given size token
func PosterURL(imageBaseURL, size, posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return strings.TrimRight(imageBaseURL, "/") + "/" + size + posterPath
}

// TrailerURL builds the YouTube watch URL for a video key
func TrailerURL(key string) string {
	return YouTubeWatchURL + url.QueryEscape(key)
}
