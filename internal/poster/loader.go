package poster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/ytget/movie-explorer/internal/tmdb"
)

// Size pairs a TMDB size token with the box the poster is scaled into
type Size struct {
	Token  string
	Width  int
	Height int
}

// Poster sizes used by the UI
var (
	Grid   = Size{Token: "w200", Width: 120, Height: 180}
	Detail = Size{Token: "w300", Width: 200, Height: 300}
)

// Download limits
const (
	MaxPosterBytes = 10 << 20
	DefaultTimeout = 20 * time.Second
)

// ErrNoPoster is returned for records without a poster path
var ErrNoPoster = errors.New("movie has no poster")

// Loader downloads posters from the TMDB image CDN
type Loader struct {
	imageBaseURL string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithTimeout sets the per-download timeout
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewLoader creates a poster loader for the given CDN base URL
func NewLoader(imageBaseURL string, logger zerolog.Logger, opts ...Option) *Loader {
	if imageBaseURL == "" {
		imageBaseURL = tmdb.DefaultImageBaseURL
	}
	l := &Loader{
		imageBaseURL: imageBaseURL,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Poster fetches, validates, decodes and scales a single poster
func (l *Loader) Poster(ctx context.Context, size Size, posterPath string) (image.Image, error) {
	if posterPath == "" {
		return nil, ErrNoPoster
	}

	posterURL := tmdb.PosterURL(l.imageBaseURL, size.Token, posterPath)
	data, err := l.download(ctx, posterURL)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("unexpected poster content type %s for %s", mtype.String(), posterPath)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode poster %s: %w", posterPath, err)
	}

	l.logger.Debug().
		Str("path", posterPath).
		Str("format", format).
		Int("bytes", len(data)).
		Msg("Poster downloaded")

	return Scale(src, size.Width, size.Height), nil
}

// download fetches a URL body up to MaxPosterBytes
func (l *Loader) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poster request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPosterBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read poster body: %w", err)
	}
	return data, nil
}

// Scale resizes src into a width x height RGBA image
func Scale(src image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
