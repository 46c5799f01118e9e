package browser

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/movie-explorer/internal/model"
	"github.com/ytget/movie-explorer/internal/poster"
	"github.com/ytget/movie-explorer/internal/tmdb"
)

// Poster fan-out limits
const (
	DefaultMaxParallelPosters = 1
	MaxParallelPosters        = 10
)

// Controller is the movie browsing view-model
type Controller struct {
	movies  MovieService
	posters PosterSource
	view    View
	opener  URLOpener
	logger  zerolog.Logger

	pick        func(n int) int
	maxParallel int

	mu        sync.Mutex
	state     model.ViewState
	favorites *model.Favorites
}

// Option configures a Controller
type Option func(*Controller)

// WithPicker replaces the uniform random index picker used by ShowRandomPopular
func WithPicker(pick func(n int) int) Option {
	return func(c *Controller) {
		c.pick = pick
	}
}

// WithMaxParallelPosters bounds concurrent poster downloads per render.
// 1 downloads posters sequentially.
func WithMaxParallelPosters(n int) Option {
	return func(c *Controller) {
		c.SetMaxParallelPosters(n)
	}
}

// NewController creates a controller with an empty favorites collection
func NewController(movies MovieService, posters PosterSource, view View, opener URLOpener, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		movies:      movies,
		posters:     posters,
		view:        view,
		opener:      opener,
		logger:      logger,
		pick:        rand.IntN,
		maxParallel: DefaultMaxParallelPosters,
		favorites:   model.NewFavorites(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetMaxParallelPosters updates the poster fan-out, clamped to 1..MaxParallelPosters
func (c *Controller) SetMaxParallelPosters(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxParallelPosters {
		n = MaxParallelPosters
	}
	c.mu.Lock()
	c.maxParallel = n
	c.mu.Unlock()
}

// State returns the listing currently shown in the main grid
func (c *Controller) State() model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Favorites returns a snapshot of the favorites collection
func (c *Controller) Favorites() []model.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.favorites.Items()
}

// ShowLatest renders the now-playing listing
func (c *Controller) ShowLatest(ctx context.Context) error {
	return c.showListing(ctx, model.ViewState{Kind: model.ViewLatest}, c.movies.NowPlaying)
}

// Back returns to the latest listing; there is no history stack
func (c *Controller) Back(ctx context.Context) error {
	return c.ShowLatest(ctx)
}

// ShowPopular renders the popular listing
func (c *Controller) ShowPopular(ctx context.Context) error {
	return c.showListing(ctx, model.ViewState{Kind: model.ViewPopular}, c.movies.Popular)
}

// ShowRandomPopular renders a single movie picked uniformly from the popular
// listing. An empty listing leaves the view untouched.
func (c *Controller) ShowRandomPopular(ctx context.Context) error {
	movies, err := c.movies.Popular(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	if len(movies) == 0 {
		c.logger.Debug().Msg("Popular listing is empty, nothing to pick")
		return nil
	}

	picked := movies[c.pick(len(movies))]
	cards := c.buildCards(ctx, []model.Movie{picked}, poster.Grid)
	return c.commitListing(ctx, model.ViewState{Kind: model.ViewRandom}, cards)
}

// Search renders movies matching query. Blank input issues no request.
func (c *Controller) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		c.view.Notify(Notice{Level: NoticeWarning, Code: CodeEmptyQuery})
		return ErrEmptyQuery
	}

	state := model.ViewState{Kind: model.ViewSearch, Query: query}
	return c.showListing(ctx, state, func(ctx context.Context) ([]model.Movie, error) {
		return c.movies.Search(ctx, query)
	})
}

// FilterByGenre fetches the genre catalog and asks the view to pick one.
// The discover request happens on confirmation only.
func (c *Controller) FilterByGenre(ctx context.Context) error {
	genres, err := c.movies.Genres(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	catalog := model.NewGenreCatalog(genres)
	c.view.ChooseGenre(catalog.Names(), catalog.Default(), func(ctx context.Context, name string) {
		if err := c.applyGenre(ctx, catalog, name); err != nil {
			c.logger.Debug().Err(err).Str("genre", name).Msg("Genre filter failed")
		}
	})
	return nil
}

// applyGenre runs discover for a confirmed genre name. Unknown or empty names
// are ignored.
func (c *Controller) applyGenre(ctx context.Context, catalog *model.GenreCatalog, name string) error {
	genreID, ok := catalog.Lookup(name)
	if !ok {
		c.logger.Debug().Str("genre", name).Msg("No genre selected, skipping discover")
		return nil
	}

	state := model.ViewState{Kind: model.ViewGenre, Genre: name}
	return c.showListing(ctx, state, func(ctx context.Context) ([]model.Movie, error) {
		return c.movies.Discover(ctx, genreID)
	})
}

// AddToFavorite appends the movie unless an equal record is present
func (c *Controller) AddToFavorite(m model.Movie) bool {
	c.mu.Lock()
	added := c.favorites.Add(m)
	c.mu.Unlock()

	if added {
		c.view.Notify(Notice{Level: NoticeInfo, Code: CodeFavoriteAdded, Subject: m.Title})
	} else {
		c.view.Notify(Notice{Level: NoticeInfo, Code: CodeAlreadyFavorite, Subject: m.Title})
	}
	return added
}

// RemoveFromFavorite deletes the movie and refreshes the favorites view.
// Absent movies leave the collection unchanged.
func (c *Controller) RemoveFromFavorite(ctx context.Context, m model.Movie) bool {
	c.mu.Lock()
	removed := c.favorites.Remove(m)
	remaining := c.favorites.Items()
	c.mu.Unlock()

	if !removed {
		c.view.Notify(Notice{Level: NoticeInfo, Code: CodeNotFavorite, Subject: m.Title})
		return false
	}

	c.view.Notify(Notice{Level: NoticeInfo, Code: CodeFavoriteRemoved, Subject: m.Title})
	c.renderFavorites(ctx, remaining)
	return true
}

// ShowFavorites renders the favorites collection; an empty collection only
// produces a notice.
func (c *Controller) ShowFavorites(ctx context.Context) error {
	items := c.Favorites()
	if len(items) == 0 {
		c.view.Notify(Notice{Level: NoticeInfo, Code: CodeNoFavorites})
		return nil
	}
	c.renderFavorites(ctx, items)
	return ctx.Err()
}

// WatchTrailer opens the first YouTube trailer of the movie
func (c *Controller) WatchTrailer(ctx context.Context, m model.Movie) error {
	videos, err := c.movies.Videos(ctx, m.ID)
	if err != nil {
		return c.fail(ctx, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	trailer, ok := model.FirstTrailer(videos)
	if !ok {
		c.view.Notify(Notice{Level: NoticeInfo, Code: CodeNoTrailer, Subject: m.Title})
		return nil
	}

	trailerURL := tmdb.TrailerURL(trailer.Key)
	c.logger.Info().Int64("movie_id", m.ID).Str("url", trailerURL).Msg("Opening trailer")

	if err := c.opener.OpenURL(trailerURL); err != nil {
		c.logger.Error().Err(err).Str("url", trailerURL).Msg("Failed to open trailer")
		c.view.Notify(Notice{Level: NoticeError, Code: CodeOpenFailed, Subject: m.Title, Err: err})
		return err
	}
	return nil
}

// ShowDetails fetches the detail record and opens the details modal.
// Absent fields fall back to placeholders independently.
func (c *Controller) ShowDetails(ctx context.Context, m model.Movie) error {
	details, err := c.movies.Details(ctx, m.ID)
	if err != nil {
		return c.fail(ctx, err)
	}

	out := Details{
		MovieID:     m.ID,
		Title:       m.Title,
		Overview:    details.OverviewText(),
		ReleaseDate: details.ReleaseDateText(),
		Runtime:     details.RuntimeText(),
		Rating:      details.RatingText(),
	}
	if m.HasPoster() {
		img, err := c.posters.Poster(ctx, poster.Detail, m.PosterPath)
		if err != nil {
			c.logger.Warn().Err(err).Int64("movie_id", m.ID).Msg("Failed to load detail poster")
		} else {
			out.Poster = img
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.view.ShowDetails(out)
	return nil
}

// showListing fetches a listing and swaps it into the main grid
func (c *Controller) showListing(ctx context.Context, state model.ViewState, fetch func(context.Context) ([]model.Movie, error)) error {
	movies, err := fetch(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	cards := c.buildCards(ctx, movies, poster.Grid)
	return c.commitListing(ctx, state, cards)
}

// commitListing updates the view state and the grid unless the action was
// superseded while it was running.
func (c *Controller) commitListing(ctx context.Context, state model.ViewState, cards []Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil {
		c.logger.Debug().Str("view", state.Kind.String()).Msg("Action superseded, dropping listing")
		return ctx.Err()
	}

	c.state = state
	c.view.ShowListing(state, cards)

	c.logger.Debug().
		Str("view", state.Kind.String()).
		Int("cards", len(cards)).
		Msg("Listing rendered")
	return nil
}

// renderFavorites loads favorite posters and pushes them to the view
func (c *Controller) renderFavorites(ctx context.Context, items []model.Movie) {
	cards := c.buildCards(ctx, items, poster.Grid)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	c.view.ShowFavorites(cards)
}

// buildCards creates one card per movie in listing order. Posters are only
// requested for movies with a poster path; failures leave the card imageless.
func (c *Controller) buildCards(ctx context.Context, movies []model.Movie, size poster.Size) []Card {
	cards := make([]Card, len(movies))

	c.mu.Lock()
	limit := c.maxParallel
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, m := range movies {
		cards[i].Movie = m
		if !m.HasPoster() {
			continue
		}

		g.Go(func() error {
			img, err := c.posters.Poster(gctx, size, m.PosterPath)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					c.logger.Warn().
						Err(err).
						Int64("movie_id", m.ID).
						Str("poster", m.PosterPath).
						Msg("Failed to load poster")
				}
				return nil
			}
			cards[i].Poster = img
			return nil
		})
	}

	_ = g.Wait()
	return cards
}

// fail reports a failed API call; superseded actions fail silently
func (c *Controller) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		c.logger.Debug().Err(err).Msg("Action canceled")
		return err
	}

	c.logger.Error().Err(err).Msg("Failed to fetch data")
	c.view.Notify(Notice{Level: NoticeError, Code: CodeFetchFailed, Err: err})
	return err
}
