package browser

import (
	"context"
	"image"

	"github.com/ytget/movie-explorer/internal/model"
	"github.com/ytget/movie-explorer/internal/poster"
)

// MovieService defines the TMDB calls the controller depends on.
type MovieService interface {
	NowPlaying(ctx context.Context) ([]model.Movie, error)
	Popular(ctx context.Context) ([]model.Movie, error)
	Search(ctx context.Context, query string) ([]model.Movie, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Discover(ctx context.Context, genreID int) ([]model.Movie, error)
	Details(ctx context.Context, movieID int64) (*model.MovieDetails, error)
	Videos(ctx context.Context, movieID int64) ([]model.Video, error)
}

// PosterSource loads a scaled poster image for a poster path.
type PosterSource interface {
	Poster(ctx context.Context, size poster.Size, posterPath string) (image.Image, error)
}

// URLOpener hands a URL to the OS default handler.
type URLOpener interface {
	OpenURL(rawURL string) error
}

// View renders controller output. Implementations must be safe to call from
// a non-UI goroutine.
type View interface {
	// ShowListing replaces the main grid and its heading
	ShowListing(state model.ViewState, cards []Card)

	// ShowFavorites renders the favorites collection in its own view
	ShowFavorites(cards []Card)

	// ShowDetails opens the details modal for a single movie
	ShowDetails(details Details)

	// ChooseGenre presents the genre picker with selected preselected.
	// confirm is invoked with the chosen name when the user applies the filter.
	ChooseGenre(names []string, selected string, confirm func(ctx context.Context, name string))

	// Notify surfaces a user-facing notice
	Notify(notice Notice)
}
