package browser

import (
	"errors"
	"image"

	"github.com/ytget/movie-explorer/internal/model"
)

// ErrEmptyQuery is returned by Search for blank input; no request is issued
var ErrEmptyQuery = errors.New("search query is empty")

// Card pairs a movie with its poster; Poster is nil when the record has no
// poster path or the download failed.
type Card struct {
	Movie  model.Movie
	Poster image.Image
}

// Details is the rendered content of the details modal
type Details struct {
	MovieID     int64
	Title       string
	Poster      image.Image
	Overview    string
	ReleaseDate string
	Runtime     string
	Rating      string
}

// NoticeLevel is the severity of a user-facing notice
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// String returns the level name
func (l NoticeLevel) String() string {
	switch l {
	case NoticeInfo:
		return "info"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "unknown"
	}
}

// NoticeCode identifies the message; the UI maps it to localized text
type NoticeCode string

const (
	CodeFetchFailed     NoticeCode = "fetch_failed"
	CodeEmptyQuery      NoticeCode = "empty_query"
	CodeFavoriteAdded   NoticeCode = "favorite_added"
	CodeAlreadyFavorite NoticeCode = "already_favorite"
	CodeFavoriteRemoved NoticeCode = "favorite_removed"
	CodeNotFavorite     NoticeCode = "not_favorite"
	CodeNoFavorites     NoticeCode = "no_favorites"
	CodeNoTrailer       NoticeCode = "no_trailer"
	CodeOpenFailed      NoticeCode = "open_failed"
)

// Notice is a message for the user. Subject is usually a movie title.
type Notice struct {
	Level   NoticeLevel
	Code    NoticeCode
	Subject string
	Err     error
}
