package model

import "slices"

// Movie is a single entry of a TMDB listing (now playing, popular, search,
// discover). It is a read-only projection of the API response.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`   // empty when null upstream
	BackdropPath     string  `json:"backdrop_path"` // empty when null upstream
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// HasPoster reports whether the record carries a poster path
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// Equal compares every field of both records. Two listings returning the same
// id with a different shape are not equal.
func (m Movie) Equal(other Movie) bool {
	return m.ID == other.ID &&
		m.Title == other.Title &&
		m.OriginalTitle == other.OriginalTitle &&
		m.OriginalLanguage == other.OriginalLanguage &&
		m.Overview == other.Overview &&
		m.PosterPath == other.PosterPath &&
		m.BackdropPath == other.BackdropPath &&
		m.ReleaseDate == other.ReleaseDate &&
		m.VoteAverage == other.VoteAverage &&
		m.VoteCount == other.VoteCount &&
		m.Popularity == other.Popularity &&
		slices.Equal(m.GenreIDs, other.GenreIDs) &&
		m.Adult == other.Adult &&
		m.Video == other.Video
}

// Listing is the envelope of every paged TMDB list endpoint
type Listing struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
