package model

import "fmt"

// Placeholders rendered for absent detail fields
const (
	PlaceholderNA       = "N/A"
	PlaceholderOverview = "No overview available."
)

// MovieDetails is the payload of /movie/{id}. Optional fields are pointers so
// that a missing key and a JSON null both read as absent.
type MovieDetails struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterPath  string   `json:"poster_path"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	Runtime     *int     `json:"runtime"`
	VoteAverage *float64 `json:"vote_average"`
	Genres      []Genre  `json:"genres"`
}

// OverviewText returns the overview or the overview placeholder
func (d *MovieDetails) OverviewText() string {
	if d.Overview == nil || *d.Overview == "" {
		return PlaceholderOverview
	}
	return *d.Overview
}

// ReleaseDateText returns the release date or N/A
func (d *MovieDetails) ReleaseDateText() string {
	if d.ReleaseDate == nil || *d.ReleaseDate == "" {
		return PlaceholderNA
	}
	return *d.ReleaseDate
}

// RuntimeText returns "<n> minutes" or N/A
func (d *MovieDetails) RuntimeText() string {
	if d.Runtime == nil {
		return PlaceholderNA
	}
	return fmt.Sprintf("%d minutes", *d.Runtime)
}

// RatingText returns "<x.y> / 10" or N/A
func (d *MovieDetails) RatingText() string {
	if d.VoteAverage == nil {
		return PlaceholderNA
	}
	return fmt.Sprintf("%.1f / 10", *d.VoteAverage)
}
