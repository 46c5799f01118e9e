package tmdb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ytget/movie-explorer/internal/model"
)

// Endpoints used by the application
const (
	EndpointNowPlaying = "/movie/now_playing"
	EndpointPopular    = "/movie/popular"
	EndpointSearch     = "/search/movie"
	EndpointGenres     = "/genre/movie/list"
	EndpointDiscover   = "/discover/movie"
)

const firstPage = "1"

// NowPlaying returns page 1 of movies currently in theatres
func (c *Client) NowPlaying(ctx context.Context) ([]model.Movie, error) {
	return c.listing(ctx, EndpointNowPlaying, map[string]string{ParamPage: firstPage})
}

// Popular returns page 1 of popular movies
func (c *Client) Popular(ctx context.Context) ([]model.Movie, error) {
	return c.listing(ctx, EndpointPopular, map[string]string{ParamPage: firstPage})
}

// Search returns movies whose title matches query
func (c *Client) Search(ctx context.Context, query string) ([]model.Movie, error) {
	return c.listing(ctx, EndpointSearch, map[string]string{ParamQuery: query})
}

// Discover returns movies tagged with the given genre id
func (c *Client) Discover(ctx context.Context, genreID int) ([]model.Movie, error) {
	return c.listing(ctx, EndpointDiscover, map[string]string{ParamWithGenres: strconv.Itoa(genreID)})
}

// Genres returns the movie genre catalog
func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var list model.GenreList
	if err := c.get(ctx, EndpointGenres, nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// Details returns the detail record for a single movie
func (c *Client) Details(ctx context.Context, movieID int64) (*model.MovieDetails, error) {
	var details model.MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Videos returns the videos attached to a movie in API order
func (c *Client) Videos(ctx context.Context, movieID int64) ([]model.Video, error) {
	var list model.VideoList
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// listing decodes a paged endpoint; a missing results field yields no movies
func (c *Client) listing(ctx context.Context, endpoint string, params map[string]string) ([]model.Movie, error) {
	var page model.Listing
	if err := c.get(ctx, endpoint, params, &page); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("count", len(page.Results)).
		Msg("Retrieved listing from TMDB")

	if page.Results == nil {
		return []model.Movie{}, nil
	}
	return page.Results, nil
}
