package tmdb

// Package tmdb implements a thin client for The Movie Database v3 API. Every
// request carries the configured api_key; listings are fetched for page 1 only.
// A non-200 response is returned as *StatusError and never retried.
