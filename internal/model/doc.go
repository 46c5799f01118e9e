package model

// Package model defines domain data structures used across the app: movie
// records as projected from TMDB listings, genres, videos, detail payloads,
// the in-memory favorites collection and the current view state.
