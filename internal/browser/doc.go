package browser

// Package browser implements the movie browsing view-model. The Controller
// owns the current view state and the favorites collection, turns user
// actions into TMDB calls and pushes rendered cards to a View. It has no
// dependency on the UI toolkit so it can be driven by fakes in tests.
