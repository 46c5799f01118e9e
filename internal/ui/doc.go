package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the movie browser controller and renders movie
// grids, favorites, details, notifications, and settings. All UI strings are
// localized via Localization.
