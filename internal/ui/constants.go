package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "←"
	IconRandom   = "🎲"
	IconGenre    = "🎭"
	IconPopular  = "🔥"
	IconSearch   = "🔍"
	IconFavorite = "★"
	IconTrailer  = "▶"
	IconDetails  = "ℹ"
	IconRemove   = "×"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	IconLabelFormat    = "%s %s"
)

// Window sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 800

	FavoritesWindowWidth  float32 = 900
	FavoritesWindowHeight float32 = 700
	FavoritesColumns              = 3
)

// Card sizing (MovieCard)
const (
	PosterWidth  float32 = 120
	PosterHeight float32 = 180

	DetailPosterWidth  float32 = 200
	DetailPosterHeight float32 = 300

	CardMinWidth float32 = 150
)

// Dialog sizing
const (
	DetailsDialogWidth   float32 = 640
	DetailsDialogHeight  float32 = 420
	GenreDialogWidth     float32 = 360
	GenreDialogHeight    float32 = 160
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Notification strip behavior
const (
	NotificationAutoHide = 4 * time.Second
)
