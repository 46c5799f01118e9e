package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyGridColumns        = "grid_columns"
	KeyMaxParallelPosters = "max_parallel_posters"
	KeyLastSearch         = "last_search"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultGridColumns        = 6
	DefaultMaxParallelPosters = 1
)

// Bounds for numeric settings
const (
	MinGridColumns = 1
	MaxGridColumns = 10
	MinParallel    = 1
	MaxParallel    = 10
)

// Settings manages per-user UI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetGridColumns returns how many cards are placed per grid row
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().Int(KeyGridColumns)
	if value <= 0 {
		s.SetGridColumns(DefaultGridColumns)
		return DefaultGridColumns
	}
	return clamp(value, MinGridColumns, MaxGridColumns)
}

// SetGridColumns sets the grid column count
func (s *Settings) SetGridColumns(count int) {
	s.app.Preferences().SetInt(KeyGridColumns, clamp(count, MinGridColumns, MaxGridColumns))
}

// GetMaxParallelPosters returns the maximum number of concurrent poster downloads
func (s *Settings) GetMaxParallelPosters() int {
	value := s.app.Preferences().Int(KeyMaxParallelPosters)
	if value <= 0 {
		s.SetMaxParallelPosters(DefaultMaxParallelPosters)
		return DefaultMaxParallelPosters
	}
	return clamp(value, MinParallel, MaxParallel)
}

// SetMaxParallelPosters sets the maximum number of concurrent poster downloads
func (s *Settings) SetMaxParallelPosters(count int) {
	s.app.Preferences().SetInt(KeyMaxParallelPosters, clamp(count, MinParallel, MaxParallel))
}

// GetLastSearch returns the last submitted search query
func (s *Settings) GetLastSearch() string {
	return s.app.Preferences().String(KeyLastSearch)
}

// SetLastSearch remembers the last submitted search query
func (s *Settings) SetLastSearch(query string) {
	s.app.Preferences().SetString(KeyLastSearch, query)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
