package ui

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/model"
)

func TestLocalizationFallsBackToEnglish(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("de")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Назад", l.GetText(KeyBack))

	assert.Equal(t, "unknown_key", l.GetText("unknown_key"))
}

func TestLocalizationLanguagesShareKeys(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			_, ok := l.texts[code][key]
			assert.Truef(t, ok, "language %s is missing key %s", code, key)
		}
	}
}

func TestHeadingText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		state model.ViewState
		want  string
	}{
		{model.ViewState{Kind: model.ViewLatest}, "Latest Movies"},
		{model.ViewState{Kind: model.ViewRandom}, "Random Movie"},
		{model.ViewState{Kind: model.ViewPopular}, "Popular Movies"},
		{model.ViewState{Kind: model.ViewSearch, Query: "alien"}, "Search Results for: alien"},
		{model.ViewState{Kind: model.ViewGenre, Genre: "Horror"}, "Genre: Horror"},
		{model.ViewState{}, "Latest Movies"},
	}

	for _, tt := range tests {
		t.Run(tt.state.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, l.HeadingText(tt.state))
		})
	}
}

func TestHeadingTextSearchContainsQueryInEveryLanguage(t *testing.T) {
	l := NewLocalization()
	state := model.ViewState{Kind: model.ViewSearch, Query: "Blade Runner"}

	for code := range l.GetAvailableLanguages() {
		l.SetLanguage(code)
		assert.Contains(t, l.HeadingText(state), "Blade Runner", code)
	}
}

func TestNoticeText(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Added to favorites: Alien",
		l.NoticeText(browser.Notice{Code: browser.CodeFavoriteAdded, Subject: "Alien"}))
	assert.Equal(t, "Please enter a movie title",
		l.NoticeText(browser.Notice{Level: browser.NoticeWarning, Code: browser.CodeEmptyQuery}))
	assert.Equal(t, "Failed to fetch data (boom)",
		l.NoticeText(browser.Notice{Level: browser.NoticeError, Code: browser.CodeFetchFailed, Err: errors.New("boom")}))
}

func TestLocalizationConcurrentLanguageSwitch(t *testing.T) {
	l := NewLocalization()
	notice := browser.Notice{Level: browser.NoticeInfo, Code: browser.CodeFavoriteAdded, Subject: "Alien"}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.NotEmpty(t, l.NoticeText(notice))
				assert.NotEmpty(t, l.GetText(KeyLoading))
				assert.NotEmpty(t, l.HeadingText(model.ViewState{Kind: model.ViewPopular}))
			}
		}()
	}
	for i := range 200 {
		l.SetLanguage([]string{"en", "ru", "pt"}[i%3])
	}
	wg.Wait()

	assert.Contains(t, []string{"en", "ru", "pt"}, l.GetCurrentLanguage())
}
