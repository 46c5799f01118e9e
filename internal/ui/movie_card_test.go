package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/model"
)

func TestMovieCardGridActions(t *testing.T) {
	test.NewApp()
	movie := model.Movie{ID: 7, Title: "Alien\n"}
	card := NewMovieCard(browser.Card{Movie: movie}, NewLocalization())

	var favorite, trailer, details model.Movie
	card.SetCallbacks(
		func(m model.Movie) { favorite = m },
		func(m model.Movie) { trailer = m },
		func(m model.Movie) { details = m },
	)

	require.NotNil(t, card.favoriteBtn)
	require.NotNil(t, card.trailerBtn)
	require.NotNil(t, card.detailsBtn)
	assert.Nil(t, card.removeBtn)

	test.Tap(card.favoriteBtn)
	test.Tap(card.trailerBtn)
	test.Tap(card.detailsBtn)

	assert.Equal(t, movie, favorite)
	assert.Equal(t, movie, trailer)
	assert.Equal(t, movie, details)
	assert.Equal(t, "Alien", card.titleLabel.Text)
	assert.Len(t, card.actions.Objects, 3)
}

func TestMovieCardRemoveAction(t *testing.T) {
	test.NewApp()
	movie := model.Movie{ID: 9, Title: "Heat"}
	card := NewMovieCard(browser.Card{Movie: movie}, NewLocalization())

	var removed model.Movie
	card.SetRemoveCallback(func(m model.Movie) { removed = m })

	assert.Nil(t, card.favoriteBtn)
	require.NotNil(t, card.removeBtn)
	assert.Len(t, card.actions.Objects, 1)

	test.Tap(card.removeBtn)
	assert.Equal(t, movie, removed)
}

func TestMovieCardPoster(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()

	without := NewMovieCard(browser.Card{Movie: model.Movie{ID: 1}}, loc)
	assert.Nil(t, without.posterImage)

	with := NewMovieCard(browser.Card{
		Movie:  model.Movie{ID: 2, PosterPath: "/x.jpg"},
		Poster: image.NewRGBA(image.Rect(0, 0, 4, 6)),
	}, loc)
	require.NotNil(t, with.posterImage)
	assert.Equal(t, PosterWidth, with.posterImage.MinSize().Width)
}
