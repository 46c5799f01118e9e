package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/model"
)

// FavoritesWindow is a secondary window listing favorite movies. It is
// created on first use and recreated after the user closes it.
type FavoritesWindow struct {
	app          fyne.App
	localization *Localization
	onRemove     func(model.Movie)

	window     fyne.Window
	grid       *fyne.Container
	emptyLabel *widget.Label
}

// NewFavoritesWindow creates the favorites window controller
func NewFavoritesWindow(app fyne.App, localization *Localization, onRemove func(model.Movie)) *FavoritesWindow {
	return &FavoritesWindow{
		app:          app,
		localization: localization,
		onRemove:     onRemove,
	}
}

// Show renders cards and brings the window to front
func (fw *FavoritesWindow) Show(cards []browser.Card) {
	if fw.window == nil {
		fw.createWindow()
	}

	objects := make([]fyne.CanvasObject, 0, len(cards))
	for _, card := range cards {
		mc := NewMovieCard(card, fw.localization)
		mc.SetRemoveCallback(fw.onRemove)
		objects = append(objects, mc)
	}
	fw.grid.Objects = objects
	fw.grid.Refresh()

	if len(cards) == 0 {
		fw.emptyLabel.Show()
	} else {
		fw.emptyLabel.Hide()
	}

	fw.window.SetTitle(fw.localization.GetText(KeyFavoriteMovies))
	fw.window.Show()
}

// Len returns the number of cards currently shown
func (fw *FavoritesWindow) Len() int {
	if fw.grid == nil {
		return 0
	}
	return len(fw.grid.Objects)
}

func (fw *FavoritesWindow) createWindow() {
	fw.window = fw.app.NewWindow(fw.localization.GetText(KeyFavoriteMovies))
	fw.window.Resize(fyne.NewSize(FavoritesWindowWidth, FavoritesWindowHeight))
	fw.window.SetOnClosed(func() {
		fw.window = nil
		fw.grid = nil
	})

	fw.grid = container.NewGridWithColumns(FavoritesColumns)
	fw.emptyLabel = widget.NewLabel(fw.localization.GetText(KeyNoFavoritesLeft))
	fw.emptyLabel.Alignment = fyne.TextAlignCenter
	fw.emptyLabel.Hide()

	fw.window.SetContent(container.NewVScroll(container.NewVBox(fw.emptyLabel, fw.grid)))
}
