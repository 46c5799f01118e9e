package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/model"
)

// MovieCard renders a poster, a title, and the action buttons for one movie
type MovieCard struct {
	widget.BaseWidget

	movie        model.Movie
	localization *Localization

	// UI components
	posterImage *canvas.Image
	titleLabel  *widget.Label
	actions     *fyne.Container

	// Action buttons, nil until the matching callback is set
	favoriteBtn *widget.Button
	trailerBtn  *widget.Button
	detailsBtn  *widget.Button
	removeBtn   *widget.Button

	// Callbacks
	onFavorite func(model.Movie)
	onTrailer  func(model.Movie)
	onDetails  func(model.Movie)
	onRemove   func(model.Movie)
}

// NewMovieCard creates a card for a rendered movie
func NewMovieCard(card browser.Card, localization *Localization) *MovieCard {
	mc := &MovieCard{
		movie:        card.Movie,
		localization: localization,
	}
	mc.ExtendBaseWidget(mc)
	mc.createUI(card)
	return mc
}

// Movie returns the movie shown on the card
func (mc *MovieCard) Movie() model.Movie {
	return mc.movie
}

// SetCallbacks sets the main grid actions
func (mc *MovieCard) SetCallbacks(
	onFavorite func(model.Movie),
	onTrailer func(model.Movie),
	onDetails func(model.Movie),
) {
	mc.onFavorite = onFavorite
	mc.onTrailer = onTrailer
	mc.onDetails = onDetails
	mc.buildActions()
}

// SetRemoveCallback turns the card into a favorites card with a single Remove action
func (mc *MovieCard) SetRemoveCallback(onRemove func(model.Movie)) {
	mc.onFavorite = nil
	mc.onTrailer = nil
	mc.onDetails = nil
	mc.onRemove = onRemove
	mc.buildActions()
}

// createUI creates the UI components
func (mc *MovieCard) createUI(card browser.Card) {
	if card.Poster != nil {
		mc.posterImage = canvas.NewImageFromImage(card.Poster)
		mc.posterImage.FillMode = canvas.ImageFillContain
		mc.posterImage.SetMinSize(fyne.NewSize(PosterWidth, PosterHeight))
	}

	mc.titleLabel = widget.NewLabel(cleanTitle(card.Movie.Title))
	mc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	mc.titleLabel.Wrapping = fyne.TextWrapWord
	mc.titleLabel.Alignment = fyne.TextAlignCenter

	mc.actions = container.NewVBox()
}

// buildActions recreates the buttons for the callbacks that are set
func (mc *MovieCard) buildActions() {
	mc.favoriteBtn = mc.newActionButton(IconFavorite, KeyAddToFavorites, mc.onFavorite)
	mc.trailerBtn = mc.newActionButton(IconTrailer, KeyWatchTrailer, mc.onTrailer)
	mc.detailsBtn = mc.newActionButton(IconDetails, KeyDetails, mc.onDetails)
	mc.removeBtn = mc.newActionButton(IconRemove, KeyRemove, mc.onRemove)
	if mc.removeBtn != nil {
		mc.removeBtn.Importance = widget.DangerImportance
	}

	mc.actions.RemoveAll()
	for _, btn := range []*widget.Button{mc.favoriteBtn, mc.trailerBtn, mc.detailsBtn, mc.removeBtn} {
		if btn != nil {
			mc.actions.Add(btn)
		}
	}
	mc.Refresh()
}

func (mc *MovieCard) newActionButton(icon, key string, onTap func(model.Movie)) *widget.Button {
	if onTap == nil {
		return nil
	}
	btn := widget.NewButton(fmt.Sprintf(IconLabelFormat, icon, mc.localization.GetText(key)), func() {
		onTap(mc.movie)
	})
	btn.Importance = widget.MediumImportance
	return btn
}

// CreateRenderer creates the widget renderer
func (mc *MovieCard) CreateRenderer() fyne.WidgetRenderer {
	items := []fyne.CanvasObject{}
	if mc.posterImage != nil {
		items = append(items, container.NewCenter(mc.posterImage))
	}
	items = append(items, mc.titleLabel, layout.NewSpacer(), mc.actions)

	body := container.NewVBox(items...)
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	bg.CornerRadius = 4
	bg.SetMinSize(fyne.NewSize(CardMinWidth, 0))

	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(body)))
}

// cleanTitle removes control whitespace that breaks label layout
func cleanTitle(title string) string {
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}
