package ui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/config"
	"github.com/ytget/movie-explorer/internal/model"
)

// Browser is the controller surface driven by the root window
type Browser interface {
	State() model.ViewState
	ShowLatest(ctx context.Context) error
	Back(ctx context.Context) error
	ShowPopular(ctx context.Context) error
	ShowRandomPopular(ctx context.Context) error
	Search(ctx context.Context, query string) error
	FilterByGenre(ctx context.Context) error
	ShowFavorites(ctx context.Context) error
	AddToFavorite(m model.Movie) bool
	RemoveFromFavorite(ctx context.Context, m model.Movie) bool
	WatchTrailer(ctx context.Context, m model.Movie) error
	ShowDetails(ctx context.Context, m model.Movie) error
	SetMaxParallelPosters(n int)
}

var _ browser.View = (*RootUI)(nil)

// RootUI represents the main application window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	browser Browser
	// listings runs actions that replace the grid; a newer one supersedes
	// the running one. modals runs details, trailers and favorites without
	// touching the listing lane.
	listings *Dispatcher
	modals   *Dispatcher
	inFlight atomic.Int32

	// Toolbar
	settingsBtn  *widget.Button
	randomBtn    *widget.Button
	genreBtn     *widget.Button
	popularBtn   *widget.Button
	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	favoritesBtn *widget.Button
	backBtn      *widget.Button

	// Listing
	heading    *canvas.Text
	grid       *fyne.Container
	gridScroll *container.Scroll
	emptyLabel *widget.Label

	favorites   *FavoritesWindow
	genreDialog *GenreDialog

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI. SetBrowser must be called
// before Start.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, logger zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Logger(),
	}
	ui.listings = NewDispatcher(context.Background(), ui.logger.With().Str("lane", "listing").Logger())
	ui.modals = NewDispatcher(context.Background(), ui.logger.With().Str("lane", "modal").Logger())
	ui.favorites = NewFavoritesWindow(app, localization, ui.onRemoveFavorite)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetBrowser attaches the controller that serves UI actions
func (ui *RootUI) SetBrowser(b Browser) {
	ui.browser = b
}

// Start loads the initial latest-movies listing
func (ui *RootUI) Start() {
	ui.run("show_latest", ui.browser.ShowLatest)
}

// Stop cancels the running actions and waits for background work to finish
func (ui *RootUI) Stop() {
	ui.modals.Stop()
	ui.listings.Stop()
}

// wait blocks until both lanes are idle
func (ui *RootUI) wait() {
	ui.listings.Wait()
	ui.modals.Wait()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.randomBtn = widget.NewButton("", func() {
		ui.run("random_popular", ui.browser.ShowRandomPopular)
	})
	ui.genreBtn = widget.NewButton("", func() {
		ui.run("filter_by_genre", ui.browser.FilterByGenre)
	})
	ui.popularBtn = widget.NewButton("", func() {
		ui.run("show_popular", ui.browser.ShowPopular)
	})

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetText(ui.settings.GetLastSearch())
	// Enter in the search field submits like the Search button
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}
	ui.searchBtn = widget.NewButton("", ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance

	ui.favoritesBtn = widget.NewButton("", func() {
		ui.runModal("show_favorites", ui.browser.ShowFavorites)
	})
	ui.backBtn = widget.NewButton("", func() {
		ui.run("back", ui.browser.Back)
	})

	left := container.NewHBox(ui.settingsBtn, ui.randomBtn, ui.genreBtn, ui.popularBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn, ui.randomBtn, ui.genreBtn, ui.popularBtn)
	}
	toolbar := container.NewBorder(nil, nil, left, container.NewHBox(ui.searchBtn, ui.favoritesBtn), ui.searchEntry)

	ui.heading = canvas.NewText("", HeadingColor)
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}
	ui.heading.TextSize = theme.Size(theme.SizeNameHeadingText)
	headingRow := container.NewBorder(nil, nil, ui.backBtn, nil, ui.heading)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	top := container.NewVBox(toolbar, ui.notificationContainer, headingRow, widget.NewSeparator())

	ui.grid = container.NewGridWithColumns(ui.settings.GetGridColumns())
	ui.emptyLabel = widget.NewLabel("")
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.gridScroll = container.NewVScroll(container.NewVBox(ui.emptyLabel, ui.grid))

	ui.refreshUITexts()

	content := container.NewBorder(
		top,           // top
		nil,           // bottom
		nil,           // left
		nil,           // right
		ui.gridScroll, // center - movie grid
	)

	ui.window.SetContent(content)
	ui.logger.Debug().Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(availableLanguages)) {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.randomBtn.SetText(ui.iconText(IconRandom, KeyRandomMovie))
	ui.genreBtn.SetText(ui.iconText(IconGenre, KeyFilterByGenre))
	ui.popularBtn.SetText(ui.iconText(IconPopular, KeyPopularMovies))
	ui.searchBtn.SetText(ui.iconText(IconSearch, KeySearch))
	ui.favoritesBtn.SetText(ui.iconText(IconFavorite, KeyViewFavorites))
	ui.backBtn.SetText(ui.iconText(IconBack, KeyBack))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoMoviesToShow))

	state := model.ViewState{Kind: model.ViewLatest}
	if ui.browser != nil {
		state = ui.browser.State()
	}
	ui.heading.Text = ui.localization.HeadingText(state)
	ui.heading.Refresh()
}

func (ui *RootUI) iconText(icon, key string) string {
	return fmt.Sprintf(IconLabelFormat, icon, ui.localization.GetText(key))
}

// run starts a listing action, superseding the running listing action
func (ui *RootUI) run(name string, action Action) {
	ui.dispatch(ui.listings, name, action)
}

// runModal starts a details, trailer or favorites action. It supersedes only
// the previous modal action and leaves the listing lane running.
func (ui *RootUI) runModal(name string, action Action) {
	ui.dispatch(ui.modals, name, action)
}

// dispatch shows the loading strip while any action is in flight
func (ui *RootUI) dispatch(d *Dispatcher, name string, action Action) {
	ui.inFlight.Add(1)
	ui.showNotification(KeyLoading, true)
	d.Run(name, func(ctx context.Context) error {
		defer func() {
			if ui.inFlight.Add(-1) == 0 {
				ui.finishLoading()
			}
		}()
		return action(ctx)
	})
}

// onSearch submits the search entry. Blank input is rejected by the
// controller without cancelling the running action.
func (ui *RootUI) onSearch() {
	query := ui.searchEntry.Text
	if strings.TrimSpace(query) == "" {
		_ = ui.browser.Search(context.Background(), query)
		return
	}

	ui.settings.SetLastSearch(query)
	ui.run("search", func(ctx context.Context) error {
		return ui.browser.Search(ctx, query)
	})
}

// onAddFavorite handles the card's Add to Favorites button
func (ui *RootUI) onAddFavorite(m model.Movie) {
	ui.browser.AddToFavorite(m)
}

// onWatchTrailer handles the card's Watch Trailer button
func (ui *RootUI) onWatchTrailer(m model.Movie) {
	ui.runModal("watch_trailer", func(ctx context.Context) error {
		return ui.browser.WatchTrailer(ctx, m)
	})
}

// onShowDetails handles the card's Details button
func (ui *RootUI) onShowDetails(m model.Movie) {
	ui.runModal("show_details", func(ctx context.Context) error {
		return ui.browser.ShowDetails(ctx, m)
	})
}

// onRemoveFavorite handles the favorites card's Remove button
func (ui *RootUI) onRemoveFavorite(m model.Movie) {
	ui.runModal("remove_favorite", func(ctx context.Context) error {
		ui.browser.RemoveFromFavorite(ctx, m)
		return nil
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies stored preferences to the running window
func (ui *RootUI) onSettingsSaved() {
	ui.grid.Layout = layout.NewGridLayoutWithColumns(ui.settings.GetGridColumns())
	ui.grid.Refresh()

	if ui.browser != nil {
		ui.browser.SetMaxParallelPosters(ui.settings.GetMaxParallelPosters())
	}

	ui.onLanguageChange(ui.settings.GetLanguage())

	ui.logger.Info().
		Int("grid_columns", ui.settings.GetGridColumns()).
		Int("max_parallel_posters", ui.settings.GetMaxParallelPosters()).
		Str("language", ui.settings.GetLanguage()).
		Msg("Settings saved")
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// ShowListing replaces the grid content and heading
func (ui *RootUI) ShowListing(state model.ViewState, cards []browser.Card) {
	fyne.Do(func() {
		ui.renderListing(state, cards)
	})
}

func (ui *RootUI) renderListing(state model.ViewState, cards []browser.Card) {
	ui.heading.Text = ui.localization.HeadingText(state)
	ui.heading.Refresh()

	objects := make([]fyne.CanvasObject, 0, len(cards))
	for _, card := range cards {
		mc := NewMovieCard(card, ui.localization)
		mc.SetCallbacks(ui.onAddFavorite, ui.onWatchTrailer, ui.onShowDetails)
		objects = append(objects, mc)
	}
	ui.grid.Objects = objects
	ui.grid.Refresh()

	if len(cards) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.gridScroll.ScrollToTop()
}

// ShowFavorites renders the favorites window
func (ui *RootUI) ShowFavorites(cards []browser.Card) {
	fyne.Do(func() {
		ui.favorites.Show(cards)
	})
}

// ShowDetails opens the details dialog
func (ui *RootUI) ShowDetails(details browser.Details) {
	fyne.Do(func() {
		NewDetailsDialog(details, ui.localization, ui.window).Show()
	})
}

// ChooseGenre opens the genre picker; the filter runs as a new action
func (ui *RootUI) ChooseGenre(names []string, selected string, confirm func(ctx context.Context, name string)) {
	fyne.Do(func() {
		ui.genreDialog = NewGenreDialog(names, selected, ui.localization, ui.window, func(name string) {
			ui.run("apply_genre", func(ctx context.Context) error {
				confirm(ctx, name)
				return ctx.Err()
			})
		})
		ui.genreDialog.Show()
	})
}

// Notify shows a notice in a dialog and mirrors it in the notification panel
func (ui *RootUI) Notify(notice browser.Notice) {
	ui.logger.Debug().
		Str("level", notice.Level.String()).
		Str("code", string(notice.Code)).
		Msg("Notice")

	fyne.Do(func() {
		text := ui.localization.NoticeText(notice)
		switch notice.Level {
		case browser.NoticeError:
			dialog.ShowError(errors.New(text), ui.window)
		default:
			dialog.ShowInformation(ui.localization.GetText(KeyInfo), text, ui.window)
		}
		ui.setNotification(text, false)
		ui.scheduleHide(text)
	})
}

// showNotification displays the text for key in the notification panel under
// the toolbar. When spinning is true, a spinner is shown to indicate
// background activity.
func (ui *RootUI) showNotification(key string, spinning bool) {
	fyne.Do(func() {
		ui.setNotification(ui.localization.GetText(key), spinning)
	})
}

func (ui *RootUI) setNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// finishLoading hides the spinner, and the panel if it still shows the
// loading message
func (ui *RootUI) finishLoading() {
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		if ui.notificationLabel.Text == ui.localization.GetText(KeyLoading) {
			ui.notificationContainer.Hide()
		}
	})
}

// scheduleHide hides the panel after a delay unless its message changed
func (ui *RootUI) scheduleHide(message string) {
	go func() {
		<-time.After(NotificationAutoHide)
		fyne.Do(func() {
			if ui.notificationLabel.Text == message && !ui.notificationSpinner.Visible() {
				ui.notificationContainer.Hide()
			}
		})
	}()
}
