package ui

import (
	"maps"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-explorer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	gridColumnsEntry *widget.Entry
	maxParallelEntry *widget.Entry
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences are written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.gridColumnsEntry = widget.NewEntry()
	sd.gridColumnsEntry.SetPlaceHolder("1-10")

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-10")

	languageOptions := slices.Sorted(maps.Keys(sd.settings.GetLanguageOptions()))
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyGridColumns)+":"),
		sd.gridColumnsEntry,

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)+":"),
		sd.maxParallelEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.gridColumnsEntry.SetText(strconv.Itoa(sd.settings.GetGridColumns()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelPosters()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings. Unparseable numbers keep the stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if cols, err := strconv.Atoi(sd.gridColumnsEntry.Text); err == nil {
		sd.settings.SetGridColumns(cols)
	}

	if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
		sd.settings.SetMaxParallelPosters(maxParallel)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
