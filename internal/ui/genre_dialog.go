package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// GenreDialog lets the user pick one genre by display name
type GenreDialog struct {
	localization *Localization
	dialog       *dialog.ConfirmDialog
	genreSelect  *widget.Select
	onFilter     func(name string)
}

// NewGenreDialog creates a genre picker with selected preselected. onFilter
// receives the chosen name when the user presses Filter.
func NewGenreDialog(names []string, selected string, localization *Localization, parent fyne.Window, onFilter func(name string)) *GenreDialog {
	gd := &GenreDialog{
		localization: localization,
		onFilter:     onFilter,
	}

	gd.genreSelect = widget.NewSelect(names, nil)
	gd.genreSelect.PlaceHolder = localization.GetText(KeySelectGenre)
	if selected != "" {
		gd.genreSelect.SetSelected(selected)
	}

	content := container.NewVBox(
		widget.NewLabel(localization.GetText(KeySelectGenre)+":"),
		gd.genreSelect,
	)

	gd.dialog = dialog.NewCustomConfirm(
		localization.GetText(KeyFilterByGenre),
		localization.GetText(KeyFilter),
		localization.GetText(KeyCancel),
		content,
		gd.onConfirm,
		parent,
	)
	gd.dialog.Resize(fyne.NewSize(GenreDialogWidth, GenreDialogHeight))
	return gd
}

// Show displays the dialog
func (gd *GenreDialog) Show() {
	gd.dialog.Show()
}

func (gd *GenreDialog) onConfirm(ok bool) {
	if !ok || gd.onFilter == nil {
		return
	}
	gd.onFilter(gd.genreSelect.Selected)
}
