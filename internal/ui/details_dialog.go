package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-explorer/internal/browser"
)

// DetailsDialog shows the poster, overview, release date, runtime and rating of a movie
type DetailsDialog struct {
	details      browser.Details
	localization *Localization
	dialog       *dialog.CustomDialog

	overviewLabel *widget.Label
	releaseLabel  *widget.Label
	runtimeLabel  *widget.Label
	ratingLabel   *widget.Label
}

// NewDetailsDialog creates a details dialog for parent
func NewDetailsDialog(details browser.Details, localization *Localization, parent fyne.Window) *DetailsDialog {
	dd := &DetailsDialog{
		details:      details,
		localization: localization,
	}
	dd.createUI(parent)
	return dd
}

// Show displays the dialog
func (dd *DetailsDialog) Show() {
	dd.dialog.Show()
}

func (dd *DetailsDialog) createUI(parent fyne.Window) {
	dd.overviewLabel = widget.NewLabel(dd.details.Overview)
	dd.overviewLabel.Wrapping = fyne.TextWrapWord

	dd.releaseLabel = dd.field(KeyReleaseDate, dd.details.ReleaseDate)
	dd.runtimeLabel = dd.field(KeyRuntime, dd.details.Runtime)
	dd.ratingLabel = dd.field(KeyRating, dd.details.Rating)

	info := container.NewVBox(
		dd.overviewLabel,
		widget.NewSeparator(),
		dd.releaseLabel,
		dd.runtimeLabel,
		dd.ratingLabel,
	)

	var content fyne.CanvasObject = info
	if dd.details.Poster != nil {
		img := canvas.NewImageFromImage(dd.details.Poster)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(DetailPosterWidth, DetailPosterHeight))
		content = container.NewBorder(nil, nil, container.NewCenter(img), nil, info)
	}

	dd.dialog = dialog.NewCustom(dd.details.Title, dd.localization.GetText(KeyClose), content, parent)
	dd.dialog.Resize(fyne.NewSize(DetailsDialogWidth, DetailsDialogHeight))
}

func (dd *DetailsDialog) field(key, value string) *widget.Label {
	label := widget.NewLabel(dd.localization.GetText(key) + ": " + value)
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}
