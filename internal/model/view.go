package model

// ViewKind identifies which listing is currently displayed
type ViewKind string

const (
	ViewLatest  ViewKind = "latest"
	ViewRandom  ViewKind = "random"
	ViewPopular ViewKind = "popular"
	ViewSearch  ViewKind = "search"
	ViewGenre   ViewKind = "genre"
)

// String returns the string representation of ViewKind
func (k ViewKind) String() string {
	return string(k)
}

// ViewState is the listing currently shown in the main grid
type ViewState struct {
	Kind  ViewKind
	Query string // search text, set for ViewSearch
	Genre string // genre display name, set for ViewGenre
}
