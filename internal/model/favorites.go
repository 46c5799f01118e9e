package model

// Favorites is the user-curated collection of bookmarked movies. It lives for
// the duration of the process only. Membership is decided by Movie.Equal, not
// by id.
type Favorites struct {
	items []Movie
}

// NewFavorites creates an empty favorites collection
func NewFavorites() *Favorites {
	return &Favorites{items: make([]Movie, 0)}
}

// Add appends the movie unless an equal record is already present.
// Returns false when the movie was already a favorite.
func (f *Favorites) Add(m Movie) bool {
	if f.Contains(m) {
		return false
	}
	f.items = append(f.items, m)
	return true
}

// Remove deletes the first equal record. Returns false when nothing matched.
func (f *Favorites) Remove(m Movie) bool {
	for i, item := range f.items {
		if item.Equal(m) {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains checks membership by full record equality
func (f *Favorites) Contains(m Movie) bool {
	for _, item := range f.items {
		if item.Equal(m) {
			return true
		}
	}
	return false
}

// Len returns the number of favorites
func (f *Favorites) Len() int {
	return len(f.items)
}

// Items returns a copy of the favorites in insertion order
func (f *Favorites) Items() []Movie {
	out := make([]Movie, len(f.items))
	copy(out, f.items)
	return out
}
