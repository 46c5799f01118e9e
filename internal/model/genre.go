package model

// Genre is a TMDB movie genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the payload of /genre/movie/list
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// GenreCatalog maps display names to genre ids for the genre picker.
// When several genres share a display name the first one wins.
type GenreCatalog struct {
	names []string
	ids   map[string]int
}

// NewGenreCatalog builds a catalog preserving API order
func NewGenreCatalog(genres []Genre) *GenreCatalog {
	c := &GenreCatalog{
		names: make([]string, 0, len(genres)),
		ids:   make(map[string]int, len(genres)),
	}
	for _, g := range genres {
		if g.Name == "" {
			continue
		}
		if _, exists := c.ids[g.Name]; exists {
			continue
		}
		c.ids[g.Name] = g.ID
		c.names = append(c.names, g.Name)
	}
	return c
}

// Names returns unique genre names in catalog order
func (c *GenreCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup returns the id for a display name
func (c *GenreCatalog) Lookup(name string) (int, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Default returns the preselected name, or "" for an empty catalog
func (c *GenreCatalog) Default() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[0]
}

// Len returns the number of selectable genres
func (c *GenreCatalog) Len() int {
	return len(c.names)
}
