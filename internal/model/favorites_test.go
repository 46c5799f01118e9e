package model

import "testing"

func TestFavorites_AddTwiceKeepsOneCopy(t *testing.T) {
	favs := NewFavorites()
	m := Movie{ID: 1, Title: "A", GenreIDs: []int{28, 12}}

	if !favs.Add(m) {
		t.Fatal("Expected first Add to succeed")
	}
	if favs.Add(m) {
		t.Error("Expected second Add to report already present")
	}
	if favs.Len() != 1 {
		t.Errorf("Expected 1 favorite, got %d", favs.Len())
	}
}

func TestFavorites_RemoveAbsentLeavesCollection(t *testing.T) {
	favs := NewFavorites()
	favs.Add(Movie{ID: 1, Title: "A"})
	favs.Add(Movie{ID: 2, Title: "B"})

	if favs.Remove(Movie{ID: 3, Title: "C"}) {
		t.Error("Expected Remove of absent movie to report false")
	}

	items := favs.Items()
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("Expected collection unchanged, got %+v", items)
	}
}

func TestFavorites_RemovePreservesOrder(t *testing.T) {
	favs := NewFavorites()
	for i := int64(1); i <= 3; i++ {
		favs.Add(Movie{ID: i})
	}

	if !favs.Remove(Movie{ID: 2}) {
		t.Fatal("Expected Remove to succeed")
	}

	items := favs.Items()
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Errorf("Unexpected order after remove: %+v", items)
	}
}

// Membership is by full record equality: the same id with a different shape
// is a different favorite.
func TestFavorites_DeepEqualityNotID(t *testing.T) {
	favs := NewFavorites()
	first := Movie{ID: 42, Title: "Same", Popularity: 10.5}
	reshaped := Movie{ID: 42, Title: "Same", Popularity: 11.0}

	favs.Add(first)
	if !favs.Add(reshaped) {
		t.Error("Expected reshaped record with same id to be added")
	}
	if favs.Len() != 2 {
		t.Errorf("Expected 2 favorites, got %d", favs.Len())
	}
}

func TestFavorites_ItemsIsCopy(t *testing.T) {
	favs := NewFavorites()
	favs.Add(Movie{ID: 1, Title: "A"})

	items := favs.Items()
	items[0].Title = "mutated"

	if favs.Items()[0].Title != "A" {
		t.Error("Items should not expose internal storage")
	}
}

func TestMovie_Equal(t *testing.T) {
	base := Movie{ID: 1, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{1, 2}}

	tests := []struct {
		name     string
		other    Movie
		expected bool
	}{
		{"identical", Movie{ID: 1, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{1, 2}}, true},
		{"different genre order", Movie{ID: 1, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{2, 1}}, false},
		{"missing poster", Movie{ID: 1, Title: "A", GenreIDs: []int{1, 2}}, false},
		{"different id", Movie{ID: 2, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{1, 2}}, false},
	}

	for _, test := range tests {
		if result := base.Equal(test.other); result != test.expected {
			t.Errorf("%s: Equal() = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestMovie_HasPoster(t *testing.T) {
	if (Movie{}).HasPoster() {
		t.Error("Empty poster path should report no poster")
	}
	if !(Movie{PosterPath: "/x.jpg"}).HasPoster() {
		t.Error("Non-empty poster path should report a poster")
	}
}
