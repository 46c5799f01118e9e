package model

import (
	"encoding/json"
	"testing"
)

func TestMovieDetails_Placeholders(t *testing.T) {
	var d MovieDetails
	if err := json.Unmarshal([]byte(`{"id":7,"title":"X","runtime":null}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if d.RuntimeText() != PlaceholderNA {
		t.Errorf("Expected runtime placeholder, got %q", d.RuntimeText())
	}
	if d.ReleaseDateText() != PlaceholderNA {
		t.Errorf("Expected release date placeholder, got %q", d.ReleaseDateText())
	}
	if d.RatingText() != PlaceholderNA {
		t.Errorf("Expected rating placeholder, got %q", d.RatingText())
	}
	if d.OverviewText() != PlaceholderOverview {
		t.Errorf("Expected overview placeholder, got %q", d.OverviewText())
	}
}

func TestMovieDetails_Values(t *testing.T) {
	var d MovieDetails
	payload := `{"overview":"Plot","release_date":"2024-03-01","runtime":0,"vote_average":7.3}`
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if d.OverviewText() != "Plot" {
		t.Errorf("Unexpected overview %q", d.OverviewText())
	}
	if d.ReleaseDateText() != "2024-03-01" {
		t.Errorf("Unexpected release date %q", d.ReleaseDateText())
	}
	// zero is a present value, not an absent one
	if d.RuntimeText() != "0 minutes" {
		t.Errorf("Unexpected runtime %q", d.RuntimeText())
	}
	if d.RatingText() != "7.3 / 10" {
		t.Errorf("Unexpected rating %q", d.RatingText())
	}
}
