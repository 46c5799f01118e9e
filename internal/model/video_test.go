package model

import "testing"

func TestFirstTrailer(t *testing.T) {
	tests := []struct {
		name     string
		videos   []Video
		expected string
		found    bool
	}{
		{"none", nil, "", false},
		{"teaser only", []Video{{Key: "t", Site: "YouTube", Type: "Teaser"}}, "", false},
		{"vimeo trailer", []Video{{Key: "v", Site: "Vimeo", Type: "Trailer"}}, "", false},
		{
			"two youtube trailers",
			[]Video{
				{Key: "clip", Site: "YouTube", Type: "Clip"},
				{Key: "first", Site: "YouTube", Type: "Trailer"},
				{Key: "second", Site: "YouTube", Type: "Trailer"},
			},
			"first", true,
		},
	}

	for _, test := range tests {
		v, ok := FirstTrailer(test.videos)
		if ok != test.found || v.Key != test.expected {
			t.Errorf("%s: FirstTrailer() = (%q, %v), expected (%q, %v)", test.name, v.Key, ok, test.expected, test.found)
		}
	}
}
