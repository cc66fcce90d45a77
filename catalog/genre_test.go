package catalog

import (
	"encoding/json"
	"testing"
)

func TestGenreContains(t *testing.T) {
	tests := []struct {
		name  string
		genre Genre
		query string
		want  bool
	}{
		{"single exact", Single("Action"), "Action", true},
		{"single substring", Single("Action/Adventure"), "Adventure", true},
		{"single case sensitive", Single("Action"), "action", false},
		{"single miss", Single("Drama"), "Comedy", false},
		{"list member", Multiple("Drama", "Comedy"), "Comedy", true},
		{"list no substring", Multiple("Romantic Comedy"), "Comedy", false},
		{"list case sensitive", Multiple("Drama"), "drama", false},
		{"empty list", Multiple(), "Drama", false},
		{"zero value", Genre{}, "Drama", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.genre.Contains(tt.query); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestGenreJSON(t *testing.T) {
	var single Genre
	if err := json.Unmarshal([]byte(`"Action"`), &single); err != nil {
		t.Fatalf("Failed to decode single genre: %v", err)
	}
	if single.IsMultiple() || single.String() != "Action" {
		t.Errorf("Unexpected single genre: %#v", single)
	}

	var list Genre
	if err := json.Unmarshal([]byte(` ["Drama", "Comedy"] `), &list); err != nil {
		t.Fatalf("Failed to decode genre list: %v", err)
	}
	if !list.IsMultiple() || list.String() != "Drama,Comedy" {
		t.Errorf("Unexpected genre list: %#v", list)
	}

	var null Genre
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("Failed to decode null genre: %v", err)
	}
	if null.Contains("Drama") {
		t.Error("Null genre should not contain anything")
	}

	for _, bad := range []string{`42`, `{"name":"Drama"}`, `["Drama", 3]`, `true`} {
		var g Genre
		if err := json.Unmarshal([]byte(bad), &g); err == nil {
			t.Errorf("Expected error decoding %s", bad)
		}
	}

	encoded, err := json.Marshal(struct {
		A Genre `json:"a"`
		B Genre `json:"b"`
		C Genre `json:"c"`
	}{Single("Action"), Multiple("Drama", "Comedy"), Multiple()})
	if err != nil {
		t.Fatalf("Failed to encode genres: %v", err)
	}
	if string(encoded) != `{"a":"Action","b":["Drama","Comedy"],"c":[]}` {
		t.Errorf("Unexpected encoding: %s", encoded)
	}
}

func TestGenreValuesAreCopies(t *testing.T) {
	names := []string{"Drama", "Comedy"}
	g := Multiple(names...)
	names[0] = "Horror"

	values := g.Values()
	values[1] = "Thriller"

	if g.String() != "Drama,Comedy" {
		t.Errorf("Genre was mutated through a shared slice: %s", g)
	}
}

func TestMovieString(t *testing.T) {
	tests := []struct {
		movie Movie
		want  string
	}{
		{Movie{Title: "A", Year: 2000, Genre: Single("Action"), Rating: 7.5}, "A (2000) - Action - Rating: 7.5"},
		{Movie{Title: "B", Year: 2010, Genre: Multiple("Drama", "Comedy"), Rating: 6.0}, "B (2010) - Drama,Comedy - Rating: 6"},
	}

	for _, tt := range tests {
		if got := tt.movie.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
