package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewMovie_RequiredAndOptional(t *testing.T) {
	row := NewRow(2, map[string]string{"title": "The Matrix", "year": "1999", "plot": ""})
	m, err := NewMovie(row)
	if err != nil {
		t.Fatalf("NewMovie: %v", err)
	}
	if m.Plot == nil || *m.Plot != "" {
		t.Fatalf("present empty plot should be non-nil empty")
	}
	if m.Tagline != nil {
		t.Fatalf("absent tagline should be nil")
	}

	_, err = NewMovie(NewRow(7, map[string]string{"year": "1999"}))
	var mk *MissingKeyError
	if !errors.As(err, &mk) {
		t.Fatalf("want MissingKeyError, got %v", err)
	}
	if mk.Key != "title" || mk.Line != 7 || mk.Kind != KindMovie {
		t.Fatalf("unexpected error fields: %+v", mk)
	}
	if !IsMissingKey(err) {
		t.Fatalf("IsMissingKey should report true")
	}
}

func TestActors_OnlyCompleteGroups(t *testing.T) {
	row := NewRow(2, map[string]string{
		"title": "x", "year": "2000",
		"actor_1_name": "A", "actor_1_role": "RA", "actor_1_order": "0", "actor_1_thumb": "a.jpg",
		"actor_2_name": "B", "actor_2_role": "RB", "actor_2_order": "1",
		"actor_3_name": "C", "actor_3_role": "", "actor_3_order": "2", "actor_3_thumb": "",
	})
	m, err := NewMovie(row)
	if err != nil {
		t.Fatalf("NewMovie: %v", err)
	}
	want := []Actor{
		{Name: "A", Role: "RA", Order: "0", Thumb: "a.jpg"},
		{Name: "C", Role: "", Order: "2", Thumb: ""},
	}
	if diff := cmp.Diff(want, m.Actors); diff != "" {
		t.Fatalf("actors mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEpisode(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]string
		wantKey string
		invalid bool
	}{
		{"ok", map[string]string{"show_title": "Lost", "year": "2004", "season": "01", "episode": "3", "title": "Tabula Rasa"}, "", false},
		{"missing show", map[string]string{"year": "2004", "season": "1", "episode": "3", "title": "x"}, "show_title", false},
		{"missing episode", map[string]string{"show_title": "Lost", "year": "2004", "season": "1", "title": "x"}, "episode", false},
		{"bad season", map[string]string{"show_title": "Lost", "year": "2004", "season": "one", "episode": "3", "title": "x"}, "", true},
		{"negative", map[string]string{"show_title": "Lost", "year": "2004", "season": "1", "episode": "-3", "title": "x"}, "", true},
	}
	for _, c := range cases {
		e, err := NewEpisode(NewRow(2, c.fields))
		switch {
		case c.wantKey != "":
			var mk *MissingKeyError
			if !errors.As(err, &mk) || mk.Key != c.wantKey {
				t.Fatalf("%s: want missing %q, got %v", c.name, c.wantKey, err)
			}
		case c.invalid:
			var inv *InvalidFieldError
			if !errors.As(err, &inv) {
				t.Fatalf("%s: want InvalidFieldError, got %v", c.name, err)
			}
		default:
			if err != nil {
				t.Fatalf("%s: unexpected error %v", c.name, err)
			}
			if e.Season != 1 || e.Episode != 3 {
				t.Fatalf("%s: got S%d E%d", c.name, e.Season, e.Episode)
			}
		}
	}
}

func TestFromRow_Dispatch(t *testing.T) {
	rows := map[Kind]Row{
		KindMovie:  NewRow(2, map[string]string{"title": "a", "year": "1"}),
		KindTvShow: NewRow(2, map[string]string{"show_title": "a", "year": "1"}),
		KindMusic:  NewRow(2, map[string]string{"title": "a", "year": "1"}),
	}
	for k, row := range rows {
		rec, err := FromRow(k, row)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if rec.Kind() != k {
			t.Fatalf("want kind %s, got %s", k, rec.Kind())
		}
	}
	if _, err := FromRow(Kind("comic"), Row{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
