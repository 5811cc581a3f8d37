package nfo

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gopak/csv2nfo/internal/catalog"
)

type episodeOut struct {
	XMLName   xml.Name `xml:"episodedetails"`
	Title     string   `xml:"title"`
	ShowTitle string   `xml:"showtitle"`
	Season    string   `xml:"season"`
	Episode   string   `xml:"episode"`
	Aired     string   `xml:"aired"`
}

type movieOut struct {
	XMLName xml.Name `xml:"movie"`
	Title   string   `xml:"title"`
	Year    string   `xml:"year"`
	Plot    *string  `xml:"plot"`
	Tagline *string  `xml:"tagline"`
	Ratings struct {
		Rating []struct {
			Name  string `xml:"name"`
			Value string `xml:"value"`
		} `xml:"rating"`
	} `xml:"ratings"`
	Actors []struct {
		Name  string `xml:"name"`
		Role  string `xml:"role"`
		Order string `xml:"order"`
		Thumb string `xml:"thumb"`
	} `xml:"actor"`
	UniqueIDs []struct {
		Type  string `xml:"type,attr"`
		Value string `xml:",chardata"`
	} `xml:"uniqueid"`
	Video *struct {
		Codec string `xml:"codec"`
	} `xml:"fileinfo>streamdetails>video"`
	Audio *struct {
		Codec string `xml:"codec"`
	} `xml:"fileinfo>streamdetails>audio"`
}

func TestEncode_Episode(t *testing.T) {
	row := catalog.NewRow(2, map[string]string{
		"show_title": "Lost", "year": "2004", "season": "1", "episode": "3",
		"title": "Tabula Rasa", "release_date": "2004-10-20",
	})
	ep, err := catalog.NewEpisode(row)
	if err != nil {
		t.Fatalf("NewEpisode: %v", err)
	}
	b, err := Encode(ep)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(string(b), Header) {
		t.Fatalf("missing xml header: %q", b)
	}
	var out episodeOut
	if err := xml.Unmarshal(b, &out); err != nil {
		t.Fatalf("xml.Unmarshal: %v", err)
	}
	want := episodeOut{XMLName: xml.Name{Local: "episodedetails"}, Title: "Tabula Rasa", ShowTitle: "Lost", Season: "1", Episode: "3", Aired: "2004-10-20"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("episode mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(string(b), "<plot>") {
		t.Fatalf("absent plot must be omitted: %s", b)
	}
}

func TestEncode_MovieOptionalAndNested(t *testing.T) {
	row := catalog.NewRow(2, map[string]string{
		"title": "Tom & Jerry <1>", "year": "1999", "plot": "", "ratings_imdb": "8.7",
		"actor_1_name": "Keanu", "actor_1_role": "Neo", "actor_1_order": "0", "actor_1_thumb": "k.jpg",
		"actor_2_name": "Carrie-Anne",
		"uniqueid_imdb": "tt0133093", "video_codec": "h264",
	})
	m, err := catalog.NewMovie(row)
	if err != nil {
		t.Fatalf("NewMovie: %v", err)
	}
	b, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out movieOut
	if err := xml.Unmarshal(b, &out); err != nil {
		t.Fatalf("xml.Unmarshal: %v", err)
	}
	if out.Title != "Tom & Jerry <1>" {
		t.Fatalf("title not escaped/round-tripped: %q", out.Title)
	}
	if out.Plot == nil || *out.Plot != "" {
		t.Fatalf("present empty plot should be written as empty element")
	}
	if out.Tagline != nil {
		t.Fatalf("absent tagline should be omitted")
	}
	if len(out.Ratings.Rating) != 1 || out.Ratings.Rating[0].Name != "imdb" || out.Ratings.Rating[0].Value != "8.7" {
		t.Fatalf("unexpected ratings: %+v", out.Ratings)
	}
	if len(out.Actors) != 1 || out.Actors[0].Role != "Neo" {
		t.Fatalf("only the complete actor should be written: %+v", out.Actors)
	}
	if len(out.UniqueIDs) != 1 || out.UniqueIDs[0].Type != "imdb" || out.UniqueIDs[0].Value != "tt0133093" {
		t.Fatalf("unexpected uniqueids: %+v", out.UniqueIDs)
	}
	if out.Video == nil || out.Video.Codec != "h264" {
		t.Fatalf("video stream missing")
	}
	if out.Audio != nil {
		t.Fatalf("audio stream should be omitted")
	}
}

func TestEncode_FieldOrderFixed(t *testing.T) {
	rec := catalog.Music{Title: "So What", Year: "1959", Artist: ptr("Miles Davis"), Genre: ptr("Jazz"), Album: ptr("Kind of Blue")}
	b, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(b)
	order := []string{"<music>", "<title>", "<artist>", "<album>", "<year>", "<genre>", "</music>"}
	last := -1
	for _, tag := range order {
		i := strings.Index(s, tag)
		if i <= last {
			t.Fatalf("tag %s out of order in:\n%s", tag, s)
		}
		last = i
	}
}

func TestEncode_TvShow(t *testing.T) {
	b, err := Encode(catalog.TvShow{ShowTitle: "Lost", Year: "2004"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := Header + "<tvshow>\n    <title>Lost</title>\n    <year>2004</year>\n</tvshow>\n"
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("tvshow mismatch (-want +got):\n%s", diff)
	}
}

func ptr(s string) *string { return &s }
