package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Record is one of Movie, TvShow, Episode or Music.
type Record interface {
	Kind() Kind
	SourceLine() int
}

// Actor is one complete actor_{n}_* group.
type Actor struct {
	Name  string
	Role  string
	Order string
	Thumb string
}

// MaxActors is the highest actor_{n} index read from a row.
const MaxActors = 3

type Movie struct {
	Line  int
	Title string
	Year  string

	OriginalTitle *string
	SortTitle     *string
	Tag           *string
	Set           *string
	RatingIMDb    *string
	UserRating    *string
	Plot          *string
	Tagline       *string
	Runtime       *string
	Thumb         *string
	Fanart        *string
	MPAA          *string
	PlayCount     *string
	Genre         *string
	Country       *string
	Premiered     *string
	Studio        *string
	Credits       *string
	Director      *string
	Trailer       *string
	Actors        []Actor
	IMDbID        *string
	TMDbID        *string

	VideoCodec       *string
	VideoAspect      *string
	VideoWidth       *string
	VideoHeight      *string
	VideoDuration    *string
	AudioCodec       *string
	AudioLanguage    *string
	AudioChannels    *string
	SubtitleLanguage *string

	DateAdded *string
}

func (Movie) Kind() Kind        { return KindMovie }
func (m Movie) SourceLine() int { return m.Line }

// TvShow is the show-level summary written as tvshow.nfo.
type TvShow struct {
	Line      int
	ShowTitle string
	Year      string

	OriginalTitle *string
	Plot          *string
	Genre         *string
	Studio        *string
	Premiered     *string
	MPAA          *string
	Thumb         *string
	Fanart        *string
	IMDbID        *string
	TMDbID        *string
	Actors        []Actor
}

func (TvShow) Kind() Kind        { return KindTvShow }
func (s TvShow) SourceLine() int { return s.Line }

type Episode struct {
	Line      int
	ShowTitle string
	Year      string
	Season    int
	Episode   int
	Title     string

	Aired     *string
	Plot      *string
	Runtime   *string
	Rating    *string
	Thumb     *string
	Director  *string
	Credits   *string
	IMDbID    *string
	TMDbID    *string
	Actors    []Actor
	DateAdded *string
}

func (Episode) Kind() Kind        { return KindEpisode }
func (e Episode) SourceLine() int { return e.Line }

type Music struct {
	Line  int
	Title string
	Year  string

	Artist      *string
	Album       *string
	AlbumArtist *string
	Genre       *string
	Track       *string
	Duration    *string
	Label       *string
	Thumb       *string
	DateAdded   *string
}

func (Music) Kind() Kind        { return KindMusic }
func (m Music) SourceLine() int { return m.Line }

// FromRow converts a row into the typed record for kind.
func FromRow(kind Kind, row Row) (Record, error) {
	switch kind {
	case KindMovie:
		return NewMovie(row)
	case KindTvShow:
		return NewTvShow(row)
	case KindEpisode:
		return NewEpisode(row)
	case KindMusic:
		return NewMusic(row)
	default:
		return nil, fmt.Errorf("unknown media kind: %q", kind)
	}
}

// fieldReader collects the first missing required key so constructors
// can read every field before checking once.
type fieldReader struct {
	kind Kind
	row  Row
	err  error
}

func (r *fieldReader) required(key string) string {
	v, ok := r.row.Get(key)
	if !ok && r.err == nil {
		r.err = &MissingKeyError{Kind: r.kind, Key: key, Line: r.row.Line}
	}
	return v
}

func (r *fieldReader) optional(key string) *string {
	v, ok := r.row.Get(key)
	if !ok {
		return nil
	}
	return &v
}

func (r *fieldReader) number(key string) int {
	v := r.required(key)
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err == nil && n < 0 {
		err = errors.New("negative number")
	}
	if err != nil {
		r.err = &InvalidFieldError{Kind: r.kind, Key: key, Value: v, Line: r.row.Line, Err: err}
		return 0
	}
	return n
}

// actors keeps an index only when all four sub-fields are present.
func (r *fieldReader) actors() []Actor {
	var out []Actor
	for n := 1; n <= MaxActors; n++ {
		prefix := "actor_" + strconv.Itoa(n) + "_"
		name, ok1 := r.row.Get(prefix + "name")
		role, ok2 := r.row.Get(prefix + "role")
		order, ok3 := r.row.Get(prefix + "order")
		thumb, ok4 := r.row.Get(prefix + "thumb")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		out = append(out, Actor{Name: name, Role: role, Order: order, Thumb: thumb})
	}
	return out
}

func NewMovie(row Row) (Movie, error) {
	r := &fieldReader{kind: KindMovie, row: row}
	m := Movie{
		Line:  row.Line,
		Title: r.required("title"),
		Year:  r.required("year"),

		OriginalTitle: r.optional("originaltitle"),
		SortTitle:     r.optional("sorttitle"),
		Tag:           r.optional("tag"),
		Set:           r.optional("set"),
		RatingIMDb:    r.optional("ratings_imdb"),
		UserRating:    r.optional("userrating"),
		Plot:          r.optional("plot"),
		Tagline:       r.optional("tagline"),
		Runtime:       r.optional("runtime"),
		Thumb:         r.optional("thumb"),
		Fanart:        r.optional("fanart"),
		MPAA:          r.optional("mpaa"),
		PlayCount:     r.optional("playcount"),
		Genre:         r.optional("genre"),
		Country:       r.optional("country"),
		Premiered:     r.optional("premiered"),
		Studio:        r.optional("studio"),
		Credits:       r.optional("credits"),
		Director:      r.optional("director"),
		Trailer:       r.optional("trailer"),
		Actors:        r.actors(),
		IMDbID:        r.optional("uniqueid_imdb"),
		TMDbID:        r.optional("uniqueid_tmdb"),

		VideoCodec:       r.optional("video_codec"),
		VideoAspect:      r.optional("video_aspect"),
		VideoWidth:       r.optional("video_width"),
		VideoHeight:      r.optional("video_height"),
		VideoDuration:    r.optional("video_duration"),
		AudioCodec:       r.optional("audio_codec"),
		AudioLanguage:    r.optional("audio_language"),
		AudioChannels:    r.optional("audio_channels"),
		SubtitleLanguage: r.optional("subtitle_language"),

		DateAdded: r.optional("dateadded"),
	}
	if r.err != nil {
		return Movie{}, r.err
	}
	return m, nil
}

func NewTvShow(row Row) (TvShow, error) {
	r := &fieldReader{kind: KindTvShow, row: row}
	s := TvShow{
		Line:      row.Line,
		ShowTitle: r.required("show_title"),
		Year:      r.required("year"),

		OriginalTitle: r.optional("originaltitle"),
		Plot:          r.optional("plot"),
		Genre:         r.optional("genre"),
		Studio:        r.optional("studio"),
		Premiered:     r.optional("premiered"),
		MPAA:          r.optional("mpaa"),
		Thumb:         r.optional("thumb"),
		Fanart:        r.optional("fanart"),
		IMDbID:        r.optional("uniqueid_imdb"),
		TMDbID:        r.optional("uniqueid_tmdb"),
		Actors:        r.actors(),
	}
	if r.err != nil {
		return TvShow{}, r.err
	}
	return s, nil
}

func NewEpisode(row Row) (Episode, error) {
	r := &fieldReader{kind: KindEpisode, row: row}
	e := Episode{
		Line:      row.Line,
		ShowTitle: r.required("show_title"),
		Year:      r.required("year"),
		Season:    r.number("season"),
		Episode:   r.number("episode"),
		Title:     r.required("title"),

		Aired:     r.optional("release_date"),
		Plot:      r.optional("plot"),
		Runtime:   r.optional("runtime"),
		Rating:    r.optional("rating"),
		Thumb:     r.optional("thumb"),
		Director:  r.optional("director"),
		Credits:   r.optional("credits"),
		IMDbID:    r.optional("uniqueid_imdb"),
		TMDbID:    r.optional("uniqueid_tmdb"),
		Actors:    r.actors(),
		DateAdded: r.optional("dateadded"),
	}
	if r.err != nil {
		return Episode{}, r.err
	}
	return e, nil
}

func NewMusic(row Row) (Music, error) {
	r := &fieldReader{kind: KindMusic, row: row}
	m := Music{
		Line:  row.Line,
		Title: r.required("title"),
		Year:  r.required("year"),

		Artist:      r.optional("artist"),
		Album:       r.optional("album"),
		AlbumArtist: r.optional("albumartist"),
		Genre:       r.optional("genre"),
		Track:       r.optional("track"),
		Duration:    r.optional("duration"),
		Label:       r.optional("label"),
		Thumb:       r.optional("thumb"),
		DateAdded:   r.optional("dateadded"),
	}
	if r.err != nil {
		return Music{}, r.err
	}
	return m, nil
}
