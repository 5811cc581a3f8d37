package nfo

import (
	"encoding/xml"
	"fmt"

	"github.com/gopak/csv2nfo/internal/catalog"
)

// Header is prepended to every document; scrapers commonly emit the same line.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>` + "\n"

// Optional elements are *string: nil is omitted, a pointer to "" is written
// as an empty element. Struct field order is the document order.

type actor struct {
	Name  string `xml:"name"`
	Role  string `xml:"role"`
	Order string `xml:"order"`
	Thumb string `xml:"thumb"`
}

type uniqueID struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type rating struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type ratings struct {
	Rating []rating `xml:"rating"`
}

type videoStream struct {
	Codec    *string `xml:"codec,omitempty"`
	Aspect   *string `xml:"aspect,omitempty"`
	Width    *string `xml:"width,omitempty"`
	Height   *string `xml:"height,omitempty"`
	Duration *string `xml:"durationinseconds,omitempty"`
}

type audioStream struct {
	Codec    *string `xml:"codec,omitempty"`
	Language *string `xml:"language,omitempty"`
	Channels *string `xml:"channels,omitempty"`
}

type subtitleStream struct {
	Language *string `xml:"language,omitempty"`
}

type streamDetails struct {
	Video    *videoStream    `xml:"video,omitempty"`
	Audio    *audioStream    `xml:"audio,omitempty"`
	Subtitle *subtitleStream `xml:"subtitle,omitempty"`
}

type fileInfo struct {
	StreamDetails streamDetails `xml:"streamdetails"`
}

type movieDoc struct {
	XMLName xml.Name `xml:"movie"`

	Title         string   `xml:"title"`
	OriginalTitle *string  `xml:"originaltitle,omitempty"`
	SortTitle     *string  `xml:"sorttitle,omitempty"`
	Tag           *string  `xml:"tag,omitempty"`
	Set           *string  `xml:"set,omitempty"`
	Year          string   `xml:"year"`
	Ratings       *ratings `xml:"ratings,omitempty"`
	UserRating    *string  `xml:"userrating,omitempty"`
	Plot          *string  `xml:"plot,omitempty"`
	Tagline       *string  `xml:"tagline,omitempty"`
	Runtime       *string  `xml:"runtime,omitempty"`
	Thumb         *string  `xml:"thumb,omitempty"`
	Fanart        *string  `xml:"fanart,omitempty"`
	MPAA          *string  `xml:"mpaa,omitempty"`
	PlayCount     *string  `xml:"playcount,omitempty"`
	Genre         *string  `xml:"genre,omitempty"`
	Country       *string  `xml:"country,omitempty"`
	Premiered     *string  `xml:"premiered,omitempty"`
	Studio        *string  `xml:"studio,omitempty"`
	Credits       *string  `xml:"credits,omitempty"`
	Director      *string  `xml:"director,omitempty"`
	Trailer       *string  `xml:"trailer,omitempty"`

	Actors    []actor    `xml:"actor,omitempty"`
	UniqueIDs []uniqueID `xml:"uniqueid,omitempty"`
	FileInfo  *fileInfo  `xml:"fileinfo,omitempty"`
	DateAdded *string    `xml:"dateadded,omitempty"`
}

type tvShowDoc struct {
	XMLName xml.Name `xml:"tvshow"`

	Title         string     `xml:"title"`
	OriginalTitle *string    `xml:"originaltitle,omitempty"`
	Year          string     `xml:"year"`
	Plot          *string    `xml:"plot,omitempty"`
	Genre         *string    `xml:"genre,omitempty"`
	Studio        *string    `xml:"studio,omitempty"`
	Premiered     *string    `xml:"premiered,omitempty"`
	MPAA          *string    `xml:"mpaa,omitempty"`
	Thumb         *string    `xml:"thumb,omitempty"`
	Fanart        *string    `xml:"fanart,omitempty"`
	UniqueIDs     []uniqueID `xml:"uniqueid,omitempty"`
	Actors        []actor    `xml:"actor,omitempty"`
}

type episodeDoc struct {
	XMLName xml.Name `xml:"episodedetails"`

	Title     string     `xml:"title"`
	ShowTitle string     `xml:"showtitle"`
	Season    int        `xml:"season"`
	Episode   int        `xml:"episode"`
	Aired     *string    `xml:"aired,omitempty"`
	Plot      *string    `xml:"plot,omitempty"`
	Runtime   *string    `xml:"runtime,omitempty"`
	Rating    *string    `xml:"rating,omitempty"`
	Thumb     *string    `xml:"thumb,omitempty"`
	Director  *string    `xml:"director,omitempty"`
	Credits   *string    `xml:"credits,omitempty"`
	UniqueIDs []uniqueID `xml:"uniqueid,omitempty"`
	Actors    []actor    `xml:"actor,omitempty"`
	DateAdded *string    `xml:"dateadded,omitempty"`
}

type musicDoc struct {
	XMLName xml.Name `xml:"music"`

	Title       string  `xml:"title"`
	Artist      *string `xml:"artist,omitempty"`
	Album       *string `xml:"album,omitempty"`
	AlbumArtist *string `xml:"albumartist,omitempty"`
	Year        string  `xml:"year"`
	Genre       *string `xml:"genre,omitempty"`
	Track       *string `xml:"track,omitempty"`
	Duration    *string `xml:"duration,omitempty"`
	Label       *string `xml:"label,omitempty"`
	Thumb       *string `xml:"thumb,omitempty"`
	DateAdded   *string `xml:"dateadded,omitempty"`
}

// Encode renders rec as an indented XML document with Header.
func Encode(rec catalog.Record) ([]byte, error) {
	var doc any
	switch r := rec.(type) {
	case catalog.Movie:
		doc = movieFrom(r)
	case catalog.TvShow:
		doc = tvShowDoc{
			Title:         r.ShowTitle,
			OriginalTitle: r.OriginalTitle,
			Year:          r.Year,
			Plot:          r.Plot,
			Genre:         r.Genre,
			Studio:        r.Studio,
			Premiered:     r.Premiered,
			MPAA:          r.MPAA,
			Thumb:         r.Thumb,
			Fanart:        r.Fanart,
			UniqueIDs:     uniqueIDs(r.IMDbID, r.TMDbID),
			Actors:        actors(r.Actors),
		}
	case catalog.Episode:
		doc = episodeDoc{
			Title:     r.Title,
			ShowTitle: r.ShowTitle,
			Season:    r.Season,
			Episode:   r.Episode,
			Aired:     r.Aired,
			Plot:      r.Plot,
			Runtime:   r.Runtime,
			Rating:    r.Rating,
			Thumb:     r.Thumb,
			Director:  r.Director,
			Credits:   r.Credits,
			UniqueIDs: uniqueIDs(r.IMDbID, r.TMDbID),
			Actors:    actors(r.Actors),
			DateAdded: r.DateAdded,
		}
	case catalog.Music:
		doc = musicDoc{
			Title:       r.Title,
			Artist:      r.Artist,
			Album:       r.Album,
			AlbumArtist: r.AlbumArtist,
			Year:        r.Year,
			Genre:       r.Genre,
			Track:       r.Track,
			Duration:    r.Duration,
			Label:       r.Label,
			Thumb:       r.Thumb,
			DateAdded:   r.DateAdded,
		}
	default:
		return nil, fmt.Errorf("unsupported record type %T", rec)
	}
	b, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(Header)+len(b)+1)
	out = append(out, Header...)
	out = append(out, b...)
	return append(out, '\n'), nil
}

func movieFrom(r catalog.Movie) movieDoc {
	m := movieDoc{
		Title:         r.Title,
		OriginalTitle: r.OriginalTitle,
		SortTitle:     r.SortTitle,
		Tag:           r.Tag,
		Set:           r.Set,
		Year:          r.Year,
		UserRating:    r.UserRating,
		Plot:          r.Plot,
		Tagline:       r.Tagline,
		Runtime:       r.Runtime,
		Thumb:         r.Thumb,
		Fanart:        r.Fanart,
		MPAA:          r.MPAA,
		PlayCount:     r.PlayCount,
		Genre:         r.Genre,
		Country:       r.Country,
		Premiered:     r.Premiered,
		Studio:        r.Studio,
		Credits:       r.Credits,
		Director:      r.Director,
		Trailer:       r.Trailer,
		Actors:        actors(r.Actors),
		UniqueIDs:     uniqueIDs(r.IMDbID, r.TMDbID),
		DateAdded:     r.DateAdded,
	}
	if r.RatingIMDb != nil {
		m.Ratings = &ratings{Rating: []rating{{Name: "imdb", Value: *r.RatingIMDb}}}
	}

	var sd streamDetails
	if anySet(r.VideoCodec, r.VideoAspect, r.VideoWidth, r.VideoHeight, r.VideoDuration) {
		sd.Video = &videoStream{Codec: r.VideoCodec, Aspect: r.VideoAspect, Width: r.VideoWidth, Height: r.VideoHeight, Duration: r.VideoDuration}
	}
	if anySet(r.AudioCodec, r.AudioLanguage, r.AudioChannels) {
		sd.Audio = &audioStream{Codec: r.AudioCodec, Language: r.AudioLanguage, Channels: r.AudioChannels}
	}
	if r.SubtitleLanguage != nil {
		sd.Subtitle = &subtitleStream{Language: r.SubtitleLanguage}
	}
	if sd.Video != nil || sd.Audio != nil || sd.Subtitle != nil {
		m.FileInfo = &fileInfo{StreamDetails: sd}
	}
	return m
}

func actors(in []catalog.Actor) []actor {
	if len(in) == 0 {
		return nil
	}
	out := make([]actor, 0, len(in))
	for _, a := range in {
		out = append(out, actor{Name: a.Name, Role: a.Role, Order: a.Order, Thumb: a.Thumb})
	}
	return out
}

func uniqueIDs(imdb, tmdb *string) []uniqueID {
	var out []uniqueID
	if imdb != nil {
		out = append(out, uniqueID{Type: "imdb", Value: *imdb})
	}
	if tmdb != nil {
		out = append(out, uniqueID{Type: "tmdb", Value: *tmdb})
	}
	return out
}

func anySet(vals ...*string) bool {
	for _, v := range vals {
		if v != nil {
			return true
		}
	}
	return false
}
