package nfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gopak/csv2nfo/internal/catalog"
)

// ErrEmptyName means a title reduced to nothing after cleaning.
var ErrEmptyName = errors.New("title is empty after sanitizing")

// TvShowFileName is the fixed name of show-level documents.
const TvShowFileName = "tvshow.nfo"

type Layout string

const (
	LayoutFlat              Layout = "flat"
	LayoutPerTitle          Layout = "per_title"
	LayoutPerTitleAndSeason Layout = "per_title_and_season"
)

// DirectoryLayout is the layout used for kind when per-item folders are asked for.
func DirectoryLayout(kind catalog.Kind) Layout {
	if kind == catalog.KindEpisode {
		return LayoutPerTitleAndSeason
	}
	return LayoutPerTitle
}

type PathOptions struct {
	Base     string
	Layout   Layout
	Sanitize bool
}

// Path returns the output file for rec. It depends only on rec and opts.
func Path(rec catalog.Record, opts PathOptions) (string, error) {
	clean := plain
	if opts.Sanitize {
		clean = Sanitize
	}
	var title, year, name string
	season := -1
	switch r := rec.(type) {
	case catalog.Movie:
		title, year = clean(r.Title), clean(r.Year)
		name = joinName(title, year)
	case catalog.Music:
		title, year = clean(r.Title), clean(r.Year)
		name = joinName(title, year)
	case catalog.TvShow:
		title, year = clean(r.ShowTitle), clean(r.Year)
		name = TvShowFileName
	case catalog.Episode:
		title, year = clean(r.ShowTitle), clean(r.Year)
		ep := clean(r.Title)
		if ep == "" {
			return "", &catalog.InvalidFieldError{Kind: r.Kind(), Key: "title", Value: r.Title, Line: r.Line, Err: ErrEmptyName}
		}
		season = r.Season
		name = joinName(title, year, fmt.Sprintf("S%02dE%02d", r.Season, r.Episode), ep)
	default:
		return "", fmt.Errorf("unsupported record type %T", rec)
	}
	if title == "" {
		return "", fmt.Errorf("line %d: %s: %w", rec.SourceLine(), rec.Kind(), ErrEmptyName)
	}

	dir := opts.Base
	switch opts.Layout {
	case "", LayoutFlat:
	case LayoutPerTitle, LayoutPerTitleAndSeason:
		dir = filepath.Join(dir, titleDir(title, year))
		if opts.Layout == LayoutPerTitleAndSeason && season >= 0 {
			dir = filepath.Join(dir, fmt.Sprintf("S%02d", season))
		}
	default:
		return "", fmt.Errorf("unknown layout: %q", opts.Layout)
	}
	return filepath.Join(dir, name), nil
}

func joinName(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".") + ".nfo"
}

// titleDir is "Title (Year)", or just the title when the year is blank.
func titleDir(title, year string) string {
	if year == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, year)
}
