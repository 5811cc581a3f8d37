package manager

import (
	"errors"

	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/gopak/csv2nfo/internal/nfo"
)

// Written is one file produced by a run.
type Written struct {
	Kind catalog.Kind
	Path string
}

// Failure is one record that could not be rendered. It never stops the run.
type Failure struct {
	Kind catalog.Kind
	Line int
	Err  error
}

// Reason classifies Err for reporting and metrics.
func (f Failure) Reason() string {
	var inv *catalog.InvalidFieldError
	switch {
	case catalog.IsMissingKey(f.Err):
		return "missing_key"
	case errors.Is(f.Err, nfo.ErrEmptyName):
		return "empty_name"
	case errors.As(f.Err, &inv):
		return "invalid_field"
	default:
		return "write"
	}
}

type Report struct {
	Written  []Written
	Failures []Failure
	// NoMatch lists the kinds whose search selected nothing.
	NoMatch []catalog.Kind
}

func (r Report) Count() int { return len(r.Written) }

func (r *Report) merge(o Report) {
	r.Written = append(r.Written, o.Written...)
	r.Failures = append(r.Failures, o.Failures...)
	r.NoMatch = append(r.NoMatch, o.NoMatch...)
}
