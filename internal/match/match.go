// Package match selects dataset rows for a search term.
//
// Two disciplines exist: a whole-row substring scan, and a column-scoped
// scan where exact (case-insensitive, trimmed) hits take priority over
// substring hits and rows may be folded by their (title, year) identity.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gopak/csv2nfo/internal/catalog"
)

type Mode string

const (
	ModeWholeRow     Mode = "whole_row"
	ModeColumnScoped Mode = "column_scoped"
)

type Dedupe string

const (
	DedupeNone     Dedupe = "none"
	DedupeIdentity Dedupe = "identity"
)

// Options configures one search. Column and Dedupe only apply to
// ModeColumnScoped.
type Options struct {
	Mode   Mode
	Column string
	Dedupe Dedupe
	// ExactOnly drops the substring fallback.
	ExactOnly bool
}

func (o Options) Validate() error {
	switch o.Mode {
	case ModeWholeRow:
		return nil
	case ModeColumnScoped:
		if strings.TrimSpace(o.Column) == "" {
			return errors.New("column_scoped search needs a column")
		}
	default:
		return fmt.Errorf("unknown search mode: %q", o.Mode)
	}
	switch o.Dedupe {
	case "", DedupeNone, DedupeIdentity:
		return nil
	default:
		return fmt.Errorf("unknown dedupe mode: %q", o.Dedupe)
	}
}

// Result holds the selected rows in dataset order.
type Result struct {
	Rows []catalog.Row
	// Exact is set when a column-scoped search resolved on exact hits.
	Exact bool
}

func (r Result) Empty() bool { return len(r.Rows) == 0 }

// Search runs the discipline selected by opts.
func Search(rows []catalog.Row, term string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Mode == ModeWholeRow {
		return Result{Rows: WholeRow(rows, term)}, nil
	}
	return ColumnScoped(rows, term, opts.Column, opts.Dedupe, opts.ExactOnly), nil
}

// WholeRow returns every row where term is a case-insensitive substring of
// any value. A row is listed once no matter how many fields hit.
func WholeRow(rows []catalog.Row, term string) []catalog.Row {
	needle := strings.ToLower(term)
	var out []catalog.Row
	for _, row := range rows {
		for _, v := range row.Values() {
			if strings.Contains(strings.ToLower(v), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// ColumnScoped compares term against column only. Exact hits win over
// substring hits; with DedupeIdentity the first row per (title, year) is kept.
func ColumnScoped(rows []catalog.Row, term, column string, dedupe Dedupe, exactOnly bool) Result {
	needle := strings.ToLower(strings.TrimSpace(term))
	var exact, partial []catalog.Row
	for _, row := range rows {
		v, ok := row.Get(column)
		if !ok {
			continue
		}
		hay := strings.ToLower(strings.TrimSpace(v))
		switch {
		case hay == needle:
			exact = append(exact, row)
		case !exactOnly && strings.Contains(hay, needle):
			partial = append(partial, row)
		}
	}
	res := Result{Rows: partial}
	if len(exact) > 0 {
		res = Result{Rows: exact, Exact: true}
	}
	if dedupe == DedupeIdentity {
		res.Rows = firstByIdentity(res.Rows, column)
	}
	return res
}

func firstByIdentity(rows []catalog.Row, column string) []catalog.Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		k := row.IdentityKey(column)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, row)
	}
	return out
}
