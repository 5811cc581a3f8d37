package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gopak/csv2nfo/internal/catalog"
)

// ErrNoYearMatch is returned by Narrow when no candidate has the year.
var ErrNoYearMatch = errors.New("no candidate matches the given year")

// AmbiguousMatchError carries the candidates of a lookup that needs a
// human (or a --year) to pick one.
type AmbiguousMatchError struct {
	Kind       catalog.Kind
	Column     string
	Term       string
	Candidates []catalog.Row
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d %s match %q on %s; narrow it down with a year", len(e.Candidates), e.Kind.Label(), e.Term, e.Column)
}

func IsAmbiguous(err error) bool {
	var e *AmbiguousMatchError
	return errors.As(err, &e)
}

// Years lists the distinct candidate years in candidate order.
func (e *AmbiguousMatchError) Years() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, row := range e.Candidates {
		y, _ := row.Get("year")
		y = strings.TrimSpace(y)
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}

// Narrow keeps the rows whose trimmed year equals year.
func Narrow(rows []catalog.Row, year string) ([]catalog.Row, error) {
	year = strings.TrimSpace(year)
	var out []catalog.Row
	for _, row := range rows {
		if y, ok := row.Get("year"); ok && strings.TrimSpace(y) == year {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoYearMatch, year)
	}
	return out, nil
}
