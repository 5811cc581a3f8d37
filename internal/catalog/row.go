package catalog

import (
	"sort"
	"strings"
)

// Row is one dataset line keyed by header name.
type Row struct {
	// Line is the 1-based line number in the source file (header is line 1).
	Line   int
	Fields map[string]string
	// Header keeps the column order so scans are deterministic.
	Header []string
}

// Get returns the value of key and whether the row has that column at all.
func (r Row) Get(key string) (string, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Values returns the row's values in header order, skipping absent columns.
func (r Row) Values() []string {
	out := make([]string, 0, len(r.Header))
	for _, h := range r.Header {
		if v, ok := r.Fields[h]; ok {
			out = append(out, v)
		}
	}
	return out
}

// IdentityKey is the (title, year) pair used to fold duplicate rows.
func (r Row) IdentityKey(titleKey string) string {
	title, _ := r.Get(titleKey)
	year, _ := r.Get("year")
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.TrimSpace(year)
}

// NewRow builds a Row from a plain map; the header is sorted for stable scans.
// Loaders should prefer the header order of the source file.
func NewRow(line int, fields map[string]string, header ...string) Row {
	if len(header) == 0 {
		header = make([]string, 0, len(fields))
		for k := range fields {
			header = append(header, k)
		}
		sort.Strings(header)
	}
	return Row{Line: line, Fields: fields, Header: header}
}
