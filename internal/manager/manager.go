package manager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/logging"
	"github.com/gopak/csv2nfo/internal/match"
	"github.com/gopak/csv2nfo/internal/metrics"
	"github.com/gopak/csv2nfo/internal/nfo"
)

// ErrEmptyTerm rejects blank search terms, which would match every row.
var ErrEmptyTerm = errors.New("search term must not be empty")

// DefaultKinds are searched when the caller names none.
var DefaultKinds = []catalog.Kind{catalog.KindMovie, catalog.KindEpisode, catalog.KindMusic}

// imdbSearch finds a movie by its IMDb id.
var imdbSearch = match.Options{Mode: match.ModeColumnScoped, Column: "uniqueid_imdb", Dedupe: match.DedupeNone, ExactOnly: true}

type Request struct {
	Term  string
	Kinds []catalog.Kind
	// Directory places each file in a per-title (and per-season) folder.
	Directory bool
	// Year narrows column-scoped lookups to one year.
	Year string
}

type Manager struct {
	cfg      config.Config
	metrics  *metrics.Run
	datasets map[string]catalog.Dataset
}

func New(cfg config.Config) *Manager {
	return &Manager{
		cfg:      cfg,
		metrics:  metrics.NewRun(),
		datasets: map[string]catalog.Dataset{},
	}
}

func (m *Manager) Metrics() *metrics.Run { return m.metrics }

// plan is the matched rows of one kind, ready to render.
type plan struct {
	kind catalog.Kind
	rows []catalog.Row
}

// Run searches every requested kind and renders each match. Nothing is
// written when any kind fails to resolve (ambiguous show, unknown year,
// unreadable dataset); per-record failures are collected in the report.
func (m *Manager) Run(req Request) (Report, error) {
	started := time.Now()
	defer m.metrics.Finish(started)

	term := strings.TrimSpace(req.Term)
	if term == "" {
		return Report{}, ErrEmptyTerm
	}
	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}

	var plans []plan
	var rep Report
	for _, k := range kinds {
		ds, ok := m.cfg.Dataset(k)
		if !ok {
			return Report{}, fmt.Errorf("no dataset configured for %s", k)
		}
		opts := ds.Search.Options()
		res, err := m.Lookup(k, term)
		if err != nil {
			return Report{}, err
		}
		rows := res.Rows
		if req.Year != "" && opts.Mode == match.ModeColumnScoped && len(rows) > 0 {
			rows, err = match.Narrow(rows, req.Year)
			if err != nil {
				return Report{}, fmt.Errorf("%s %q: %w", k.Label(), term, err)
			}
		}
		if len(rows) == 0 {
			logging.Debug(fmt.Sprintf("%s: no match for %q", k, term))
			rep.NoMatch = append(rep.NoMatch, k)
			continue
		}
		// tvshow.nfo has a fixed name, so several shows cannot share a flat folder
		if k == catalog.KindTvShow && !req.Directory && len(rows) > 1 {
			return Report{}, &match.AmbiguousMatchError{Kind: k, Column: opts.Column, Term: term, Candidates: rows}
		}
		m.metrics.RowsMatched.WithLabelValues(string(k)).Add(float64(len(rows)))
		plans = append(plans, plan{kind: k, rows: rows})
	}

	for _, p := range plans {
		rep.merge(m.render(p, req.Directory))
	}
	return rep, nil
}

// Lookup loads kind's dataset and applies its configured search.
func (m *Manager) Lookup(kind catalog.Kind, term string) (match.Result, error) {
	ds, ok := m.cfg.Dataset(kind)
	if !ok {
		return match.Result{}, fmt.Errorf("no dataset configured for %s", kind)
	}
	rows, err := m.load(kind, ds)
	if err != nil {
		return match.Result{}, err
	}
	res, err := match.Search(rows, term, ds.Search.Options())
	if err != nil {
		return match.Result{}, fmt.Errorf("%s search: %w", kind, err)
	}
	logging.Debug(fmt.Sprintf("%s [%s]: %d of %d rows match %q (exact=%v)", kind, ds.Search.Mode, len(res.Rows), len(rows), term, res.Exact))
	return res, nil
}

// RenderIMDb renders the first movie whose uniqueid_imdb equals id.
func (m *Manager) RenderIMDb(id string, directory bool) (Report, error) {
	started := time.Now()
	defer m.metrics.Finish(started)

	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrEmptyTerm
	}
	ds, ok := m.cfg.Dataset(catalog.KindMovie)
	if !ok {
		return Report{}, fmt.Errorf("no dataset configured for %s", catalog.KindMovie)
	}
	rows, err := m.load(catalog.KindMovie, ds)
	if err != nil {
		return Report{}, err
	}
	res, err := match.Search(rows, id, imdbSearch)
	if err != nil {
		return Report{}, err
	}
	if res.Empty() {
		return Report{NoMatch: []catalog.Kind{catalog.KindMovie}}, nil
	}
	m.metrics.RowsMatched.WithLabelValues(string(catalog.KindMovie)).Inc()
	return m.render(plan{kind: catalog.KindMovie, rows: res.Rows[:1]}, directory), nil
}

func (m *Manager) pathOptions(kind catalog.Kind, directory bool) nfo.PathOptions {
	layout := nfo.LayoutFlat
	if directory {
		layout = nfo.DirectoryLayout(kind)
	}
	return nfo.PathOptions{Base: m.cfg.OutputDir, Layout: layout, Sanitize: m.cfg.SanitizeNames()}
}

// PlannedPath is where row would be written, without writing it.
func (m *Manager) PlannedPath(kind catalog.Kind, row catalog.Row, directory bool) (string, error) {
	rec, err := catalog.FromRow(kind, row)
	if err != nil {
		return "", err
	}
	return nfo.Path(rec, m.pathOptions(kind, directory))
}

func (m *Manager) render(p plan, directory bool) Report {
	r := nfo.NewRenderer(m.pathOptions(p.kind, directory))

	var rep Report
	for _, row := range p.rows {
		path, err := r.RenderRow(p.kind, row)
		if err != nil {
			f := Failure{Kind: p.kind, Line: row.Line, Err: err}
			m.metrics.RecordErrors.WithLabelValues(string(p.kind), f.Reason()).Inc()
			logging.Debug(fmt.Sprintf("%s [line %d]: %v", p.kind, row.Line, err))
			rep.Failures = append(rep.Failures, f)
			continue
		}
		m.metrics.FilesWritten.WithLabelValues(string(p.kind)).Inc()
		logging.Debug(fmt.Sprintf("%s [line %d]: wrote %s", p.kind, row.Line, path))
		rep.Written = append(rep.Written, Written{Kind: p.kind, Path: path})
	}
	return rep
}

// load reads each file once per Manager; episodes and shows usually share one.
func (m *Manager) load(kind catalog.Kind, ds config.Dataset) ([]catalog.Row, error) {
	path := m.cfg.DatasetPath(ds)
	d, ok := m.datasets[path]
	if !ok {
		var err error
		d, err = catalog.Load(path)
		if err != nil {
			return nil, err
		}
		m.datasets[path] = d
		if len(d.Rows) == 0 {
			logging.Debug(fmt.Sprintf("%s: dataset %s is missing or empty", kind, path))
		}
	}
	m.metrics.RowsScanned.WithLabelValues(string(kind)).Add(float64(len(d.Rows)))
	return d.Rows, nil
}
