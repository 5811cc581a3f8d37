package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/csv2nfo/internal/assets"
	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/logging"
	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/match"
)

const showsCSV = `show_title,year,season,episode,title
Lost,2004,1,3,Tabula Rasa
Lost,2020,1,1,Reboot
`

const moviesCSV = `uniqueid_imdb,year,title
tt0133093,1999,The Matrix
tt0000001,2001
`

func newUI(t *testing.T) (*ConsoleUI, *bytes.Buffer, *bytes.Buffer, config.Config) {
	t.Helper()
	text.DisableColors()
	t.Cleanup(text.EnableColors)

	root := t.TempDir()
	csvDir := filepath.Join(root, "csv")
	if err := os.MkdirAll(csvDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range map[string]string{"tvshows.csv": showsCSV, "movies.csv": moviesCSV} {
		if err := os.WriteFile(filepath.Join(csvDir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.CSVDir = csvDir
	cfg.OutputDir = filepath.Join(root, "nfo")

	var out, logOut bytes.Buffer
	logging.SetOutput(&logOut, &logOut)
	t.Cleanup(func() { logging.SetOutput(os.Stdout, os.Stderr) })

	ui := NewConsoleUI(manager.New(cfg))
	ui.out = &out
	return ui, &out, &logOut, cfg
}

func TestSearch_PromptsForYear(t *testing.T) {
	ui, out, logOut, cfg := newUI(t)
	var asked *match.AmbiguousMatchError
	ui.askYear = func(amb *match.AmbiguousMatchError) (string, error) {
		asked = amb
		return "2020", nil
	}
	err := ui.Search(manager.Request{Term: "Lost", Kinds: []catalog.Kind{catalog.KindTvShow}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if asked == nil || len(asked.Candidates) != 2 {
		t.Fatalf("expected prompt with 2 candidates, got %+v", asked)
	}
	if !strings.Contains(out.String(), "2004") || !strings.Contains(out.String(), "2020") {
		t.Fatalf("candidate table missing years:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "tvshow.nfo")); err != nil {
		t.Fatalf("tvshow.nfo not written: %v", err)
	}
	if !strings.Contains(logOut.String(), "1 NFO file(s) created.") {
		t.Fatalf("summary missing:\n%s", logOut.String())
	}
}

func TestSearch_NoPromptReturnsAmbiguity(t *testing.T) {
	ui, _, _, _ := newUI(t)
	ui.NoPrompt()
	err := ui.Search(manager.Request{Term: "Lost", Kinds: []catalog.Kind{catalog.KindTvShow}})
	if !match.IsAmbiguous(err) {
		t.Fatalf("want ambiguity, got %v", err)
	}
}

func TestSearch_PromptError(t *testing.T) {
	ui, _, _, cfg := newUI(t)
	boom := errors.New("interrupt")
	ui.askYear = func(*match.AmbiguousMatchError) (string, error) { return "", boom }
	err := ui.Search(manager.Request{Term: "Lost", Kinds: []catalog.Kind{catalog.KindTvShow}})
	if !errors.Is(err, boom) {
		t.Fatalf("want prompt error, got %v", err)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written when the prompt fails")
	}
}

func TestSearch_UnknownYear(t *testing.T) {
	ui, _, _, _ := newUI(t)
	ui.askYear = func(*match.AmbiguousMatchError) (string, error) { return "1999", nil }
	err := ui.Search(manager.Request{Term: "Lost", Kinds: []catalog.Kind{catalog.KindTvShow}})
	if !errors.Is(err, match.ErrNoYearMatch) {
		t.Fatalf("want ErrNoYearMatch, got %v", err)
	}
}

func TestSearch_ReportsFailuresAndNoMatch(t *testing.T) {
	ui, _, logOut, _ := newUI(t)
	if err := ui.Search(manager.Request{Term: "tt0000001", Kinds: []catalog.Kind{catalog.KindMovie}}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	got := logOut.String()
	if !strings.Contains(got, "skipped movie") || !strings.Contains(got, `"title"`) {
		t.Fatalf("failure line missing:\n%s", got)
	}
	if !strings.Contains(got, "0 NFO file(s) created.") {
		t.Fatalf("summary missing:\n%s", got)
	}

	logOut.Reset()
	if err := ui.Search(manager.Request{Term: "nothing like this"}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(logOut.String(), "0 NFO files created. No matches found.") {
		t.Fatalf("no-match summary missing:\n%s", logOut.String())
	}
}

func TestIMDb(t *testing.T) {
	ui, _, logOut, cfg := newUI(t)
	if err := ui.IMDb("tt0133093", false); err != nil {
		t.Fatalf("IMDb: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "The.Matrix.1999.nfo")); err != nil {
		t.Fatalf("movie not written: %v", err)
	}
	if !strings.Contains(logOut.String(), "1 NFO file(s) created.") {
		t.Fatalf("summary missing:\n%s", logOut.String())
	}
}

func TestList_WritesNothing(t *testing.T) {
	ui, out, _, cfg := newUI(t)
	if err := ui.List("lost", []catalog.Kind{catalog.KindEpisode, catalog.KindMusic}, true); err != nil {
		t.Fatalf("List: %v", err)
	}
	got := out.String()
	for _, want := range []string{"episodes", "Tabula.Rasa", "Lost (2004)", "songs", "no matches"} {
		if !strings.Contains(got, want) {
			t.Fatalf("list output missing %q:\n%s", want, got)
		}
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Fatalf("list must not write")
	}
	if err := ui.List("  ", nil, false); !errors.Is(err, manager.ErrEmptyTerm) {
		t.Fatalf("want ErrEmptyTerm, got %v", err)
	}
}

func TestList_ShowsRecordErrors(t *testing.T) {
	ui, out, _, _ := newUI(t)
	if err := ui.List("tt0000001", []catalog.Kind{catalog.KindMovie}, false); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !strings.Contains(out.String(), "missing required field") {
		t.Fatalf("expected record error in table:\n%s", out.String())
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		rep  manager.Report
		want string
	}{
		{manager.Report{}, "0 NFO files created. No matches found."},
		{manager.Report{Written: []manager.Written{{Kind: catalog.KindMovie, Path: "a.nfo"}}}, "1 NFO file(s) created."},
		{manager.Report{Failures: []manager.Failure{{Kind: catalog.KindMovie, Line: 2, Err: errors.New("x")}}}, "0 NFO file(s) created."},
	}
	for _, c := range cases {
		if got := summary(c.rep); got != c.want {
			t.Fatalf("summary = %q, want %q", got, c.want)
		}
	}
}
