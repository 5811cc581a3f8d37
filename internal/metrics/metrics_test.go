package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRun_CountersAndTextfile(t *testing.T) {
	r := NewRun()
	r.RowsScanned.WithLabelValues("movie").Add(3)
	r.FilesWritten.WithLabelValues("movie").Inc()
	r.RecordErrors.WithLabelValues("movie", "missing_key").Inc()
	r.Finish(time.Now().Add(-time.Second))

	if got := testutil.ToFloat64(r.FilesWritten.WithLabelValues("movie")); got != 1 {
		t.Fatalf("files written = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.Duration); got < 1 {
		t.Fatalf("duration = %v, want >= 1", got)
	}

	p := filepath.Join(t.TempDir(), "out", "csv2nfo.prom")
	if err := r.WriteTextfile(p); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{
		`csv2nfo_rows_scanned_total{kind="movie"} 3`,
		`csv2nfo_record_errors_total{kind="movie",reason="missing_key"} 1`,
	} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("textfile missing %q:\n%s", want, b)
		}
	}
}

func TestRun_WriteTextfileEmptyPath(t *testing.T) {
	if err := NewRun().WriteTextfile(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}
