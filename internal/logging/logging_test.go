package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestLevelsAndFileSink(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)

	p := filepath.Join(t.TempDir(), "logs", "csv2nfo.log")
	if err := Init(p); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Info("info line")
	Success("written")
	Error("broken")
	Debug("hidden")
	SetVerbose(true)
	Debug("shown")
	SetVerbose(false)

	if got := out.String(); got != "info line\nwritten\nshown\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
	if got := errOut.String(); got != "broken\n" {
		t.Fatalf("unexpected stderr: %q", got)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"info line", "[ERROR] broken", "[DEBUG] shown"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("log file missing %q:\n%s", want, b)
		}
	}
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("debug line leaked into log while not verbose")
	}
}
