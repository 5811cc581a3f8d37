package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
)

var logfile *os.File
var verbose bool
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Init mirrors every message into path. An empty path disables the file sink.
func Init(path string) error {
	log.SetFlags(log.LstdFlags)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	log.SetOutput(os.Stderr)
}

// SetOutput redirects console output; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func Info(msg string) {
	fmt.Fprintln(stdout, msg)
	log.Println(msg)
}

func Success(msg string) {
	fmt.Fprintln(stdout, text.FgGreen.Sprint(msg))
	log.Println(msg)
}

func Warn(msg string) {
	fmt.Fprintln(stderr, text.FgYellow.Sprint(msg))
	log.Println("[WARN] " + msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, text.FgRed.Sprint(msg))
	log.Println("[ERROR] " + msg)
}

func Gray(msg string) {
	fmt.Fprintln(stdout, text.FgHiBlack.Sprint(msg))
	log.Println(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(stdout, text.FgHiBlack.Sprint(msg))
	log.Println("[DEBUG] " + msg)
}
