package nfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/natefinch/atomic"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Document is a rendered file that has not been written yet.
type Document struct {
	Path string
	Body []byte
}

// Build computes the path and body for rec without touching the disk.
func Build(rec catalog.Record, opts PathOptions) (Document, error) {
	p, err := Path(rec, opts)
	if err != nil {
		return Document{}, err
	}
	body, err := Encode(rec)
	if err != nil {
		return Document{}, err
	}
	return Document{Path: p, Body: body}, nil
}

// Write stores doc, creating parent directories and replacing any existing file.
func Write(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(doc.Path), dirPerms); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := atomic.WriteFile(doc.Path, bytes.NewReader(doc.Body)); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}
	// atomic.WriteFile leaves the temp file's 0600 mode on new files
	if err := os.Chmod(doc.Path, filePerms); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	return nil
}

// Renderer turns typed records into files under one set of path options.
type Renderer struct {
	opts PathOptions
}

func NewRenderer(opts PathOptions) *Renderer { return &Renderer{opts: opts} }

// Render builds and writes rec, returning the written path. Nothing is
// written when the record cannot be rendered.
func (r *Renderer) Render(rec catalog.Record) (string, error) {
	doc, err := Build(rec, r.opts)
	if err != nil {
		return "", err
	}
	if err := Write(doc); err != nil {
		return "", err
	}
	return doc.Path, nil
}

// RenderRow converts row to kind's record first; conversion errors such as
// *catalog.MissingKeyError are returned untouched.
func (r *Renderer) RenderRow(kind catalog.Kind, row catalog.Row) (string, error) {
	rec, err := catalog.FromRow(kind, row)
	if err != nil {
		return "", err
	}
	return r.Render(rec)
}
