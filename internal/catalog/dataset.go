package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const bom = "\ufeff"

// Dataset is the ordered content of one CSV file.
type Dataset struct {
	Path   string
	Header []string
	Rows   []Row
}

// Load reads a CSV file with a header row. A missing file yields an empty
// dataset and no error; callers treat it the same as a search with no match.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Dataset{Path: path}, nil
		}
		return Dataset{}, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	ds, err := Parse(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds.Path = path
	return ds, nil
}

// Parse decodes CSV from r. Short rows leave trailing columns absent.
func Parse(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return Dataset{}, nil
	}
	if err != nil {
		return Dataset{}, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	ds := Dataset{Header: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, err
		}
		line, _ := cr.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, h := range header {
			if i >= len(rec) {
				break
			}
			fields[h] = rec[i]
		}
		ds.Rows = append(ds.Rows, Row{Line: line, Fields: fields, Header: header})
	}
	return ds, nil
}
