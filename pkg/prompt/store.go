// Package prompt loads and queries the CSV prompt data that drives the site.
//
// Records are kept in CSV row order and never deduplicated or sorted; the
// rendered pages and the JSON query endpoints both rely on that ordering.
package prompt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one prompt entry parsed from a CSV row.
type Record struct {
	Act         string `json:"act"`
	Prompt      string `json:"prompt"`
	ForDevs     bool   `json:"for_devs"`
	Contributor string `json:"contributor,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// DataLoadError reports a CSV source that could not be loaded: the file is
// missing, unreadable, or its header row is malformed.
type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Load reads one or more CSV files into a single ordered record sequence.
// Each call re-reads from disk so a developer editing the CSV sees changes
// without restarting the dev server.
func Load(paths ...string) ([]Record, error) {
	var records []Record
	for _, path := range paths {
		recs, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// column indexes for one file, resolved from its header row.
type columns struct {
	act         int
	prompt      int
	forDevs     int
	contributor int
	tags        int
}

func loadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows are validated against the header below

	header, err := r.Read()
	if err == io.EOF {
		return nil, &DataLoadError{Path: path, Reason: "missing header row"}
	}
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "cannot read header", Err: err}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: err.Error()}
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Path: path, Reason: "malformed row", Err: err}
		}
		records = append(records, Record{
			Act:         field(row, cols.act),
			Prompt:      field(row, cols.prompt),
			ForDevs:     parseBool(field(row, cols.forDevs)),
			Contributor: field(row, cols.contributor),
			Tags:        field(row, cols.tags),
		})
	}
	return records, nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{act: -1, prompt: -1, forDevs: -1, contributor: -1, tags: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "act":
			cols.act = i
		case "prompt":
			cols.prompt = i
		case "for_devs":
			cols.forDevs = i
		case "contributor":
			cols.contributor = i
		case "tags", "techstack":
			cols.tags = i
		}
	}
	if cols.act == -1 || cols.prompt == -1 {
		return cols, fmt.Errorf("header must contain 'act' and 'prompt' columns")
	}
	return cols, nil
}

// field returns the value at index i, or "" when the column is absent or the
// row is shorter than the header.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseBool is deliberately lenient: only a case-insensitive TRUE is true,
// everything else (including malformed text) is false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "TRUE")
}
