// Package dataset loads the rows shown by the viewer from JSON, NDJSON and
// CSV files, and builds a demo data set.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/stlalpha/ansitube/internal/pagination"
)

// ErrUnknownFormat is returned for files whose extension names no supported
// format.
var ErrUnknownFormat = errors.New("unknown data format")

// Format is a supported file format.
type Format int

const (
	FormatJSON   Format = iota // a single array of objects
	FormatNDJSON               // one object per line, read forward only
	FormatCSV                  // header line followed by records
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatNDJSON:
		return "ndjson"
	case FormatCSV:
		return "csv"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".ndjson", ".jsonl":
		return FormatNDJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads every row of the file at path.
func Load(path string) ([]pagination.Row, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return LoadJSON(path)
	case FormatCSV:
		return LoadCSV(path)
	default:
		stream, err := OpenNDJSON(path)
		if err != nil {
			return nil, err
		}
		defer stream.Close()
		var rows []pagination.Row
		for row := range stream.Rows() {
			rows = append(rows, row)
		}
		return rows, stream.Err()
	}
}

// timeLayouts are tried in order when a text value may hold a timestamp.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

func parseTime(s string) (time.Time, bool) {
	// Cheap shape check before trying the layouts: YYYY-MM-DD...
	if len(s) < 19 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
