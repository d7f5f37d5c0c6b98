package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"os"

	"github.com/tidwall/gjson"

	"github.com/stlalpha/ansitube/internal/pagination"
)

// ErrNotArray is returned for a JSON document that is not an array.
var ErrNotArray = errors.New("JSON document is not an array")

// LoadJSON reads a file holding an array of objects.
func LoadJSON(path string) ([]pagination.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rows, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// ParseJSON decodes an array of objects. Field order follows the document.
// Elements that are not objects become a single "value" field.
func ParseJSON(data []byte) ([]pagination.Row, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}

	var rows []pagination.Row
	doc.ForEach(func(_, elem gjson.Result) bool {
		rows = append(rows, rowOf(elem))
		return true
	})
	return rows, nil
}

func rowOf(obj gjson.Result) pagination.Row {
	if !obj.IsObject() {
		return pagination.Row{{Name: "value", Value: valueOf(obj)}}
	}
	var row pagination.Row
	obj.ForEach(func(key, value gjson.Result) bool {
		row = append(row, pagination.Field{Name: key.String(), Value: valueOf(value)})
		return true
	})
	return row
}

// valueOf maps a JSON value to the Go value shown in a cell. Integers stay
// integers, timestamps become time.Time and nested documents keep their raw
// JSON text.
func valueOf(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if i, err := parseInt(v.Raw); err == nil {
			return i
		}
		return v.Float()
	case gjson.String:
		if t, ok := parseTime(v.Str); ok {
			return t
		}
		return v.Str
	}
	return v.Raw
}

// Stream reads NDJSON rows from a file one line at a time.
type Stream struct {
	file *os.File
	path string
	err  error
}

// OpenNDJSON opens an NDJSON file for streaming.
func OpenNDJSON(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Stream{file: f, path: path}, nil
}

// Rows yields one row per non-blank line. Lines that are not valid JSON are
// logged and skipped. The sequence can be consumed once.
func (s *Stream) Rows() iter.Seq[pagination.Row] {
	return func(yield func(pagination.Row) bool) {
		s.err = scanNDJSON(s.file, s.path, yield)
	}
}

// Err returns the read error that ended the last iteration, if any.
func (s *Stream) Err() error { return s.err }

// Close closes the underlying file.
func (s *Stream) Close() error { return s.file.Close() }

// ParseNDJSON yields rows from r, one per line.
func ParseNDJSON(r io.Reader) iter.Seq[pagination.Row] {
	return func(yield func(pagination.Row) bool) {
		if err := scanNDJSON(r, "input", yield); err != nil {
			log.Printf("ERROR: Reading NDJSON: %v", err)
		}
	}
}

func scanNDJSON(r io.Reader, name string, yield func(pagination.Row) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(bytes.TrimSpace(text)) == 0 {
			continue
		}
		if !gjson.ValidBytes(text) {
			log.Printf("WARN: %s:%d: skipping invalid JSON line", name, line)
			continue
		}
		if !yield(rowOf(gjson.ParseBytes(text))) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}
