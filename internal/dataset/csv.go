package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stlalpha/ansitube/internal/pagination"
)

// LoadCSV reads a CSV file whose first record names the columns.
func LoadCSV(path string) ([]pagination.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// ParseCSV decodes CSV records into rows. Cell text is typed where it reads
// as a number, a boolean or a timestamp; empty cells are null. Short records
// leave the missing columns out of the row.
func ParseCSV(r io.Reader) ([]pagination.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []pagination.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(rows)+1, err)
		}

		row := make(pagination.Row, 0, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row = append(row, pagination.Field{Name: name, Value: inferValue(record[i])})
		}
		rows = append(rows, row)
	}
}

// inferValue types the text of a CSV cell.
func inferValue(s string) any {
	switch strings.ToLower(s) {
	case "":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := parseInt(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, "0123456789") {
		return f
	}
	if t, ok := parseTime(s); ok {
		return t
	}
	return s
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
