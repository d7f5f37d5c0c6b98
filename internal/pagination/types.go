// Package pagination defines the row sources a paginated screen draws from.
//
// A Source only yields rows forward. An OffsetSource also reports where its
// page sits in the whole data set, which enables numbered page navigation.
package pagination

import (
	"iter"
	"slices"
)

// Field is one named value of a row.
type Field struct {
	Name  string
	Value any
}

// Row is an ordered set of fields. Field order defines column order.
type Row []Field

// Names returns the field names in order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the named field.
func (r Row) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Source yields the rows of the current page in order.
type Source interface {
	Rows() iter.Seq[Row]
}

// OffsetSource is a Source that knows the size of the whole data set and
// where its page sits in it. Limit is always at least 1.
type OffsetSource interface {
	Source
	Count() int
	Offset() int
	Limit() int
}

// Static is a fixed list of rows with no paging information.
type Static []Row

// Rows implements Source.
func (s Static) Rows() iter.Seq[Row] {
	return slices.Values(s)
}
