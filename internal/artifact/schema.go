package artifact

import "fmt"

// Schema is the ordered list of feature columns the classifier was trained on.
// It is immutable once constructed.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a Schema from an ordered column list. Empty lists, empty
// names and duplicate names are rejected.
func NewSchema(columns []string) (Schema, error) {
	if len(columns) == 0 {
		return Schema{}, fmt.Errorf("schema has no columns")
	}
	cols := make([]string, len(columns))
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return Schema{}, fmt.Errorf("column %d has an empty name", i)
		}
		if prev, dup := index[c]; dup {
			return Schema{}, fmt.Errorf("column %q appears at positions %d and %d", c, prev, i)
		}
		cols[i] = c
		index[c] = i
	}
	return Schema{columns: cols, index: index}, nil
}

// Columns returns a copy of the column names in training order.
func (s Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.columns)
}

// Column returns the name at position i.
func (s Schema) Column(i int) string {
	return s.columns[i]
}

// Index returns the position of name, or false if the schema lacks it.
func (s Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Has reports whether the schema contains name.
func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}
