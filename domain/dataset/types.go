package dataset

// Table is the capability required of any tabular data source feeding the
// analysis: named columns of categorical-compatible values.
type Table interface {
	ColumnNames() []string
	Column(name string) ([]string, bool)
}

// MemoryTable is an in-memory, column-oriented Table. Column order follows
// insertion order.
type MemoryTable struct {
	headers []string
	columns map[string][]string
}

// NewMemoryTable creates an empty in-memory table
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{columns: make(map[string][]string)}
}

// AddColumn appends a named column. Re-adding an existing name replaces its
// values and keeps the original position. Returns the table for chaining.
func (t *MemoryTable) AddColumn(name string, values []string) *MemoryTable {
	if _, exists := t.columns[name]; !exists {
		t.headers = append(t.headers, name)
	}
	t.columns[name] = values
	return t
}

// ColumnNames returns the column names in insertion order
func (t *MemoryTable) ColumnNames() []string {
	names := make([]string, len(t.headers))
	copy(names, t.headers)
	return names
}

// Column returns the values of a named column and whether it exists
func (t *MemoryTable) Column(name string) ([]string, bool) {
	values, ok := t.columns[name]
	return values, ok
}

// RowCount returns the length of the longest column
func (t *MemoryTable) RowCount() int {
	max := 0
	for _, values := range t.columns {
		if len(values) > max {
			max = len(values)
		}
	}
	return max
}
