package tabular

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling.
var (
	ErrUnknownColumn = errors.New("tabular: unknown column")
	ErrDuplicateCol  = errors.New("tabular: duplicate column")
	ErrRaggedRow     = errors.New("tabular: row width does not match columns")
	ErrRowOutOfRange = errors.New("tabular: row index out of range")
	ErrEmptyFrame    = errors.New("tabular: frame requires at least one column")
)

// Frame is an ordered, read-only tabular data source: named columns in
// declaration order and rows in insertion order. The presentation pipeline
// only ever reads a Frame; transformations on tables never touch it.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]any

	groupColumn string
	rowGroups   []string
	groupOrder  []string
}

// FromRecords builds a Frame from a column list and row-major records. Every
// record must have exactly one value per column.
func FromRecords(columns []string, records [][]any) (*Frame, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyFrame
	}

	f := &Frame{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if _, exists := f.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCol, name)
		}
		f.index[name] = i
	}

	f.rows = make([][]any, len(records))
	for i, record := range records {
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%w: record %d has %d values, want %d", ErrRaggedRow, i, len(record), len(columns))
		}
		f.rows[i] = append([]any(nil), record...)
	}

	return f, nil
}

// FromMaps builds a Frame from keyed records. Columns fixes the column order;
// missing keys become nil values, unknown keys are an error.
func FromMaps(columns []string, records []map[string]any) (*Frame, error) {
	rows := make([][]any, len(records))
	known := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		known[name] = struct{}{}
	}

	for i, record := range records {
		for key := range record {
			if _, ok := known[key]; !ok {
				return nil, fmt.Errorf("%w: %q in record %d", ErrUnknownColumn, key, i)
			}
		}
		row := make([]any, len(columns))
		for j, name := range columns {
			row[j] = record[name]
		}
		rows[i] = row
	}

	return FromRecords(columns, rows)
}

// GroupBy returns a copy of the frame grouped by the values of the named
// column. Group order follows first appearance; row order is preserved. The
// group column stays addressable by predicates but renderers typically
// suppress it in favour of row-group labels.
func (f *Frame) GroupBy(column string) (*Frame, error) {
	pos, ok := f.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	out := f.clone()
	out.groupColumn = column
	out.rowGroups = make([]string, len(f.rows))
	out.groupOrder = nil

	seen := make(map[string]struct{})
	for i, row := range f.rows {
		name := formatGroupKey(row[pos])
		out.rowGroups[i] = name
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			out.groupOrder = append(out.groupOrder, name)
		}
	}

	return out, nil
}

func (f *Frame) clone() *Frame {
	out := &Frame{
		columns:     append([]string(nil), f.columns...),
		index:       make(map[string]int, len(f.index)),
		rows:        f.rows,
		groupColumn: f.groupColumn,
		rowGroups:   append([]string(nil), f.rowGroups...),
		groupOrder:  append([]string(nil), f.groupOrder...),
	}
	for name, i := range f.index {
		out.index[name] = i
	}
	return out
}

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// Value returns the value at the given row for the named column.
func (f *Frame) Value(row int, column string) (any, error) {
	if row < 0 || row >= len(f.rows) {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	pos, ok := f.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return f.rows[row][pos], nil
}

// Row returns a read-only view over a single data row.
func (f *Frame) Row(i int) (Row, error) {
	if i < 0 || i >= len(f.rows) {
		return Row{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	return Row{frame: f, index: i}, nil
}

// GroupColumn returns the column the frame is grouped by, or "" when the
// frame is ungrouped.
func (f *Frame) GroupColumn() string {
	return f.groupColumn
}

// Grouped reports whether GroupBy has been applied.
func (f *Frame) Grouped() bool {
	return f.groupColumn != ""
}

// Groups returns distinct group names in first-appearance order. Empty for
// ungrouped frames.
func (f *Frame) Groups() []string {
	return append([]string(nil), f.groupOrder...)
}

// RowGroup returns the group name assigned to a row, or "" when ungrouped.
func (f *Frame) RowGroup(i int) string {
	if i < 0 || i >= len(f.rowGroups) {
		return ""
	}
	return f.rowGroups[i]
}

// ColumnValues returns every value of the named column in row order.
func (f *Frame) ColumnValues(column string) ([]any, error) {
	pos, ok := f.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	out := make([]any, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[pos]
	}
	return out, nil
}

// Row is a cursor over a single frame row, handed to row predicates during
// target resolution.
type Row struct {
	frame *Frame
	index int
}

// Index returns the zero-based row position.
func (r Row) Index() int {
	return r.index
}

// Group returns the row's group name, or "" when the frame is ungrouped.
func (r Row) Group() string {
	return r.frame.RowGroup(r.index)
}

// Value returns the row's value for the named column. Referencing a column
// that does not exist is an error, never a silent nil.
func (r Row) Value(column string) (any, error) {
	return r.frame.Value(r.index, column)
}

// Float returns the row's value for the named column coerced to float64.
// Non-numeric values report ok=false.
func (r Row) Float(column string) (float64, bool, error) {
	v, err := r.Value(column)
	if err != nil {
		return 0, false, err
	}
	f, ok := AsFloat(v)
	return f, ok, nil
}

func formatGroupKey(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
