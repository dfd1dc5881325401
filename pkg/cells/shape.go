package cells

import "github.com/goliatone/go-tablegen/pkg/tabular"

// SpannerInfo describes one spanner label and the columns it covers.
type SpannerInfo struct {
	ID      string
	Columns []string
}

// Shape is the structural snapshot locations resolve against: which regions
// exist and how the column and row axes are laid out. It says nothing about
// styling or content.
type Shape struct {
	Columns  []string
	RowCount int

	// Groups lists distinct row-group names in first-appearance order;
	// RowGroups assigns one per row. Both are empty for ungrouped tables.
	Groups    []string
	RowGroups []string

	Spanners []SpannerInfo

	StubColumn  string
	HasTitle    bool
	HasSubtitle bool
	HasStubhead bool

	// SummaryGroups lists groups that carry summary rows; HasGrandSummary
	// reports whether a whole-table summary exists.
	SummaryGroups   []string
	HasGrandSummary bool
}

// HasStub reports whether a row-label column is designated.
func (s Shape) HasStub() bool {
	return s.StubColumn != ""
}

// HasColumn reports whether the named column is part of the shape.
func (s Shape) HasColumn(name string) bool {
	for _, col := range s.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Snapshot bundles the shape with the data frame so row predicates can be
// evaluated during resolution. The frame is read, never written.
type Snapshot struct {
	Shape Shape
	Data  *tabular.Frame
}
