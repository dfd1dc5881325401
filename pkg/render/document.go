package render

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/style"
)

// Column is one presentation column: the frame column id plus its display
// label.
type Column struct {
	ID    string
	Label richtext.Text
}

// SpannerBand is a label stretched over a set of columns.
type SpannerBand struct {
	ID      string
	Label   richtext.Text
	Columns []string
}

// Cell is one formatted body or summary value.
type Cell struct {
	Column string
	Value  any
	Text   string
}

// BodyRow is one data row: the frame row index, the stub label when the table
// has a stub, and the body cells in column order.
type BodyRow struct {
	Index int
	Stub  string
	Cells []Cell
}

// SummaryRow is one computed aggregate row placed under a group (or, for
// grand summaries, under the whole body). Columns the aggregator skipped
// carry an empty Text.
type SummaryRow struct {
	Label string
	Grand bool
	Cells []Cell
}

// GroupBlock is a run of body rows under one row-group label, followed by the
// group's summary rows. Ungrouped tables compose into a single block with an
// empty name.
type GroupBlock struct {
	Name      string
	Rows      []BodyRow
	Summaries []SummaryRow
}

// FooterLine is one footer entry: a marked or unmarked footnote, or a source
// note. Footnotes come first, ordered by mark; source notes close the footer.
type FooterLine struct {
	Mark       string
	Text       richtext.Text
	SourceNote bool
}

// Document is the flattened, renderer-agnostic form of a table: every region
// materialised, styles merged per coordinate, and footnote marks assigned.
// Renderers read it; they never reach back into the table value.
type Document struct {
	Title    richtext.Text
	Subtitle richtext.Text
	Stubhead richtext.Text

	StubColumn string
	Columns    []Column
	Spanners   []SpannerBand

	Groups       []GroupBlock
	GrandSummary []SummaryRow

	Footer []FooterLine

	Options options.Options

	styles map[cells.Coordinate]style.Directive
	marks  map[cells.Coordinate][]string
}

// Grouped reports whether the document carries named row-group blocks.
func (d *Document) Grouped() bool {
	return len(d.Groups) > 0 && d.Groups[0].Name != ""
}

// HasStub reports whether rows carry stub labels.
func (d *Document) HasStub() bool {
	return d.StubColumn != ""
}

// StyleAt returns the merged style directive for a coordinate. The zero
// directive means the cell is unstyled.
func (d *Document) StyleAt(coord cells.Coordinate) style.Directive {
	return d.styles[coord]
}

// MarksAt returns the footnote marks attached to a coordinate, in mark order.
func (d *Document) MarksAt(coord cells.Coordinate) []string {
	return d.marks[coord]
}

// CellText formats a raw frame value for presentation.
func CellText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", value)
	}
}
