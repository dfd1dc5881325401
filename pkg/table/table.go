package table

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/style"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

// Sentinel errors for programmatic handling.
var (
	ErrNilFrame         = errors.New("table: frame is required")
	ErrDuplicateSpanner = errors.New("table: duplicate spanner id")
	ErrNoRowGroups      = errors.New("table: summary rows require a grouped frame")
	ErrUnknownGroup     = errors.New("table: unknown row group")
)

// Spanner is a label spanning a set of column labels.
type Spanner struct {
	ID      string
	Label   richtext.Text
	Columns []string
}

// Table is an immutable presentational table value. Every transformation
// returns a new value with the registries extended; a failed call returns an
// error and leaves the receiver usable and unchanged.
type Table struct {
	frame      *tabular.Frame
	stubColumn string

	title    richtext.Text
	subtitle richtext.Text
	stubhead richtext.Text

	labels   map[string]richtext.Text
	spanners []Spanner

	decor       Decorations
	sourceNotes []richtext.Text
	summaries   []SummaryDef

	opts options.Options
}

// BuildOption configures table construction.
type BuildOption func(*Table) error

// WithStub designates the frame column holding row labels. The column moves
// out of the body and into the stub region.
func WithStub(column string) BuildOption {
	return func(t *Table) error {
		if !t.frame.HasColumn(column) {
			return fmt.Errorf("table: stub column: %w: %q", tabular.ErrUnknownColumn, column)
		}
		t.stubColumn = column
		return nil
	}
}

// New wraps a data frame in a presentational table with default options.
// The frame is only ever read.
func New(frame *tabular.Frame, buildOptions ...BuildOption) (*Table, error) {
	if frame == nil {
		return nil, ErrNilFrame
	}
	t := &Table{
		frame: frame,
		opts:  options.Default(),
	}
	for _, opt := range buildOptions {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) clone() *Table {
	out := *t
	out.spanners = append([]Spanner(nil), t.spanners...)
	out.sourceNotes = append([]richtext.Text(nil), t.sourceNotes...)
	out.summaries = append([]SummaryDef(nil), t.summaries...)
	out.decor = t.decor.clone()
	if t.labels != nil {
		out.labels = make(map[string]richtext.Text, len(t.labels))
		for name, label := range t.labels {
			out.labels[name] = label
		}
	}
	return &out
}

// Header sets the title and subtitle.
func (t *Table) Header(title, subtitle richtext.Text) *Table {
	out := t.clone()
	out.title = title
	out.subtitle = subtitle
	return out
}

// Stubhead sets the label cell above the stub.
func (t *Table) Stubhead(label richtext.Text) *Table {
	out := t.clone()
	out.stubhead = label
	return out
}

// SourceNote appends a source note to the table footer.
func (t *Table) SourceNote(text richtext.Text) *Table {
	out := t.clone()
	out.sourceNotes = append(out.sourceNotes, text)
	return out
}

// RelabelColumns overrides the presentation labels of body columns. Unknown
// columns are an error: a silently dropped relabel is always a typo.
func (t *Table) RelabelColumns(labels map[string]richtext.Text) (*Table, error) {
	out := t.clone()
	if out.labels == nil {
		out.labels = make(map[string]richtext.Text, len(labels))
	}
	for name, label := range labels {
		if !t.frame.HasColumn(name) {
			return nil, fmt.Errorf("table: relabel: %w: %q", tabular.ErrUnknownColumn, name)
		}
		out.labels[name] = label
	}
	return out, nil
}

// Spanner adds a label spanning the columns the selector matches. The
// spanner id is the label's plain-text rendition. A selection that matches
// no columns is a valid no-op.
func (t *Table) Spanner(label richtext.Text, columns cells.ColumnSelector) (*Table, error) {
	shape := t.Shape()
	matched, err := resolveColumns(columns, shape.Columns)
	if err != nil {
		return nil, fmt.Errorf("table: spanner columns: %w", err)
	}
	if len(matched) == 0 {
		return t.clone(), nil
	}

	id := label.PlainText()
	for _, existing := range t.spanners {
		if existing.ID == id {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSpanner, id)
		}
	}

	out := t.clone()
	out.spanners = append(out.spanners, Spanner{ID: id, Label: label, Columns: matched})
	return out, nil
}

// Style resolves the target location and appends a style entry. Multiple
// directives in one call merge property-wise before storage; entries stack,
// with later calls overriding earlier ones per property at render time.
// Targets that resolve to nothing are retained as valid no-ops.
func (t *Table) Style(target cells.Location, directives ...style.Directive) (*Table, error) {
	if target == nil {
		return nil, errors.New("table: style target is required")
	}
	coords, err := target.Resolve(t.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("table: resolve style target: %w", err)
	}

	out := t.clone()
	out.decor = out.decor.addStyle(coords, style.Merge(directives...))
	return out, nil
}

// Footnote appends a footnote targeting zero or more locations. The entry is
// retained even when every target resolves empty: it still appears in the
// footer, just without an in-table mark.
func (t *Table) Footnote(text richtext.Text, targets ...cells.Location) (*Table, error) {
	snap := t.Snapshot()

	var coords []cells.Coordinate
	seen := make(map[cells.Coordinate]struct{})
	for _, target := range targets {
		if target == nil {
			continue
		}
		resolved, err := target.Resolve(snap)
		if err != nil {
			return nil, fmt.Errorf("table: resolve footnote target: %w", err)
		}
		for _, coord := range resolved {
			if _, dup := seen[coord]; dup {
				continue
			}
			seen[coord] = struct{}{}
			coords = append(coords, coord)
		}
	}

	out := t.clone()
	out.decor = out.decor.addFootnote(coords, text)
	return out, nil
}

// Options merges the supplied settings over the table's current option
// registry. Unspecified keys keep their prior values.
func (t *Table) Options(settings ...options.Setting) (*Table, error) {
	merged, err := options.Apply(t.opts, settings...)
	if err != nil {
		return nil, fmt.Errorf("table: apply options: %w", err)
	}
	out := t.clone()
	out.opts = merged
	return out, nil
}

// --- accessors ---

// Frame returns the underlying data source.
func (t *Table) Frame() *tabular.Frame {
	return t.frame
}

// Title returns the table title; zero when unset.
func (t *Table) Title() richtext.Text { return t.title }

// Subtitle returns the table subtitle; zero when unset.
func (t *Table) Subtitle() richtext.Text { return t.subtitle }

// StubheadLabel returns the stubhead label; zero when unset.
func (t *Table) StubheadLabel() richtext.Text { return t.stubhead }

// StubColumn returns the designated row-label column, or "".
func (t *Table) StubColumn() string { return t.stubColumn }

// ColumnLabel returns the presentation label for a column, falling back to
// the column id.
func (t *Table) ColumnLabel(column string) richtext.Text {
	if label, ok := t.labels[column]; ok {
		return label
	}
	return richtext.Plain(column)
}

// Spanners returns the spanner labels in insertion order.
func (t *Table) Spanners() []Spanner {
	return append([]Spanner(nil), t.spanners...)
}

// SourceNotes returns the source notes in insertion order.
func (t *Table) SourceNotes() []richtext.Text {
	return append([]richtext.Text(nil), t.sourceNotes...)
}

// Decorations returns the style/footnote store.
func (t *Table) Decorations() Decorations {
	return t.decor.clone()
}

// OptionSet returns the current option registry value.
func (t *Table) OptionSet() options.Options {
	return t.opts
}

// Shape derives the structural snapshot of the table: presentation columns
// (body columns exclude the stub and group columns), rows, groups, spanners,
// and which optional regions exist.
func (t *Table) Shape() cells.Shape {
	var columns []string
	for _, name := range t.frame.Columns() {
		if name == t.stubColumn || name == t.frame.GroupColumn() {
			continue
		}
		columns = append(columns, name)
	}

	rowGroups := make([]string, t.frame.NumRows())
	for i := range rowGroups {
		rowGroups[i] = t.frame.RowGroup(i)
	}

	spanners := make([]cells.SpannerInfo, 0, len(t.spanners))
	for _, spanner := range t.spanners {
		spanners = append(spanners, cells.SpannerInfo{
			ID:      spanner.ID,
			Columns: append([]string(nil), spanner.Columns...),
		})
	}

	shape := cells.Shape{
		Columns:     columns,
		RowCount:    t.frame.NumRows(),
		Groups:      t.frame.Groups(),
		RowGroups:   rowGroups,
		Spanners:    spanners,
		StubColumn:  t.stubColumn,
		HasTitle:    !t.title.IsZero(),
		HasSubtitle: !t.subtitle.IsZero(),
		HasStubhead: !t.stubhead.IsZero(),
	}

	for _, def := range t.summaries {
		if def.Grand {
			shape.HasGrandSummary = true
		}
	}
	shape.SummaryGroups = t.summaryGroups()

	return shape
}

func (t *Table) summaryGroups() []string {
	covered := make(map[string]struct{})
	for _, def := range t.summaries {
		if def.Grand {
			continue
		}
		for _, group := range def.Groups {
			covered[group] = struct{}{}
		}
	}

	var out []string
	for _, group := range t.frame.Groups() {
		if _, ok := covered[group]; ok {
			out = append(out, group)
		}
	}
	return out
}

// Snapshot pairs the shape with the data frame for location resolution.
func (t *Table) Snapshot() cells.Snapshot {
	return cells.Snapshot{Shape: t.Shape(), Data: t.frame}
}

func resolveColumns(sel cells.ColumnSelector, columns []string) ([]string, error) {
	if sel == nil {
		sel = cells.AllColumns()
	}
	return sel.Select(columns)
}
