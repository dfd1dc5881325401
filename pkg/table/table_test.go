package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/style"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	frame, err := tabular.FromRecords(
		[]string{"item", "num", "currency"},
		[][]any{
			{"alpha", 100, 12.5},
			{"beta", 6000, 0.4},
			{"gamma", 50, 7.25},
		},
	)
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}

	tbl, err := New(frame, WithStub("item"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

func groupedTable(t *testing.T) *Table {
	t.Helper()
	frame, err := tabular.FromRecords(
		[]string{"region", "item", "sales"},
		[][]any{
			{"east", "a", 10},
			{"east", "b", 30},
			{"west", "c", 20},
		},
	)
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	grouped, err := frame.GroupBy("region")
	if err != nil {
		t.Fatalf("group by: %v", err)
	}

	tbl, err := New(grouped, WithStub("item"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

func TestNew_RequiresFrame(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilFrame) {
		t.Fatalf("expected ErrNilFrame, got %v", err)
	}
}

func TestWithStub_UnknownColumn(t *testing.T) {
	frame, err := tabular.FromRecords([]string{"a"}, [][]any{{1}})
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	if _, err := New(frame, WithStub("missing")); !errors.Is(err, tabular.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestShape_ExcludesStubAndGroupColumns(t *testing.T) {
	shape := groupedTable(t).Shape()
	if diff := cmp.Diff([]string{"sales"}, shape.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"east", "west"}, shape.Groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if !shape.HasStub() {
		t.Fatalf("expected stub")
	}
}

func TestTransformations_DoNotMutateReceiver(t *testing.T) {
	base := sampleTable(t)

	styled, err := base.Style(cells.Body(nil, nil), style.Fill("cyan"))
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	withHeader := styled.Header(richtext.Plain("Deliveries"), richtext.Plain("H1"))

	if !base.Decorations().Empty() {
		t.Fatalf("Style mutated its receiver")
	}
	if !styled.Title().IsZero() {
		t.Fatalf("Header mutated its receiver")
	}
	if withHeader.Title().PlainText() != "Deliveries" {
		t.Fatalf("Header not applied on the new value")
	}
	if len(styled.Decorations().Styles()) != 1 {
		t.Fatalf("expected one style entry")
	}
}

func TestStyle_ResolvesSpecExample(t *testing.T) {
	tbl := sampleTable(t)

	styled, err := tbl.Style(
		cells.Body(cells.Columns("num"), cells.RowsWhere(func(r tabular.Row) (bool, error) {
			v, ok, err := r.Float("num")
			if err != nil {
				return false, err
			}
			return ok && v >= 5000, nil
		})),
		style.Fill("cyan"),
	)
	if err != nil {
		t.Fatalf("style: %v", err)
	}

	entries := styled.Decorations().Styles()
	want := []cells.Coordinate{{Region: cells.RegionBody, Column: "num", Row: 1}}
	if diff := cmp.Diff(want, entries[0].Coordinates); diff != "" {
		t.Fatalf("coords mismatch (-want +got):\n%s", diff)
	}
}

func TestStyle_ErrorsAtCallSite(t *testing.T) {
	tbl := sampleTable(t)

	_, err := tbl.Style(cells.ColumnLabels(cells.ColumnsMatching("(")), style.Fill("red"))
	if !errors.Is(err, cells.ErrBadPattern) {
		t.Fatalf("expected ErrBadPattern at the Style call, got %v", err)
	}

	_, err = tbl.Style(cells.Body(nil, cells.RowsWhere(func(r tabular.Row) (bool, error) {
		_, err := r.Value("missing")
		return false, err
	})), style.Fill("red"))
	if !errors.Is(err, tabular.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn at the Style call, got %v", err)
	}
}

func TestStyle_PermissiveEmptyTarget(t *testing.T) {
	tbl := sampleTable(t)

	styled, err := tbl.Style(cells.RowGroups("none"), style.Fill("red"))
	if err != nil {
		t.Fatalf("expected permissive no-op, got %v", err)
	}
	entries := styled.Decorations().Styles()
	if len(entries) != 1 || len(entries[0].Coordinates) != 0 {
		t.Fatalf("expected retained empty entry, got %+v", entries)
	}
}

func TestFootnote_RetainedWithoutCoordinates(t *testing.T) {
	tbl := sampleTable(t)

	noted, err := tbl.Footnote(richtext.Plain("no groups here"), cells.RowGroups())
	if err != nil {
		t.Fatalf("footnote: %v", err)
	}
	notes := noted.Decorations().Footnotes()
	if len(notes) != 1 {
		t.Fatalf("expected retained footnote, got %d", len(notes))
	}
	if len(notes[0].Coordinates) != 0 {
		t.Fatalf("expected zero coordinates, got %v", notes[0].Coordinates)
	}
}

func TestFootnote_DeduplicatesOverlappingTargets(t *testing.T) {
	tbl := sampleTable(t)

	noted, err := tbl.Footnote(
		richtext.Plain("both selectors hit num"),
		cells.ColumnLabels(cells.Columns("num")),
		cells.ColumnLabels(cells.ColumnsWithPrefix("nu")),
	)
	if err != nil {
		t.Fatalf("footnote: %v", err)
	}
	notes := noted.Decorations().Footnotes()
	if len(notes[0].Coordinates) != 1 {
		t.Fatalf("expected deduplicated coordinate, got %v", notes[0].Coordinates)
	}
}

func TestSpanner(t *testing.T) {
	tbl := sampleTable(t)

	spanned, err := tbl.Spanner(richtext.Plain("amounts"), cells.Columns("num", "currency"))
	if err != nil {
		t.Fatalf("spanner: %v", err)
	}
	spanners := spanned.Spanners()
	if len(spanners) != 1 || spanners[0].ID != "amounts" {
		t.Fatalf("unexpected spanners: %+v", spanners)
	}
	if diff := cmp.Diff([]string{"num", "currency"}, spanners[0].Columns); diff != "" {
		t.Fatalf("spanner columns mismatch (-want +got):\n%s", diff)
	}

	if _, err := spanned.Spanner(richtext.Plain("amounts"), cells.Columns("num")); !errors.Is(err, ErrDuplicateSpanner) {
		t.Fatalf("expected ErrDuplicateSpanner, got %v", err)
	}

	// Empty selection is a permissive no-op.
	empty, err := tbl.Spanner(richtext.Plain("ghost"), cells.Columns("missing"))
	if err != nil {
		t.Fatalf("empty spanner: %v", err)
	}
	if len(empty.Spanners()) != 0 {
		t.Fatalf("expected no spanner recorded")
	}
}

func TestRelabelColumns(t *testing.T) {
	tbl := sampleTable(t)

	relabeled, err := tbl.RelabelColumns(map[string]richtext.Text{
		"num": richtext.HTML("<em>Amount</em>"),
	})
	if err != nil {
		t.Fatalf("relabel: %v", err)
	}
	if got := relabeled.ColumnLabel("num").PlainText(); got != "Amount" {
		t.Fatalf("expected relabel, got %q", got)
	}
	if got := relabeled.ColumnLabel("currency").PlainText(); got != "currency" {
		t.Fatalf("expected fallback label, got %q", got)
	}

	if _, err := tbl.RelabelColumns(map[string]richtext.Text{"nope": richtext.Plain("x")}); !errors.Is(err, tabular.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestOptions_MergeLaw(t *testing.T) {
	tbl := sampleTable(t)

	first, err := tbl.Options(options.TableWidth("100%"))
	if err != nil {
		t.Fatalf("first options: %v", err)
	}
	second, err := first.Options(options.TableBackgroundColor("lightcyan"))
	if err != nil {
		t.Fatalf("second options: %v", err)
	}

	opts := second.OptionSet()
	if opts.Table.Width != "100%" || opts.Table.BackgroundColor != "lightcyan" {
		t.Fatalf("options merge broke: %+v", opts.Table)
	}
	if tbl.OptionSet().Table.Width != "auto" {
		t.Fatalf("Options mutated its receiver")
	}

	if _, err := tbl.Options(options.TableWidth("wide")); !errors.Is(err, options.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestSummaryRows(t *testing.T) {
	tbl := groupedTable(t)

	summarized, err := tbl.SummaryRows("total", tabular.Sum)
	if err != nil {
		t.Fatalf("summary rows: %v", err)
	}

	defs := summarized.SummaryDefs()
	if len(defs) != 1 {
		t.Fatalf("expected one def, got %d", len(defs))
	}
	if got := defs[0].Values["east"]["sales"]; got != 40.0 {
		t.Fatalf("east total: expected 40, got %v", got)
	}
	if got := defs[0].Values["west"]["sales"]; got != 20.0 {
		t.Fatalf("west total: expected 20, got %v", got)
	}

	shape := summarized.Shape()
	if diff := cmp.Diff([]string{"east", "west"}, shape.SummaryGroups); diff != "" {
		t.Fatalf("summary groups mismatch (-want +got):\n%s", diff)
	}

	if _, err := tbl.SummaryRows("total", tabular.Sum, "north"); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
	if _, err := sampleTable(t).SummaryRows("total", tabular.Sum); !errors.Is(err, ErrNoRowGroups) {
		t.Fatalf("expected ErrNoRowGroups, got %v", err)
	}
}

func TestGrandSummaryRows(t *testing.T) {
	tbl := sampleTable(t)

	summarized, err := tbl.GrandSummaryRows("grand total", tabular.Sum)
	if err != nil {
		t.Fatalf("grand summary: %v", err)
	}

	defs := summarized.SummaryDefs()
	if got := defs[0].Values[""]["num"]; got != 6150.0 {
		t.Fatalf("grand total: expected 6150, got %v", got)
	}
	if !summarized.Shape().HasGrandSummary {
		t.Fatalf("shape missing grand summary")
	}
}
