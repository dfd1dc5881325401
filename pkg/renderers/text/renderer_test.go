package text

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/render"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/style"
	"github.com/goliatone/go-tablegen/pkg/table"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

func fixtureDocument(t *testing.T) *render.Document {
	t.Helper()
	frame, err := tabular.FromRecords(
		[]string{"region", "item", "units"},
		[][]any{
			{"east", "apples", 10},
			{"east", "pears", 20},
			{"west", "plums", 5},
		},
	)
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	grouped, err := frame.GroupBy("region")
	if err != nil {
		t.Fatalf("group by: %v", err)
	}
	tbl, err := table.New(grouped, table.WithStub("item"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	tbl = tbl.Header(richtext.Plain("Orchard Sales"), richtext.Text{})
	tbl, err = tbl.SummaryRows("subtotal", tabular.Sum)
	if err != nil {
		t.Fatalf("summary rows: %v", err)
	}
	tbl, err = tbl.Footnote(richtext.Plain("preliminary"), cells.ColumnLabels(cells.Columns("units")))
	if err != nil {
		t.Fatalf("footnote: %v", err)
	}

	doc, err := render.Compose(tbl)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return doc
}

func TestRenderer_Layout(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "text" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}

	output, err := renderer.Render(context.Background(), fixtureDocument(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(output)

	for _, want := range []string{
		"Orchard Sales",
		"╭",
		"╰",
		"units(1)",
		"east",
		"apples",
		"subtotal",
		"(1) preliminary",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	// Numeric column right-aligned: the single-digit value lines up against
	// the right padding space.
	if !strings.Contains(got, " 5 │") && !strings.Contains(got, "  5 ") {
		t.Fatalf("numeric alignment suspect:\n%s", got)
	}
}

func TestRenderer_ASCIIBorder(t *testing.T) {
	renderer, err := New(WithBorder(BorderASCII))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(context.Background(), fixtureDocument(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(output)
	if strings.ContainsAny(got, "╭╮╰╯│─") {
		t.Fatalf("expected pure ASCII chrome:\n%s", got)
	}
	if !strings.Contains(got, "+") || !strings.Contains(got, "|") {
		t.Fatalf("ascii border chars missing:\n%s", got)
	}
}

func TestRenderer_UnknownBorder(t *testing.T) {
	if _, err := New(WithBorder(BorderStyle("fancy"))); err == nil {
		t.Fatalf("expected unknown border error")
	}
}

func TestRenderer_ColorStyling(t *testing.T) {
	frame, err := tabular.FromRecords([]string{"n"}, [][]any{{1}})
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	tbl, err := table.New(frame)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	tbl, err = tbl.Style(cells.Body(nil, nil), style.Text(style.TextConfig{Weight: style.WeightBold}))
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	doc, err := render.Compose(tbl)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	plainRenderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	plain, err := plainRenderer.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render plain: %v", err)
	}
	if strings.Contains(string(plain), "\x1b[") {
		t.Fatalf("color disabled but escape codes present")
	}

	colorRenderer, err := New(WithColor(true))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	colored, err := colorRenderer.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render colored: %v", err)
	}
	if len(colored) < len(plain) {
		t.Fatalf("styled output should not shrink")
	}
}
