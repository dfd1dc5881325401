package html

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/options"
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

	tbl = tbl.Header(richtext.HTML("<strong>Orchard</strong> Sales"), richtext.Plain("2026 season"))
	tbl, err = tbl.Style(cells.Body(cells.Columns("units"), cells.RowIndices(1)), style.Fill("cyan"))
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	tbl, err = tbl.Footnote(richtext.Plain("preliminary"), cells.ColumnLabels(cells.Columns("units")))
	if err != nil {
		t.Fatalf("footnote: %v", err)
	}
	tbl = tbl.SourceNote(richtext.Plain("source: ledger"))

	doc, err := render.Compose(tbl)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return doc
}

func TestRenderer_RenderFragment(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	output, err := renderer.Render(context.Background(), fixtureDocument(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	for _, want := range []string{
		`<strong>Orchard</strong> Sales`,
		`2026 season`,
		`class="tg-group-label"`,
		`>east<`,
		`>apples<`,
		`style="background-color: cyan"`,
		`<sup class="tg-mark">1</sup>`,
		`preliminary`,
		`class="tg-source-note"`,
		`source: ledger`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderer_ThemeCSSVars(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	opts := render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--brand": "#123456"},
		},
	}
	output, err := renderer.Render(context.Background(), fixtureDocument(t), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "--brand: #123456;") {
		t.Fatalf("theme css var missing:\n%s", output)
	}
}

func TestRenderer_StripingClass(t *testing.T) {
	doc := fixtureDocument(t)

	merged, err := options.Apply(doc.Options, options.RowStriping(true))
	if err != nil {
		t.Fatalf("apply options: %v", err)
	}
	doc.Options = merged

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), `class="tg-striped"`) {
		t.Fatalf("striped row class missing")
	}
}
