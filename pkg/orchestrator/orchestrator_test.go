package orchestrator

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/render"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/table"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

func fixtureTable(t *testing.T) *table.Table {
	t.Helper()
	frame, err := tabular.FromRecords(
		[]string{"item", "units"},
		[][]any{
			{"apples", 10},
			{"pears", 20},
		},
	)
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	tbl, err := table.New(frame, table.WithStub("item"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl.Header(richtext.Plain("Inventory"), richtext.Text{})
}

type captureRenderer struct {
	doc     *render.Document
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, doc *render.Document, opts render.RenderOptions) ([]byte, error) {
	r.doc = doc
	r.options = opts
	return []byte("captured"), nil
}

func TestOrchestrator_GenerateWithDefaults(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{Table: fixtureTable(t)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "Inventory") {
		t.Fatalf("default html output missing title:\n%s", output)
	}

	text, err := orch.Generate(context.Background(), Request{Table: fixtureTable(t), Renderer: "text"})
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	if !strings.Contains(string(text), "apples") {
		t.Fatalf("text output missing body:\n%s", text)
	}
}

func TestOrchestrator_RequiresInput(t *testing.T) {
	orch := New()

	if _, err := orch.Generate(nil, Request{Table: fixtureTable(t)}); err == nil { //nolint:staticcheck
		t.Fatalf("expected context error")
	}
	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected table-or-document error")
	}
	if _, err := orch.Generate(context.Background(), Request{Table: fixtureTable(t), Renderer: "missing"}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"table.frame": "themes/acme/table.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}

	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(context.Background(), Request{
		Table:        fixtureTable(t),
		Renderer:     renderer.Name(),
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("theme identity mismatch: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not merged, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from merged tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.Partials["table.frame"] != "themes/acme/table.tmpl" {
		t.Fatalf("manifest partial not applied, got %s", cfg.Partials["table.frame"])
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected stylesheet url: %s", got)
	}
}

func TestOrchestrator_ThemeOptionTokens(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "acme",
		Tokens: map[string]string{
			"options.table.background.color": "#fafafa",
			"brand":                          "#123456",
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Manifest: manifest}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	if _, err := orch.Generate(context.Background(), Request{Table: fixtureTable(t)}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if renderer.doc == nil {
		t.Fatalf("renderer saw no document")
	}
	if got := renderer.doc.Options.Table.BackgroundColor; got != "#fafafa" {
		t.Fatalf("option token not applied: %s", got)
	}
	if _, ok := renderer.options.Theme.CSSVars["--options.table.background.color"]; ok {
		t.Fatalf("option token leaked into css vars")
	}
	if renderer.options.Theme.CSSVars["--brand"] != "#123456" {
		t.Fatalf("plain token should still become a css var")
	}
}

func TestOrchestrator_ThemeOptionTokensLeaveRequestDocumentUntouched(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "acme",
		Tokens: map[string]string{
			"options.table.background.color": "#fafafa",
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Manifest: manifest}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	doc, err := render.Compose(fixtureTable(t))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	before := doc.Options.Table.BackgroundColor

	if _, err := orch.Generate(context.Background(), Request{Document: doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if renderer.doc == doc {
		t.Fatalf("renderer should receive an overlaid copy, not the request document")
	}
	if got := renderer.doc.Options.Table.BackgroundColor; got != "#fafafa" {
		t.Fatalf("overlay missing on rendered document: %s", got)
	}
	if doc.Options.Table.BackgroundColor != before {
		t.Fatalf("request document mutated: %s", doc.Options.Table.BackgroundColor)
	}
}

func TestOrchestrator_FallbackPartials(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "bare", Manifest: &theme.Manifest{Name: "bare"}}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	if _, err := orch.Generate(context.Background(), Request{Table: fixtureTable(t)}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := renderer.options.Theme.Partials["table.frame"]; got != defaultThemeFallbacks()["table.frame"] {
		t.Fatalf("fallback partial not applied, got %s", got)
	}
}
