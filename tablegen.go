// Package tablegen builds presentation-ready tables from columnar data: a
// declarative table value describing headers, stubs, spanners, styles, and
// footnotes, composed into a renderer-neutral document and rendered to HTML
// or terminal text.
package tablegen

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/orchestrator"
	"github.com/goliatone/go-tablegen/pkg/render"
	htmlrenderer "github.com/goliatone/go-tablegen/pkg/renderers/html"
	"github.com/goliatone/go-tablegen/pkg/table"
)

// Request aliases the orchestrator request so quick-start callers only need
// the root import.
type Request = orchestrator.Request

// RenderOptions carries per-request instructions handed to the renderer,
// including the resolved theme configuration.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to hold a reusable pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML composes the table and renders it with the built-in HTML
// renderer. It is the simplest entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, tbl *table.Table, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Table:    tbl,
		Renderer: "html",
	})
}

// GenerateText composes the table and renders it with the built-in terminal
// text renderer.
func GenerateText(ctx context.Context, tbl *table.Table, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Table:    tbl,
		Renderer: "text",
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider registers a go-theme provider together with the default
// theme/variant pair used when a request does not name one.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}
