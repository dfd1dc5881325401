package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the table pipeline.
type RenderOptions struct {
	// Theme carries the resolved theme configuration: design tokens, derived
	// CSS variables, partial overrides, and an asset URL resolver. Nil means
	// the renderer falls back to its built-in presentation.
	Theme *theme.RendererConfig
}
