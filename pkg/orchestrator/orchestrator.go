package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/render"
	htmlrenderer "github.com/goliatone/go-tablegen/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-tablegen/pkg/renderers/text"
	"github.com/goliatone/go-tablegen/pkg/table"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider registers a go-theme provider plus the default
// theme/variant pair applied when a request does not name one. Providers that
// also implement theme.ThemeSelector (the registry does) are used directly.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if selector, ok := provider.(theme.ThemeSelector); ok {
			o.themeSelector = selector
		}
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// Orchestrator coordinates the full pipeline from table value to rendered
// output. It applies sensible defaults (html renderer, built-in templates)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string

	themeSelector  theme.ThemeSelector
	themeFallbacks map[string]string
	defaultTheme   string
	defaultVariant string

	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a table.
type Request struct {
	// Table is the presentational table value to render. Optional when
	// Document is supplied.
	Table *table.Table

	// Document allows callers to bypass composition when they already hold a
	// composed document.
	Document *render.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select the theme resolved through the
	// configured selector. Empty values fall back to the orchestrator
	// defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions for the renderer. The
	// resolved theme is attached to it before rendering.
	RenderOptions render.RenderOptions
}

// Generate executes the compose → theme → render sequence and returns the
// rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return nil, err
	}

	renderOptions := req.RenderOptions
	if o.themeSelector != nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		renderOptions.Theme = cfg
		doc, err = applyThemeOptionTokens(doc, cfg)
		if err != nil {
			return nil, err
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, renderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDocument(req Request) (*render.Document, error) {
	if req.Document != nil {
		return req.Document, nil
	}
	if req.Table == nil {
		return nil, errors.New("orchestrator: table or document is required")
	}
	doc, err := render.Compose(req.Table)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: compose table: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()

		htmlR, err := htmlrenderer.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default html renderer: %w", err)
		} else {
			o.registry.MustRegister(htmlR)
		}

		textR, err := textrenderer.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default text renderer: %w", err)
		} else {
			o.registry.MustRegister(textR)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}

	o.defaultsApplied = true
}
