package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/render"
)

// optionTokenPrefix marks theme tokens that feed the table option registry
// rather than CSS. A token "options.table.background.color" becomes the
// matching dotted option override.
const optionTokenPrefix = "options."

// defaultThemeFallbacks returns the partial paths used when neither the theme
// manifest nor its variant overrides them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"table.frame": "templates/table.tmpl",
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	name := req.ThemeName
	if name == "" {
		name = o.defaultTheme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return buildRendererConfig(selection, o.themeFallbacks), nil
}

// buildRendererConfig flattens a theme selection into the renderer-facing
// configuration: base manifest values overlaid with the selected variant,
// partials merged over the fallbacks, and CSS variables derived from the
// merged tokens.
func buildRendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
	}
	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}

	assetPrefix := manifest.Assets.Prefix
	assetFiles := map[string]string{}
	for key, value := range manifest.Assets.Files {
		assetFiles[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
		for key, value := range variant.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range variant.Assets.Files {
			assetFiles[key] = value
		}
		if variant.Assets.Prefix != "" {
			assetPrefix = variant.Assets.Prefix
		}
	}

	for token, value := range cfg.Tokens {
		if strings.HasPrefix(token, optionTokenPrefix) {
			continue
		}
		cfg.CSSVars["--"+token] = value
	}

	cfg.AssetURL = func(key string) string {
		file, ok := assetFiles[key]
		if !ok || file == "" {
			return ""
		}
		if assetPrefix == "" {
			return file
		}
		return strings.TrimSuffix(assetPrefix, "/") + "/" + file
	}

	return cfg
}

// applyThemeOptionTokens folds "options."-prefixed theme tokens into the
// document's option registry, keyed alphabetically so the merge order is
// deterministic. The input document is never mutated: when tokens apply, the
// merge lands on a copy, so caller-supplied documents stay untouched.
func applyThemeOptionTokens(doc *render.Document, cfg *theme.RendererConfig) (*render.Document, error) {
	if doc == nil || cfg == nil {
		return doc, nil
	}

	var keys []string
	for token := range cfg.Tokens {
		if strings.HasPrefix(token, optionTokenPrefix) {
			keys = append(keys, token)
		}
	}
	if len(keys) == 0 {
		return doc, nil
	}
	sort.Strings(keys)

	settings := make([]options.Setting, 0, len(keys))
	for _, token := range keys {
		setting, err := options.Keyed(strings.TrimPrefix(token, optionTokenPrefix), cfg.Tokens[token])
		if err != nil {
			return nil, fmt.Errorf("orchestrator: theme option token %q: %w", token, err)
		}
		settings = append(settings, setting)
	}

	merged, err := options.Apply(doc.Options, settings...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: apply theme options: %w", err)
	}

	overlaid := *doc
	overlaid.Options = merged
	return &overlaid, nil
}
