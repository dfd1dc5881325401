package text

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-tablegen/pkg/style"
)

// namedColors maps the CSS keywords that show up in style directives onto
// hex values lipgloss can parse. Hex and rgb values pass through untouched.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"gray":      "#808080",
	"grey":      "#808080",
	"orange":    "#ffa500",
	"pink":      "#ffc0cb",
	"lightcyan": "#e0ffff",
	"lightgray": "#d3d3d3",
}

func terminalColor(v string) lipgloss.Color {
	if hex, ok := namedColors[v]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(v)
}

// ansiStyle translates a merged directive into a lipgloss render function.
// Returns nil when nothing in the directive is expressible on a terminal.
func ansiStyle(d style.Directive) func(string) string {
	if d.IsZero() {
		return nil
	}

	out := lipgloss.NewStyle()
	styled := false

	if v, ok := d.Value(style.PropColor); ok {
		out = out.Foreground(terminalColor(v))
		styled = true
	}
	if v, ok := d.Value(style.PropFill); ok {
		out = out.Background(terminalColor(v))
		styled = true
	}
	if v, ok := d.Value(style.PropWeight); ok && v == style.WeightBold {
		out = out.Bold(true)
		styled = true
	}
	if v, ok := d.Value(style.PropStyle); ok && v == style.StyleItalic {
		out = out.Italic(true)
		styled = true
	}
	if v, ok := d.Value(style.PropDecorate); ok {
		switch v {
		case "underline":
			out = out.Underline(true)
			styled = true
		case "line-through":
			out = out.Strikethrough(true)
			styled = true
		}
	}

	if !styled {
		return nil
	}
	// lipgloss Render is variadic; the layout slot takes exactly one string.
	return func(s string) string {
		return out.Render(s)
	}
}

// directiveAlign reads a text-align assignment out of a directive.
func directiveAlign(d style.Directive, fallback alignment) alignment {
	v, ok := d.Value(style.PropAlign)
	if !ok {
		return fallback
	}
	switch v {
	case "left":
		return alignLeft
	case "center":
		return alignCenter
	case "right":
		return alignRight
	default:
		return fallback
	}
}
