package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/style"
)

// cssProperty maps directive properties onto their CSS spellings.
var cssProperty = map[style.Property]string{
	style.PropColor:        "color",
	style.PropSize:         "font-size",
	style.PropFont:         "font-family",
	style.PropWeight:       "font-weight",
	style.PropStyle:        "font-style",
	style.PropAlign:        "text-align",
	style.PropTransform:    "text-transform",
	style.PropDecorate:     "text-decoration",
	style.PropWhitespace:   "white-space",
	style.PropFill:         "background-color",
	style.PropBorderTop:    "border-top",
	style.PropBorderBottom: "border-bottom",
	style.PropBorderLeft:   "border-left",
	style.PropBorderRight:  "border-right",
}

// inlineStyle renders a merged directive as an inline CSS declaration list,
// in assignment order.
func inlineStyle(d style.Directive) string {
	assignments := d.Assignments()
	if len(assignments) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range assignments {
		name, ok := cssProperty[a.Property]
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(a.Value)
	}
	return sb.String()
}

// tableCSS derives the scoped stylesheet from the option registry and the
// resolved theme. Theme tokens surface as CSS custom properties on the
// container so template overrides can reference them.
func tableCSS(opts options.Options, themeCfg *theme.RendererConfig) string {
	var sb strings.Builder

	sb.WriteString(".tg {\n")
	if themeCfg != nil && len(themeCfg.CSSVars) > 0 {
		vars := make([]string, 0, len(themeCfg.CSSVars))
		for name := range themeCfg.CSSVars {
			vars = append(vars, name)
		}
		sort.Strings(vars)
		for _, name := range vars {
			sb.WriteString("  " + name + ": " + themeCfg.CSSVars[name] + ";\n")
		}
	}
	sb.WriteString("}\n")

	sb.WriteString(".tg-table {\n")
	sb.WriteString("  border-collapse: collapse;\n")
	writeDecl(&sb, "width", opts.Table.Width)
	writeDecl(&sb, "background-color", opts.Table.BackgroundColor)
	writeDecl(&sb, "font-size", opts.Table.FontSize)
	writeBorder(&sb, "border-top", opts.Table.Border.Top)
	writeBorder(&sb, "border-bottom", opts.Table.Border.Bottom)
	writeBorder(&sb, "border-left", opts.Table.Border.Left)
	writeBorder(&sb, "border-right", opts.Table.Border.Right)
	sb.WriteString("}\n")

	sb.WriteString(".tg-heading {\n")
	writeDecl(&sb, "text-align", opts.Heading.Align)
	writeDecl(&sb, "background-color", opts.Heading.BackgroundColor)
	sb.WriteString("}\n")
	sb.WriteString(".tg-title { " + decl("font-size", opts.Heading.TitleFontSize) + " }\n")
	sb.WriteString(".tg-subtitle { " + decl("font-size", opts.Heading.SubtitleFontSize) + " }\n")

	sb.WriteString(".tg-column-label {\n")
	writeDecl(&sb, "font-weight", opts.ColumnLabels.FontWeight)
	writeDecl(&sb, "text-transform", opts.ColumnLabels.TextTransform)
	writeDecl(&sb, "background-color", opts.ColumnLabels.BackgroundColor)
	writeBorder(&sb, "border-bottom", opts.ColumnLabels.BorderBottom)
	sb.WriteString("}\n")

	sb.WriteString(".tg-group-label {\n")
	writeDecl(&sb, "font-weight", opts.RowGroup.FontWeight)
	writeDecl(&sb, "background-color", opts.RowGroup.BackgroundColor)
	sb.WriteString("}\n")

	sb.WriteString(".tg-stub {\n")
	writeDecl(&sb, "font-weight", opts.Stub.FontWeight)
	writeDecl(&sb, "background-color", opts.Stub.BackgroundColor)
	sb.WriteString("}\n")

	if opts.Data.Striping.Enabled {
		sb.WriteString(".tg-striped { " + decl("background-color", opts.Data.Striping.Color) + " }\n")
	}

	sb.WriteString(".tg-footnote { " + decl("font-size", opts.Footnotes.FontSize) + " }\n")
	sb.WriteString(".tg-source-note {\n")
	writeDecl(&sb, "font-size", opts.SourceNotes.FontSize)
	writeDecl(&sb, "background-color", opts.SourceNotes.BackgroundColor)
	sb.WriteString("}\n")
	sb.WriteString(".tg-mark { font-style: italic; }\n")

	return sb.String()
}

func writeDecl(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString("  " + name + ": " + value + ";\n")
}

func writeBorder(sb *strings.Builder, name string, edge options.BorderEdge) {
	if edge.Style == "" || edge.Style == "none" {
		return
	}
	sb.WriteString("  " + name + ": " + edge.Style + " " + edge.Width + " " + edge.Color + ";\n")
}

func decl(name, value string) string {
	if value == "" {
		return ""
	}
	return name + ": " + value + ";"
}
