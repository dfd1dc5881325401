// Package options holds the table-wide presentation options: a hierarchical
// set of typed values with built-in defaults and override-merge semantics.
// Compile-time checked setters are the primary interface; dotted string keys
// ("table.border.top.color") exist only at the textual ingestion boundary.
package options

import "errors"

// Sentinel errors distinguishing a mistyped key from a bad value.
var (
	ErrUnknownOption = errors.New("options: unknown option key")
	ErrInvalidValue  = errors.New("options: invalid option value")
)

// BorderEdge describes one border line.
type BorderEdge struct {
	Style string
	Width string
	Color string
}

// BorderSet groups the four table edges.
type BorderSet struct {
	Top    BorderEdge
	Bottom BorderEdge
	Left   BorderEdge
	Right  BorderEdge
}

// TableOptions covers the outer table frame.
type TableOptions struct {
	Width           string
	BackgroundColor string
	FontSize        string
	Border          BorderSet
}

// HeadingOptions covers the title block.
type HeadingOptions struct {
	Align            string
	BackgroundColor  string
	TitleFontSize    string
	SubtitleFontSize string
}

// ColumnLabelOptions covers the column label row.
type ColumnLabelOptions struct {
	FontWeight      string
	TextTransform   string
	BackgroundColor string
	BorderBottom    BorderEdge
}

// RowGroupOptions covers row-group label rows.
type RowGroupOptions struct {
	FontWeight      string
	BackgroundColor string
}

// StubOptions covers the row-label column.
type StubOptions struct {
	FontWeight      string
	BackgroundColor string
}

// StripingOptions controls alternate-row shading in the body.
type StripingOptions struct {
	Enabled bool
	Color   string
}

// DataOptions covers the body region.
type DataOptions struct {
	Striping StripingOptions
}

// FootnoteOptions covers the footnote footer block.
type FootnoteOptions struct {
	Marks    MarkSequence
	FontSize string
}

// SourceNoteOptions covers the source-note footer block.
type SourceNoteOptions struct {
	FontSize        string
	BackgroundColor string
}

// Options is the full registry. It is a plain value: copying it copies
// everything, which is what the immutable table pipeline relies on.
type Options struct {
	Table        TableOptions
	Heading      HeadingOptions
	ColumnLabels ColumnLabelOptions
	RowGroup     RowGroupOptions
	Stub         StubOptions
	Data         DataOptions
	Footnotes    FootnoteOptions
	SourceNotes  SourceNoteOptions
}

// Default returns the built-in option table every new table starts from.
func Default() Options {
	heavyEdge := BorderEdge{Style: "solid", Width: "2px", Color: "#a8a8a8"}
	lightEdge := BorderEdge{Style: "solid", Width: "1px", Color: "#d3d3d3"}

	return Options{
		Table: TableOptions{
			Width:           "auto",
			BackgroundColor: "#ffffff",
			FontSize:        "16px",
			Border: BorderSet{
				Top:    heavyEdge,
				Bottom: heavyEdge,
				Left:   BorderEdge{Style: "none", Width: "0", Color: "#d3d3d3"},
				Right:  BorderEdge{Style: "none", Width: "0", Color: "#d3d3d3"},
			},
		},
		Heading: HeadingOptions{
			Align:            "center",
			BackgroundColor:  "#ffffff",
			TitleFontSize:    "125%",
			SubtitleFontSize: "85%",
		},
		ColumnLabels: ColumnLabelOptions{
			FontWeight:      "normal",
			TextTransform:   "inherit",
			BackgroundColor: "#ffffff",
			BorderBottom:    lightEdge,
		},
		RowGroup: RowGroupOptions{
			FontWeight:      "initial",
			BackgroundColor: "#ffffff",
		},
		Stub: StubOptions{
			FontWeight:      "initial",
			BackgroundColor: "#ffffff",
		},
		Data: DataOptions{
			Striping: StripingOptions{Enabled: false, Color: "rgba(128,128,128,0.05)"},
		},
		Footnotes: FootnoteOptions{
			Marks:    MarksNumbers,
			FontSize: "90%",
		},
		SourceNotes: SourceNoteOptions{
			FontSize:        "90%",
			BackgroundColor: "#ffffff",
		},
	}
}

// Setting applies one option override. Settings merge: applying a setting
// leaves every other key untouched.
type Setting func(*Options) error

// Apply folds settings over a base registry and returns the merged result.
// The base value is never modified; a failing setting returns the error and
// discards the partial result.
func Apply(base Options, settings ...Setting) (Options, error) {
	out := base
	for _, setting := range settings {
		if setting == nil {
			continue
		}
		if err := setting(&out); err != nil {
			return Options{}, err
		}
	}
	return out, nil
}
