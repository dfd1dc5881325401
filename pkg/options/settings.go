package options

import (
	"fmt"

	"github.com/goliatone/go-tablegen/internal/cssval"
)

// Edge names a side of the table for border settings.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
}

// --- table ---

// TableWidth sets the overall table width ("auto", "100%", "640px", ...).
func TableWidth(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("table.width", err)
		}
		o.Table.Width = v
		return nil
	}
}

// TableBackgroundColor sets the table background.
func TableBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("table.background.color", err)
		}
		o.Table.BackgroundColor = v
		return nil
	}
}

// TableFontSize sets the base font size.
func TableFontSize(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("table.font.size", err)
		}
		o.Table.FontSize = v
		return nil
	}
}

func tableEdge(o *Options, edge Edge) (*BorderEdge, error) {
	switch edge {
	case EdgeTop:
		return &o.Table.Border.Top, nil
	case EdgeBottom:
		return &o.Table.Border.Bottom, nil
	case EdgeLeft:
		return &o.Table.Border.Left, nil
	case EdgeRight:
		return &o.Table.Border.Right, nil
	default:
		return nil, fmt.Errorf("%w: table.border: unknown edge %q", ErrInvalidValue, edge)
	}
}

// TableBorderColor sets one table border edge color.
func TableBorderColor(edge Edge, v string) Setting {
	return func(o *Options) error {
		target, err := tableEdge(o, edge)
		if err != nil {
			return err
		}
		if err := cssval.Color(v); err != nil {
			return invalid(fmt.Sprintf("table.border.%s.color", edge), err)
		}
		target.Color = v
		return nil
	}
}

// TableBorderStyle sets one table border edge line style.
func TableBorderStyle(edge Edge, v string) Setting {
	return func(o *Options) error {
		target, err := tableEdge(o, edge)
		if err != nil {
			return err
		}
		if err := cssval.BorderStyle(v); err != nil {
			return invalid(fmt.Sprintf("table.border.%s.style", edge), err)
		}
		target.Style = v
		return nil
	}
}

// TableBorderWidth sets one table border edge width.
func TableBorderWidth(edge Edge, v string) Setting {
	return func(o *Options) error {
		target, err := tableEdge(o, edge)
		if err != nil {
			return err
		}
		if err := cssval.Length(v); err != nil {
			return invalid(fmt.Sprintf("table.border.%s.width", edge), err)
		}
		target.Width = v
		return nil
	}
}

// --- heading ---

// HeadingAlign sets title/subtitle alignment.
func HeadingAlign(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Align(v); err != nil {
			return invalid("heading.align", err)
		}
		o.Heading.Align = v
		return nil
	}
}

// HeadingBackgroundColor sets the heading block background.
func HeadingBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("heading.background.color", err)
		}
		o.Heading.BackgroundColor = v
		return nil
	}
}

// TitleFontSize sets the title font size.
func TitleFontSize(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("heading.title.font.size", err)
		}
		o.Heading.TitleFontSize = v
		return nil
	}
}

// SubtitleFontSize sets the subtitle font size.
func SubtitleFontSize(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("heading.subtitle.font.size", err)
		}
		o.Heading.SubtitleFontSize = v
		return nil
	}
}

// --- column labels ---

// ColumnLabelsFontWeight sets the column label weight.
func ColumnLabelsFontWeight(v string) Setting {
	return func(o *Options) error {
		if err := cssval.FontWeight(v); err != nil {
			return invalid("column_labels.font.weight", err)
		}
		o.ColumnLabels.FontWeight = v
		return nil
	}
}

// ColumnLabelsTextTransform sets the column label text transform.
func ColumnLabelsTextTransform(v string) Setting {
	return func(o *Options) error {
		switch v {
		case "uppercase", "lowercase", "capitalize", "inherit", "none":
			o.ColumnLabels.TextTransform = v
			return nil
		default:
			return fmt.Errorf("%w: column_labels.text.transform: invalid transform %q", ErrInvalidValue, v)
		}
	}
}

// ColumnLabelsBackgroundColor sets the column label row background.
func ColumnLabelsBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("column_labels.background.color", err)
		}
		o.ColumnLabels.BackgroundColor = v
		return nil
	}
}

// --- row groups and stub ---

// RowGroupFontWeight sets the row-group label weight.
func RowGroupFontWeight(v string) Setting {
	return func(o *Options) error {
		if err := cssval.FontWeight(v); err != nil {
			return invalid("row_group.font.weight", err)
		}
		o.RowGroup.FontWeight = v
		return nil
	}
}

// RowGroupBackgroundColor sets the row-group label background.
func RowGroupBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("row_group.background.color", err)
		}
		o.RowGroup.BackgroundColor = v
		return nil
	}
}

// StubFontWeight sets the stub cell weight.
func StubFontWeight(v string) Setting {
	return func(o *Options) error {
		if err := cssval.FontWeight(v); err != nil {
			return invalid("stub.font.weight", err)
		}
		o.Stub.FontWeight = v
		return nil
	}
}

// StubBackgroundColor sets the stub column background.
func StubBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("stub.background.color", err)
		}
		o.Stub.BackgroundColor = v
		return nil
	}
}

// --- body ---

// RowStriping toggles alternate-row shading.
func RowStriping(enabled bool) Setting {
	return func(o *Options) error {
		o.Data.Striping.Enabled = enabled
		return nil
	}
}

// RowStripingColor sets the shading color used when striping is on.
func RowStripingColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("data.striping.color", err)
		}
		o.Data.Striping.Color = v
		return nil
	}
}

// --- footer ---

// FootnoteMarks selects the footnote mark sequence.
func FootnoteMarks(seq MarkSequence) Setting {
	return func(o *Options) error {
		if !seq.valid() {
			return fmt.Errorf("%w: footnotes.marks: unknown sequence %q", ErrInvalidValue, seq)
		}
		o.Footnotes.Marks = seq
		return nil
	}
}

// FootnoteFontSize sets the footnote footer font size.
func FootnoteFontSize(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("footnotes.font.size", err)
		}
		o.Footnotes.FontSize = v
		return nil
	}
}

// SourceNoteFontSize sets the source-note footer font size.
func SourceNoteFontSize(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Length(v); err != nil {
			return invalid("source_notes.font.size", err)
		}
		o.SourceNotes.FontSize = v
		return nil
	}
}

// SourceNoteBackgroundColor sets the source-note footer background.
func SourceNoteBackgroundColor(v string) Setting {
	return func(o *Options) error {
		if err := cssval.Color(v); err != nil {
			return invalid("source_notes.background.color", err)
		}
		o.SourceNotes.BackgroundColor = v
		return nil
	}
}
