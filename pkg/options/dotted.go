package options

import (
	"fmt"
	"sort"
	"strconv"
)

// The dotted-key registry is the textual ingestion boundary: config files
// and theme tokens address options by name, everything else goes through the
// typed setters.
var dottedRegistry = map[string]func(string) Setting{
	"table.width":                    TableWidth,
	"table.background.color":         TableBackgroundColor,
	"table.font.size":                TableFontSize,
	"heading.align":                  HeadingAlign,
	"heading.background.color":       HeadingBackgroundColor,
	"heading.title.font.size":        TitleFontSize,
	"heading.subtitle.font.size":     SubtitleFontSize,
	"column_labels.font.weight":      ColumnLabelsFontWeight,
	"column_labels.text.transform":   ColumnLabelsTextTransform,
	"column_labels.background.color": ColumnLabelsBackgroundColor,
	"row_group.font.weight":          RowGroupFontWeight,
	"row_group.background.color":     RowGroupBackgroundColor,
	"stub.font.weight":               StubFontWeight,
	"stub.background.color":          StubBackgroundColor,
	"data.striping.color":            RowStripingColor,
	"footnotes.font.size":            FootnoteFontSize,
	"source_notes.font.size":         SourceNoteFontSize,
	"source_notes.background.color":  SourceNoteBackgroundColor,

	"data.striping.enabled": func(v string) Setting {
		return func(o *Options) error {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: data.striping.enabled: not a boolean: %q", ErrInvalidValue, v)
			}
			return RowStriping(enabled)(o)
		}
	},
	"footnotes.marks": func(v string) Setting {
		return FootnoteMarks(MarkSequence(v))
	},
}

func init() {
	for _, edge := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		edge := edge
		dottedRegistry[fmt.Sprintf("table.border.%s.color", edge)] = func(v string) Setting {
			return TableBorderColor(edge, v)
		}
		dottedRegistry[fmt.Sprintf("table.border.%s.style", edge)] = func(v string) Setting {
			return TableBorderStyle(edge, v)
		}
		dottedRegistry[fmt.Sprintf("table.border.%s.width", edge)] = func(v string) Setting {
			return TableBorderWidth(edge, v)
		}
	}
}

// Keyed returns the Setting for a dotted option key. Unknown keys fail here,
// at the ingestion call, so typos in deeply nested names surface instead of
// being silently dropped.
func Keyed(key, value string) (Setting, error) {
	build, ok := dottedRegistry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return build(value), nil
}

// Keys lists every known dotted option key, sorted.
func Keys() []string {
	out := make([]string, 0, len(dottedRegistry))
	for key := range dottedRegistry {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// FromMap converts a document of dotted (or nested) keys into settings.
// Nested maps flatten by joining segments with dots; leaf values stringify.
// Settings come back in sorted key order so ingestion is deterministic.
func FromMap(values map[string]any) ([]Setting, error) {
	flat := make(map[string]string)
	if err := flatten("", values, flat); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	settings := make([]Setting, 0, len(keys))
	for _, key := range keys {
		setting, err := Keyed(key, flat[key])
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, nil
}

func flatten(prefix string, value any, dest map[string]string) error {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if err := flatten(path, child, dest); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for key, child := range v {
			name, ok := key.(string)
			if !ok {
				return fmt.Errorf("%w: non-string key %v under %q", ErrUnknownOption, key, prefix)
			}
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			if err := flatten(path, child, dest); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return nil
	case bool:
		dest[prefix] = strconv.FormatBool(v)
		return nil
	case string:
		dest[prefix] = v
		return nil
	default:
		dest[prefix] = fmt.Sprintf("%v", v)
		return nil
	}
}
