package table

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/style"
)

// StyleEntry is one recorded Style call: the coordinates it resolved to and
// the directive it carries. Seq preserves insertion order.
type StyleEntry struct {
	Seq         int                `json:"seq"`
	Coordinates []cells.Coordinate `json:"coordinates"`
	Directive   style.Directive    `json:"directive"`
}

// FootnoteEntry is one recorded Footnote call. Entries with no coordinates
// still render in the footer, without a mark.
type FootnoteEntry struct {
	Seq         int                `json:"seq"`
	Coordinates []cells.Coordinate `json:"coordinates"`
	Text        richtext.Text      `json:"text"`
}

// Decorations is the append-only style/annotation store. The zero value is
// an empty store; entries are never removed or reordered.
type Decorations struct {
	styles    []StyleEntry
	footnotes []FootnoteEntry
}

func (d Decorations) clone() Decorations {
	return Decorations{
		styles:    append([]StyleEntry(nil), d.styles...),
		footnotes: append([]FootnoteEntry(nil), d.footnotes...),
	}
}

func (d Decorations) addStyle(coords []cells.Coordinate, directive style.Directive) Decorations {
	out := d.clone()
	out.styles = append(out.styles, StyleEntry{
		Seq:         len(out.styles),
		Coordinates: append([]cells.Coordinate(nil), coords...),
		Directive:   directive,
	})
	return out
}

func (d Decorations) addFootnote(coords []cells.Coordinate, text richtext.Text) Decorations {
	out := d.clone()
	out.footnotes = append(out.footnotes, FootnoteEntry{
		Seq:         len(out.footnotes),
		Coordinates: append([]cells.Coordinate(nil), coords...),
		Text:        text,
	})
	return out
}

// Styles returns the style entries in insertion order.
func (d Decorations) Styles() []StyleEntry {
	return append([]StyleEntry(nil), d.styles...)
}

// Footnotes returns the footnote entries in insertion order.
func (d Decorations) Footnotes() []FootnoteEntry {
	return append([]FootnoteEntry(nil), d.footnotes...)
}

// Empty reports whether the store holds no entries.
func (d Decorations) Empty() bool {
	return len(d.styles) == 0 && len(d.footnotes) == 0
}

// MergedAt folds every style entry covering the coordinate into one
// directive, in insertion order, so later entries override earlier ones per
// property.
func (d Decorations) MergedAt(coord cells.Coordinate) style.Directive {
	var stack []style.Directive
	for _, entry := range d.styles {
		for _, c := range entry.Coordinates {
			if c == coord {
				stack = append(stack, entry.Directive)
				break
			}
		}
	}
	return style.Merge(stack...)
}

type decorationsJSON struct {
	Styles    []StyleEntry    `json:"styles"`
	Footnotes []FootnoteEntry `json:"footnotes"`
}

// MarshalJSON serializes the store with insertion order intact.
func (d Decorations) MarshalJSON() ([]byte, error) {
	return json.Marshal(decorationsJSON{Styles: d.styles, Footnotes: d.footnotes})
}

// UnmarshalJSON restores a serialized store.
func (d *Decorations) UnmarshalJSON(data []byte) error {
	var raw decorationsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("table: decode decorations: %w", err)
	}
	d.styles = raw.Styles
	d.footnotes = raw.Footnotes
	return nil
}
