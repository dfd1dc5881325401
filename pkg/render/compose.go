package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/style"
	"github.com/goliatone/go-tablegen/pkg/table"
)

// Compose flattens a table value into a Document. Composition is read-only
// and deterministic: the same table always yields the same document, with
// footnote marks assigned in reading order.
func Compose(tbl *table.Table) (*Document, error) {
	if tbl == nil {
		return nil, errors.New("render: table is required")
	}

	shape := tbl.Shape()

	doc := &Document{
		Title:      tbl.Title(),
		Subtitle:   tbl.Subtitle(),
		Stubhead:   tbl.StubheadLabel(),
		StubColumn: tbl.StubColumn(),
		Options:    tbl.OptionSet(),
	}

	for _, id := range shape.Columns {
		doc.Columns = append(doc.Columns, Column{ID: id, Label: tbl.ColumnLabel(id)})
	}
	for _, spanner := range tbl.Spanners() {
		doc.Spanners = append(doc.Spanners, SpannerBand{
			ID:      spanner.ID,
			Label:   spanner.Label,
			Columns: append([]string(nil), spanner.Columns...),
		})
	}

	if err := composeGroups(doc, tbl, shape); err != nil {
		return nil, err
	}
	composeSummaries(doc, tbl, shape)

	decor := tbl.Decorations()
	doc.styles = mergeStyles(decor)
	doc.marks, doc.Footer = assignMarks(shape, decor.Footnotes(), doc.Options.Footnotes.Marks)

	for _, note := range tbl.SourceNotes() {
		doc.Footer = append(doc.Footer, FooterLine{Text: note, SourceNote: true})
	}

	return doc, nil
}

func composeGroups(doc *Document, tbl *table.Table, shape cells.Shape) error {
	frame := tbl.Frame()

	groupNames := shape.Groups
	if len(groupNames) == 0 {
		groupNames = []string{""}
	}

	blocks := make(map[string]*GroupBlock, len(groupNames))
	for _, name := range groupNames {
		block := &GroupBlock{Name: name}
		blocks[name] = block
	}

	for i := 0; i < frame.NumRows(); i++ {
		block, ok := blocks[frame.RowGroup(i)]
		if !ok {
			continue
		}

		row := BodyRow{Index: i}
		if shape.HasStub() {
			stub, err := frame.Value(i, shape.StubColumn)
			if err != nil {
				return fmt.Errorf("render: compose stub cell at row %d: %w", i, err)
			}
			row.Stub = CellText(stub)
		}
		for _, column := range shape.Columns {
			v, err := frame.Value(i, column)
			if err != nil {
				return fmt.Errorf("render: compose body cell %s[%d]: %w", column, i, err)
			}
			row.Cells = append(row.Cells, Cell{Column: column, Value: v, Text: CellText(v)})
		}
		block.Rows = append(block.Rows, row)
	}

	for _, name := range groupNames {
		doc.Groups = append(doc.Groups, *blocks[name])
	}
	return nil
}

func composeSummaries(doc *Document, tbl *table.Table, shape cells.Shape) {
	blockIndex := make(map[string]int, len(doc.Groups))
	for i, block := range doc.Groups {
		blockIndex[block.Name] = i
	}

	for _, def := range tbl.SummaryDefs() {
		if def.Grand {
			doc.GrandSummary = append(doc.GrandSummary, summaryRow(def, "", shape.Columns))
			continue
		}
		for _, group := range def.Groups {
			i, ok := blockIndex[group]
			if !ok {
				continue
			}
			doc.Groups[i].Summaries = append(doc.Groups[i].Summaries, summaryRow(def, group, shape.Columns))
		}
	}
}

func summaryRow(def table.SummaryDef, group string, columns []string) SummaryRow {
	row := SummaryRow{Label: def.Label, Grand: def.Grand}
	for _, column := range columns {
		cell := Cell{Column: column}
		if v, ok := def.Values[group][column]; ok {
			cell.Value = v
			cell.Text = CellText(v)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// mergeStyles folds the style entries into one directive per coordinate,
// later entries winning property-wise.
func mergeStyles(decor table.Decorations) map[cells.Coordinate]style.Directive {
	out := make(map[cells.Coordinate]style.Directive)
	for _, entry := range decor.Styles() {
		for _, coord := range entry.Coordinates {
			if _, done := out[coord]; done {
				continue
			}
			merged := decor.MergedAt(coord)
			if !merged.IsZero() {
				out[coord] = merged
			}
		}
	}
	return out
}
