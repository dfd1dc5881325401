package html

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/render"
	"github.com/goliatone/go-tablegen/pkg/richtext"
)

// viewCell is one fully precomputed table cell: sanitized markup, the merged
// inline style, and its footnote marks. Templates only interpolate.
type viewCell struct {
	HTML  string
	Style string
	Marks []string
	Span  int
}

type viewRow struct {
	Group   string
	Stub    *viewCell
	Cells   []viewCell
	Striped bool
}

type viewSummaryRow struct {
	Label string
	Cells []viewCell
	Grand bool
}

type viewGroup struct {
	Label     *viewCell
	Rows      []viewRow
	Summaries []viewSummaryRow
}

type viewFooterLine struct {
	Mark       string
	HTML       string
	SourceNote bool
}

type view struct {
	CSS string

	HasHeading bool
	Title      *viewCell
	Subtitle   *viewCell

	HasStub bool
	// LabelColumn reports whether the layout reserves a leading column for
	// stub and summary labels.
	LabelColumn bool
	Stubhead    *viewCell

	SpannerBand []viewCell
	HasSpanners bool
	Columns     []viewCell

	Groups       []viewGroup
	GrandSummary []viewSummaryRow

	Footer []viewFooterLine

	// TotalSpan is the colspan covering the full table width.
	TotalSpan int
}

func buildView(doc *render.Document, themeCfg *theme.RendererConfig) *view {
	v := &view{
		CSS:       tableCSS(doc.Options, themeCfg),
		HasStub:   doc.HasStub(),
		TotalSpan: len(doc.Columns),
	}
	v.LabelColumn = v.HasStub || len(doc.GrandSummary) > 0
	for _, block := range doc.Groups {
		if len(block.Summaries) > 0 {
			v.LabelColumn = true
		}
	}
	if v.LabelColumn {
		v.TotalSpan++
	}

	buildHeading(v, doc)
	buildColumnBands(v, doc)
	buildBody(v, doc)
	buildFooter(v, doc)
	return v
}

func buildHeading(v *view, doc *render.Document) {
	if !doc.Title.IsZero() {
		v.Title = regionCell(doc, doc.Title, cells.Coordinate{Region: cells.RegionTitle, Row: cells.NoRow})
	}
	if !doc.Subtitle.IsZero() {
		v.Subtitle = regionCell(doc, doc.Subtitle, cells.Coordinate{Region: cells.RegionSubtitle, Row: cells.NoRow})
	}
	v.HasHeading = v.Title != nil || v.Subtitle != nil

	if v.LabelColumn {
		coord := cells.Coordinate{Region: cells.RegionStubhead, Row: cells.NoRow}
		if !doc.Stubhead.IsZero() {
			v.Stubhead = regionCell(doc, doc.Stubhead, coord)
		} else {
			v.Stubhead = &viewCell{Span: 1}
		}
	}
}

// buildColumnBands lays out the spanner band and the column label row.
// Columns under the same spanner collapse into one spanning cell per
// contiguous run; uncovered columns get empty filler cells.
func buildColumnBands(v *view, doc *render.Document) {
	coveredBy := make(map[string]int, len(doc.Columns))
	for i, spanner := range doc.Spanners {
		for _, column := range spanner.Columns {
			coveredBy[column] = i
		}
	}

	if len(doc.Spanners) > 0 {
		v.HasSpanners = true
		for i := 0; i < len(doc.Columns); {
			index, covered := coveredBy[doc.Columns[i].ID]
			if !covered {
				v.SpannerBand = append(v.SpannerBand, viewCell{Span: 1})
				i++
				continue
			}
			run := 0
			for i+run < len(doc.Columns) {
				next, ok := coveredBy[doc.Columns[i+run].ID]
				if !ok || next != index {
					break
				}
				run++
			}
			spanner := doc.Spanners[index]
			coord := cells.Coordinate{Region: cells.RegionColumnSpanner, Spanner: spanner.ID, Row: cells.NoRow}
			cell := regionCell(doc, spanner.Label, coord)
			cell.Span = run
			v.SpannerBand = append(v.SpannerBand, *cell)
			i += run
		}
	}

	for _, column := range doc.Columns {
		coord := cells.Coordinate{Region: cells.RegionColumnLabel, Column: column.ID, Row: cells.NoRow}
		v.Columns = append(v.Columns, *regionCell(doc, column.Label, coord))
	}
}

func buildBody(v *view, doc *render.Document) {
	striping := doc.Options.Data.Striping.Enabled
	parity := 0

	for _, block := range doc.Groups {
		group := viewGroup{}
		if block.Name != "" {
			coord := cells.Coordinate{Region: cells.RegionRowGroupLabel, Group: block.Name, Row: cells.NoRow}
			group.Label = regionCell(doc, richtext.Plain(block.Name), coord)
		}

		for _, row := range block.Rows {
			vr := viewRow{Group: block.Name, Striped: striping && parity%2 == 1}
			parity++

			if v.HasStub {
				coord := cells.Coordinate{Region: cells.RegionStub, Row: row.Index, Group: block.Name}
				vr.Stub = regionCell(doc, richtext.Plain(row.Stub), coord)
			} else if v.LabelColumn {
				vr.Stub = &viewCell{Span: 1}
			}
			for _, cell := range row.Cells {
				coord := cells.Coordinate{Region: cells.RegionBody, Column: cell.Column, Row: row.Index, Group: block.Name}
				vr.Cells = append(vr.Cells, *regionCell(doc, richtext.Plain(cell.Text), coord))
			}
			group.Rows = append(group.Rows, vr)
		}

		for _, summary := range block.Summaries {
			group.Summaries = append(group.Summaries, summaryView(doc, summary, block.Name))
		}

		v.Groups = append(v.Groups, group)
	}

	for _, summary := range doc.GrandSummary {
		v.GrandSummary = append(v.GrandSummary, summaryView(doc, summary, ""))
	}
}

func summaryView(doc *render.Document, row render.SummaryRow, group string) viewSummaryRow {
	region := cells.RegionSummary
	if row.Grand {
		region = cells.RegionGrandSummary
	}

	out := viewSummaryRow{Label: row.Label, Grand: row.Grand}
	for _, cell := range row.Cells {
		coord := cells.Coordinate{Region: region, Column: cell.Column, Row: cells.NoRow}
		if !row.Grand {
			coord.Group = group
		}
		out.Cells = append(out.Cells, *regionCell(doc, richtext.Plain(cell.Text), coord))
	}
	return out
}

func buildFooter(v *view, doc *render.Document) {
	for _, line := range doc.Footer {
		v.Footer = append(v.Footer, viewFooterLine{
			Mark:       line.Mark,
			HTML:       line.Text.HTML(),
			SourceNote: line.SourceNote,
		})
	}
}

func regionCell(doc *render.Document, text richtext.Text, coord cells.Coordinate) *viewCell {
	return &viewCell{
		HTML:  text.HTML(),
		Style: inlineStyle(doc.StyleAt(coord)),
		Marks: doc.MarksAt(coord),
		Span:  1,
	}
}
