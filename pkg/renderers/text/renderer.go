// Package text renders composed table documents for terminals: box-drawing
// chrome with rune-width-aware layout, numeric columns right-aligned, and
// style directives mapped onto ANSI sequences after alignment so escape codes
// never distort the grid.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/render"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

type Option func(*config)

type config struct {
	border BorderStyle
	color  bool
}

// WithBorder selects the box-drawing character set.
func WithBorder(style BorderStyle) Option {
	return func(cfg *config) {
		cfg.border = style
	}
}

// WithColor enables ANSI styling of cells that carry style directives.
// Disabled by default so piped output stays clean.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

type Renderer struct {
	chars borderChars
	color bool
}

// New constructs the text renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{border: BorderRounded}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	chars, ok := borderSets[cfg.border]
	if !ok {
		return nil, fmt.Errorf("text renderer: unknown border style %q", cfg.border)
	}
	return &Renderer{chars: chars, color: cfg.color}, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc *render.Document, _ render.RenderOptions) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("text renderer: document is required")
	}

	layout := r.buildLayout(doc)
	return []byte(layout.draw(r.chars)), nil
}

// tableLayout is the fully measured grid plus the band rows around it.
type tableLayout struct {
	title    []bandCell
	spanners []bandCell

	labels []cell

	groups       []groupLayout
	grandSummary [][]cell

	footer []string

	widths []int
}

type groupLayout struct {
	label     *cell
	rows      [][]cell
	summaries [][]cell
}

func (r *Renderer) buildLayout(doc *render.Document) *tableLayout {
	labelCol := doc.HasStub() || len(doc.GrandSummary) > 0
	for _, block := range doc.Groups {
		if len(block.Summaries) > 0 {
			labelCol = true
		}
	}

	numCols := len(doc.Columns)
	if labelCol {
		numCols++
	}

	aligns := columnAlignments(doc)

	layout := &tableLayout{}

	if !doc.Title.IsZero() {
		layout.title = append(layout.title, r.bandFor(doc, doc.Title.PlainText(),
			cells.Coordinate{Region: cells.RegionTitle, Row: cells.NoRow}, numCols))
	}
	if !doc.Subtitle.IsZero() {
		layout.title = append(layout.title, r.bandFor(doc, doc.Subtitle.PlainText(),
			cells.Coordinate{Region: cells.RegionSubtitle, Row: cells.NoRow}, numCols))
	}

	layout.spanners = r.spannerBand(doc, labelCol)

	if labelCol {
		coord := cells.Coordinate{Region: cells.RegionStubhead, Row: cells.NoRow}
		layout.labels = append(layout.labels, r.cellFor(doc, doc.Stubhead.PlainText(), coord, alignLeft))
	}
	for _, column := range doc.Columns {
		coord := cells.Coordinate{Region: cells.RegionColumnLabel, Column: column.ID, Row: cells.NoRow}
		layout.labels = append(layout.labels, r.cellFor(doc, column.Label.PlainText(), coord, alignCenter))
	}

	for _, block := range doc.Groups {
		group := groupLayout{}
		if block.Name != "" {
			coord := cells.Coordinate{Region: cells.RegionRowGroupLabel, Group: block.Name, Row: cells.NoRow}
			label := r.cellFor(doc, block.Name, coord, alignLeft)
			group.label = &label
		}

		for _, row := range block.Rows {
			var cellsOut []cell
			if doc.HasStub() {
				coord := cells.Coordinate{Region: cells.RegionStub, Row: row.Index, Group: block.Name}
				cellsOut = append(cellsOut, r.cellFor(doc, row.Stub, coord, alignLeft))
			} else if labelCol {
				cellsOut = append(cellsOut, cell{})
			}
			for i, c := range row.Cells {
				coord := cells.Coordinate{Region: cells.RegionBody, Column: c.Column, Row: row.Index, Group: block.Name}
				cellsOut = append(cellsOut, r.cellFor(doc, c.Text, coord, aligns[i]))
			}
			group.rows = append(group.rows, cellsOut)
		}

		for _, summary := range block.Summaries {
			group.summaries = append(group.summaries, r.summaryCells(doc, summary, block.Name, aligns, labelCol))
		}

		layout.groups = append(layout.groups, group)
	}

	for _, summary := range doc.GrandSummary {
		layout.grandSummary = append(layout.grandSummary, r.summaryCells(doc, summary, "", aligns, labelCol))
	}

	for _, line := range doc.Footer {
		text := line.Text.PlainText()
		if line.Mark != "" {
			text = "(" + line.Mark + ") " + text
		}
		layout.footer = append(layout.footer, text)
	}

	grid := [][]cell{layout.labels}
	for _, group := range layout.groups {
		grid = append(grid, group.rows...)
		grid = append(grid, group.summaries...)
	}
	grid = append(grid, layout.grandSummary...)
	layout.widths = computeWidths(numCols, grid)

	return layout
}

func (r *Renderer) summaryCells(doc *render.Document, summary render.SummaryRow, group string, aligns []alignment, labelCol bool) []cell {
	region := cells.RegionSummary
	if summary.Grand {
		region = cells.RegionGrandSummary
	}

	var out []cell
	if labelCol {
		out = append(out, cell{text: summary.Label, align: alignLeft})
	}
	for i, c := range summary.Cells {
		coord := cells.Coordinate{Region: region, Column: c.Column, Row: cells.NoRow}
		if !summary.Grand {
			coord.Group = group
		}
		out = append(out, r.cellFor(doc, c.Text, coord, aligns[i]))
	}
	return out
}

// spannerBand merges each spanner's contiguous column runs into spanning
// cells; uncovered columns become one-column fillers.
func (r *Renderer) spannerBand(doc *render.Document, labelCol bool) []bandCell {
	if len(doc.Spanners) == 0 {
		return nil
	}

	coveredBy := make(map[string]int, len(doc.Columns))
	for i, spanner := range doc.Spanners {
		for _, column := range spanner.Columns {
			coveredBy[column] = i
		}
	}

	var band []bandCell
	if labelCol {
		band = append(band, bandCell{span: 1})
	}
	for i := 0; i < len(doc.Columns); {
		index, covered := coveredBy[doc.Columns[i].ID]
		if !covered {
			band = append(band, bandCell{span: 1})
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
		band = append(band, bandCell{
			cell: r.cellFor(doc, spanner.Label.PlainText(), coord, alignCenter),
			span: run,
		})
		i += run
	}
	return band
}

func (r *Renderer) bandFor(doc *render.Document, text string, coord cells.Coordinate, span int) bandCell {
	return bandCell{cell: r.cellFor(doc, text, coord, alignCenter), span: span}
}

// cellFor assembles one grid cell: footnote marks appended to the text, the
// directive alignment override applied, and the ANSI style attached when
// color output is on.
func (r *Renderer) cellFor(doc *render.Document, text string, coord cells.Coordinate, fallback alignment) cell {
	for _, mark := range doc.MarksAt(coord) {
		text += "(" + mark + ")"
	}

	directive := doc.StyleAt(coord)
	out := cell{
		text:  text,
		align: directiveAlign(directive, fallback),
	}
	if r.color {
		out.style = ansiStyle(directive)
	}
	return out
}

// columnAlignments right-aligns columns whose values are all numeric.
func columnAlignments(doc *render.Document) []alignment {
	aligns := make([]alignment, len(doc.Columns))
	for i := range aligns {
		aligns[i] = alignRight
	}

	for _, block := range doc.Groups {
		for _, row := range block.Rows {
			for i, c := range row.Cells {
				if c.Value == nil {
					continue
				}
				if _, ok := tabular.AsFloat(c.Value); !ok {
					aligns[i] = alignLeft
				}
			}
		}
	}
	return aligns
}

func (l *tableLayout) draw(bc borderChars) string {
	var sb strings.Builder

	hasBands := len(l.title) > 0 || len(l.spanners) > 0
	if hasBands {
		drawHLine(&sb, l.widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight)
	} else {
		drawHLine(&sb, l.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	}

	for _, band := range l.title {
		drawBandRow(&sb, []bandCell{band}, l.widths, bc.vertical)
	}
	if len(l.title) > 0 && len(l.spanners) > 0 {
		drawHLine(&sb, l.widths, bc.leftTee, bc.horizontal, bc.horizontal, bc.rightTee)
	}
	if len(l.spanners) > 0 {
		drawBandRow(&sb, l.spanners, l.widths, bc.vertical)
	}
	if hasBands {
		drawHLine(&sb, l.widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee)
	}

	drawRow(&sb, l.labels, l.widths, bc.vertical)
	sep := func() {
		drawHLine(&sb, l.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	}
	sep()

	for gi, group := range l.groups {
		if gi > 0 {
			sep()
		}
		if group.label != nil {
			drawBandRow(&sb, []bandCell{{cell: *group.label, span: len(l.widths)}}, l.widths, bc.vertical)
		}
		for _, row := range group.rows {
			drawRow(&sb, row, l.widths, bc.vertical)
		}
		for si, row := range group.summaries {
			if si == 0 {
				sep()
			}
			drawRow(&sb, row, l.widths, bc.vertical)
		}
	}

	for si, row := range l.grandSummary {
		if si == 0 {
			sep()
		}
		drawRow(&sb, row, l.widths, bc.vertical)
	}

	drawHLine(&sb, l.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)

	for _, line := range l.footer {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
