package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// cell is one laid-out grid cell: display text plus an ANSI style applied
// after alignment so escape codes never affect width math.
type cell struct {
	text  string
	align alignment
	style func(string) string
}

func computeWidths(numCols int, grid [][]cell) []int {
	widths := make([]int, numCols)
	for _, row := range grid {
		for i, c := range row {
			if i >= numCols {
				break
			}
			if w := runewidth.StringWidth(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// tableInnerWidth returns the total character width between the outer
// vertical borders. Each cell contributes its width plus one space of padding
// per side; cells are separated by a single border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(sb *strings.Builder, widths []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

func drawRow(sb *strings.Builder, cells []cell, widths []int, vert string) {
	sb.WriteString(vert)
	for i, width := range widths {
		var c cell
		if i < len(cells) {
			c = cells[i]
		}
		sb.WriteString(" ")
		formatted := formatCell(c.text, width, c.align)
		if c.style != nil {
			formatted = c.style(formatted)
		}
		sb.WriteString(formatted)
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	sb.WriteString("\n")
}

// drawBandRow draws a row of cells that may span several columns, used for
// the title band and spanner labels.
type bandCell struct {
	cell
	span int
}

func drawBandRow(sb *strings.Builder, cells []bandCell, widths []int, vert string) {
	sb.WriteString(vert)
	col := 0
	for i, c := range cells {
		span := c.span
		if span < 1 {
			span = 1
		}
		end := col + span
		if end > len(widths) {
			end = len(widths)
		}
		inner := tableInnerWidth(widths[col:end])
		col = end

		sb.WriteString(" ")
		formatted := formatCell(c.text, inner-2, c.align)
		if c.style != nil {
			formatted = c.style(formatted)
		}
		sb.WriteString(formatted)
		sb.WriteString(" ")
		if i < len(cells)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	sb.WriteString("\n")
}

func formatCell(s string, width int, align alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignText(s, width, align)
}

func alignText(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
