package style

import "strings"

// Weight keywords for TextConfig.Weight.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Slant keywords for TextConfig.Style.
const (
	StyleNormal = "normal"
	StyleItalic = "italic"
)

// TextConfig collects the text-level properties a Text directive can set.
// Zero-valued fields are left unassigned.
type TextConfig struct {
	Color      string
	Size       string
	Font       string
	Weight     string
	Style      string
	Align      string
	Transform  string
	Decorate   string
	Whitespace string
}

// Text builds a directive over the cell's text presentation.
func Text(cfg TextConfig) Directive {
	var assignments []Assignment
	assignments = assign(assignments, PropColor, cfg.Color)
	assignments = assign(assignments, PropSize, cfg.Size)
	assignments = assign(assignments, PropFont, cfg.Font)
	assignments = assign(assignments, PropWeight, cfg.Weight)
	assignments = assign(assignments, PropStyle, cfg.Style)
	assignments = assign(assignments, PropAlign, cfg.Align)
	assignments = assign(assignments, PropTransform, cfg.Transform)
	assignments = assign(assignments, PropDecorate, cfg.Decorate)
	assignments = assign(assignments, PropWhitespace, cfg.Whitespace)
	return Directive{assignments: assignments}
}

// Fill builds a directive setting the cell's background color.
func Fill(color string) Directive {
	return Directive{assignments: assign(nil, PropFill, color)}
}

// Side selects which cell edges a Borders directive applies to.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
	SideAll
)

var sideProps = map[Side][]Property{
	SideTop:    {PropBorderTop},
	SideBottom: {PropBorderBottom},
	SideLeft:   {PropBorderLeft},
	SideRight:  {PropBorderRight},
	SideAll:    {PropBorderTop, PropBorderBottom, PropBorderLeft, PropBorderRight},
}

// BorderConfig describes the border drawn on the selected sides. The value
// is stored as "style width color" shorthand; zero fields fall back to
// "solid", "1px", and "currentcolor".
type BorderConfig struct {
	Sides []Side
	Style string
	Width string
	Color string
}

// Borders builds a directive over the cell's edges. An empty Sides list
// means all four sides.
func Borders(cfg BorderConfig) Directive {
	lineStyle := cfg.Style
	if lineStyle == "" {
		lineStyle = "solid"
	}
	width := cfg.Width
	if width == "" {
		width = "1px"
	}
	color := cfg.Color
	if color == "" {
		color = "currentcolor"
	}
	value := strings.Join([]string{lineStyle, width, color}, " ")

	sides := cfg.Sides
	if len(sides) == 0 {
		sides = []Side{SideAll}
	}

	var assignments []Assignment
	seen := make(map[Property]struct{}, 4)
	for _, side := range sides {
		for _, prop := range sideProps[side] {
			if _, dup := seen[prop]; dup {
				continue
			}
			seen[prop] = struct{}{}
			assignments = append(assignments, Assignment{Property: prop, Value: value})
		}
	}
	return Directive{assignments: assignments}
}
