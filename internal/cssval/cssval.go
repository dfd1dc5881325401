// Package cssval validates the CSS-shaped values accepted by table options
// and style directives. Checks are deliberately shallow: the goal is catching
// obvious typos ("10pz", "#12345") at the call site, not re-implementing a
// CSS parser.
package cssval

import (
	"fmt"
	"strconv"
	"strings"
)

var lengthUnits = []string{"px", "pt", "em", "rem", "%", "ch", "vw", "vh"}

var borderStyles = map[string]struct{}{
	"none": {}, "hidden": {}, "solid": {}, "dashed": {}, "dotted": {}, "double": {},
}

var fontWeights = map[string]struct{}{
	"normal": {}, "bold": {}, "bolder": {}, "lighter": {},
	// CSS-wide keywords; the built-in defaults use "initial".
	"initial": {}, "inherit": {},
}

var alignments = map[string]struct{}{
	"left": {}, "center": {}, "right": {}, "justify": {},
}

// Color accepts #rgb/#rrggbb/#rrggbbaa hex values, rgb()/rgba()/hsl()
// functional notation, and bare keyword names.
func Color(v string) error {
	value := strings.TrimSpace(v)
	if value == "" {
		return fmt.Errorf("empty color")
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return fmt.Errorf("malformed hex color %q", v)
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return fmt.Errorf("malformed hex color %q", v)
			}
		}
		return nil
	}

	lower := strings.ToLower(value)
	for _, fn := range []string{"rgb(", "rgba(", "hsl(", "hsla("} {
		if strings.HasPrefix(lower, fn) && strings.HasSuffix(lower, ")") {
			return nil
		}
	}

	for _, r := range lower {
		if (r < 'a' || r > 'z') && r != '-' {
			return fmt.Errorf("malformed color %q", v)
		}
	}
	return nil
}

// Length accepts "auto", bare zero, percentages, and numbers with a known
// CSS unit.
func Length(v string) error {
	value := strings.TrimSpace(strings.ToLower(v))
	if value == "" {
		return fmt.Errorf("empty length")
	}
	if value == "auto" || value == "0" {
		return nil
	}
	for _, unit := range lengthUnits {
		if num, ok := strings.CutSuffix(value, unit); ok {
			if _, err := strconv.ParseFloat(num, 64); err != nil {
				return fmt.Errorf("malformed length %q", v)
			}
			return nil
		}
	}
	return fmt.Errorf("length %q needs a unit (%s)", v, strings.Join(lengthUnits, ", "))
}

// FontWeight accepts the CSS keywords plus 100..900 in steps of 100.
func FontWeight(v string) error {
	value := strings.TrimSpace(strings.ToLower(v))
	if _, ok := fontWeights[value]; ok {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n >= 100 && n <= 900 && n%100 == 0 {
			return nil
		}
	}
	return fmt.Errorf("invalid font weight %q", v)
}

// BorderStyle accepts the line styles the renderers understand.
func BorderStyle(v string) error {
	if _, ok := borderStyles[strings.TrimSpace(strings.ToLower(v))]; !ok {
		return fmt.Errorf("invalid border style %q", v)
	}
	return nil
}

// Align accepts horizontal alignment keywords.
func Align(v string) error {
	if _, ok := alignments[strings.TrimSpace(strings.ToLower(v))]; !ok {
		return fmt.Errorf("invalid alignment %q", v)
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}
