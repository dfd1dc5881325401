// Package style defines the composable cell style directives attached to
// resolved table locations. A directive is an ordered set of property
// assignments; directives stack, and when two assignments hit the same
// property the later one wins.
package style

import (
	"encoding/json"
	"fmt"
)

// Property names a single styleable attribute of a cell.
type Property string

const (
	PropColor         Property = "text.color"
	PropSize          Property = "text.size"
	PropFont          Property = "text.font"
	PropWeight        Property = "text.weight"
	PropStyle         Property = "text.style"
	PropAlign         Property = "text.align"
	PropTransform     Property = "text.transform"
	PropDecorate      Property = "text.decorate"
	PropWhitespace    Property = "text.whitespace"
	PropFill          Property = "fill.color"
	PropBorderTop     Property = "border.top"
	PropBorderBottom  Property = "border.bottom"
	PropBorderLeft    Property = "border.left"
	PropBorderRight   Property = "border.right"
)

// Assignment binds one property to a value.
type Assignment struct {
	Property Property `json:"property"`
	Value    string   `json:"value"`
}

// Directive is an immutable, ordered collection of property assignments.
// The zero value assigns nothing.
type Directive struct {
	assignments []Assignment
}

// Assignments returns the directive's assignments in application order.
func (d Directive) Assignments() []Assignment {
	return append([]Assignment(nil), d.assignments...)
}

// IsZero reports whether the directive assigns no properties.
func (d Directive) IsZero() bool {
	return len(d.assignments) == 0
}

// Value returns the directive's value for a property, if assigned.
func (d Directive) Value(p Property) (string, bool) {
	for i := len(d.assignments) - 1; i >= 0; i-- {
		if d.assignments[i].Property == p {
			return d.assignments[i].Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the assignment list.
func (d Directive) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.assignments)
}

// UnmarshalJSON decodes an assignment list.
func (d *Directive) UnmarshalJSON(data []byte) error {
	var assignments []Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return fmt.Errorf("style: decode directive: %w", err)
	}
	d.assignments = assignments
	return nil
}

// Merge folds a stack of directives into one, property-wise: the result
// contains every property any directive in the stack assigns, with the value
// taken from the latest assignment. Property order follows first assignment,
// keeping the result deterministic for a fixed stack.
func Merge(stack ...Directive) Directive {
	var order []Property
	values := make(map[Property]string)

	for _, directive := range stack {
		for _, assignment := range directive.assignments {
			if _, seen := values[assignment.Property]; !seen {
				order = append(order, assignment.Property)
			}
			values[assignment.Property] = assignment.Value
		}
	}

	merged := Directive{assignments: make([]Assignment, 0, len(order))}
	for _, prop := range order {
		merged.assignments = append(merged.assignments, Assignment{Property: prop, Value: values[prop]})
	}
	return merged
}

func assign(dst []Assignment, p Property, v string) []Assignment {
	if v == "" {
		return dst
	}
	return append(dst, Assignment{Property: p, Value: v})
}
